package utils

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"valivio-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	localDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	contactPhonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("local_date", validateLocalDate)
	validate.RegisterValidation("contact_phone", validateContactPhone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateLocalDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !localDatePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.DateLayout, value)
	return err == nil
}

func validateContactPhone(fl validator.FieldLevel) bool {
	return contactPhonePattern.MatchString(fl.Field().String())
}
