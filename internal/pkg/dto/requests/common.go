package requests

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexibleInt accepts 30, 30.0 and "30". Anything else decodes to 0 so the
// request fails validation instead of JSON parsing.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
		*f = 0
		return nil
	}
	*f = FlexibleInt(value)
	return nil
}

func (f FlexibleInt) Int() int {
	return int(f)
}

// TrimOptional trims s and turns blank values into nil.
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
