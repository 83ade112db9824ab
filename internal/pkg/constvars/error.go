package constvars

// Validation messages, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":      "jest wymagane",
	"email":         "musi być poprawnym adresem e-mail",
	"min":           "musi mieć co najmniej %s znaków",
	"max":           "może mieć najwyżej %s znaków",
	"gt":            "musi być większe niż %s",
	"lte":           "może wynosić najwyżej %s",
	"local_date":    "musi mieć format YYYY-MM-DD",
	"contact_phone": "musi być poprawnym numerem telefonu",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
	"lte": true,
}

// Machine codes sent in the "error" field of every error body
const (
	ErrCodeBadRequest      = "bad_request"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeNotFound        = "not_found"
	ErrCodeDuplicate       = "duplicate"
	ErrCodeSlotTaken       = "slot_taken"
	ErrCodeSlotBooked      = "slot_booked"
	ErrCodeTooManyRequests = "too_many_requests"
	ErrCodeTimeout         = "timeout"
	ErrCodeServerError     = "server_error"
)

// Error messages for clients
const (
	ErrClientSlotInputInvalid              = "Podaj datę (YYYY-MM-DD), godzinę (HH:mm) i czas trwania w minutach (>0)."
	ErrClientInvalidDateOrTime             = "Nieprawidłowa data lub godzina."
	ErrClientSlotDuplicate                 = "Taki termin już istnieje."
	ErrClientSlotCreateFailed              = "Błąd serwera przy tworzeniu slotu."
	ErrClientSlotNotFound                  = "Nie znaleziono takiego terminu."
	ErrClientSlotHasBooking                = "Ten termin ma już rezerwację. Najpierw anuluj rezerwację."
	ErrClientSlotTaken                     = "Ten termin jest już zajęty. Wybierz inny."
	ErrClientSlotInPast                    = "Ten termin już minął. Wybierz inny."
	ErrClientBookingInputInvalid           = "Podaj datę (YYYY-MM-DD) i godzinę (HH:mm)."
	ErrClientBookingNotFound               = "Nie znaleziono takiej rezerwacji."
	ErrClientInvalidRange                  = "Nieprawidłowy zakres dat."
	ErrClientInvalidID                     = "Nieprawidłowy identyfikator."
	ErrClientInvalidEmailOrPassword        = "Nieprawidłowy e-mail lub hasło."
	ErrClientNotLoggedIn                   = "Zaloguj się, aby kontynuować."
	ErrClientTooManyLoginAttempts          = "Zbyt wiele prób logowania. Spróbuj ponownie za chwilę."
	ErrClientTooManyRequests               = "Zbyt wiele żądań. Spróbuj ponownie za chwilę."
	ErrClientContentNotFound               = "Treść w przygotowaniu."
	ErrClientCannotProcessRequest          = "Nie udało się przetworzyć żądania."
	ErrClientServerLongRespond             = "Serwer odpowiada zbyt długo. Spróbuj ponownie."
	ErrClientSomethingWrongWithApplication = "Błąd serwera. Spróbuj ponownie później."
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevValidationFailed          = "validation failed"
	ErrDevInvalidDateOrTime         = "cannot parse local date or time"
	ErrDevInvalidRange              = "invalid date range"
	ErrDevURLParamIDValidation      = "url param %s is not a positive integer"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevTooManyLoginAttempts      = "login attempts rate limited"
	ErrDevTooManyRequests           = "request rate limited"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenRevoked          = "token revoked"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected signing method"

	ErrDevSlotDuplicate     = "slot with the same start and end already exists"
	ErrDevSlotNotFound      = "slot not found"
	ErrDevSlotHasBooking    = "slot is referenced by a booking"
	ErrDevSlotTaken         = "slot already has a booking"
	ErrDevSlotInPast        = "slot start is in the past"
	ErrDevBookingNotFound   = "booking not found"
	ErrDevContentNotFound   = "content object %s not found"
	ErrDevContentMalformed  = "content object %s is malformed"
	ErrDevContentReadObject = "failed to read content object %s"

	ErrDevDBFailedToFindData       = "failed to find data in postgres"
	ErrDevDBFailedToInsertData     = "failed to insert data into postgres"
	ErrDevDBFailedToUpdateData     = "failed to update data in postgres"
	ErrDevDBFailedToDeleteData     = "failed to delete data from postgres"
	ErrDevDBFailedToIterateDataset = "failed to iterate postgres rows"

	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisSetData     = "failed to set data into redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisIncrement   = "failed to increment value in redis"
	ErrDevRedisUnlock      = "failed to release redis lock"
	ErrDevRabbitMQPublish  = "failed to publish message to queue %s"
	ErrDevRabbitMQConsume  = "failed to consume queue %s"
	ErrDevMinioGetObject   = "failed to get object from bucket %s"
	ErrDevSMTPSendEmail    = "failed to send email through %s"
	ErrDevUnknownError     = "unknown error"
	ErrDevPanicRecovered   = "panic recovered"
	ErrDevHTTPNotSupported = "response writer does not support the operation"
)
