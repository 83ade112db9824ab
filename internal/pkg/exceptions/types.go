package exceptions

import (
	"fmt"
	"valivio-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidID, fmt.Sprintf(constvars.ErrDevURLParamIDValidation, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrInvalidDateOrTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDateOrTime, constvars.ErrDevInvalidDateOrTime)
	}
	ErrInvalidRange = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidRange, constvars.ErrDevInvalidRange)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}

	// Slots
	ErrSlotDuplicate = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusConflict, constvars.ErrCodeDuplicate, constvars.ErrClientSlotDuplicate, constvars.ErrDevSlotDuplicate)
	}
	ErrSlotNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientSlotNotFound, constvars.ErrDevSlotNotFound)
	}
	ErrSlotHasBooking = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusConflict, constvars.ErrCodeSlotBooked, constvars.ErrClientSlotHasBooking, constvars.ErrDevSlotHasBooking)
	}
	ErrSlotCreate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSlotCreateFailed, constvars.ErrDevDBFailedToInsertData)
	}

	// Bookings
	ErrSlotTaken = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusConflict, constvars.ErrCodeSlotTaken, constvars.ErrClientSlotTaken, constvars.ErrDevSlotTaken)
	}
	ErrSlotInPast = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSlotInPast, constvars.ErrDevSlotInPast)
	}
	ErrBookingNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientBookingNotFound, constvars.ErrDevBookingNotFound)
	}

	// Auth
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrTooManyLoginAttempts = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyLoginAttempts, constvars.ErrDevTooManyLoginAttempts)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenRevoked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenRevoked)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}

	// Content
	ErrContentNotFound = func(err error, objectName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientContentNotFound, fmt.Sprintf(constvars.ErrDevContentNotFound, objectName))
	}
	ErrContentMalformed = func(err error, objectName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevContentMalformed, objectName))
	}
	ErrContentReadObject = func(err error, objectName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevContentReadObject, objectName))
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrPostgresDBDeleteData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDataset)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrement)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}
	ErrRabbitMQConsume = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQConsume, queueName))
	}

	// Minio
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioGetObject, bucketName))
	}

	// SMTP
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}
)
