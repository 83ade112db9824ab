package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingErrorCodeKey       = "error_code"
	LoggingLocationKey        = "location"
	LoggingRequestKey         = "request"
	LoggingResponseKey        = "response"
	LoggingCountKey           = "count"
	LoggingSlotIDKey          = "slot_id"
	LoggingSlotStartKey       = "slot_start"
	LoggingSlotEndKey         = "slot_end"
	LoggingBookingIDKey       = "booking_id"
	LoggingAdminIDKey         = "admin_id"
	LoggingAdminEmailKey      = "admin_email"
	LoggingTokenIDKey         = "token_id"
	LoggingRangeFromKey       = "range_from"
	LoggingRangeToKey         = "range_to"
	LoggingCutoffKey          = "cutoff"
	LoggingRedisKey           = "redis_key"
	LoggingLockValueKey       = "lock_value"
	LoggingLockExpirationKey  = "lock_expiration"
	LoggingLockStoredValueKey = "lock_stored_value"
	LoggingQueueKey           = "queue"
	LoggingBucketKey          = "bucket"
	LoggingObjectKey          = "object"
	LoggingEmailToKey         = "email_to"
	LoggingCacheHitKey        = "cache_hit"
)
