package constvars

const (
	RedisKeyAvailabilityVersion = "slots:availability:version"
	// slots:availability:<version>:<from>:<to>
	RedisKeyAvailabilityFormat = "slots:availability:%d:%s:%s"
	// auth:denylist:<jti>
	RedisKeyTokenDenylistFormat = "auth:denylist:%s"
	RedisKeySlotCleanupLeader   = "slots:cleanup:leader"
)
