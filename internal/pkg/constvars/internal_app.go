package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ADMIN_CLAIMS_KEY         ContextKey = "admin_claims"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

const (
	AdminTokenCookieName = "token"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

const (
	SlotDefaultCapacity = 1
)

const (
	ContentSourceMinio = "minio"
	ContentSourceLocal = "local"

	ContentFileFAQ       = "faq.json"
	ContentFileAudience  = "data.json"
	ContentFileAboutHTML = "about.html"
	ContentFileAboutMD   = "about.md"

	ContentFormatHTML     = "html"
	ContentFormatMarkdown = "markdown"
)

// Postgres SQLSTATE codes surfaced through lib/pq.
const (
	PostgresUniqueViolation     = "23505"
	PostgresForeignKeyViolation = "23503"
	PostgresCheckViolation      = "23514"
)
