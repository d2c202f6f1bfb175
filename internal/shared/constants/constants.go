package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultLimit = 50
	MaxLimit     = 100

	// HTTP headers
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyUserRole = "user_role"
	ContextKeyToken    = "token"

	// Roles
	RoleAdmin = "admin"

	// Database table names
	TableUsers          = "users"
	TableSessions       = "sessions"
	TableNews           = "news"
	TableCalendarEvents = "calendar_events"
	TableImages         = "images"
)
