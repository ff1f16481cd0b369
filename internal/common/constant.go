package common

// Outbound header names.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-ID"

	ContentTypeJSON = "application/json"
)

// Remote service endpoints, relative to the configured server URL.
const (
	EndpointLogin       = "/auth/login"
	EndpointEntriesRead = "/protected/v1/forms/read"
	EndpointEntryInsert = "/unprotected/v1/forms/insert"
)

// Credential store keys.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Navigation targets.
const (
	PathRoot         = "/"
	PathLogin        = "/login"
	PathAdd          = "/add"
	PathEntryDetails = "/entry-details"
)
