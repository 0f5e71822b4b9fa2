package auth

const (
	// ContextKeyUser holds the resolved identity for the current request.
	// Absent for anonymous requests.
	ContextKeyUser = "auth_user"

	jsonKeyOK    = "ok"
	jsonKeyError = "error"
)

const (
	msgForbidden               = "Forbidden"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
)
