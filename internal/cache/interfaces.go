package cache

type ICache interface {
	// GetRateLimit counts a request of userIdentifier in the current minute.
	// It returns the seconds to wait when the limit is exceeded, 0 otherwise.
	GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error)

	// GetLoginAttempts returns the number of failed logins recorded for a username.
	GetLoginAttempts(username string) (int, error)
	// IncrementLoginAttempts records a failed login; the counter expires after lockoutSeconds.
	IncrementLoginAttempts(username string, lockoutSeconds int) error
	// ResetLoginAttempts clears the counter after a successful login.
	ResetLoginAttempts(username string) error

	Close() error
}
