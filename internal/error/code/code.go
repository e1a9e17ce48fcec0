package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource missing.
	StatusNotFound = 404
	// StatusConflict - 409: state conflict.
	StatusConflict = 409
	// StatusInternalServerError - 500: internal error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: too many requests.
	ErrTooManyRequests
	// ErrForbidden - 403: insufficient permissions.
	ErrForbidden
)

// User and auth error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: wrong credentials.
	ErrUserPasswordIncorrect
)

// Report error codes (102xxx).
const (
	// ErrReportNotFound - 404: report does not exist.
	ErrReportNotFound int = iota + 102000
	// ErrReportAlreadyReviewed - 409: report already moderated.
	ErrReportAlreadyReviewed
	// ErrTooMuchEvidence - 400: evidence list over the cap.
	ErrTooMuchEvidence
)

// Struggle error codes (103xxx).
const (
	// ErrStruggleNotFound - 404: struggle does not exist.
	ErrStruggleNotFound int = iota + 103000
)

// Ministry error codes (104xxx).
const (
	// ErrMinistryNotFound - 404: ministry record does not exist.
	ErrMinistryNotFound int = iota + 104000
)

// Community error codes (105xxx).
const (
	// ErrCommunityNotFound - 404: community does not exist.
	ErrCommunityNotFound int = iota + 105000
	// ErrCommunityAlreadyExist - 400: community already exists.
	ErrCommunityAlreadyExist
)

// Admin error codes (106xxx).
const (
	// ErrAdminNotFound - 404: admin user does not exist.
	ErrAdminNotFound int = iota + 106000
	// ErrAdminAlreadyExist - 400: the user is already an admin.
	ErrAdminAlreadyExist
)

// Storage error codes (107xxx).
const (
	// ErrUploadFailed - 500: object upload failed.
	ErrUploadFailed int = iota + 107000
	// ErrBucketInvalid - 400: unknown upload bucket.
	ErrBucketInvalid
)

// Database error codes (108xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 108000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
