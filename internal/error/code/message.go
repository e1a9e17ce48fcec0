package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "request binding error",
	ErrValidation:      "request validation error",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",
	ErrForbidden:       "insufficient permissions",

	// User and auth error codes
	ErrUserNotFound:          "user does not exist",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect email or password",

	// Report error codes
	ErrReportNotFound:        "report does not exist",
	ErrReportAlreadyReviewed: "report has already been reviewed",
	ErrTooMuchEvidence:       "a report may carry at most 3 evidence files",

	// Struggle error codes
	ErrStruggleNotFound: "struggle does not exist",

	// Ministry error codes
	ErrMinistryNotFound: "ministry record does not exist",

	// Community error codes
	ErrCommunityNotFound:     "community does not exist",
	ErrCommunityAlreadyExist: "community already exists",

	// Admin error codes
	ErrAdminNotFound:     "admin user does not exist",
	ErrAdminAlreadyExist: "the user is already an administrator",

	// Storage error codes
	ErrUploadFailed:  "file upload failed",
	ErrBucketInvalid: "unknown upload bucket",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record does not exist",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,

	// User and auth error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Report error codes
	ErrReportNotFound:        StatusNotFound,
	ErrReportAlreadyReviewed: StatusConflict,
	ErrTooMuchEvidence:       StatusBadRequest,

	// Struggle error codes
	ErrStruggleNotFound: StatusNotFound,

	// Ministry error codes
	ErrMinistryNotFound: StatusNotFound,

	// Community error codes
	ErrCommunityNotFound:     StatusNotFound,
	ErrCommunityAlreadyExist: StatusBadRequest,

	// Admin error codes
	ErrAdminNotFound:     StatusNotFound,
	ErrAdminAlreadyExist: StatusBadRequest,

	// Storage error codes
	ErrUploadFailed:  StatusInternalServerError,
	ErrBucketInvalid: StatusBadRequest,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
