package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError         = "Something went wrong"
	ErrMsgUnknownError               = "Unknown error"
	ErrMsgInvalidRequestError        = "Invalid request. Please check your inputs."
	ErrMsgUnknownCollectionTypeError = "Unknown collection type"
	ErrMsgInvalidStatError           = "Unknown stat"
	ErrMsgPermissionDeniedError      = "You must be a moderator to do that"
)

// Success messages for API responses
const (
	MsgCollectionReset    = "Collection reset"
	MsgRedemptionAccepted = "Redemption accepted"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgDecodeRequestFailed  = "Failed to decode %s request"
	LogMsgRequestDecoded       = "%s request decoded"
	LogMsgMissingQueryParam    = "Missing %s query parameter"
	LogMsgRequestFailed        = "%s failed"
	LogMsgReadinessFailed      = "Readiness check failed"
)
