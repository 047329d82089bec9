package blindbox

// Log messages
const (
	LogMsgRedeemed              = "Blind box redeemed"
	LogMsgRecordOwnershipFailed = "Failed to record blind box ownership"
	LogMsgCollectionDisplayed   = "Collection displayed"
	LogMsgCollectionReset       = "Collection reset"
	LogMsgPublishFailed         = "Failed to publish blind box event"
	LogMsgListCompletedFailed   = "Failed to list completed collections"
)

// Error messages
const (
	ErrMsgNoSelectableSlot = "catalog has no selectable slot"
	ErrMsgUserIDRequired   = "user id is required"
	ErrMsgUsernameRequired = "username is required"
	ErrMsgUnknownReward    = "unknown reward title"
)
