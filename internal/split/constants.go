package split

// ==================== Log Messages ====================

const (
	LogMsgSplitCalled   = "Split called"
	LogMsgSplitComputed = "Split computed"
	LogMsgSplitRejected = "Split rejected"
)

// ==================== Error Messages ====================

const (
	ErrMsgEmptyInputFmt = "%w (items: %d, recipients: %d)"
)
