package domain

// Error message fragments shared between the service layer and the Discord
// boundary, where they are mapped onto user-facing replies
const (
	ErrMsgChannelIDRequired  = "channel ID is required"
	ErrMsgPlayerNameRequired = "player name is required"
	ErrMsgNegativeCounter    = "counters must not be negative"
)
