package telegram

// UsersShared contains information about users shared with the bot via a
// KeyboardButtonRequestUsers button. Bot API 7.0 renamed UserShared to
// UsersShared and user_id to user_ids.
type UsersShared struct {
	// RequestID is the identifier of the originating request
	RequestID int64 `json:"request_id"`

	// UserIDs are the identifiers of the shared users
	UserIDs []int64 `json:"user_ids"`
}

// UserID returns the identifier of the first shared user, or zero when none
// were shared.
//
// Deprecated: Bot API 7.0 renamed the attribute 'user_id' to 'user_ids'.
// Use UserIDs.
func (u *UsersShared) UserID() int64 {
	WarnRenamedAttribute("user_id", "user_ids", BotAPI70)
	if len(u.UserIDs) == 0 {
		return 0
	}
	return u.UserIDs[0]
}

// ChatShared contains information about a chat shared with the bot via a
// KeyboardButtonRequestChat button.
type ChatShared struct {
	// RequestID is the identifier of the originating request
	RequestID int64 `json:"request_id"`

	// ChatID is the identifier of the shared chat
	ChatID int64 `json:"chat_id"`
}
