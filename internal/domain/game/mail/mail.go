package mail

import "time"

// Message is one piece of mail: a note with optional coins and items
// attached, held in the recipient's mailbox until claimed
type Message struct {
	ID         string         `json:"id"`
	RealmID    string         `json:"realm_id"`
	FromUserID string         `json:"from_user_id"`
	ToUserID   string         `json:"to_user_id"`
	Note       string         `json:"note"`
	Coins      int            `json:"coins"`
	Items      map[string]int `json:"items,omitempty"`
	Claimed    bool           `json:"claimed"`
	SentAt     time.Time      `json:"sent_at"`
}

// HasAttachments reports whether claiming the message transfers anything
func (m *Message) HasAttachments() bool {
	return m.Coins > 0 || len(m.Items) > 0
}
