package entity

import "time"

// MessageType is the payload kind of a chat message.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageGif   MessageType = "gif"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessageImage, MessageGif:
		return true
	}
	return false
}

// Message is one entry in the append-only chat log of a match. Messages
// are soft-deleted only.
type Message struct {
	ID         uint        `gorm:"primaryKey;column:id" json:"id"`
	MatchID    uint        `gorm:"column:match_id;not null;index:idx_messages_match_created,priority:1" json:"match_id"`
	SenderID   uint        `gorm:"column:sender_id;not null" json:"sender_id"`
	ReceiverID uint        `gorm:"column:receiver_id;not null;index:idx_messages_receiver_read,priority:1" json:"receiver_id"`
	Content    string      `gorm:"column:content;not null" json:"content"`
	Type       MessageType `gorm:"column:type;default:text" json:"type"`
	Read       bool        `gorm:"column:read;default:false;index:idx_messages_receiver_read,priority:2" json:"read"`
	ReadAt     *time.Time  `gorm:"column:read_at" json:"read_at,omitempty"`
	Deleted    bool        `gorm:"column:deleted;default:false" json:"-"`
	DeletedAt  *time.Time  `gorm:"column:deleted_at" json:"-"`
	CreatedAt  time.Time   `gorm:"autoCreateTime;column:created_at;index:idx_messages_match_created,priority:2" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}
