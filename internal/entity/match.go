package entity

import "time"

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchMatched   MatchStatus = "matched"
	MatchUnmatched MatchStatus = "unmatched"
)

// Match is a persisted record of mutual interest between two users. The
// pair is stored normalized (User1ID < User2ID) so the unique index on
// (user1_id, user2_id) covers the unordered pair. Matches are never
// deleted; unmatching updates the row in place so the index keeps exactly
// one row per pair across its whole history.
type Match struct {
	ID            uint        `gorm:"primaryKey;column:id" json:"id"`
	User1ID       uint        `gorm:"column:user1_id;not null;uniqueIndex:idx_matches_pair,priority:1" json:"user1_id"`
	User2ID       uint        `gorm:"column:user2_id;not null;uniqueIndex:idx_matches_pair,priority:2" json:"user2_id"`
	Status        MatchStatus `gorm:"column:status;default:pending" json:"status"`
	MatchedAt     time.Time   `gorm:"column:matched_at" json:"matched_at"`
	LastMessageAt *time.Time  `gorm:"column:last_message_at" json:"last_message_at,omitempty"`
	Active        bool        `gorm:"column:active;default:true" json:"active"`
	CreatedAt     time.Time   `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

// NormalizePair orders two user ids for the unordered match pair.
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// Involves reports whether the user is one of the two matched users.
func (m *Match) Involves(userID uint) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUser returns the match partner of the given user.
func (m *Match) OtherUser(userID uint) uint {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}
