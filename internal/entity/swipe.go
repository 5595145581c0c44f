package entity

import "time"

// Action is the direction of a swipe.
type Action string

const (
	ActionLike      Action = "like"
	ActionDislike   Action = "dislike"
	ActionSuperLike Action = "superlike"
)

// Valid reports whether the action is one of the known swipe actions.
func (a Action) Valid() bool {
	switch a {
	case ActionLike, ActionDislike, ActionSuperLike:
		return true
	}
	return false
}

// IsLike reports whether the action expresses interest. Both like and
// superlike count toward mutual-like detection.
func (a Action) IsLike() bool { return a == ActionLike || a == ActionSuperLike }

// Swipe is a one-directional decision from swiper toward swiped.
//
// Composite PK (SwiperID, SwipedID) guarantees a single row per ordered
// pair: a repeat swipe overwrites the action instead of inserting a
// duplicate.
type Swipe struct {
	SwiperID  uint      `gorm:"primaryKey;column:swiper_id" json:"swiper_id"`
	SwipedID  uint      `gorm:"primaryKey;column:swiped_id" json:"swiped_id"`
	Action    Action    `gorm:"column:action;not null" json:"action"`
	Active    bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

// Outcome summarizes the result of a swipe for the caller.
type Outcome uint

const (
	OutcomeNoMatch Outcome = iota + 1 // swipe recorded, no mutual like
	OutcomeMatch                      // mutual like, match created or already present
	OutcomePass                       // dislike recorded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "NoMatch"
	case OutcomeMatch:
		return "Match"
	case OutcomePass:
		return "Pass"
	default:
		return "Unknown"
	}
}
