package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User is both the account and the dating profile, mirroring the single
// user document of the persistence layer. Photo slots, prompts and the
// list-valued fields are stored as JSON columns so that every profile
// mutation is a single-row atomic write.
type User struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	GoogleID  string `gorm:"column:google_id" json:"-"`
	Email     string `gorm:"unique;not null;column:email" json:"email"`
	Password  string `gorm:"column:password" json:"-"`
	FirstName string `gorm:"not null;column:first_name" json:"first_name"`
	LastName  string `gorm:"not null;column:last_name" json:"last_name"`

	College        string     `gorm:"column:college" json:"college"`
	Major          string     `gorm:"column:major" json:"major"`
	GraduationYear int        `gorm:"column:graduation_year" json:"graduation_year,omitempty"`
	DateOfBirth    *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Gender         string     `gorm:"column:gender" json:"gender"`
	InterestedIn   StringList `gorm:"column:interested_in;type:text" json:"interested_in"`
	Bio            string     `gorm:"column:bio" json:"bio"`
	Interests      StringList `gorm:"column:interests;type:text" json:"interests"`

	Photos       PhotoSlots `gorm:"column:photos;type:text" json:"photos"`
	MainSlot     int        `gorm:"column:main_slot;default:1" json:"main_slot"`
	PhotoVersion int        `gorm:"column:photo_version;default:0" json:"-"`
	Prompts      Prompts    `gorm:"column:prompts;type:text" json:"prompts"`

	Active    bool      `gorm:"column:active;default:true" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

// Prompt is a question/answer pair shown on the profile. At most three
// prompts per profile, answers capped at 300 characters.
type Prompt struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

const (
	MaxPrompts        = 3
	MaxPromptAnswer   = 300
	MaxBioLength      = 500
	MaxMessageContent = 1000
)

type Prompts []Prompt

type StringList []string

// Name returns the display name used by the completion scorer and responses.
func (u *User) Name() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Age derives the user's age from date of birth, 0 when unset.
func (u *User) Age() int {
	if u.DateOfBirth == nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - u.DateOfBirth.Year()
	if now.YearDay() < u.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// JSON column plumbing. gorm persists these through database/sql, so each
// slice type carries a Valuer/Scanner pair marshalling to JSON text. Works
// the same against postgres text/jsonb columns and sqlite in tests.

func (l StringList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *StringList) Scan(src any) error          { return jsonScan(src, l) }

func (p Prompts) Value() (driver.Value, error) { return jsonValue(p) }
func (p *Prompts) Scan(src any) error          { return jsonScan(src, p) }

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src, dst any) error {
	if src == nil {
		return nil
	}
	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
