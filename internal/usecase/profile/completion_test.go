package profileUseCase_test

import (
	"testing"
	"time"

	"github.com/campusmatch/campusmatch/internal/entity"
	profileUseCase "github.com/campusmatch/campusmatch/internal/usecase/profile"
	"github.com/stretchr/testify/assert"
)

func completeUser() *entity.User {
	dob := time.Date(2003, 4, 12, 0, 0, 0, 0, time.UTC)
	u := &entity.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Bio:          "math and music",
		College:      "State University",
		Major:        "Computer Science",
		DateOfBirth:  &dob,
		Gender:       "female",
		InterestedIn: entity.StringList{"male"},
		Interests:    entity.StringList{"chess"},
		Prompts:      entity.Prompts{{Question: "q", Answer: "a"}},
		MainSlot:     1,
	}
	_, _ = u.SetSlot(1, "https://cdn/p.jpg", "k", time.Now())
	return u
}

func TestScore_EmptyProfile(t *testing.T) {
	score := profileUseCase.Score(&entity.User{})
	assert.Equal(t, 0, score.Percentage)
	assert.Equal(t, 0, score.Completed)
	assert.Equal(t, 10, score.Total)
	assert.Len(t, score.Missing, 10)
}

func TestScore_CompleteProfile(t *testing.T) {
	score := profileUseCase.Score(completeUser())
	assert.Equal(t, 100, score.Percentage)
	assert.Equal(t, 10, score.Completed)
	assert.Empty(t, score.Missing)
}

func TestScore_PartialProfile(t *testing.T) {
	u := completeUser()
	u.Bio = ""
	u.Prompts = nil
	u.Photos = entity.PhotoSlots{}

	score := profileUseCase.Score(u)
	assert.Equal(t, 70, score.Percentage)
	assert.Equal(t, 7, score.Completed)
	assert.Equal(t, []string{"bio", "photos", "prompts"}, score.Missing)
}

func TestScore_NameNeedsBothParts(t *testing.T) {
	u := completeUser()
	u.LastName = ""

	score := profileUseCase.Score(u)
	assert.Equal(t, 90, score.Percentage)
	assert.Contains(t, score.Missing, "name")
}
