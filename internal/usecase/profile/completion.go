package profileUseCase

import (
	"math"

	"github.com/campusmatch/campusmatch/internal/entity"
)

// completionChecks are the ten equally weighted profile fields that make
// up the completion score, in the order they are reported when missing.
var completionChecks = []struct {
	field string
	done  func(*entity.User) bool
}{
	{"name", func(u *entity.User) bool { return u.FirstName != "" && u.LastName != "" }},
	{"bio", func(u *entity.User) bool { return u.Bio != "" }},
	{"college", func(u *entity.User) bool { return u.College != "" }},
	{"major", func(u *entity.User) bool { return u.Major != "" }},
	{"dateOfBirth", func(u *entity.User) bool { return u.DateOfBirth != nil }},
	{"gender", func(u *entity.User) bool { return u.Gender != "" }},
	{"interestedIn", func(u *entity.User) bool { return len(u.InterestedIn) > 0 }},
	{"interests", func(u *entity.User) bool { return len(u.Interests) > 0 }},
	{"photos", func(u *entity.User) bool { return u.PhotoCount() > 0 }},
	{"prompts", func(u *entity.User) bool { return len(u.Prompts) > 0 }},
}

// Score computes the profile completion percentage. Pure function of the
// profile: ten boolean checks, each worth a tenth, rounded to the nearest
// percent.
func Score(u *entity.User) entity.CompletionResponse {
	completed := 0
	missing := []string{}

	for _, check := range completionChecks {
		if check.done(u) {
			completed++
		} else {
			missing = append(missing, check.field)
		}
	}

	total := len(completionChecks)
	percentage := int(math.Round(float64(completed) / float64(total) * 100))

	return entity.CompletionResponse{
		Percentage: percentage,
		Completed:  completed,
		Total:      total,
		Missing:    missing,
	}
}

// PromptQuestions returns the curated list of prompt questions users can
// answer on their profile.
func (p *profileUseCase) PromptQuestions() []string {
	return []string{
		"What's your ideal first date?",
		"What's something you're passionate about?",
		"What's your biggest goal in life?",
		"What's your favorite way to spend a weekend?",
		"What's something that always makes you laugh?",
		"What's your love language?",
		"What's your biggest pet peeve?",
		"What's something you're learning right now?",
		"What's your favorite travel destination?",
		"What's something you can't live without?",
		"What's your hidden talent?",
		"What's your favorite type of music?",
		"What's something that makes you unique?",
		"What's your dream job?",
		"What's your favorite food?",
		"What's something you're proud of?",
		"What's your biggest fear?",
		"What's something you want to try?",
		"What's your favorite movie or TV show?",
		"What's something that motivates you?",
	}
}
