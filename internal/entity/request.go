package entity

import (
	"context"
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *SignUpRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.FirstName == "" {
		problems["FirstName"] = append(problems["FirstName"], "First name is required")
	}
	if r.LastName == "" {
		problems["LastName"] = append(problems["LastName"], "Last name is required")
	}
	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	} else if !emailRegex.MatchString(r.Email) {
		problems["Email"] = append(problems["Email"], "Invalid email format")
	}
	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}
	if len([]byte(r.Password)) > 72 {
		problems["Password"] = append(problems["Password"], "Password length should not exceed 72 bytes")
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	}
	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	return problems
}

type UpdateBasicProfileRequest struct {
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	Bio            *string    `json:"bio"`
	College        *string    `json:"college"`
	Major          *string    `json:"major"`
	GraduationYear *int       `json:"graduation_year"`
	Interests      StringList `json:"interests"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Gender         *string    `json:"gender"`
	InterestedIn   StringList `json:"interested_in"`
}

func (r *UpdateBasicProfileRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Bio != nil && len(*r.Bio) > MaxBioLength {
		problems["Bio"] = append(problems["Bio"], "Bio must be 500 characters or less")
	}
	if r.Gender != nil && *r.Gender != "" && !validGender(*r.Gender) {
		problems["Gender"] = append(problems["Gender"], "Unknown gender value")
	}
	for _, g := range r.InterestedIn {
		if !validGender(g) {
			problems["InterestedIn"] = append(problems["InterestedIn"], "Unknown gender value")
		}
	}

	return problems
}

func validGender(g string) bool {
	switch g {
	case "male", "female", "non-binary", "other":
		return true
	}
	return false
}

type UpdatePromptsRequest struct {
	Prompts []Prompt `json:"prompts"`
}

func (r *UpdatePromptsRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if len(r.Prompts) > MaxPrompts {
		problems["Prompts"] = append(problems["Prompts"], "Maximum 3 prompts allowed")
	}
	for _, p := range r.Prompts {
		if p.Question == "" || p.Answer == "" {
			problems["Prompts"] = append(problems["Prompts"], "Each prompt must have a question and answer")
		}
		if len(p.Answer) > MaxPromptAnswer {
			problems["Prompts"] = append(problems["Prompts"], "Prompt answers must be 300 characters or less")
		}
	}

	return problems
}

type SwipeRequest struct {
	Action Action `json:"action"`
}

func (r *SwipeRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if !r.Action.Valid() {
		problems["Action"] = append(problems["Action"], "Action must be like, dislike or superlike")
	}

	return problems
}

type SendMessageRequest struct {
	Content string      `json:"content"`
	Type    MessageType `json:"type"`
}

func (r *SendMessageRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Content == "" {
		problems["Content"] = append(problems["Content"], "Content is required")
	}
	if len(r.Content) > MaxMessageContent {
		problems["Content"] = append(problems["Content"], "Content must be 1000 characters or less")
	}
	if r.Type != "" && !r.Type.Valid() {
		problems["Type"] = append(problems["Type"], "Type must be text, image or gif")
	}

	return problems
}
