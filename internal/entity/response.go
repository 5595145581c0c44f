package entity

type SignUpResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	User      *User  `json:"user"`
	MainPhoto string `json:"main_photo_url,omitempty"`
}

// CompletionResponse is the result of the profile completion scorer.
// Percentage is Completed/Total rounded to the nearest percent.
type CompletionResponse struct {
	Percentage int      `json:"completion_percentage"`
	Completed  int      `json:"completed_fields"`
	Total      int      `json:"total_fields"`
	Missing    []string `json:"missing_fields"`
}

type PhotoSlotResponse struct {
	Slot     int    `json:"slot"`
	URL      string `json:"url,omitempty"`
	IsMain   bool   `json:"is_main"`
	MainSlot int    `json:"main_slot"`
}

type SwipeResponse struct {
	Outcome     string  `json:"outcome"`
	OutcomeEnum Outcome `json:"outcome_enum"`
	Match       *Match  `json:"match,omitempty"`
}

type DiscoverResponse struct {
	Profiles []User `json:"profiles"`
}

type LikeCountResponse struct {
	Count int64 `json:"count"`
}
