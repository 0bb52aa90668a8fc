package request_models

type RecommendRequest struct {
	// Answers maps survey question keys to a choice, a list of choices,
	// or the 1-5 hiking likelihood.
	Answers map[string]any `json:"answers" binding:"required"`
	N       *int           `json:"n,omitempty"`

	// Optional respondent details, stored with the survey when recording
	// is enabled.
	Name     string `json:"name,omitempty"`
	Hometown string `json:"hometown,omitempty"`
}
