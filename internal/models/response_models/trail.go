package response_models

type Trail struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Difficulty  string   `json:"difficulty"`
	LengthKm    float64  `json:"length_km"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"`
	Image       string   `json:"image,omitempty"`
}

type TrailPage struct {
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Total    int     `json:"total"`
	Trails   []Trail `json:"trails"`
}
