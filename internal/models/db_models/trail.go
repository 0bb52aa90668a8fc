package db_models

// Trail mirrors one row of the trails CSV. Length and tags stay as raw text;
// the catalog preprocessor coerces them at load time.
type Trail struct {
	BaseModel
	CatalogOrder      int    `gorm:"index"`
	TrailName         string `gorm:"type:varchar(255);not null;index"`
	LinkAllTrails     string `gorm:"column:link_alltrails;type:text"`
	Image             string `gorm:"type:text"`
	Difficulty        string `gorm:"type:varchar(50)"`
	AverageRating     float64
	NumberOfReviews   int
	Location          string `gorm:"type:text"`
	Length            string `gorm:"type:varchar(50)"`
	Description       string `gorm:"type:text"`
	Tags              string `gorm:"type:text"`
	ScaledReviews     *float64
	ScaledRating      *float64
	CombinedScore     *float64
	DifficultyEncoded *int
}

func (Trail) TableName() string { return "trails" }
