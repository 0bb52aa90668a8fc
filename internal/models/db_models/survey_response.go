package db_models

// SurveyResponse is one submitted survey. Multi-select answers are stored
// joined with ", ".
type SurveyResponse struct {
	BaseModel
	Name                     string `gorm:"type:varchar(100)"`
	Hometown                 string `gorm:"type:varchar(100)"`
	HomePlace                string `gorm:"type:varchar(100)"`
	WeekendPreference        string `gorm:"type:text"`
	FitnessLevel             string `gorm:"type:varchar(50)"`
	HikingExperience         string `gorm:"type:varchar(50)"`
	PreferredTrailTypes      string `gorm:"type:text"`
	HikingGroup              string `gorm:"type:text"`
	TrailIdealFeatures       string `gorm:"type:text"`
	DreamDestination         string `gorm:"type:text"`
	MusicPreference          string `gorm:"type:text"`
	BadWeatherHiking         string `gorm:"type:text"`
	VacationHikingLikelihood int
}

func (SurveyResponse) TableName() string { return "survey_responses" }
