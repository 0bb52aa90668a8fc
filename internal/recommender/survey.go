package recommender

// Survey question keys.
const (
	KeyHomeEnvironment       = "home_environment"
	KeyWeekendPreference     = "weekend_preference"
	KeyFitnessLevel          = "fitness_level"
	KeyHikingExperience      = "hiking_experience"
	KeyTrailLengthPreference = "trail_length_preference"
	KeyHikingCompanion       = "hiking_companion"
	KeyPerfectTrailFeatures  = "perfect_trail_features"
	KeyDreamDestination      = "dream_destination"
	KeyMusicPreference       = "music_preference"
	KeyWeatherPreference     = "weather_preference"
	KeyHikingLikelihood      = "hiking_likelihood"
)

const (
	defaultFitness    = 0.5
	defaultWeather    = 0.5
	defaultExperience = 0.3
	defaultLikelihood = 3

	minLikelihood = 1
	maxLikelihood = 5
)

var fitnessLevels = map[string]float64{
	"Couch potato 🛋":                0.2,
	"Average, but could be better 🚶": 0.5,
	"Pretty active 💪":               0.8,
	"Athlete level 🏃‍♀️":            1.0,
}

var weatherTolerances = map[string]float64{
	"No way, I'll reschedule 🛌":    0.2,
	"Maybe if it's just cloudy ☁️": 0.5,
	"Rain won't stop me! 🌧":        1.0,
}

var experienceLevels = map[string]float64{
	"Yes, a few times":          0.6,
	"No, but I'd like to try":   0.3,
	"Yes, and I hike regularly": 1.0,
	"Not my thing":              0.1,
}

// tagTables maps each tag-bearing question to its answer -> tags table.
var tagTables = map[string]map[string][]string{
	KeyHomeEnvironment: {
		"A big city 🌆":                               {"Urban", "Accessible"},
		"A peaceful small town 🏡":                    {"Accessible", "Quiet"},
		"A bustling suburb just outside the city 🏘": {"Urban", "Accessible"},
		"A rural area surrounded by nature 🌾":        {"Nature", "Rural"},
		"A mountain or hilly area 🏔":                 {"Mountain", "Elevation"},
		"A coastal area by the beach 🌊":              {"Coastal", "Beach"},
	},
	KeyWeekendPreference: {
		"Chilling with friends":             {"Social", "Easy"},
		"Exploring new places":              {"Adventure", "Scenic"},
		"Watching movies or gaming":         {"Easy", "Beginner"},
		"Going on adventures (like hiking)": {"Adventure", "Challenge"},
	},
	KeyTrailLengthPreference: {
		"Short and sweet (under 5 km)": {"Short", "Easy"},
		"A nice challenge (5-10 km)":   {"Medium", "Moderate"},
		"Long and tough (over 10 km)":  {"Long", "Hard"},
	},
	KeyHikingCompanion: {
		"Alone for some peace and quiet": {"Solo", "Quiet"},
		"With friends or a group":        {"Group", "Social"},
		"Family trips":                   {"Family", "Easy"},
		"My pet 🐕":                       {"Pet-friendly", "Accessible"},
	},
	KeyPerfectTrailFeatures: {
		"Great scenery 🌄": {"Scenic", "Views"},
		"Not too difficult, but enough exercise 💦":                     {"Moderate", "Exercise"},
		"Close to a cool destination (like a waterfall or viewpoint) 💧": {"Destination", "Feature"},
		"Good weather ☀️": {"Fair_weather"},
	},
	KeyDreamDestination: {
		"A tropical island 🏝":               {"Tropical", "Coastal"},
		"A snowy mountain 🏔":                {"Mountain", "Snow"},
		"A peaceful forest 🌳":               {"Forest", "Peaceful"},
		"Anywhere with breathtaking views!": {"Scenic", "Views"},
	},
	KeyMusicPreference: {
		"Chill acoustic tunes 🎸":               {"Moderate", "Peaceful"},
		"Pumped-up workout beats 🎧":            {"Hard", "Challenge"},
		"Nature sounds 🌿":                      {"Nature", "Quiet"},
		"No music, just the sound of nature 🐦": {"Nature", "Peaceful"},
	},
}

// tagQuestionOrder fixes the resolution order of the tag tables.
var tagQuestionOrder = []string{
	KeyHomeEnvironment,
	KeyWeekendPreference,
	KeyTrailLengthPreference,
	KeyHikingCompanion,
	KeyPerfectTrailFeatures,
	KeyDreamDestination,
	KeyMusicPreference,
}

// Question kinds.
const (
	KindSingleChoice = "single_choice"
	KindRange        = "range"
)

// Question describes one survey question for clients rendering the form.
type Question struct {
	Key     string   `json:"key"`
	Prompt  string   `json:"prompt"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
	Min     *int     `json:"min,omitempty"`
	Max     *int     `json:"max,omitempty"`
	Default *int     `json:"default,omitempty"`
}

// Questions returns the survey in form order. Each call returns fresh
// slices.
func Questions() []Question {
	lo, hi, def := minLikelihood, maxLikelihood, defaultLikelihood
	return []Question{
		{Key: KeyHomeEnvironment, Prompt: "Where do you live?", Kind: KindSingleChoice, Options: []string{
			"A big city 🌆",
			"A peaceful small town 🏡",
			"A bustling suburb just outside the city 🏘",
			"A rural area surrounded by nature 🌾",
			"A mountain or hilly area 🏔",
			"A coastal area by the beach 🌊",
		}},
		{Key: KeyWeekendPreference, Prompt: "How do you prefer to spend your weekends?", Kind: KindSingleChoice, Options: []string{
			"Chilling with friends",
			"Exploring new places",
			"Watching movies or gaming",
			"Going on adventures (like hiking)",
		}},
		{Key: KeyFitnessLevel, Prompt: "How would you describe your fitness level?", Kind: KindSingleChoice, Options: []string{
			"Couch potato 🛋",
			"Average, but could be better 🚶",
			"Pretty active 💪",
			"Athlete level 🏃‍♀️",
		}},
		{Key: KeyHikingExperience, Prompt: "Have you ever been on a hike?", Kind: KindSingleChoice, Options: []string{
			"Yes, a few times",
			"No, but I'd like to try",
			"Yes, and I hike regularly",
			"Not my thing",
		}},
		{Key: KeyTrailLengthPreference, Prompt: "What length of trail do you prefer?", Kind: KindSingleChoice, Options: []string{
			"Short and sweet (under 5 km)",
			"A nice challenge (5-10 km)",
			"Long and tough (over 10 km)",
		}},
		{Key: KeyHikingCompanion, Prompt: "Who do you prefer to hike with?", Kind: KindSingleChoice, Options: []string{
			"Alone for some peace and quiet",
			"With friends or a group",
			"Family trips",
			"My pet 🐕",
		}},
		{Key: KeyPerfectTrailFeatures, Prompt: "What makes a trail perfect for you?", Kind: KindSingleChoice, Options: []string{
			"Great scenery 🌄",
			"Not too difficult, but enough exercise 💦",
			"Close to a cool destination (like a waterfall or viewpoint) 💧",
			"Good weather ☀️",
		}},
		{Key: KeyDreamDestination, Prompt: "What's your dream hiking destination?", Kind: KindSingleChoice, Options: []string{
			"A tropical island 🏝",
			"A snowy mountain 🏔",
			"A peaceful forest 🌳",
			"Anywhere with breathtaking views!",
		}},
		{Key: KeyMusicPreference, Prompt: "What's your hiking playlist vibe?", Kind: KindSingleChoice, Options: []string{
			"Chill acoustic tunes 🎸",
			"Pumped-up workout beats 🎧",
			"Nature sounds 🌿",
			"No music, just the sound of nature 🐦",
		}},
		{Key: KeyWeatherPreference, Prompt: "If the weather's not great, would you still go hiking?", Kind: KindSingleChoice, Options: []string{
			"No way, I'll reschedule 🛌",
			"Maybe if it's just cloudy ☁️",
			"Rain won't stop me! 🌧",
		}},
		{Key: KeyHikingLikelihood, Prompt: "On a scale of 1-5, how likely are you to go hiking in the next vacation?", Kind: KindRange,
			Min: &lo, Max: &hi, Default: &def},
	}
}
