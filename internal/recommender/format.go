package recommender

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatText renders results as plain-text cards separated by blank lines.
func FormatText(results []ScoredTrail) string {
	cards := make([]string, 0, len(results))
	for _, r := range results {
		t := r.Trail
		var b strings.Builder
		fmt.Fprintf(&b, "🏃‍♂️ %s\n", t.Name)
		fmt.Fprintf(&b, "📍 Location: %s\n", t.Location)
		fmt.Fprintf(&b, "💪 Difficulty: %s\n", t.Difficulty)
		fmt.Fprintf(&b, "📏 Length: %s km\n", strconv.FormatFloat(t.LengthKm, 'f', -1, 64))
		fmt.Fprintf(&b, "⭐ Rating: %s/5.0\n", strconv.FormatFloat(t.Rating, 'f', -1, 64))
		fmt.Fprintf(&b, "🎯 Match Score: %.2f\n", r.Score)
		fmt.Fprintf(&b, "🏷️ Features: %s\n", strings.Join(t.Tags, ", "))
		cards = append(cards, b.String())
	}
	return strings.Join(cards, "\n")
}
