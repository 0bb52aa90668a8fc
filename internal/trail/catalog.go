package trail

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Difficulty labels used by the catalog. Any other label is kept as-is and
// scored like Easy.
const (
	DifficultyEasy     = "Easy"
	DifficultyModerate = "Moderate"
	DifficultyHard     = "Hard"
)

var (
	ErrNoNumber      = errors.New("no numeric value")
	ErrNegative      = errors.New("negative value")
	ErrRatingOutside = errors.New("rating outside 0-5")
)

// RawTrailRow is one row as supplied by a catalog source, before coercion.
type RawTrailRow struct {
	Name        string
	Link        string
	Image       string
	Difficulty  string
	Rating      string
	ReviewCount string
	Location    string
	Length      string
	Description string
	Tags        string
}

// Trail is a preprocessed catalog record. Trails are never mutated after
// the catalog is built.
type Trail struct {
	Position    int
	Name        string
	Link        string
	Image       string
	Difficulty  string
	Rating      float64
	ReviewCount int
	Location    string
	LengthKm    float64
	Description string
	Tags        []string

	tagSet TagSet
}

// HasTag reports whether the trail carries tag (case-sensitive).
func (t *Trail) HasTag(tag string) bool {
	return t.tagSet.Has(tag)
}

// TagSet returns the trail's tags as a set. Callers must not modify it.
func (t *Trail) TagSet() TagSet {
	return t.tagSet
}

// Catalog is the immutable, preprocessed set of trails. It is safe for
// concurrent readers once constructed.
type Catalog struct {
	trails []*Trail
	byName map[string]*Trail
}

func newCatalog(trails []*Trail) *Catalog {
	c := &Catalog{
		trails: trails,
		byName: make(map[string]*Trail, len(trails)),
	}
	for i, t := range trails {
		t.Position = i
		if _, ok := c.byName[t.Name]; !ok {
			c.byName[t.Name] = t
		}
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.trails)
}

// Trails returns the trails in catalog order. The slice is a copy; the
// trails themselves are shared.
func (c *Catalog) Trails() []*Trail {
	if c == nil {
		return []*Trail{}
	}
	out := make([]*Trail, len(c.trails))
	copy(out, c.trails)
	return out
}

func (c *Catalog) At(i int) *Trail {
	if c == nil || i < 0 || i >= len(c.trails) {
		return nil
	}
	return c.trails[i]
}

// ByName returns the first trail with the exact name, or nil.
func (c *Catalog) ByName(name string) *Trail {
	if c == nil {
		return nil
	}
	return c.byName[name]
}

// Page returns a 1-based page of trails in catalog order.
func (c *Catalog) Page(page, pageSize int) []*Trail {
	if c == nil || page < 1 || pageSize < 1 {
		return []*Trail{}
	}
	// compare page counts first; (page-1)*pageSize can overflow
	pages := len(c.trails) / pageSize
	if len(c.trails)%pageSize != 0 {
		pages++
	}
	if page-1 >= pages {
		return []*Trail{}
	}
	offset := (page - 1) * pageSize
	end := len(c.trails)
	if pageSize < end-offset {
		end = offset + pageSize
	}
	out := make([]*Trail, end-offset)
	copy(out, c.trails[offset:end])
	return out
}

// Preprocess builds a catalog from raw rows, failing on the first row whose
// length, rating or review count cannot be coerced.
func Preprocess(rows []RawTrailRow) (*Catalog, error) {
	trails := make([]*Trail, 0, len(rows))
	for i, row := range rows {
		t, err := normalizeRow(i, row)
		if err != nil {
			return nil, err
		}
		trails = append(trails, t)
	}
	return newCatalog(trails), nil
}

// PreprocessLenient builds a catalog from the rows that coerce cleanly and
// returns one *MalformedTrailError per skipped row.
func PreprocessLenient(rows []RawTrailRow) (*Catalog, []error) {
	trails := make([]*Trail, 0, len(rows))
	var skipped []error
	for i, row := range rows {
		t, err := normalizeRow(i, row)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		trails = append(trails, t)
	}
	return newCatalog(trails), skipped
}

// ValidateRow reports the *MalformedTrailError Preprocess would return for
// row at position i, or nil.
func ValidateRow(i int, row RawTrailRow) error {
	_, err := normalizeRow(i, row)
	return err
}

func normalizeRow(i int, row RawTrailRow) (*Trail, error) {
	malformed := func(field, value string, err error) error {
		return &MalformedTrailError{Row: i, Name: row.Name, Field: field, Value: value, Err: err}
	}

	length, err := ParseLength(row.Length)
	if err != nil {
		return nil, malformed("length", row.Length, err)
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(row.Rating), 64)
	if err != nil {
		return nil, malformed("rating", row.Rating, err)
	}
	if rating < 0 || rating > 5 {
		return nil, malformed("rating", row.Rating, ErrRatingOutside)
	}

	reviews, err := parseReviewCount(row.ReviewCount)
	if err != nil {
		return nil, malformed("review_count", row.ReviewCount, err)
	}

	tags := ParseTags(row.Tags)
	return &Trail{
		Name:        row.Name,
		Link:        row.Link,
		Image:       row.Image,
		Difficulty:  strings.TrimSpace(row.Difficulty),
		Rating:      rating,
		ReviewCount: reviews,
		Location:    row.Location,
		LengthKm:    length,
		Description: row.Description,
		Tags:        tags,
		tagSet:      NewTagSet(tags...),
	}, nil
}

var lengthPattern = regexp.MustCompile(`\d*\.?\d+`)

// ParseLength extracts the first number (digits with at most one decimal
// point) from a raw length such as "12.5 km".
func ParseLength(raw string) (float64, error) {
	m := lengthPattern.FindString(raw)
	if m == "" {
		return 0, ErrNoNumber
	}
	return strconv.ParseFloat(m, 64)
}

func parseReviewCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	// exported spreadsheets sometimes write counts as "123.0"
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, ErrNegative
	}
	return int(f), nil
}
