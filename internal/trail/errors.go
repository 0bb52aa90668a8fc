package trail

import "fmt"

// MalformedTrailError reports a raw catalog row whose numeric fields could
// not be coerced. Row is the 0-based position in the input.
type MalformedTrailError struct {
	Row   int
	Name  string
	Field string
	Value string
	Err   error
}

func (e *MalformedTrailError) Error() string {
	msg := fmt.Sprintf("malformed trail at row %d (%q): invalid %s %q", e.Row, e.Name, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedTrailError) Unwrap() error { return e.Err }
