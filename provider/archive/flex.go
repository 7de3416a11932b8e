package archive

import (
	"encoding/json"
	"strings"
)

// flexString absorbs archive.org metadata fields that are sometimes a plain
// string and sometimes an array of strings.
type flexString []string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = flexString{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*f = flexString(many)
	return nil
}

// String joins all values for display.
func (f flexString) String() string {
	return strings.Join(f, ", ")
}

// First returns the first value or an empty string.
func (f flexString) First() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
