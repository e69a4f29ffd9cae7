// Package country resolves ISO 3166 country codes to flag emoji.
package country

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a code is absent from the table.
var ErrNotFound = errors.New("country not found")

// Unknown is the flag shown when a code cannot be resolved.
const Unknown = "🏴‍☠️"

// Data describes a single country entry.
type Data struct {
	Name    string
	Title   string
	Emoji   string
	Unicode string
}

// Lookup returns the entry for an uppercase two-letter code.
func Lookup(code string) (Data, bool) {
	d, ok := table[code]
	return d, ok
}

// Get returns the entry for code or an error wrapping ErrNotFound.
// Codes are matched exactly, callers must uppercase them.
func Get(code string) (Data, error) {
	d, ok := table[code]
	if !ok {
		return Data{}, fmt.Errorf("country code %s: %w", code, ErrNotFound)
	}
	return d, nil
}

// Emoji returns only the flag emoji for code.
func Emoji(code string) (string, error) {
	d, err := Get(code)
	if err != nil {
		return "", err
	}
	return d.Emoji, nil
}

// Len reports the number of known codes.
func Len() int {
	return len(table)
}
