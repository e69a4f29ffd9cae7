package domain

import (
	"fmt"
	"time"
)

// DateLayout is the timestamp format used by the stats page and the watermark file.
const DateLayout = "2006-01-02 15:04:05"

// ChatMessage represents one row of the game server chat log
type ChatMessage struct {
	Map         string `json:"map"`
	Date        string `json:"date"`
	Text        string `json:"text"`
	UserName    string `json:"user_name"`
	UserLink    string `json:"user_link"`
	UserCountry string `json:"user_country"`
}

// Time parses Date using DateLayout.
func (m ChatMessage) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, m.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid message date %q: %w", m.Date, err)
	}
	return t, nil
}

// After reports whether the message is strictly newer than t.
// Messages with an unparsable date are never newer.
func (m ChatMessage) After(t time.Time) bool {
	mt, err := m.Time()
	if err != nil {
		return false
	}
	return mt.After(t)
}
