package testutil

import (
	"fmt"
	"html"
	"strings"
	"sync/atomic"
	"time"

	"l4d-chat-relay/internal/domain"
)

var idCounter atomic.Int64

func nextID() int64 {
	return idCounter.Add(1)
}

// ChatRow is one data row of a synthetic stats chat page
type ChatRow struct {
	Date   string
	Player string
	Href   string
	Flag   string
	Text   string
	Server string
	Map    string
}

// NewChatRow creates a row with sensible defaults
func NewChatRow(opts ...func(*ChatRow)) ChatRow {
	id := nextID()
	row := ChatRow{
		Date:   "2024-01-02 10:00:00",
		Player: fmt.Sprintf("player%d", id),
		Href:   fmt.Sprintf("/stats/hlstats.php?mode=playerinfo&player=%d", id),
		Flag:   "hlstatsimg/flags/ru.gif",
		Text:   fmt.Sprintf("message %d", id),
		Server: "Coop #1",
		Map:    "c1m1_hotel",
	}
	for _, opt := range opts {
		opt(&row)
	}
	return row
}

// WithDate sets the row date
func WithDate(date string) func(*ChatRow) {
	return func(r *ChatRow) {
		r.Date = date
	}
}

// WithPlayer sets the player name and profile link
func WithPlayer(name, href string) func(*ChatRow) {
	return func(r *ChatRow) {
		r.Player = name
		r.Href = href
	}
}

// WithFlag sets the country image source
func WithFlag(src string) func(*ChatRow) {
	return func(r *ChatRow) {
		r.Flag = src
	}
}

// WithText sets the chat text
func WithText(text string) func(*ChatRow) {
	return func(r *ChatRow) {
		r.Text = text
	}
}

// WithMap sets the map name
func WithMap(m string) func(*ChatRow) {
	return func(r *ChatRow) {
		r.Map = m
	}
}

// ChatPage renders rows as an HLstatsX chat page, header row first.
// Cell values are padded with whitespace the way the real page is.
func ChatPage(rows ...ChatRow) string {
	var b strings.Builder
	b.WriteString("<html><head><title>Chat</title></head><body>\n")
	b.WriteString(`<table class="data-table">` + "\n")
	b.WriteString("<tr class=\"data-table-head\"><td>Date</td><td>Player</td><td>Message</td><td>Server</td><td>Map</td></tr>\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr class=\"bg1\">\n"+
			"\t<td>\n\t\t%s\n\t</td>\n"+
			"\t<td><img src=\"%s\" alt=\"flag\" /> <a href=\"%s\">\n\t\t%s\n\t</a></td>\n"+
			"\t<td>  %s  </td>\n"+
			"\t<td>%s</td>\n"+
			"\t<td> %s </td>\n"+
			"</tr>\n",
			html.EscapeString(r.Date),
			html.EscapeString(r.Flag),
			html.EscapeString(r.Href),
			html.EscapeString(r.Player),
			html.EscapeString(r.Text),
			html.EscapeString(r.Server),
			html.EscapeString(r.Map))
	}
	b.WriteString("</table>\n</body></html>\n")
	return b.String()
}

// NewTestChatMessage creates a parsed chat message
func NewTestChatMessage(opts ...func(*domain.ChatMessage)) domain.ChatMessage {
	id := nextID()
	msg := domain.ChatMessage{
		Map:         "c1m1_hotel",
		Date:        time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC).Format(domain.DateLayout),
		Text:        fmt.Sprintf("message %d", id),
		UserName:    fmt.Sprintf("player%d", id),
		UserLink:    fmt.Sprintf("https://stats.example.com/stats/hlstats.php?mode=playerinfo&player=%d", id),
		UserCountry: "🇷🇺",
	}
	for _, opt := range opts {
		opt(&msg)
	}
	return msg
}

// WithMessageDate sets the message date
func WithMessageDate(date string) func(*domain.ChatMessage) {
	return func(m *domain.ChatMessage) {
		m.Date = date
	}
}

// WithMessageText sets the message text
func WithMessageText(text string) func(*domain.ChatMessage) {
	return func(m *domain.ChatMessage) {
		m.Text = text
	}
}

// NewTestChatMessages returns messages for the given dates, in the given order
func NewTestChatMessages(dates ...string) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, len(dates))
	for _, d := range dates {
		messages = append(messages, NewTestChatMessage(WithMessageDate(d)))
	}
	return messages
}
