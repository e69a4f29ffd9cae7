package hlstats

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"l4d-chat-relay/internal/country"
	"l4d-chat-relay/internal/domain"
)

const (
	tableSelector = "table.data-table"

	// cell indexes within a chat row
	colDate = 0
	colText = 2
	colMap  = 4
	minCols = 5
)

// ParseError describes a page that does not have the expected chat table layout.
// Row is the 1-based data row, or 0 when the table itself is missing.
type ParseError struct {
	Row    int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error {
	return ErrParseFailed
}

// ParseChat extracts chat messages from the stats page HTML.
// pageURL resolves relative player links. Row order is preserved.
func ParseChat(r io.Reader, pageURL string) ([]domain.ChatMessage, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid page url: %v", err)}
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("failed to read document: %v", err)}
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil, &ParseError{Reason: "chat table not found"}
	}

	rows := table.Find("tr")
	if rows.Length() <= 1 {
		return []domain.ChatMessage{}, nil
	}

	// First row is the header
	messages := make([]domain.ChatMessage, 0, rows.Length()-1)
	var parseErr error
	rows.Slice(1, goquery.ToEnd).EachWithBreak(func(i int, row *goquery.Selection) bool {
		msg, err := parseRow(row, base)
		if err != nil {
			parseErr = &ParseError{Row: i + 1, Reason: err.Error()}
			return false
		}
		messages = append(messages, msg)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return messages, nil
}

func parseRow(row *goquery.Selection, base *url.URL) (domain.ChatMessage, error) {
	cells := row.Find("td")
	if cells.Length() < minCols {
		return domain.ChatMessage{}, fmt.Errorf("expected at least %d cells, got %d", minCols, cells.Length())
	}

	link := row.Find("a").First()
	href, ok := link.Attr("href")
	if !ok {
		return domain.ChatMessage{}, errors.New("missing player link")
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("invalid player link %q: %w", href, err)
	}

	src, ok := row.Find("img").First().Attr("src")
	if !ok {
		return domain.ChatMessage{}, errors.New("missing country image")
	}

	flag, err := country.Emoji(countryCode(src))
	if errors.Is(err, country.ErrNotFound) {
		flag = country.Unknown
	}

	date := strings.TrimSpace(cells.Eq(colDate).Text())
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("invalid date %q", date)
	}

	return domain.ChatMessage{
		Map:         strings.TrimSpace(cells.Eq(colMap).Text()),
		Date:        date,
		Text:        strings.TrimSpace(cells.Eq(colText).Text()),
		UserName:    strings.TrimSpace(link.Text()),
		UserLink:    base.ResolveReference(ref).String(),
		UserCountry: flag,
	}, nil
}

// countryCode turns ".../flags/ru.gif" into "RU".
func countryCode(src string) string {
	name := src[strings.LastIndex(src, "/")+1:]
	code, _, _ := strings.Cut(name, ".")
	return strings.ToUpper(code)
}
