package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"l4d-chat-relay/internal/domain"
)

func TestFormatMessage(t *testing.T) {
	msg := domain.ChatMessage{
		Map:         "c1m1_hotel",
		Date:        "2024-01-02 10:00:00",
		Text:        "hello",
		UserName:    "Ellis",
		UserLink:    "https://stats.example.com/stats/hlstats.php?mode=playerinfo&player=7",
		UserCountry: "🇺🇸",
	}

	want := "🇺🇸 <a href=\"https://stats.example.com/stats/hlstats.php?mode=playerinfo&amp;player=7\">Ellis</a>\n\n" +
		"💬 <code>hello</code>\n\n" +
		"<tg-spoiler>🗺 c1m1_hotel</tg-spoiler>\n" +
		"<tg-spoiler>📅 2024-01-02 10:00:00</tg-spoiler>"

	assert.Equal(t, want, FormatMessage(msg))
}

func TestFormatMessage_EscapesUserInput(t *testing.T) {
	msg := domain.ChatMessage{
		Map:         "<map>",
		Date:        "2024-01-02 10:00:00",
		Text:        "</code><b>pwn</b> & co",
		UserName:    "<script>",
		UserLink:    `https://x/"onmouseover`,
		UserCountry: "🏴‍☠️",
	}

	got := FormatMessage(msg)

	assert.Contains(t, got, "&lt;script&gt;</a>")
	assert.Contains(t, got, "<code>&lt;/code&gt;&lt;b&gt;pwn&lt;/b&gt; &amp; co</code>")
	assert.Contains(t, got, "🗺 &lt;map&gt;")
	assert.Contains(t, got, `href="https://x/&#34;onmouseover"`)
	assert.NotContains(t, got, "<b>")
}
