package relay

import (
	"html"
	"strings"

	"l4d-chat-relay/internal/domain"
)

// FormatMessage renders msg as a Telegram HTML notification.
func FormatMessage(msg domain.ChatMessage) string {
	var b strings.Builder

	b.WriteString(msg.UserCountry)
	b.WriteString(` <a href="`)
	b.WriteString(html.EscapeString(msg.UserLink))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(msg.UserName))
	b.WriteString("</a>\n\n")

	b.WriteString("💬 <code>")
	b.WriteString(html.EscapeString(msg.Text))
	b.WriteString("</code>\n\n")

	b.WriteString("<tg-spoiler>🗺 ")
	b.WriteString(html.EscapeString(msg.Map))
	b.WriteString("</tg-spoiler>\n")

	b.WriteString("<tg-spoiler>📅 ")
	b.WriteString(html.EscapeString(msg.Date))
	b.WriteString("</tg-spoiler>")

	return b.String()
}
