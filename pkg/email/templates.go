package email

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// DigestItem is one notification line inside a daily digest email.
type DigestItem struct {
	Title     string
	Message   string
	CreatedAt time.Time
}

// DigestEmailData contains the data needed to render a daily digest.
type DigestEmailData struct {
	Name    string
	Email   string
	Items   []DigestItem
	AppName string
	BaseURL string
}

// BuildDailyDigestEmail renders the daily notification summary sent to each
// active user with unemailed notifications.
func BuildDailyDigestEmail(data DigestEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Gerenciador de Projetos"
	}

	name := data.Name
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("%s: %d new notification(s)", appName, len(data.Items))

	var htmlItems strings.Builder
	var textItems strings.Builder
	for _, it := range data.Items {
		fmt.Fprintf(&htmlItems,
			`<li style="margin-bottom:8px"><strong>%s</strong><br/>%s<br/><span style="color:#888;font-size:12px">%s</span></li>`,
			html.EscapeString(it.Title),
			html.EscapeString(it.Message),
			it.CreatedAt.Format("02 Jan 2006 15:04"),
		)
		fmt.Fprintf(&textItems, "- %s: %s (%s)\n",
			it.Title, it.Message, it.CreatedAt.Format("02 Jan 2006 15:04"))
	}

	link := data.BaseURL
	if link == "" {
		link = "/notifications"
	}

	htmlBody := fmt.Sprintf(`
<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h2>%s</h2>
  <p>Hi %s, here is a summary of what happened since your last digest:</p>
  <ul style="list-style:none;padding:0">%s</ul>
  <p><a href="%s">Open your notifications</a></p>
</div>`,
		html.EscapeString(appName),
		html.EscapeString(name),
		htmlItems.String(),
		link,
	)

	textBody := fmt.Sprintf("Hi %s,\n\nYour %s notification summary:\n\n%s\nOpen your notifications: %s\n",
		name, appName, textItems.String(), link)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
