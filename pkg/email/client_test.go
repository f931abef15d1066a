package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSend_Disabled(t *testing.T) {
	client, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = client.Send(context.Background(), Message{
		To:       []string{"a@example.com"},
		Subject:  "s",
		TextBody: "b",
	})
	if !errors.As(err, &ErrDisabled{}) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestBuildMessage_Validation(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
	}{
		{
			name: "missing from",
			from: "",
			msg:  Message{To: []string{"a@example.com"}, Subject: "s", TextBody: "b"},
		},
		{
			name: "no recipients",
			from: "noreply@example.com",
			msg:  Message{Subject: "s", TextBody: "b"},
		},
		{
			name: "empty subject",
			from: "noreply@example.com",
			msg:  Message{To: []string{"a@example.com"}, Subject: "  ", TextBody: "b"},
		},
		{
			name: "empty body",
			from: "noreply@example.com",
			msg:  Message{To: []string{"a@example.com"}, Subject: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			var invalid ErrInvalidMessage
			if !errors.As(err, &invalid) {
				t.Errorf("expected ErrInvalidMessage, got %v", err)
			}
		})
	}
}

func TestBuildMessage_Valid(t *testing.T) {
	msg, err := buildMessage("noreply@example.com", Message{
		To:       []string{" a@example.com ", ""},
		Subject:  "Resumo diário",
		TextBody: "texto",
		HTMLBody: "<p>html</p>",
	})
	if err != nil {
		t.Fatalf("buildMessage failed: %v", err)
	}
	to := msg.GetHeader("To")
	if len(to) != 1 || to[0] != "a@example.com" {
		t.Errorf("addresses should be trimmed and empties dropped, got %v", to)
	}
}

func TestBuildDailyDigestEmail(t *testing.T) {
	data := DigestEmailData{
		Name:  "Ana",
		Email: "ana@example.com",
		Items: []DigestItem{
			{Title: "Tarefa <script>", Message: "vence amanhã", CreatedAt: time.Now()},
			{Title: "Comentário", Message: "novo comentário", CreatedAt: time.Now()},
		},
		AppName: "Gerenciador",
		BaseURL: "https://app.example.com/notifications",
	}

	msg := BuildDailyDigestEmail(data)

	if len(msg.To) != 1 || msg.To[0] != "ana@example.com" {
		t.Errorf("wrong recipient: %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "2") {
		t.Errorf("subject should carry the item count, got %q", msg.Subject)
	}
	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Error("item titles must be HTML-escaped")
	}
	if !strings.Contains(msg.HTMLBody, "https://app.example.com/notifications") {
		t.Error("digest should link back to the app")
	}
	if !strings.Contains(msg.TextBody, "vence amanhã") {
		t.Error("text body should list the items")
	}
}
