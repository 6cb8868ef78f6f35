package service

import (
	"context"
	"strings"
	"testing"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
)

func TestSubmitSanitizesContent(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, nil, nil)

	message, err := svc.Submit(context.Background(), dto.MessageInput{
		Name:    "Budi<script>alert(1)</script>",
		Content: "Alhamdulillah <b>bagus</b> sekali <img src=x onerror=alert(1)>",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if strings.Contains(message.Name, "<script>") {
		t.Fatalf("name not sanitized: %q", message.Name)
	}
	if strings.Contains(message.Content, "<") {
		t.Fatalf("content not sanitized: %q", message.Content)
	}
}

func TestSubmitDefaultsUnpublished(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo(), nil, nil)

	message, err := svc.Submit(context.Background(), dto.MessageInput{
		Name:    "Budi",
		Content: "Terima kasih",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if message.IsPublished {
		t.Fatal("message published without auto_publish")
	}
}

func TestSubmitHonorsAutoPublish(t *testing.T) {
	settingsRepo := newFakeSettingsRepo()
	settingsRepo.message = &model.MessageSettings{ID: 1, AutoPublish: true, MaxPerPage: 10}
	settings := NewSettingsService(settingsRepo)

	svc := NewMessageService(newFakeMessageRepo(), settings, nil)

	message, err := svc.Submit(context.Background(), dto.MessageInput{
		Name:    "Budi",
		Content: "Terima kasih",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !message.IsPublished {
		t.Fatal("auto_publish ignored")
	}
}

func TestListPublishedHidesUnpublished(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, nil, nil)

	if _, err := svc.Submit(context.Background(), dto.MessageInput{Name: "Budi", Content: "Bagus"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	published, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(published) != 0 {
		t.Fatalf("unpublished message leaked to public list: %+v", published)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("admin list has %d messages, want 1", len(all))
	}
}

func TestSetPublishedUnknownMessage(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo(), nil, nil)

	if _, err := svc.SetPublished(context.Background(), "00000000-0000-0000-0000-000000000001", true); err == nil {
		t.Fatal("expected not found error")
	}
}
