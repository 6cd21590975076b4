package service

import (
	"context"
	"testing"

	"anoa.com/ramadhanpitstop/internal/model"
	"github.com/google/uuid"
)

func TestShuffledReturnsEveryCommentEscaped(t *testing.T) {
	repo := &fakeCommentRepo{comments: []model.Comment{
		{ID: uuid.New(), Content: "semangat semua"},
		{ID: uuid.New(), Content: `salam <3 "pit stop"`},
		{ID: uuid.New(), Content: "sampai ketemu"},
	}}

	svc := NewCommentService(repo)
	comments, err := svc.Shuffled(context.Background())
	if err != nil {
		t.Fatalf("shuffle failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}

	seen := make(map[string]bool)
	for _, c := range comments {
		seen[c.ID.String()] = true
	}
	if len(seen) != 3 {
		t.Fatal("shuffle must not drop or duplicate comments")
	}

	for _, c := range comments {
		if c.Content == `salam <3 "pit stop"` {
			t.Fatal("content must be escaped on the way out")
		}
	}
}
