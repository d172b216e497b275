package handler

import (
	"strings"
	"testing"
)

func TestValidator_JoinsFieldMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Email: "not-an-email", Password: "abc"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	msg := err.Error()
	for _, want := range []string{
		"name is required",
		"email must be a valid email",
		"password must be at least 6 characters",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing from %q", want, msg)
		}
	}
}

func TestValidator_MaxLength(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&articleRequest{
		Title:    strings.Repeat("x", 151),
		Content:  "body",
		Category: "family",
		Date:     "2026-08-28",
	})
	if err == nil {
		t.Fatalf("expected validation failure for oversized title")
	}
	if !strings.Contains(err.Error(), "title must be at most 150 characters") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestValidator_AcceptsValidPayload(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&registerRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	}); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
