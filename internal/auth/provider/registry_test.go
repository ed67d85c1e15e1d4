package provider

import (
	"context"
	"testing"

	"github.com/Santosh7017/NoteBook/internal/auth"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) AuthCodeURL(_, _ string) string { return "https://example.com/auth" }

func (s *stubProvider) ExchangeCode(_ context.Context, _, _ string) (*auth.Identity, error) {
	return &auth.Identity{Provider: s.name}, nil
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(&stubProvider{name: "google"})

	p, err := registry.Get("google")
	if err != nil {
		t.Fatalf("Get(google) error = %v", err)
	}
	if p.Name() != "google" {
		t.Errorf("Name() = %q, want google", p.Name())
	}

	if _, err := registry.Get("github"); err == nil {
		t.Error("Get(github) should fail for unregistered provider")
	}
}
