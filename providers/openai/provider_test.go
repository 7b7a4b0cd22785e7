package openai

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestID(t *testing.T) {
	p := New("test-key")

	if p.ID() != "openai" {
		t.Errorf("ID() = %q, want %q", p.ID(), "openai")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnvVar, "sk-env-key")

	p, err := NewFromEnv(WithOrgID("org-1"))
	if err != nil {
		t.Fatalf("NewFromEnv() error = %v", err)
	}
	if p.config.APIKey.Expose() != "sk-env-key" {
		t.Errorf("APIKey = %q, want sk-env-key", p.config.APIKey.Expose())
	}
	if p.config.OrgID != "org-1" {
		t.Errorf("OrgID = %q, want org-1", p.config.OrgID)
	}
}

func TestNewFromEnvMissing(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnvVar, "")

	_, err := NewFromEnv()
	if !errors.Is(err, ErrAPIKeyNotFound) {
		t.Errorf("NewFromEnv() error = %v, want ErrAPIKeyNotFound", err)
	}
}

func TestConfigDoesNotLeakKey(t *testing.T) {
	p := New("sk-very-secret")

	if got := fmt.Sprintf("%+v", p.config); strings.Contains(got, "sk-very-secret") {
		t.Errorf("formatted config leaked key: %s", got)
	}
}

func TestBuildHeadersAuth(t *testing.T) {
	p := New("sk-test-key-123")
	headers := p.buildHeaders()

	if auth := headers.Get("Authorization"); auth != "Bearer sk-test-key-123" {
		t.Errorf("Authorization = %q, want %q", auth, "Bearer sk-test-key-123")
	}
	if ct := headers.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}
}

func TestBuildHeadersWithoutOptionals(t *testing.T) {
	p := New("test-key")
	headers := p.buildHeaders()

	if headers.Get("OpenAI-Organization") != "" {
		t.Error("OpenAI-Organization should be empty when not configured")
	}
	if headers.Get("OpenAI-Project") != "" {
		t.Error("OpenAI-Project should be empty when not configured")
	}
}

func TestBuildHeadersAllOptions(t *testing.T) {
	p := New("test-key",
		WithOrgID("my-org"),
		WithProjectID("my-project"),
		WithHeader("X-Trace", "trace-123"),
	)
	headers := p.buildHeaders()

	checks := map[string]string{
		"Authorization":       "Bearer test-key",
		"Content-Type":        "application/json",
		"OpenAI-Organization": "my-org",
		"OpenAI-Project":      "my-project",
		"X-Trace":             "trace-123",
	}

	for key, want := range checks {
		if got := headers.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}
