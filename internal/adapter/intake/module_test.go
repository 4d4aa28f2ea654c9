package intake

import (
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/storefront/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{IntakeAddress: "http://example.com", IntakeRateLimit: 2.5}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}
