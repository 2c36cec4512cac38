package console_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/thegardencompany/storefront/internal/logging/console"
	"github.com/thegardencompany/storefront/pkg/interfaces"
)

func newBufferedLogger(minLevel console.Level) (*bytes.Buffer, console.Options) {
	var buf bytes.Buffer
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	opts := console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	}
	return &buf, opts
}

func TestConsoleLoggerWritesStructuredEntry(t *testing.T) {
	buf, opts := newBufferedLogger(console.LevelDebug)
	provider := console.NewProvider(opts)

	logger := provider.GetLogger("storefront.mdx")
	logger.Warn("skipping pillar with malformed metadata",
		"path", "plants/index.mdx",
		"error", errors.New("yaml: mapping values"),
	)

	got := strings.TrimSpace(buf.String())
	want := `2025-06-01T10:30:00Z WARN skipping pillar with malformed metadata error="yaml: mapping values" logger=storefront.mdx path=plants/index.mdx`
	if got != want {
		t.Fatalf("unexpected entry:\n got: %s\nwant: %s", got, want)
	}
}

func TestConsoleLoggerFiltersBelowMinLevel(t *testing.T) {
	buf, opts := newBufferedLogger(console.LevelWarn)
	provider := console.NewProvider(opts)

	logger := provider.GetLogger("storefront.catalog")
	logger.Debug("debug entry")
	logger.Info("info entry")
	if buf.Len() != 0 {
		t.Fatalf("entries below min level leaked: %s", buf.String())
	}

	logger.Error("list products failed", "error", errors.New("db down"))
	if !strings.Contains(buf.String(), "ERROR list products failed") {
		t.Fatalf("expected error entry, got: %s", buf.String())
	}
}

func TestConsoleLoggerMergesFields(t *testing.T) {
	buf, opts := newBufferedLogger(console.LevelDebug)
	provider := console.NewProvider(opts)

	logger := provider.GetLogger("storefront.resources")
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		t.Fatalf("expected logger to implement interfaces.FieldsLogger, got %T", logger)
	}
	child := fl.WithFields(map[string]any{"module": "storefront.resources"})
	child.Info("listing pillars", "count", 3)

	got := strings.TrimSpace(buf.String())
	for _, fragment := range []string{"module=storefront.resources", "count=3", "logger=storefront.resources"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("missing %q in entry: %s", fragment, got)
		}
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	cases := map[string]console.Level{
		"trace":   console.LevelTrace,
		"warning": console.LevelWarn,
		"ERROR":   console.LevelError,
		"":        console.LevelInfo,
		"verbose": console.LevelInfo,
	}
	for name, want := range cases {
		if got := console.ParseLevel(name); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
