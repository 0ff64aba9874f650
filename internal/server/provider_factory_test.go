package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/cfb-dashboard/internal/config"
	"github.com/preston-bernstein/cfb-dashboard/internal/metrics"
)

func TestProviderFactoryInstrumentsProvider(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	prov := factory.build(config.Config{Provider: config.ProviderFixture})
	if prov == nil {
		t.Fatalf("expected provider")
	}

	if _, err := prov.FetchTeams(context.Background(), 2024); err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if rec.ProviderCalls(config.ProviderFixture) != 1 {
		t.Fatalf("expected one recorded fixture call, got %d", rec.ProviderCalls(config.ProviderFixture))
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("CFBD", nil); got != "cfbd" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic fallback, got %s", got)
	}
}
