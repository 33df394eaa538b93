package modes

import (
	"testing"
	"time"

	"github.com/vovakirdan/huehunt/internal/daily"
	"github.com/vovakirdan/huehunt/internal/registry"
)

func TestBuiltinModesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "daily"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
}

func TestLookupUnknownMode(t *testing.T) {
	if _, err := registry.Lookup("nope"); err == nil {
		t.Error("Lookup(nope) returned no error")
	}
	if registry.Exists("nope") {
		t.Error("Exists(nope) = true")
	}
}

func TestClassicSeedHonorsRequest(t *testing.T) {
	m, err := registry.Lookup("classic")
	if err != nil {
		t.Fatalf("Lookup(classic): %v", err)
	}

	now := time.Now()
	if got := m.Seed(now, 1234); got != 1234 {
		t.Errorf("seed = %d, want requested 1234", got)
	}
	if got := m.Seed(now, 0); got == 0 {
		t.Error("seed = 0 without a request, want a time-derived value")
	}
}

func TestDailySeedTracksDateOnly(t *testing.T) {
	m, err := registry.Lookup("daily")
	if err != nil {
		t.Fatalf("Lookup(daily): %v", err)
	}

	at := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	if got, want := m.Seed(at, 777), daily.Seed(at); got != want {
		t.Errorf("seed = %d, want date-derived %d (requested seed must be ignored)", got, want)
	}
}

func TestListSortedByID(t *testing.T) {
	list := registry.List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d modes, want at least 2", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
