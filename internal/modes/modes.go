// Package modes registers the built-in ways to play. Importing it for
// side effects makes the modes discoverable through the registry.
package modes

import (
	"time"

	"github.com/vovakirdan/huehunt/internal/daily"
	"github.com/vovakirdan/huehunt/internal/registry"
)

func init() {
	registry.Register(registry.Mode{
		ID:      "classic",
		Title:   "Hue Hunt",
		Tagline: "Fresh colors every run",
		Seed: func(now time.Time, requested int64) int64 {
			if requested != 0 {
				return requested
			}
			return now.UnixNano()
		},
	})

	registry.Register(registry.Mode{
		ID:      "daily",
		Title:   "Hue Hunt Daily",
		Tagline: "One shared puzzle sequence per day",
		Seed: func(now time.Time, _ int64) int64 {
			return daily.Seed(now)
		},
	})
}
