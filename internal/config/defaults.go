package config

import (
	_ "embed"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultTheme returns the default presentation theme.
// Kept in sync with defaults/theme.yaml as a last-resort fallback.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Board: BoardTheme{
			SwatchWidth:  7,
			SwatchHeight: 3,
			GapX:         1,
			GapY:         1,
		},
		HUD: HUDTheme{
			ShowTimerBar:  true,
			TimerBarWidth: 36,
			ShowBest:      true,
		},
	}
}
