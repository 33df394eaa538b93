// Package config provides YAML-based presentation-theme loading for the
// terminal UI. Game rules (grid size, clock, difficulty curve) are fixed
// engine constants and are not configurable.
package config

// ThemeConfig contains all presentation settings for the board and HUD.
type ThemeConfig struct {
	Board BoardTheme `yaml:"board"`
	HUD   HUDTheme   `yaml:"hud"`
}

// BoardTheme defines swatch grid geometry, in terminal cells.
type BoardTheme struct {
	SwatchWidth  int `yaml:"swatch_width"`  // columns per swatch
	SwatchHeight int `yaml:"swatch_height"` // rows per swatch
	GapX         int `yaml:"gap_x"`         // columns between swatches
	GapY         int `yaml:"gap_y"`         // rows between swatches
}

// HUDTheme defines which status elements are drawn above the board.
type HUDTheme struct {
	ShowTimerBar  bool `yaml:"show_timer_bar"`
	TimerBarWidth int  `yaml:"timer_bar_width"`
	ShowBest      bool `yaml:"show_best"`
}
