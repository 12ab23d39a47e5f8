// Package config loads the optional TOML tuning file. Every field has a
// default, so a missing file or a partial one is fine; unknown keys are not.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"heartcatch/internal/catch"
	"heartcatch/internal/gamemode"
	"heartcatch/internal/geom"
	"heartcatch/internal/proposal"
)

type Config struct {
	Surface  Surface  `toml:"surface"`
	Catch    Catch    `toml:"catch"`
	Proposal Proposal `toml:"proposal"`
	Confetti Confetti `toml:"confetti"`
	Window   Window   `toml:"window"`
}

type Surface struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Catch struct {
	WinScore     int     `toml:"win_score"`
	SpawnEvery   int     `toml:"spawn_every"`
	HeartSpeed   float64 `toml:"heart_speed"`
	HeartSize    float64 `toml:"heart_size"`
	Smoothing    float64 `toml:"smoothing"`
	PlayerWidth  float64 `toml:"player_width"`
	PlayerHeight float64 `toml:"player_height"`
	PlayerOffset float64 `toml:"player_offset"`
	PlayerSpeed  float64 `toml:"player_speed"`
	PlayerColor  string  `toml:"player_color"`
}

type Proposal struct {
	ButtonWidth  float64  `toml:"button_width"`
	ButtonHeight float64  `toml:"button_height"`
	Gap          float64  `toml:"gap"`
	SafetyMargin float64  `toml:"safety_margin"`
	MaxAttempts  int      `toml:"max_attempts"`
	FadeOut      Duration `toml:"fade_out"`
	Entrance     Duration `toml:"entrance"`
}

type Confetti struct {
	Count int `toml:"count"`
}

type Window struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"`
	TPS   int     `toml:"tps"`
	Seed  int64   `toml:"seed"` // 0 picks a time-based seed
}

// Duration reads Go duration strings such as "500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func Default() Config {
	s := gamemode.DefaultSettings()
	r := s.Rules
	return Config{
		Surface: Surface{Width: r.Surface.W, Height: r.Surface.H},
		Catch: Catch{
			WinScore:     r.WinScore,
			SpawnEvery:   r.SpawnEvery,
			HeartSpeed:   r.HeartSpeed,
			HeartSize:    r.HeartSize,
			Smoothing:    r.Smoothing,
			PlayerWidth:  r.PlayerWidth,
			PlayerHeight: r.PlayerHeight,
			PlayerOffset: r.PlayerOffset,
			PlayerSpeed:  r.PlayerSpeed,
			PlayerColor:  hexColor(r.PlayerColor),
		},
		Proposal: Proposal{
			ButtonWidth:  s.Board.Button.W,
			ButtonHeight: s.Board.Button.H,
			Gap:          s.Board.Gap,
			SafetyMargin: s.Board.Margin,
			MaxAttempts:  s.Board.Attempts,
			FadeOut:      Duration{s.FadeOut},
			Entrance:     Duration{s.Entrance},
		},
		Confetti: Confetti{Count: s.Confetti},
		Window: Window{
			Title: "Heart Catch",
			Scale: 1,
			TPS:   60,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return finish(cfg, md)
}

// Parse is Load for an in-memory document.
func Parse(doc string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, k.String())
		}
		sort.Strings(names)
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(names, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("surface.width", c.Surface.Width)
	positive("surface.height", c.Surface.Height)
	positive("catch.win_score", float64(c.Catch.WinScore))
	positive("catch.spawn_every", float64(c.Catch.SpawnEvery))
	positive("catch.heart_speed", c.Catch.HeartSpeed)
	positive("catch.heart_size", c.Catch.HeartSize)
	positive("catch.player_width", c.Catch.PlayerWidth)
	positive("catch.player_height", c.Catch.PlayerHeight)
	positive("proposal.button_width", c.Proposal.ButtonWidth)
	positive("proposal.button_height", c.Proposal.ButtonHeight)
	positive("proposal.max_attempts", float64(c.Proposal.MaxAttempts))
	positive("window.scale", c.Window.Scale)
	positive("window.tps", float64(c.Window.TPS))

	if c.Catch.Smoothing <= 0 || c.Catch.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("catch.smoothing must be in (0,1], got %v", c.Catch.Smoothing))
	}
	if c.Catch.PlayerWidth >= c.Surface.Width {
		errs = append(errs, fmt.Errorf("catch.player_width %v does not fit surface width %v", c.Catch.PlayerWidth, c.Surface.Width))
	}
	if c.Catch.HeartSize >= c.Surface.Width {
		errs = append(errs, fmt.Errorf("catch.heart_size %v does not fit surface width %v", c.Catch.HeartSize, c.Surface.Width))
	}
	if c.Catch.PlayerOffset <= 0 || c.Catch.PlayerOffset > c.Surface.Height {
		errs = append(errs, fmt.Errorf("catch.player_offset must be in (0,%v], got %v", c.Surface.Height, c.Catch.PlayerOffset))
	}
	if c.Catch.PlayerSpeed < 0 {
		errs = append(errs, fmt.Errorf("catch.player_speed must not be negative, got %v", c.Catch.PlayerSpeed))
	}
	if c.Confetti.Count < 0 {
		errs = append(errs, fmt.Errorf("confetti.count must not be negative, got %d", c.Confetti.Count))
	}
	if c.Proposal.SafetyMargin < 0 {
		errs = append(errs, fmt.Errorf("proposal.safety_margin must not be negative, got %v", c.Proposal.SafetyMargin))
	}
	if _, err := parseHexColor(c.Catch.PlayerColor); err != nil {
		errs = append(errs, fmt.Errorf("catch.player_color: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Settings converts the file layout into what the session runs on. Call it
// on a validated Config.
func (c Config) Settings() gamemode.Settings {
	surface := geom.Size{W: c.Surface.Width, H: c.Surface.Height}
	playerColor, _ := parseHexColor(c.Catch.PlayerColor)

	return gamemode.Settings{
		Rules: catch.Rules{
			Surface:      surface,
			WinScore:     c.Catch.WinScore,
			SpawnEvery:   c.Catch.SpawnEvery,
			HeartSpeed:   c.Catch.HeartSpeed,
			HeartSize:    c.Catch.HeartSize,
			Smoothing:    c.Catch.Smoothing,
			PlayerWidth:  c.Catch.PlayerWidth,
			PlayerHeight: c.Catch.PlayerHeight,
			PlayerOffset: c.Catch.PlayerOffset,
			PlayerSpeed:  c.Catch.PlayerSpeed,
			PlayerColor:  playerColor,
		},
		Board: proposal.Options{
			Viewport: surface,
			Button:   geom.Size{W: c.Proposal.ButtonWidth, H: c.Proposal.ButtonHeight},
			Gap:      c.Proposal.Gap,
			Margin:   c.Proposal.SafetyMargin,
			Attempts: c.Proposal.MaxAttempts,
		},
		Confetti: c.Confetti.Count,
		FadeOut:  c.Proposal.FadeOut.Duration,
		Entrance: c.Proposal.Entrance.Duration,
		Tick:     time.Second / time.Duration(c.Window.TPS),
	}
}

// Rand returns the random source for a run, seeded from window.seed or the
// clock when that is zero.
func (c Config) Rand() *rand.Rand {
	seed := c.Window.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("want #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("want #rrggbb, got %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
