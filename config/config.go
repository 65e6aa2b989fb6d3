package config

import "image/color"

// FieldConfig contains particle network physics configuration values
type FieldConfig struct {
	// Seeding
	ParticleCount int
	SpawnRadius   float64 // Max distance from cursor when seeding
	InitialSpeed  float64 // Half-width of the initial velocity range, per axis

	// Cursor attraction
	FarThreshold  float64 // Beyond this distance the strong pull applies
	NearThreshold float64 // At or below this distance no pull applies
	FarPull       float64
	NearPull      float64

	// Inter-particle repulsion
	RepelRadius   float64
	RepelStrength float64 // Divided by distance

	// Velocity multiplier applied every frame
	Damping float64
}

// RenderConfig contains particle network drawing configuration values
type RenderConfig struct {
	Accent color.RGBA // Base hue for edges and nodes (alpha ignored)

	EdgeDistance   float64 // Pairs at or beyond this distance draw nothing
	EdgeMaxOpacity float64 // Opacity of an edge between coincident nodes
	EdgeWidth      float64

	NodeRadius  float64
	NodeOpacity float64
}

// SurfaceConfig contains drawing surface compositing configuration values
type SurfaceConfig struct {
	Opacity      float64 // Opacity of the whole surface over the page
	FadeInFrames int     // Frames to fade the surface in on activation (0 = no fade)
}

// ToggleConfig contains the fx toggle control configuration values
type ToggleConfig struct {
	LabelOn  string
	LabelOff string
	Margin   int // Distance from the bottom-right viewport corner
	Padding  int
	FontSize float64

	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	TextColor       color.RGBA
	HoverColor      color.RGBA
}

// PageConfig contains the page backdrop drawn under and over the surface
type PageConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Subtitle        string
	TitleFontSize   float64
	TextFontSize    float64
	MarginX         float64
	MarginY         float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool  // Draw particle count, cursor and frame info
	Seed    int64 // Fixed random seed for seeding (0 = time based)
}

// Global configuration instances
var C *Config
var Field FieldConfig
var Render RenderConfig
var Surface SurfaceConfig
var Toggle ToggleConfig
var Page PageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan     = color.RGBA{R: 61, G: 245, B: 224, A: 255}
	Ink      = color.RGBA{R: 10, G: 10, B: 15, A: 255}
	Slate    = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	Border   = color.RGBA{R: 42, G: 42, B: 56, A: 255}
	Muted    = color.RGBA{R: 160, G: 160, B: 176, A: 255}
	Headline = color.RGBA{R: 232, G: 232, B: 240, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "netfx",
	}

	Field = FieldConfig{
		ParticleCount: 20,
		SpawnRadius:   350,
		InitialSpeed:  0.25,

		FarThreshold:  50,
		NearThreshold: 15,
		FarPull:       0.15,
		NearPull:      0.01,

		RepelRadius:   35,
		RepelStrength: 0.4,

		Damping: 0.92,
	}

	Render = RenderConfig{
		Accent: Cyan,

		EdgeDistance:   120,
		EdgeMaxOpacity: 0.3,
		EdgeWidth:      1,

		NodeRadius:  2,
		NodeOpacity: 0.6,
	}

	Surface = SurfaceConfig{
		Opacity:      0.8,
		FadeInFrames: 18, // ~0.3s at 60fps
	}

	Toggle = ToggleConfig{
		LabelOn:  "fx: on",
		LabelOff: "fx: off",
		Margin:   24,
		Padding:  8,
		FontSize: 12,

		BackgroundColor: Slate,
		BorderColor:     Border,
		TextColor:       Muted,
		HoverColor:      Cyan,
	}

	Page = PageConfig{
		BackgroundColor: Ink,
		TitleColor:      Headline,
		TextColor:       Muted,
		Title:           "~/blog",
		Subtitle:        "notes on systems, code and whatever else",
		TitleFontSize:   32,
		TextFontSize:    14,
		MarginX:         64,
		MarginY:         96,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
		Seed:    0,
	}
}
