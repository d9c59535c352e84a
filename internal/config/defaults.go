package config

import (
	"os"
	"path/filepath"
	"time"
)

const appName = "atlas"

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Navigation: NavigationConfig{
			InitialPanel: "home",
			MaxHistory:   50,
		},
		Tabs: []TabConfig{
			{ID: "home", Title: "Home", Icon: "⌂", Keywords: []string{"start", "overview", "widgets"}},
			{ID: "vision", Title: "Vision", Icon: "◎", Keywords: []string{"about", "product", "sections"}},
			{ID: "atlas", Title: "Atlas", Icon: "▦", Keywords: []string{"apps", "grid", "launcher"}},
			{ID: "chat", Title: "Chat", Icon: "✉", Keywords: []string{"messages", "conversation", "talk"}},
		},
		Sections: []SectionConfig{
			{
				ID:       "vision",
				Title:    "Vision",
				Body:     "One place for the tools you use every day.",
				Keywords: []string{"mission"},
			},
			{
				ID:       "features",
				Title:    "Features",
				Body:     "Widgets, an app launcher and a chat that stays out of the way.",
				Keywords: []string{"capabilities"},
			},
			{
				ID:       "pricing",
				Title:    "Pricing",
				Body:     "Free while in preview.",
				Keywords: []string{"cost", "plans"},
			},
		},
		AppGrid: []AppItem{
			{ID: "overview", Name: "Overview", Icon: "⌂", Target: "home", Keywords: []string{"dashboard"}},
			{ID: "roadmap", Name: "Roadmap", Icon: "◎", Target: "vision", Keywords: []string{"plans", "future"}},
			{ID: "messages", Name: "Messages", Icon: "✉", Target: "chat", Keywords: []string{"inbox"}},
		},
		Widgets: []WidgetConfig{
			{
				ID:      "visitors",
				Kind:    WidgetStatic,
				Title:   "Visitors",
				Icon:    "◉",
				Value:   "1,204",
				Caption: "last 7 days",
				Trend:   []float64{3, 5, 4, 8, 7, 9, 12},
			},
			{
				ID:      "uptime",
				Kind:    WidgetStatic,
				Title:   "Uptime",
				Icon:    "▲",
				Value:   "99.9%",
				Caption: "rolling 30 days",
				Trend:   []float64{99.8, 99.9, 99.9, 100, 99.7, 99.9},
			},
			{
				ID:       "repo",
				Kind:     WidgetGit,
				Title:    "Repository",
				Icon:     "⎇",
				RepoPath: ".",
			},
		},
		Chat: ChatConfig{
			Peer:        "Ada",
			Self:        "You",
			TypingDelay: 1200 * time.Millisecond,
			Greeting:    []string{"Hi! Ask me anything about **Atlas**."},
			Replies: []string{
				"Sounds good.",
				"Let me check and get back to you.",
				"Have you tried the *Vision* tab?",
			},
		},
		Storage: StorageConfig{
			Path: filepath.Join(StateDir(), "atlas.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(StateDir(), "atlas.log"),
		},
		Telemetry: TelemetryConfig{
			ServiceName: appName,
		},
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/atlas, falling back to ~/.config/atlas.
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/atlas, falling back to ~/.local/state/atlas.
func StateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	if p := os.Getenv("ATLAS_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

func xdgDir(env, fallback string) string {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, fallback, appName)
}
