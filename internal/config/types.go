package config

import "time"

// Config is the full Atlas configuration.
type Config struct {
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation"`
	Tabs       []TabConfig      `mapstructure:"tabs" yaml:"tabs" validate:"required,min=1,dive"`
	Sections   []SectionConfig  `mapstructure:"sections" yaml:"sections" validate:"dive"`
	AppGrid    []AppItem        `mapstructure:"app_grid" yaml:"app_grid" validate:"dive"`
	Widgets    []WidgetConfig   `mapstructure:"widgets" yaml:"widgets" validate:"dive"`
	Chat       ChatConfig       `mapstructure:"chat" yaml:"chat"`
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry" yaml:"telemetry"`
}

// NavigationConfig controls the main tab controller.
type NavigationConfig struct {
	InitialPanel string `mapstructure:"initial_panel" yaml:"initial_panel" validate:"required,panel_id"`
	MaxHistory   int    `mapstructure:"max_history" yaml:"max_history" validate:"gte=1,lte=1000"`
}

// TabConfig describes one main tab.
type TabConfig struct {
	ID       string   `mapstructure:"id" yaml:"id" validate:"required,panel_id"`
	Title    string   `mapstructure:"title" yaml:"title" validate:"required"`
	Icon     string   `mapstructure:"icon" yaml:"icon,omitempty"`
	Keywords []string `mapstructure:"keywords" yaml:"keywords,omitempty"`
}

// SectionConfig describes one section of the vision tab.
type SectionConfig struct {
	ID       string   `mapstructure:"id" yaml:"id" validate:"required,panel_id"`
	Title    string   `mapstructure:"title" yaml:"title" validate:"required"`
	Body     string   `mapstructure:"body" yaml:"body,omitempty"`
	Keywords []string `mapstructure:"keywords" yaml:"keywords,omitempty"`
}

// AppItem is one entry of the app grid.
type AppItem struct {
	ID       string   `mapstructure:"id" yaml:"id" validate:"required,panel_id"`
	Name     string   `mapstructure:"name" yaml:"name" validate:"required"`
	Icon     string   `mapstructure:"icon" yaml:"icon,omitempty"`
	Target   string   `mapstructure:"target" yaml:"target" validate:"required,panel_id"`
	Keywords []string `mapstructure:"keywords" yaml:"keywords,omitempty"`
}

// SectionsTab is the tab that hosts the sections.
const SectionsTab = "vision"

// Widget kinds.
const (
	WidgetStatic = "static"
	WidgetGit    = "git"
)

// WidgetConfig describes one home tile.
type WidgetConfig struct {
	ID       string    `mapstructure:"id" yaml:"id" validate:"required,panel_id"`
	Kind     string    `mapstructure:"kind" yaml:"kind" validate:"required,oneof=static git"`
	Title    string    `mapstructure:"title" yaml:"title" validate:"required"`
	Icon     string    `mapstructure:"icon" yaml:"icon,omitempty"`
	Value    string    `mapstructure:"value" yaml:"value,omitempty"`
	Caption  string    `mapstructure:"caption" yaml:"caption,omitempty"`
	Trend    []float64 `mapstructure:"trend" yaml:"trend,omitempty"`
	RepoPath string    `mapstructure:"repo_path" yaml:"repo_path,omitempty"`
}

// ChatConfig drives the simulated conversation on the chat tab.
type ChatConfig struct {
	Peer        string        `mapstructure:"peer" yaml:"peer" validate:"required"`
	Self        string        `mapstructure:"self" yaml:"self" validate:"required"`
	TypingDelay time.Duration `mapstructure:"typing_delay" yaml:"typing_delay" validate:"gte=0"`
	Greeting    []string      `mapstructure:"greeting" yaml:"greeting,omitempty"`
	Replies     []string      `mapstructure:"replies" yaml:"replies" validate:"min=1"`
}

// StorageConfig locates the local key/value store.
type StorageConfig struct {
	Path string `mapstructure:"path" yaml:"path" validate:"required"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" validate:"oneof=trace debug info warn error"`
	File          string `mapstructure:"file" yaml:"file"`
	HumanReadable bool   `mapstructure:"human_readable" yaml:"human_readable"`
}

// TelemetryConfig enables OTLP trace export when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	Insecure    bool   `mapstructure:"insecure" yaml:"insecure"`
}

// TabIDs returns the configured tab identifiers in order.
func (c *Config) TabIDs() []string {
	ids := make([]string, len(c.Tabs))
	for i, tab := range c.Tabs {
		ids[i] = tab.ID
	}
	return ids
}

// SectionIDs returns the configured section identifiers in order.
func (c *Config) SectionIDs() []string {
	ids := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		ids[i] = s.ID
	}
	return ids
}

// Tab returns the tab with the given id.
func (c *Config) Tab(id string) (TabConfig, bool) {
	for _, tab := range c.Tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return TabConfig{}, false
}
