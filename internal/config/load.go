package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ATLAS_LOGGING_LEVEL.
const EnvPrefix = "ATLAS"

// Load resolves configuration from defaults, an optional YAML file and ATLAS_
// environment variables, then validates the result. An explicit path must
// exist; the default location may be absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	fillLists(&cfg, Default())

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers scalar defaults only. Lists are filled after decoding
// so a file that lists two tabs does not inherit the remaining default tabs.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("navigation.initial_panel", d.Navigation.InitialPanel)
	v.SetDefault("navigation.max_history", d.Navigation.MaxHistory)
	v.SetDefault("chat.peer", d.Chat.Peer)
	v.SetDefault("chat.self", d.Chat.Self)
	v.SetDefault("chat.typing_delay", d.Chat.TypingDelay)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.human_readable", d.Logging.HumanReadable)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
	v.SetDefault("telemetry.insecure", d.Telemetry.Insecure)
}

func fillLists(cfg, d *Config) {
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = d.Tabs
	}
	if len(cfg.Sections) == 0 {
		cfg.Sections = d.Sections
	}
	if len(cfg.AppGrid) == 0 {
		cfg.AppGrid = d.AppGrid
	}
	if len(cfg.Widgets) == 0 {
		cfg.Widgets = d.Widgets
	}
	if len(cfg.Chat.Greeting) == 0 {
		cfg.Chat.Greeting = d.Chat.Greeting
	}
	if len(cfg.Chat.Replies) == 0 {
		cfg.Chat.Replies = d.Chat.Replies
	}
}
