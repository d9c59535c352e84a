package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse strictly decodes the YAML file at path on top of the defaults and
// validates the result. Unknown keys are reported as parse errors.
func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes is Parse for in-memory content; path is only used in errors.
func ParseBytes(path string, data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}
	fillDefaults(&cfg, Default())

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// fillDefaults completes a decoded file with built-in values for anything the
// file left unset.
func fillDefaults(cfg, d *Config) {
	if cfg.Navigation.InitialPanel == "" {
		cfg.Navigation.InitialPanel = d.Navigation.InitialPanel
	}
	if cfg.Navigation.MaxHistory == 0 {
		cfg.Navigation.MaxHistory = d.Navigation.MaxHistory
	}
	if cfg.Chat.Peer == "" {
		cfg.Chat.Peer = d.Chat.Peer
	}
	if cfg.Chat.Self == "" {
		cfg.Chat.Self = d.Chat.Self
	}
	if cfg.Chat.TypingDelay == 0 {
		cfg.Chat.TypingDelay = d.Chat.TypingDelay
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = d.Storage.Path
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = d.Logging.File
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = d.Telemetry.ServiceName
	}
	fillLists(cfg, d)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
