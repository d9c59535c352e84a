package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	panelIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("panel_id", func(fl validator.FieldLevel) bool {
			return panelIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidPanelID reports whether id is usable as a tab, section or item id.
func ValidPanelID(id string) bool {
	return panelIDPattern.MatchString(id)
}

// Validate performs schema and cross-field validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	tabs := make(map[string]struct{}, len(cfg.Tabs))
	for i, tab := range cfg.Tabs {
		if _, dup := tabs[tab.ID]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("tabs[%d].id", i), fmt.Sprintf("duplicate tab id %q", tab.ID), nil)
		}
		tabs[tab.ID] = struct{}{}
	}

	if _, ok := tabs[cfg.Navigation.InitialPanel]; !ok {
		return apperrors.NewValidationError("navigation.initial_panel", fmt.Sprintf("initial panel %q is not a configured tab", cfg.Navigation.InitialPanel), nil)
	}

	if _, ok := tabs[SectionsTab]; !ok && len(cfg.Sections) > 0 {
		return apperrors.NewValidationError("tabs", fmt.Sprintf("sections are configured but no %q tab hosts them", SectionsTab), nil)
	}

	sections := make(map[string]struct{}, len(cfg.Sections))
	for i, s := range cfg.Sections {
		if _, dup := sections[s.ID]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("sections[%d].id", i), fmt.Sprintf("duplicate section id %q", s.ID), nil)
		}
		sections[s.ID] = struct{}{}
	}

	items := make(map[string]struct{}, len(cfg.AppGrid))
	for i, item := range cfg.AppGrid {
		if _, dup := items[item.ID]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("app_grid[%d].id", i), fmt.Sprintf("duplicate app id %q", item.ID), nil)
		}
		items[item.ID] = struct{}{}
		if _, ok := tabs[item.Target]; !ok {
			return apperrors.NewValidationError(fmt.Sprintf("app_grid[%d].target", i), fmt.Sprintf("references unknown tab %q", item.Target), nil)
		}
	}

	for i, w := range cfg.Widgets {
		if w.Kind == WidgetGit && strings.TrimSpace(w.RepoPath) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("widgets[%d].repo_path", i), "repo_path is required for git widgets", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// fieldName drops the root struct name from the namespace, leaving the YAML
// path, e.g. "tabs[1].id".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
