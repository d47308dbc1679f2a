// Package config loads tracker configuration from a YAML file and the
// environment. Environment values override the file.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/docker/gabeacon/pkg/analytics"
	"github.com/docker/gabeacon/pkg/env"
	"github.com/docker/gabeacon/pkg/paths"
)

// Environment variables read by Load.
const (
	EnvTrackingID   = "GA_TRACKING_ID"
	EnvAppName      = "GA_APP_NAME"
	EnvAppVersion   = "GA_APP_VERSION"
	EnvDeviceID     = "GA_DEVICE_ID"
	EnvUserLanguage = "GA_USER_LANGUAGE"
	EnvWidth        = "GA_WIDTH"
	EnvHeight       = "GA_HEIGHT"
	EnvAnonymizeIP  = "GA_ANONYMIZE_IP"
)

// DefaultPath returns the path of the optional user config file.
func DefaultPath() string {
	return filepath.Join(paths.GetConfigDir(), "config.yaml")
}

// Load reads path (when non-empty) and overlays values from provider. A
// missing file at DefaultPath is not an error; any other missing file is.
func Load(ctx context.Context, path string, provider env.Provider) (analytics.Config, error) {
	var cfg analytics.Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && path == DefaultPath():
		case err != nil:
			return analytics.Config{}, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return analytics.Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if provider == nil {
		return cfg, nil
	}

	for name, dst := range map[string]*string{
		EnvTrackingID:   &cfg.TrackingID,
		EnvAppName:      &cfg.AppName,
		EnvAppVersion:   &cfg.AppVersion,
		EnvDeviceID:     &cfg.DeviceID,
		EnvUserLanguage: &cfg.UserLanguage,
	} {
		value, err := provider.GetEnv(ctx, name)
		if err != nil {
			return analytics.Config{}, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if value != "" {
			*dst = value
		}
	}

	for name, dst := range map[string]*int{
		EnvWidth:  &cfg.Width,
		EnvHeight: &cfg.Height,
	} {
		value, err := provider.GetEnv(ctx, name)
		if err != nil {
			return analytics.Config{}, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return analytics.Config{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = n
	}

	value, err := provider.GetEnv(ctx, EnvAnonymizeIP)
	if err != nil {
		return analytics.Config{}, fmt.Errorf("failed to read %s: %w", EnvAnonymizeIP, err)
	}
	if value != "" {
		anonymize, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return analytics.Config{}, fmt.Errorf("invalid %s: %w", EnvAnonymizeIP, err)
		}
		cfg.AnonymizeIP = anonymize
	}

	return cfg, nil
}

// MissingFieldsError lists the required settings that are empty.
type MissingFieldsError struct {
	Missing []string
}

var _ error = &MissingFieldsError{}

func (e *MissingFieldsError) Error() string {
	return "missing required settings: " + strings.Join(e.Missing, ", ")
}

// Validate reports the required settings a tracker would reject.
func Validate(cfg analytics.Config) error {
	var missing []string
	if cfg.TrackingID == "" {
		missing = append(missing, EnvTrackingID)
	}
	if cfg.AppName == "" {
		missing = append(missing, EnvAppName)
	}
	if cfg.AppVersion == "" {
		missing = append(missing, EnvAppVersion)
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Missing: missing}
	}
	return nil
}
