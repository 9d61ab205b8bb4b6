package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	profileEnv       = "APP_PROFILE"
	defaultProfile   = "local"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets where base.yaml and the profile files live. The default
// is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile. Later layers win:
//
//  0. built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_* environment variables
//
// Environment names are matched against the keys already loaded, so
// underscores inside a field name survive:
//
//	APP_DATABASE_BUSY_TIMEOUT          -> database.busy_timeout
//	APP_NOTIFY_WEBHOOK_CLIENT_BASE_URL -> notify.webhook.client.base_url
//	APP_SCHEDULER_OVERDUE_SWEEP        -> scheduler.overdue_sweep
//
// List keys take a comma separated value, for example
// APP_NOTIFY_SINKS=log,webhook.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Profile = profile

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %q: %w", profile, err)
	}
	return &cfg, nil
}

// envTransform maps APP_ variables onto the keys loaded so far. Unknown
// names fall back to replacing every underscore with a dot. Values for list
// keys are split on commas.
func envTransform(k *koanf.Koanf) func(key, value string) (string, any) {
	lookup := make(map[string]string, len(k.Keys()))
	lists := make(map[string]bool)
	for _, key := range k.Keys() {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
		switch k.Get(key).(type) {
		case []any, []string:
			lists[key] = true
		}
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

		koanfKey, ok := lookup[key]
		if !ok {
			return strings.ReplaceAll(key, "_", "."), value
		}
		if lists[koanfKey] {
			return koanfKey, splitList(value)
		}
		return koanfKey, value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// ProfileFromEnv returns APP_PROFILE, or "local" when it is unset.
func ProfileFromEnv(lookup func(string) (string, bool)) string {
	if p, ok := lookup(profileEnv); ok && strings.TrimSpace(p) != "" {
		return p
	}
	return defaultProfile
}
