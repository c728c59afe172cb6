package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// Option configures Load.
type Option func(*loader)

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

type loader struct {
	dir     string
	profile string
	k       *koanf.Koanf
}

// Load builds the configuration for profile from four layers, later ones
// winning:
//
//  1. built-in defaults
//  2. {dir}/base.yaml
//  3. {dir}/{profile}.yaml
//  4. APP_* environment variables
//
// An environment variable names a key by joining its path with
// underscores. Known keys are matched first, so APP_STORE_EFFECT_TIMEOUT
// sets store.effect_timeout rather than store.effect.timeout, and
// APP_STORE_DEFAULT_TASK_LISTS takes a comma-separated list.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: "configs", profile: profile, k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"defaults", l.defaults},
		{"base config", l.yamlFile("base")},
		{"profile config", l.yamlFile(profile)},
		{"environment", l.environment},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", s.name, err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// defaults sets every known key, which also makes each one addressable
// from the environment even when no YAML file mentions it.
func (l *loader) defaults() error {
	for key, val := range defaults() {
		if err := l.k.Set(key, val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) yamlFile(name string) func() error {
	return func() error {
		path := filepath.Join(l.dir, name+".yaml")
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

func (l *loader) environment() error {
	known := make(map[string]string, len(l.k.Keys()))
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return l.k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			key, ok := known[name]
			if !ok {
				return strings.ReplaceAll(name, "_", "."), value
			}
			if key == keyDefaultTaskLists {
				return key, splitList(value)
			}
			return key, value
		},
	}), nil)
}

func splitList(raw string) []string {
	var out []string
	for p := range strings.SplitSeq(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// checkProfile rejects profile names that could escape the config
// directory.
func checkProfile(profile string) error {
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
