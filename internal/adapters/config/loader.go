// Package config provides the configuration loader for preview.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the host filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds preview.yaml by walking up from cwd and returns the resolved configuration.
// Without a configuration file the defaults apply, with the cache rooted at cwd.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	path, found := l.findConfiguration(cwd)
	if !found {
		cfg := domain.DefaultConfig()
		cfg.CacheDir = filepath.Join(cwd, cfg.CacheDir)
		return cfg, nil
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := l.resolve(&file, filepath.Dir(path))
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	dir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

//nolint:cyclop // flat field-by-field overlay of the defaults
func (l *Loader) resolve(file *Configfile, root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.AssetServer != "" {
		cfg.AssetServer = strings.TrimSuffix(file.AssetServer, "/")
	}
	if file.PollInterval > 0 {
		cfg.PollInterval = file.PollInterval
	}
	if file.MaxDepth > 0 {
		cfg.MaxDepth = file.MaxDepth
	}
	if file.MaxSlots > 0 {
		cfg.MaxSlots = file.MaxSlots
	}
	if file.ResizeThreshold != nil {
		if *file.ResizeThreshold < 0 {
			l.Logger.Warn(fmt.Sprintf("resize_threshold %d is negative, using %d",
				*file.ResizeThreshold, domain.DefaultResizeThreshold))
		} else {
			cfg.ResizeThreshold = *file.ResizeThreshold
		}
	}
	if file.MaxConcurrentLoads > 0 {
		cfg.MaxConcurrentLoads = file.MaxConcurrentLoads
	}
	cfg.LoadTimeout = file.LoadTimeout
	cfg.CaseInsensitiveWidgets = file.CaseInsensitiveWidgets

	order, err := domain.ParseComposeOrder(file.ComposeOrder)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.ComposeOrder = order

	policy, err := domain.ParseFramePolicy(file.FramePolicy)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.FramePolicy = policy

	cfg.CacheDir = resolveDir(root, file.CacheDir, cfg.CacheDir)

	if v := file.Viewport; v != nil {
		if v.Width > 0 {
			cfg.Surface.Width = v.Width
		}
		if v.Height > 0 {
			cfg.Surface.Height = v.Height
		}
	}
	if m := file.MaterialDefaults; m != nil {
		overlay(&cfg.Material.Green, m.Green)
		overlay(&cfg.Material.Blue, m.Blue)
		overlay(&cfg.Material.Metallic, m.Metallic)
		overlay(&cfg.Material.Roughness, m.Roughness)
	}

	roles, err := resolveRoles(file.Roles)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.Roles = roles

	return cfg, nil
}

func overlay(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}

// resolveRoles merges the configured class roles over the built-in table.
func resolveRoles(configured map[string]string) (map[string]domain.NodeRole, error) {
	roles := domain.DefaultRoles()
	for class, name := range configured {
		role, err := domain.ParseRole(name)
		if err != nil {
			return nil, zerr.With(err, "class", class)
		}
		roles[class] = role
	}
	return roles, nil
}

// resolveDir resolves a configured directory relative to the config file's directory.
func resolveDir(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(root, configured)
}
