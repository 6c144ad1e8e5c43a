package connector

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Constructor is a function that creates a new Connector instance.
type Constructor func() Connector

var registry = map[string]Constructor{}

// extensions maps file extensions to the provider that reads them.
var extensions = map[string]string{}

// Register adds a connector constructor under the given provider name,
// optionally claiming file extensions (with leading dot) for auto-detection.
func Register(name string, ctor Constructor, exts ...string) {
	registry[name] = ctor
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = name
	}
}

// Get returns the connector constructor for the given provider name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown connector provider: %s", name)
	}
	return ctor, nil
}

// Resolve returns the provider for cfg: cfg.Provider unless it is empty or
// "auto", in which case the provider is chosen by the file extension.
func Resolve(cfg ConnectorConfig) (string, error) {
	if cfg.Provider != "" && cfg.Provider != "auto" {
		return cfg.Provider, nil
	}
	ext := strings.ToLower(filepath.Ext(cfg.Path))
	name, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("no connector provider for file extension %q", ext)
	}
	return name, nil
}

// Providers returns the names of all registered connector providers.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
