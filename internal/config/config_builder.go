package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-policy-desk/models"
)

// layer is one configuration source. Its non-zero fields override the
// layers added before it.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	args   []string
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 5),
		args:   os.Args[1:],
	}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

// build merges the layers in the order they were added.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaults())
}

// withBuildVersion reports the version stamped at link time unless a later
// source names one.
func (b *configBuilder) withBuildVersion(version string) *configBuilder {
	version = strings.TrimSpace(version)
	if version == "" || version == models.NotAvailable {
		return b
	}
	return b.add("build", &StructuredConfig{App: App{Version: version}})
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return b.fail("env", err)
	}
	return b.add("env", envCfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	flagCfg, err := parseFlags(b.args)
	if err != nil {
		return b.fail("flags", err)
	}
	return b.add("flags", flagCfg)
}

// withFile loads the file named by the last layer that sets a path.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, l := range b.layers {
		if l.cfg.FilePath != "" {
			path = l.cfg.FilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		return b.fail("file "+path, err)
	}
	return b.add("file", fileCfg)
}
