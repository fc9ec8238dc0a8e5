// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resources reads the plugin and resource location lists
// that applications load at startup, and locates resource files
// (meshes, textures, materials) by name within resource groups.
package resources

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/ini.v1"
)

// Location types.
const (
	FileSystem = "FileSystem"
	Zip        = "Zip"
)

// Location is a single search location within a resource group.
type Location struct {

	// Type is the archive type: [FileSystem] or [Zip].
	Type string

	// Path is the location, relative to the config file directory
	// unless absolute.
	Path string
}

// Group is a named resource group and its locations.
type Group struct {
	Name      string
	Locations []Location
}

// Config is a parsed resource location list.
type Config struct {

	// Dir is the directory relative paths are resolved against.
	Dir string

	// Groups are the resource groups in file order.
	Groups []Group
}

// loadOptions are shared by both config formats: keys repeat, and
// values may contain characters ini would otherwise treat as comments.
var loadOptions = ini.LoadOptions{
	AllowShadows:            true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// LoadConfig reads a resource location list. Each section is a group;
// each key is a location type whose value is the location path.
// Repeated keys within a section are all kept, in order per type.
func LoadConfig(path string) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("loading resource config: %w", err)
	}
	cfg := &Config{Dir: filepath.Dir(path)}
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		gp := Group{Name: sec.Name()}
		for _, k := range keys {
			for _, v := range k.ValueWithShadows() {
				if v == "" {
					continue
				}
				gp.Locations = append(gp.Locations, Location{Type: k.Name(), Path: v})
			}
		}
		cfg.Groups = append(cfg.Groups, gp)
	}
	return cfg, nil
}

// Group returns the named group, or nil.
func (cfg *Config) Group(name string) *Group {
	for i := range cfg.Groups {
		if cfg.Groups[i].Name == name {
			return &cfg.Groups[i]
		}
	}
	return nil
}

// Resolve returns the location path with a leading ~ expanded to the
// home directory, resolved against [Config.Dir] if still relative.
func (cfg *Config) Resolve(loc Location) string {
	p := loc.Path
	if ep, err := homedir.Expand(p); err == nil {
		p = ep
	} else {
		errors.Log(err)
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cfg.Dir, p)
}
