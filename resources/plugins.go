// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resources

import (
	"fmt"
	"slices"

	"gopkg.in/ini.v1"
)

// Plugins is a parsed plugin list.
type Plugins struct {

	// Folder is the directory plugins are loaded from.
	Folder string

	// Names are the plugin names in file order.
	Names []string
}

// LoadPlugins reads a plugin list: a PluginFolder key and any
// number of Plugin keys, outside of any section.
func LoadPlugins(path string) (*Plugins, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("loading plugin config: %w", err)
	}
	sec := f.Section(ini.DefaultSection)
	pl := &Plugins{}
	if sec.HasKey("PluginFolder") {
		pl.Folder = sec.Key("PluginFolder").String()
	}
	if sec.HasKey("Plugin") {
		for _, v := range sec.Key("Plugin").ValueWithShadows() {
			if v != "" {
				pl.Names = append(pl.Names, v)
			}
		}
	}
	return pl, nil
}

// Has returns whether the named plugin is listed.
func (pl *Plugins) Has(name string) bool {
	return slices.Contains(pl.Names, name)
}
