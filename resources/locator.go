// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resources

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
)

var (
	// ErrNotFound is returned when no location holds the file.
	ErrNotFound = errors.New("resource not found")

	// ErrUnsupportedArchive is returned when the only locations that
	// could hold a file are archives, which are not searched.
	ErrUnsupportedArchive = errors.New("resource archives are not supported")

	// ErrNoGroup is returned when looking in a group that does not exist.
	ErrNoGroup = errors.New("no such resource group")
)

// Locator finds resource files by name in resource groups.
type Locator struct {
	groups map[string][]Location
	order  []string
}

// NewLocator returns a locator with the groups of the given config,
// with location paths resolved. A nil config gives an empty locator.
func NewLocator(cfg *Config) *Locator {
	lc := &Locator{groups: make(map[string][]Location)}
	if cfg == nil {
		return lc
	}
	for _, gp := range cfg.Groups {
		for _, loc := range gp.Locations {
			lc.AddLocation(gp.Name, Location{Type: loc.Type, Path: cfg.Resolve(loc)})
		}
	}
	return lc
}

// AddLocation appends a location to the group, creating the group.
func (lc *Locator) AddLocation(group string, loc Location) {
	if _, has := lc.groups[group]; !has {
		lc.order = append(lc.order, group)
	}
	lc.groups[group] = append(lc.groups[group], loc)
	slog.Debug("added resource location", "group", group, "type", loc.Type, "path", loc.Path)
}

// Groups returns the group names in the order they were added.
func (lc *Locator) Groups() []string {
	return lc.order
}

// Locations returns the locations of the group.
func (lc *Locator) Locations(group string) []Location {
	return lc.groups[group]
}

// Find returns the path of the first file with the given name in the
// group's file system locations, searching all groups in order if
// group is empty.
func (lc *Locator) Find(group, name string) (string, error) {
	groups := lc.order
	if group != "" {
		if _, has := lc.groups[group]; !has {
			return "", fmt.Errorf("%w: %q", ErrNoGroup, group)
		}
		groups = []string{group}
	}
	sawArchive := false
	for _, gnm := range groups {
		for _, loc := range lc.groups[gnm] {
			switch loc.Type {
			case FileSystem:
				p := filepath.Join(loc.Path, name)
				if errors.Log1(fsx.FileExists(p)) {
					return p, nil
				}
			case Zip:
				sawArchive = true
			default:
				slog.Warn("unknown resource location type", "group", gnm, "type", loc.Type)
			}
		}
	}
	if sawArchive {
		return "", fmt.Errorf("%w: %q may be in an archive", ErrUnsupportedArchive, name)
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}
