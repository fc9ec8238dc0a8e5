// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ogretut runs one of the tutorial scenes in a window.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/juicycheckers/ogretut/app"
	"github.com/juicycheckers/ogretut/display"
	"github.com/juicycheckers/ogretut/host"
	"github.com/juicycheckers/ogretut/tutorials"
)

func init() {
	// windowing calls must come from the main thread
	runtime.LockOSThread()
}

// Config is the configuration information for ogretut.
type Config struct {

	// Tutorial is the scene to run: heads, ninjas or shadows.
	Tutorial string `posarg:"0" required:"-" default:"ninjas"`

	// Plugins is the plugin list file.
	Plugins string `default:"plugins.cfg"`

	// Resources is the resource location list file.
	Resources string `default:"resources.cfg"`

	// Display is the file the display settings are saved in.
	Display string `default:"display.toml"`

	// Title is the window title used when no display settings are saved.
	Title string `default:"Tutorial Application"`

	// Width is the window width used when no display settings are saved.
	Width int `default:"800"`

	// Height is the window height used when no display settings are saved.
	Height int `default:"600"`

	// Headless runs without a window, for Frames frames.
	Headless bool

	// Frames stops the render loop after this many frames, if positive.
	Frames int

	// DumpScene writes the built scene to this YAML file.
	DumpScene string

	// Verbose enables debug logging.
	Verbose bool `flag:"v,verbose"`
}

// logOutput is where Run writes its log.
var logOutput io.Writer = os.Stderr

func main() { //types:skip
	opts := cli.DefaultOptions("ogretut", "Ogretut runs a tutorial 3D scene until Escape is pressed or the window is closed.")
	cli.Run(opts, &Config{}, Run)
}

// Run runs the tutorial. Failures are logged and never reported
// through the exit status.
func Run(c *Config) error { //cli:cmd -root
	if c.Verbose {
		logx.UserLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: &logx.UserLevel})))

	if err := run(c); err != nil {
		slog.Error("an exception has occurred", "err", err)
	}
	return nil
}

func run(c *Config) error {
	hooks, err := tutorials.New(c.Tutorial)
	if err != nil {
		return err
	}

	var h host.Host
	if c.Headless {
		h = host.NewHeadless(c.Frames)
	} else {
		gh, err := host.NewGLFW()
		if err != nil {
			return err
		}
		gh.MaxFrames = c.Frames
		h = gh
	}
	defer h.Terminate()

	def := display.Defaults()
	def.Title = c.Title
	def.Width, def.Height = c.Width, c.Height

	a := app.New(app.Config{
		Plugins:        c.Plugins,
		Resources:      c.Resources,
		Display:        c.Display,
		DefaultDisplay: def,
		DumpScene:      c.DumpScene,
	}, hooks, h)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return a.Go(ctx)
}
