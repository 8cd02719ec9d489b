// Package config provides the configuration for chatvim.
//
// Configuration is resolved in three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← CHATVIM_* (highest priority)
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/chatvim/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Config files are TOML or YAML, selected by extension. A missing file is
// not an error; the defaults are used.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Live Reload
//
// A Watcher monitors the config file and calls a handler with the reloaded
// configuration after each change:
//
//	w, err := config.NewWatcher(path, func(cfg *config.Config) {
//	    apply(cfg)
//	})
//	defer w.Close()
//
// # Example Configuration
//
//	[editor]
//	vim = true
//	start_mode = "normal"
//	exit_key = "<C-c>"
//	register = "+"
//
//	[clipboard]
//	backend = "osc52"
//	osc52_tmux = false
//
//	[log]
//	level = "debug"
//	file = "/tmp/chatvim.log"
package config
