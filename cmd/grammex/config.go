package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// config mirrors a subset of the CLI flags so a checked-in grammex.toml can
// supply defaults without repeating them on every invocation (§10.3).
type config struct {
	Grammar string `toml:"grammar"`
	Tokens  string `toml:"tokens"`
	Flavor  string `toml:"flavor"`
	Save    string `toml:"save"`
}

// loadConfig reads and parses a TOML config file the way the teacher's
// internal/tqw unmarshals world manifests: read the whole file, then hand
// the bytes to toml.Unmarshal.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// applyConfig fills in any flag that was left at its zero value (for
// --flavor: not typed at all) with the config's value. Flags the user
// actually typed always win.
func applyConfig(cfg config) {
	if *flagGrammar == "" {
		*flagGrammar = cfg.Grammar
	}
	if *flagTokens == "" {
		*flagTokens = cfg.Tokens
	}
	if !pflag.CommandLine.Changed("flavor") && cfg.Flavor != "" {
		*flagFlavor = cfg.Flavor
	}
	if *flagSave == "" {
		*flagSave = cfg.Save
	}
}
