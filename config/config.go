// Package config loads the craft.Settings and macro.Options bundle a solve
// runs against from a YAML file, with environment-variable overrides —
// this module has no CLI front-end of its own (spec.md §6 is a pure
// library surface), so config is the only place a caller-facing
// configuration format lives.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/rotoplan/bound"
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/macro"
)

// Bundle is everything Load produces: the craft.Settings a solve runs
// under, plus the macro.Options governing how it searches.
type Bundle struct {
	Settings craft.Settings
	Options  macro.Options
}

// raw mirrors the YAML/env schema field-for-field; mapstructure tags (not
// the Go-side Settings/Options field names) are the public config surface,
// so the two can evolve independently.
type raw struct {
	MaxCP          uint16 `mapstructure:"max_cp"`
	MaxDurability  int8   `mapstructure:"max_durability"`
	MaxProgress    uint16 `mapstructure:"max_progress"`
	MaxQuality     uint16 `mapstructure:"max_quality"`
	BaseProgress   int    `mapstructure:"base_progress"`
	BaseQuality    int    `mapstructure:"base_quality"`
	InitialQuality uint16 `mapstructure:"initial_quality"`
	JobLevel       int    `mapstructure:"job_level"`
	Adversarial    bool   `mapstructure:"adversarial"`

	AllowedActions []string `mapstructure:"allowed_actions"`

	Backload     bool `mapstructure:"backload"`
	NodeLimit    int  `mapstructure:"node_limit"`
	BoundMaxIter int  `mapstructure:"bound_max_iter"`
}

// Load reads path (YAML) into a Bundle. Environment variables prefixed
// ROTOPLAN_ (e.g. ROTOPLAN_MAX_CP) override any key the file sets,
// following viper's standard AutomaticEnv precedence.
func Load(path string) (Bundle, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	vp.SetEnvPrefix("ROTOPLAN")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		return Bundle{}, err
	}

	var r raw
	if err := vp.Unmarshal(&r); err != nil {
		return Bundle{}, err
	}

	return fromRaw(r)
}

func fromRaw(r raw) (Bundle, error) {
	mask, err := parseActions(r.AllowedActions)
	if err != nil {
		return Bundle{}, err
	}

	settings := craft.Settings{
		MaxCP:          r.MaxCP,
		MaxDurability:  r.MaxDurability,
		MaxProgress:    r.MaxProgress,
		MaxQuality:     r.MaxQuality,
		BaseProgress:   r.BaseProgress,
		BaseQuality:    r.BaseQuality,
		InitialQuality: r.InitialQuality,
		JobLevel:       r.JobLevel,
		AllowedActions: mask,
		Adversarial:    r.Adversarial,
	}

	boundCfg := bound.DefaultConfig()
	if r.BoundMaxIter > 0 {
		boundCfg.MaxIter = r.BoundMaxIter
	}

	opts := macro.NewOptions(
		macro.WithBackload(r.Backload),
		macro.WithBoundConfig(boundCfg),
		macro.WithNodeLimit(r.NodeLimit),
	)

	return Bundle{Settings: settings, Options: opts}, nil
}

// parseActions resolves a list of canonical move names into an
// ActionMask. An empty list resolves to catalog.All(), since omitting
// allowed_actions entirely is the common case of "every move is on the
// table".
func parseActions(names []string) (catalog.ActionMask, error) {
	if len(names) == 0 {
		return catalog.All(), nil
	}

	mask := catalog.None()
	for _, name := range names {
		mv, ok := catalog.ByName(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		mask = mask.With(mv)
	}

	return mask, nil
}
