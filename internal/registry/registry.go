// Package registry holds the per-game and per-variant classification tables.
// Tables are built once during package initialisation and never mutated;
// every accessor hands out a deep copy, so lookups are safe for concurrent
// use without locking.
package registry

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

// Registry is an immutable set of game and variant configurations.
type Registry struct {
	games    map[core.Game]GameConfig
	variants map[core.VariantKey]VariantConfig
}

// New builds a registry from the given tables and validates it.
// Duplicate entries and broken invariants are reported as errors.
func New(games []GameConfig, variants []VariantConfig) (*Registry, error) {
	r := &Registry{
		games:    make(map[core.Game]GameConfig, len(games)),
		variants: make(map[core.VariantKey]VariantConfig, len(variants)),
	}

	for _, g := range games {
		if _, exists := r.games[g.InternalName]; exists {
			return nil, fmt.Errorf("registry: game %q already registered", g.InternalName)
		}
		r.games[g.InternalName] = g.clone()
	}
	for _, v := range variants {
		if v == nil {
			return nil, fmt.Errorf("registry: nil variant config")
		}
		key := v.Base().Key
		if _, exists := r.variants[key]; exists {
			return nil, fmt.Errorf("registry: variant %q already registered", key)
		}
		r.variants[key] = v.clone()
	}

	if err := Validate(r.games, r.variants); err != nil {
		return nil, fmt.Errorf("registry: invalid configuration: %w", err)
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(games []GameConfig, variants []VariantConfig) *Registry {
	r, err := New(games, variants)
	if err != nil {
		panic(err)
	}
	return r
}

// GetGameConfig returns the configuration for game.
// A game without an entry yields a *ConfigurationNotFoundError.
func (r *Registry) GetGameConfig(game core.Game) (GameConfig, error) {
	g, ok := r.games[game]
	if !ok {
		return GameConfig{}, &ConfigurationNotFoundError{Game: game}
	}
	return g.clone(), nil
}

// MustGameConfig is like GetGameConfig but panics on error.
func (r *Registry) MustGameConfig(game core.Game) GameConfig {
	g, err := r.GetGameConfig(game)
	if err != nil {
		panic(err)
	}
	return g
}

// GetVariantConfig returns the configuration for game+playtype.
//
// The game must be registered, the playtype must be one of its valid
// playtypes (*InvalidVariantError otherwise), and the composite key must
// have an entry (*ConfigurationNotFoundError otherwise).
func (r *Registry) GetVariantConfig(game core.Game, playtype core.Playtype) (VariantConfig, error) {
	g, ok := r.games[game]
	if !ok {
		return nil, &ConfigurationNotFoundError{Game: game}
	}
	if !g.SupportsPlaytype(playtype) {
		return nil, &InvalidVariantError{
			Game:     game,
			Playtype: playtype,
			Valid:    append([]core.Playtype(nil), g.ValidPlaytypes...),
		}
	}

	key := core.NewVariantKey(game, playtype)
	v, ok := r.variants[key]
	if !ok {
		return nil, &ConfigurationNotFoundError{Game: game, Key: key}
	}
	return v.clone(), nil
}

// GetVariantConfigByKey resolves a "game:playtype" key.
func (r *Registry) GetVariantConfigByKey(key core.VariantKey) (VariantConfig, error) {
	k, err := core.ParseVariantKey(string(key))
	if err != nil {
		return nil, err
	}
	return r.GetVariantConfig(k.Game(), k.Playtype())
}

// MustVariantConfig is like GetVariantConfig but panics on error.
func (r *Registry) MustVariantConfig(game core.Game, playtype core.Playtype) VariantConfig {
	v, err := r.GetVariantConfig(game, playtype)
	if err != nil {
		panic(err)
	}
	return v
}

// HasVariant reports whether key has a registry entry.
func (r *Registry) HasVariant(key core.VariantKey) bool {
	_, ok := r.variants[key]
	return ok
}

// Games returns every game configuration, sorted by internal name.
func (r *Registry) Games() []GameConfig {
	result := make([]GameConfig, 0, len(r.games))
	for _, g := range r.games {
		result = append(result, g.clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].InternalName < result[j].InternalName
	})

	return result
}

// VariantKeys returns every registered key, sorted by game and then by the
// game's playtype order.
func (r *Registry) VariantKeys() []core.VariantKey {
	result := make([]core.VariantKey, 0, len(r.variants))
	for k := range r.variants {
		result = append(result, k)
	}

	sort.Slice(result, func(i, j int) bool {
		gi, gj := result[i].Game(), result[j].Game()
		if gi != gj {
			return gi < gj
		}
		pts := r.games[gi].ValidPlaytypes
		return indexOf(pts, result[i].Playtype()) < indexOf(pts, result[j].Playtype())
	})

	return result
}

// VariantsOf returns the variant configurations of game in playtype order.
func (r *Registry) VariantsOf(game core.Game) ([]VariantConfig, error) {
	g, err := r.GetGameConfig(game)
	if err != nil {
		return nil, err
	}
	out := make([]VariantConfig, 0, len(g.ValidPlaytypes))
	for _, p := range g.ValidPlaytypes {
		v, err := r.GetVariantConfig(game, p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

var defaultRegistry = MustNew(builtinGames(), builtinVariants())

// Default returns the process-wide registry of built-in games.
func Default() *Registry { return defaultRegistry }

// GetGameConfig looks up game in the default registry.
func GetGameConfig(game core.Game) (GameConfig, error) {
	return defaultRegistry.GetGameConfig(game)
}

// MustGameConfig looks up game in the default registry and panics on error.
func MustGameConfig(game core.Game) GameConfig {
	return defaultRegistry.MustGameConfig(game)
}

// GetVariantConfig looks up game+playtype in the default registry.
func GetVariantConfig(game core.Game, playtype core.Playtype) (VariantConfig, error) {
	return defaultRegistry.GetVariantConfig(game, playtype)
}

// GetVariantConfigByKey looks up key in the default registry.
func GetVariantConfigByKey(key core.VariantKey) (VariantConfig, error) {
	return defaultRegistry.GetVariantConfigByKey(key)
}

// MustVariantConfig looks up game+playtype in the default registry and panics on error.
func MustVariantConfig(game core.Game, playtype core.Playtype) VariantConfig {
	return defaultRegistry.MustVariantConfig(game, playtype)
}

// Games lists the games of the default registry.
func Games() []GameConfig { return defaultRegistry.Games() }

// VariantKeys lists the variant keys of the default registry.
func VariantKeys() []core.VariantKey { return defaultRegistry.VariantKeys() }
