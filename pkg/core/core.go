package core

import (
	"github.com/attackmap/attackmap/internal/engine"
	"github.com/attackmap/attackmap/internal/layer"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Stats = engine.Stats
type Layer = layer.Layer
type Technique = layer.Technique

// ErrNoInput is returned by Generate when no rule files are found.
var ErrNoInput = engine.ErrNoInput

// Generate is the stable entrypoint for other programs: it runs the full
// pipeline and returns the built layer plus run statistics.
func Generate(cfg Config, name string) (Layer, Stats, error) {
	summaries, stats, err := engine.Run(cfg)
	if err != nil {
		return Layer{}, stats, err
	}
	return layer.Build(name, summaries), stats, nil
}

// NetworkPlatforms returns the built-in network platform allow-list.
// This is exposed for convenience to avoid importing internals directly.
func NetworkPlatforms() []string {
	out := make([]string, len(engine.NetworkPlatforms))
	copy(out, engine.NetworkPlatforms)
	return out
}
