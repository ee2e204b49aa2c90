// Package core provides a small, stable facade over attackmap's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: "./detections"}
//	layer, stats, err := core.Generate(cfg, "Coverage - All")
//	if err != nil { /* handle */ }
//	_ = core.MarshalLayer(os.Stdout, layer)
package core
