// Package engine runs the coverage pipeline: enumerate rule files under a
// detections root, extract severity/technique facts per file, and fold them
// into per-technique summaries ready for layer building. One pass, one
// sorted file list, deterministic output for a fixed input tree.
package engine
