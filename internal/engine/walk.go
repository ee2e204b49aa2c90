package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/attackmap/attackmap/internal/ignore"
)

// ignoreFileName is the optional per-repo ignore file honored by the walk.
const ignoreFileName = ".attackmapignore"

// ErrNoInput is returned when enumeration finds no candidate rule files.
// Nothing is written in that case; callers should treat it as fatal.
var ErrNoInput = errors.New("no rule files found")

// Enumerate walks the detections root and returns the lexicographically
// sorted list of candidate rule file paths. Excluded directories are pruned;
// when cfg.Platforms is non-empty, only trees whose first path segment below
// the root matches the normalized allow-list are descended into.
func Enumerate(cfg Config) ([]string, error) {
	allowed := platformSet(cfg.Platforms)
	extra := extraExcludeSet(cfg.ExtraExcludeDirs)
	ign, err := ignore.Load(filepath.Join(cfg.Root, ignoreFileName))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ignoreFileName, err)
	}

	var out []string
	err = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(cfg.Root, p)
		if relErr != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if isExcludedDir(d.Name(), extra) {
				return filepath.SkipDir
			}
			// Prune non-allowed platform trees at the top level instead of
			// filtering files later.
			if allowed != nil && !allowed[normalizePlatform(firstSegment(rel))] {
				return filepath.SkipDir
			}
			return nil
		}
		if !isRuleFile(d.Name()) {
			return nil
		}
		if allowed != nil && !allowed[normalizePlatform(firstSegment(rel))] {
			return nil
		}
		if ign.Match(filepath.ToSlash(rel)) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, ierr := d.Info(); ierr == nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoInput
	}
	sort.Strings(out)
	return out, nil
}

func firstSegment(rel string) string {
	if i := strings.IndexByte(rel, filepath.Separator); i >= 0 {
		return rel[:i]
	}
	return rel
}

func extraExcludeSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			set[n] = true
		}
	}
	return set
}

// allowedByGlobs applies optional comma-separated doublestar globs against
// the root-relative path (and its basename, so "*.yml" style patterns work).
func allowedByGlobs(rel string, cfg Config) bool {
	rel = filepath.ToSlash(rel)
	if cfg.ExcludeGlobs != "" {
		for _, g := range splitGlobs(cfg.ExcludeGlobs) {
			if matchGlob(g, rel) {
				return false
			}
		}
	}
	if cfg.IncludeGlobs == "" {
		return true
	}
	for _, g := range splitGlobs(cfg.IncludeGlobs) {
		if matchGlob(g, rel) {
			return true
		}
	}
	return false
}

func matchGlob(g, rel string) bool {
	if ok, _ := doublestar.Match(g, rel); ok {
		return true
	}
	ok, _ := doublestar.Match(g, filepath.Base(rel))
	return ok
}

func splitGlobs(s string) []string {
	var out []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
