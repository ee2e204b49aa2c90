// Package ignore implements .attackmapignore matching for the rule walk.
// Patterns follow a gitignore-like subset: one pattern per line, # comments,
// trailing "/" for directory prefixes, globs via doublestar.
package ignore

import (
	"bufio"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a root-relative path is ignored.
type Matcher struct {
	dirs     []string // directory prefixes, no trailing slash
	globs    []string
	literals map[string]bool
}

// Load reads patterns from path. A missing file yields an empty matcher and
// no error; the ignore file is optional.
func Load(path string) (Matcher, error) {
	m := Matcher{literals: map[string]bool{}}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasSuffix(line, "/"):
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
		case strings.ContainsAny(line, "*?["):
			m.globs = append(m.globs, line)
		default:
			m.literals[line] = true
		}
	}
	return m, sc.Err()
}

// Match reports whether rel (slash-separated, relative to the scanned root)
// matches any loaded pattern. Literal patterns match the full path or any
// path component.
func (m Matcher) Match(rel string) bool {
	rel = strings.TrimPrefix(rel, "./")
	if m.literals[rel] {
		return true
	}
	for _, part := range strings.Split(rel, "/") {
		if m.literals[part] {
			return true
		}
	}
	for _, d := range m.dirs {
		if rel == d || strings.HasPrefix(rel, d+"/") {
			return true
		}
	}
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, lastSegment(rel)); ok {
			return true
		}
	}
	return false
}

func lastSegment(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
