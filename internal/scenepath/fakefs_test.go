package scenepath

import (
	"path"
	"sort"
)

// memFS is an in-memory FS recording how often it was consulted.
type memFS struct {
	files       map[string]bool
	globCalls   int
	existsCalls int
}

func newMemFS(files ...string) *memFS {
	m := &memFS{files: make(map[string]bool)}
	for _, f := range files {
		m.files[f] = true
	}
	return m
}

func (m *memFS) Glob(pattern string) ([]string, error) {
	m.globCalls++
	var matches []string
	for f := range m.files {
		ok, err := path.Match(pattern, f)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, f)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

func (m *memFS) Exists(p string) (bool, error) {
	m.existsCalls++
	return m.files[p], nil
}
