// Package catalog provides section.Repository implementations: a seeded
// in-memory catalog and a Postgres-backed one. Whatever the backend, the
// lookup contract is the same: an exact name match, and a hard error when a
// bare name exists in more than one family.
package catalog

import (
	"context"
	"sort"
	"strings"

	"steelcheck/internal/section"
)

type Memory struct {
	source  string
	entries []section.Properties
}

// NewMemory builds an in-memory catalog from the given entries. source names
// the database of origin (e.g. "CIRSOC").
func NewMemory(source string, entries []section.Properties) *Memory {
	cp := make([]section.Properties, len(entries))
	copy(cp, entries)
	return &Memory{source: source, entries: cp}
}

func (m *Memory) Source() string { return m.source }

func (m *Memory) Lookup(ctx context.Context, name string, family section.Family) (section.Properties, error) {
	name = strings.TrimSpace(name)
	var matches []section.Properties
	for _, e := range m.entries {
		if !strings.EqualFold(e.Name, name) {
			continue
		}
		if family != "" && e.Family != family {
			continue
		}
		matches = append(matches, e)
	}
	switch len(matches) {
	case 0:
		return section.Properties{}, &section.NotFoundError{Name: name, Family: family, Database: m.source}
	case 1:
		return matches[0], nil
	}
	fams := make([]section.Family, len(matches))
	for i, e := range matches {
		fams[i] = e.Family
	}
	return section.Properties{}, &section.AmbiguousNameError{Name: name, Families: fams}
}

func (m *Memory) List(ctx context.Context, family section.Family) ([]string, error) {
	var names []string
	for _, e := range m.entries {
		if family == "" || e.Family == family {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// AmbiguousNames reports the names that exist in more than one family, for
// catalog maintenance checks.
func (m *Memory) AmbiguousNames() map[string][]section.Family {
	byName := map[string][]section.Family{}
	for _, e := range m.entries {
		key := strings.ToUpper(e.Name)
		byName[key] = append(byName[key], e.Family)
	}
	out := map[string][]section.Family{}
	for name, fams := range byName {
		if len(fams) > 1 {
			out[name] = fams
		}
	}
	return out
}
