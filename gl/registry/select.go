package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Selection names the API surface to resolve.
type Selection struct {
	// API is the feature api attribute, for example "gl" or "gles2".
	API string
	// Version is a feature number such as "3.3".
	Version string
	// Profile is "core", "compatibility" or empty.
	Profile string
	// Extensions lists extension names to add on top of the version.
	Extensions []string
}

// FeatureSet is the result of Select, sorted by name.
type FeatureSet struct {
	Selection
	Types    []*Type
	Enums    []*Enum
	Commands []*Command
}

// ErrUnknownName is returned when a feature or extension refers to a
// definition that is not in the registry.
var ErrUnknownName = errors.New("unknown name")

type nameSet struct {
	types, enums, commands map[string]bool
}

func (s nameSet) apply(in Interface, add bool) {
	for _, r := range in.Types {
		set(s.types, r.Name, add)
	}
	for _, r := range in.Enums {
		set(s.enums, r.Name, add)
	}
	for _, r := range in.Commands {
		set(s.commands, r.Name, add)
	}
}

func set(m map[string]bool, name string, add bool) {
	if add {
		m[name] = true
	} else {
		delete(m, name)
	}
}

func (sel Selection) matches(in Interface) bool {
	return (in.Profile == "" || in.Profile == sel.Profile) && (in.API == "" || in.API == sel.API)
}

// supportedAPI is the name an extension lists for the selection. The core
// profile of desktop GL is listed as "glcore".
func (sel Selection) supportedAPI() string {
	if sel.API == "gl" && sel.Profile == "core" {
		return "glcore"
	}
	return sel.API
}

// Select resolves the enums, types and commands of sel. Features of sel.API
// are applied in ascending version order up to and including sel.Version,
// each applying its require blocks and then its remove blocks. Requested
// extensions are applied afterwards.
func (r *Registry) Select(sel Selection) (*FeatureSet, error) {
	want, err := parseVersion(sel.Version)
	if err != nil {
		return nil, err
	}
	var features []*Feature
	found := false
	for _, f := range r.Features {
		if f.API != sel.API {
			continue
		}
		v, err := parseVersion(f.Number)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", f.Name, err)
		}
		if compareVersion(v, want) > 0 {
			continue
		}
		found = found || compareVersion(v, want) == 0
		features = append(features, f)
	}
	if !found {
		return nil, fmt.Errorf("no %s feature with version %s", sel.API, sel.Version)
	}
	slices.SortStableFunc(features, func(a, b *Feature) int {
		va, _ := parseVersion(a.Number)
		vb, _ := parseVersion(b.Number)
		return compareVersion(va, vb)
	})

	names := nameSet{types: map[string]bool{}, enums: map[string]bool{}, commands: map[string]bool{}}
	for _, f := range features {
		applyBlocks(sel, names, f.Requires, f.Removes)
	}
	for _, name := range sel.Extensions {
		ext := r.extension(name)
		if ext == nil {
			return nil, fmt.Errorf("extension %s: %w", name, ErrUnknownName)
		}
		if !ext.Supports(sel.supportedAPI()) {
			return nil, fmt.Errorf("extension %s is not supported by %s", name, sel.supportedAPI())
		}
		applyBlocks(sel, names, ext.Requires, ext.Removes)
	}

	fs := &FeatureSet{Selection: sel}
	var unknown []string
	for _, name := range sortedKeys(names.types) {
		t, ok := r.Type(name, sel.API)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		fs.Types = append(fs.Types, t)
	}
	for _, name := range sortedKeys(names.enums) {
		e, ok := r.Enum(name, sel.API)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		fs.Enums = append(fs.Enums, e)
	}
	for _, name := range sortedKeys(names.commands) {
		c, ok := r.Command(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		fs.Commands = append(fs.Commands, c)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownName, strings.Join(unknown, ", "))
	}
	return fs, nil
}

func applyBlocks(sel Selection, names nameSet, requires, removes []Interface) {
	for _, in := range requires {
		if sel.matches(in) {
			names.apply(in, true)
		}
	}
	for _, in := range removes {
		if sel.matches(in) {
			names.apply(in, false)
		}
	}
}

func (r *Registry) extension(name string) *Extension {
	for _, e := range r.Extensions {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type version [2]int

func parseVersion(s string) (version, error) {
	major, minor, _ := strings.Cut(s, ".")
	var v version
	var err error
	if v[0], err = strconv.Atoi(major); err != nil {
		return v, fmt.Errorf("invalid version %q", s)
	}
	if minor != "" {
		if v[1], err = strconv.Atoi(minor); err != nil {
			return v, fmt.Errorf("invalid version %q", s)
		}
	}
	return v, nil
}

func compareVersion(a, b version) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}
	return cmp.Compare(a[1], b[1])
}
