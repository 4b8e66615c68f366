// Package glgen generates Go bindings for one OpenGL API selection of the
// Khronos registry. Generated functions are bound at run time with purego.
package glgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/celer/vkgl/gl/registry"
)

type constant struct {
	Name  string
	Value string
}

type function struct {
	Name   string
	CName  string
	Var    string
	Params string
	Args   string
	Return string
}

type file struct {
	Package  string
	Title    string
	Enums    []constant
	Commands []function
}

// Generate is the main entry point to code generation. It parses the
// registry, resolves the configured selection and writes the output file.
func Generate(c *Config) error {
	reg, err := registry.ParseFile(c.Registry)
	if err != nil {
		return err
	}
	fs, err := reg.Select(registry.Selection{
		API:        c.API,
		Version:    c.Version,
		Profile:    c.Profile,
		Extensions: c.Extensions,
	})
	if err != nil {
		return fmt.Errorf("selecting %s %s: %w", c.API, c.Version, err)
	}
	src, err := Source(fs, c.Package)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, src, 0o644); err != nil {
		return err
	}
	slog.Info("generated bindings", "output", c.Output, "enums", len(fs.Enums), "commands", len(fs.Commands))
	return nil
}

// Source returns the formatted Go file for fs in package pkg.
func Source(fs *registry.FeatureSet, pkg string) ([]byte, error) {
	f := file{Package: pkg, Title: title(fs.Selection)}

	seen := map[string]string{}
	for _, c := range fs.Commands {
		seen[CommandName(c.Name)] = c.Name
	}
	for _, e := range fs.Enums {
		name := EnumName(e.Name)
		if prev, ok := seen[name]; ok && strings.HasPrefix(prev, "gl") {
			// GL_VIEWPORT and glViewport
			name = "GL" + name
		}
		if prev, ok := seen[name]; ok {
			slog.Warn("skipping enum with duplicate Go name", "enum", e.Name, "name", name, "previous", prev)
			continue
		}
		seen[name] = e.Name
		if _, err := e.Uint64(); err != nil {
			return nil, err
		}
		f.Enums = append(f.Enums, constant{Name: name, Value: e.Value})
	}

	for _, c := range fs.Commands {
		fn, err := newFunction(c)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", c.Name, err)
		}
		f.Commands = append(f.Commands, fn)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, &f); err != nil {
		return nil, err
	}
	out, err := imports.Process(pkg+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

func newFunction(c *registry.Command) (function, error) {
	name := CommandName(c.Name)
	fn := function{Name: name, CName: c.Name, Var: "fn" + name}
	ret, err := GoType(c.Return, false)
	if err != nil {
		return fn, err
	}
	fn.Return = ret
	params := make([]string, len(c.Params))
	args := make([]string, len(c.Params))
	for i, p := range c.Params {
		t, err := GoType(p, true)
		if err != nil {
			return fn, fmt.Errorf("param %s: %w", p.Name, err)
		}
		args[i] = ParamName(p.Name)
		params[i] = args[i] + " " + t
	}
	fn.Params = strings.Join(params, ", ")
	fn.Args = strings.Join(args, ", ")
	return fn, nil
}

func title(sel registry.Selection) string {
	s := sel.API + " " + sel.Version
	if sel.Profile != "" {
		s += " " + sel.Profile + " profile"
	}
	if len(sel.Extensions) > 0 {
		s += " with " + strings.Join(sel.Extensions, ", ")
	}
	return s
}
