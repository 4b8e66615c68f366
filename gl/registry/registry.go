// Package registry parses the Khronos gl.xml API registry and resolves the
// enums and commands that make up one API, version and profile.
package registry

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Registry is the parsed content of a gl.xml file.
type Registry struct {
	Types      []*Type
	Enums      []*Enum
	Commands   []*Command
	Features   []*Feature
	Extensions []*Extension

	types    map[string][]*Type
	enums    map[string][]*Enum
	commands map[string]*Command
}

// Type is a <types>/<type> entry. Text is the declaration text outside the
// <name> element, for example "typedef unsigned int ;".
type Type struct {
	Name     string
	API      string
	Requires string
	Text     string
}

// Enum is a single <enum> value. Groups lists the comma separated group
// attribute, Bitmask is set when the enclosing <enums> block is a bitmask.
type Enum struct {
	Name      string
	Value     string
	Type      string
	API       string
	Alias     string
	Groups    []string
	Namespace string
	Bitmask   bool
}

// Uint64 returns the numeric value of the enum. Negative decimal values are
// returned in two's complement.
func (e *Enum) Uint64() (uint64, error) {
	v := strings.TrimSpace(e.Value)
	if u, err := strconv.ParseUint(v, 0, 64); err == nil {
		return u, nil
	}
	i, err := strconv.ParseInt(v, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("enum %s: invalid value %q", e.Name, e.Value)
	}
	return uint64(i), nil
}

// Command is a <command> entry.
type Command struct {
	Name   string
	Return Param
	Params []Param
	Alias  string
}

// Param is a command parameter. For Command.Return, Name is the command name.
type Param struct {
	Name string
	// Type is the C type text with the parameter name removed, for example
	// "const GLchar *".
	Type string
	// PType is the base type without qualifiers or pointers.
	PType    string
	Pointers int
	Const    bool
	Len      string
	Group    string
}

// UnmarshalXML decodes the mixed content of <proto> and <param> elements.
func (p *Param) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "len":
			p.Len = a.Value
		case "group":
			p.Group = a.Value
		}
	}
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var s string
			switch t.Name.Local {
			case "name":
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				p.Name = strings.TrimSpace(s)
			case "ptype":
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				p.PType = strings.TrimSpace(s)
				text.WriteString(" " + p.PType + " ")
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			p.setType(text.String())
			return nil
		}
	}
}

func (p *Param) setType(text string) {
	p.Type = strings.Join(strings.Fields(text), " ")
	p.Pointers = strings.Count(p.Type, "*")
	p.Const = strings.HasPrefix(p.Type, "const ")
	if p.PType != "" {
		return
	}
	base := strings.ReplaceAll(p.Type, "*", " ")
	var words []string
	for _, w := range strings.Fields(base) {
		if w != "const" {
			words = append(words, w)
		}
	}
	p.PType = strings.Join(words, " ")
}

// Feature is a <feature> element: one API version.
type Feature struct {
	API      string      `xml:"api,attr"`
	Name     string      `xml:"name,attr"`
	Number   string      `xml:"number,attr"`
	Requires []Interface `xml:"require"`
	Removes  []Interface `xml:"remove"`
}

// Extension is an <extensions>/<extension> element. Supported is a '|'
// separated list of API names.
type Extension struct {
	Name      string      `xml:"name,attr"`
	Supported string      `xml:"supported,attr"`
	Requires  []Interface `xml:"require"`
	Removes   []Interface `xml:"remove"`
}

// Supports reports whether the extension lists api in its supported attribute.
func (e *Extension) Supports(api string) bool {
	for _, s := range strings.Split(e.Supported, "|") {
		if s == api {
			return true
		}
	}
	return false
}

// Interface is a <require> or <remove> block.
type Interface struct {
	Profile  string `xml:"profile,attr"`
	API      string `xml:"api,attr"`
	Comment  string `xml:"comment,attr"`
	Types    []Ref  `xml:"type"`
	Enums    []Ref  `xml:"enum"`
	Commands []Ref  `xml:"command"`
}

// Ref names a type, enum or command from a feature or extension.
type Ref struct {
	Name string `xml:"name,attr"`
}

type xmlRegistry struct {
	Types struct {
		Type []struct {
			NameAttr string `xml:"name,attr"`
			API      string `xml:"api,attr"`
			Requires string `xml:"requires,attr"`
			Name     string `xml:"name"`
			Text     string `xml:",chardata"`
		} `xml:"type"`
	} `xml:"types"`
	Enums []struct {
		Namespace string `xml:"namespace,attr"`
		Type      string `xml:"type,attr"`
		Enum      []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:"value,attr"`
			Type  string `xml:"type,attr"`
			API   string `xml:"api,attr"`
			Alias string `xml:"alias,attr"`
			Group string `xml:"group,attr"`
		} `xml:"enum"`
	} `xml:"enums"`
	Commands struct {
		Command []struct {
			Proto  Param   `xml:"proto"`
			Params []Param `xml:"param"`
			Alias  struct {
				Name string `xml:"name,attr"`
			} `xml:"alias"`
		} `xml:"command"`
	} `xml:"commands"`
	Features   []*Feature `xml:"feature"`
	Extensions struct {
		Extension []*Extension `xml:"extension"`
	} `xml:"extensions"`
}

// ParseFile reads and parses the registry at path.
func ParseFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse parses a gl.xml document.
func Parse(r io.Reader) (*Registry, error) {
	var x xmlRegistry
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	reg := &Registry{
		Features:   x.Features,
		Extensions: x.Extensions.Extension,
		types:      map[string][]*Type{},
		enums:      map[string][]*Enum{},
		commands:   map[string]*Command{},
	}
	for _, t := range x.Types.Type {
		name := t.NameAttr
		if name == "" {
			name = t.Name
		}
		typ := &Type{
			Name:     name,
			API:      t.API,
			Requires: t.Requires,
			Text:     strings.Join(strings.Fields(t.Text), " "),
		}
		reg.Types = append(reg.Types, typ)
		reg.types[name] = append(reg.types[name], typ)
	}
	for _, block := range x.Enums {
		for _, e := range block.Enum {
			enum := &Enum{
				Name:      e.Name,
				Value:     e.Value,
				Type:      e.Type,
				API:       e.API,
				Alias:     e.Alias,
				Namespace: block.Namespace,
				Bitmask:   block.Type == "bitmask",
			}
			if e.Group != "" {
				enum.Groups = strings.Split(e.Group, ",")
			}
			reg.Enums = append(reg.Enums, enum)
			reg.enums[e.Name] = append(reg.enums[e.Name], enum)
		}
	}
	for _, c := range x.Commands.Command {
		if c.Proto.Name == "" {
			return nil, fmt.Errorf("parsing registry: command without a name")
		}
		cmd := &Command{
			Name:   c.Proto.Name,
			Return: c.Proto,
			Params: c.Params,
			Alias:  c.Alias.Name,
		}
		reg.Commands = append(reg.Commands, cmd)
		reg.commands[cmd.Name] = cmd
	}
	return reg, nil
}

// Command returns the command with the given name.
func (r *Registry) Command(name string) (*Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Enum returns the definition of name for api. A definition without an api
// attribute matches every api; an api specific one takes precedence.
func (r *Registry) Enum(name, api string) (*Enum, bool) {
	return forAPI(r.enums[name], api, func(e *Enum) string { return e.API })
}

// Type returns the definition of name for api, with the same precedence as Enum.
func (r *Registry) Type(name, api string) (*Type, bool) {
	return forAPI(r.types[name], api, func(t *Type) string { return t.API })
}

func forAPI[T any](defs []*T, api string, apiOf func(*T) string) (*T, bool) {
	var generic *T
	for _, d := range defs {
		switch apiOf(d) {
		case api:
			return d, true
		case "":
			if generic == nil {
				generic = d
			}
		}
	}
	return generic, generic != nil
}
