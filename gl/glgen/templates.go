package glgen

import (
	"text/template"
)

var tmpl = template.Must(template.New("file").Parse(`// Code generated by glgen; DO NOT EDIT.

// Package {{.Package}} binds {{.Title}}.
// Call Init with the context's proc address loader before any other function.
package {{.Package}}

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"
)
{{if .Enums}}
const (
{{- range .Enums}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{end}}
var (
{{- range .Commands}}
	{{.Var}} func({{.Params}}){{with .Return}} {{.}}{{end}}
{{- end}}
)
{{range .Commands}}
// {{.Name}} calls {{.CName}}.
func {{.Name}}({{.Params}}){{with .Return}} {{.}}{{end}} {
	{{if .Return}}return {{end}}{{.Var}}({{.Args}})
}
{{end}}
var commands = []struct {
	name string
	fn   any
}{
{{- range .Commands}}
	{"{{.CName}}", &{{.Var}}},
{{- end}}
}

// Init resolves every command with getProcAddress. Commands that do not
// resolve are listed in the returned error; the others are still bound.
func Init(getProcAddress func(name string) unsafe.Pointer) error {
	var missing []string
	for _, c := range commands {
		p := getProcAddress(c.name)
		if p == nil {
			missing = append(missing, c.name)
			continue
		}
		purego.RegisterFunc(c.fn, uintptr(p))
	}
	if len(missing) > 0 {
		return fmt.Errorf("{{.Package}}: missing commands: %s", strings.Join(missing, ", "))
	}
	return nil
}
`))
