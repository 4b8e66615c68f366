package glgen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/gl/registry"
)

const testRegistry = "../registry/testdata/gl.xml"

func TestEnumName(t *testing.T) {
	tests := map[string]string{
		"GL_COLOR_BUFFER_BIT": "ColorBufferBit",
		"GL_TEXTURE_2D":       "Texture2D",
		"GL_TIMEOUT_IGNORED":  "TimeoutIgnored",
		"GL_TRUE":             "True",
		"GL_2D":               "GL2D",
		"GL_3D_COLOR":         "GL3DColor",
	}
	for in, want := range tests {
		assert.Equal(t, want, EnumName(in), in)
	}
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "ClearColor", CommandName("glClearColor"))
	assert.Equal(t, "GetString", CommandName("glGetString"))
	assert.Equal(t, "ActiveShaderProgramEXT", CommandName("glActiveShaderProgramEXT"))
}

func TestParamName(t *testing.T) {
	assert.Equal(t, "xtype", ParamName("type"))
	assert.Equal(t, "xrange", ParamName("range"))
	assert.Equal(t, "xstring", ParamName("string"))
	assert.Equal(t, "target", ParamName("target"))
}

func TestGoType(t *testing.T) {
	tests := []struct {
		p     registry.Param
		param bool
		want  string
	}{
		{registry.Param{Type: "GLenum", PType: "GLenum"}, true, "uint32"},
		{registry.Param{Type: "GLsizei", PType: "GLsizei"}, true, "int32"},
		{registry.Param{Type: "GLclampf", PType: "GLclampf"}, true, "float32"},
		{registry.Param{Type: "GLdouble", PType: "GLdouble"}, true, "float64"},
		{registry.Param{Type: "GLboolean", PType: "GLboolean"}, true, "bool"},
		{registry.Param{Type: "GLuint64", PType: "GLuint64"}, true, "uint64"},
		{registry.Param{Type: "GLsizeiptr", PType: "GLsizeiptr"}, true, "int"},
		{registry.Param{Type: "GLsync", PType: "GLsync"}, true, "uintptr"},
		{registry.Param{Type: "const GLchar *", PType: "GLchar", Pointers: 1, Const: true}, true, "string"},
		{registry.Param{Type: "const GLchar *", PType: "GLchar", Pointers: 1, Const: true}, false, "unsafe.Pointer"},
		{registry.Param{Type: "GLchar *", PType: "GLchar", Pointers: 1}, true, "unsafe.Pointer"},
		{registry.Param{Type: "const GLchar *const*", PType: "GLchar", Pointers: 2, Const: true}, true, "unsafe.Pointer"},
		{registry.Param{Type: "const void *", PType: "void", Pointers: 1, Const: true}, true, "unsafe.Pointer"},
		{registry.Param{Type: "void", PType: "void"}, false, ""},
	}
	for _, tt := range tests {
		got, err := GoType(tt.p, tt.param)
		require.NoError(t, err, tt.p.Type)
		assert.Equal(t, tt.want, got, tt.p.Type)
	}

	_, err := GoType(registry.Param{Type: "void", PType: "void"}, true)
	assert.Error(t, err)
	_, err = GoType(registry.Param{Type: "GLmystery", PType: "GLmystery"}, true)
	assert.Error(t, err)
}

type generated struct {
	pkg    string
	consts map[string]string
	funcs  map[string]string
}

// parseGenerated parses src and records constant values and the
// parameter and result types of every exported function.
func parseGenerated(t *testing.T, src []byte) generated {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gl.go", src, parser.ParseComments)
	require.NoError(t, err)
	g := generated{pkg: f.Name.Name, consts: map[string]string{}, funcs: map[string]string{}}
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.CONST {
				continue
			}
			for _, spec := range d.Specs {
				vs := spec.(*ast.ValueSpec)
				g.consts[vs.Names[0].Name] = vs.Values[0].(*ast.BasicLit).Value
			}
		case *ast.FuncDecl:
			g.funcs[d.Name.Name] = signature(d.Type)
		}
	}
	return g
}

func signature(ft *ast.FuncType) string {
	var params []string
	for _, field := range ft.Params.List {
		for _, n := range field.Names {
			params = append(params, n.Name+" "+types.ExprString(field.Type))
		}
	}
	s := "(" + strings.Join(params, ", ") + ")"
	if ft.Results != nil {
		s += " " + types.ExprString(ft.Results.List[0].Type)
	}
	return s
}

func selectTest(t *testing.T, sel registry.Selection) *registry.FeatureSet {
	t.Helper()
	reg, err := registry.ParseFile(testRegistry)
	require.NoError(t, err)
	fs, err := reg.Select(sel)
	require.NoError(t, err)
	return fs
}

func TestSource(t *testing.T) {
	fs := selectTest(t, registry.Selection{API: "gl", Version: "3.3", Profile: "core", Extensions: []string{"GL_KHR_debug"}})
	src, err := Source(fs, "gl")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(src), "// Code generated by glgen; DO NOT EDIT."))
	assert.Contains(t, string(src), "gl 3.3 core profile with GL_KHR_debug")

	g := parseGenerated(t, src)
	assert.Equal(t, "gl", g.pkg)

	assert.Equal(t, "0x00004000", g.consts["ColorBufferBit"])
	assert.Equal(t, "0x0DE1", g.consts["Texture2D"])
	assert.Equal(t, "0xFFFFFFFFFFFFFFFF", g.consts["TimeoutIgnored"])
	assert.Equal(t, "0x92E0", g.consts["DebugOutput"])
	assert.NotContains(t, g.consts, "Accum")

	assert.Equal(t, "(mask uint32)", g.funcs["Clear"])
	assert.Equal(t, "(red float32, green float32, blue float32, alpha float32)", g.funcs["ClearColor"])
	assert.Equal(t, "(name uint32) unsafe.Pointer", g.funcs["GetString"])
	assert.Equal(t, "(program uint32, name string) int32", g.funcs["GetUniformLocation"])
	assert.Equal(t, "(cap uint32) bool", g.funcs["IsEnabled"])
	assert.Equal(t, "(condition uint32, flags uint32) uintptr", g.funcs["FenceSync"])
	assert.Equal(t, "(sync uintptr, flags uint32, timeout uint64) uint32", g.funcs["ClientWaitSync"])
	assert.Equal(t, "(target uint32, size int, data unsafe.Pointer, usage uint32)", g.funcs["BufferData"])
	assert.Equal(t, "(shader uint32, count int32, xstring unsafe.Pointer, length unsafe.Pointer)", g.funcs["ShaderSource"])
	assert.Equal(t, "(index uint32, size int32, xtype uint32, normalized bool, stride int32, pointer unsafe.Pointer)", g.funcs["VertexAttribPointer"])
	assert.Equal(t, "(callback uintptr, userParam unsafe.Pointer)", g.funcs["DebugMessageCallback"])
	assert.Equal(t, "(getProcAddress func(name string) unsafe.Pointer) error", g.funcs["Init"])
	assert.NotContains(t, g.funcs, "Begin")

	assert.Contains(t, string(src), `{"glClearColor", &fnClearColor}`)
}

func TestSourceCompatibility(t *testing.T) {
	fs := selectTest(t, registry.Selection{API: "gl", Version: "2.0"})
	src, err := Source(fs, "gl20")
	require.NoError(t, err)
	g := parseGenerated(t, src)
	assert.Equal(t, "gl20", g.pkg)
	assert.Equal(t, "(mode uint32)", g.funcs["Begin"])
	assert.Equal(t, "0x0100", g.consts["Accum"])
	assert.NotContains(t, g.funcs, "FenceSync")
}

func TestSourceNameCollision(t *testing.T) {
	fs := &registry.FeatureSet{
		Selection: registry.Selection{API: "gl", Version: "1.0"},
		Enums: []*registry.Enum{
			{Name: "GL_CLEAR", Value: "0x1500"},
			{Name: "GL_RGBA8", Value: "0x8058"},
			{Name: "GL_RGBA_8", Value: "0x9999"},
		},
		Commands: []*registry.Command{{
			Name:   "glClear",
			Return: registry.Param{Name: "glClear", Type: "void", PType: "void"},
			Params: []registry.Param{{Name: "mask", Type: "GLbitfield", PType: "GLbitfield"}},
		}},
	}
	src, err := Source(fs, "gl")
	require.NoError(t, err)
	g := parseGenerated(t, src)
	assert.Equal(t, "0x1500", g.consts["GLClear"])
	assert.Equal(t, "0x8058", g.consts["Rgba8"])
	assert.Len(t, g.consts, 2)
	assert.Contains(t, g.funcs, "Clear")
}

func TestSourceErrors(t *testing.T) {
	fs := &registry.FeatureSet{
		Commands: []*registry.Command{{
			Name:   "glMystery",
			Return: registry.Param{Type: "void", PType: "void"},
			Params: []registry.Param{{Name: "x", Type: "GLmystery", PType: "GLmystery"}},
		}},
	}
	_, err := Source(fs, "gl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "glMystery")

	fs = &registry.FeatureSet{Enums: []*registry.Enum{{Name: "GL_BAD", Value: "GL_OTHER"}}}
	_, err = Source(fs, "gl")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gl.go")
	err := Generate(&Config{
		Registry: testRegistry,
		API:      "gles2",
		Version:  "2.0",
		Package:  "gles2",
		Output:   out,
	})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	g := parseGenerated(t, src)
	assert.Equal(t, "gles2", g.pkg)
	assert.Equal(t, "(mode uint32, first int32, count int32)", g.funcs["DrawArrays"])

	err = Generate(&Config{Registry: testRegistry, API: "gl", Version: "9.9", Output: out})
	assert.Error(t, err)
	err = Generate(&Config{Registry: "testdata/none.xml", Output: out})
	assert.Error(t, err)
}
