package glgen

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/celer/vkgl/gl/registry"
)

// EnumName converts GL_COLOR_BUFFER_BIT to ColorBufferBit. Names that would
// start with a digit keep a GL prefix, so GL_2D becomes GL2D.
func EnumName(name string) string {
	n := strcase.ToCamel(strings.TrimPrefix(name, "GL_"))
	if n == "" || (n[0] >= '0' && n[0] <= '9') {
		return "GL" + n
	}
	return n
}

// CommandName converts glClearColor to ClearColor.
func CommandName(name string) string {
	n := strings.TrimPrefix(name, "gl")
	if n == "" || (n[0] >= '0' && n[0] <= '9') {
		return "GL" + n
	}
	return strings.ToUpper(n[:1]) + n[1:]
}

// ParamName returns a Go identifier for a C parameter name.
func ParamName(name string) string {
	if token.IsKeyword(name) || name == "string" {
		return "x" + name
	}
	return name
}

var baseTypes = map[string]string{
	"GLenum":           "uint32",
	"GLbitfield":       "uint32",
	"GLuint":           "uint32",
	"GLint":            "int32",
	"GLsizei":          "int32",
	"GLfixed":          "int32",
	"GLclampx":         "int32",
	"GLfloat":          "float32",
	"GLclampf":         "float32",
	"GLdouble":         "float64",
	"GLclampd":         "float64",
	"GLboolean":        "bool",
	"GLbyte":           "int8",
	"GLchar":           "int8",
	"GLcharARB":        "int8",
	"GLubyte":          "uint8",
	"GLshort":          "int16",
	"GLushort":         "uint16",
	"GLhalf":           "uint16",
	"GLhalfARB":        "uint16",
	"GLhalfNV":         "uint16",
	"GLint64":          "int64",
	"GLint64EXT":       "int64",
	"GLuint64":         "uint64",
	"GLuint64EXT":      "uint64",
	"GLintptr":         "int",
	"GLintptrARB":      "int",
	"GLsizeiptr":       "int",
	"GLsizeiptrARB":    "int",
	"GLvdpauSurfaceNV": "int",
	"GLhandleARB":      "uint32",
	"GLsync":           "uintptr",

	"GLDEBUGPROC":    "uintptr",
	"GLDEBUGPROCARB": "uintptr",
	"GLDEBUGPROCKHR": "uintptr",
	"GLDEBUGPROCAMD": "uintptr",
	"GLVULKANPROCNV": "uintptr",

	"GLeglImageOES":        "unsafe.Pointer",
	"GLeglClientBufferEXT": "unsafe.Pointer",
}

// GoType maps a C parameter or return type to the Go type used in the
// generated signature. A void return maps to the empty string. Only
// parameters map const GLchar pointers to string.
func GoType(p registry.Param, param bool) (string, error) {
	switch {
	case p.Pointers == 1 && p.Const && p.PType == "GLchar" && param:
		return "string", nil
	case p.Pointers > 0:
		return "unsafe.Pointer", nil
	case p.PType == "void" && !param:
		return "", nil
	}
	t, ok := baseTypes[p.PType]
	if !ok {
		return "", fmt.Errorf("unsupported type %q", p.Type)
	}
	return t, nil
}
