package glgen

// Config contains the configuration information used by glgen.
type Config struct {

	// Registry is the path of the Khronos gl.xml registry.
	Registry string `default:"gl.xml"`

	// API is the feature api to generate: gl, gles1, gles2 or glsc2.
	API string `default:"gl"`

	// Version is the feature version, for example 3.3 or 4.6.
	Version string `default:"3.3"`

	// Profile is core, compatibility or empty for APIs without profiles.
	Profile string `default:"core"`

	// Extensions are extension names to include, for example GL_KHR_debug.
	Extensions []string

	// Package is the package name of the generated file.
	Package string `default:"gl"`

	// Output is the path of the generated file.
	Output string `default:"gl.go"`
}
