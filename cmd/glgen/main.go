// Command glgen generates Go bindings for an OpenGL API selection of the
// Khronos gl.xml registry.
package main

import (
	"cogentcore.org/core/cli"

	"github.com/celer/vkgl/gl/glgen"
)

func main() {
	opts := cli.DefaultOptions("glgen", "Glgen generates Go bindings for one OpenGL API, version and profile of the Khronos gl.xml registry.")
	cli.Run(opts, &glgen.Config{}, glgen.Generate)
}
