// Command vkinfo prints the Vulkan layers, extensions and physical devices
// visible through one of the vkgl backends.
package main

import (
	"cogentcore.org/core/cli"
)

// Config is the vkinfo configuration.
type Config struct {

	// Backend is the loader backend: vkdl (purego) or vkgo (cgo).
	Backend string `default:"vkdl"`

	// Format is the output format: text or yaml.
	Format string `default:"text"`

	// Validation enables VK_LAYER_KHRONOS_validation when it is installed.
	Validation bool
}

func main() {
	opts := cli.DefaultOptions("vkinfo", "Vkinfo reports the Vulkan instance layers, extensions and physical devices.")
	cli.Run(opts, &Config{}, Run)
}
