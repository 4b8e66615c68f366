//go:build linux || darwin || freebsd

package vkdl

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	openOnce sync.Once
	openErr  error
	library  uintptr
)

func libraryPaths() (names, dirs []string) {
	switch runtime.GOOS {
	case "darwin":
		names = []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}
		dirs = []string{"/usr/local/lib", "/opt/homebrew/lib"}
	default:
		names = []string{"libvulkan.so.1", "libvulkan.so"}
		dirs = []string{"/usr/lib/x86_64-linux-gnu", "/usr/lib/aarch64-linux-gnu", "/usr/lib64", "/usr/lib", "/usr/local/lib"}
	}
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		dirs = append([]string{filepath.Join(sdk, "lib")}, dirs...)
	}
	return names, dirs
}

func openLibrary() (uintptr, error) {
	names, dirs := libraryPaths()
	for _, name := range names {
		// bare names go through the dynamic linker search path first
		if lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
			return lib, nil
		}
		for _, dir := range dirs {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
				return lib, nil
			}
		}
	}
	return 0, fmt.Errorf("%w (tried %v in %v)", ErrLibraryNotFound, names, dirs)
}

// Open loads the system Vulkan loader and returns its global commands. The
// library is opened once per process.
func Open() (*Loader, error) {
	openOnce.Do(func() {
		library, openErr = openLibrary()
	})
	if openErr != nil {
		return nil, openErr
	}
	addr, err := purego.Dlsym(library, "vkGetInstanceProcAddr")
	if err != nil {
		return nil, fmt.Errorf("vkdl: %w", err)
	}
	return New(addr)
}
