//go:build !(linux || darwin || freebsd)

package vkdl

import (
	"fmt"
	"runtime"
)

// Open is only supported where purego can dlopen. Elsewhere pass the address
// of vkGetInstanceProcAddr to New, for example from the window package.
func Open() (*Loader, error) {
	return nil, fmt.Errorf("%w on %s", ErrLibraryNotFound, runtime.GOOS)
}
