// Package window connects GLFW windows to vkgl instances and to generated
// OpenGL bindings.
//
// GLFW must be used from the main thread. Init, NewVulkanWindow and
// Terminate follow that rule.
package window

import (
	"fmt"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/celer/vkgl"
	"github.com/celer/vkgl/backend/vkdl"
	"github.com/celer/vkgl/vk"
)

// Init initializes GLFW.
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts GLFW down, call as last thing before quitting.
func Terminate() {
	glfw.Terminate()
}

// NewVulkanWindow creates a window without a client API, ready for
// CreateSurface.
func NewVulkanWindow(width, height int, title string) (*glfw.Window, error) {
	if !glfw.VulkanSupported() {
		return nil, fmt.Errorf("glfw: vulkan is not supported")
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	return w, nil
}

// RequiredInstanceExtensions lists the instance extensions GLFW needs to
// create surfaces for w.
func RequiredInstanceExtensions(w *glfw.Window) []string {
	return w.GetRequiredInstanceExtensions()
}

// GetInstanceProcAddr returns GLFW's vkGetInstanceProcAddr.
func GetInstanceProcAddr() uintptr {
	return uintptr(glfw.GetVulkanGetInstanceProcAddress())
}

// NewLoader returns a purego loader bound to the Vulkan library GLFW loaded.
func NewLoader() (*vkdl.Loader, error) {
	return vkdl.New(GetInstanceProcAddr())
}

// GLProcAddress resolves OpenGL commands for the current context. It has
// the signature generated Init functions expect.
func GLProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// instanceArg converts an instance handle to the pointer kind
// glfw.Window.CreateWindowSurface requires.
func instanceArg(instance vk.Instance) *byte {
	return (*byte)(unsafe.Pointer(uintptr(instance)))
}

// CreateSurface creates a VkSurfaceKHR for w owned by instance.
func CreateSurface(instance *vkgl.Instance, w *glfw.Window) (*vkgl.Surface, error) {
	s, err := w.CreateWindowSurface(instanceArg(instance.VKInstance), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create surface within GLFW window: %w", err)
	}
	return instance.NewSurface(vk.Surface(s)), nil
}
