// Package vkdl implements the vk dispatch interfaces on top of the system
// Vulkan loader, resolved at runtime with purego. It needs no cgo.
//
//	loader, err := vkdl.Open()
//	...
//	instance, err := (&vkgl.App{Name: "compute", Loader: loader}).CreateInstance()
//
// Every command is looked up with vkGetInstanceProcAddr or
// vkGetDeviceProcAddr into a typed function field, so a device table calls
// straight into the driver without the loader trampoline.
package vkdl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/celer/vkgl/vk"
)

var (
	// ErrLibraryNotFound is returned by Open when no Vulkan loader library
	// could be opened.
	ErrLibraryNotFound = errors.New("vulkan library not found")
	// ErrMissingCommand is returned when a required command does not resolve.
	ErrMissingCommand = errors.New("vulkan command not found")
)

// resolver binds command addresses into typed function fields.
type resolver struct {
	proc    func(name string) uintptr
	missing []string
}

// bind resolves a required command.
func (r *resolver) bind(fptr any, name string) {
	if !r.optional(fptr, name) {
		r.missing = append(r.missing, name)
	}
}

// optional resolves a command that may be absent, such as an extension
// command that was not enabled.
func (r *resolver) optional(fptr any, name string) bool {
	addr := r.proc(name)
	if addr == 0 {
		return false
	}
	purego.RegisterFunc(fptr, addr)
	return true
}

func (r *resolver) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingCommand, strings.Join(r.missing, ", "))
}

// Loader holds the global commands and implements vk.Loader.
type Loader struct {
	getInstanceProcAddr func(instance vk.Instance, name string) uintptr

	enumerateInstanceVersion             func(version *uint32) vk.Result
	enumerateInstanceLayerProperties     func(count *uint32, properties unsafe.Pointer) vk.Result
	enumerateInstanceExtensionProperties func(layerName uintptr, count *uint32, properties unsafe.Pointer) vk.Result
	createInstance                       func(info unsafe.Pointer, allocator uintptr, instance *vk.Instance) vk.Result
}

var _ vk.Loader = (*Loader)(nil)

// New builds a Loader from the address of vkGetInstanceProcAddr, which can
// come from Open or from a windowing library such as GLFW.
func New(getInstanceProcAddr uintptr) (*Loader, error) {
	if getInstanceProcAddr == 0 {
		return nil, fmt.Errorf("%w: vkGetInstanceProcAddr", ErrMissingCommand)
	}
	l := &Loader{}
	purego.RegisterFunc(&l.getInstanceProcAddr, getInstanceProcAddr)

	r := &resolver{proc: l.procAddr(vk.NullInstance)}
	// vkEnumerateInstanceVersion only exists on 1.1+ loaders
	r.optional(&l.enumerateInstanceVersion, "vkEnumerateInstanceVersion")
	r.bind(&l.enumerateInstanceLayerProperties, "vkEnumerateInstanceLayerProperties")
	r.bind(&l.enumerateInstanceExtensionProperties, "vkEnumerateInstanceExtensionProperties")
	r.bind(&l.createInstance, "vkCreateInstance")
	if err := r.err(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loader) procAddr(instance vk.Instance) func(string) uintptr {
	return func(name string) uintptr {
		return l.getInstanceProcAddr(instance, name)
	}
}

func (l *Loader) EnumerateInstanceVersion() (vk.Version, vk.Result) {
	if l.enumerateInstanceVersion == nil {
		return vk.APIVersion10, vk.Success
	}
	var v uint32
	r := l.enumerateInstanceVersion(&v)
	return vk.Version(v), r
}

func (l *Loader) EnumerateInstanceLayerProperties(count *uint32, properties []vk.LayerProperties) vk.Result {
	if properties == nil {
		return l.enumerateInstanceLayerProperties(count, nil)
	}
	c := make([]cLayerProperties, min(int(*count), len(properties)))
	*count = uint32(len(c))
	r := l.enumerateInstanceLayerProperties(count, slicePtr(c))
	for i := range c[:*count] {
		properties[i] = layerProperties(&c[i])
	}
	return r
}

func (l *Loader) EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	var a arena
	defer a.free()
	layer := a.optionalCString(layerName)
	if properties == nil {
		return l.enumerateInstanceExtensionProperties(layer, count, nil)
	}
	c := make([]cExtensionProperties, min(int(*count), len(properties)))
	*count = uint32(len(c))
	r := l.enumerateInstanceExtensionProperties(layer, count, slicePtr(c))
	copyExtensionProperties(properties, c[:*count])
	return r
}

func (l *Loader) CreateInstance(info *vk.InstanceCreateInfo, instance *vk.Instance) vk.Result {
	var a arena
	defer a.free()
	return l.createInstance(unsafe.Pointer(a.instanceCreateInfo(info)), 0, instance)
}

// InstanceCommands resolves the instance level commands of instance.
func (l *Loader) InstanceCommands(instance vk.Instance) (vk.InstanceCommands, error) {
	return newInstanceTable(l.procAddr(instance))
}

func layerProperties(c *cLayerProperties) vk.LayerProperties {
	return vk.LayerProperties{
		LayerName:             goString(c.layerName[:]),
		SpecVersion:           vk.Version(c.specVersion),
		ImplementationVersion: c.implementationVersion,
		Description:           goString(c.description[:]),
	}
}

func copyExtensionProperties(dst []vk.ExtensionProperties, src []cExtensionProperties) {
	for i := range src {
		dst[i] = vk.ExtensionProperties{
			ExtensionName: goString(src[i].extensionName[:]),
			SpecVersion:   src[i].specVersion,
		}
	}
}
