//go:build cgo

// Package vkgo implements the vk dispatch interfaces with
// github.com/vulkan-go/vulkan, which calls Vulkan through cgo.
//
// vulkan-go keeps one process wide set of function pointers, so only one
// instance should be created through this backend at a time.
package vkgo

import (
	"fmt"
	"unsafe"

	vkgo "github.com/vulkan-go/vulkan"

	"github.com/celer/vkgl/vk"
)

// Loader implements vk.Loader.
type Loader struct{}

var _ vk.Loader = Loader{}

// New initializes vulkan-go with the default loader library.
func New() (Loader, error) {
	if err := vkgo.SetDefaultGetInstanceProcAddr(); err != nil {
		return Loader{}, fmt.Errorf("vkgo: %w", err)
	}
	return initLoader()
}

// NewWithProcAddr initializes vulkan-go with a vkGetInstanceProcAddr provided
// by the caller, for example glfw.GetVulkanGetInstanceProcAddress.
func NewWithProcAddr(getInstanceProcAddr unsafe.Pointer) (Loader, error) {
	vkgo.SetGetInstanceProcAddr(getInstanceProcAddr)
	return initLoader()
}

func initLoader() (Loader, error) {
	if err := vkgo.Init(); err != nil {
		return Loader{}, fmt.Errorf("vkgo: %w", err)
	}
	return Loader{}, nil
}

// EnumerateInstanceVersion reports 1.0, the version vulkan-go binds.
func (Loader) EnumerateInstanceVersion() (vk.Version, vk.Result) {
	return vk.APIVersion10, vk.Success
}

func (Loader) EnumerateInstanceLayerProperties(count *uint32, properties []vk.LayerProperties) vk.Result {
	if properties == nil {
		return vk.Result(vkgo.EnumerateInstanceLayerProperties(count, nil))
	}
	c := make([]vkgo.LayerProperties, min(int(*count), len(properties)))
	*count = uint32(len(c))
	r := vkgo.EnumerateInstanceLayerProperties(count, c)
	for i := range c[:*count] {
		c[i].Deref()
		properties[i] = vk.LayerProperties{
			LayerName:             vk.ToString(c[i].LayerName[:]),
			SpecVersion:           vk.Version(c[i].SpecVersion),
			ImplementationVersion: c[i].ImplementationVersion,
			Description:           vk.ToString(c[i].Description[:]),
		}
	}
	return vk.Result(r)
}

func (Loader) EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	layerName = optionalString(layerName)
	if properties == nil {
		return vk.Result(vkgo.EnumerateInstanceExtensionProperties(layerName, count, nil))
	}
	c := make([]vkgo.ExtensionProperties, min(int(*count), len(properties)))
	*count = uint32(len(c))
	r := vkgo.EnumerateInstanceExtensionProperties(layerName, count, c)
	copyExtensionProperties(properties, c[:*count])
	return vk.Result(r)
}

func (Loader) CreateInstance(info *vk.InstanceCreateInfo, instance *vk.Instance) vk.Result {
	var h vkgo.Instance
	r := vkgo.CreateInstance(instanceCreateInfo(info), nil, &h)
	*instance = handle[vk.Instance](h)
	return vk.Result(r)
}

// InstanceCommands loads the instance level function pointers of instance
// into vulkan-go.
func (Loader) InstanceCommands(instance vk.Instance) (vk.InstanceCommands, error) {
	if err := vkgo.InitInstance(handle[vkgo.Instance](instance)); err != nil {
		return nil, fmt.Errorf("vkgo: %w", err)
	}
	return instanceTable{}, nil
}

func copyExtensionProperties(dst []vk.ExtensionProperties, src []vkgo.ExtensionProperties) {
	for i := range src {
		src[i].Deref()
		dst[i] = vk.ExtensionProperties{
			ExtensionName: vk.ToString(src[i].ExtensionName[:]),
			SpecVersion:   src[i].SpecVersion,
		}
	}
}
