//go:build cgo

package vkgo

import (
	"unsafe"

	vkgo "github.com/vulkan-go/vulkan"

	"github.com/celer/vkgl/vk"
)

// instanceTable forwards to vulkan-go, which dispatches through the
// pointers loaded by InitInstance. VK_EXT_debug_report is always present in
// vulkan-go's table; the driver reports a missing extension itself.
type instanceTable struct{}

var (
	_ vk.InstanceCommands    = instanceTable{}
	_ vk.DebugReportCommands = instanceTable{}
)

func (instanceTable) DestroyInstance(instance vk.Instance) {
	vkgo.DestroyInstance(handle[vkgo.Instance](instance), nil)
}

func (instanceTable) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, devices []vk.PhysicalDevice) vk.Result {
	if devices != nil {
		*count = min(*count, uint32(len(devices)))
	}
	return vk.Result(vkgo.EnumeratePhysicalDevices(handle[vkgo.Instance](instance), count, handles[vkgo.PhysicalDevice](devices)))
}

func (instanceTable) GetPhysicalDeviceProperties(physicalDevice vk.PhysicalDevice, properties *vk.PhysicalDeviceProperties) {
	var p vkgo.PhysicalDeviceProperties
	vkgo.GetPhysicalDeviceProperties(handle[vkgo.PhysicalDevice](physicalDevice), &p)
	*properties = physicalDeviceProperties(&p)
}

func (instanceTable) GetPhysicalDeviceMemoryProperties(physicalDevice vk.PhysicalDevice, properties *vk.PhysicalDeviceMemoryProperties) {
	var p vkgo.PhysicalDeviceMemoryProperties
	vkgo.GetPhysicalDeviceMemoryProperties(handle[vkgo.PhysicalDevice](physicalDevice), &p)
	*properties = memoryProperties(&p)
}

func (instanceTable) GetPhysicalDeviceQueueFamilyProperties(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.QueueFamilyProperties) {
	pd := handle[vkgo.PhysicalDevice](physicalDevice)
	if properties == nil {
		vkgo.GetPhysicalDeviceQueueFamilyProperties(pd, count, nil)
		return
	}
	c := make([]vkgo.QueueFamilyProperties, min(int(*count), len(properties)))
	*count = uint32(len(c))
	vkgo.GetPhysicalDeviceQueueFamilyProperties(pd, count, c)
	for i := range c[:*count] {
		c[i].Deref()
		g := c[i].MinImageTransferGranularity
		g.Deref()
		properties[i] = vk.QueueFamilyProperties{
			QueueFlags:                  vk.QueueFlags(c[i].QueueFlags),
			QueueCount:                  c[i].QueueCount,
			TimestampValidBits:          c[i].TimestampValidBits,
			MinImageTransferGranularity: vk.Extent3D{Width: g.Width, Height: g.Height, Depth: g.Depth},
		}
	}
}

func (instanceTable) GetPhysicalDeviceFormatProperties(physicalDevice vk.PhysicalDevice, format vk.Format, properties *vk.FormatProperties) {
	var p vkgo.FormatProperties
	vkgo.GetPhysicalDeviceFormatProperties(handle[vkgo.PhysicalDevice](physicalDevice), vkgo.Format(format), &p)
	p.Deref()
	*properties = vk.FormatProperties{
		LinearTilingFeatures:  vk.FormatFeatureFlags(p.LinearTilingFeatures),
		OptimalTilingFeatures: vk.FormatFeatureFlags(p.OptimalTilingFeatures),
		BufferFeatures:        vk.FormatFeatureFlags(p.BufferFeatures),
	}
}

func (instanceTable) EnumerateDeviceExtensionProperties(physicalDevice vk.PhysicalDevice, layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	pd := handle[vkgo.PhysicalDevice](physicalDevice)
	layerName = optionalString(layerName)
	if properties == nil {
		return vk.Result(vkgo.EnumerateDeviceExtensionProperties(pd, layerName, count, nil))
	}
	c := make([]vkgo.ExtensionProperties, min(int(*count), len(properties)))
	*count = uint32(len(c))
	r := vkgo.EnumerateDeviceExtensionProperties(pd, layerName, count, c)
	copyExtensionProperties(properties, c[:*count])
	return vk.Result(r)
}

func (instanceTable) CreateDevice(physicalDevice vk.PhysicalDevice, info *vk.DeviceCreateInfo, device *vk.Device) vk.Result {
	var h vkgo.Device
	r := vkgo.CreateDevice(handle[vkgo.PhysicalDevice](physicalDevice), deviceCreateInfo(info), nil, &h)
	*device = handle[vk.Device](h)
	return vk.Result(r)
}

// DeviceCommands returns the device table; vulkan-go resolves device
// commands through the instance pointers.
func (instanceTable) DeviceCommands(vk.Device) (vk.DeviceCommands, error) {
	return deviceTable{}, nil
}

func (instanceTable) GetPhysicalDeviceSurfaceSupport(physicalDevice vk.PhysicalDevice, queueFamilyIndex uint32, surface vk.Surface, supported *bool) vk.Result {
	var b vkgo.Bool32
	r := vkgo.GetPhysicalDeviceSurfaceSupport(handle[vkgo.PhysicalDevice](physicalDevice), queueFamilyIndex, handle[vkgo.Surface](surface), &b)
	*supported = b != 0
	return vk.Result(r)
}

func (instanceTable) GetPhysicalDeviceSurfaceCapabilities(physicalDevice vk.PhysicalDevice, surface vk.Surface, capabilities *vk.SurfaceCapabilities) vk.Result {
	var c vkgo.SurfaceCapabilities
	r := vkgo.GetPhysicalDeviceSurfaceCapabilities(handle[vkgo.PhysicalDevice](physicalDevice), handle[vkgo.Surface](surface), &c)
	*capabilities = surfaceCapabilities(&c)
	return vk.Result(r)
}

func (instanceTable) GetPhysicalDeviceSurfaceFormats(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, formats []vk.SurfaceFormat) vk.Result {
	pd, s := handle[vkgo.PhysicalDevice](physicalDevice), handle[vkgo.Surface](surface)
	if formats == nil {
		return vk.Result(vkgo.GetPhysicalDeviceSurfaceFormats(pd, s, count, nil))
	}
	c := make([]vkgo.SurfaceFormat, min(int(*count), len(formats)))
	*count = uint32(len(c))
	r := vkgo.GetPhysicalDeviceSurfaceFormats(pd, s, count, c)
	for i := range c[:*count] {
		c[i].Deref()
		formats[i] = vk.SurfaceFormat{Format: vk.Format(c[i].Format), ColorSpace: vk.ColorSpace(c[i].ColorSpace)}
	}
	return vk.Result(r)
}

func (instanceTable) GetPhysicalDeviceSurfacePresentModes(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, modes []vk.PresentMode) vk.Result {
	pd, s := handle[vkgo.PhysicalDevice](physicalDevice), handle[vkgo.Surface](surface)
	if modes == nil {
		return vk.Result(vkgo.GetPhysicalDeviceSurfacePresentModes(pd, s, count, nil))
	}
	c := make([]vkgo.PresentMode, min(int(*count), len(modes)))
	*count = uint32(len(c))
	r := vkgo.GetPhysicalDeviceSurfacePresentModes(pd, s, count, c)
	for i := range c[:*count] {
		modes[i] = vk.PresentMode(c[i])
	}
	return vk.Result(r)
}

func (instanceTable) DestroySurface(instance vk.Instance, surface vk.Surface) {
	vkgo.DestroySurface(handle[vkgo.Instance](instance), handle[vkgo.Surface](surface), nil)
}

func (instanceTable) CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo, callback *vk.DebugReportCallback) vk.Result {
	fn := info.Callback
	c := &vkgo.DebugReportCallbackCreateInfo{
		SType: vkgo.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vkgo.DebugReportFlags(info.Flags),
		PfnCallback: func(flags vkgo.DebugReportFlags, objectType vkgo.DebugReportObjectType, object uint64,
			location uint, messageCode int32, layerPrefix, message string, _ unsafe.Pointer) vkgo.Bool32 {
			return bool32(fn(vk.DebugReportFlags(flags), vk.DebugReportObjectType(objectType), object,
				location, messageCode, layerPrefix, message))
		},
	}
	var h vkgo.DebugReportCallback
	r := vkgo.CreateDebugReportCallback(handle[vkgo.Instance](instance), c, nil, &h)
	*callback = handle[vk.DebugReportCallback](h)
	return vk.Result(r)
}

func (instanceTable) DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback) {
	vkgo.DestroyDebugReportCallback(handle[vkgo.Instance](instance), handle[vkgo.DebugReportCallback](callback), nil)
}
