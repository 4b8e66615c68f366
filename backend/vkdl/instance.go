package vkdl

import (
	"unsafe"

	"github.com/celer/vkgl/vk"
)

type instanceTable struct {
	getDeviceProcAddr func(device vk.Device, name string) uintptr

	destroyInstance                        func(instance vk.Instance, allocator uintptr)
	enumeratePhysicalDevices               func(instance vk.Instance, count *uint32, devices unsafe.Pointer) vk.Result
	getPhysicalDeviceProperties            func(physicalDevice vk.PhysicalDevice, properties unsafe.Pointer)
	getPhysicalDeviceMemoryProperties      func(physicalDevice vk.PhysicalDevice, properties unsafe.Pointer)
	getPhysicalDeviceQueueFamilyProperties func(physicalDevice vk.PhysicalDevice, count *uint32, properties unsafe.Pointer)
	getPhysicalDeviceFormatProperties      func(physicalDevice vk.PhysicalDevice, format vk.Format, properties unsafe.Pointer)
	enumerateDeviceExtensionProperties     func(physicalDevice vk.PhysicalDevice, layerName uintptr, count *uint32, properties unsafe.Pointer) vk.Result
	createDevice                           func(physicalDevice vk.PhysicalDevice, info unsafe.Pointer, allocator uintptr, device *vk.Device) vk.Result

	// VK_KHR_surface
	getPhysicalDeviceSurfaceSupport      func(physicalDevice vk.PhysicalDevice, queueFamilyIndex uint32, surface vk.Surface, supported *uint32) vk.Result
	getPhysicalDeviceSurfaceCapabilities func(physicalDevice vk.PhysicalDevice, surface vk.Surface, capabilities unsafe.Pointer) vk.Result
	getPhysicalDeviceSurfaceFormats      func(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, formats unsafe.Pointer) vk.Result
	getPhysicalDeviceSurfacePresentModes func(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, modes unsafe.Pointer) vk.Result
	destroySurface                       func(instance vk.Instance, surface vk.Surface, allocator uintptr)

	// VK_EXT_debug_report
	createDebugReportCallback  func(instance vk.Instance, info unsafe.Pointer, allocator uintptr, callback *vk.DebugReportCallback) vk.Result
	destroyDebugReportCallback func(instance vk.Instance, callback vk.DebugReportCallback, allocator uintptr)
}

// debugReportTable is handed out when VK_EXT_debug_report resolved, so
// callers can find it with a type assertion on vk.DebugReportCommands.
type debugReportTable struct {
	*instanceTable
}

var (
	_ vk.InstanceCommands    = (*instanceTable)(nil)
	_ vk.DebugReportCommands = debugReportTable{}
)

func newInstanceTable(proc func(string) uintptr) (vk.InstanceCommands, error) {
	t := &instanceTable{}
	r := &resolver{proc: proc}
	r.bind(&t.getDeviceProcAddr, "vkGetDeviceProcAddr")
	r.bind(&t.destroyInstance, "vkDestroyInstance")
	r.bind(&t.enumeratePhysicalDevices, "vkEnumeratePhysicalDevices")
	r.bind(&t.getPhysicalDeviceProperties, "vkGetPhysicalDeviceProperties")
	r.bind(&t.getPhysicalDeviceMemoryProperties, "vkGetPhysicalDeviceMemoryProperties")
	r.bind(&t.getPhysicalDeviceQueueFamilyProperties, "vkGetPhysicalDeviceQueueFamilyProperties")
	r.bind(&t.getPhysicalDeviceFormatProperties, "vkGetPhysicalDeviceFormatProperties")
	r.bind(&t.enumerateDeviceExtensionProperties, "vkEnumerateDeviceExtensionProperties")
	r.bind(&t.createDevice, "vkCreateDevice")

	r.optional(&t.getPhysicalDeviceSurfaceSupport, "vkGetPhysicalDeviceSurfaceSupportKHR")
	r.optional(&t.getPhysicalDeviceSurfaceCapabilities, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	r.optional(&t.getPhysicalDeviceSurfaceFormats, "vkGetPhysicalDeviceSurfaceFormatsKHR")
	r.optional(&t.getPhysicalDeviceSurfacePresentModes, "vkGetPhysicalDeviceSurfacePresentModesKHR")
	r.optional(&t.destroySurface, "vkDestroySurfaceKHR")

	if err := r.err(); err != nil {
		return nil, err
	}
	if r.optional(&t.createDebugReportCallback, "vkCreateDebugReportCallbackEXT") &&
		r.optional(&t.destroyDebugReportCallback, "vkDestroyDebugReportCallbackEXT") {
		return debugReportTable{t}, nil
	}
	return t, nil
}

func (t *instanceTable) DestroyInstance(instance vk.Instance) {
	t.destroyInstance(instance, 0)
}

func (t *instanceTable) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, devices []vk.PhysicalDevice) vk.Result {
	if devices != nil {
		*count = min(*count, uint32(len(devices)))
	}
	return t.enumeratePhysicalDevices(instance, count, slicePtr(devices))
}

func (t *instanceTable) GetPhysicalDeviceProperties(physicalDevice vk.PhysicalDevice, properties *vk.PhysicalDeviceProperties) {
	var c cPhysicalDeviceProperties
	t.getPhysicalDeviceProperties(physicalDevice, unsafe.Pointer(&c))
	*properties = physicalDeviceProperties(&c)
}

func (t *instanceTable) GetPhysicalDeviceMemoryProperties(physicalDevice vk.PhysicalDevice, properties *vk.PhysicalDeviceMemoryProperties) {
	var c cPhysicalDeviceMemoryProperties
	t.getPhysicalDeviceMemoryProperties(physicalDevice, unsafe.Pointer(&c))
	*properties = memoryProperties(&c)
}

// QueueFamilyProperties matches VkQueueFamilyProperties, so the slice is
// written in place.
func (t *instanceTable) GetPhysicalDeviceQueueFamilyProperties(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.QueueFamilyProperties) {
	if properties != nil {
		*count = min(*count, uint32(len(properties)))
	}
	t.getPhysicalDeviceQueueFamilyProperties(physicalDevice, count, slicePtr(properties))
}

func (t *instanceTable) GetPhysicalDeviceFormatProperties(physicalDevice vk.PhysicalDevice, format vk.Format, properties *vk.FormatProperties) {
	t.getPhysicalDeviceFormatProperties(physicalDevice, format, unsafe.Pointer(properties))
}

func (t *instanceTable) EnumerateDeviceExtensionProperties(physicalDevice vk.PhysicalDevice, layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	var a arena
	defer a.free()
	layer := a.optionalCString(layerName)
	if properties == nil {
		return t.enumerateDeviceExtensionProperties(physicalDevice, layer, count, nil)
	}
	c := make([]cExtensionProperties, min(int(*count), len(properties)))
	*count = uint32(len(c))
	r := t.enumerateDeviceExtensionProperties(physicalDevice, layer, count, slicePtr(c))
	copyExtensionProperties(properties, c[:*count])
	return r
}

func (t *instanceTable) CreateDevice(physicalDevice vk.PhysicalDevice, info *vk.DeviceCreateInfo, device *vk.Device) vk.Result {
	var a arena
	defer a.free()
	return t.createDevice(physicalDevice, unsafe.Pointer(a.deviceCreateInfo(info)), 0, device)
}

// DeviceCommands resolves device level commands through vkGetDeviceProcAddr.
func (t *instanceTable) DeviceCommands(device vk.Device) (vk.DeviceCommands, error) {
	d, err := newDeviceTable(func(name string) uintptr {
		return t.getDeviceProcAddr(device, name)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (t *instanceTable) GetPhysicalDeviceSurfaceSupport(physicalDevice vk.PhysicalDevice, queueFamilyIndex uint32, surface vk.Surface, supported *bool) vk.Result {
	if t.getPhysicalDeviceSurfaceSupport == nil {
		return vk.ErrorExtensionNotPresent
	}
	var b uint32
	r := t.getPhysicalDeviceSurfaceSupport(physicalDevice, queueFamilyIndex, surface, &b)
	*supported = b != 0
	return r
}

// SurfaceCapabilities matches VkSurfaceCapabilitiesKHR.
func (t *instanceTable) GetPhysicalDeviceSurfaceCapabilities(physicalDevice vk.PhysicalDevice, surface vk.Surface, capabilities *vk.SurfaceCapabilities) vk.Result {
	if t.getPhysicalDeviceSurfaceCapabilities == nil {
		return vk.ErrorExtensionNotPresent
	}
	return t.getPhysicalDeviceSurfaceCapabilities(physicalDevice, surface, unsafe.Pointer(capabilities))
}

func (t *instanceTable) GetPhysicalDeviceSurfaceFormats(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, formats []vk.SurfaceFormat) vk.Result {
	if t.getPhysicalDeviceSurfaceFormats == nil {
		return vk.ErrorExtensionNotPresent
	}
	if formats != nil {
		*count = min(*count, uint32(len(formats)))
	}
	return t.getPhysicalDeviceSurfaceFormats(physicalDevice, surface, count, slicePtr(formats))
}

func (t *instanceTable) GetPhysicalDeviceSurfacePresentModes(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, modes []vk.PresentMode) vk.Result {
	if t.getPhysicalDeviceSurfacePresentModes == nil {
		return vk.ErrorExtensionNotPresent
	}
	if modes != nil {
		*count = min(*count, uint32(len(modes)))
	}
	return t.getPhysicalDeviceSurfacePresentModes(physicalDevice, surface, count, slicePtr(modes))
}

func (t *instanceTable) DestroySurface(instance vk.Instance, surface vk.Surface) {
	if t.destroySurface != nil {
		t.destroySurface(instance, surface, 0)
	}
}

func (t debugReportTable) CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo, callback *vk.DebugReportCallback) vk.Result {
	id := callbacks.add(info.Callback)
	c := cDebugReportCallbackCreateInfo{
		sType:       structureTypeDebugReportCallbackCreateInfo,
		flags:       uint32(info.Flags),
		pfnCallback: debugReportTrampoline(),
		pUserData:   id,
	}
	r := t.createDebugReportCallback(instance, unsafe.Pointer(&c), 0, callback)
	if r != vk.Success {
		callbacks.remove(id)
		return r
	}
	callbacks.bind(*callback, id)
	return r
}

func (t debugReportTable) DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback) {
	t.destroyDebugReportCallback(instance, callback, 0)
	callbacks.release(callback)
}
