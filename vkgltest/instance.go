package vkgltest

import (
	"github.com/celer/vkgl/vk"
)

func (d *Driver) EnumerateInstanceVersion() (vk.Version, vk.Result) {
	return d.Version, d.record("EnumerateInstanceVersion")
}

func (d *Driver) EnumerateInstanceLayerProperties(count *uint32, properties []vk.LayerProperties) vk.Result {
	if r := d.record("EnumerateInstanceLayerProperties", properties == nil); r != vk.Success {
		return r
	}
	return enumerate(d.Layers, count, properties)
}

func (d *Driver) EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	if r := d.record("EnumerateInstanceExtensionProperties", layerName, properties == nil); r != vk.Success {
		return r
	}
	return enumerate(d.Extensions, count, properties)
}

func (d *Driver) CreateInstance(info *vk.InstanceCreateInfo, instance *vk.Instance) vk.Result {
	r := d.record("CreateInstance", *info)
	if r == vk.Success {
		*instance = vk.Instance(d.handle("Instance"))
	}
	return r
}

func (d *Driver) InstanceCommands(instance vk.Instance) (vk.InstanceCommands, error) {
	return d, nil
}

func (d *Driver) DestroyInstance(instance vk.Instance) {
	d.record("DestroyInstance", instance)
	d.release("Instance", uint64(instance))
}

func (d *Driver) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, devices []vk.PhysicalDevice) vk.Result {
	if r := d.record("EnumeratePhysicalDevices", instance, devices == nil); r != vk.Success {
		return r
	}
	d.mu.Lock()
	handles := make([]vk.PhysicalDevice, len(d.PhysicalDevices))
	d.mu.Unlock()
	for i := range handles {
		handles[i] = vk.PhysicalDevice(i + 1)
	}
	return enumerate(handles, count, devices)
}

func (d *Driver) GetPhysicalDeviceProperties(physicalDevice vk.PhysicalDevice, properties *vk.PhysicalDeviceProperties) {
	d.record("GetPhysicalDeviceProperties", physicalDevice)
	if p := d.physicalDevice(physicalDevice); p != nil {
		*properties = p.Properties
	}
}

func (d *Driver) GetPhysicalDeviceMemoryProperties(physicalDevice vk.PhysicalDevice, properties *vk.PhysicalDeviceMemoryProperties) {
	d.record("GetPhysicalDeviceMemoryProperties", physicalDevice)
	if p := d.physicalDevice(physicalDevice); p != nil {
		properties.MemoryTypes = append([]vk.MemoryType(nil), p.Memory.MemoryTypes...)
		properties.MemoryHeaps = append([]vk.MemoryHeap(nil), p.Memory.MemoryHeaps...)
	}
}

func (d *Driver) GetPhysicalDeviceQueueFamilyProperties(physicalDevice vk.PhysicalDevice, count *uint32, properties []vk.QueueFamilyProperties) {
	d.record("GetPhysicalDeviceQueueFamilyProperties", physicalDevice, properties == nil)
	p := d.physicalDevice(physicalDevice)
	if p == nil {
		*count = 0
		return
	}
	enumerate(p.QueueFamilies, count, properties)
}

func (d *Driver) GetPhysicalDeviceFormatProperties(physicalDevice vk.PhysicalDevice, format vk.Format, properties *vk.FormatProperties) {
	d.record("GetPhysicalDeviceFormatProperties", physicalDevice, format)
	if p := d.physicalDevice(physicalDevice); p != nil {
		*properties = p.Formats[format]
	}
}

func (d *Driver) EnumerateDeviceExtensionProperties(physicalDevice vk.PhysicalDevice, layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	if r := d.record("EnumerateDeviceExtensionProperties", physicalDevice, layerName, properties == nil); r != vk.Success {
		return r
	}
	p := d.physicalDevice(physicalDevice)
	if p == nil {
		return vk.ErrorInitializationFailed
	}
	return enumerate(p.Extensions, count, properties)
}

func (d *Driver) CreateDevice(physicalDevice vk.PhysicalDevice, info *vk.DeviceCreateInfo, device *vk.Device) vk.Result {
	r := d.record("CreateDevice", physicalDevice, *info)
	if r == vk.Success {
		*device = vk.Device(d.handle("Device"))
	}
	return r
}

func (d *Driver) DeviceCommands(device vk.Device) (vk.DeviceCommands, error) {
	return d, nil
}

func (d *Driver) GetPhysicalDeviceSurfaceSupport(physicalDevice vk.PhysicalDevice, queueFamilyIndex uint32, surface vk.Surface, supported *bool) vk.Result {
	r := d.record("GetPhysicalDeviceSurfaceSupport", physicalDevice, queueFamilyIndex, surface)
	if p := d.physicalDevice(physicalDevice); p != nil && int(queueFamilyIndex) < len(p.PresentSupport) {
		*supported = p.PresentSupport[queueFamilyIndex]
	} else {
		*supported = false
	}
	return r
}

func (d *Driver) GetPhysicalDeviceSurfaceCapabilities(physicalDevice vk.PhysicalDevice, surface vk.Surface, capabilities *vk.SurfaceCapabilities) vk.Result {
	r := d.record("GetPhysicalDeviceSurfaceCapabilities", physicalDevice, surface)
	if p := d.physicalDevice(physicalDevice); p != nil && r == vk.Success {
		*capabilities = p.SurfaceCapabilities
	}
	return r
}

func (d *Driver) GetPhysicalDeviceSurfaceFormats(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, formats []vk.SurfaceFormat) vk.Result {
	if r := d.record("GetPhysicalDeviceSurfaceFormats", physicalDevice, surface, formats == nil); r != vk.Success {
		return r
	}
	p := d.physicalDevice(physicalDevice)
	if p == nil {
		return vk.ErrorSurfaceLost
	}
	return enumerate(p.SurfaceFormats, count, formats)
}

func (d *Driver) GetPhysicalDeviceSurfacePresentModes(physicalDevice vk.PhysicalDevice, surface vk.Surface, count *uint32, modes []vk.PresentMode) vk.Result {
	if r := d.record("GetPhysicalDeviceSurfacePresentModes", physicalDevice, surface, modes == nil); r != vk.Success {
		return r
	}
	p := d.physicalDevice(physicalDevice)
	if p == nil {
		return vk.ErrorSurfaceLost
	}
	return enumerate(p.PresentModes, count, modes)
}

// NewSurface returns a surface handle as a window system integration would.
func (d *Driver) NewSurface() vk.Surface {
	return vk.Surface(d.handle("Surface"))
}

func (d *Driver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	d.record("DestroySurface", instance, surface)
	d.release("Surface", uint64(surface))
}

func (d *Driver) CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo, callback *vk.DebugReportCallback) vk.Result {
	r := d.record("CreateDebugReportCallback", instance, info.Flags)
	if r != vk.Success {
		return r
	}
	h := vk.DebugReportCallback(d.handle("DebugReportCallback"))
	d.mu.Lock()
	d.callbacks[h] = *info
	d.mu.Unlock()
	*callback = h
	return r
}

func (d *Driver) DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback) {
	d.record("DestroyDebugReportCallback", instance, callback)
	d.mu.Lock()
	delete(d.callbacks, callback)
	d.mu.Unlock()
	d.release("DebugReportCallback", uint64(callback))
}
