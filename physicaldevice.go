package vkgl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/celer/vkgl/vk"
)

// ErrNoMemoryType is returned when no memory type satisfies a request.
var ErrNoMemoryType = errors.New("vkgl: no matching memory type found")

type VKPresentModes []vk.PresentMode

func (v VKPresentModes) Filter(f vk.PresentMode) VKPresentModes {
	ret := make(VKPresentModes, 0)
	for _, s := range v {
		if f == s {
			ret = append(ret, s)
		}
	}
	return ret
}

type VKSurfaceFormats []vk.SurfaceFormat

func (v VKSurfaceFormats) Filter(f func(f vk.SurfaceFormat) bool) VKSurfaceFormats {
	ret := make(VKSurfaceFormats, 0)
	for _, s := range v {
		if f(s) {
			ret = append(ret, s)
		}
	}
	return ret
}

// PhysicalDevice is a GPU (or other implementation) reported by an instance.
// It holds no state besides its handle, every query goes to the driver.
type PhysicalDevice struct {
	Instance         *Instance
	VKPhysicalDevice vk.PhysicalDevice
}

func (p *PhysicalDevice) commands() vk.InstanceCommands {
	return p.Instance.Commands
}

// Properties queries the device properties.
func (p *PhysicalDevice) Properties() vk.PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	p.commands().GetPhysicalDeviceProperties(p.VKPhysicalDevice, &props)
	return props
}

// Name returns the device name from Properties.
func (p *PhysicalDevice) Name() string {
	return p.Properties().DeviceName
}

func (p *PhysicalDevice) String() string {
	return p.Name()
}

func (p *PhysicalDevice) GetSurfacePresentModes(surface *Surface) (VKPresentModes, error) {
	return enumerate(func(count *uint32, out []vk.PresentMode) vk.Result {
		return p.commands().GetPhysicalDeviceSurfacePresentModes(p.VKPhysicalDevice, surface.VKSurface, count, out)
	})
}

func (p *PhysicalDevice) GetSurfaceFormats(surface *Surface) (VKSurfaceFormats, error) {
	return enumerate(func(count *uint32, out []vk.SurfaceFormat) vk.Result {
		return p.commands().GetPhysicalDeviceSurfaceFormats(p.VKPhysicalDevice, surface.VKSurface, count, out)
	})
}

func (p *PhysicalDevice) GetSurfaceCapabilities(surface *Surface) (*vk.SurfaceCapabilities, error) {
	var caps vk.SurfaceCapabilities
	err := vk.Error(p.commands().GetPhysicalDeviceSurfaceCapabilities(p.VKPhysicalDevice, surface.VKSurface, &caps))
	if err != nil {
		return nil, err
	}
	return &caps, nil
}

// QueueFamilies returns the queue families of this device, indexed as the
// driver reports them.
func (p *PhysicalDevice) QueueFamilies() (QueueFamilySlice, error) {
	queues, err := enumerate(func(count *uint32, out []vk.QueueFamilyProperties) vk.Result {
		p.commands().GetPhysicalDeviceQueueFamilyProperties(p.VKPhysicalDevice, count, out)
		return vk.Success
	})
	if err != nil {
		return nil, err
	}

	ret := make(QueueFamilySlice, len(queues))
	for i, queue := range queues {
		ret[i] = &QueueFamily{Index: i, PhysicalDevice: p, Properties: queue}
	}
	return ret, nil
}

// FormatProperties queries the features supported for a format.
func (p *PhysicalDevice) FormatProperties(format vk.Format) vk.FormatProperties {
	var props vk.FormatProperties
	p.commands().GetPhysicalDeviceFormatProperties(p.VKPhysicalDevice, format, &props)
	return props
}

type CreateDeviceOptions struct {
	EnabledExtensions []string
	EnabledLayers     []string
	// QueueCount is the number of queues created per family, 1 when zero.
	QueueCount int
}

func (p *PhysicalDevice) CreateLogicalDeviceWithOptions(qfs QueueFamilySlice, options *CreateDeviceOptions) (*Device, error) {
	count := 1
	if options != nil && options.QueueCount > 0 {
		count = options.QueueCount
	}

	var deviceCreateInfo vk.DeviceCreateInfo
	seen := make(map[int]bool)
	for _, q := range qfs {
		if seen[q.Index] {
			continue
		}
		seen[q.Index] = true

		n := max(min(count, int(q.Properties.QueueCount)), 1)
		priorities := make([]float32, n)
		for i := range priorities {
			priorities[i] = 1.0
		}
		deviceCreateInfo.QueueCreateInfos = append(deviceCreateInfo.QueueCreateInfos, vk.DeviceQueueCreateInfo{
			QueueFamilyIndex: uint32(q.Index),
			QueuePriorities:  priorities,
		})
	}

	if options != nil {
		deviceCreateInfo.EnabledExtensionNames = options.EnabledExtensions
		deviceCreateInfo.EnabledLayerNames = options.EnabledLayers
	}

	var ldevice vk.Device
	err := vk.Error(p.commands().CreateDevice(p.VKPhysicalDevice, &deviceCreateInfo, &ldevice))
	if err != nil {
		return nil, fmt.Errorf("creating device: %w", err)
	}

	commands, err := p.commands().DeviceCommands(ldevice)
	if err != nil {
		return nil, fmt.Errorf("loading device commands: %w", err)
	}

	slog.Debug("vulkan device created", "device", p.Name(), "queueFamilies", len(deviceCreateInfo.QueueCreateInfos))

	var device Device
	device.PhysicalDevice = p
	device.VKDevice = ldevice
	device.Commands = commands

	return &device, nil
}

func (p *PhysicalDevice) CreateLogicalDevice(qfs QueueFamilySlice) (*Device, error) {
	return p.CreateLogicalDeviceWithOptions(qfs, nil)
}

type MemoryTypeSlice []vk.MemoryType

func (m MemoryTypeSlice) Filter(f func(properties vk.MemoryPropertyFlags) bool) MemoryTypeSlice {
	res := make(MemoryTypeSlice, 0)
	for i := 0; i < len(m); i++ {
		if f(m[i].PropertyFlags) {
			res = append(res, m[i])
		}
	}
	return res
}

func (m MemoryTypeSlice) NumHostCoherent() int {
	return len(m.Filter(func(properties vk.MemoryPropertyFlags) bool {
		return properties&vk.MemoryPropertyHostCoherentBit != 0
	}))
}

func (m MemoryTypeSlice) NumHostVisibleAndCoherent() int {
	const want = vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit
	return len(m.Filter(func(properties vk.MemoryPropertyFlags) bool {
		return properties&want == want
	}))
}

func (m MemoryTypeSlice) NumHostVisible() int {
	return len(m.Filter(func(properties vk.MemoryPropertyFlags) bool {
		return properties&vk.MemoryPropertyHostVisibleBit != 0
	}))
}

func (m MemoryTypeSlice) NumDeviceLocal() int {
	return len(m.Filter(func(properties vk.MemoryPropertyFlags) bool {
		return properties&vk.MemoryPropertyDeviceLocalBit != 0
	}))
}

// MemoryProperties queries the memory types and heaps of the device.
func (p *PhysicalDevice) MemoryProperties() vk.PhysicalDeviceMemoryProperties {
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	p.commands().GetPhysicalDeviceMemoryProperties(p.VKPhysicalDevice, &memoryProperties)
	return memoryProperties
}

func (p *PhysicalDevice) MemoryTypes() MemoryTypeSlice {
	return p.MemoryProperties().MemoryTypes
}

// FindMemoryType returns the index of the first memory type allowed by
// memoryTypeBits that has all of the requested properties.
func (p *PhysicalDevice) FindMemoryType(memoryTypeBits uint32, properties vk.MemoryPropertyFlags) (uint32, error) {
	for i, mt := range p.MemoryProperties().MemoryTypes {
		if memoryTypeBits&(1<<uint(i)) != 0 && mt.PropertyFlags&properties == properties {
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("type bits %#x, properties %#x: %w", memoryTypeBits, uint32(properties), ErrNoMemoryType)
}

func (p *PhysicalDevice) SupportedExtensions() ([]vk.ExtensionProperties, error) {
	return enumerate(func(count *uint32, out []vk.ExtensionProperties) vk.Result {
		return p.commands().EnumerateDeviceExtensionProperties(p.VKPhysicalDevice, "", count, out)
	})
}
