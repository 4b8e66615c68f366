// Package vkgltest provides an in-memory Vulkan driver that implements the
// vk dispatch interfaces and records every call, for testing code built on
// the vkgl wrappers without a GPU.
package vkgltest

import (
	"sync"
	"unsafe"

	"github.com/celer/vkgl/vk"
)

// Call is one recorded dispatch. Args hold the values passed, with
// create-info pointers dereferenced.
type Call struct {
	Name string
	Args []any
}

// PhysicalDevice describes a device reported by the fake driver.
type PhysicalDevice struct {
	Properties    vk.PhysicalDeviceProperties
	Memory        vk.PhysicalDeviceMemoryProperties
	QueueFamilies []vk.QueueFamilyProperties
	Extensions    []vk.ExtensionProperties
	Formats       map[vk.Format]vk.FormatProperties
	// PresentSupport is indexed by queue family.
	PresentSupport      []bool
	SurfaceCapabilities vk.SurfaceCapabilities
	SurfaceFormats      []vk.SurfaceFormat
	PresentModes        []vk.PresentMode
}

// Driver is a fake Loader, InstanceCommands, DebugReportCommands and
// DeviceCommands in one value. Handles it returns are unique per driver.
type Driver struct {
	Version         vk.Version
	Layers          []vk.LayerProperties
	Extensions      []vk.ExtensionProperties
	PhysicalDevices []*PhysicalDevice

	// Results overrides the result of the named command, for example
	// "QueueSubmit" or "WaitForFences".
	Results map[string]vk.Result
	// OnCall runs before each command is recorded, with the lock released.
	OnCall func(name string)
	// Alignment is reported by the memory requirement queries.
	Alignment vk.DeviceSize
	// SwapchainImageCount is the number of images per swapchain.
	SwapchainImageCount uint32
	PipelineCacheData   []byte

	mu         sync.Mutex
	calls      []Call
	next       uint64
	memory     map[vk.DeviceMemory][]byte
	sizes      map[uint64]vk.DeviceSize
	fences     map[vk.Fence]bool
	callbacks  map[vk.DebugReportCallback]vk.DebugReportCallbackCreateInfo
	nextImage  uint32
	destroyed  map[uint64]int
	liveCounts map[string]int
}

var (
	_ vk.Loader              = (*Driver)(nil)
	_ vk.InstanceCommands    = (*Driver)(nil)
	_ vk.DebugReportCommands = (*Driver)(nil)
	_ vk.DeviceCommands      = (*Driver)(nil)
)

// New returns a driver exposing one discrete GPU with a universal queue
// family and a transfer-only family.
func New() *Driver {
	return &Driver{
		Version: vk.MakeVersion(1, 3, 250),
		Layers: []vk.LayerProperties{{
			LayerName:   "VK_LAYER_KHRONOS_validation",
			SpecVersion: vk.MakeVersion(1, 3, 250),
			Description: "Khronos Validation Layer",
		}},
		Extensions: []vk.ExtensionProperties{
			{ExtensionName: "VK_KHR_surface", SpecVersion: 25},
			{ExtensionName: "VK_EXT_debug_report", SpecVersion: 10},
		},
		PhysicalDevices:     []*PhysicalDevice{DefaultPhysicalDevice("Fake GPU")},
		Alignment:           256,
		SwapchainImageCount: 3,
		PipelineCacheData:   []byte("pipeline-cache"),
	}
}

// DefaultPhysicalDevice returns a discrete GPU with device-local and
// host-visible memory.
func DefaultPhysicalDevice(name string) *PhysicalDevice {
	return &PhysicalDevice{
		Properties: vk.PhysicalDeviceProperties{
			APIVersion:    vk.MakeVersion(1, 3, 250),
			DriverVersion: 1,
			VendorID:      0x10DE,
			DeviceID:      0x2204,
			DeviceType:    vk.PhysicalDeviceTypeDiscreteGpu,
			DeviceName:    name,
		},
		Memory: vk.PhysicalDeviceMemoryProperties{
			MemoryTypes: []vk.MemoryType{
				{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0},
				{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit, HeapIndex: 1},
				{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit | vk.MemoryPropertyHostCachedBit, HeapIndex: 1},
			},
			MemoryHeaps: []vk.MemoryHeap{
				{Size: 8 << 30, Flags: vk.MemoryHeapDeviceLocalBit},
				{Size: 16 << 30},
			},
		},
		QueueFamilies: []vk.QueueFamilyProperties{
			{QueueFlags: vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit, QueueCount: 16, TimestampValidBits: 64,
				MinImageTransferGranularity: vk.Extent3D{Width: 1, Height: 1, Depth: 1}},
			{QueueFlags: vk.QueueTransferBit, QueueCount: 2, TimestampValidBits: 64,
				MinImageTransferGranularity: vk.Extent3D{Width: 1, Height: 1, Depth: 1}},
		},
		Extensions: []vk.ExtensionProperties{{ExtensionName: "VK_KHR_swapchain", SpecVersion: 70}},
		Formats: map[vk.Format]vk.FormatProperties{
			vk.FormatR8g8b8a8Unorm: {
				OptimalTilingFeatures: vk.FormatFeatureSampledImageBit | vk.FormatFeatureStorageImageBit | vk.FormatFeatureColorAttachmentBit,
				BufferFeatures:        vk.FormatFeatureUniformTexelBufferBit,
			},
		},
		PresentSupport: []bool{true, false},
		SurfaceCapabilities: vk.SurfaceCapabilities{
			MinImageCount:           2,
			MaxImageCount:           8,
			CurrentExtent:           vk.Extent2D{Width: 800, Height: 600},
			MinImageExtent:          vk.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:          vk.Extent2D{Width: 4096, Height: 4096},
			MaxImageArrayLayers:     1,
			SupportedTransforms:     vk.SurfaceTransformIdentityBit,
			CurrentTransform:        vk.SurfaceTransformIdentityBit,
			SupportedCompositeAlpha: vk.CompositeAlphaOpaqueBit,
			SupportedUsageFlags:     vk.ImageUsageColorAttachmentBit | vk.ImageUsageTransferDstBit,
		},
		SurfaceFormats: []vk.SurfaceFormat{
			{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
			{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		},
		PresentModes: []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox},
	}
}

// Calls returns a copy of the recorded calls.
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call(nil), d.calls...)
}

// Names returns the names of the recorded calls in order.
func (d *Driver) Names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, len(d.calls))
	for i, c := range d.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named command was called.
func (d *Driver) Count(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call of the named command.
func (d *Driver) Last(name string) (Call, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.calls) - 1; i >= 0; i-- {
		if d.calls[i].Name == name {
			return d.calls[i], true
		}
	}
	return Call{}, false
}

// Reset forgets the recorded calls but keeps driver state.
func (d *Driver) Reset() {
	d.mu.Lock()
	d.calls = nil
	d.mu.Unlock()
}

// Live returns the number of objects of the given kind ("Buffer",
// "Fence", ...) created and not yet destroyed.
func (d *Driver) Live(kind string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.liveCounts[kind]
}

// Memory returns the backing bytes of an allocation.
func (d *Driver) Memory(m vk.DeviceMemory) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.memory[m]
}

// SignalFence marks a fence as signaled, as if the device completed work.
func (d *Driver) SignalFence(f vk.Fence) {
	d.mu.Lock()
	d.init()
	d.fences[f] = true
	d.mu.Unlock()
}

// Report delivers a message to every registered debug report callback whose
// flags match.
func (d *Driver) Report(flags vk.DebugReportFlags, layerPrefix, message string) {
	d.mu.Lock()
	var fns []vk.DebugReportFunc
	for _, info := range d.callbacks {
		if info.Flags&flags != 0 && info.Callback != nil {
			fns = append(fns, info.Callback)
		}
	}
	d.mu.Unlock()
	for _, fn := range fns {
		fn(flags, 0, 0, 0, 0, layerPrefix, message)
	}
}

// record appends a call and returns the configured result for it.
func (d *Driver) record(name string, args ...any) vk.Result {
	if d.OnCall != nil {
		d.OnCall(name)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.init()
	d.calls = append(d.calls, Call{Name: name, Args: args})
	if r, ok := d.Results[name]; ok {
		return r
	}
	return vk.Success
}

func (d *Driver) init() {
	if d.memory == nil {
		d.memory = make(map[vk.DeviceMemory][]byte)
		d.sizes = make(map[uint64]vk.DeviceSize)
		d.fences = make(map[vk.Fence]bool)
		d.callbacks = make(map[vk.DebugReportCallback]vk.DebugReportCallbackCreateInfo)
		d.destroyed = make(map[uint64]int)
		d.liveCounts = make(map[string]int)
	}
}

// handle allocates a new non-zero handle value of the given kind.
func (d *Driver) handle(kind string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.init()
	d.next++
	d.liveCounts[kind]++
	return 0x1000 + d.next
}

func (d *Driver) release(kind string, h uint64) {
	if h == 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.init()
	d.destroyed[h]++
	d.liveCounts[kind]--
}

// Destroyed reports how many times a handle value was passed to a destroy
// or free command.
func (d *Driver) Destroyed(h uint64) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.destroyed[h]
}

func (d *Driver) physicalDevice(h vk.PhysicalDevice) *PhysicalDevice {
	i := int(h) - 1
	if i < 0 || i >= len(d.PhysicalDevices) {
		return nil
	}
	return d.PhysicalDevices[i]
}

// enumerate implements the two-call idiom: a nil destination reports the
// count, otherwise up to *count elements are copied and Incomplete is
// returned when the destination was too small.
func enumerate[T any](src []T, count *uint32, dst []T) vk.Result {
	if dst == nil {
		*count = uint32(len(src))
		return vk.Success
	}
	n := int(*count)
	if n > len(dst) {
		n = len(dst)
	}
	n = copy(dst[:n], src)
	*count = uint32(n)
	if n < len(src) {
		return vk.Incomplete
	}
	return vk.Success
}

func align(size, alignment vk.DeviceSize) vk.DeviceSize {
	if alignment == 0 {
		return size
	}
	return (size + alignment - 1) / alignment * alignment
}

func bytesAt(b []byte, offset vk.DeviceSize) unsafe.Pointer {
	if int(offset) >= len(b) {
		return nil
	}
	return unsafe.Pointer(&b[offset])
}
