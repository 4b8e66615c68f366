package vk

// Dispatchable handles are pointers owned by the loader and driver.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// Non-dispatchable handles are 64-bit values on every platform.
type (
	DeviceMemory        uint64
	Buffer              uint64
	Image               uint64
	ImageView           uint64
	Sampler             uint64
	ShaderModule        uint64
	PipelineCache       uint64
	PipelineLayout      uint64
	Pipeline            uint64
	RenderPass          uint64
	Framebuffer         uint64
	DescriptorSetLayout uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	Fence               uint64
	Semaphore           uint64
	CommandPool         uint64
	Surface             uint64
	Swapchain           uint64
	DebugReportCallback uint64
)

const (
	NullInstance            Instance            = 0
	NullPhysicalDevice      PhysicalDevice      = 0
	NullDevice              Device              = 0
	NullQueue               Queue               = 0
	NullCommandBuffer       CommandBuffer       = 0
	NullDeviceMemory        DeviceMemory        = 0
	NullBuffer              Buffer              = 0
	NullImage               Image               = 0
	NullImageView           ImageView           = 0
	NullSampler             Sampler             = 0
	NullShaderModule        ShaderModule        = 0
	NullPipelineCache       PipelineCache       = 0
	NullPipelineLayout      PipelineLayout      = 0
	NullPipeline            Pipeline            = 0
	NullRenderPass          RenderPass          = 0
	NullFramebuffer         Framebuffer         = 0
	NullDescriptorSetLayout DescriptorSetLayout = 0
	NullDescriptorPool      DescriptorPool      = 0
	NullDescriptorSet       DescriptorSet       = 0
	NullFence               Fence               = 0
	NullSemaphore           Semaphore           = 0
	NullCommandPool         CommandPool         = 0
	NullSurface             Surface             = 0
	NullSwapchain           Swapchain           = 0
	NullDebugReportCallback DebugReportCallback = 0
)

// DeviceSize is VkDeviceSize.
type DeviceSize uint64

const (
	QueueFamilyIgnored = ^uint32(0)
	WholeSize          = ^DeviceSize(0)
	RemainingMipLevels = ^uint32(0)
	SubpassExternal    = ^uint32(0)
	// MaxTimeout waits forever in WaitForFences and AcquireNextImage.
	MaxTimeout = ^uint64(0)

	MaxMemoryTypes            = 32
	MaxMemoryHeaps            = 16
	MaxExtensionNameSize      = 256
	MaxDescriptionSize        = 256
	MaxPhysicalDeviceNameSize = 256
	UUIDSize                  = 16
)
