package vk

import "unsafe"

// Loader exposes the global commands, those resolved with a null instance.
type Loader interface {
	EnumerateInstanceVersion() (Version, Result)
	EnumerateInstanceLayerProperties(count *uint32, properties []LayerProperties) Result
	EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []ExtensionProperties) Result
	CreateInstance(info *InstanceCreateInfo, instance *Instance) Result
	// InstanceCommands resolves the dispatch table for an instance created by
	// this loader.
	InstanceCommands(instance Instance) (InstanceCommands, error)
}

// InstanceCommands is the per-instance dispatch table.
type InstanceCommands interface {
	DestroyInstance(instance Instance)
	EnumeratePhysicalDevices(instance Instance, count *uint32, devices []PhysicalDevice) Result
	GetPhysicalDeviceProperties(physicalDevice PhysicalDevice, properties *PhysicalDeviceProperties)
	GetPhysicalDeviceMemoryProperties(physicalDevice PhysicalDevice, properties *PhysicalDeviceMemoryProperties)
	GetPhysicalDeviceQueueFamilyProperties(physicalDevice PhysicalDevice, count *uint32, properties []QueueFamilyProperties)
	GetPhysicalDeviceFormatProperties(physicalDevice PhysicalDevice, format Format, properties *FormatProperties)
	EnumerateDeviceExtensionProperties(physicalDevice PhysicalDevice, layerName string, count *uint32, properties []ExtensionProperties) Result
	CreateDevice(physicalDevice PhysicalDevice, info *DeviceCreateInfo, device *Device) Result
	// DeviceCommands resolves the dispatch table for a device created from
	// this instance.
	DeviceCommands(device Device) (DeviceCommands, error)

	GetPhysicalDeviceSurfaceSupport(physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface Surface, supported *bool) Result
	GetPhysicalDeviceSurfaceCapabilities(physicalDevice PhysicalDevice, surface Surface, capabilities *SurfaceCapabilities) Result
	GetPhysicalDeviceSurfaceFormats(physicalDevice PhysicalDevice, surface Surface, count *uint32, formats []SurfaceFormat) Result
	GetPhysicalDeviceSurfacePresentModes(physicalDevice PhysicalDevice, surface Surface, count *uint32, modes []PresentMode) Result
	DestroySurface(instance Instance, surface Surface)
}

// DebugReportCommands is implemented by instance tables that resolved the
// VK_EXT_debug_report entry points.
type DebugReportCommands interface {
	CreateDebugReportCallback(instance Instance, info *DebugReportCallbackCreateInfo, callback *DebugReportCallback) Result
	DestroyDebugReportCallback(instance Instance, callback DebugReportCallback)
}

// DeviceCommands is the per-device dispatch table.
type DeviceCommands interface {
	DestroyDevice(device Device)
	GetDeviceQueue(device Device, queueFamilyIndex, queueIndex uint32, queue *Queue)
	DeviceWaitIdle(device Device) Result

	QueueSubmit(queue Queue, submits []SubmitInfo, fence Fence) Result
	QueueWaitIdle(queue Queue) Result
	QueuePresent(queue Queue, info *PresentInfo) Result

	AllocateMemory(device Device, info *MemoryAllocateInfo, memory *DeviceMemory) Result
	FreeMemory(device Device, memory DeviceMemory)
	MapMemory(device Device, memory DeviceMemory, offset, size DeviceSize, flags uint32, data *unsafe.Pointer) Result
	UnmapMemory(device Device, memory DeviceMemory)
	FlushMappedMemoryRanges(device Device, ranges []MappedMemoryRange) Result
	InvalidateMappedMemoryRanges(device Device, ranges []MappedMemoryRange) Result

	CreateBuffer(device Device, info *BufferCreateInfo, buffer *Buffer) Result
	DestroyBuffer(device Device, buffer Buffer)
	GetBufferMemoryRequirements(device Device, buffer Buffer, requirements *MemoryRequirements)
	BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset DeviceSize) Result

	CreateImage(device Device, info *ImageCreateInfo, image *Image) Result
	DestroyImage(device Device, image Image)
	GetImageMemoryRequirements(device Device, image Image, requirements *MemoryRequirements)
	BindImageMemory(device Device, image Image, memory DeviceMemory, offset DeviceSize) Result

	CreateImageView(device Device, info *ImageViewCreateInfo, view *ImageView) Result
	DestroyImageView(device Device, view ImageView)
	CreateSampler(device Device, info *SamplerCreateInfo, sampler *Sampler) Result
	DestroySampler(device Device, sampler Sampler)

	CreateShaderModule(device Device, info *ShaderModuleCreateInfo, module *ShaderModule) Result
	DestroyShaderModule(device Device, module ShaderModule)
	CreatePipelineCache(device Device, info *PipelineCacheCreateInfo, cache *PipelineCache) Result
	DestroyPipelineCache(device Device, cache PipelineCache)
	// GetPipelineCacheData writes the cache size to size when data is nil,
	// otherwise copies at most *size bytes into data.
	GetPipelineCacheData(device Device, cache PipelineCache, size *uint, data []byte) Result
	CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo, layout *PipelineLayout) Result
	DestroyPipelineLayout(device Device, layout PipelineLayout)
	CreateComputePipelines(device Device, cache PipelineCache, infos []ComputePipelineCreateInfo, pipelines []Pipeline) Result
	CreateGraphicsPipelines(device Device, cache PipelineCache, infos []GraphicsPipelineCreateInfo, pipelines []Pipeline) Result
	DestroyPipeline(device Device, pipeline Pipeline)

	CreateRenderPass(device Device, info *RenderPassCreateInfo, renderPass *RenderPass) Result
	DestroyRenderPass(device Device, renderPass RenderPass)
	CreateFramebuffer(device Device, info *FramebufferCreateInfo, framebuffer *Framebuffer) Result
	DestroyFramebuffer(device Device, framebuffer Framebuffer)

	CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo, layout *DescriptorSetLayout) Result
	DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout)
	CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo, pool *DescriptorPool) Result
	DestroyDescriptorPool(device Device, pool DescriptorPool)
	ResetDescriptorPool(device Device, pool DescriptorPool, flags uint32) Result
	AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo, sets []DescriptorSet) Result
	FreeDescriptorSets(device Device, pool DescriptorPool, sets []DescriptorSet) Result
	UpdateDescriptorSets(device Device, writes []WriteDescriptorSet)

	CreateFence(device Device, info *FenceCreateInfo, fence *Fence) Result
	DestroyFence(device Device, fence Fence)
	GetFenceStatus(device Device, fence Fence) Result
	ResetFences(device Device, fences []Fence) Result
	WaitForFences(device Device, fences []Fence, waitAll bool, timeout uint64) Result
	CreateSemaphore(device Device, semaphore *Semaphore) Result
	DestroySemaphore(device Device, semaphore Semaphore)

	CreateCommandPool(device Device, info *CommandPoolCreateInfo, pool *CommandPool) Result
	DestroyCommandPool(device Device, pool CommandPool)
	ResetCommandPool(device Device, pool CommandPool, flags CommandPoolResetFlags) Result
	AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo, buffers []CommandBuffer) Result
	FreeCommandBuffers(device Device, pool CommandPool, buffers []CommandBuffer)
	BeginCommandBuffer(commandBuffer CommandBuffer, info *CommandBufferBeginInfo) Result
	EndCommandBuffer(commandBuffer CommandBuffer) Result
	ResetCommandBuffer(commandBuffer CommandBuffer, flags CommandBufferResetFlags) Result

	CmdBindPipeline(commandBuffer CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline)
	CmdBindDescriptorSets(commandBuffer CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet uint32, sets []DescriptorSet, dynamicOffsets []uint32)
	CmdPushConstants(commandBuffer CommandBuffer, layout PipelineLayout, stages ShaderStageFlags, offset uint32, values []byte)
	CmdDispatch(commandBuffer CommandBuffer, groupCountX, groupCountY, groupCountZ uint32)
	CmdCopyBuffer(commandBuffer CommandBuffer, src, dst Buffer, regions []BufferCopy)
	CmdFillBuffer(commandBuffer CommandBuffer, dst Buffer, offset, size DeviceSize, data uint32)
	CmdPipelineBarrier(commandBuffer CommandBuffer, srcStage, dstStage PipelineStageFlags, dependency DependencyFlags,
		memoryBarriers []MemoryBarrier, bufferBarriers []BufferMemoryBarrier, imageBarriers []ImageMemoryBarrier)
	CmdCopyBufferToImage(commandBuffer CommandBuffer, src Buffer, dst Image, layout ImageLayout, regions []BufferImageCopy)
	CmdCopyImageToBuffer(commandBuffer CommandBuffer, src Image, layout ImageLayout, dst Buffer, regions []BufferImageCopy)
	CmdBeginRenderPass(commandBuffer CommandBuffer, info *RenderPassBeginInfo, contents SubpassContents)
	CmdEndRenderPass(commandBuffer CommandBuffer)
	CmdBindVertexBuffers(commandBuffer CommandBuffer, firstBinding uint32, buffers []Buffer, offsets []DeviceSize)
	CmdBindIndexBuffer(commandBuffer CommandBuffer, buffer Buffer, offset DeviceSize, indexType IndexType)
	CmdSetViewport(commandBuffer CommandBuffer, firstViewport uint32, viewports []Viewport)
	CmdSetScissor(commandBuffer CommandBuffer, firstScissor uint32, scissors []Rect2D)
	CmdDraw(commandBuffer CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	CmdDrawIndexed(commandBuffer CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	CreateSwapchain(device Device, info *SwapchainCreateInfo, swapchain *Swapchain) Result
	DestroySwapchain(device Device, swapchain Swapchain)
	GetSwapchainImages(device Device, swapchain Swapchain, count *uint32, images []Image) Result
	AcquireNextImage(device Device, swapchain Swapchain, timeout uint64, semaphore Semaphore, fence Fence, index *uint32) Result
}
