package vkdl

import (
	"unsafe"

	"github.com/celer/vkgl/vk"
)

type deviceTable struct {
	destroyDevice  func(device vk.Device, allocator uintptr)
	getDeviceQueue func(device vk.Device, queueFamilyIndex, queueIndex uint32, queue *vk.Queue)
	deviceWaitIdle func(device vk.Device) vk.Result

	queueSubmit   func(queue vk.Queue, count uint32, submits uintptr, fence vk.Fence) vk.Result
	queueWaitIdle func(queue vk.Queue) vk.Result
	queuePresent  func(queue vk.Queue, info unsafe.Pointer) vk.Result

	allocateMemory               func(device vk.Device, info unsafe.Pointer, allocator uintptr, memory *vk.DeviceMemory) vk.Result
	freeMemory                   func(device vk.Device, memory vk.DeviceMemory, allocator uintptr)
	mapMemory                    func(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize, flags uint32, data *unsafe.Pointer) vk.Result
	unmapMemory                  func(device vk.Device, memory vk.DeviceMemory)
	flushMappedMemoryRanges      func(device vk.Device, count uint32, ranges uintptr) vk.Result
	invalidateMappedMemoryRanges func(device vk.Device, count uint32, ranges uintptr) vk.Result

	createBuffer                func(device vk.Device, info unsafe.Pointer, allocator uintptr, buffer *vk.Buffer) vk.Result
	destroyBuffer               func(device vk.Device, buffer vk.Buffer, allocator uintptr)
	getBufferMemoryRequirements func(device vk.Device, buffer vk.Buffer, requirements unsafe.Pointer)
	bindBufferMemory            func(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result

	createImage                func(device vk.Device, info unsafe.Pointer, allocator uintptr, image *vk.Image) vk.Result
	destroyImage               func(device vk.Device, image vk.Image, allocator uintptr)
	getImageMemoryRequirements func(device vk.Device, image vk.Image, requirements unsafe.Pointer)
	bindImageMemory            func(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result

	createImageView  func(device vk.Device, info unsafe.Pointer, allocator uintptr, view *vk.ImageView) vk.Result
	destroyImageView func(device vk.Device, view vk.ImageView, allocator uintptr)
	createSampler    func(device vk.Device, info unsafe.Pointer, allocator uintptr, sampler *vk.Sampler) vk.Result
	destroySampler   func(device vk.Device, sampler vk.Sampler, allocator uintptr)

	createShaderModule      func(device vk.Device, info unsafe.Pointer, allocator uintptr, module *vk.ShaderModule) vk.Result
	destroyShaderModule     func(device vk.Device, module vk.ShaderModule, allocator uintptr)
	createPipelineCache     func(device vk.Device, info unsafe.Pointer, allocator uintptr, cache *vk.PipelineCache) vk.Result
	destroyPipelineCache    func(device vk.Device, cache vk.PipelineCache, allocator uintptr)
	getPipelineCacheData    func(device vk.Device, cache vk.PipelineCache, size *uint, data unsafe.Pointer) vk.Result
	createPipelineLayout    func(device vk.Device, info unsafe.Pointer, allocator uintptr, layout *vk.PipelineLayout) vk.Result
	destroyPipelineLayout   func(device vk.Device, layout vk.PipelineLayout, allocator uintptr)
	createComputePipelines  func(device vk.Device, cache vk.PipelineCache, count uint32, infos uintptr, allocator uintptr, pipelines unsafe.Pointer) vk.Result
	createGraphicsPipelines func(device vk.Device, cache vk.PipelineCache, count uint32, infos uintptr, allocator uintptr, pipelines unsafe.Pointer) vk.Result
	destroyPipeline         func(device vk.Device, pipeline vk.Pipeline, allocator uintptr)

	createRenderPass   func(device vk.Device, info unsafe.Pointer, allocator uintptr, renderPass *vk.RenderPass) vk.Result
	destroyRenderPass  func(device vk.Device, renderPass vk.RenderPass, allocator uintptr)
	createFramebuffer  func(device vk.Device, info unsafe.Pointer, allocator uintptr, framebuffer *vk.Framebuffer) vk.Result
	destroyFramebuffer func(device vk.Device, framebuffer vk.Framebuffer, allocator uintptr)

	createDescriptorSetLayout  func(device vk.Device, info unsafe.Pointer, allocator uintptr, layout *vk.DescriptorSetLayout) vk.Result
	destroyDescriptorSetLayout func(device vk.Device, layout vk.DescriptorSetLayout, allocator uintptr)
	createDescriptorPool       func(device vk.Device, info unsafe.Pointer, allocator uintptr, pool *vk.DescriptorPool) vk.Result
	destroyDescriptorPool      func(device vk.Device, pool vk.DescriptorPool, allocator uintptr)
	resetDescriptorPool        func(device vk.Device, pool vk.DescriptorPool, flags uint32) vk.Result
	allocateDescriptorSets     func(device vk.Device, info unsafe.Pointer, sets unsafe.Pointer) vk.Result
	freeDescriptorSets         func(device vk.Device, pool vk.DescriptorPool, count uint32, sets unsafe.Pointer) vk.Result
	updateDescriptorSets       func(device vk.Device, writeCount uint32, writes uintptr, copyCount uint32, copies uintptr)

	createFence      func(device vk.Device, info unsafe.Pointer, allocator uintptr, fence *vk.Fence) vk.Result
	destroyFence     func(device vk.Device, fence vk.Fence, allocator uintptr)
	getFenceStatus   func(device vk.Device, fence vk.Fence) vk.Result
	resetFences      func(device vk.Device, count uint32, fences unsafe.Pointer) vk.Result
	waitForFences    func(device vk.Device, count uint32, fences unsafe.Pointer, waitAll uint32, timeout uint64) vk.Result
	createSemaphore  func(device vk.Device, info unsafe.Pointer, allocator uintptr, semaphore *vk.Semaphore) vk.Result
	destroySemaphore func(device vk.Device, semaphore vk.Semaphore, allocator uintptr)

	createCommandPool      func(device vk.Device, info unsafe.Pointer, allocator uintptr, pool *vk.CommandPool) vk.Result
	destroyCommandPool     func(device vk.Device, pool vk.CommandPool, allocator uintptr)
	resetCommandPool       func(device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result
	allocateCommandBuffers func(device vk.Device, info unsafe.Pointer, buffers unsafe.Pointer) vk.Result
	freeCommandBuffers     func(device vk.Device, pool vk.CommandPool, count uint32, buffers unsafe.Pointer)
	beginCommandBuffer     func(commandBuffer vk.CommandBuffer, info unsafe.Pointer) vk.Result
	endCommandBuffer       func(commandBuffer vk.CommandBuffer) vk.Result
	resetCommandBuffer     func(commandBuffer vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result

	cmdBindPipeline       func(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline)
	cmdBindDescriptorSets func(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet, setCount uint32, sets unsafe.Pointer, offsetCount uint32, offsets unsafe.Pointer)
	cmdPushConstants      func(commandBuffer vk.CommandBuffer, layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset, size uint32, values unsafe.Pointer)
	cmdDispatch           func(commandBuffer vk.CommandBuffer, x, y, z uint32)
	cmdCopyBuffer         func(commandBuffer vk.CommandBuffer, src, dst vk.Buffer, count uint32, regions unsafe.Pointer)
	cmdFillBuffer         func(commandBuffer vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data uint32)
	cmdPipelineBarrier    func(commandBuffer vk.CommandBuffer, srcStage, dstStage vk.PipelineStageFlags, dependency vk.DependencyFlags,
		memoryCount uint32, memory uintptr, bufferCount uint32, buffers uintptr, imageCount uint32, images uintptr)
	cmdCopyBufferToImage func(commandBuffer vk.CommandBuffer, src vk.Buffer, dst vk.Image, layout vk.ImageLayout, count uint32, regions unsafe.Pointer)
	cmdCopyImageToBuffer func(commandBuffer vk.CommandBuffer, src vk.Image, layout vk.ImageLayout, dst vk.Buffer, count uint32, regions unsafe.Pointer)
	cmdBeginRenderPass   func(commandBuffer vk.CommandBuffer, info unsafe.Pointer, contents vk.SubpassContents)
	cmdEndRenderPass     func(commandBuffer vk.CommandBuffer)
	cmdBindVertexBuffers func(commandBuffer vk.CommandBuffer, firstBinding, count uint32, buffers, offsets unsafe.Pointer)
	cmdBindIndexBuffer   func(commandBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType)
	cmdSetViewport       func(commandBuffer vk.CommandBuffer, first, count uint32, viewports unsafe.Pointer)
	cmdSetScissor        func(commandBuffer vk.CommandBuffer, first, count uint32, scissors unsafe.Pointer)
	cmdDraw              func(commandBuffer vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	cmdDrawIndexed       func(commandBuffer vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	// VK_KHR_swapchain
	createSwapchain    func(device vk.Device, info unsafe.Pointer, allocator uintptr, swapchain *vk.Swapchain) vk.Result
	destroySwapchain   func(device vk.Device, swapchain vk.Swapchain, allocator uintptr)
	getSwapchainImages func(device vk.Device, swapchain vk.Swapchain, count *uint32, images unsafe.Pointer) vk.Result
	acquireNextImage   func(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence, index *uint32) vk.Result
}

var _ vk.DeviceCommands = (*deviceTable)(nil)

func newDeviceTable(proc func(string) uintptr) (*deviceTable, error) {
	t := &deviceTable{}
	r := &resolver{proc: proc}
	r.bind(&t.destroyDevice, "vkDestroyDevice")
	r.bind(&t.getDeviceQueue, "vkGetDeviceQueue")
	r.bind(&t.deviceWaitIdle, "vkDeviceWaitIdle")

	r.bind(&t.queueSubmit, "vkQueueSubmit")
	r.bind(&t.queueWaitIdle, "vkQueueWaitIdle")

	r.bind(&t.allocateMemory, "vkAllocateMemory")
	r.bind(&t.freeMemory, "vkFreeMemory")
	r.bind(&t.mapMemory, "vkMapMemory")
	r.bind(&t.unmapMemory, "vkUnmapMemory")
	r.bind(&t.flushMappedMemoryRanges, "vkFlushMappedMemoryRanges")
	r.bind(&t.invalidateMappedMemoryRanges, "vkInvalidateMappedMemoryRanges")

	r.bind(&t.createBuffer, "vkCreateBuffer")
	r.bind(&t.destroyBuffer, "vkDestroyBuffer")
	r.bind(&t.getBufferMemoryRequirements, "vkGetBufferMemoryRequirements")
	r.bind(&t.bindBufferMemory, "vkBindBufferMemory")

	r.bind(&t.createImage, "vkCreateImage")
	r.bind(&t.destroyImage, "vkDestroyImage")
	r.bind(&t.getImageMemoryRequirements, "vkGetImageMemoryRequirements")
	r.bind(&t.bindImageMemory, "vkBindImageMemory")

	r.bind(&t.createImageView, "vkCreateImageView")
	r.bind(&t.destroyImageView, "vkDestroyImageView")
	r.bind(&t.createSampler, "vkCreateSampler")
	r.bind(&t.destroySampler, "vkDestroySampler")

	r.bind(&t.createShaderModule, "vkCreateShaderModule")
	r.bind(&t.destroyShaderModule, "vkDestroyShaderModule")
	r.bind(&t.createPipelineCache, "vkCreatePipelineCache")
	r.bind(&t.destroyPipelineCache, "vkDestroyPipelineCache")
	r.bind(&t.getPipelineCacheData, "vkGetPipelineCacheData")
	r.bind(&t.createPipelineLayout, "vkCreatePipelineLayout")
	r.bind(&t.destroyPipelineLayout, "vkDestroyPipelineLayout")
	r.bind(&t.createComputePipelines, "vkCreateComputePipelines")
	r.bind(&t.createGraphicsPipelines, "vkCreateGraphicsPipelines")
	r.bind(&t.destroyPipeline, "vkDestroyPipeline")

	r.bind(&t.createRenderPass, "vkCreateRenderPass")
	r.bind(&t.destroyRenderPass, "vkDestroyRenderPass")
	r.bind(&t.createFramebuffer, "vkCreateFramebuffer")
	r.bind(&t.destroyFramebuffer, "vkDestroyFramebuffer")

	r.bind(&t.createDescriptorSetLayout, "vkCreateDescriptorSetLayout")
	r.bind(&t.destroyDescriptorSetLayout, "vkDestroyDescriptorSetLayout")
	r.bind(&t.createDescriptorPool, "vkCreateDescriptorPool")
	r.bind(&t.destroyDescriptorPool, "vkDestroyDescriptorPool")
	r.bind(&t.resetDescriptorPool, "vkResetDescriptorPool")
	r.bind(&t.allocateDescriptorSets, "vkAllocateDescriptorSets")
	r.bind(&t.freeDescriptorSets, "vkFreeDescriptorSets")
	r.bind(&t.updateDescriptorSets, "vkUpdateDescriptorSets")

	r.bind(&t.createFence, "vkCreateFence")
	r.bind(&t.destroyFence, "vkDestroyFence")
	r.bind(&t.getFenceStatus, "vkGetFenceStatus")
	r.bind(&t.resetFences, "vkResetFences")
	r.bind(&t.waitForFences, "vkWaitForFences")
	r.bind(&t.createSemaphore, "vkCreateSemaphore")
	r.bind(&t.destroySemaphore, "vkDestroySemaphore")

	r.bind(&t.createCommandPool, "vkCreateCommandPool")
	r.bind(&t.destroyCommandPool, "vkDestroyCommandPool")
	r.bind(&t.resetCommandPool, "vkResetCommandPool")
	r.bind(&t.allocateCommandBuffers, "vkAllocateCommandBuffers")
	r.bind(&t.freeCommandBuffers, "vkFreeCommandBuffers")
	r.bind(&t.beginCommandBuffer, "vkBeginCommandBuffer")
	r.bind(&t.endCommandBuffer, "vkEndCommandBuffer")
	r.bind(&t.resetCommandBuffer, "vkResetCommandBuffer")

	r.bind(&t.cmdBindPipeline, "vkCmdBindPipeline")
	r.bind(&t.cmdBindDescriptorSets, "vkCmdBindDescriptorSets")
	r.bind(&t.cmdPushConstants, "vkCmdPushConstants")
	r.bind(&t.cmdDispatch, "vkCmdDispatch")
	r.bind(&t.cmdCopyBuffer, "vkCmdCopyBuffer")
	r.bind(&t.cmdFillBuffer, "vkCmdFillBuffer")
	r.bind(&t.cmdPipelineBarrier, "vkCmdPipelineBarrier")
	r.bind(&t.cmdCopyBufferToImage, "vkCmdCopyBufferToImage")
	r.bind(&t.cmdCopyImageToBuffer, "vkCmdCopyImageToBuffer")
	r.bind(&t.cmdBeginRenderPass, "vkCmdBeginRenderPass")
	r.bind(&t.cmdEndRenderPass, "vkCmdEndRenderPass")
	r.bind(&t.cmdBindVertexBuffers, "vkCmdBindVertexBuffers")
	r.bind(&t.cmdBindIndexBuffer, "vkCmdBindIndexBuffer")
	r.bind(&t.cmdSetViewport, "vkCmdSetViewport")
	r.bind(&t.cmdSetScissor, "vkCmdSetScissor")
	r.bind(&t.cmdDraw, "vkCmdDraw")
	r.bind(&t.cmdDrawIndexed, "vkCmdDrawIndexed")

	r.optional(&t.queuePresent, "vkQueuePresentKHR")
	r.optional(&t.createSwapchain, "vkCreateSwapchainKHR")
	r.optional(&t.destroySwapchain, "vkDestroySwapchainKHR")
	r.optional(&t.getSwapchainImages, "vkGetSwapchainImagesKHR")
	r.optional(&t.acquireNextImage, "vkAcquireNextImageKHR")

	if err := r.err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *deviceTable) DestroyDevice(device vk.Device) {
	t.destroyDevice(device, 0)
}

func (t *deviceTable) GetDeviceQueue(device vk.Device, queueFamilyIndex, queueIndex uint32, queue *vk.Queue) {
	t.getDeviceQueue(device, queueFamilyIndex, queueIndex, queue)
}

func (t *deviceTable) DeviceWaitIdle(device vk.Device) vk.Result {
	return t.deviceWaitIdle(device)
}

func (t *deviceTable) QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	var a arena
	defer a.free()
	return t.queueSubmit(queue, uint32(len(submits)), a.submitInfos(submits), fence)
}

func (t *deviceTable) QueueWaitIdle(queue vk.Queue) vk.Result {
	return t.queueWaitIdle(queue)
}

func (t *deviceTable) QueuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result {
	if t.queuePresent == nil {
		return vk.ErrorExtensionNotPresent
	}
	var a arena
	defer a.free()
	return t.queuePresent(queue, unsafe.Pointer(a.presentInfo(info)))
}

func (t *deviceTable) AllocateMemory(device vk.Device, info *vk.MemoryAllocateInfo, memory *vk.DeviceMemory) vk.Result {
	c := cMemoryAllocateInfo{
		sType:           structureTypeMemoryAllocateInfo,
		allocationSize:  uint64(info.AllocationSize),
		memoryTypeIndex: info.MemoryTypeIndex,
	}
	return t.allocateMemory(device, unsafe.Pointer(&c), 0, memory)
}

func (t *deviceTable) FreeMemory(device vk.Device, memory vk.DeviceMemory) {
	t.freeMemory(device, memory, 0)
}

func (t *deviceTable) MapMemory(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize, flags uint32, data *unsafe.Pointer) vk.Result {
	return t.mapMemory(device, memory, offset, size, flags, data)
}

func (t *deviceTable) UnmapMemory(device vk.Device, memory vk.DeviceMemory) {
	t.unmapMemory(device, memory)
}

func (t *deviceTable) FlushMappedMemoryRanges(device vk.Device, ranges []vk.MappedMemoryRange) vk.Result {
	var a arena
	defer a.free()
	return t.flushMappedMemoryRanges(device, uint32(len(ranges)), a.mappedMemoryRanges(ranges))
}

func (t *deviceTable) InvalidateMappedMemoryRanges(device vk.Device, ranges []vk.MappedMemoryRange) vk.Result {
	var a arena
	defer a.free()
	return t.invalidateMappedMemoryRanges(device, uint32(len(ranges)), a.mappedMemoryRanges(ranges))
}

func (t *deviceTable) CreateBuffer(device vk.Device, info *vk.BufferCreateInfo, buffer *vk.Buffer) vk.Result {
	var a arena
	defer a.free()
	return t.createBuffer(device, unsafe.Pointer(a.bufferCreateInfo(info)), 0, buffer)
}

func (t *deviceTable) DestroyBuffer(device vk.Device, buffer vk.Buffer) {
	t.destroyBuffer(device, buffer, 0)
}

// MemoryRequirements matches VkMemoryRequirements.
func (t *deviceTable) GetBufferMemoryRequirements(device vk.Device, buffer vk.Buffer, requirements *vk.MemoryRequirements) {
	t.getBufferMemoryRequirements(device, buffer, unsafe.Pointer(requirements))
}

func (t *deviceTable) BindBufferMemory(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return t.bindBufferMemory(device, buffer, memory, offset)
}

func (t *deviceTable) CreateImage(device vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result {
	var a arena
	defer a.free()
	return t.createImage(device, unsafe.Pointer(a.imageCreateInfo(info)), 0, image)
}

func (t *deviceTable) DestroyImage(device vk.Device, image vk.Image) {
	t.destroyImage(device, image, 0)
}

func (t *deviceTable) GetImageMemoryRequirements(device vk.Device, image vk.Image, requirements *vk.MemoryRequirements) {
	t.getImageMemoryRequirements(device, image, unsafe.Pointer(requirements))
}

func (t *deviceTable) BindImageMemory(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return t.bindImageMemory(device, image, memory, offset)
}

func (t *deviceTable) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, view *vk.ImageView) vk.Result {
	return t.createImageView(device, unsafe.Pointer(imageViewCreateInfo(info)), 0, view)
}

func (t *deviceTable) DestroyImageView(device vk.Device, view vk.ImageView) {
	t.destroyImageView(device, view, 0)
}

func (t *deviceTable) CreateSampler(device vk.Device, info *vk.SamplerCreateInfo, sampler *vk.Sampler) vk.Result {
	return t.createSampler(device, unsafe.Pointer(samplerCreateInfo(info)), 0, sampler)
}

func (t *deviceTable) DestroySampler(device vk.Device, sampler vk.Sampler) {
	t.destroySampler(device, sampler, 0)
}

func (t *deviceTable) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result {
	var a arena
	defer a.free()
	c := cShaderModuleCreateInfo{
		sType:    structureTypeShaderModuleCreateInfo,
		codeSize: uintptr(len(info.Code) * 4),
		pCode:    pinSlice(&a, info.Code),
	}
	return t.createShaderModule(device, unsafe.Pointer(&c), 0, module)
}

func (t *deviceTable) DestroyShaderModule(device vk.Device, module vk.ShaderModule) {
	t.destroyShaderModule(device, module, 0)
}

func (t *deviceTable) CreatePipelineCache(device vk.Device, info *vk.PipelineCacheCreateInfo, cache *vk.PipelineCache) vk.Result {
	var a arena
	defer a.free()
	c := cPipelineCacheCreateInfo{
		sType:           structureTypePipelineCacheCreateInfo,
		initialDataSize: uintptr(len(info.InitialData)),
		pInitialData:    pinSlice(&a, info.InitialData),
	}
	return t.createPipelineCache(device, unsafe.Pointer(&c), 0, cache)
}

func (t *deviceTable) DestroyPipelineCache(device vk.Device, cache vk.PipelineCache) {
	t.destroyPipelineCache(device, cache, 0)
}

func (t *deviceTable) GetPipelineCacheData(device vk.Device, cache vk.PipelineCache, size *uint, data []byte) vk.Result {
	if data != nil {
		*size = min(*size, uint(len(data)))
	}
	return t.getPipelineCacheData(device, cache, size, slicePtr(data))
}

func (t *deviceTable) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, layout *vk.PipelineLayout) vk.Result {
	var a arena
	defer a.free()
	c := cPipelineLayoutCreateInfo{
		sType:                  structureTypePipelineLayoutCreateInfo,
		setLayoutCount:         uint32(len(info.SetLayouts)),
		pSetLayouts:            pinSlice(&a, info.SetLayouts),
		pushConstantRangeCount: uint32(len(info.PushConstantRanges)),
		pPushConstantRanges:    pinSlice(&a, info.PushConstantRanges),
	}
	return t.createPipelineLayout(device, unsafe.Pointer(&c), 0, layout)
}

func (t *deviceTable) DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout) {
	t.destroyPipelineLayout(device, layout, 0)
}

func (t *deviceTable) CreateComputePipelines(device vk.Device, cache vk.PipelineCache, infos []vk.ComputePipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	var a arena
	defer a.free()
	n := min(len(infos), len(pipelines))
	return t.createComputePipelines(device, cache, uint32(n), a.computePipelineCreateInfos(infos[:n]), 0, slicePtr(pipelines))
}

func (t *deviceTable) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	var a arena
	defer a.free()
	n := min(len(infos), len(pipelines))
	return t.createGraphicsPipelines(device, cache, uint32(n), a.graphicsPipelineCreateInfos(infos[:n]), 0, slicePtr(pipelines))
}

func (t *deviceTable) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) {
	t.destroyPipeline(device, pipeline, 0)
}

func (t *deviceTable) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, renderPass *vk.RenderPass) vk.Result {
	var a arena
	defer a.free()
	return t.createRenderPass(device, unsafe.Pointer(a.renderPassCreateInfo(info)), 0, renderPass)
}

func (t *deviceTable) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	t.destroyRenderPass(device, renderPass, 0)
}

func (t *deviceTable) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, framebuffer *vk.Framebuffer) vk.Result {
	var a arena
	defer a.free()
	return t.createFramebuffer(device, unsafe.Pointer(a.framebufferCreateInfo(info)), 0, framebuffer)
}

func (t *deviceTable) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	t.destroyFramebuffer(device, framebuffer, 0)
}

func (t *deviceTable) CreateDescriptorSetLayout(device vk.Device, info *vk.DescriptorSetLayoutCreateInfo, layout *vk.DescriptorSetLayout) vk.Result {
	var a arena
	defer a.free()
	return t.createDescriptorSetLayout(device, unsafe.Pointer(a.descriptorSetLayoutCreateInfo(info)), 0, layout)
}

func (t *deviceTable) DestroyDescriptorSetLayout(device vk.Device, layout vk.DescriptorSetLayout) {
	t.destroyDescriptorSetLayout(device, layout, 0)
}

func (t *deviceTable) CreateDescriptorPool(device vk.Device, info *vk.DescriptorPoolCreateInfo, pool *vk.DescriptorPool) vk.Result {
	var a arena
	defer a.free()
	c := cDescriptorPoolCreateInfo{
		sType:         structureTypeDescriptorPoolCreateInfo,
		flags:         uint32(info.Flags),
		maxSets:       info.MaxSets,
		poolSizeCount: uint32(len(info.PoolSizes)),
		pPoolSizes:    pinSlice(&a, info.PoolSizes),
	}
	return t.createDescriptorPool(device, unsafe.Pointer(&c), 0, pool)
}

func (t *deviceTable) DestroyDescriptorPool(device vk.Device, pool vk.DescriptorPool) {
	t.destroyDescriptorPool(device, pool, 0)
}

func (t *deviceTable) ResetDescriptorPool(device vk.Device, pool vk.DescriptorPool, flags uint32) vk.Result {
	return t.resetDescriptorPool(device, pool, flags)
}

// AllocateDescriptorSets allocates one set per layout into sets.
func (t *deviceTable) AllocateDescriptorSets(device vk.Device, info *vk.DescriptorSetAllocateInfo, sets []vk.DescriptorSet) vk.Result {
	if len(sets) < len(info.SetLayouts) {
		return vk.ErrorInitializationFailed
	}
	var a arena
	defer a.free()
	c := cDescriptorSetAllocateInfo{
		sType:              structureTypeDescriptorSetAllocateInfo,
		descriptorPool:     uint64(info.DescriptorPool),
		descriptorSetCount: uint32(len(info.SetLayouts)),
		pSetLayouts:        pinSlice(&a, info.SetLayouts),
	}
	return t.allocateDescriptorSets(device, unsafe.Pointer(&c), slicePtr(sets))
}

func (t *deviceTable) FreeDescriptorSets(device vk.Device, pool vk.DescriptorPool, sets []vk.DescriptorSet) vk.Result {
	return t.freeDescriptorSets(device, pool, uint32(len(sets)), slicePtr(sets))
}

func (t *deviceTable) UpdateDescriptorSets(device vk.Device, writes []vk.WriteDescriptorSet) {
	var a arena
	defer a.free()
	t.updateDescriptorSets(device, uint32(len(writes)), a.writeDescriptorSets(writes), 0, 0)
}

func (t *deviceTable) CreateFence(device vk.Device, info *vk.FenceCreateInfo, fence *vk.Fence) vk.Result {
	c := cFlagsCreateInfo{sType: structureTypeFenceCreateInfo, flags: uint32(info.Flags)}
	return t.createFence(device, unsafe.Pointer(&c), 0, fence)
}

func (t *deviceTable) DestroyFence(device vk.Device, fence vk.Fence) {
	t.destroyFence(device, fence, 0)
}

func (t *deviceTable) GetFenceStatus(device vk.Device, fence vk.Fence) vk.Result {
	return t.getFenceStatus(device, fence)
}

func (t *deviceTable) ResetFences(device vk.Device, fences []vk.Fence) vk.Result {
	return t.resetFences(device, uint32(len(fences)), slicePtr(fences))
}

func (t *deviceTable) WaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, timeout uint64) vk.Result {
	return t.waitForFences(device, uint32(len(fences)), slicePtr(fences), boolean(waitAll), timeout)
}

func (t *deviceTable) CreateSemaphore(device vk.Device, semaphore *vk.Semaphore) vk.Result {
	c := cFlagsCreateInfo{sType: structureTypeSemaphoreCreateInfo}
	return t.createSemaphore(device, unsafe.Pointer(&c), 0, semaphore)
}

func (t *deviceTable) DestroySemaphore(device vk.Device, semaphore vk.Semaphore) {
	t.destroySemaphore(device, semaphore, 0)
}

func (t *deviceTable) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, pool *vk.CommandPool) vk.Result {
	c := cCommandPoolCreateInfo{
		sType:            structureTypeCommandPoolCreateInfo,
		flags:            uint32(info.Flags),
		queueFamilyIndex: info.QueueFamilyIndex,
	}
	return t.createCommandPool(device, unsafe.Pointer(&c), 0, pool)
}

func (t *deviceTable) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	t.destroyCommandPool(device, pool, 0)
}

func (t *deviceTable) ResetCommandPool(device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result {
	return t.resetCommandPool(device, pool, flags)
}

func (t *deviceTable) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, buffers []vk.CommandBuffer) vk.Result {
	if uint32(len(buffers)) < info.CommandBufferCount {
		return vk.ErrorInitializationFailed
	}
	c := cCommandBufferAllocateInfo{
		sType:              structureTypeCommandBufferAllocateInfo,
		commandPool:        uint64(info.CommandPool),
		level:              int32(info.Level),
		commandBufferCount: info.CommandBufferCount,
	}
	return t.allocateCommandBuffers(device, unsafe.Pointer(&c), slicePtr(buffers))
}

func (t *deviceTable) FreeCommandBuffers(device vk.Device, pool vk.CommandPool, buffers []vk.CommandBuffer) {
	t.freeCommandBuffers(device, pool, uint32(len(buffers)), slicePtr(buffers))
}

func (t *deviceTable) BeginCommandBuffer(commandBuffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	var a arena
	defer a.free()
	return t.beginCommandBuffer(commandBuffer, unsafe.Pointer(a.commandBufferBeginInfo(info)))
}

func (t *deviceTable) EndCommandBuffer(commandBuffer vk.CommandBuffer) vk.Result {
	return t.endCommandBuffer(commandBuffer)
}

func (t *deviceTable) ResetCommandBuffer(commandBuffer vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result {
	return t.resetCommandBuffer(commandBuffer, flags)
}

func (t *deviceTable) CmdBindPipeline(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	t.cmdBindPipeline(commandBuffer, bindPoint, pipeline)
}

func (t *deviceTable) CmdBindDescriptorSets(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, sets []vk.DescriptorSet, dynamicOffsets []uint32) {
	t.cmdBindDescriptorSets(commandBuffer, bindPoint, layout, firstSet,
		uint32(len(sets)), slicePtr(sets), uint32(len(dynamicOffsets)), slicePtr(dynamicOffsets))
}

func (t *deviceTable) CmdPushConstants(commandBuffer vk.CommandBuffer, layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset uint32, values []byte) {
	t.cmdPushConstants(commandBuffer, layout, stages, offset, uint32(len(values)), slicePtr(values))
}

func (t *deviceTable) CmdDispatch(commandBuffer vk.CommandBuffer, groupCountX, groupCountY, groupCountZ uint32) {
	t.cmdDispatch(commandBuffer, groupCountX, groupCountY, groupCountZ)
}

// BufferCopy and BufferImageCopy match their C layouts, regions are passed
// as is.
func (t *deviceTable) CmdCopyBuffer(commandBuffer vk.CommandBuffer, src, dst vk.Buffer, regions []vk.BufferCopy) {
	t.cmdCopyBuffer(commandBuffer, src, dst, uint32(len(regions)), slicePtr(regions))
}

func (t *deviceTable) CmdFillBuffer(commandBuffer vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data uint32) {
	t.cmdFillBuffer(commandBuffer, dst, offset, size, data)
}

func (t *deviceTable) CmdPipelineBarrier(commandBuffer vk.CommandBuffer, srcStage, dstStage vk.PipelineStageFlags, dependency vk.DependencyFlags,
	memoryBarriers []vk.MemoryBarrier, bufferBarriers []vk.BufferMemoryBarrier, imageBarriers []vk.ImageMemoryBarrier) {
	var a arena
	defer a.free()
	m, b, i := a.barriers(memoryBarriers, bufferBarriers, imageBarriers)
	t.cmdPipelineBarrier(commandBuffer, srcStage, dstStage, dependency,
		uint32(len(memoryBarriers)), m, uint32(len(bufferBarriers)), b, uint32(len(imageBarriers)), i)
}

func (t *deviceTable) CmdCopyBufferToImage(commandBuffer vk.CommandBuffer, src vk.Buffer, dst vk.Image, layout vk.ImageLayout, regions []vk.BufferImageCopy) {
	t.cmdCopyBufferToImage(commandBuffer, src, dst, layout, uint32(len(regions)), slicePtr(regions))
}

func (t *deviceTable) CmdCopyImageToBuffer(commandBuffer vk.CommandBuffer, src vk.Image, layout vk.ImageLayout, dst vk.Buffer, regions []vk.BufferImageCopy) {
	t.cmdCopyImageToBuffer(commandBuffer, src, layout, dst, uint32(len(regions)), slicePtr(regions))
}

func (t *deviceTable) CmdBeginRenderPass(commandBuffer vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) {
	var a arena
	defer a.free()
	t.cmdBeginRenderPass(commandBuffer, unsafe.Pointer(a.renderPassBeginInfo(info)), contents)
}

func (t *deviceTable) CmdEndRenderPass(commandBuffer vk.CommandBuffer) {
	t.cmdEndRenderPass(commandBuffer)
}

// CmdBindVertexBuffers binds one buffer per offset.
func (t *deviceTable) CmdBindVertexBuffers(commandBuffer vk.CommandBuffer, firstBinding uint32, buffers []vk.Buffer, offsets []vk.DeviceSize) {
	n := min(len(buffers), len(offsets))
	t.cmdBindVertexBuffers(commandBuffer, firstBinding, uint32(n), slicePtr(buffers), slicePtr(offsets))
}

func (t *deviceTable) CmdBindIndexBuffer(commandBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	t.cmdBindIndexBuffer(commandBuffer, buffer, offset, indexType)
}

// Viewport and Rect2D match their C layouts.
func (t *deviceTable) CmdSetViewport(commandBuffer vk.CommandBuffer, firstViewport uint32, viewports []vk.Viewport) {
	t.cmdSetViewport(commandBuffer, firstViewport, uint32(len(viewports)), slicePtr(viewports))
}

func (t *deviceTable) CmdSetScissor(commandBuffer vk.CommandBuffer, firstScissor uint32, scissors []vk.Rect2D) {
	t.cmdSetScissor(commandBuffer, firstScissor, uint32(len(scissors)), slicePtr(scissors))
}

func (t *deviceTable) CmdDraw(commandBuffer vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	t.cmdDraw(commandBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (t *deviceTable) CmdDrawIndexed(commandBuffer vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	t.cmdDrawIndexed(commandBuffer, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func (t *deviceTable) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo, swapchain *vk.Swapchain) vk.Result {
	if t.createSwapchain == nil {
		return vk.ErrorExtensionNotPresent
	}
	var a arena
	defer a.free()
	return t.createSwapchain(device, unsafe.Pointer(a.swapchainCreateInfo(info)), 0, swapchain)
}

func (t *deviceTable) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	if t.destroySwapchain != nil {
		t.destroySwapchain(device, swapchain, 0)
	}
}

func (t *deviceTable) GetSwapchainImages(device vk.Device, swapchain vk.Swapchain, count *uint32, images []vk.Image) vk.Result {
	if t.getSwapchainImages == nil {
		return vk.ErrorExtensionNotPresent
	}
	if images != nil {
		*count = min(*count, uint32(len(images)))
	}
	return t.getSwapchainImages(device, swapchain, count, slicePtr(images))
}

func (t *deviceTable) AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence, index *uint32) vk.Result {
	if t.acquireNextImage == nil {
		return vk.ErrorExtensionNotPresent
	}
	return t.acquireNextImage(device, swapchain, timeout, semaphore, fence, index)
}
