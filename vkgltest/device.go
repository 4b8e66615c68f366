package vkgltest

import (
	"unsafe"

	"github.com/celer/vkgl/vk"
)

func (d *Driver) DestroyDevice(device vk.Device) {
	d.record("DestroyDevice", device)
	d.release("Device", uint64(device))
}

func (d *Driver) GetDeviceQueue(device vk.Device, queueFamilyIndex, queueIndex uint32, queue *vk.Queue) {
	d.record("GetDeviceQueue", device, queueFamilyIndex, queueIndex)
	*queue = vk.Queue(0x100000 + uintptr(queueFamilyIndex)<<8 + uintptr(queueIndex))
}

func (d *Driver) DeviceWaitIdle(device vk.Device) vk.Result {
	return d.record("DeviceWaitIdle", device)
}

func (d *Driver) QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	r := d.record("QueueSubmit", queue, append([]vk.SubmitInfo(nil), submits...), fence)
	if r == vk.Success && fence != vk.NullFence {
		d.SignalFence(fence)
	}
	return r
}

func (d *Driver) QueueWaitIdle(queue vk.Queue) vk.Result {
	return d.record("QueueWaitIdle", queue)
}

func (d *Driver) QueuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result {
	r := d.record("QueuePresent", queue, *info)
	for i := range info.Results {
		info.Results[i] = r
	}
	return r
}

func (d *Driver) AllocateMemory(device vk.Device, info *vk.MemoryAllocateInfo, memory *vk.DeviceMemory) vk.Result {
	r := d.record("AllocateMemory", device, *info)
	if r != vk.Success {
		return r
	}
	m := vk.DeviceMemory(d.handle("DeviceMemory"))
	d.mu.Lock()
	d.memory[m] = make([]byte, info.AllocationSize)
	d.mu.Unlock()
	*memory = m
	return r
}

func (d *Driver) FreeMemory(device vk.Device, memory vk.DeviceMemory) {
	d.record("FreeMemory", device, memory)
	d.release("DeviceMemory", uint64(memory))
}

func (d *Driver) MapMemory(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize, flags uint32, data *unsafe.Pointer) vk.Result {
	r := d.record("MapMemory", device, memory, offset, size)
	if r != vk.Success {
		return r
	}
	d.mu.Lock()
	b, ok := d.memory[memory]
	d.mu.Unlock()
	if !ok || (size != vk.WholeSize && offset+size > vk.DeviceSize(len(b))) {
		return vk.ErrorMemoryMapFailed
	}
	*data = bytesAt(b, offset)
	return r
}

func (d *Driver) UnmapMemory(device vk.Device, memory vk.DeviceMemory) {
	d.record("UnmapMemory", device, memory)
}

func (d *Driver) FlushMappedMemoryRanges(device vk.Device, ranges []vk.MappedMemoryRange) vk.Result {
	return d.record("FlushMappedMemoryRanges", device, append([]vk.MappedMemoryRange(nil), ranges...))
}

func (d *Driver) InvalidateMappedMemoryRanges(device vk.Device, ranges []vk.MappedMemoryRange) vk.Result {
	return d.record("InvalidateMappedMemoryRanges", device, append([]vk.MappedMemoryRange(nil), ranges...))
}

func (d *Driver) CreateBuffer(device vk.Device, info *vk.BufferCreateInfo, buffer *vk.Buffer) vk.Result {
	r := d.record("CreateBuffer", device, *info)
	if r == vk.Success {
		h := d.handle("Buffer")
		d.mu.Lock()
		d.sizes[h] = info.Size
		d.mu.Unlock()
		*buffer = vk.Buffer(h)
	}
	return r
}

func (d *Driver) DestroyBuffer(device vk.Device, buffer vk.Buffer) {
	d.record("DestroyBuffer", device, buffer)
	d.release("Buffer", uint64(buffer))
}

func (d *Driver) requirements(h uint64, requirements *vk.MemoryRequirements) {
	d.mu.Lock()
	size := d.sizes[h]
	d.mu.Unlock()
	requirements.Size = align(size, d.Alignment)
	requirements.Alignment = d.Alignment
	requirements.MemoryTypeBits = 0b111
}

func (d *Driver) GetBufferMemoryRequirements(device vk.Device, buffer vk.Buffer, requirements *vk.MemoryRequirements) {
	d.record("GetBufferMemoryRequirements", device, buffer)
	d.requirements(uint64(buffer), requirements)
}

func (d *Driver) BindBufferMemory(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return d.record("BindBufferMemory", device, buffer, memory, offset)
}

func (d *Driver) CreateImage(device vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result {
	r := d.record("CreateImage", device, *info)
	if r == vk.Success {
		h := d.handle("Image")
		e := info.Extent
		d.mu.Lock()
		d.sizes[h] = vk.DeviceSize(e.Width) * vk.DeviceSize(e.Height) * vk.DeviceSize(max(e.Depth, 1)) * 4
		d.mu.Unlock()
		*image = vk.Image(h)
	}
	return r
}

func (d *Driver) DestroyImage(device vk.Device, image vk.Image) {
	d.record("DestroyImage", device, image)
	d.release("Image", uint64(image))
}

func (d *Driver) GetImageMemoryRequirements(device vk.Device, image vk.Image, requirements *vk.MemoryRequirements) {
	d.record("GetImageMemoryRequirements", device, image)
	d.requirements(uint64(image), requirements)
}

func (d *Driver) BindImageMemory(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return d.record("BindImageMemory", device, image, memory, offset)
}

func (d *Driver) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, view *vk.ImageView) vk.Result {
	r := d.record("CreateImageView", device, *info)
	if r == vk.Success {
		*view = vk.ImageView(d.handle("ImageView"))
	}
	return r
}

func (d *Driver) DestroyImageView(device vk.Device, view vk.ImageView) {
	d.record("DestroyImageView", device, view)
	d.release("ImageView", uint64(view))
}

func (d *Driver) CreateSampler(device vk.Device, info *vk.SamplerCreateInfo, sampler *vk.Sampler) vk.Result {
	r := d.record("CreateSampler", device, *info)
	if r == vk.Success {
		*sampler = vk.Sampler(d.handle("Sampler"))
	}
	return r
}

func (d *Driver) DestroySampler(device vk.Device, sampler vk.Sampler) {
	d.record("DestroySampler", device, sampler)
	d.release("Sampler", uint64(sampler))
}

func (d *Driver) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result {
	r := d.record("CreateShaderModule", device, len(info.Code))
	if r == vk.Success {
		*module = vk.ShaderModule(d.handle("ShaderModule"))
	}
	return r
}

func (d *Driver) DestroyShaderModule(device vk.Device, module vk.ShaderModule) {
	d.record("DestroyShaderModule", device, module)
	d.release("ShaderModule", uint64(module))
}

func (d *Driver) CreatePipelineCache(device vk.Device, info *vk.PipelineCacheCreateInfo, cache *vk.PipelineCache) vk.Result {
	r := d.record("CreatePipelineCache", device, append([]byte(nil), info.InitialData...))
	if r == vk.Success {
		*cache = vk.PipelineCache(d.handle("PipelineCache"))
	}
	return r
}

func (d *Driver) DestroyPipelineCache(device vk.Device, cache vk.PipelineCache) {
	d.record("DestroyPipelineCache", device, cache)
	d.release("PipelineCache", uint64(cache))
}

func (d *Driver) GetPipelineCacheData(device vk.Device, cache vk.PipelineCache, size *uint, data []byte) vk.Result {
	if r := d.record("GetPipelineCacheData", device, cache, data == nil); r != vk.Success {
		return r
	}
	if data == nil {
		*size = uint(len(d.PipelineCacheData))
		return vk.Success
	}
	n := copy(data[:min(int(*size), len(data))], d.PipelineCacheData)
	*size = uint(n)
	if n < len(d.PipelineCacheData) {
		return vk.Incomplete
	}
	return vk.Success
}

func (d *Driver) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, layout *vk.PipelineLayout) vk.Result {
	r := d.record("CreatePipelineLayout", device, *info)
	if r == vk.Success {
		*layout = vk.PipelineLayout(d.handle("PipelineLayout"))
	}
	return r
}

func (d *Driver) DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout) {
	d.record("DestroyPipelineLayout", device, layout)
	d.release("PipelineLayout", uint64(layout))
}

func (d *Driver) CreateComputePipelines(device vk.Device, cache vk.PipelineCache, infos []vk.ComputePipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	r := d.record("CreateComputePipelines", device, cache, append([]vk.ComputePipelineCreateInfo(nil), infos...))
	if r == vk.Success {
		for i := range infos {
			pipelines[i] = vk.Pipeline(d.handle("Pipeline"))
		}
	}
	return r
}

func (d *Driver) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	r := d.record("CreateGraphicsPipelines", device, cache, append([]vk.GraphicsPipelineCreateInfo(nil), infos...))
	if r == vk.Success {
		for i := range infos {
			pipelines[i] = vk.Pipeline(d.handle("Pipeline"))
		}
	}
	return r
}

func (d *Driver) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) {
	d.record("DestroyPipeline", device, pipeline)
	d.release("Pipeline", uint64(pipeline))
}

func (d *Driver) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, renderPass *vk.RenderPass) vk.Result {
	r := d.record("CreateRenderPass", device, *info)
	if r == vk.Success {
		*renderPass = vk.RenderPass(d.handle("RenderPass"))
	}
	return r
}

func (d *Driver) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	d.record("DestroyRenderPass", device, renderPass)
	d.release("RenderPass", uint64(renderPass))
}

func (d *Driver) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, framebuffer *vk.Framebuffer) vk.Result {
	r := d.record("CreateFramebuffer", device, *info)
	if r == vk.Success {
		*framebuffer = vk.Framebuffer(d.handle("Framebuffer"))
	}
	return r
}

func (d *Driver) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	d.record("DestroyFramebuffer", device, framebuffer)
	d.release("Framebuffer", uint64(framebuffer))
}

func (d *Driver) CreateDescriptorSetLayout(device vk.Device, info *vk.DescriptorSetLayoutCreateInfo, layout *vk.DescriptorSetLayout) vk.Result {
	r := d.record("CreateDescriptorSetLayout", device, *info)
	if r == vk.Success {
		*layout = vk.DescriptorSetLayout(d.handle("DescriptorSetLayout"))
	}
	return r
}

func (d *Driver) DestroyDescriptorSetLayout(device vk.Device, layout vk.DescriptorSetLayout) {
	d.record("DestroyDescriptorSetLayout", device, layout)
	d.release("DescriptorSetLayout", uint64(layout))
}

func (d *Driver) CreateDescriptorPool(device vk.Device, info *vk.DescriptorPoolCreateInfo, pool *vk.DescriptorPool) vk.Result {
	r := d.record("CreateDescriptorPool", device, *info)
	if r == vk.Success {
		*pool = vk.DescriptorPool(d.handle("DescriptorPool"))
	}
	return r
}

func (d *Driver) DestroyDescriptorPool(device vk.Device, pool vk.DescriptorPool) {
	d.record("DestroyDescriptorPool", device, pool)
	d.release("DescriptorPool", uint64(pool))
}

func (d *Driver) ResetDescriptorPool(device vk.Device, pool vk.DescriptorPool, flags uint32) vk.Result {
	return d.record("ResetDescriptorPool", device, pool)
}

func (d *Driver) AllocateDescriptorSets(device vk.Device, info *vk.DescriptorSetAllocateInfo, sets []vk.DescriptorSet) vk.Result {
	r := d.record("AllocateDescriptorSets", device, *info)
	if r == vk.Success {
		for i := range info.SetLayouts {
			sets[i] = vk.DescriptorSet(d.handle("DescriptorSet"))
		}
	}
	return r
}

func (d *Driver) FreeDescriptorSets(device vk.Device, pool vk.DescriptorPool, sets []vk.DescriptorSet) vk.Result {
	r := d.record("FreeDescriptorSets", device, pool, append([]vk.DescriptorSet(nil), sets...))
	for _, s := range sets {
		d.release("DescriptorSet", uint64(s))
	}
	return r
}

func (d *Driver) UpdateDescriptorSets(device vk.Device, writes []vk.WriteDescriptorSet) {
	d.record("UpdateDescriptorSets", device, append([]vk.WriteDescriptorSet(nil), writes...))
}

func (d *Driver) CreateFence(device vk.Device, info *vk.FenceCreateInfo, fence *vk.Fence) vk.Result {
	r := d.record("CreateFence", device, *info)
	if r == vk.Success {
		f := vk.Fence(d.handle("Fence"))
		d.mu.Lock()
		d.fences[f] = info.Flags&vk.FenceCreateSignaledBit != 0
		d.mu.Unlock()
		*fence = f
	}
	return r
}

func (d *Driver) DestroyFence(device vk.Device, fence vk.Fence) {
	d.record("DestroyFence", device, fence)
	d.release("Fence", uint64(fence))
}

func (d *Driver) GetFenceStatus(device vk.Device, fence vk.Fence) vk.Result {
	if r := d.record("GetFenceStatus", device, fence); r != vk.Success {
		return r
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fences[fence] {
		return vk.Success
	}
	return vk.NotReady
}

func (d *Driver) ResetFences(device vk.Device, fences []vk.Fence) vk.Result {
	r := d.record("ResetFences", device, append([]vk.Fence(nil), fences...))
	if r == vk.Success {
		d.mu.Lock()
		for _, f := range fences {
			d.fences[f] = false
		}
		d.mu.Unlock()
	}
	return r
}

func (d *Driver) WaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, timeout uint64) vk.Result {
	if r := d.record("WaitForFences", device, append([]vk.Fence(nil), fences...), waitAll, timeout); r != vk.Success {
		return r
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	signaled := 0
	for _, f := range fences {
		if d.fences[f] {
			signaled++
		}
	}
	if (waitAll && signaled == len(fences)) || (!waitAll && signaled > 0) {
		return vk.Success
	}
	return vk.Timeout
}

func (d *Driver) CreateSemaphore(device vk.Device, semaphore *vk.Semaphore) vk.Result {
	r := d.record("CreateSemaphore", device)
	if r == vk.Success {
		*semaphore = vk.Semaphore(d.handle("Semaphore"))
	}
	return r
}

func (d *Driver) DestroySemaphore(device vk.Device, semaphore vk.Semaphore) {
	d.record("DestroySemaphore", device, semaphore)
	d.release("Semaphore", uint64(semaphore))
}

func (d *Driver) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, pool *vk.CommandPool) vk.Result {
	r := d.record("CreateCommandPool", device, *info)
	if r == vk.Success {
		*pool = vk.CommandPool(d.handle("CommandPool"))
	}
	return r
}

func (d *Driver) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	d.record("DestroyCommandPool", device, pool)
	d.release("CommandPool", uint64(pool))
}

func (d *Driver) ResetCommandPool(device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result {
	return d.record("ResetCommandPool", device, pool, flags)
}

func (d *Driver) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, buffers []vk.CommandBuffer) vk.Result {
	r := d.record("AllocateCommandBuffers", device, *info)
	if r == vk.Success {
		for i := 0; i < int(info.CommandBufferCount); i++ {
			buffers[i] = vk.CommandBuffer(d.handle("CommandBuffer"))
		}
	}
	return r
}

func (d *Driver) FreeCommandBuffers(device vk.Device, pool vk.CommandPool, buffers []vk.CommandBuffer) {
	d.record("FreeCommandBuffers", device, pool, append([]vk.CommandBuffer(nil), buffers...))
	for _, b := range buffers {
		d.release("CommandBuffer", uint64(b))
	}
}

func (d *Driver) BeginCommandBuffer(commandBuffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	return d.record("BeginCommandBuffer", commandBuffer, *info)
}

func (d *Driver) EndCommandBuffer(commandBuffer vk.CommandBuffer) vk.Result {
	return d.record("EndCommandBuffer", commandBuffer)
}

func (d *Driver) ResetCommandBuffer(commandBuffer vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result {
	return d.record("ResetCommandBuffer", commandBuffer, flags)
}

func (d *Driver) CmdBindPipeline(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	d.record("CmdBindPipeline", commandBuffer, bindPoint, pipeline)
}

func (d *Driver) CmdBindDescriptorSets(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, sets []vk.DescriptorSet, dynamicOffsets []uint32) {
	d.record("CmdBindDescriptorSets", commandBuffer, bindPoint, layout, firstSet,
		append([]vk.DescriptorSet(nil), sets...), append([]uint32(nil), dynamicOffsets...))
}

func (d *Driver) CmdPushConstants(commandBuffer vk.CommandBuffer, layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset uint32, values []byte) {
	d.record("CmdPushConstants", commandBuffer, layout, stages, offset, append([]byte(nil), values...))
}

func (d *Driver) CmdDispatch(commandBuffer vk.CommandBuffer, groupCountX, groupCountY, groupCountZ uint32) {
	d.record("CmdDispatch", commandBuffer, groupCountX, groupCountY, groupCountZ)
}

func (d *Driver) CmdCopyBuffer(commandBuffer vk.CommandBuffer, src, dst vk.Buffer, regions []vk.BufferCopy) {
	d.record("CmdCopyBuffer", commandBuffer, src, dst, append([]vk.BufferCopy(nil), regions...))
}

func (d *Driver) CmdFillBuffer(commandBuffer vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data uint32) {
	d.record("CmdFillBuffer", commandBuffer, dst, offset, size, data)
}

func (d *Driver) CmdPipelineBarrier(commandBuffer vk.CommandBuffer, srcStage, dstStage vk.PipelineStageFlags, dependency vk.DependencyFlags,
	memoryBarriers []vk.MemoryBarrier, bufferBarriers []vk.BufferMemoryBarrier, imageBarriers []vk.ImageMemoryBarrier) {
	d.record("CmdPipelineBarrier", commandBuffer, srcStage, dstStage, dependency,
		append([]vk.MemoryBarrier(nil), memoryBarriers...),
		append([]vk.BufferMemoryBarrier(nil), bufferBarriers...),
		append([]vk.ImageMemoryBarrier(nil), imageBarriers...))
}

func (d *Driver) CmdCopyBufferToImage(commandBuffer vk.CommandBuffer, src vk.Buffer, dst vk.Image, layout vk.ImageLayout, regions []vk.BufferImageCopy) {
	d.record("CmdCopyBufferToImage", commandBuffer, src, dst, layout, append([]vk.BufferImageCopy(nil), regions...))
}

func (d *Driver) CmdCopyImageToBuffer(commandBuffer vk.CommandBuffer, src vk.Image, layout vk.ImageLayout, dst vk.Buffer, regions []vk.BufferImageCopy) {
	d.record("CmdCopyImageToBuffer", commandBuffer, src, layout, dst, append([]vk.BufferImageCopy(nil), regions...))
}

func (d *Driver) CmdBeginRenderPass(commandBuffer vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) {
	d.record("CmdBeginRenderPass", commandBuffer, *info, contents)
}

func (d *Driver) CmdEndRenderPass(commandBuffer vk.CommandBuffer) {
	d.record("CmdEndRenderPass", commandBuffer)
}

func (d *Driver) CmdBindVertexBuffers(commandBuffer vk.CommandBuffer, firstBinding uint32, buffers []vk.Buffer, offsets []vk.DeviceSize) {
	d.record("CmdBindVertexBuffers", commandBuffer, firstBinding,
		append([]vk.Buffer(nil), buffers...), append([]vk.DeviceSize(nil), offsets...))
}

func (d *Driver) CmdBindIndexBuffer(commandBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	d.record("CmdBindIndexBuffer", commandBuffer, buffer, offset, indexType)
}

func (d *Driver) CmdSetViewport(commandBuffer vk.CommandBuffer, firstViewport uint32, viewports []vk.Viewport) {
	d.record("CmdSetViewport", commandBuffer, firstViewport, append([]vk.Viewport(nil), viewports...))
}

func (d *Driver) CmdSetScissor(commandBuffer vk.CommandBuffer, firstScissor uint32, scissors []vk.Rect2D) {
	d.record("CmdSetScissor", commandBuffer, firstScissor, append([]vk.Rect2D(nil), scissors...))
}

func (d *Driver) CmdDraw(commandBuffer vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	d.record("CmdDraw", commandBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (d *Driver) CmdDrawIndexed(commandBuffer vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	d.record("CmdDrawIndexed", commandBuffer, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func (d *Driver) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo, swapchain *vk.Swapchain) vk.Result {
	r := d.record("CreateSwapchain", device, *info)
	if r == vk.Success {
		*swapchain = vk.Swapchain(d.handle("Swapchain"))
	}
	return r
}

func (d *Driver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	d.record("DestroySwapchain", device, swapchain)
	d.release("Swapchain", uint64(swapchain))
}

func (d *Driver) GetSwapchainImages(device vk.Device, swapchain vk.Swapchain, count *uint32, images []vk.Image) vk.Result {
	if r := d.record("GetSwapchainImages", device, swapchain, images == nil); r != vk.Success {
		return r
	}
	src := make([]vk.Image, d.SwapchainImageCount)
	for i := range src {
		src[i] = vk.Image(uint64(swapchain)<<8 + uint64(i))
	}
	return enumerate(src, count, images)
}

func (d *Driver) AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence, index *uint32) vk.Result {
	r := d.record("AcquireNextImage", device, swapchain, timeout, semaphore, fence)
	if r.IsError() || r == vk.Timeout || r == vk.NotReady {
		return r
	}
	d.mu.Lock()
	*index = d.nextImage
	if d.SwapchainImageCount > 0 {
		d.nextImage = (d.nextImage + 1) % d.SwapchainImageCount
	}
	d.mu.Unlock()
	return r
}
