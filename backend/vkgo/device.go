//go:build cgo

package vkgo

import (
	"unsafe"

	vkgo "github.com/vulkan-go/vulkan"

	"github.com/celer/vkgl/vk"
)

type deviceTable struct{}

var _ vk.DeviceCommands = deviceTable{}

func dev(device vk.Device) vkgo.Device {
	return handle[vkgo.Device](device)
}

func cmd(commandBuffer vk.CommandBuffer) vkgo.CommandBuffer {
	return handle[vkgo.CommandBuffer](commandBuffer)
}

func (deviceTable) DestroyDevice(device vk.Device) {
	vkgo.DestroyDevice(dev(device), nil)
}

func (deviceTable) GetDeviceQueue(device vk.Device, queueFamilyIndex, queueIndex uint32, queue *vk.Queue) {
	var q vkgo.Queue
	vkgo.GetDeviceQueue(dev(device), queueFamilyIndex, queueIndex, &q)
	*queue = handle[vk.Queue](q)
}

func (deviceTable) DeviceWaitIdle(device vk.Device) vk.Result {
	return vk.Result(vkgo.DeviceWaitIdle(dev(device)))
}

func (deviceTable) QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	return vk.Result(vkgo.QueueSubmit(handle[vkgo.Queue](queue), uint32(len(submits)), submitInfos(submits), handle[vkgo.Fence](fence)))
}

func (deviceTable) QueueWaitIdle(queue vk.Queue) vk.Result {
	return vk.Result(vkgo.QueueWaitIdle(handle[vkgo.Queue](queue)))
}

func (deviceTable) QueuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result {
	var results []vkgo.Result
	if info.Results != nil {
		results = make([]vkgo.Result, len(info.Swapchains))
	}
	r := vkgo.QueuePresent(handle[vkgo.Queue](queue), &vkgo.PresentInfo{
		SType:              vkgo.StructureTypePresentInfo,
		WaitSemaphoreCount: uint32(len(info.WaitSemaphores)),
		PWaitSemaphores:    handles[vkgo.Semaphore](info.WaitSemaphores),
		SwapchainCount:     uint32(len(info.Swapchains)),
		PSwapchains:        handles[vkgo.Swapchain](info.Swapchains),
		PImageIndices:      info.ImageIndices,
		PResults:           results,
	})
	for i := range results {
		if i < len(info.Results) {
			info.Results[i] = vk.Result(results[i])
		}
	}
	return vk.Result(r)
}

func (deviceTable) AllocateMemory(device vk.Device, info *vk.MemoryAllocateInfo, memory *vk.DeviceMemory) vk.Result {
	var m vkgo.DeviceMemory
	r := vkgo.AllocateMemory(dev(device), &vkgo.MemoryAllocateInfo{
		SType:           vkgo.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vkgo.DeviceSize(info.AllocationSize),
		MemoryTypeIndex: info.MemoryTypeIndex,
	}, nil, &m)
	*memory = handle[vk.DeviceMemory](m)
	return vk.Result(r)
}

func (deviceTable) FreeMemory(device vk.Device, memory vk.DeviceMemory) {
	vkgo.FreeMemory(dev(device), handle[vkgo.DeviceMemory](memory), nil)
}

func (deviceTable) MapMemory(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize, flags uint32, data *unsafe.Pointer) vk.Result {
	return vk.Result(vkgo.MapMemory(dev(device), handle[vkgo.DeviceMemory](memory),
		vkgo.DeviceSize(offset), vkgo.DeviceSize(size), vkgo.MemoryMapFlags(flags), data))
}

func (deviceTable) UnmapMemory(device vk.Device, memory vk.DeviceMemory) {
	vkgo.UnmapMemory(dev(device), handle[vkgo.DeviceMemory](memory))
}

func (deviceTable) FlushMappedMemoryRanges(device vk.Device, ranges []vk.MappedMemoryRange) vk.Result {
	return vk.Result(vkgo.FlushMappedMemoryRanges(dev(device), uint32(len(ranges)), mappedMemoryRanges(ranges)))
}

func (deviceTable) InvalidateMappedMemoryRanges(device vk.Device, ranges []vk.MappedMemoryRange) vk.Result {
	return vk.Result(vkgo.InvalidateMappedMemoryRanges(dev(device), uint32(len(ranges)), mappedMemoryRanges(ranges)))
}

func (deviceTable) CreateBuffer(device vk.Device, info *vk.BufferCreateInfo, buffer *vk.Buffer) vk.Result {
	var b vkgo.Buffer
	r := vkgo.CreateBuffer(dev(device), bufferCreateInfo(info), nil, &b)
	*buffer = handle[vk.Buffer](b)
	return vk.Result(r)
}

func (deviceTable) DestroyBuffer(device vk.Device, buffer vk.Buffer) {
	vkgo.DestroyBuffer(dev(device), handle[vkgo.Buffer](buffer), nil)
}

func (deviceTable) GetBufferMemoryRequirements(device vk.Device, buffer vk.Buffer, requirements *vk.MemoryRequirements) {
	var mr vkgo.MemoryRequirements
	vkgo.GetBufferMemoryRequirements(dev(device), handle[vkgo.Buffer](buffer), &mr)
	*requirements = memoryRequirements(&mr)
}

func (deviceTable) BindBufferMemory(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return vk.Result(vkgo.BindBufferMemory(dev(device), handle[vkgo.Buffer](buffer), handle[vkgo.DeviceMemory](memory), vkgo.DeviceSize(offset)))
}

func (deviceTable) CreateImage(device vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result {
	var i vkgo.Image
	r := vkgo.CreateImage(dev(device), imageCreateInfo(info), nil, &i)
	*image = handle[vk.Image](i)
	return vk.Result(r)
}

func (deviceTable) DestroyImage(device vk.Device, image vk.Image) {
	vkgo.DestroyImage(dev(device), handle[vkgo.Image](image), nil)
}

func (deviceTable) GetImageMemoryRequirements(device vk.Device, image vk.Image, requirements *vk.MemoryRequirements) {
	var mr vkgo.MemoryRequirements
	vkgo.GetImageMemoryRequirements(dev(device), handle[vkgo.Image](image), &mr)
	*requirements = memoryRequirements(&mr)
}

func (deviceTable) BindImageMemory(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return vk.Result(vkgo.BindImageMemory(dev(device), handle[vkgo.Image](image), handle[vkgo.DeviceMemory](memory), vkgo.DeviceSize(offset)))
}

func (deviceTable) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, view *vk.ImageView) vk.Result {
	var v vkgo.ImageView
	r := vkgo.CreateImageView(dev(device), imageViewCreateInfo(info), nil, &v)
	*view = handle[vk.ImageView](v)
	return vk.Result(r)
}

func (deviceTable) DestroyImageView(device vk.Device, view vk.ImageView) {
	vkgo.DestroyImageView(dev(device), handle[vkgo.ImageView](view), nil)
}

func (deviceTable) CreateSampler(device vk.Device, info *vk.SamplerCreateInfo, sampler *vk.Sampler) vk.Result {
	var s vkgo.Sampler
	r := vkgo.CreateSampler(dev(device), samplerCreateInfo(info), nil, &s)
	*sampler = handle[vk.Sampler](s)
	return vk.Result(r)
}

func (deviceTable) DestroySampler(device vk.Device, sampler vk.Sampler) {
	vkgo.DestroySampler(dev(device), handle[vkgo.Sampler](sampler), nil)
}

func (deviceTable) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result {
	var m vkgo.ShaderModule
	r := vkgo.CreateShaderModule(dev(device), &vkgo.ShaderModuleCreateInfo{
		SType:    vkgo.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(info.Code) * 4),
		PCode:    info.Code,
	}, nil, &m)
	*module = handle[vk.ShaderModule](m)
	return vk.Result(r)
}

func (deviceTable) DestroyShaderModule(device vk.Device, module vk.ShaderModule) {
	vkgo.DestroyShaderModule(dev(device), handle[vkgo.ShaderModule](module), nil)
}

func (deviceTable) CreatePipelineCache(device vk.Device, info *vk.PipelineCacheCreateInfo, cache *vk.PipelineCache) vk.Result {
	c := &vkgo.PipelineCacheCreateInfo{SType: vkgo.StructureTypePipelineCacheCreateInfo}
	if len(info.InitialData) > 0 {
		c.InitialDataSize = uint(len(info.InitialData))
		c.PInitialData = unsafe.Pointer(&info.InitialData[0])
	}
	var pc vkgo.PipelineCache
	r := vkgo.CreatePipelineCache(dev(device), c, nil, &pc)
	*cache = handle[vk.PipelineCache](pc)
	return vk.Result(r)
}

func (deviceTable) DestroyPipelineCache(device vk.Device, cache vk.PipelineCache) {
	vkgo.DestroyPipelineCache(dev(device), handle[vkgo.PipelineCache](cache), nil)
}

func (deviceTable) GetPipelineCacheData(device vk.Device, cache vk.PipelineCache, size *uint, data []byte) vk.Result {
	var p unsafe.Pointer
	if len(data) > 0 {
		*size = min(*size, uint(len(data)))
		p = unsafe.Pointer(&data[0])
	}
	return vk.Result(vkgo.GetPipelineCacheData(dev(device), handle[vkgo.PipelineCache](cache), size, p))
}

func (deviceTable) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, layout *vk.PipelineLayout) vk.Result {
	var l vkgo.PipelineLayout
	r := vkgo.CreatePipelineLayout(dev(device), pipelineLayoutCreateInfo(info), nil, &l)
	*layout = handle[vk.PipelineLayout](l)
	return vk.Result(r)
}

func (deviceTable) DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout) {
	vkgo.DestroyPipelineLayout(dev(device), handle[vkgo.PipelineLayout](layout), nil)
}

func (deviceTable) CreateComputePipelines(device vk.Device, cache vk.PipelineCache, infos []vk.ComputePipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	n := min(len(infos), len(pipelines))
	return vk.Result(vkgo.CreateComputePipelines(dev(device), handle[vkgo.PipelineCache](cache), uint32(n),
		computePipelineCreateInfos(infos[:n]), nil, handles[vkgo.Pipeline](pipelines)))
}

func (deviceTable) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	n := min(len(infos), len(pipelines))
	return vk.Result(vkgo.CreateGraphicsPipelines(dev(device), handle[vkgo.PipelineCache](cache), uint32(n),
		graphicsPipelineCreateInfos(infos[:n]), nil, handles[vkgo.Pipeline](pipelines)))
}

func (deviceTable) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) {
	vkgo.DestroyPipeline(dev(device), handle[vkgo.Pipeline](pipeline), nil)
}

func (deviceTable) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, renderPass *vk.RenderPass) vk.Result {
	var p vkgo.RenderPass
	r := vkgo.CreateRenderPass(dev(device), renderPassCreateInfo(info), nil, &p)
	*renderPass = handle[vk.RenderPass](p)
	return vk.Result(r)
}

func (deviceTable) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	vkgo.DestroyRenderPass(dev(device), handle[vkgo.RenderPass](renderPass), nil)
}

func (deviceTable) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, framebuffer *vk.Framebuffer) vk.Result {
	var f vkgo.Framebuffer
	r := vkgo.CreateFramebuffer(dev(device), framebufferCreateInfo(info), nil, &f)
	*framebuffer = handle[vk.Framebuffer](f)
	return vk.Result(r)
}

func (deviceTable) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	vkgo.DestroyFramebuffer(dev(device), handle[vkgo.Framebuffer](framebuffer), nil)
}

func (deviceTable) CreateDescriptorSetLayout(device vk.Device, info *vk.DescriptorSetLayoutCreateInfo, layout *vk.DescriptorSetLayout) vk.Result {
	var l vkgo.DescriptorSetLayout
	r := vkgo.CreateDescriptorSetLayout(dev(device), descriptorSetLayoutCreateInfo(info), nil, &l)
	*layout = handle[vk.DescriptorSetLayout](l)
	return vk.Result(r)
}

func (deviceTable) DestroyDescriptorSetLayout(device vk.Device, layout vk.DescriptorSetLayout) {
	vkgo.DestroyDescriptorSetLayout(dev(device), handle[vkgo.DescriptorSetLayout](layout), nil)
}

func (deviceTable) CreateDescriptorPool(device vk.Device, info *vk.DescriptorPoolCreateInfo, pool *vk.DescriptorPool) vk.Result {
	var p vkgo.DescriptorPool
	r := vkgo.CreateDescriptorPool(dev(device), descriptorPoolCreateInfo(info), nil, &p)
	*pool = handle[vk.DescriptorPool](p)
	return vk.Result(r)
}

func (deviceTable) DestroyDescriptorPool(device vk.Device, pool vk.DescriptorPool) {
	vkgo.DestroyDescriptorPool(dev(device), handle[vkgo.DescriptorPool](pool), nil)
}

func (deviceTable) ResetDescriptorPool(device vk.Device, pool vk.DescriptorPool, flags uint32) vk.Result {
	return vk.Result(vkgo.ResetDescriptorPool(dev(device), handle[vkgo.DescriptorPool](pool), vkgo.DescriptorPoolResetFlags(flags)))
}

func (deviceTable) AllocateDescriptorSets(device vk.Device, info *vk.DescriptorSetAllocateInfo, sets []vk.DescriptorSet) vk.Result {
	if len(sets) < len(info.SetLayouts) || len(sets) == 0 {
		return vk.ErrorInitializationFailed
	}
	out := handles[vkgo.DescriptorSet](sets)
	return vk.Result(vkgo.AllocateDescriptorSets(dev(device), &vkgo.DescriptorSetAllocateInfo{
		SType:              vkgo.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     handle[vkgo.DescriptorPool](info.DescriptorPool),
		DescriptorSetCount: uint32(len(info.SetLayouts)),
		PSetLayouts:        handles[vkgo.DescriptorSetLayout](info.SetLayouts),
	}, &out[0]))
}

func (deviceTable) FreeDescriptorSets(device vk.Device, pool vk.DescriptorPool, sets []vk.DescriptorSet) vk.Result {
	if len(sets) == 0 {
		return vk.Success
	}
	in := handles[vkgo.DescriptorSet](sets)
	return vk.Result(vkgo.FreeDescriptorSets(dev(device), handle[vkgo.DescriptorPool](pool), uint32(len(sets)), &in[0]))
}

func (deviceTable) UpdateDescriptorSets(device vk.Device, writes []vk.WriteDescriptorSet) {
	vkgo.UpdateDescriptorSets(dev(device), uint32(len(writes)), writeDescriptorSets(writes), 0, nil)
}

func (deviceTable) CreateFence(device vk.Device, info *vk.FenceCreateInfo, fence *vk.Fence) vk.Result {
	var f vkgo.Fence
	r := vkgo.CreateFence(dev(device), &vkgo.FenceCreateInfo{
		SType: vkgo.StructureTypeFenceCreateInfo,
		Flags: vkgo.FenceCreateFlags(info.Flags),
	}, nil, &f)
	*fence = handle[vk.Fence](f)
	return vk.Result(r)
}

func (deviceTable) DestroyFence(device vk.Device, fence vk.Fence) {
	vkgo.DestroyFence(dev(device), handle[vkgo.Fence](fence), nil)
}

func (deviceTable) GetFenceStatus(device vk.Device, fence vk.Fence) vk.Result {
	return vk.Result(vkgo.GetFenceStatus(dev(device), handle[vkgo.Fence](fence)))
}

func (deviceTable) ResetFences(device vk.Device, fences []vk.Fence) vk.Result {
	return vk.Result(vkgo.ResetFences(dev(device), uint32(len(fences)), handles[vkgo.Fence](fences)))
}

func (deviceTable) WaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, timeout uint64) vk.Result {
	return vk.Result(vkgo.WaitForFences(dev(device), uint32(len(fences)), handles[vkgo.Fence](fences), bool32(waitAll), timeout))
}

func (deviceTable) CreateSemaphore(device vk.Device, semaphore *vk.Semaphore) vk.Result {
	var s vkgo.Semaphore
	r := vkgo.CreateSemaphore(dev(device), &vkgo.SemaphoreCreateInfo{
		SType: vkgo.StructureTypeSemaphoreCreateInfo,
	}, nil, &s)
	*semaphore = handle[vk.Semaphore](s)
	return vk.Result(r)
}

func (deviceTable) DestroySemaphore(device vk.Device, semaphore vk.Semaphore) {
	vkgo.DestroySemaphore(dev(device), handle[vkgo.Semaphore](semaphore), nil)
}

func (deviceTable) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, pool *vk.CommandPool) vk.Result {
	var p vkgo.CommandPool
	r := vkgo.CreateCommandPool(dev(device), &vkgo.CommandPoolCreateInfo{
		SType:            vkgo.StructureTypeCommandPoolCreateInfo,
		Flags:            vkgo.CommandPoolCreateFlags(info.Flags),
		QueueFamilyIndex: info.QueueFamilyIndex,
	}, nil, &p)
	*pool = handle[vk.CommandPool](p)
	return vk.Result(r)
}

func (deviceTable) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	vkgo.DestroyCommandPool(dev(device), handle[vkgo.CommandPool](pool), nil)
}

func (deviceTable) ResetCommandPool(device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result {
	return vk.Result(vkgo.ResetCommandPool(dev(device), handle[vkgo.CommandPool](pool), vkgo.CommandPoolResetFlags(flags)))
}

func (deviceTable) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, buffers []vk.CommandBuffer) vk.Result {
	if uint32(len(buffers)) < info.CommandBufferCount {
		return vk.ErrorInitializationFailed
	}
	return vk.Result(vkgo.AllocateCommandBuffers(dev(device), &vkgo.CommandBufferAllocateInfo{
		SType:              vkgo.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        handle[vkgo.CommandPool](info.CommandPool),
		Level:              vkgo.CommandBufferLevel(info.Level),
		CommandBufferCount: info.CommandBufferCount,
	}, handles[vkgo.CommandBuffer](buffers)))
}

func (deviceTable) FreeCommandBuffers(device vk.Device, pool vk.CommandPool, buffers []vk.CommandBuffer) {
	vkgo.FreeCommandBuffers(dev(device), handle[vkgo.CommandPool](pool), uint32(len(buffers)), handles[vkgo.CommandBuffer](buffers))
}

func (deviceTable) BeginCommandBuffer(commandBuffer vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	return vk.Result(vkgo.BeginCommandBuffer(cmd(commandBuffer), commandBufferBeginInfo(info)))
}

func (deviceTable) EndCommandBuffer(commandBuffer vk.CommandBuffer) vk.Result {
	return vk.Result(vkgo.EndCommandBuffer(cmd(commandBuffer)))
}

func (deviceTable) ResetCommandBuffer(commandBuffer vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result {
	return vk.Result(vkgo.ResetCommandBuffer(cmd(commandBuffer), vkgo.CommandBufferResetFlags(flags)))
}

func (deviceTable) CmdBindPipeline(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	vkgo.CmdBindPipeline(cmd(commandBuffer), vkgo.PipelineBindPoint(bindPoint), handle[vkgo.Pipeline](pipeline))
}

func (deviceTable) CmdBindDescriptorSets(commandBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, sets []vk.DescriptorSet, dynamicOffsets []uint32) {
	vkgo.CmdBindDescriptorSets(cmd(commandBuffer), vkgo.PipelineBindPoint(bindPoint), handle[vkgo.PipelineLayout](layout), firstSet,
		uint32(len(sets)), handles[vkgo.DescriptorSet](sets), uint32(len(dynamicOffsets)), dynamicOffsets)
}

func (deviceTable) CmdPushConstants(commandBuffer vk.CommandBuffer, layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset uint32, values []byte) {
	if len(values) == 0 {
		return
	}
	vkgo.CmdPushConstants(cmd(commandBuffer), handle[vkgo.PipelineLayout](layout), vkgo.ShaderStageFlags(stages),
		offset, uint32(len(values)), unsafe.Pointer(&values[0]))
}

func (deviceTable) CmdDispatch(commandBuffer vk.CommandBuffer, groupCountX, groupCountY, groupCountZ uint32) {
	vkgo.CmdDispatch(cmd(commandBuffer), groupCountX, groupCountY, groupCountZ)
}

func (deviceTable) CmdCopyBuffer(commandBuffer vk.CommandBuffer, src, dst vk.Buffer, regions []vk.BufferCopy) {
	vkgo.CmdCopyBuffer(cmd(commandBuffer), handle[vkgo.Buffer](src), handle[vkgo.Buffer](dst), uint32(len(regions)), bufferCopies(regions))
}

func (deviceTable) CmdFillBuffer(commandBuffer vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data uint32) {
	vkgo.CmdFillBuffer(cmd(commandBuffer), handle[vkgo.Buffer](dst), vkgo.DeviceSize(offset), vkgo.DeviceSize(size), data)
}

func (deviceTable) CmdPipelineBarrier(commandBuffer vk.CommandBuffer, srcStage, dstStage vk.PipelineStageFlags, dependency vk.DependencyFlags,
	memory []vk.MemoryBarrier, buffers []vk.BufferMemoryBarrier, images []vk.ImageMemoryBarrier) {
	vkgo.CmdPipelineBarrier(cmd(commandBuffer), vkgo.PipelineStageFlags(srcStage), vkgo.PipelineStageFlags(dstStage), vkgo.DependencyFlags(dependency),
		uint32(len(memory)), memoryBarriers(memory),
		uint32(len(buffers)), bufferMemoryBarriers(buffers),
		uint32(len(images)), imageMemoryBarriers(images))
}

func (deviceTable) CmdCopyBufferToImage(commandBuffer vk.CommandBuffer, src vk.Buffer, dst vk.Image, layout vk.ImageLayout, regions []vk.BufferImageCopy) {
	vkgo.CmdCopyBufferToImage(cmd(commandBuffer), handle[vkgo.Buffer](src), handle[vkgo.Image](dst), vkgo.ImageLayout(layout),
		uint32(len(regions)), bufferImageCopies(regions))
}

func (deviceTable) CmdCopyImageToBuffer(commandBuffer vk.CommandBuffer, src vk.Image, layout vk.ImageLayout, dst vk.Buffer, regions []vk.BufferImageCopy) {
	vkgo.CmdCopyImageToBuffer(cmd(commandBuffer), handle[vkgo.Image](src), vkgo.ImageLayout(layout), handle[vkgo.Buffer](dst),
		uint32(len(regions)), bufferImageCopies(regions))
}

func (deviceTable) CmdBeginRenderPass(commandBuffer vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) {
	vkgo.CmdBeginRenderPass(cmd(commandBuffer), renderPassBeginInfo(info), vkgo.SubpassContents(contents))
}

func (deviceTable) CmdEndRenderPass(commandBuffer vk.CommandBuffer) {
	vkgo.CmdEndRenderPass(cmd(commandBuffer))
}

func (deviceTable) CmdBindVertexBuffers(commandBuffer vk.CommandBuffer, firstBinding uint32, buffers []vk.Buffer, offsets []vk.DeviceSize) {
	n := min(len(buffers), len(offsets))
	sizes := make([]vkgo.DeviceSize, n)
	for i := range sizes {
		sizes[i] = vkgo.DeviceSize(offsets[i])
	}
	vkgo.CmdBindVertexBuffers(cmd(commandBuffer), firstBinding, uint32(n), handles[vkgo.Buffer](buffers[:n]), sizes)
}

func (deviceTable) CmdBindIndexBuffer(commandBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	vkgo.CmdBindIndexBuffer(cmd(commandBuffer), handle[vkgo.Buffer](buffer), vkgo.DeviceSize(offset), vkgo.IndexType(indexType))
}

func (deviceTable) CmdSetViewport(commandBuffer vk.CommandBuffer, firstViewport uint32, vs []vk.Viewport) {
	vkgo.CmdSetViewport(cmd(commandBuffer), firstViewport, uint32(len(vs)), viewports(vs))
}

func (deviceTable) CmdSetScissor(commandBuffer vk.CommandBuffer, firstScissor uint32, scissors []vk.Rect2D) {
	vkgo.CmdSetScissor(cmd(commandBuffer), firstScissor, uint32(len(scissors)), rects(scissors))
}

func (deviceTable) CmdDraw(commandBuffer vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	vkgo.CmdDraw(cmd(commandBuffer), vertexCount, instanceCount, firstVertex, firstInstance)
}

func (deviceTable) CmdDrawIndexed(commandBuffer vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	vkgo.CmdDrawIndexed(cmd(commandBuffer), indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func (deviceTable) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo, swapchain *vk.Swapchain) vk.Result {
	var s vkgo.Swapchain
	r := vkgo.CreateSwapchain(dev(device), swapchainCreateInfo(info), nil, &s)
	*swapchain = handle[vk.Swapchain](s)
	return vk.Result(r)
}

func (deviceTable) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	vkgo.DestroySwapchain(dev(device), handle[vkgo.Swapchain](swapchain), nil)
}

func (deviceTable) GetSwapchainImages(device vk.Device, swapchain vk.Swapchain, count *uint32, images []vk.Image) vk.Result {
	if images != nil {
		*count = min(*count, uint32(len(images)))
	}
	return vk.Result(vkgo.GetSwapchainImages(dev(device), handle[vkgo.Swapchain](swapchain), count, handles[vkgo.Image](images)))
}

func (deviceTable) AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence, index *uint32) vk.Result {
	return vk.Result(vkgo.AcquireNextImage(dev(device), handle[vkgo.Swapchain](swapchain), timeout,
		handle[vkgo.Semaphore](semaphore), handle[vkgo.Fence](fence), index))
}
