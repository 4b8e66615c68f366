package vkgl

import (
	"github.com/celer/vkgl/vk"
)

// CommandBuffers describe a sequence of commands that will be executed
// upon being sent to a device queue. Not all available vulkan commands
// are wrapped by this package; the dispatch table is reachable through
// Device().Commands for the rest.
type CommandBuffer struct {
	CommandPool     *CommandPool
	VKCommandBuffer vk.CommandBuffer
}

// Device returns the device the buffer's pool belongs to.
func (c *CommandBuffer) Device() *Device {
	return c.CommandPool.Device
}

func (c *CommandBuffer) commands() vk.DeviceCommands {
	return c.CommandPool.Device.Commands
}

// ResetAndRelease will reset this commandbuffer and release the associated resources
func (c *CommandBuffer) ResetAndRelease() error {
	return vk.Error(c.commands().ResetCommandBuffer(c.VKCommandBuffer, vk.CommandBufferResetReleaseResourcesBit))
}

// Reset this command buffer
func (c *CommandBuffer) Reset() error {
	return vk.Error(c.commands().ResetCommandBuffer(c.VKCommandBuffer, 0))
}

// Begin capturing work for this command buffer
func (c *CommandBuffer) Begin() error {
	return vk.Error(c.commands().BeginCommandBuffer(c.VKCommandBuffer, &vk.CommandBufferBeginInfo{}))
}

// BeginOneTime begins capturing work for this command buffer, with the stipulation that it will only be submitted once
func (c *CommandBuffer) BeginOneTime() error {
	return vk.Error(c.commands().BeginCommandBuffer(c.VKCommandBuffer, &vk.CommandBufferBeginInfo{
		Flags: vk.CommandBufferUsageOneTimeSubmitBit,
	}))
}

// BeginContinueRenderPass begins a secondary command buffer that is
// executed inside renderPass on framebuffer.
func (c *CommandBuffer) BeginContinueRenderPass(renderPass *RenderPass, framebuffer *Framebuffer) error {
	return vk.Error(c.commands().BeginCommandBuffer(c.VKCommandBuffer, &vk.CommandBufferBeginInfo{
		Flags: vk.CommandBufferUsageRenderPassContinueBit,
		Inheritance: &vk.CommandBufferInheritanceInfo{
			RenderPass:  renderPass.VKRenderPass,
			Framebuffer: framebuffer.VKFramebuffer,
		},
	}))
}

// End describing work for this command buffer
func (c *CommandBuffer) End() error {
	return vk.Error(c.commands().EndCommandBuffer(c.VKCommandBuffer))
}

func (c *CommandBuffer) CmdBindComputePipeline(p *ComputePipeline) {
	c.commands().CmdBindPipeline(c.VKCommandBuffer, vk.PipelineBindPointCompute, p.VKPipeline)
}

func (c *CommandBuffer) CmdBindGraphicsPipeline(p *GraphicsPipeline) {
	c.commands().CmdBindPipeline(c.VKCommandBuffer, vk.PipelineBindPointGraphics, p.VKPipeline)
}

// CmdBeginRenderPass starts renderPass over the whole of framebuffer with
// inline contents. clearValues are given in attachment order.
func (c *CommandBuffer) CmdBeginRenderPass(renderPass *RenderPass, framebuffer *Framebuffer, clearValues ...vk.ClearValue) {
	c.CmdBeginRenderPassWithContents(renderPass, framebuffer, vk.SubpassContentsInline, clearValues...)
}

func (c *CommandBuffer) CmdBeginRenderPassWithContents(renderPass *RenderPass, framebuffer *Framebuffer, contents vk.SubpassContents, clearValues ...vk.ClearValue) {
	c.commands().CmdBeginRenderPass(c.VKCommandBuffer, &vk.RenderPassBeginInfo{
		RenderPass:  renderPass.VKRenderPass,
		Framebuffer: framebuffer.VKFramebuffer,
		RenderArea:  framebuffer.RenderArea(),
		ClearValues: clearValues,
	}, contents)
}

func (c *CommandBuffer) CmdEndRenderPass() {
	c.commands().CmdEndRenderPass(c.VKCommandBuffer)
}

// CmdBindVertexBuffers binds buffers to consecutive bindings from
// firstBinding, each read from its start.
func (c *CommandBuffer) CmdBindVertexBuffers(firstBinding int, buffers ...*Buffer) {
	handles := make([]vk.Buffer, len(buffers))
	offsets := make([]vk.DeviceSize, len(buffers))
	for i, b := range buffers {
		handles[i] = b.VKBuffer
	}
	c.commands().CmdBindVertexBuffers(c.VKCommandBuffer, uint32(firstBinding), handles, offsets)
}

func (c *CommandBuffer) CmdBindIndexBuffer(b *Buffer, offset uint64, indexType vk.IndexType) {
	c.commands().CmdBindIndexBuffer(c.VKCommandBuffer, b.VKBuffer, vk.DeviceSize(offset), indexType)
}

func (c *CommandBuffer) CmdSetViewport(viewports ...vk.Viewport) {
	c.commands().CmdSetViewport(c.VKCommandBuffer, 0, viewports)
}

func (c *CommandBuffer) CmdSetScissor(scissors ...vk.Rect2D) {
	c.commands().CmdSetScissor(c.VKCommandBuffer, 0, scissors)
}

func (c *CommandBuffer) CmdDraw(vertexCount, instanceCount, firstVertex, firstInstance int) {
	c.commands().CmdDraw(c.VKCommandBuffer, uint32(vertexCount), uint32(instanceCount), uint32(firstVertex), uint32(firstInstance))
}

func (c *CommandBuffer) CmdDrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance int) {
	c.commands().CmdDrawIndexed(c.VKCommandBuffer, uint32(indexCount), uint32(instanceCount), uint32(firstIndex), int32(vertexOffset), uint32(firstInstance))
}

func (c *CommandBuffer) CmdBindDescriptorSets(bindPoint vk.PipelineBindPoint, layout *PipelineLayout, firstSet int, descriptorSets ...*DescriptorSet) {
	sets := make([]vk.DescriptorSet, len(descriptorSets))
	for i := range descriptorSets {
		sets[i] = descriptorSets[i].VKDescriptorSet
	}
	c.commands().CmdBindDescriptorSets(c.VKCommandBuffer, bindPoint, layout.VKPipelineLayout, uint32(firstSet), sets, nil)
}

func (c *CommandBuffer) CmdPushConstants(layout *PipelineLayout, stages vk.ShaderStageFlags, offset int, data []byte) {
	c.commands().CmdPushConstants(c.VKCommandBuffer, layout.VKPipelineLayout, stages, uint32(offset), data)
}

func (c *CommandBuffer) CmdDispatch(x, y, z int) {
	c.commands().CmdDispatch(c.VKCommandBuffer, uint32(x), uint32(y), uint32(z))
}

// CmdCopyBuffer copies regions of src into dst. With no regions the whole
// of src is copied to the start of dst.
func (c *CommandBuffer) CmdCopyBuffer(src, dst *Buffer, regions ...vk.BufferCopy) {
	if len(regions) == 0 {
		regions = []vk.BufferCopy{{Size: vk.DeviceSize(min(src.Size, dst.Size))}}
	}
	c.commands().CmdCopyBuffer(c.VKCommandBuffer, src.VKBuffer, dst.VKBuffer, regions)
}

// CmdFillBuffer fills size bytes of dst from offset with the repeated 32-bit value.
func (c *CommandBuffer) CmdFillBuffer(dst *Buffer, offset, size uint64, value uint32) {
	c.commands().CmdFillBuffer(c.VKCommandBuffer, dst.VKBuffer, vk.DeviceSize(offset), vk.DeviceSize(size), value)
}

func (c *CommandBuffer) CmdPipelineBarrier(srcStage, dstStage vk.PipelineStageFlags, dependency vk.DependencyFlags,
	memoryBarriers []vk.MemoryBarrier, bufferBarriers []vk.BufferMemoryBarrier, imageBarriers []vk.ImageMemoryBarrier) {
	c.commands().CmdPipelineBarrier(c.VKCommandBuffer, srcStage, dstStage, dependency, memoryBarriers, bufferBarriers, imageBarriers)
}

func (c *CommandBuffer) CmdCopyBufferToImage(src *Buffer, dst *Image, layout vk.ImageLayout, regions ...vk.BufferImageCopy) {
	if len(regions) == 0 {
		regions = []vk.BufferImageCopy{wholeImageCopy(dst)}
	}
	c.commands().CmdCopyBufferToImage(c.VKCommandBuffer, src.VKBuffer, dst.VKImage, layout, regions)
}

func (c *CommandBuffer) CmdCopyImageToBuffer(src *Image, layout vk.ImageLayout, dst *Buffer, regions ...vk.BufferImageCopy) {
	if len(regions) == 0 {
		regions = []vk.BufferImageCopy{wholeImageCopy(src)}
	}
	c.commands().CmdCopyImageToBuffer(c.VKCommandBuffer, src.VKImage, layout, dst.VKBuffer, regions)
}

func wholeImageCopy(i *Image) vk.BufferImageCopy {
	extent := i.Extent
	if extent.Depth == 0 {
		extent.Depth = 1
	}
	return vk.BufferImageCopy{
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask: vk.ImageAspectColorBit,
			LayerCount: 1,
		},
		ImageExtent: extent,
	}
}

// TransitionImageLayout records a barrier moving the color image between
// layouts. The access masks and stages are chosen for the common upload
// and readback transitions; other transitions wait on all commands.
func (c *CommandBuffer) TransitionImageLayout(image *Image, oldLayout, newLayout vk.ImageLayout) {
	barrier := vk.ImageMemoryBarrier{
		OldLayout:           oldLayout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               image.VKImage,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectColorBit,
			LevelCount: 1,
			LayerCount: 1,
		},
	}

	sourceStage := vk.PipelineStageAllCommandsBit
	destStage := vk.PipelineStageAllCommandsBit

	switch {
	case oldLayout == vk.ImageLayoutUndefined && newLayout == vk.ImageLayoutTransferDstOptimal:
		barrier.DstAccessMask = vk.AccessTransferWriteBit
		sourceStage = vk.PipelineStageTopOfPipeBit
		destStage = vk.PipelineStageTransferBit
	case oldLayout == vk.ImageLayoutTransferDstOptimal && newLayout == vk.ImageLayoutShaderReadOnlyOptimal:
		barrier.SrcAccessMask = vk.AccessTransferWriteBit
		barrier.DstAccessMask = vk.AccessShaderReadBit
		sourceStage = vk.PipelineStageTransferBit
		destStage = vk.PipelineStageFragmentShaderBit | vk.PipelineStageComputeShaderBit
	case oldLayout == vk.ImageLayoutUndefined && newLayout == vk.ImageLayoutGeneral:
		barrier.DstAccessMask = vk.AccessShaderReadBit | vk.AccessShaderWriteBit
		sourceStage = vk.PipelineStageTopOfPipeBit
		destStage = vk.PipelineStageComputeShaderBit
	case oldLayout == vk.ImageLayoutGeneral && newLayout == vk.ImageLayoutTransferSrcOptimal:
		barrier.SrcAccessMask = vk.AccessShaderWriteBit
		barrier.DstAccessMask = vk.AccessTransferReadBit
		sourceStage = vk.PipelineStageComputeShaderBit
		destStage = vk.PipelineStageTransferBit
	default:
		barrier.SrcAccessMask = vk.AccessMemoryWriteBit
		barrier.DstAccessMask = vk.AccessMemoryReadBit | vk.AccessMemoryWriteBit
	}

	c.CmdPipelineBarrier(sourceStage, destStage, 0, nil, nil, []vk.ImageMemoryBarrier{barrier})
}

// Destroy frees the command buffer back to its pool.
func (c *CommandBuffer) Destroy() {
	c.CommandPool.FreeBuffer(c)
}
