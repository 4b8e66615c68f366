//go:build cgo

package vkgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vkgo "github.com/vulkan-go/vulkan"

	"github.com/celer/vkgl/vk"
)

func TestCString(t *testing.T) {
	assert.Equal(t, "VK_LAYER_KHRONOS_validation\x00", cString("VK_LAYER_KHRONOS_validation"))
	assert.Equal(t, "done\x00", cString("done\x00"))
	assert.Equal(t, "", optionalString(""))
	assert.Equal(t, []string{"a\x00", "b\x00"}, cStrings([]string{"a", "b"}))
	assert.Nil(t, cStrings(nil))
}

func TestHandleRoundTrip(t *testing.T) {
	b := vk.Buffer(0x10)
	assert.Equal(t, b, handle[vk.Buffer](handle[vkgo.Buffer](b)))

	fences := []vk.Fence{0x18, 0x20}
	c := handles[vkgo.Fence](fences)
	require.Len(t, c, 2)
	assert.Equal(t, fences, handles[vk.Fence](c))
	assert.Nil(t, handles[vkgo.Fence]([]vk.Fence(nil)))
}

func TestWriteDescriptorSetsConversion(t *testing.T) {
	writes := []vk.WriteDescriptorSet{
		{
			DstBinding:     1,
			DescriptorType: vk.DescriptorTypeStorageBuffer,
			BufferInfo:     []vk.DescriptorBufferInfo{{Offset: 16, Range: 256}},
		},
		{
			DstBinding:     2,
			DescriptorType: vk.DescriptorTypeCombinedImageSampler,
			ImageInfo:      []vk.DescriptorImageInfo{{ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal}},
		},
	}
	c := writeDescriptorSets(writes)
	require.Len(t, c, 2)

	assert.Equal(t, uint32(1), c[0].DstBinding)
	assert.Equal(t, uint32(1), c[0].DescriptorCount)
	require.Len(t, c[0].PBufferInfo, 1)
	assert.Equal(t, vkgo.DeviceSize(256), c[0].PBufferInfo[0].Range)
	assert.Nil(t, c[0].PImageInfo)

	require.Len(t, c[1].PImageInfo, 1)
	assert.Equal(t, vkgo.ImageLayout(vk.ImageLayoutShaderReadOnlyOptimal), c[1].PImageInfo[0].ImageLayout)
	assert.Nil(t, c[1].PBufferInfo)
}

func TestBool32(t *testing.T) {
	assert.Equal(t, vkgo.Bool32(vkgo.True), bool32(true))
	assert.Equal(t, vkgo.Bool32(vkgo.False), bool32(false))
}

func TestHandleSizeMismatch(t *testing.T) {
	assert.Panics(t, func() { handle[uint32](vk.Buffer(1)) })
	assert.Panics(t, func() { handles[uint16]([]vk.Fence{1}) })
	assert.NotPanics(t, func() { handle[vkgo.RenderPass](vk.RenderPass(2)) })
}

func TestGraphicsPipelineConversion(t *testing.T) {
	c := graphicsPipelineCreateInfos([]vk.GraphicsPipelineCreateInfo{{
		Stages: []vk.PipelineShaderStageCreateInfo{
			{Stage: vk.ShaderStageVertexBit, Name: "main"},
			{Stage: vk.ShaderStageFragmentBit, Name: "main"},
		},
		VertexInputState: &vk.PipelineVertexInputStateCreateInfo{
			VertexBindingDescriptions:   []vk.VertexInputBindingDescription{{Stride: 24}},
			VertexAttributeDescriptions: []vk.VertexInputAttributeDescription{{Location: 1, Format: vk.FormatR32g32b32Sfloat, Offset: 12}},
		},
		RasterizationState: &vk.PipelineRasterizationStateCreateInfo{CullMode: vk.CullModeBackBit, LineWidth: 1},
		DepthStencilState:  &vk.PipelineDepthStencilStateCreateInfo{DepthTestEnable: true, DepthCompareOp: vk.CompareOpLess},
		ColorBlendState: &vk.PipelineColorBlendStateCreateInfo{
			Attachments: []vk.PipelineColorBlendAttachmentState{{ColorWriteMask: 0xf}},
		},
		Subpass: 1,
	}})
	require.Len(t, c, 1)
	g := c[0]
	assert.Equal(t, uint32(2), g.StageCount)
	assert.Equal(t, "main\x00", g.PStages[1].PName)
	require.NotNil(t, g.PVertexInputState)
	assert.Equal(t, uint32(24), g.PVertexInputState.PVertexBindingDescriptions[0].Stride)
	assert.Equal(t, vkgo.Format(vk.FormatR32g32b32Sfloat), g.PVertexInputState.PVertexAttributeDescriptions[0].Format)
	assert.Equal(t, vkgo.CullModeFlags(vk.CullModeBackBit), g.PRasterizationState.CullMode)
	assert.Equal(t, vkgo.Bool32(vkgo.True), g.PDepthStencilState.DepthTestEnable)
	assert.Equal(t, uint32(1), g.PColorBlendState.AttachmentCount)
	assert.Nil(t, g.PViewportState)
	assert.Nil(t, g.PDynamicState)
	assert.Equal(t, uint32(1), g.Subpass)
}

func TestRenderPassConversion(t *testing.T) {
	depth := vk.AttachmentReference{Attachment: 1, Layout: vk.ImageLayoutDepthStencilAttachmentOptimal}
	c := renderPassCreateInfo(&vk.RenderPassCreateInfo{
		Attachments: []vk.AttachmentDescription{{Format: vk.FormatB8g8r8a8Unorm}, {Format: vk.FormatD32Sfloat}},
		Subpasses: []vk.SubpassDescription{{
			ColorAttachments:       []vk.AttachmentReference{{Layout: vk.ImageLayoutColorAttachmentOptimal}},
			DepthStencilAttachment: &depth,
		}},
		Dependencies: []vk.SubpassDependency{{SrcSubpass: vk.SubpassExternal}},
	})
	assert.Equal(t, uint32(2), c.AttachmentCount)
	require.Len(t, c.PSubpasses, 1)
	assert.Equal(t, uint32(1), c.PSubpasses[0].ColorAttachmentCount)
	assert.Nil(t, c.PSubpasses[0].PInputAttachments)
	require.NotNil(t, c.PSubpasses[0].PDepthStencilAttachment)
	assert.Equal(t, uint32(1), c.PSubpasses[0].PDepthStencilAttachment.Attachment)
	assert.Equal(t, vk.SubpassExternal, c.PDependencies[0].SrcSubpass)
}

func TestCommandBufferBeginInheritance(t *testing.T) {
	c := commandBufferBeginInfo(&vk.CommandBufferBeginInfo{Flags: vk.CommandBufferUsageOneTimeSubmitBit})
	assert.Nil(t, c.PInheritanceInfo)

	c = commandBufferBeginInfo(&vk.CommandBufferBeginInfo{
		Flags:       vk.CommandBufferUsageRenderPassContinueBit,
		Inheritance: &vk.CommandBufferInheritanceInfo{RenderPass: 3, Framebuffer: 4},
	})
	require.Len(t, c.PInheritanceInfo, 1)
	assert.Equal(t, vk.RenderPass(3), handle[vk.RenderPass](c.PInheritanceInfo[0].RenderPass))
	assert.Equal(t, vk.Framebuffer(4), handle[vk.Framebuffer](c.PInheritanceInfo[0].Framebuffer))
}
