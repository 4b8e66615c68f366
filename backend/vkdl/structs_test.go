package vkdl

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
)

func TestStructSizes(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layouts are checked against 64-bit headers")
	}
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"VkApplicationInfo", unsafe.Sizeof(cApplicationInfo{}), 48},
		{"VkInstanceCreateInfo", unsafe.Sizeof(cInstanceCreateInfo{}), 64},
		{"VkLayerProperties", unsafe.Sizeof(cLayerProperties{}), 520},
		{"VkExtensionProperties", unsafe.Sizeof(cExtensionProperties{}), 260},
		{"VkPhysicalDeviceProperties", unsafe.Sizeof(cPhysicalDeviceProperties{}), 824},
		{"VkPhysicalDeviceMemoryProperties", unsafe.Sizeof(cPhysicalDeviceMemoryProperties{}), 520},
		{"VkDeviceQueueCreateInfo", unsafe.Sizeof(cDeviceQueueCreateInfo{}), 40},
		{"VkDeviceCreateInfo", unsafe.Sizeof(cDeviceCreateInfo{}), 72},
		{"VkSubmitInfo", unsafe.Sizeof(cSubmitInfo{}), 72},
		{"VkMemoryAllocateInfo", unsafe.Sizeof(cMemoryAllocateInfo{}), 32},
		{"VkMappedMemoryRange", unsafe.Sizeof(cMappedMemoryRange{}), 40},
		{"VkBufferCreateInfo", unsafe.Sizeof(cBufferCreateInfo{}), 56},
		{"VkImageCreateInfo", unsafe.Sizeof(cImageCreateInfo{}), 88},
		{"VkImageViewCreateInfo", unsafe.Sizeof(cImageViewCreateInfo{}), 80},
		{"VkSamplerCreateInfo", unsafe.Sizeof(cSamplerCreateInfo{}), 80},
		{"VkShaderModuleCreateInfo", unsafe.Sizeof(cShaderModuleCreateInfo{}), 40},
		{"VkPipelineCacheCreateInfo", unsafe.Sizeof(cPipelineCacheCreateInfo{}), 40},
		{"VkPipelineLayoutCreateInfo", unsafe.Sizeof(cPipelineLayoutCreateInfo{}), 48},
		{"VkPipelineShaderStageCreateInfo", unsafe.Sizeof(cPipelineShaderStageCreateInfo{}), 48},
		{"VkComputePipelineCreateInfo", unsafe.Sizeof(cComputePipelineCreateInfo{}), 96},
		{"VkDescriptorSetLayoutBinding", unsafe.Sizeof(cDescriptorSetLayoutBinding{}), 24},
		{"VkDescriptorSetLayoutCreateInfo", unsafe.Sizeof(cDescriptorSetLayoutCreateInfo{}), 32},
		{"VkDescriptorPoolCreateInfo", unsafe.Sizeof(cDescriptorPoolCreateInfo{}), 40},
		{"VkDescriptorSetAllocateInfo", unsafe.Sizeof(cDescriptorSetAllocateInfo{}), 40},
		{"VkWriteDescriptorSet", unsafe.Sizeof(cWriteDescriptorSet{}), 64},
		{"VkFenceCreateInfo", unsafe.Sizeof(cFlagsCreateInfo{}), 24},
		{"VkCommandPoolCreateInfo", unsafe.Sizeof(cCommandPoolCreateInfo{}), 24},
		{"VkCommandBufferAllocateInfo", unsafe.Sizeof(cCommandBufferAllocateInfo{}), 32},
		{"VkCommandBufferBeginInfo", unsafe.Sizeof(cCommandBufferBeginInfo{}), 32},
		{"VkMemoryBarrier", unsafe.Sizeof(cMemoryBarrier{}), 24},
		{"VkBufferMemoryBarrier", unsafe.Sizeof(cBufferMemoryBarrier{}), 56},
		{"VkImageMemoryBarrier", unsafe.Sizeof(cImageMemoryBarrier{}), 72},
		{"VkSwapchainCreateInfoKHR", unsafe.Sizeof(cSwapchainCreateInfo{}), 104},
		{"VkPresentInfoKHR", unsafe.Sizeof(cPresentInfo{}), 64},
		{"VkDebugReportCallbackCreateInfoEXT", unsafe.Sizeof(cDebugReportCallbackCreateInfo{}), 40},
		{"VkCommandBufferInheritanceInfo", unsafe.Sizeof(cCommandBufferInheritanceInfo{}), 56},
		{"VkSubpassDescription", unsafe.Sizeof(cSubpassDescription{}), 72},
		{"VkRenderPassCreateInfo", unsafe.Sizeof(cRenderPassCreateInfo{}), 64},
		{"VkFramebufferCreateInfo", unsafe.Sizeof(cFramebufferCreateInfo{}), 64},
		{"VkRenderPassBeginInfo", unsafe.Sizeof(cRenderPassBeginInfo{}), 64},
		{"VkPipelineVertexInputStateCreateInfo", unsafe.Sizeof(cPipelineVertexInputStateCreateInfo{}), 48},
		{"VkPipelineInputAssemblyStateCreateInfo", unsafe.Sizeof(cPipelineInputAssemblyStateCreateInfo{}), 32},
		{"VkPipelineViewportStateCreateInfo", unsafe.Sizeof(cPipelineViewportStateCreateInfo{}), 48},
		{"VkPipelineRasterizationStateCreateInfo", unsafe.Sizeof(cPipelineRasterizationStateCreateInfo{}), 64},
		{"VkPipelineMultisampleStateCreateInfo", unsafe.Sizeof(cPipelineMultisampleStateCreateInfo{}), 48},
		{"VkPipelineDepthStencilStateCreateInfo", unsafe.Sizeof(cPipelineDepthStencilStateCreateInfo{}), 104},
		{"VkPipelineColorBlendAttachmentState", unsafe.Sizeof(cPipelineColorBlendAttachmentState{}), 32},
		{"VkPipelineColorBlendStateCreateInfo", unsafe.Sizeof(cPipelineColorBlendStateCreateInfo{}), 56},
		{"VkPipelineDynamicStateCreateInfo", unsafe.Sizeof(cPipelineDynamicStateCreateInfo{}), 32},
		{"VkGraphicsPipelineCreateInfo", unsafe.Sizeof(cGraphicsPipelineCreateInfo{}), 144},

		// passed to the driver without conversion
		{"VkQueueFamilyProperties", unsafe.Sizeof(vk.QueueFamilyProperties{}), 24},
		{"VkFormatProperties", unsafe.Sizeof(vk.FormatProperties{}), 12},
		{"VkMemoryRequirements", unsafe.Sizeof(vk.MemoryRequirements{}), 24},
		{"VkPushConstantRange", unsafe.Sizeof(vk.PushConstantRange{}), 12},
		{"VkDescriptorPoolSize", unsafe.Sizeof(vk.DescriptorPoolSize{}), 8},
		{"VkDescriptorBufferInfo", unsafe.Sizeof(vk.DescriptorBufferInfo{}), 24},
		{"VkDescriptorImageInfo", unsafe.Sizeof(vk.DescriptorImageInfo{}), 24},
		{"VkBufferCopy", unsafe.Sizeof(vk.BufferCopy{}), 24},
		{"VkBufferImageCopy", unsafe.Sizeof(vk.BufferImageCopy{}), 56},
		{"VkSurfaceCapabilitiesKHR", unsafe.Sizeof(vk.SurfaceCapabilities{}), 52},
		{"VkSurfaceFormatKHR", unsafe.Sizeof(vk.SurfaceFormat{}), 8},
		{"VkAttachmentDescription", unsafe.Sizeof(vk.AttachmentDescription{}), 36},
		{"VkAttachmentReference", unsafe.Sizeof(vk.AttachmentReference{}), 8},
		{"VkSubpassDependency", unsafe.Sizeof(vk.SubpassDependency{}), 28},
		{"VkClearValue", unsafe.Sizeof(vk.ClearValue{}), 16},
		{"VkViewport", unsafe.Sizeof(vk.Viewport{}), 24},
		{"VkRect2D", unsafe.Sizeof(vk.Rect2D{}), 16},
		{"VkVertexInputBindingDescription", unsafe.Sizeof(vk.VertexInputBindingDescription{}), 12},
		{"VkVertexInputAttributeDescription", unsafe.Sizeof(vk.VertexInputAttributeDescription{}), 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}

func TestStructOffsets(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layouts are checked against 64-bit headers")
	}
	assert.EqualValues(t, 24, unsafe.Offsetof(cBufferCreateInfo{}.size))
	assert.EqualValues(t, 264, unsafe.Offsetof(cPhysicalDeviceMemoryProperties{}.memoryHeaps))
	assert.EqualValues(t, 296, unsafe.Offsetof(cPhysicalDeviceProperties{}.limits))
	assert.EqualValues(t, 24, unsafe.Offsetof(cComputePipelineCreateInfo{}.stage))
	assert.EqualValues(t, 72, unsafe.Offsetof(cComputePipelineCreateInfo{}.layout))
	assert.EqualValues(t, 88, unsafe.Offsetof(cComputePipelineCreateInfo{}.basePipelineIndex))
	assert.EqualValues(t, 40, unsafe.Offsetof(cWriteDescriptorSet{}.pImageInfo))
	assert.EqualValues(t, 48, unsafe.Offsetof(cWriteDescriptorSet{}.pBufferInfo))
	assert.EqualValues(t, 40, unsafe.Offsetof(cImageViewCreateInfo{}.components))
	assert.EqualValues(t, 40, unsafe.Offsetof(cImageMemoryBarrier{}.image))
	assert.EqualValues(t, 96, unsafe.Offsetof(cSwapchainCreateInfo{}.oldSwapchain))
	assert.EqualValues(t, 16, unsafe.Offsetof(vk.BufferImageCopy{}.ImageSubresource))
	assert.EqualValues(t, 44, unsafe.Offsetof(vk.BufferImageCopy{}.ImageExtent))
	assert.EqualValues(t, 32, unsafe.Offsetof(cCommandBufferInheritanceInfo{}.framebuffer))
	assert.EqualValues(t, 48, unsafe.Offsetof(cSubpassDescription{}.pDepthStencilAttachment))
	assert.EqualValues(t, 32, unsafe.Offsetof(cRenderPassBeginInfo{}.renderArea))
	assert.EqualValues(t, 56, unsafe.Offsetof(cRenderPassBeginInfo{}.pClearValues))
	assert.EqualValues(t, 40, unsafe.Offsetof(cPipelineDepthStencilStateCreateInfo{}.front))
	assert.EqualValues(t, 32, unsafe.Offsetof(cPipelineMultisampleStateCreateInfo{}.pSampleMask))
	assert.EqualValues(t, 40, unsafe.Offsetof(cPipelineColorBlendStateCreateInfo{}.blendConstants))
	assert.EqualValues(t, 104, unsafe.Offsetof(cGraphicsPipelineCreateInfo{}.layout))
	assert.EqualValues(t, 136, unsafe.Offsetof(cGraphicsPipelineCreateInfo{}.basePipelineIndex))
}

// readStrings decodes a const char* const* array.
func readStrings(p uintptr, n int) []string {
	if p == 0 {
		return nil
	}
	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(p)), n)
	out := make([]string, n)
	for i, s := range ptrs {
		out[i] = cGoString(s)
	}
	return out
}

func TestInstanceCreateInfo(t *testing.T) {
	var a arena
	defer a.free()
	c := a.instanceCreateInfo(&vk.InstanceCreateInfo{
		ApplicationInfo: &vk.ApplicationInfo{
			ApplicationName: "compute",
			APIVersion:      vk.APIVersion12,
		},
		EnabledLayerNames:     []string{"VK_LAYER_KHRONOS_validation"},
		EnabledExtensionNames: []string{"VK_KHR_surface", "VK_EXT_debug_report"},
	})
	assert.Equal(t, structureTypeInstanceCreateInfo, c.sType)
	assert.EqualValues(t, 1, c.enabledLayerCount)
	assert.EqualValues(t, 2, c.enabledExtensionCount)
	assert.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, readStrings(c.ppEnabledLayerNames, 1))
	assert.Equal(t, []string{"VK_KHR_surface", "VK_EXT_debug_report"}, readStrings(c.ppEnabledExtensionNames, 2))

	require.NotZero(t, c.pApplicationInfo)
	app := (*cApplicationInfo)(unsafe.Pointer(c.pApplicationInfo))
	assert.Equal(t, structureTypeApplicationInfo, app.sType)
	assert.Equal(t, "compute", cGoString(app.pApplicationName))
	assert.Zero(t, app.pEngineName)
	assert.Equal(t, uint32(vk.APIVersion12), app.apiVersion)
}

func TestEmptyInstanceCreateInfo(t *testing.T) {
	var a arena
	defer a.free()
	c := a.instanceCreateInfo(&vk.InstanceCreateInfo{})
	assert.Zero(t, c.pApplicationInfo)
	assert.Zero(t, c.ppEnabledLayerNames)
	assert.Zero(t, c.ppEnabledExtensionNames)
}

func TestDeviceCreateInfo(t *testing.T) {
	var a arena
	defer a.free()
	c := a.deviceCreateInfo(&vk.DeviceCreateInfo{
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{
			{QueueFamilyIndex: 0, QueuePriorities: []float32{1, 0.5}},
			{QueueFamilyIndex: 2, QueuePriorities: []float32{1}},
		},
	})
	require.EqualValues(t, 2, c.queueCreateInfoCount)
	queues := unsafe.Slice((*cDeviceQueueCreateInfo)(unsafe.Pointer(c.pQueueCreateInfos)), 2)
	assert.EqualValues(t, 2, queues[0].queueCount)
	assert.EqualValues(t, 2, queues[1].queueFamilyIndex)
	assert.Equal(t, []float32{1, 0.5}, unsafe.Slice((*float32)(unsafe.Pointer(queues[0].pQueuePriorities)), 2))
	assert.Zero(t, c.pEnabledFeatures)
}

func TestWriteDescriptorSets(t *testing.T) {
	var a arena
	defer a.free()
	writes := []vk.WriteDescriptorSet{
		{
			DstSet:         7,
			DstBinding:     1,
			DescriptorType: vk.DescriptorTypeStorageBuffer,
			BufferInfo:     []vk.DescriptorBufferInfo{{Buffer: 3, Range: vk.WholeSize}, {Buffer: 4, Range: 64}},
		},
		{
			DstSet:         7,
			DescriptorType: vk.DescriptorTypeCombinedImageSampler,
			ImageInfo:      []vk.DescriptorImageInfo{{Sampler: 5, ImageView: 6}},
		},
	}
	p := a.writeDescriptorSets(writes)
	c := unsafe.Slice((*cWriteDescriptorSet)(unsafe.Pointer(p)), 2)

	assert.Equal(t, structureTypeWriteDescriptorSet, c[0].sType)
	assert.EqualValues(t, 7, c[0].dstSet)
	assert.EqualValues(t, 2, c[0].descriptorCount)
	assert.Zero(t, c[0].pImageInfo)
	assert.Equal(t, uintptr(unsafe.Pointer(&writes[0].BufferInfo[0])), c[0].pBufferInfo)

	assert.EqualValues(t, 1, c[1].descriptorCount)
	assert.Zero(t, c[1].pBufferInfo)
	assert.Equal(t, uintptr(unsafe.Pointer(&writes[1].ImageInfo[0])), c[1].pImageInfo)
}

func TestComputePipelineCreateInfos(t *testing.T) {
	var a arena
	defer a.free()
	p := a.computePipelineCreateInfos([]vk.ComputePipelineCreateInfo{{
		Stage:             vk.PipelineShaderStageCreateInfo{Stage: vk.ShaderStageComputeBit, Module: 9, Name: "main"},
		Layout:            11,
		BasePipelineIndex: -1,
	}})
	c := (*cComputePipelineCreateInfo)(unsafe.Pointer(p))
	assert.Equal(t, structureTypeComputePipelineCreateInfo, c.sType)
	assert.Equal(t, structureTypePipelineShaderStageCreateInfo, c.stage.sType)
	assert.EqualValues(t, 9, c.stage.module)
	assert.Equal(t, "main", cGoString(c.stage.pName))
	assert.EqualValues(t, 11, c.layout)
	assert.EqualValues(t, -1, c.basePipelineIndex)
}

func TestBarriers(t *testing.T) {
	var a arena
	defer a.free()
	m, b, i := a.barriers(nil, []vk.BufferMemoryBarrier{{Buffer: 2, Size: vk.WholeSize}}, []vk.ImageMemoryBarrier{{
		OldLayout: vk.ImageLayoutUndefined,
		NewLayout: vk.ImageLayoutGeneral,
		Image:     3,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectColorBit,
			LevelCount: 1,
			LayerCount: 1,
		},
	}})
	assert.Zero(t, m)
	buffer := (*cBufferMemoryBarrier)(unsafe.Pointer(b))
	assert.Equal(t, structureTypeBufferMemoryBarrier, buffer.sType)
	assert.Equal(t, uint64(vk.WholeSize), buffer.size)
	image := (*cImageMemoryBarrier)(unsafe.Pointer(i))
	assert.Equal(t, int32(vk.ImageLayoutGeneral), image.newLayout)
	assert.Equal(t, [5]uint32{uint32(vk.ImageAspectColorBit), 0, 1, 0, 1}, image.subresourceRange)
}

func TestSamplerCreateInfo(t *testing.T) {
	c := samplerCreateInfo(&vk.SamplerCreateInfo{
		MagFilter:        vk.FilterLinear,
		AnisotropyEnable: true,
		MaxAnisotropy:    16,
		MaxLod:           1,
	})
	assert.Equal(t, structureTypeSamplerCreateInfo, c.sType)
	assert.EqualValues(t, 1, c.anisotropyEnable)
	assert.Zero(t, c.compareEnable)
	assert.Equal(t, float32(16), c.maxAnisotropy)
}

func TestPropertiesDecode(t *testing.T) {
	var p cPhysicalDeviceProperties
	p.apiVersion = uint32(vk.MakeVersion(1, 3, 250))
	p.deviceType = int32(vk.PhysicalDeviceTypeDiscreteGpu)
	copy(p.deviceName[:], "Test GPU")
	props := physicalDeviceProperties(&p)
	assert.Equal(t, "Test GPU", props.DeviceName)
	assert.Equal(t, "1.3.250", props.APIVersion.String())
	assert.Equal(t, vk.PhysicalDeviceTypeDiscreteGpu, props.DeviceType)

	var m cPhysicalDeviceMemoryProperties
	m.memoryTypeCount = 2
	m.memoryTypes[1] = cMemoryType{propertyFlags: uint32(vk.MemoryPropertyHostVisibleBit), heapIndex: 1}
	m.memoryHeapCount = 1
	m.memoryHeaps[0] = cMemoryHeap{size: 1 << 30, flags: uint32(vk.MemoryHeapDeviceLocalBit)}
	mem := memoryProperties(&m)
	require.Len(t, mem.MemoryTypes, 2)
	assert.Equal(t, vk.MemoryPropertyHostVisibleBit, mem.MemoryTypes[1].PropertyFlags)
	assert.EqualValues(t, 1, mem.MemoryTypes[1].HeapIndex)
	require.Len(t, mem.MemoryHeaps, 1)
	assert.Equal(t, vk.DeviceSize(1<<30), mem.MemoryHeaps[0].Size)
}

func TestCGoString(t *testing.T) {
	b := []byte("layer\x00ignored")
	assert.Equal(t, "layer", cGoString(uintptr(unsafe.Pointer(&b[0]))))
	assert.Equal(t, "", cGoString(0))
	runtime.KeepAlive(b)
}

func TestResolver(t *testing.T) {
	r := &resolver{proc: func(string) uintptr { return 0 }}
	var f func() vk.Result
	assert.False(t, r.optional(&f, "vkQueuePresentKHR"))
	assert.NoError(t, r.err())

	r.bind(&f, "vkCreateDevice")
	r.bind(&f, "vkDestroyDevice")
	err := r.err()
	assert.ErrorIs(t, err, ErrMissingCommand)
	assert.ErrorContains(t, err, "vkCreateDevice, vkDestroyDevice")
	assert.Nil(t, f)
}

func TestNewRejectsNullProcAddr(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrMissingCommand)
}

func TestDebugReportDispatch(t *testing.T) {
	var got []string
	id := callbacks.add(func(flags vk.DebugReportFlags, _ vk.DebugReportObjectType, object uint64, _ uint, code int32, prefix, message string) bool {
		assert.Equal(t, vk.DebugReportErrorBit, flags)
		assert.EqualValues(t, 42, object)
		assert.EqualValues(t, 5, code)
		got = append(got, prefix+": "+message)
		return true
	})
	callbacks.bind(vk.DebugReportCallback(100), id)

	prefix := []byte("Validation\x00")
	message := []byte("bad thing\x00")
	abort := debugReport(uintptr(vk.DebugReportErrorBit), 0, 42, 0, 5,
		uintptr(unsafe.Pointer(&prefix[0])), uintptr(unsafe.Pointer(&message[0])), id)
	runtime.KeepAlive(prefix)
	runtime.KeepAlive(message)
	assert.EqualValues(t, 1, abort)
	assert.Equal(t, []string{"Validation: bad thing"}, got)

	callbacks.release(vk.DebugReportCallback(100))
	assert.Nil(t, callbacks.lookup(id))
	assert.Zero(t, debugReport(0, 0, 0, 0, 0, 0, 0, id))
}

func TestGraphicsPipelineCreateInfos(t *testing.T) {
	var a arena
	defer a.free()
	p := a.graphicsPipelineCreateInfos([]vk.GraphicsPipelineCreateInfo{{
		Stages: []vk.PipelineShaderStageCreateInfo{
			{Stage: vk.ShaderStageVertexBit, Module: 1, Name: "main"},
			{Stage: vk.ShaderStageFragmentBit, Module: 2, Name: "main"},
		},
		InputAssemblyState: &vk.PipelineInputAssemblyStateCreateInfo{Topology: vk.PrimitiveTopologyTriangleList},
		ViewportState: &vk.PipelineViewportStateCreateInfo{
			Viewports: []vk.Viewport{{Width: 640, Height: 480, MaxDepth: 1}},
			Scissors:  []vk.Rect2D{{Extent: vk.Extent2D{Width: 640, Height: 480}}},
		},
		DepthStencilState: &vk.PipelineDepthStencilStateCreateInfo{
			DepthTestEnable: true,
			DepthCompareOp:  vk.CompareOpLess,
			Back:            vk.StencilOpState{CompareOp: vk.CompareOpAlways, Reference: 7},
		},
		ColorBlendState: &vk.PipelineColorBlendStateCreateInfo{
			Attachments: []vk.PipelineColorBlendAttachmentState{{BlendEnable: true, ColorWriteMask: 0xf}},
		},
		Layout:            5,
		RenderPass:        6,
		BasePipelineIndex: -1,
	}})
	c := (*cGraphicsPipelineCreateInfo)(unsafe.Pointer(p))
	assert.Equal(t, structureTypeGraphicsPipelineCreateInfo, c.sType)
	require.EqualValues(t, 2, c.stageCount)
	stages := unsafe.Slice((*cPipelineShaderStageCreateInfo)(unsafe.Pointer(c.pStages)), 2)
	assert.EqualValues(t, vk.ShaderStageFragmentBit, stages[1].stage)
	assert.Equal(t, "main", cGoString(stages[1].pName))

	assert.Zero(t, c.pVertexInputState)
	assert.Zero(t, c.pTessellationState)
	assert.Zero(t, c.pRasterizationState)
	assert.Zero(t, c.pDynamicState)

	ia := (*cPipelineInputAssemblyStateCreateInfo)(unsafe.Pointer(c.pInputAssemblyState))
	assert.Equal(t, structureTypePipelineInputAssemblyState, ia.sType)
	assert.EqualValues(t, vk.PrimitiveTopologyTriangleList, ia.topology)

	vp := (*cPipelineViewportStateCreateInfo)(unsafe.Pointer(c.pViewportState))
	require.EqualValues(t, 1, vp.viewportCount)
	assert.Equal(t, float32(640), (*vk.Viewport)(unsafe.Pointer(vp.pViewports)).Width)
	assert.EqualValues(t, 480, (*vk.Rect2D)(unsafe.Pointer(vp.pScissors)).Extent.Height)

	ds := (*cPipelineDepthStencilStateCreateInfo)(unsafe.Pointer(c.pDepthStencilState))
	assert.EqualValues(t, 1, ds.depthTestEnable)
	assert.EqualValues(t, 0, ds.depthWriteEnable)
	assert.EqualValues(t, vk.CompareOpAlways, ds.back[3])
	assert.EqualValues(t, 7, ds.back[6])

	cb := (*cPipelineColorBlendStateCreateInfo)(unsafe.Pointer(c.pColorBlendState))
	require.EqualValues(t, 1, cb.attachmentCount)
	att := (*cPipelineColorBlendAttachmentState)(unsafe.Pointer(cb.pAttachments))
	assert.EqualValues(t, 1, att.blendEnable)
	assert.EqualValues(t, 0xf, att.colorWriteMask)

	assert.EqualValues(t, 5, c.layout)
	assert.EqualValues(t, 6, c.renderPass)
	assert.EqualValues(t, -1, c.basePipelineIndex)
}

func TestRenderPassCreateInfo(t *testing.T) {
	var a arena
	defer a.free()
	info := &vk.RenderPassCreateInfo{
		Attachments: []vk.AttachmentDescription{
			{Format: vk.FormatB8g8r8a8Unorm, FinalLayout: vk.ImageLayoutPresentSrc},
			{Format: vk.FormatD32Sfloat},
		},
		Subpasses: []vk.SubpassDescription{{
			PipelineBindPoint:      vk.PipelineBindPointGraphics,
			ColorAttachments:       []vk.AttachmentReference{{Attachment: 0, Layout: vk.ImageLayoutColorAttachmentOptimal}},
			DepthStencilAttachment: &vk.AttachmentReference{Attachment: 1, Layout: vk.ImageLayoutDepthStencilAttachmentOptimal},
		}},
		Dependencies: []vk.SubpassDependency{{SrcSubpass: vk.SubpassExternal}},
	}
	c := a.renderPassCreateInfo(info)
	assert.Equal(t, structureTypeRenderPassCreateInfo, c.sType)
	assert.EqualValues(t, 2, c.attachmentCount)
	assert.Equal(t, uintptr(unsafe.Pointer(&info.Attachments[0])), c.pAttachments)
	require.EqualValues(t, 1, c.subpassCount)

	sub := (*cSubpassDescription)(unsafe.Pointer(c.pSubpasses))
	assert.EqualValues(t, 1, sub.colorAttachmentCount)
	assert.Zero(t, sub.pInputAttachments)
	assert.Zero(t, sub.pResolveAttachments)
	depth := (*vk.AttachmentReference)(unsafe.Pointer(sub.pDepthStencilAttachment))
	assert.Equal(t, uint32(1), depth.Attachment)

	dep := (*vk.SubpassDependency)(unsafe.Pointer(c.pDependencies))
	assert.Equal(t, vk.SubpassExternal, dep.SrcSubpass)
}

func TestRenderPassBeginInfo(t *testing.T) {
	var a arena
	defer a.free()
	c := a.renderPassBeginInfo(&vk.RenderPassBeginInfo{
		RenderPass:  2,
		Framebuffer: 3,
		RenderArea:  vk.Rect2D{Offset: vk.Offset2D{X: -1}, Extent: vk.Extent2D{Width: 800, Height: 600}},
		ClearValues: []vk.ClearValue{vk.ClearColor(0.2, 0.2, 0.2, 1), vk.ClearDepthStencil(1, 0)},
	})
	assert.Equal(t, structureTypeRenderPassBeginInfo, c.sType)
	assert.Equal(t, [4]uint32{^uint32(0), 0, 800, 600}, c.renderArea)
	require.EqualValues(t, 2, c.clearValueCount)
	values := unsafe.Slice((*[4]float32)(unsafe.Pointer(c.pClearValues)), 2)
	assert.Equal(t, float32(0.2), values[0][0])
	assert.Equal(t, float32(1), values[1][0])
}

func TestCommandBufferBeginInfo(t *testing.T) {
	var a arena
	defer a.free()
	c := a.commandBufferBeginInfo(&vk.CommandBufferBeginInfo{Flags: vk.CommandBufferUsageOneTimeSubmitBit})
	assert.Zero(t, c.pInheritanceInfo)

	c = a.commandBufferBeginInfo(&vk.CommandBufferBeginInfo{
		Flags:       vk.CommandBufferUsageRenderPassContinueBit,
		Inheritance: &vk.CommandBufferInheritanceInfo{RenderPass: 4, Framebuffer: 5},
	})
	require.NotZero(t, c.pInheritanceInfo)
	in := (*cCommandBufferInheritanceInfo)(unsafe.Pointer(c.pInheritanceInfo))
	assert.Equal(t, structureTypeCommandBufferInheritanceInfo, in.sType)
	assert.EqualValues(t, 4, in.renderPass)
	assert.EqualValues(t, 5, in.framebuffer)
}
