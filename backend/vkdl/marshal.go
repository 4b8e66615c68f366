package vkdl

import (
	"runtime"
	"unsafe"

	"github.com/celer/vkgl/vk"
)

// arena pins the Go memory referenced by the C structures of one call.
// Structures hold plain addresses, so everything they point to must stay
// pinned until the driver returns.
type arena struct {
	pinner runtime.Pinner
}

func (a *arena) free() {
	a.pinner.Unpin()
}

func (a *arena) pin(p unsafe.Pointer) uintptr {
	if p == nil {
		return 0
	}
	a.pinner.Pin(p)
	return uintptr(p)
}

// cstring returns a NUL terminated copy of s.
func (a *arena) cstring(s string) uintptr {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return a.pin(unsafe.Pointer(&b[0]))
}

// optionalCString is cstring that maps the empty string to NULL.
func (a *arena) optionalCString(s string) uintptr {
	if s == "" {
		return 0
	}
	return a.cstring(s)
}

// cstrings returns a const char* const* array.
func (a *arena) cstrings(ss []string) uintptr {
	if len(ss) == 0 {
		return 0
	}
	ptrs := make([]uintptr, len(ss))
	for i, s := range ss {
		ptrs[i] = a.cstring(s)
	}
	return a.pin(unsafe.Pointer(&ptrs[0]))
}

// pinSlice returns the address of the first element, or 0 for an empty slice.
func pinSlice[T any](a *arena, s []T) uintptr {
	if len(s) == 0 {
		return 0
	}
	return a.pin(unsafe.Pointer(&s[0]))
}

// pinValue copies v to the heap and returns its pinned address.
func pinValue[T any](a *arena, v T) uintptr {
	p := new(T)
	*p = v
	return a.pin(unsafe.Pointer(p))
}

// slicePtr is the address of the first element for output arrays. Output
// arrays contain no pointers and are kept alive by the call itself.
func slicePtr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// goString converts a NUL terminated fixed size array.
func goString(b []byte) string {
	return vk.ToString(b)
}

// cGoString copies a NUL terminated C string.
func cGoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

func boolean(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (a *arena) applicationInfo(info *vk.ApplicationInfo) uintptr {
	if info == nil {
		return 0
	}
	return pinValue(a, cApplicationInfo{
		sType:              structureTypeApplicationInfo,
		pApplicationName:   a.optionalCString(info.ApplicationName),
		applicationVersion: uint32(info.ApplicationVersion),
		pEngineName:        a.optionalCString(info.EngineName),
		engineVersion:      uint32(info.EngineVersion),
		apiVersion:         uint32(info.APIVersion),
	})
}

func (a *arena) instanceCreateInfo(info *vk.InstanceCreateInfo) *cInstanceCreateInfo {
	return &cInstanceCreateInfo{
		sType:                   structureTypeInstanceCreateInfo,
		pApplicationInfo:        a.applicationInfo(info.ApplicationInfo),
		enabledLayerCount:       uint32(len(info.EnabledLayerNames)),
		ppEnabledLayerNames:     a.cstrings(info.EnabledLayerNames),
		enabledExtensionCount:   uint32(len(info.EnabledExtensionNames)),
		ppEnabledExtensionNames: a.cstrings(info.EnabledExtensionNames),
	}
}

func (a *arena) deviceCreateInfo(info *vk.DeviceCreateInfo) *cDeviceCreateInfo {
	queues := make([]cDeviceQueueCreateInfo, len(info.QueueCreateInfos))
	for i, q := range info.QueueCreateInfos {
		queues[i] = cDeviceQueueCreateInfo{
			sType:            structureTypeDeviceQueueCreateInfo,
			queueFamilyIndex: q.QueueFamilyIndex,
			queueCount:       uint32(len(q.QueuePriorities)),
			pQueuePriorities: pinSlice(a, q.QueuePriorities),
		}
	}
	return &cDeviceCreateInfo{
		sType:                   structureTypeDeviceCreateInfo,
		queueCreateInfoCount:    uint32(len(queues)),
		pQueueCreateInfos:       pinSlice(a, queues),
		enabledLayerCount:       uint32(len(info.EnabledLayerNames)),
		ppEnabledLayerNames:     a.cstrings(info.EnabledLayerNames),
		enabledExtensionCount:   uint32(len(info.EnabledExtensionNames)),
		ppEnabledExtensionNames: a.cstrings(info.EnabledExtensionNames),
	}
}

func (a *arena) submitInfos(submits []vk.SubmitInfo) uintptr {
	c := make([]cSubmitInfo, len(submits))
	for i, s := range submits {
		c[i] = cSubmitInfo{
			sType:                structureTypeSubmitInfo,
			waitSemaphoreCount:   uint32(len(s.WaitSemaphores)),
			pWaitSemaphores:      pinSlice(a, s.WaitSemaphores),
			pWaitDstStageMask:    pinSlice(a, s.WaitDstStageMask),
			commandBufferCount:   uint32(len(s.CommandBuffers)),
			pCommandBuffers:      pinSlice(a, s.CommandBuffers),
			signalSemaphoreCount: uint32(len(s.SignalSemaphores)),
			pSignalSemaphores:    pinSlice(a, s.SignalSemaphores),
		}
	}
	return pinSlice(a, c)
}

func (a *arena) mappedMemoryRanges(ranges []vk.MappedMemoryRange) uintptr {
	c := make([]cMappedMemoryRange, len(ranges))
	for i, r := range ranges {
		c[i] = cMappedMemoryRange{
			sType:  structureTypeMappedMemoryRange,
			memory: uint64(r.Memory),
			offset: uint64(r.Offset),
			size:   uint64(r.Size),
		}
	}
	return pinSlice(a, c)
}

func (a *arena) bufferCreateInfo(info *vk.BufferCreateInfo) *cBufferCreateInfo {
	return &cBufferCreateInfo{
		sType:                 structureTypeBufferCreateInfo,
		flags:                 uint32(info.Flags),
		size:                  uint64(info.Size),
		usage:                 uint32(info.Usage),
		sharingMode:           int32(info.SharingMode),
		queueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		pQueueFamilyIndices:   pinSlice(a, info.QueueFamilyIndices),
	}
}

func (a *arena) imageCreateInfo(info *vk.ImageCreateInfo) *cImageCreateInfo {
	return &cImageCreateInfo{
		sType:                 structureTypeImageCreateInfo,
		flags:                 uint32(info.Flags),
		imageType:             int32(info.ImageType),
		format:                int32(info.Format),
		extent:                [3]uint32{info.Extent.Width, info.Extent.Height, info.Extent.Depth},
		mipLevels:             info.MipLevels,
		arrayLayers:           info.ArrayLayers,
		samples:               uint32(info.Samples),
		tiling:                int32(info.Tiling),
		usage:                 uint32(info.Usage),
		sharingMode:           int32(info.SharingMode),
		queueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		pQueueFamilyIndices:   pinSlice(a, info.QueueFamilyIndices),
		initialLayout:         int32(info.InitialLayout),
	}
}

func subresourceRange(r vk.ImageSubresourceRange) [5]uint32 {
	return [5]uint32{uint32(r.AspectMask), r.BaseMipLevel, r.LevelCount, r.BaseArrayLayer, r.LayerCount}
}

func imageViewCreateInfo(info *vk.ImageViewCreateInfo) *cImageViewCreateInfo {
	c := info.Components
	return &cImageViewCreateInfo{
		sType:            structureTypeImageViewCreateInfo,
		image:            uint64(info.Image),
		viewType:         int32(info.ViewType),
		format:           int32(info.Format),
		components:       [4]int32{int32(c.R), int32(c.G), int32(c.B), int32(c.A)},
		subresourceRange: subresourceRange(info.SubresourceRange),
	}
}

func samplerCreateInfo(info *vk.SamplerCreateInfo) *cSamplerCreateInfo {
	return &cSamplerCreateInfo{
		sType:                   structureTypeSamplerCreateInfo,
		magFilter:               int32(info.MagFilter),
		minFilter:               int32(info.MinFilter),
		mipmapMode:              int32(info.MipmapMode),
		addressModeU:            int32(info.AddressModeU),
		addressModeV:            int32(info.AddressModeV),
		addressModeW:            int32(info.AddressModeW),
		mipLodBias:              info.MipLodBias,
		anisotropyEnable:        boolean(info.AnisotropyEnable),
		maxAnisotropy:           info.MaxAnisotropy,
		compareEnable:           boolean(info.CompareEnable),
		compareOp:               int32(info.CompareOp),
		minLod:                  info.MinLod,
		maxLod:                  info.MaxLod,
		borderColor:             int32(info.BorderColor),
		unnormalizedCoordinates: boolean(info.UnnormalizedCoordinates),
	}
}

func (a *arena) shaderStage(s vk.PipelineShaderStageCreateInfo) cPipelineShaderStageCreateInfo {
	return cPipelineShaderStageCreateInfo{
		sType:  structureTypePipelineShaderStageCreateInfo,
		stage:  uint32(s.Stage),
		module: uint64(s.Module),
		pName:  a.cstring(s.Name),
	}
}

func (a *arena) computePipelineCreateInfos(infos []vk.ComputePipelineCreateInfo) uintptr {
	c := make([]cComputePipelineCreateInfo, len(infos))
	for i, info := range infos {
		c[i] = cComputePipelineCreateInfo{
			sType:              structureTypeComputePipelineCreateInfo,
			flags:              uint32(info.Flags),
			stage:              a.shaderStage(info.Stage),
			layout:             uint64(info.Layout),
			basePipelineHandle: uint64(info.BasePipelineHandle),
			basePipelineIndex:  info.BasePipelineIndex,
		}
	}
	return pinSlice(a, c)
}

// optionalPtr pins *p, or returns NULL for a nil p.
func optionalPtr[T, C any](a *arena, p *T, convert func(*T) C) uintptr {
	if p == nil {
		return 0
	}
	return pinValue(a, convert(p))
}

func stencilOpState(s vk.StencilOpState) [7]uint32 {
	return [7]uint32{uint32(s.FailOp), uint32(s.PassOp), uint32(s.DepthFailOp), uint32(s.CompareOp),
		s.CompareMask, s.WriteMask, s.Reference}
}

func (a *arena) graphicsPipelineCreateInfos(infos []vk.GraphicsPipelineCreateInfo) uintptr {
	c := make([]cGraphicsPipelineCreateInfo, len(infos))
	for i := range infos {
		info := &infos[i]
		stages := make([]cPipelineShaderStageCreateInfo, len(info.Stages))
		for n, s := range info.Stages {
			stages[n] = a.shaderStage(s)
		}
		c[i] = cGraphicsPipelineCreateInfo{
			sType:      structureTypeGraphicsPipelineCreateInfo,
			flags:      uint32(info.Flags),
			stageCount: uint32(len(stages)),
			pStages:    pinSlice(a, stages),
			pVertexInputState: optionalPtr(a, info.VertexInputState, func(s *vk.PipelineVertexInputStateCreateInfo) cPipelineVertexInputStateCreateInfo {
				return cPipelineVertexInputStateCreateInfo{
					sType:                           structureTypePipelineVertexInputState,
					vertexBindingDescriptionCount:   uint32(len(s.VertexBindingDescriptions)),
					pVertexBindingDescriptions:      pinSlice(a, s.VertexBindingDescriptions),
					vertexAttributeDescriptionCount: uint32(len(s.VertexAttributeDescriptions)),
					pVertexAttributeDescriptions:    pinSlice(a, s.VertexAttributeDescriptions),
				}
			}),
			pInputAssemblyState: optionalPtr(a, info.InputAssemblyState, func(s *vk.PipelineInputAssemblyStateCreateInfo) cPipelineInputAssemblyStateCreateInfo {
				return cPipelineInputAssemblyStateCreateInfo{
					sType:                  structureTypePipelineInputAssemblyState,
					topology:               int32(s.Topology),
					primitiveRestartEnable: boolean(s.PrimitiveRestartEnable),
				}
			}),
			pViewportState: optionalPtr(a, info.ViewportState, func(s *vk.PipelineViewportStateCreateInfo) cPipelineViewportStateCreateInfo {
				return cPipelineViewportStateCreateInfo{
					sType:         structureTypePipelineViewportState,
					viewportCount: uint32(len(s.Viewports)),
					pViewports:    pinSlice(a, s.Viewports),
					scissorCount:  uint32(len(s.Scissors)),
					pScissors:     pinSlice(a, s.Scissors),
				}
			}),
			pRasterizationState: optionalPtr(a, info.RasterizationState, func(s *vk.PipelineRasterizationStateCreateInfo) cPipelineRasterizationStateCreateInfo {
				return cPipelineRasterizationStateCreateInfo{
					sType:                   structureTypePipelineRasterizationState,
					depthClampEnable:        boolean(s.DepthClampEnable),
					rasterizerDiscardEnable: boolean(s.RasterizerDiscardEnable),
					polygonMode:             int32(s.PolygonMode),
					cullMode:                uint32(s.CullMode),
					frontFace:               int32(s.FrontFace),
					depthBiasEnable:         boolean(s.DepthBiasEnable),
					depthBiasConstantFactor: s.DepthBiasConstantFactor,
					depthBiasClamp:          s.DepthBiasClamp,
					depthBiasSlopeFactor:    s.DepthBiasSlopeFactor,
					lineWidth:               s.LineWidth,
				}
			}),
			pMultisampleState: optionalPtr(a, info.MultisampleState, func(s *vk.PipelineMultisampleStateCreateInfo) cPipelineMultisampleStateCreateInfo {
				return cPipelineMultisampleStateCreateInfo{
					sType:                 structureTypePipelineMultisampleState,
					rasterizationSamples:  uint32(s.RasterizationSamples),
					sampleShadingEnable:   boolean(s.SampleShadingEnable),
					minSampleShading:      s.MinSampleShading,
					alphaToCoverageEnable: boolean(s.AlphaToCoverageEnable),
					alphaToOneEnable:      boolean(s.AlphaToOneEnable),
				}
			}),
			pDepthStencilState: optionalPtr(a, info.DepthStencilState, func(s *vk.PipelineDepthStencilStateCreateInfo) cPipelineDepthStencilStateCreateInfo {
				return cPipelineDepthStencilStateCreateInfo{
					sType:                 structureTypePipelineDepthStencilState,
					depthTestEnable:       boolean(s.DepthTestEnable),
					depthWriteEnable:      boolean(s.DepthWriteEnable),
					depthCompareOp:        int32(s.DepthCompareOp),
					depthBoundsTestEnable: boolean(s.DepthBoundsTestEnable),
					stencilTestEnable:     boolean(s.StencilTestEnable),
					front:                 stencilOpState(s.Front),
					back:                  stencilOpState(s.Back),
					minDepthBounds:        s.MinDepthBounds,
					maxDepthBounds:        s.MaxDepthBounds,
				}
			}),
			pColorBlendState: optionalPtr(a, info.ColorBlendState, func(s *vk.PipelineColorBlendStateCreateInfo) cPipelineColorBlendStateCreateInfo {
				attachments := make([]cPipelineColorBlendAttachmentState, len(s.Attachments))
				for n, b := range s.Attachments {
					attachments[n] = cPipelineColorBlendAttachmentState{
						blendEnable:         boolean(b.BlendEnable),
						srcColorBlendFactor: int32(b.SrcColorBlendFactor),
						dstColorBlendFactor: int32(b.DstColorBlendFactor),
						colorBlendOp:        int32(b.ColorBlendOp),
						srcAlphaBlendFactor: int32(b.SrcAlphaBlendFactor),
						dstAlphaBlendFactor: int32(b.DstAlphaBlendFactor),
						alphaBlendOp:        int32(b.AlphaBlendOp),
						colorWriteMask:      uint32(b.ColorWriteMask),
					}
				}
				return cPipelineColorBlendStateCreateInfo{
					sType:           structureTypePipelineColorBlendState,
					logicOpEnable:   boolean(s.LogicOpEnable),
					logicOp:         int32(s.LogicOp),
					attachmentCount: uint32(len(attachments)),
					pAttachments:    pinSlice(a, attachments),
					blendConstants:  s.BlendConstants,
				}
			}),
			pDynamicState: optionalPtr(a, info.DynamicState, func(s *vk.PipelineDynamicStateCreateInfo) cPipelineDynamicStateCreateInfo {
				return cPipelineDynamicStateCreateInfo{
					sType:             structureTypePipelineDynamicState,
					dynamicStateCount: uint32(len(s.DynamicStates)),
					pDynamicStates:    pinSlice(a, s.DynamicStates),
				}
			}),
			layout:             uint64(info.Layout),
			renderPass:         uint64(info.RenderPass),
			subpass:            info.Subpass,
			basePipelineHandle: uint64(info.BasePipelineHandle),
			basePipelineIndex:  info.BasePipelineIndex,
		}
	}
	return pinSlice(a, c)
}

// AttachmentDescription, AttachmentReference and SubpassDependency match
// their C layouts.
func (a *arena) renderPassCreateInfo(info *vk.RenderPassCreateInfo) *cRenderPassCreateInfo {
	subpasses := make([]cSubpassDescription, len(info.Subpasses))
	for i := range info.Subpasses {
		s := &info.Subpasses[i]
		subpasses[i] = cSubpassDescription{
			pipelineBindPoint:       int32(s.PipelineBindPoint),
			inputAttachmentCount:    uint32(len(s.InputAttachments)),
			pInputAttachments:       pinSlice(a, s.InputAttachments),
			colorAttachmentCount:    uint32(len(s.ColorAttachments)),
			pColorAttachments:       pinSlice(a, s.ColorAttachments),
			pResolveAttachments:     pinSlice(a, s.ResolveAttachments),
			preserveAttachmentCount: uint32(len(s.PreserveAttachments)),
			pPreserveAttachments:    pinSlice(a, s.PreserveAttachments),
		}
		if s.DepthStencilAttachment != nil {
			subpasses[i].pDepthStencilAttachment = pinValue(a, *s.DepthStencilAttachment)
		}
	}
	return &cRenderPassCreateInfo{
		sType:           structureTypeRenderPassCreateInfo,
		attachmentCount: uint32(len(info.Attachments)),
		pAttachments:    pinSlice(a, info.Attachments),
		subpassCount:    uint32(len(subpasses)),
		pSubpasses:      pinSlice(a, subpasses),
		dependencyCount: uint32(len(info.Dependencies)),
		pDependencies:   pinSlice(a, info.Dependencies),
	}
}

func (a *arena) framebufferCreateInfo(info *vk.FramebufferCreateInfo) *cFramebufferCreateInfo {
	return &cFramebufferCreateInfo{
		sType:           structureTypeFramebufferCreateInfo,
		renderPass:      uint64(info.RenderPass),
		attachmentCount: uint32(len(info.Attachments)),
		pAttachments:    pinSlice(a, info.Attachments),
		width:           info.Width,
		height:          info.Height,
		layers:          info.Layers,
	}
}

func (a *arena) renderPassBeginInfo(info *vk.RenderPassBeginInfo) *cRenderPassBeginInfo {
	r := info.RenderArea
	return &cRenderPassBeginInfo{
		sType:           structureTypeRenderPassBeginInfo,
		renderPass:      uint64(info.RenderPass),
		framebuffer:     uint64(info.Framebuffer),
		renderArea:      [4]uint32{uint32(r.Offset.X), uint32(r.Offset.Y), r.Extent.Width, r.Extent.Height},
		clearValueCount: uint32(len(info.ClearValues)),
		pClearValues:    pinSlice(a, info.ClearValues),
	}
}

func (a *arena) commandBufferBeginInfo(info *vk.CommandBufferBeginInfo) *cCommandBufferBeginInfo {
	return &cCommandBufferBeginInfo{
		sType: structureTypeCommandBufferBeginInfo,
		flags: uint32(info.Flags),
		pInheritanceInfo: optionalPtr(a, info.Inheritance, func(i *vk.CommandBufferInheritanceInfo) cCommandBufferInheritanceInfo {
			return cCommandBufferInheritanceInfo{
				sType:       structureTypeCommandBufferInheritanceInfo,
				renderPass:  uint64(i.RenderPass),
				subpass:     i.Subpass,
				framebuffer: uint64(i.Framebuffer),
			}
		}),
	}
}

func (a *arena) descriptorSetLayoutCreateInfo(info *vk.DescriptorSetLayoutCreateInfo) *cDescriptorSetLayoutCreateInfo {
	bindings := make([]cDescriptorSetLayoutBinding, len(info.Bindings))
	for i, b := range info.Bindings {
		bindings[i] = cDescriptorSetLayoutBinding{
			binding:         b.Binding,
			descriptorType:  int32(b.DescriptorType),
			descriptorCount: b.DescriptorCount,
			stageFlags:      uint32(b.StageFlags),
		}
	}
	return &cDescriptorSetLayoutCreateInfo{
		sType:        structureTypeDescriptorSetLayoutCreateInfo,
		bindingCount: uint32(len(bindings)),
		pBindings:    pinSlice(a, bindings),
	}
}

func (a *arena) writeDescriptorSets(writes []vk.WriteDescriptorSet) uintptr {
	c := make([]cWriteDescriptorSet, len(writes))
	for i := range writes {
		w := &writes[i]
		c[i] = cWriteDescriptorSet{
			sType:           structureTypeWriteDescriptorSet,
			dstSet:          uint64(w.DstSet),
			dstBinding:      w.DstBinding,
			dstArrayElement: w.DstArrayElement,
			descriptorCount: w.DescriptorCount(),
			descriptorType:  int32(w.DescriptorType),
		}
		if w.DescriptorType.UsesImageInfo() {
			c[i].pImageInfo = pinSlice(a, w.ImageInfo)
		} else {
			c[i].pBufferInfo = pinSlice(a, w.BufferInfo)
		}
	}
	return pinSlice(a, c)
}

func (a *arena) barriers(memory []vk.MemoryBarrier, buffers []vk.BufferMemoryBarrier, images []vk.ImageMemoryBarrier) (m, b, i uintptr) {
	cm := make([]cMemoryBarrier, len(memory))
	for n, mb := range memory {
		cm[n] = cMemoryBarrier{
			sType:         structureTypeMemoryBarrier,
			srcAccessMask: uint32(mb.SrcAccessMask),
			dstAccessMask: uint32(mb.DstAccessMask),
		}
	}
	cb := make([]cBufferMemoryBarrier, len(buffers))
	for n, bb := range buffers {
		cb[n] = cBufferMemoryBarrier{
			sType:               structureTypeBufferMemoryBarrier,
			srcAccessMask:       uint32(bb.SrcAccessMask),
			dstAccessMask:       uint32(bb.DstAccessMask),
			srcQueueFamilyIndex: bb.SrcQueueFamilyIndex,
			dstQueueFamilyIndex: bb.DstQueueFamilyIndex,
			buffer:              uint64(bb.Buffer),
			offset:              uint64(bb.Offset),
			size:                uint64(bb.Size),
		}
	}
	ci := make([]cImageMemoryBarrier, len(images))
	for n, ib := range images {
		ci[n] = cImageMemoryBarrier{
			sType:               structureTypeImageMemoryBarrier,
			srcAccessMask:       uint32(ib.SrcAccessMask),
			dstAccessMask:       uint32(ib.DstAccessMask),
			oldLayout:           int32(ib.OldLayout),
			newLayout:           int32(ib.NewLayout),
			srcQueueFamilyIndex: ib.SrcQueueFamilyIndex,
			dstQueueFamilyIndex: ib.DstQueueFamilyIndex,
			image:               uint64(ib.Image),
			subresourceRange:    subresourceRange(ib.SubresourceRange),
		}
	}
	return pinSlice(a, cm), pinSlice(a, cb), pinSlice(a, ci)
}

func (a *arena) swapchainCreateInfo(info *vk.SwapchainCreateInfo) *cSwapchainCreateInfo {
	return &cSwapchainCreateInfo{
		sType:                 structureTypeSwapchainCreateInfo,
		surface:               uint64(info.Surface),
		minImageCount:         info.MinImageCount,
		imageFormat:           int32(info.ImageFormat),
		imageColorSpace:       int32(info.ImageColorSpace),
		imageExtent:           [2]uint32{info.ImageExtent.Width, info.ImageExtent.Height},
		imageArrayLayers:      info.ImageArrayLayers,
		imageUsage:            uint32(info.ImageUsage),
		imageSharingMode:      int32(info.ImageSharingMode),
		queueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		pQueueFamilyIndices:   pinSlice(a, info.QueueFamilyIndices),
		preTransform:          uint32(info.PreTransform),
		compositeAlpha:        uint32(info.CompositeAlpha),
		presentMode:           int32(info.PresentMode),
		clipped:               boolean(info.Clipped),
		oldSwapchain:          uint64(info.OldSwapchain),
	}
}

func (a *arena) presentInfo(info *vk.PresentInfo) *cPresentInfo {
	return &cPresentInfo{
		sType:              structureTypePresentInfo,
		waitSemaphoreCount: uint32(len(info.WaitSemaphores)),
		pWaitSemaphores:    pinSlice(a, info.WaitSemaphores),
		swapchainCount:     uint32(len(info.Swapchains)),
		pSwapchains:        pinSlice(a, info.Swapchains),
		pImageIndices:      pinSlice(a, info.ImageIndices),
		pResults:           pinSlice(a, info.Results),
	}
}

func physicalDeviceProperties(c *cPhysicalDeviceProperties) vk.PhysicalDeviceProperties {
	return vk.PhysicalDeviceProperties{
		APIVersion:        vk.Version(c.apiVersion),
		DriverVersion:     c.driverVersion,
		VendorID:          c.vendorID,
		DeviceID:          c.deviceID,
		DeviceType:        vk.PhysicalDeviceType(c.deviceType),
		DeviceName:        goString(c.deviceName[:]),
		PipelineCacheUUID: c.pipelineCacheUUID,
	}
}

func memoryProperties(c *cPhysicalDeviceMemoryProperties) vk.PhysicalDeviceMemoryProperties {
	types := make([]vk.MemoryType, min(c.memoryTypeCount, vk.MaxMemoryTypes))
	for i := range types {
		types[i] = vk.MemoryType{
			PropertyFlags: vk.MemoryPropertyFlags(c.memoryTypes[i].propertyFlags),
			HeapIndex:     c.memoryTypes[i].heapIndex,
		}
	}
	heaps := make([]vk.MemoryHeap, min(c.memoryHeapCount, vk.MaxMemoryHeaps))
	for i := range heaps {
		heaps[i] = vk.MemoryHeap{
			Size:  vk.DeviceSize(c.memoryHeaps[i].size),
			Flags: vk.MemoryHeapFlags(c.memoryHeaps[i].flags),
		}
	}
	return vk.PhysicalDeviceMemoryProperties{MemoryTypes: types, MemoryHeaps: heaps}
}
