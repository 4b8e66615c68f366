//go:build cgo

package vkgo

import (
	"fmt"
	"math"
	"unsafe"

	vkgo "github.com/vulkan-go/vulkan"

	"github.com/celer/vkgl/vk"
)

// vulkan-go declares handles as C pointer types, or uint64 where the
// headers do. A constant index out of range fails the build if a pair of
// representations ever differs in size.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(*new(vkgo.Instance))-unsafe.Sizeof(*new(vk.Instance))]
	_ = [1]struct{}{}[unsafe.Sizeof(*new(vkgo.CommandBuffer))-unsafe.Sizeof(*new(vk.CommandBuffer))]
	_ = [1]struct{}{}[unsafe.Sizeof(*new(vkgo.Buffer))-unsafe.Sizeof(*new(vk.Buffer))]
	_ = [1]struct{}{}[unsafe.Sizeof(*new(vkgo.Pipeline))-unsafe.Sizeof(*new(vk.Pipeline))]
	_ = [1]struct{}{}[unsafe.Sizeof(*new(vkgo.RenderPass))-unsafe.Sizeof(*new(vk.RenderPass))]
	_ = [1]struct{}{}[unsafe.Sizeof(*new(vkgo.Framebuffer))-unsafe.Sizeof(*new(vk.Framebuffer))]
)

// handle reinterprets a handle between the vk and vulkan-go representations.
// It panics if the two types differ in size.
func handle[To, From any](h From) To {
	var to To
	if unsafe.Sizeof(to) != unsafe.Sizeof(h) {
		panic(fmt.Sprintf("vkgo: cannot reinterpret %T (%d bytes) as %T (%d bytes)", h, unsafe.Sizeof(h), to, unsafe.Sizeof(to)))
	}
	return *(*To)(unsafe.Pointer(&h))
}

// handles reinterprets a handle slice in place.
func handles[To, From any](s []From) []To {
	if len(s) == 0 {
		return nil
	}
	_ = handle[To](s[0])
	return unsafe.Slice((*To)(unsafe.Pointer(&s[0])), len(s))
}

// cString NUL terminates s, vulkan-go passes string bytes to C unchanged.
func cString(s string) string {
	if len(s) == 0 || s[len(s)-1] != 0 {
		return s + "\x00"
	}
	return s
}

func cStrings(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = cString(s)
	}
	return out
}

// optionalString keeps the empty string empty so it reaches C as NULL.
func optionalString(s string) string {
	if s == "" {
		return ""
	}
	return cString(s)
}

func bool32(b bool) vkgo.Bool32 {
	if b {
		return vkgo.Bool32(vkgo.True)
	}
	return vkgo.Bool32(vkgo.False)
}

func instanceCreateInfo(info *vk.InstanceCreateInfo) *vkgo.InstanceCreateInfo {
	c := &vkgo.InstanceCreateInfo{
		SType:                   vkgo.StructureTypeInstanceCreateInfo,
		EnabledLayerCount:       uint32(len(info.EnabledLayerNames)),
		PpEnabledLayerNames:     cStrings(info.EnabledLayerNames),
		EnabledExtensionCount:   uint32(len(info.EnabledExtensionNames)),
		PpEnabledExtensionNames: cStrings(info.EnabledExtensionNames),
	}
	if app := info.ApplicationInfo; app != nil {
		c.PApplicationInfo = &vkgo.ApplicationInfo{
			SType:              vkgo.StructureTypeApplicationInfo,
			PApplicationName:   cString(app.ApplicationName),
			ApplicationVersion: uint32(app.ApplicationVersion),
			PEngineName:        cString(app.EngineName),
			EngineVersion:      uint32(app.EngineVersion),
			ApiVersion:         uint32(app.APIVersion),
		}
	}
	return c
}

func deviceCreateInfo(info *vk.DeviceCreateInfo) *vkgo.DeviceCreateInfo {
	queues := make([]vkgo.DeviceQueueCreateInfo, len(info.QueueCreateInfos))
	for i, q := range info.QueueCreateInfos {
		queues[i] = vkgo.DeviceQueueCreateInfo{
			SType:            vkgo.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.QueueFamilyIndex,
			QueueCount:       uint32(len(q.QueuePriorities)),
			PQueuePriorities: q.QueuePriorities,
		}
	}
	return &vkgo.DeviceCreateInfo{
		SType:                   vkgo.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queues)),
		PQueueCreateInfos:       queues,
		EnabledLayerCount:       uint32(len(info.EnabledLayerNames)),
		PpEnabledLayerNames:     cStrings(info.EnabledLayerNames),
		EnabledExtensionCount:   uint32(len(info.EnabledExtensionNames)),
		PpEnabledExtensionNames: cStrings(info.EnabledExtensionNames),
	}
}

func submitInfos(submits []vk.SubmitInfo) []vkgo.SubmitInfo {
	c := make([]vkgo.SubmitInfo, len(submits))
	for i, s := range submits {
		stages := make([]vkgo.PipelineStageFlags, len(s.WaitDstStageMask))
		for n, st := range s.WaitDstStageMask {
			stages[n] = vkgo.PipelineStageFlags(st)
		}
		c[i] = vkgo.SubmitInfo{
			SType:                vkgo.StructureTypeSubmitInfo,
			WaitSemaphoreCount:   uint32(len(s.WaitSemaphores)),
			PWaitSemaphores:      handles[vkgo.Semaphore](s.WaitSemaphores),
			PWaitDstStageMask:    stages,
			CommandBufferCount:   uint32(len(s.CommandBuffers)),
			PCommandBuffers:      handles[vkgo.CommandBuffer](s.CommandBuffers),
			SignalSemaphoreCount: uint32(len(s.SignalSemaphores)),
			PSignalSemaphores:    handles[vkgo.Semaphore](s.SignalSemaphores),
		}
	}
	return c
}

func mappedMemoryRanges(ranges []vk.MappedMemoryRange) []vkgo.MappedMemoryRange {
	c := make([]vkgo.MappedMemoryRange, len(ranges))
	for i, r := range ranges {
		c[i] = vkgo.MappedMemoryRange{
			SType:  vkgo.StructureTypeMappedMemoryRange,
			Memory: handle[vkgo.DeviceMemory](r.Memory),
			Offset: vkgo.DeviceSize(r.Offset),
			Size:   vkgo.DeviceSize(r.Size),
		}
	}
	return c
}

func bufferCreateInfo(info *vk.BufferCreateInfo) *vkgo.BufferCreateInfo {
	return &vkgo.BufferCreateInfo{
		SType:                 vkgo.StructureTypeBufferCreateInfo,
		Flags:                 vkgo.BufferCreateFlags(info.Flags),
		Size:                  vkgo.DeviceSize(info.Size),
		Usage:                 vkgo.BufferUsageFlags(info.Usage),
		SharingMode:           vkgo.SharingMode(info.SharingMode),
		QueueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		PQueueFamilyIndices:   info.QueueFamilyIndices,
	}
}

func imageCreateInfo(info *vk.ImageCreateInfo) *vkgo.ImageCreateInfo {
	return &vkgo.ImageCreateInfo{
		SType:                 vkgo.StructureTypeImageCreateInfo,
		Flags:                 vkgo.ImageCreateFlags(info.Flags),
		ImageType:             vkgo.ImageType(info.ImageType),
		Format:                vkgo.Format(info.Format),
		Extent:                extent3D(info.Extent),
		MipLevels:             info.MipLevels,
		ArrayLayers:           info.ArrayLayers,
		Samples:               vkgo.SampleCountFlagBits(info.Samples),
		Tiling:                vkgo.ImageTiling(info.Tiling),
		Usage:                 vkgo.ImageUsageFlags(info.Usage),
		SharingMode:           vkgo.SharingMode(info.SharingMode),
		QueueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		PQueueFamilyIndices:   info.QueueFamilyIndices,
		InitialLayout:         vkgo.ImageLayout(info.InitialLayout),
	}
}

func extent3D(e vk.Extent3D) vkgo.Extent3D {
	return vkgo.Extent3D{Width: e.Width, Height: e.Height, Depth: e.Depth}
}

func subresourceRange(r vk.ImageSubresourceRange) vkgo.ImageSubresourceRange {
	return vkgo.ImageSubresourceRange{
		AspectMask:     vkgo.ImageAspectFlags(r.AspectMask),
		BaseMipLevel:   r.BaseMipLevel,
		LevelCount:     r.LevelCount,
		BaseArrayLayer: r.BaseArrayLayer,
		LayerCount:     r.LayerCount,
	}
}

func imageViewCreateInfo(info *vk.ImageViewCreateInfo) *vkgo.ImageViewCreateInfo {
	c := info.Components
	return &vkgo.ImageViewCreateInfo{
		SType:    vkgo.StructureTypeImageViewCreateInfo,
		Image:    handle[vkgo.Image](info.Image),
		ViewType: vkgo.ImageViewType(info.ViewType),
		Format:   vkgo.Format(info.Format),
		Components: vkgo.ComponentMapping{
			R: vkgo.ComponentSwizzle(c.R),
			G: vkgo.ComponentSwizzle(c.G),
			B: vkgo.ComponentSwizzle(c.B),
			A: vkgo.ComponentSwizzle(c.A),
		},
		SubresourceRange: subresourceRange(info.SubresourceRange),
	}
}

func samplerCreateInfo(info *vk.SamplerCreateInfo) *vkgo.SamplerCreateInfo {
	return &vkgo.SamplerCreateInfo{
		SType:                   vkgo.StructureTypeSamplerCreateInfo,
		MagFilter:               vkgo.Filter(info.MagFilter),
		MinFilter:               vkgo.Filter(info.MinFilter),
		MipmapMode:              vkgo.SamplerMipmapMode(info.MipmapMode),
		AddressModeU:            vkgo.SamplerAddressMode(info.AddressModeU),
		AddressModeV:            vkgo.SamplerAddressMode(info.AddressModeV),
		AddressModeW:            vkgo.SamplerAddressMode(info.AddressModeW),
		MipLodBias:              info.MipLodBias,
		AnisotropyEnable:        bool32(info.AnisotropyEnable),
		MaxAnisotropy:           info.MaxAnisotropy,
		CompareEnable:           bool32(info.CompareEnable),
		CompareOp:               vkgo.CompareOp(info.CompareOp),
		MinLod:                  info.MinLod,
		MaxLod:                  info.MaxLod,
		BorderColor:             vkgo.BorderColor(info.BorderColor),
		UnnormalizedCoordinates: bool32(info.UnnormalizedCoordinates),
	}
}

func pipelineLayoutCreateInfo(info *vk.PipelineLayoutCreateInfo) *vkgo.PipelineLayoutCreateInfo {
	ranges := make([]vkgo.PushConstantRange, len(info.PushConstantRanges))
	for i, r := range info.PushConstantRanges {
		ranges[i] = vkgo.PushConstantRange{
			StageFlags: vkgo.ShaderStageFlags(r.StageFlags),
			Offset:     r.Offset,
			Size:       r.Size,
		}
	}
	return &vkgo.PipelineLayoutCreateInfo{
		SType:                  vkgo.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         uint32(len(info.SetLayouts)),
		PSetLayouts:            handles[vkgo.DescriptorSetLayout](info.SetLayouts),
		PushConstantRangeCount: uint32(len(ranges)),
		PPushConstantRanges:    ranges,
	}
}

func computePipelineCreateInfos(infos []vk.ComputePipelineCreateInfo) []vkgo.ComputePipelineCreateInfo {
	c := make([]vkgo.ComputePipelineCreateInfo, len(infos))
	for i, info := range infos {
		c[i] = vkgo.ComputePipelineCreateInfo{
			SType:              vkgo.StructureTypeComputePipelineCreateInfo,
			Flags:              vkgo.PipelineCreateFlags(info.Flags),
			Stage:              shaderStage(info.Stage),
			Layout:             handle[vkgo.PipelineLayout](info.Layout),
			BasePipelineHandle: handle[vkgo.Pipeline](info.BasePipelineHandle),
			BasePipelineIndex:  info.BasePipelineIndex,
		}
	}
	return c
}

func shaderStage(s vk.PipelineShaderStageCreateInfo) vkgo.PipelineShaderStageCreateInfo {
	return vkgo.PipelineShaderStageCreateInfo{
		SType:  vkgo.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vkgo.ShaderStageFlagBits(s.Stage),
		Module: handle[vkgo.ShaderModule](s.Module),
		PName:  cString(s.Name),
	}
}

func viewports(vs []vk.Viewport) []vkgo.Viewport {
	c := make([]vkgo.Viewport, len(vs))
	for i, v := range vs {
		c[i] = vkgo.Viewport{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, MinDepth: v.MinDepth, MaxDepth: v.MaxDepth}
	}
	return c
}

func rect2D(r vk.Rect2D) vkgo.Rect2D {
	return vkgo.Rect2D{
		Offset: vkgo.Offset2D{X: r.Offset.X, Y: r.Offset.Y},
		Extent: vkgo.Extent2D{Width: r.Extent.Width, Height: r.Extent.Height},
	}
}

func rects(rs []vk.Rect2D) []vkgo.Rect2D {
	c := make([]vkgo.Rect2D, len(rs))
	for i, r := range rs {
		c[i] = rect2D(r)
	}
	return c
}

func stencilOpState(s vk.StencilOpState) vkgo.StencilOpState {
	return vkgo.StencilOpState{
		FailOp:      vkgo.StencilOp(s.FailOp),
		PassOp:      vkgo.StencilOp(s.PassOp),
		DepthFailOp: vkgo.StencilOp(s.DepthFailOp),
		CompareOp:   vkgo.CompareOp(s.CompareOp),
		CompareMask: s.CompareMask,
		WriteMask:   s.WriteMask,
		Reference:   s.Reference,
	}
}

func vertexInputState(s *vk.PipelineVertexInputStateCreateInfo) *vkgo.PipelineVertexInputStateCreateInfo {
	if s == nil {
		return nil
	}
	bindings := make([]vkgo.VertexInputBindingDescription, len(s.VertexBindingDescriptions))
	for i, b := range s.VertexBindingDescriptions {
		bindings[i] = vkgo.VertexInputBindingDescription{
			Binding:   b.Binding,
			Stride:    b.Stride,
			InputRate: vkgo.VertexInputRate(b.InputRate),
		}
	}
	attributes := make([]vkgo.VertexInputAttributeDescription, len(s.VertexAttributeDescriptions))
	for i, a := range s.VertexAttributeDescriptions {
		attributes[i] = vkgo.VertexInputAttributeDescription{
			Location: a.Location,
			Binding:  a.Binding,
			Format:   vkgo.Format(a.Format),
			Offset:   a.Offset,
		}
	}
	return &vkgo.PipelineVertexInputStateCreateInfo{
		SType:                           vkgo.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(bindings)),
		PVertexBindingDescriptions:      bindings,
		VertexAttributeDescriptionCount: uint32(len(attributes)),
		PVertexAttributeDescriptions:    attributes,
	}
}

func colorBlendState(s *vk.PipelineColorBlendStateCreateInfo) *vkgo.PipelineColorBlendStateCreateInfo {
	if s == nil {
		return nil
	}
	attachments := make([]vkgo.PipelineColorBlendAttachmentState, len(s.Attachments))
	for i, b := range s.Attachments {
		attachments[i] = vkgo.PipelineColorBlendAttachmentState{
			BlendEnable:         bool32(b.BlendEnable),
			SrcColorBlendFactor: vkgo.BlendFactor(b.SrcColorBlendFactor),
			DstColorBlendFactor: vkgo.BlendFactor(b.DstColorBlendFactor),
			ColorBlendOp:        vkgo.BlendOp(b.ColorBlendOp),
			SrcAlphaBlendFactor: vkgo.BlendFactor(b.SrcAlphaBlendFactor),
			DstAlphaBlendFactor: vkgo.BlendFactor(b.DstAlphaBlendFactor),
			AlphaBlendOp:        vkgo.BlendOp(b.AlphaBlendOp),
			ColorWriteMask:      vkgo.ColorComponentFlags(b.ColorWriteMask),
		}
	}
	return &vkgo.PipelineColorBlendStateCreateInfo{
		SType:           vkgo.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   bool32(s.LogicOpEnable),
		LogicOp:         vkgo.LogicOp(s.LogicOp),
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
		BlendConstants:  s.BlendConstants,
	}
}

func graphicsPipelineCreateInfos(infos []vk.GraphicsPipelineCreateInfo) []vkgo.GraphicsPipelineCreateInfo {
	c := make([]vkgo.GraphicsPipelineCreateInfo, len(infos))
	for i := range infos {
		info := &infos[i]
		stages := make([]vkgo.PipelineShaderStageCreateInfo, len(info.Stages))
		for n, s := range info.Stages {
			stages[n] = shaderStage(s)
		}
		g := vkgo.GraphicsPipelineCreateInfo{
			SType:              vkgo.StructureTypeGraphicsPipelineCreateInfo,
			Flags:              vkgo.PipelineCreateFlags(info.Flags),
			StageCount:         uint32(len(stages)),
			PStages:            stages,
			PVertexInputState:  vertexInputState(info.VertexInputState),
			PColorBlendState:   colorBlendState(info.ColorBlendState),
			Layout:             handle[vkgo.PipelineLayout](info.Layout),
			RenderPass:         handle[vkgo.RenderPass](info.RenderPass),
			Subpass:            info.Subpass,
			BasePipelineHandle: handle[vkgo.Pipeline](info.BasePipelineHandle),
			BasePipelineIndex:  info.BasePipelineIndex,
		}
		if s := info.InputAssemblyState; s != nil {
			g.PInputAssemblyState = &vkgo.PipelineInputAssemblyStateCreateInfo{
				SType:                  vkgo.StructureTypePipelineInputAssemblyStateCreateInfo,
				Topology:               vkgo.PrimitiveTopology(s.Topology),
				PrimitiveRestartEnable: bool32(s.PrimitiveRestartEnable),
			}
		}
		if s := info.ViewportState; s != nil {
			g.PViewportState = &vkgo.PipelineViewportStateCreateInfo{
				SType:         vkgo.StructureTypePipelineViewportStateCreateInfo,
				ViewportCount: uint32(len(s.Viewports)),
				PViewports:    viewports(s.Viewports),
				ScissorCount:  uint32(len(s.Scissors)),
				PScissors:     rects(s.Scissors),
			}
		}
		if s := info.RasterizationState; s != nil {
			g.PRasterizationState = &vkgo.PipelineRasterizationStateCreateInfo{
				SType:                   vkgo.StructureTypePipelineRasterizationStateCreateInfo,
				DepthClampEnable:        bool32(s.DepthClampEnable),
				RasterizerDiscardEnable: bool32(s.RasterizerDiscardEnable),
				PolygonMode:             vkgo.PolygonMode(s.PolygonMode),
				CullMode:                vkgo.CullModeFlags(s.CullMode),
				FrontFace:               vkgo.FrontFace(s.FrontFace),
				DepthBiasEnable:         bool32(s.DepthBiasEnable),
				DepthBiasConstantFactor: s.DepthBiasConstantFactor,
				DepthBiasClamp:          s.DepthBiasClamp,
				DepthBiasSlopeFactor:    s.DepthBiasSlopeFactor,
				LineWidth:               s.LineWidth,
			}
		}
		if s := info.MultisampleState; s != nil {
			g.PMultisampleState = &vkgo.PipelineMultisampleStateCreateInfo{
				SType:                 vkgo.StructureTypePipelineMultisampleStateCreateInfo,
				RasterizationSamples:  vkgo.SampleCountFlagBits(s.RasterizationSamples),
				SampleShadingEnable:   bool32(s.SampleShadingEnable),
				MinSampleShading:      s.MinSampleShading,
				AlphaToCoverageEnable: bool32(s.AlphaToCoverageEnable),
				AlphaToOneEnable:      bool32(s.AlphaToOneEnable),
			}
		}
		if s := info.DepthStencilState; s != nil {
			g.PDepthStencilState = &vkgo.PipelineDepthStencilStateCreateInfo{
				SType:                 vkgo.StructureTypePipelineDepthStencilStateCreateInfo,
				DepthTestEnable:       bool32(s.DepthTestEnable),
				DepthWriteEnable:      bool32(s.DepthWriteEnable),
				DepthCompareOp:        vkgo.CompareOp(s.DepthCompareOp),
				DepthBoundsTestEnable: bool32(s.DepthBoundsTestEnable),
				StencilTestEnable:     bool32(s.StencilTestEnable),
				Front:                 stencilOpState(s.Front),
				Back:                  stencilOpState(s.Back),
				MinDepthBounds:        s.MinDepthBounds,
				MaxDepthBounds:        s.MaxDepthBounds,
			}
		}
		if s := info.DynamicState; s != nil {
			states := make([]vkgo.DynamicState, len(s.DynamicStates))
			for n, d := range s.DynamicStates {
				states[n] = vkgo.DynamicState(d)
			}
			g.PDynamicState = &vkgo.PipelineDynamicStateCreateInfo{
				SType:             vkgo.StructureTypePipelineDynamicStateCreateInfo,
				DynamicStateCount: uint32(len(states)),
				PDynamicStates:    states,
			}
		}
		c[i] = g
	}
	return c
}

func attachmentReferences(refs []vk.AttachmentReference) []vkgo.AttachmentReference {
	if len(refs) == 0 {
		return nil
	}
	c := make([]vkgo.AttachmentReference, len(refs))
	for i, r := range refs {
		c[i] = vkgo.AttachmentReference{Attachment: r.Attachment, Layout: vkgo.ImageLayout(r.Layout)}
	}
	return c
}

func renderPassCreateInfo(info *vk.RenderPassCreateInfo) *vkgo.RenderPassCreateInfo {
	attachments := make([]vkgo.AttachmentDescription, len(info.Attachments))
	for i, a := range info.Attachments {
		attachments[i] = vkgo.AttachmentDescription{
			Flags:          vkgo.AttachmentDescriptionFlags(a.Flags),
			Format:         vkgo.Format(a.Format),
			Samples:        vkgo.SampleCountFlagBits(a.Samples),
			LoadOp:         vkgo.AttachmentLoadOp(a.LoadOp),
			StoreOp:        vkgo.AttachmentStoreOp(a.StoreOp),
			StencilLoadOp:  vkgo.AttachmentLoadOp(a.StencilLoadOp),
			StencilStoreOp: vkgo.AttachmentStoreOp(a.StencilStoreOp),
			InitialLayout:  vkgo.ImageLayout(a.InitialLayout),
			FinalLayout:    vkgo.ImageLayout(a.FinalLayout),
		}
	}
	subpasses := make([]vkgo.SubpassDescription, len(info.Subpasses))
	for i := range info.Subpasses {
		s := &info.Subpasses[i]
		subpasses[i] = vkgo.SubpassDescription{
			PipelineBindPoint:       vkgo.PipelineBindPoint(s.PipelineBindPoint),
			InputAttachmentCount:    uint32(len(s.InputAttachments)),
			PInputAttachments:       attachmentReferences(s.InputAttachments),
			ColorAttachmentCount:    uint32(len(s.ColorAttachments)),
			PColorAttachments:       attachmentReferences(s.ColorAttachments),
			PResolveAttachments:     attachmentReferences(s.ResolveAttachments),
			PreserveAttachmentCount: uint32(len(s.PreserveAttachments)),
			PPreserveAttachments:    s.PreserveAttachments,
		}
		if d := s.DepthStencilAttachment; d != nil {
			subpasses[i].PDepthStencilAttachment = &vkgo.AttachmentReference{Attachment: d.Attachment, Layout: vkgo.ImageLayout(d.Layout)}
		}
	}
	dependencies := make([]vkgo.SubpassDependency, len(info.Dependencies))
	for i, d := range info.Dependencies {
		dependencies[i] = vkgo.SubpassDependency{
			SrcSubpass:      d.SrcSubpass,
			DstSubpass:      d.DstSubpass,
			SrcStageMask:    vkgo.PipelineStageFlags(d.SrcStageMask),
			DstStageMask:    vkgo.PipelineStageFlags(d.DstStageMask),
			SrcAccessMask:   vkgo.AccessFlags(d.SrcAccessMask),
			DstAccessMask:   vkgo.AccessFlags(d.DstAccessMask),
			DependencyFlags: vkgo.DependencyFlags(d.DependencyFlags),
		}
	}
	return &vkgo.RenderPassCreateInfo{
		SType:           vkgo.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
		SubpassCount:    uint32(len(subpasses)),
		PSubpasses:      subpasses,
		DependencyCount: uint32(len(dependencies)),
		PDependencies:   dependencies,
	}
}

func framebufferCreateInfo(info *vk.FramebufferCreateInfo) *vkgo.FramebufferCreateInfo {
	return &vkgo.FramebufferCreateInfo{
		SType:           vkgo.StructureTypeFramebufferCreateInfo,
		RenderPass:      handle[vkgo.RenderPass](info.RenderPass),
		AttachmentCount: uint32(len(info.Attachments)),
		PAttachments:    handles[vkgo.ImageView](info.Attachments),
		Width:           info.Width,
		Height:          info.Height,
		Layers:          info.Layers,
	}
}

// clearValues carries the union bits over through SetColor, which stores
// four 32-bit words whichever member the caller meant.
func clearValues(values []vk.ClearValue) []vkgo.ClearValue {
	c := make([]vkgo.ClearValue, len(values))
	for i, v := range values {
		c[i].SetColor([]float32{
			math.Float32frombits(v[0]), math.Float32frombits(v[1]),
			math.Float32frombits(v[2]), math.Float32frombits(v[3]),
		})
	}
	return c
}

func renderPassBeginInfo(info *vk.RenderPassBeginInfo) *vkgo.RenderPassBeginInfo {
	return &vkgo.RenderPassBeginInfo{
		SType:           vkgo.StructureTypeRenderPassBeginInfo,
		RenderPass:      handle[vkgo.RenderPass](info.RenderPass),
		Framebuffer:     handle[vkgo.Framebuffer](info.Framebuffer),
		RenderArea:      rect2D(info.RenderArea),
		ClearValueCount: uint32(len(info.ClearValues)),
		PClearValues:    clearValues(info.ClearValues),
	}
}

func commandBufferBeginInfo(info *vk.CommandBufferBeginInfo) *vkgo.CommandBufferBeginInfo {
	c := &vkgo.CommandBufferBeginInfo{
		SType: vkgo.StructureTypeCommandBufferBeginInfo,
		Flags: vkgo.CommandBufferUsageFlags(info.Flags),
	}
	if in := info.Inheritance; in != nil {
		c.PInheritanceInfo = []vkgo.CommandBufferInheritanceInfo{{
			SType:       vkgo.StructureTypeCommandBufferInheritanceInfo,
			RenderPass:  handle[vkgo.RenderPass](in.RenderPass),
			Subpass:     in.Subpass,
			Framebuffer: handle[vkgo.Framebuffer](in.Framebuffer),
		}}
	}
	return c
}

func descriptorSetLayoutCreateInfo(info *vk.DescriptorSetLayoutCreateInfo) *vkgo.DescriptorSetLayoutCreateInfo {
	bindings := make([]vkgo.DescriptorSetLayoutBinding, len(info.Bindings))
	for i, b := range info.Bindings {
		bindings[i] = vkgo.DescriptorSetLayoutBinding{
			Binding:         b.Binding,
			DescriptorType:  vkgo.DescriptorType(b.DescriptorType),
			DescriptorCount: b.DescriptorCount,
			StageFlags:      vkgo.ShaderStageFlags(b.StageFlags),
		}
	}
	return &vkgo.DescriptorSetLayoutCreateInfo{
		SType:        vkgo.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
		PBindings:    bindings,
	}
}

func descriptorPoolCreateInfo(info *vk.DescriptorPoolCreateInfo) *vkgo.DescriptorPoolCreateInfo {
	sizes := make([]vkgo.DescriptorPoolSize, len(info.PoolSizes))
	for i, s := range info.PoolSizes {
		sizes[i] = vkgo.DescriptorPoolSize{
			Type:            vkgo.DescriptorType(s.Type),
			DescriptorCount: s.DescriptorCount,
		}
	}
	return &vkgo.DescriptorPoolCreateInfo{
		SType:         vkgo.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vkgo.DescriptorPoolCreateFlags(info.Flags),
		MaxSets:       info.MaxSets,
		PoolSizeCount: uint32(len(sizes)),
		PPoolSizes:    sizes,
	}
}

func writeDescriptorSets(writes []vk.WriteDescriptorSet) []vkgo.WriteDescriptorSet {
	c := make([]vkgo.WriteDescriptorSet, len(writes))
	for i := range writes {
		w := &writes[i]
		c[i] = vkgo.WriteDescriptorSet{
			SType:           vkgo.StructureTypeWriteDescriptorSet,
			DstSet:          handle[vkgo.DescriptorSet](w.DstSet),
			DstBinding:      w.DstBinding,
			DstArrayElement: w.DstArrayElement,
			DescriptorCount: w.DescriptorCount(),
			DescriptorType:  vkgo.DescriptorType(w.DescriptorType),
		}
		if w.DescriptorType.UsesImageInfo() {
			images := make([]vkgo.DescriptorImageInfo, len(w.ImageInfo))
			for n, info := range w.ImageInfo {
				images[n] = vkgo.DescriptorImageInfo{
					Sampler:     handle[vkgo.Sampler](info.Sampler),
					ImageView:   handle[vkgo.ImageView](info.ImageView),
					ImageLayout: vkgo.ImageLayout(info.ImageLayout),
				}
			}
			c[i].PImageInfo = images
			continue
		}
		buffers := make([]vkgo.DescriptorBufferInfo, len(w.BufferInfo))
		for n, info := range w.BufferInfo {
			buffers[n] = vkgo.DescriptorBufferInfo{
				Buffer: handle[vkgo.Buffer](info.Buffer),
				Offset: vkgo.DeviceSize(info.Offset),
				Range:  vkgo.DeviceSize(info.Range),
			}
		}
		c[i].PBufferInfo = buffers
	}
	return c
}

func bufferCopies(regions []vk.BufferCopy) []vkgo.BufferCopy {
	c := make([]vkgo.BufferCopy, len(regions))
	for i, r := range regions {
		c[i] = vkgo.BufferCopy{
			SrcOffset: vkgo.DeviceSize(r.SrcOffset),
			DstOffset: vkgo.DeviceSize(r.DstOffset),
			Size:      vkgo.DeviceSize(r.Size),
		}
	}
	return c
}

func bufferImageCopies(regions []vk.BufferImageCopy) []vkgo.BufferImageCopy {
	c := make([]vkgo.BufferImageCopy, len(regions))
	for i, r := range regions {
		c[i] = vkgo.BufferImageCopy{
			BufferOffset:      vkgo.DeviceSize(r.BufferOffset),
			BufferRowLength:   r.BufferRowLength,
			BufferImageHeight: r.BufferImageHeight,
			ImageSubresource: vkgo.ImageSubresourceLayers{
				AspectMask:     vkgo.ImageAspectFlags(r.ImageSubresource.AspectMask),
				MipLevel:       r.ImageSubresource.MipLevel,
				BaseArrayLayer: r.ImageSubresource.BaseArrayLayer,
				LayerCount:     r.ImageSubresource.LayerCount,
			},
			ImageOffset: vkgo.Offset3D{X: r.ImageOffset.X, Y: r.ImageOffset.Y, Z: r.ImageOffset.Z},
			ImageExtent: extent3D(r.ImageExtent),
		}
	}
	return c
}

func memoryBarriers(barriers []vk.MemoryBarrier) []vkgo.MemoryBarrier {
	c := make([]vkgo.MemoryBarrier, len(barriers))
	for i, b := range barriers {
		c[i] = vkgo.MemoryBarrier{
			SType:         vkgo.StructureTypeMemoryBarrier,
			SrcAccessMask: vkgo.AccessFlags(b.SrcAccessMask),
			DstAccessMask: vkgo.AccessFlags(b.DstAccessMask),
		}
	}
	return c
}

func bufferMemoryBarriers(barriers []vk.BufferMemoryBarrier) []vkgo.BufferMemoryBarrier {
	c := make([]vkgo.BufferMemoryBarrier, len(barriers))
	for i, b := range barriers {
		c[i] = vkgo.BufferMemoryBarrier{
			SType:               vkgo.StructureTypeBufferMemoryBarrier,
			SrcAccessMask:       vkgo.AccessFlags(b.SrcAccessMask),
			DstAccessMask:       vkgo.AccessFlags(b.DstAccessMask),
			SrcQueueFamilyIndex: b.SrcQueueFamilyIndex,
			DstQueueFamilyIndex: b.DstQueueFamilyIndex,
			Buffer:              handle[vkgo.Buffer](b.Buffer),
			Offset:              vkgo.DeviceSize(b.Offset),
			Size:                vkgo.DeviceSize(b.Size),
		}
	}
	return c
}

func imageMemoryBarriers(barriers []vk.ImageMemoryBarrier) []vkgo.ImageMemoryBarrier {
	c := make([]vkgo.ImageMemoryBarrier, len(barriers))
	for i, b := range barriers {
		c[i] = vkgo.ImageMemoryBarrier{
			SType:               vkgo.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       vkgo.AccessFlags(b.SrcAccessMask),
			DstAccessMask:       vkgo.AccessFlags(b.DstAccessMask),
			OldLayout:           vkgo.ImageLayout(b.OldLayout),
			NewLayout:           vkgo.ImageLayout(b.NewLayout),
			SrcQueueFamilyIndex: b.SrcQueueFamilyIndex,
			DstQueueFamilyIndex: b.DstQueueFamilyIndex,
			Image:               handle[vkgo.Image](b.Image),
			SubresourceRange:    subresourceRange(b.SubresourceRange),
		}
	}
	return c
}

func swapchainCreateInfo(info *vk.SwapchainCreateInfo) *vkgo.SwapchainCreateInfo {
	return &vkgo.SwapchainCreateInfo{
		SType:                 vkgo.StructureTypeSwapchainCreateInfo,
		Surface:               handle[vkgo.Surface](info.Surface),
		MinImageCount:         info.MinImageCount,
		ImageFormat:           vkgo.Format(info.ImageFormat),
		ImageColorSpace:       vkgo.ColorSpace(info.ImageColorSpace),
		ImageExtent:           vkgo.Extent2D{Width: info.ImageExtent.Width, Height: info.ImageExtent.Height},
		ImageArrayLayers:      info.ImageArrayLayers,
		ImageUsage:            vkgo.ImageUsageFlags(info.ImageUsage),
		ImageSharingMode:      vkgo.SharingMode(info.ImageSharingMode),
		QueueFamilyIndexCount: uint32(len(info.QueueFamilyIndices)),
		PQueueFamilyIndices:   info.QueueFamilyIndices,
		PreTransform:          vkgo.SurfaceTransformFlagBits(info.PreTransform),
		CompositeAlpha:        vkgo.CompositeAlphaFlagBits(info.CompositeAlpha),
		PresentMode:           vkgo.PresentMode(info.PresentMode),
		Clipped:               bool32(info.Clipped),
		OldSwapchain:          handle[vkgo.Swapchain](info.OldSwapchain),
	}
}

func extent2D(e vkgo.Extent2D) vk.Extent2D {
	e.Deref()
	return vk.Extent2D{Width: e.Width, Height: e.Height}
}

func surfaceCapabilities(c *vkgo.SurfaceCapabilities) vk.SurfaceCapabilities {
	c.Deref()
	return vk.SurfaceCapabilities{
		MinImageCount:           c.MinImageCount,
		MaxImageCount:           c.MaxImageCount,
		CurrentExtent:           extent2D(c.CurrentExtent),
		MinImageExtent:          extent2D(c.MinImageExtent),
		MaxImageExtent:          extent2D(c.MaxImageExtent),
		MaxImageArrayLayers:     c.MaxImageArrayLayers,
		SupportedTransforms:     vk.SurfaceTransformFlags(c.SupportedTransforms),
		CurrentTransform:        vk.SurfaceTransformFlags(c.CurrentTransform),
		SupportedCompositeAlpha: vk.CompositeAlphaFlags(c.SupportedCompositeAlpha),
		SupportedUsageFlags:     vk.ImageUsageFlags(c.SupportedUsageFlags),
	}
}

func physicalDeviceProperties(p *vkgo.PhysicalDeviceProperties) vk.PhysicalDeviceProperties {
	p.Deref()
	return vk.PhysicalDeviceProperties{
		APIVersion:        vk.Version(p.ApiVersion),
		DriverVersion:     p.DriverVersion,
		VendorID:          p.VendorID,
		DeviceID:          p.DeviceID,
		DeviceType:        vk.PhysicalDeviceType(p.DeviceType),
		DeviceName:        vk.ToString(p.DeviceName[:]),
		PipelineCacheUUID: p.PipelineCacheUUID,
	}
}

func memoryProperties(p *vkgo.PhysicalDeviceMemoryProperties) vk.PhysicalDeviceMemoryProperties {
	p.Deref()
	types := make([]vk.MemoryType, min(p.MemoryTypeCount, vk.MaxMemoryTypes))
	for i := range types {
		t := p.MemoryTypes[i]
		t.Deref()
		types[i] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyFlags(t.PropertyFlags), HeapIndex: t.HeapIndex}
	}
	heaps := make([]vk.MemoryHeap, min(p.MemoryHeapCount, vk.MaxMemoryHeaps))
	for i := range heaps {
		h := p.MemoryHeaps[i]
		h.Deref()
		heaps[i] = vk.MemoryHeap{Size: vk.DeviceSize(h.Size), Flags: vk.MemoryHeapFlags(h.Flags)}
	}
	return vk.PhysicalDeviceMemoryProperties{MemoryTypes: types, MemoryHeaps: heaps}
}

func memoryRequirements(r *vkgo.MemoryRequirements) vk.MemoryRequirements {
	r.Deref()
	return vk.MemoryRequirements{
		Size:           vk.DeviceSize(r.Size),
		Alignment:      vk.DeviceSize(r.Alignment),
		MemoryTypeBits: r.MemoryTypeBits,
	}
}
