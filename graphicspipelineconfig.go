package vkgl

import (
	"errors"
	"fmt"

	"github.com/celer/vkgl/vk"
)

// VertexDescriptor describes how one vertex buffer binding is laid out.
type VertexDescriptor interface {
	GetBindingDescription() vk.VertexInputBindingDescription
	GetAttributeDescriptions() []vk.VertexInputAttributeDescription
}

// GraphicsPipelineConfig is a utility object to ease construction of graphics pipelines
type GraphicsPipelineConfig struct {
	Device       *Device
	ShaderStages []vk.PipelineShaderStageCreateInfo

	PipelineLayout *PipelineLayout

	// Configure is called as the last step of VKGraphicsPipelineCreateInfo
	// for anything the fields below do not cover.
	Configure func(info *vk.GraphicsPipelineCreateInfo)

	// PrimitiveTopology defaults to vk.PrimitiveTopologyTriangleList
	PrimitiveTopology      vk.PrimitiveTopology
	PrimitiveRestartEnable bool

	// PolygonMode defaults to vk.PolygonModeFill
	PolygonMode vk.PolygonMode

	// LineWidth of rasterized lines, defaults to 1.0
	LineWidth float32

	// CullMode defaults to vk.CullModeBackBit
	CullMode vk.CullModeFlags

	// FrontFace defaults to vk.FrontFaceCounterClockwise
	FrontFace vk.FrontFace

	// DynamicState lists the state set with command buffer commands
	// instead of baked into the pipeline. Defaults to none.
	DynamicState []vk.DynamicState

	// BlendAttachments defaults to a single attachment writing RGBA with
	// blending disabled.
	BlendAttachments []vk.PipelineColorBlendAttachmentState

	// DepthTestEnable defaults to true
	DepthTestEnable bool

	// DepthWriteEnable defaults to true
	DepthWriteEnable bool

	VertexInputBindingDescriptions   []vk.VertexInputBindingDescription
	VertexInputAttributeDescriptions []vk.VertexInputAttributeDescription

	// Viewport covers the whole extent when nil.
	Viewport *vk.Viewport

	toDestroy []Destroyer
}

// CreateGraphicsPipelineConfig creates a new config object
func (d *Device) CreateGraphicsPipelineConfig() *GraphicsPipelineConfig {
	return &GraphicsPipelineConfig{
		Device:            d,
		PrimitiveTopology: vk.PrimitiveTopologyTriangleList,
		PolygonMode:       vk.PolygonModeFill,
		LineWidth:         1.0,
		CullMode:          vk.CullModeBackBit,
		FrontFace:         vk.FrontFaceCounterClockwise,
		DepthTestEnable:   true,
		DepthWriteEnable:  true,
	}
}

// Destroy releases the shader modules loaded by AddShaderStageFromFile.
// Pipelines already created from the config stay valid.
func (g *GraphicsPipelineConfig) Destroy() {
	for _, d := range g.toDestroy {
		d.Destroy()
	}
	g.toDestroy = nil
}

// AddBlendAttachment adds a new blend attachment
func (g *GraphicsPipelineConfig) AddBlendAttachment(ba vk.PipelineColorBlendAttachmentState) *GraphicsPipelineConfig {
	g.BlendAttachments = append(g.BlendAttachments, ba)
	return g
}

func (g *GraphicsPipelineConfig) SetCullMode(mode vk.CullModeFlags) *GraphicsPipelineConfig {
	g.CullMode = mode
	return g
}

// SetDynamicState specifies which part of the pipeline may be changed with command buffer commands
func (g *GraphicsPipelineConfig) SetDynamicState(states ...vk.DynamicState) *GraphicsPipelineConfig {
	g.DynamicState = states
	return g
}

// AddShaderStageFromFile loads a SPIR-V file as one stage. The module is
// destroyed with the config.
func (g *GraphicsPipelineConfig) AddShaderStageFromFile(file, entryPoint string, stage vk.ShaderStageFlags) error {
	shader, err := g.Device.LoadShaderModuleFromFile(file)
	if err != nil {
		return err
	}
	g.AddShaderStage(shader, entryPoint, stage)
	g.toDestroy = append(g.toDestroy, shader)
	return nil
}

// AddShaderStage adds a stage from a module the caller keeps ownership of.
func (g *GraphicsPipelineConfig) AddShaderStage(shader *ShaderModule, entryPoint string, stage vk.ShaderStageFlags) *GraphicsPipelineConfig {
	g.ShaderStages = append(g.ShaderStages, shader.StageCreateInfo(stage, entryPoint))
	return g
}

func (g *GraphicsPipelineConfig) SetPipelineLayout(layout *PipelineLayout) *GraphicsPipelineConfig {
	g.PipelineLayout = layout
	return g
}

// SetShaderStages sets the shader stages directly
func (g *GraphicsPipelineConfig) SetShaderStages(shaderStages []vk.PipelineShaderStageCreateInfo) *GraphicsPipelineConfig {
	g.ShaderStages = shaderStages
	return g
}

// AddVertexDescriptor appends the binding and attributes of v.
func (g *GraphicsPipelineConfig) AddVertexDescriptor(v VertexDescriptor) *GraphicsPipelineConfig {
	g.VertexInputBindingDescriptions = append(g.VertexInputBindingDescriptions, v.GetBindingDescription())
	g.VertexInputAttributeDescriptions = append(g.VertexInputAttributeDescriptions, v.GetAttributeDescriptions()...)
	return g
}

// VKGraphicsPipelineCreateInfo builds the create info for a pipeline
// rendering into extent. The render pass is filled in by
// Device.CreateGraphicsPipelines.
func (g *GraphicsPipelineConfig) VKGraphicsPipelineCreateInfo(extent vk.Extent2D) (vk.GraphicsPipelineCreateInfo, error) {
	if len(g.ShaderStages) == 0 {
		return vk.GraphicsPipelineCreateInfo{}, errors.New("vkgl: graphics pipeline has no shader stages")
	}
	if g.PipelineLayout == nil {
		return vk.GraphicsPipelineCreateInfo{}, errors.New("vkgl: graphics pipeline has no layout")
	}

	viewport := vk.Viewport{
		Width:    float32(extent.Width),
		Height:   float32(extent.Height),
		MaxDepth: 1.0,
	}
	if g.Viewport != nil {
		viewport = *g.Viewport
	}

	blendAttachments := g.BlendAttachments
	if blendAttachments == nil {
		blendAttachments = []vk.PipelineColorBlendAttachmentState{{
			ColorWriteMask: vk.ColorComponentRBit | vk.ColorComponentGBit | vk.ColorComponentBBit | vk.ColorComponentABit,
		}}
	}

	info := vk.GraphicsPipelineCreateInfo{
		Stages: g.ShaderStages,
		VertexInputState: &vk.PipelineVertexInputStateCreateInfo{
			VertexBindingDescriptions:   g.VertexInputBindingDescriptions,
			VertexAttributeDescriptions: g.VertexInputAttributeDescriptions,
		},
		InputAssemblyState: &vk.PipelineInputAssemblyStateCreateInfo{
			Topology:               g.PrimitiveTopology,
			PrimitiveRestartEnable: g.PrimitiveRestartEnable,
		},
		ViewportState: &vk.PipelineViewportStateCreateInfo{
			Viewports: []vk.Viewport{viewport},
			Scissors:  []vk.Rect2D{{Extent: extent}},
		},
		RasterizationState: &vk.PipelineRasterizationStateCreateInfo{
			PolygonMode: g.PolygonMode,
			CullMode:    g.CullMode,
			FrontFace:   g.FrontFace,
			LineWidth:   g.LineWidth,
		},
		MultisampleState: &vk.PipelineMultisampleStateCreateInfo{
			RasterizationSamples: vk.SampleCount1Bit,
		},
		DepthStencilState: &vk.PipelineDepthStencilStateCreateInfo{
			DepthTestEnable:  g.DepthTestEnable,
			DepthWriteEnable: g.DepthWriteEnable,
			DepthCompareOp:   vk.CompareOpLess,
			MaxDepthBounds:   1.0,
		},
		ColorBlendState: &vk.PipelineColorBlendStateCreateInfo{
			LogicOp:     vk.LogicOpCopy,
			Attachments: blendAttachments,
		},
		Layout:            g.PipelineLayout.VKPipelineLayout,
		BasePipelineIndex: -1,
	}
	if len(g.DynamicState) > 0 {
		info.DynamicState = &vk.PipelineDynamicStateCreateInfo{DynamicStates: g.DynamicState}
	}

	if g.Configure != nil {
		g.Configure(&info)
	}
	return info, nil
}

// GraphicsPipeline is a pipeline created from a GraphicsPipelineConfig.
type GraphicsPipeline struct {
	Device     *Device
	VKPipeline vk.Pipeline
	Layout     *PipelineLayout
}

// CreateGraphicsPipelines creates one pipeline per config for subpass 0 of
// renderPass, all in one call. pc may be nil.
func (d *Device) CreateGraphicsPipelines(pc *PipelineCache, renderPass *RenderPass, extent vk.Extent2D, configs ...*GraphicsPipelineConfig) ([]*GraphicsPipeline, error) {
	infos := make([]vk.GraphicsPipelineCreateInfo, len(configs))
	for i, g := range configs {
		info, err := g.VKGraphicsPipelineCreateInfo(extent)
		if err != nil {
			return nil, fmt.Errorf("pipeline %d: %w", i, err)
		}
		info.RenderPass = renderPass.VKRenderPass
		infos[i] = info
	}

	cache := vk.NullPipelineCache
	if pc != nil {
		cache = pc.VKPipelineCache
	}

	pipelines := make([]vk.Pipeline, len(infos))
	err := vk.Error(d.Commands.CreateGraphicsPipelines(d.VKDevice, cache, infos, pipelines))
	if err != nil {
		return nil, err
	}

	ret := make([]*GraphicsPipeline, len(pipelines))
	for i := range pipelines {
		ret[i] = &GraphicsPipeline{Device: d, VKPipeline: pipelines[i], Layout: configs[i].PipelineLayout}
	}
	return ret, nil
}

func (p *GraphicsPipeline) Destroy() {
	if p.VKPipeline == vk.NullPipeline {
		return
	}
	p.Device.Commands.DestroyPipeline(p.Device.VKDevice, p.VKPipeline)
	p.VKPipeline = vk.NullPipeline
}
