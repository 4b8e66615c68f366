package vkgl

import (
	"errors"

	"github.com/celer/vkgl/vk"
)

// ComputePipeline is configured with SetShaderStage and SetPipelineLayout
// and then created with Device.CreateComputePipelines.
type ComputePipeline struct {
	Device     *Device
	VKPipeline vk.Pipeline
	Stage      vk.PipelineShaderStageCreateInfo
	Layout     *PipelineLayout
}

func (c *ComputePipeline) SetPipelineLayout(layout *PipelineLayout) {
	c.Layout = layout
}

func (c *ComputePipeline) SetShaderStage(entryPoint string, shaderModule *ShaderModule) {
	c.Stage = shaderModule.StageCreateInfo(vk.ShaderStageComputeBit, entryPoint)
}

// CreateComputePipelines creates every pipeline in one call. pc may be nil.
func (d *Device) CreateComputePipelines(pc *PipelineCache, cp ...*ComputePipeline) error {
	ci := make([]vk.ComputePipelineCreateInfo, len(cp))
	for i, p := range cp {
		if p.Layout == nil {
			return errors.New("vkgl: compute pipeline has no layout")
		}
		ci[i] = vk.ComputePipelineCreateInfo{
			Stage:             p.Stage,
			Layout:            p.Layout.VKPipelineLayout,
			BasePipelineIndex: -1,
		}
	}

	cache := vk.NullPipelineCache
	if pc != nil {
		cache = pc.VKPipelineCache
	}

	pipelines := make([]vk.Pipeline, len(cp))
	err := vk.Error(d.Commands.CreateComputePipelines(d.VKDevice, cache, ci, pipelines))
	if err != nil {
		return err
	}

	for i := range pipelines {
		cp[i].Device = d
		cp[i].VKPipeline = pipelines[i]
	}
	return nil
}

func (c *ComputePipeline) Destroy() {
	if c.VKPipeline == vk.NullPipeline {
		return
	}
	c.Device.Commands.DestroyPipeline(c.Device.VKDevice, c.VKPipeline)
	c.VKPipeline = vk.NullPipeline
}
