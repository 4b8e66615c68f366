package vkgl

import (
	"github.com/celer/vkgl/vk"
)

type PipelineLayout struct {
	Device           *Device
	VKPipelineLayout vk.PipelineLayout
}

func (p *PipelineLayout) Destroy() {
	if p.VKPipelineLayout == vk.NullPipelineLayout {
		return
	}
	p.Device.Commands.DestroyPipelineLayout(p.Device.VKDevice, p.VKPipelineLayout)
	p.VKPipelineLayout = vk.NullPipelineLayout
}

func (d *Device) CreatePipelineLayoutWithPushConstants(descriptorSetLayouts []*DescriptorSetLayout, pushConstants []vk.PushConstantRange) (*PipelineLayout, error) {
	l := make([]vk.DescriptorSetLayout, len(descriptorSetLayouts))
	for i, dsl := range descriptorSetLayouts {
		l[i] = dsl.VKDescriptorSetLayout
	}

	pipelineLayoutCreateInfo := vk.PipelineLayoutCreateInfo{
		SetLayouts:         l,
		PushConstantRanges: pushConstants,
	}

	var pipelineLayout vk.PipelineLayout
	err := vk.Error(d.Commands.CreatePipelineLayout(d.VKDevice, &pipelineLayoutCreateInfo, &pipelineLayout))
	if err != nil {
		return nil, err
	}

	var ret PipelineLayout
	ret.VKPipelineLayout = pipelineLayout
	ret.Device = d

	return &ret, nil
}

func (d *Device) CreatePipelineLayout(descriptorSetLayouts ...*DescriptorSetLayout) (*PipelineLayout, error) {
	return d.CreatePipelineLayoutWithPushConstants(descriptorSetLayouts, nil)
}
