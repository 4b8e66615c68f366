package vkgl

import (
	"github.com/celer/vkgl/vk"
)

// DescriptorSetLayout describes the layout of a descriptorset
type DescriptorSetLayout struct {
	Device                *Device
	VKDescriptorSetLayout vk.DescriptorSetLayout
	Bindings              []vk.DescriptorSetLayoutBinding
}

func (d *Device) NewDescriptorSetLayout() *DescriptorSetLayout {
	return &DescriptorSetLayout{Device: d}
}

// AddBinding adds a binding to the descriptor set
func (d *DescriptorSetLayout) AddBinding(binding vk.DescriptorSetLayoutBinding) *DescriptorSetLayout {
	d.Bindings = append(d.Bindings, binding)
	return d
}

// Destroy destroys this descriptor set layout
func (d *DescriptorSetLayout) Destroy() {
	if d.VKDescriptorSetLayout == vk.NullDescriptorSetLayout {
		return
	}
	d.Device.Commands.DestroyDescriptorSetLayout(d.Device.VKDevice, d.VKDescriptorSetLayout)
	d.VKDescriptorSetLayout = vk.NullDescriptorSetLayout
}

// CreateDescriptorSetLayout creates the native layout from the bindings
// added to layout.
func (d *Device) CreateDescriptorSetLayout(layout *DescriptorSetLayout) (*DescriptorSetLayout, error) {
	info := &vk.DescriptorSetLayoutCreateInfo{Bindings: layout.Bindings}

	var descriptorSetLayout vk.DescriptorSetLayout
	err := vk.Error(d.Commands.CreateDescriptorSetLayout(d.VKDevice, info, &descriptorSetLayout))
	if err != nil {
		return nil, err
	}

	layout.Device = d
	layout.VKDescriptorSetLayout = descriptorSetLayout

	return layout, nil
}
