package vkgl

import "github.com/celer/vkgl/vk"

type Sampler struct {
	Device    *Device
	VKSampler vk.Sampler
}

// CreateSampler creates a sampler using the same filter for magnification
// and minification and the same address mode on every axis.
func (d *Device) CreateSampler(filter vk.Filter, addressMode vk.SamplerAddressMode) (*Sampler, error) {
	return d.CreateSamplerWithOptions(&vk.SamplerCreateInfo{
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapMode:   vk.SamplerMipmapModeLinear,
		AddressModeU: addressMode,
		AddressModeV: addressMode,
		AddressModeW: addressMode,
		CompareOp:    vk.CompareOpAlways,
		BorderColor:  vk.BorderColorIntOpaqueBlack,
	})
}

func (d *Device) CreateSamplerWithOptions(info *vk.SamplerCreateInfo) (*Sampler, error) {
	var sampler vk.Sampler
	if err := vk.Error(d.Commands.CreateSampler(d.VKDevice, info, &sampler)); err != nil {
		return nil, err
	}
	return &Sampler{Device: d, VKSampler: sampler}, nil
}

func (s *Sampler) Destroy() {
	if s.VKSampler == vk.NullSampler {
		return
	}
	s.Device.Commands.DestroySampler(s.Device.VKDevice, s.VKSampler)
	s.VKSampler = vk.NullSampler
}
