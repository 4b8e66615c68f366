package vkgl

import (
	"github.com/celer/vkgl/vk"
)

type PipelineCache struct {
	Device          *Device
	VKPipelineCache vk.PipelineCache
}

func (d *Device) CreatePipelineCache() (*PipelineCache, error) {
	return d.CreatePipelineCacheWithData(nil)
}

// CreatePipelineCacheWithData seeds the cache with data previously returned
// by PipelineCache.Data.
func (d *Device) CreatePipelineCacheWithData(data []byte) (*PipelineCache, error) {
	var pipelineCache vk.PipelineCache
	err := vk.Error(d.Commands.CreatePipelineCache(d.VKDevice, &vk.PipelineCacheCreateInfo{InitialData: data}, &pipelineCache))
	if err != nil {
		return nil, err
	}

	var ret PipelineCache
	ret.Device = d
	ret.VKPipelineCache = pipelineCache
	return &ret, nil
}

// Data returns the serialized cache contents.
func (p *PipelineCache) Data() ([]byte, error) {
	d := p.Device
	for {
		var size uint
		if err := vk.Error(d.Commands.GetPipelineCacheData(d.VKDevice, p.VKPipelineCache, &size, nil)); err != nil {
			return nil, err
		}
		if size == 0 {
			return nil, nil
		}
		data := make([]byte, size)
		r := d.Commands.GetPipelineCacheData(d.VKDevice, p.VKPipelineCache, &size, data)
		if r == vk.Incomplete {
			continue
		}
		if err := vk.Error(r); err != nil {
			return nil, err
		}
		return data[:size], nil
	}
}

func (p *PipelineCache) Destroy() {
	if p.VKPipelineCache == vk.NullPipelineCache {
		return
	}
	p.Device.Commands.DestroyPipelineCache(p.Device.VKDevice, p.VKPipelineCache)
	p.VKPipelineCache = vk.NullPipelineCache
}
