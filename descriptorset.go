package vkgl

import (
	"log/slog"

	"github.com/celer/vkgl/vk"
)

// DescriptorSet is a binding of resources to a descriptor, per a specific
// DescriptorSetLayout. Writes are queued with the Add methods and applied
// with Write.
type DescriptorSet struct {
	DescriptorPool  *DescriptorPool
	VKDescriptorSet vk.DescriptorSet
	Writes          []vk.WriteDescriptorSet
}

// Device returns the device the set's pool belongs to.
func (du *DescriptorSet) Device() *Device {
	return du.DescriptorPool.Device
}

// AddBuffer adds a specific buffer to this descriptor set
func (du *DescriptorSet) AddBuffer(dstBinding int, dtype vk.DescriptorType, b *Buffer, offset uint64) *DescriptorSet {
	du.Writes = append(du.Writes, vk.WriteDescriptorSet{
		DstBinding:     uint32(dstBinding),
		DescriptorType: dtype,
		BufferInfo:     []vk.DescriptorBufferInfo{b.DescriptorInfo(offset)},
	})
	return du
}

// AddCombinedImageSampler adds an image layout, image view and sampler to support displaying a texture
func (du *DescriptorSet) AddCombinedImageSampler(dstBinding int, layout vk.ImageLayout, imageView *ImageView, sampler *Sampler) *DescriptorSet {
	du.Writes = append(du.Writes, vk.WriteDescriptorSet{
		DstBinding:     uint32(dstBinding),
		DescriptorType: vk.DescriptorTypeCombinedImageSampler,
		ImageInfo: []vk.DescriptorImageInfo{{
			Sampler:     sampler.VKSampler,
			ImageView:   imageView.VKImageView,
			ImageLayout: layout,
		}},
	})
	return du
}

// AddStorageImage adds an image view a shader reads and writes directly.
func (du *DescriptorSet) AddStorageImage(dstBinding int, imageView *ImageView) *DescriptorSet {
	du.Writes = append(du.Writes, vk.WriteDescriptorSet{
		DstBinding:     uint32(dstBinding),
		DescriptorType: vk.DescriptorTypeStorageImage,
		ImageInfo: []vk.DescriptorImageInfo{{
			ImageView:   imageView.VKImageView,
			ImageLayout: vk.ImageLayoutGeneral,
		}},
	})
	return du
}

// Write applies the queued writes to the descriptor set and clears them.
func (du *DescriptorSet) Write() {
	if len(du.Writes) == 0 {
		return
	}
	for i := range du.Writes {
		du.Writes[i].DstSet = du.VKDescriptorSet
	}
	d := du.Device()
	d.Commands.UpdateDescriptorSets(d.VKDevice, du.Writes)
	du.Writes = nil
}

// Destroy frees the set back to its pool. A failed free is logged and
// the set keeps its handle.
func (du *DescriptorSet) Destroy() {
	if err := du.DescriptorPool.Free(du); err != nil {
		slog.Error("freeing descriptor set", "set", uint64(du.VKDescriptorSet), "err", err)
	}
}
