package vkgl

import (
	"unsafe"

	"github.com/celer/vkgl/vk"
)

// Destroyer is implemented by every wrapper that owns a native handle.
type Destroyer interface {
	Destroy()
}

// DestroyAny is a utility function which given an item will try to
// figure out how to destroy it. Raw handles are destroyed with this device.
func (d *Device) DestroyAny(i interface{}) {
	c := d.Commands
	switch t := i.(type) {
	case Destroyer:
		t.Destroy()
	case vk.ImageView:
		c.DestroyImageView(d.VKDevice, t)
	case vk.Sampler:
		c.DestroySampler(d.VKDevice, t)
	case vk.DescriptorPool:
		c.DestroyDescriptorPool(d.VKDevice, t)
	case vk.DescriptorSetLayout:
		c.DestroyDescriptorSetLayout(d.VKDevice, t)
	case vk.Buffer:
		c.DestroyBuffer(d.VKDevice, t)
	case vk.Image:
		c.DestroyImage(d.VKDevice, t)
	case vk.Pipeline:
		c.DestroyPipeline(d.VKDevice, t)
	case vk.PipelineCache:
		c.DestroyPipelineCache(d.VKDevice, t)
	case vk.PipelineLayout:
		c.DestroyPipelineLayout(d.VKDevice, t)
	case vk.Fence:
		c.DestroyFence(d.VKDevice, t)
	case vk.Semaphore:
		c.DestroySemaphore(d.VKDevice, t)
	case vk.ShaderModule:
		c.DestroyShaderModule(d.VKDevice, t)
	case vk.RenderPass:
		c.DestroyRenderPass(d.VKDevice, t)
	case vk.Framebuffer:
		c.DestroyFramebuffer(d.VKDevice, t)
	case vk.CommandPool:
		c.DestroyCommandPool(d.VKDevice, t)
	case vk.DeviceMemory:
		c.FreeMemory(d.VKDevice, t)
	}
}

// ToBytes will take an unsafe.Pointer and length in bytes and convert it
// to a byte slice
func ToBytes(ptr unsafe.Pointer, lenInBytes int) []byte {
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), lenInBytes)
}

// enumerate runs the count-then-fill idiom used by every Vulkan list query.
// The fill call is retried when the driver answers Incomplete, which means
// the list grew between the two calls.
func enumerate[T any](call func(count *uint32, out []T) vk.Result) ([]T, error) {
	for {
		var count uint32
		if err := vk.Error(call(&count, nil)); err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, nil
		}
		out := make([]T, count)
		r := call(&count, out)
		if r == vk.Incomplete {
			continue
		}
		if err := vk.Error(r); err != nil {
			return nil, err
		}
		return out[:count], nil
	}
}
