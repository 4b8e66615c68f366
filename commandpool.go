package vkgl

import (
	"fmt"

	"github.com/celer/vkgl/vk"
)

type CommandPool struct {
	Device        *Device
	QueueFamily   *QueueFamily
	VKCommandPool vk.CommandPool
}

func (c *CommandPool) Destroy() {
	if c.VKCommandPool == vk.NullCommandPool {
		return
	}
	c.Device.Commands.DestroyCommandPool(c.Device.VKDevice, c.VKCommandPool)
	c.VKCommandPool = vk.NullCommandPool
}

func (c *CommandPool) AllocateBuffers(count int, level vk.CommandBufferLevel) ([]*CommandBuffer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("vkgl: allocating %d command buffers", count)
	}
	info := vk.CommandBufferAllocateInfo{
		CommandPool:        c.VKCommandPool,
		Level:              level,
		CommandBufferCount: uint32(count),
	}

	cmdBuffers := make([]vk.CommandBuffer, count)
	err := vk.Error(c.Device.Commands.AllocateCommandBuffers(c.Device.VKDevice, &info, cmdBuffers))
	if err != nil {
		return nil, err
	}

	ret := make([]*CommandBuffer, count)
	for i := range ret {
		ret[i] = &CommandBuffer{CommandPool: c, VKCommandBuffer: cmdBuffers[i]}
	}

	return ret, nil
}

func (c *CommandPool) AllocateBuffer(level vk.CommandBufferLevel) (*CommandBuffer, error) {
	ret, err := c.AllocateBuffers(1, level)
	if err != nil {
		return nil, err
	}
	return ret[0], nil
}

// FreeBuffers returns command buffers to the pool. Buffers already freed
// are skipped.
func (c *CommandPool) FreeBuffers(bs []*CommandBuffer) {
	b := make([]vk.CommandBuffer, 0, len(bs))
	for _, cb := range bs {
		if cb.VKCommandBuffer != vk.NullCommandBuffer {
			b = append(b, cb.VKCommandBuffer)
			cb.VKCommandBuffer = vk.NullCommandBuffer
		}
	}
	if len(b) == 0 {
		return
	}
	c.Device.Commands.FreeCommandBuffers(c.Device.VKDevice, c.VKCommandPool, b)
}

func (c *CommandPool) FreeBuffer(b *CommandBuffer) {
	c.FreeBuffers([]*CommandBuffer{b})
}

// Reset recycles every command buffer allocated from the pool, optionally
// releasing their resources back to the system.
func (c *CommandPool) Reset(release bool) error {
	var flags vk.CommandPoolResetFlags
	if release {
		flags = vk.CommandPoolResetReleaseResourcesBit
	}
	return vk.Error(c.Device.Commands.ResetCommandPool(c.Device.VKDevice, c.VKCommandPool, flags))
}

// CreateCommandPool creates a pool whose buffers can be reset individually.
func (d *Device) CreateCommandPool(q *QueueFamily) (*CommandPool, error) {
	return d.CreateCommandPoolWithFlags(q, vk.CommandPoolCreateResetCommandBufferBit|vk.CommandPoolCreateTransientBit)
}

func (d *Device) CreateCommandPoolWithFlags(q *QueueFamily, flags vk.CommandPoolCreateFlags) (*CommandPool, error) {
	info := vk.CommandPoolCreateInfo{
		Flags:            flags,
		QueueFamilyIndex: uint32(q.Index),
	}

	var commandPool vk.CommandPool
	err := vk.Error(d.Commands.CreateCommandPool(d.VKDevice, &info, &commandPool))
	if err != nil {
		return nil, err
	}

	var ret CommandPool
	ret.Device = d
	ret.QueueFamily = q
	ret.VKCommandPool = commandPool

	return &ret, nil
}
