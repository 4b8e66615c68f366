package vkgl

import (
	"github.com/celer/vkgl/vk"
)

// Buffer are used to map hunks of data that are then bound to resources used by the pipeline
// and command buffers to render data.
type Buffer struct {
	Device   *Device
	VKBuffer vk.Buffer
	Size     uint64
}

func (d *Device) CreateBuffer(sizeInBytes uint64) (*Buffer, error) {
	return d.CreateBufferWithOptions(sizeInBytes, vk.BufferUsageStorageBufferBit, vk.SharingModeExclusive)
}

func (d *Device) CreateBufferWithOptions(sizeInBytes uint64, usage vk.BufferUsageFlags, sharing vk.SharingMode) (*Buffer, error) {
	bufferCreateInfo := vk.BufferCreateInfo{
		Size:        vk.DeviceSize(sizeInBytes),
		Usage:       usage,
		SharingMode: sharing,
	}

	var buffer vk.Buffer
	err := vk.Error(d.Commands.CreateBuffer(d.VKDevice, &bufferCreateInfo, &buffer))
	if err != nil {
		return nil, err
	}

	var ret Buffer
	ret.VKBuffer = buffer
	ret.Device = d
	ret.Size = sizeInBytes

	return &ret, nil
}

// CreateAndBindBufferAndMemory creates a buffer, allocates memory with the
// given properties for it and binds the two together.
func (d *Device) CreateAndBindBufferAndMemory(size uint64, usage vk.BufferUsageFlags, mprops vk.MemoryPropertyFlags, sharing vk.SharingMode) (*Buffer, *DeviceMemory, error) {
	buffer, err := d.CreateBufferWithOptions(size, usage, sharing)
	if err != nil {
		return nil, nil, err
	}
	memory, err := d.AllocateForBuffer(buffer, mprops)
	if err != nil {
		buffer.Destroy()
		return nil, nil, err
	}
	if err := buffer.Bind(memory, 0); err != nil {
		memory.Destroy()
		buffer.Destroy()
		return nil, nil, err
	}
	return buffer, memory, nil
}

// MemoryRequirements queries the size, alignment and memory types the
// buffer needs.
func (b *Buffer) MemoryRequirements() vk.MemoryRequirements {
	var memoryRequirements vk.MemoryRequirements
	b.Device.Commands.GetBufferMemoryRequirements(b.Device.VKDevice, b.VKBuffer, &memoryRequirements)
	return memoryRequirements
}

// DescriptorInfo describes the buffer from offset to its end for a
// descriptor write. An offset at or past the end leaves the range to the
// driver as vk.WholeSize.
func (b *Buffer) DescriptorInfo(offset uint64) vk.DescriptorBufferInfo {
	r := vk.WholeSize
	if offset < b.Size {
		r = vk.DeviceSize(b.Size - offset)
	}
	return vk.DescriptorBufferInfo{
		Buffer: b.VKBuffer,
		Offset: vk.DeviceSize(offset),
		Range:  r,
	}
}

func (b *Buffer) Bind(memory *DeviceMemory, offset uint64) error {
	return vk.Error(b.Device.Commands.BindBufferMemory(b.Device.VKDevice, b.VKBuffer, memory.VKDeviceMemory, vk.DeviceSize(offset)))
}

func (b *Buffer) Destroy() {
	if b.VKBuffer == vk.NullBuffer {
		return
	}
	b.Device.Commands.DestroyBuffer(b.Device.VKDevice, b.VKBuffer)
	b.VKBuffer = vk.NullBuffer
}
