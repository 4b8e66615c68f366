package vkgl

import (
	"fmt"

	"github.com/celer/vkgl/vk"
)

// Device is a logical device. Commands is the device-level dispatch table
// every child object calls through.
type Device struct {
	PhysicalDevice *PhysicalDevice
	VKDevice       vk.Device
	Commands       vk.DeviceCommands
}

func (d *Device) Destroy() {
	if d.VKDevice == vk.NullDevice {
		return
	}
	d.Commands.DestroyDevice(d.VKDevice)
	d.VKDevice = vk.NullDevice
}

func (d *Device) String() string {
	return fmt.Sprintf("{ PhysicalDevice: %s }", d.PhysicalDevice)
}

// WaitIdle blocks until all queues of the device are idle.
func (d *Device) WaitIdle() error {
	return vk.Error(d.Commands.DeviceWaitIdle(d.VKDevice))
}

// GetQueue returns the first queue of a family the device was created with.
func (d *Device) GetQueue(qf *QueueFamily) *Queue {
	return d.GetQueueAt(qf, 0)
}

func (d *Device) GetQueueAt(qf *QueueFamily, index int) *Queue {
	var vkq vk.Queue
	d.Commands.GetDeviceQueue(d.VKDevice, uint32(qf.Index), uint32(index), &vkq)

	var queue Queue
	queue.QueueFamily = qf
	queue.Device = d
	queue.VKQueue = vkq

	return &queue
}

// Allocate allocates device memory from the first memory type allowed by
// memoryTypeBits that has the requested properties.
func (d *Device) Allocate(sizeInBytes uint64, memoryTypeBits uint32, memoryProperties vk.MemoryPropertyFlags) (*DeviceMemory, error) {
	typeIndex, err := d.PhysicalDevice.FindMemoryType(memoryTypeBits, memoryProperties)
	if err != nil {
		return nil, err
	}

	allocateInfo := vk.MemoryAllocateInfo{
		AllocationSize:  vk.DeviceSize(sizeInBytes),
		MemoryTypeIndex: typeIndex,
	}

	var deviceMemory vk.DeviceMemory
	err = vk.Error(d.Commands.AllocateMemory(d.VKDevice, &allocateInfo, &deviceMemory))
	if err != nil {
		return nil, fmt.Errorf("allocating %d bytes: %w", sizeInBytes, err)
	}

	var ret DeviceMemory
	ret.Size = sizeInBytes
	ret.Device = d
	ret.VKDeviceMemory = deviceMemory
	ret.MemoryTypeIndex = typeIndex

	return &ret, nil
}

// AllocateForBuffer allocates memory large enough for b, honouring its
// memory requirements. The memory is not bound.
func (d *Device) AllocateForBuffer(b *Buffer, memoryProperties vk.MemoryPropertyFlags) (*DeviceMemory, error) {
	mr := b.MemoryRequirements()
	return d.Allocate(uint64(mr.Size), mr.MemoryTypeBits, memoryProperties)
}

// AllocateForImage is AllocateForBuffer for images.
func (d *Device) AllocateForImage(i *Image, memoryProperties vk.MemoryPropertyFlags) (*DeviceMemory, error) {
	mr := i.MemoryRequirements()
	return d.Allocate(uint64(mr.Size), mr.MemoryTypeBits, memoryProperties)
}

// FlushMappedRanges makes host writes to non-coherent memory visible to the device.
func (d *Device) FlushMappedRanges(ranges ...vk.MappedMemoryRange) error {
	return vk.Error(d.Commands.FlushMappedMemoryRanges(d.VKDevice, ranges))
}

// InvalidateMappedRanges makes device writes to non-coherent memory visible to the host.
func (d *Device) InvalidateMappedRanges(ranges ...vk.MappedMemoryRange) error {
	return vk.Error(d.Commands.InvalidateMappedMemoryRanges(d.VKDevice, ranges))
}
