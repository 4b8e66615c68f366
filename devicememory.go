package vkgl

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/celer/vkgl/vk"
)

// DeviceMemory maps to Vulkan DeviceMemory and can either be memory on the host or on the device
type DeviceMemory struct {
	Device          *Device
	VKDeviceMemory  vk.DeviceMemory
	Size            uint64
	MemoryTypeIndex uint32
	MapCount        int32
	Ptr             unsafe.Pointer
}

// IsMapped returns true if the device memory is currently mapped
func (d *DeviceMemory) IsMapped() bool {
	return atomic.LoadInt32(&d.MapCount) > 0
}

// Destroy frees this memory
func (d *DeviceMemory) Destroy() {
	if d.VKDeviceMemory == vk.NullDeviceMemory {
		return
	}
	d.Device.Commands.FreeMemory(d.Device.VKDevice, d.VKDeviceMemory)
	d.VKDeviceMemory = vk.NullDeviceMemory
	d.Ptr = nil
}

// MapCopyUnmap will map this memory, copy the specified data to it and unmap
func (d *DeviceMemory) MapCopyUnmap(data []byte) error {
	if uint64(len(data)) > d.Size {
		return fmt.Errorf("copying %d bytes into %d bytes of device memory: %w", len(data), d.Size, vk.ErrorMemoryMapFailed)
	}
	if len(data) == 0 {
		return nil
	}
	pm, err := d.MapWithSize(len(data))
	if err != nil {
		return err
	}
	copy(ToBytes(pm, len(data)), data)
	d.Unmap()
	return nil
}

// MapWithOffset will map the memory with a certain size and offset
func (d *DeviceMemory) MapWithOffset(size uint64, offset uint64) (unsafe.Pointer, error) {
	var res unsafe.Pointer
	err := vk.Error(d.Device.Commands.MapMemory(d.Device.VKDevice, d.VKDeviceMemory, vk.DeviceSize(offset), vk.DeviceSize(size), 0, &res))
	if err != nil {
		return nil, err
	}
	atomic.AddInt32(&d.MapCount, 1)
	d.Ptr = res
	return res, nil
}

// Map will map the entirety of this memory
func (d *DeviceMemory) Map() (unsafe.Pointer, error) {
	return d.MapWithOffset(d.Size, 0)
}

// MapWithSize will map this memory starting at offset 0 with a particular size
func (d *DeviceMemory) MapWithSize(size int) (unsafe.Pointer, error) {
	return d.MapWithOffset(uint64(size), 0)
}

// Bytes returns the mapped memory as a byte slice, nil when not mapped.
func (d *DeviceMemory) Bytes() []byte {
	return ToBytes(d.Ptr, int(d.Size))
}

// Range describes a part of this memory for Device.FlushMappedRanges and
// Device.InvalidateMappedRanges.
func (d *DeviceMemory) Range(offset, size uint64) vk.MappedMemoryRange {
	return vk.MappedMemoryRange{Memory: d.VKDeviceMemory, Offset: vk.DeviceSize(offset), Size: vk.DeviceSize(size)}
}

// Unmap this memory. Unmapping memory that is not mapped does nothing.
func (d *DeviceMemory) Unmap() {
	if !d.IsMapped() {
		return
	}
	d.Ptr = nil
	d.Device.Commands.UnmapMemory(d.Device.VKDevice, d.VKDeviceMemory)
	atomic.AddInt32(&d.MapCount, -1)
}
