package vkgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
)

func TestCreateAndBindBufferAndMemory(t *testing.T) {
	drv, device := newTestDevice(t)

	buffer, memory, err := device.CreateAndBindBufferAndMemory(1000, vk.BufferUsageStorageBufferBit, hostMemory(), vk.SharingModeExclusive)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), buffer.Size)
	assert.Equal(t, uint64(1024), memory.Size)
	assert.Equal(t, uint32(1), memory.MemoryTypeIndex)

	assert.Equal(t, []string{
		"CreateBuffer",
		"GetBufferMemoryRequirements",
		"AllocateMemory",
		"BindBufferMemory",
	}, drv.Names())

	bind := args(t, drv, "BindBufferMemory")
	assert.Equal(t, buffer.VKBuffer, bind[1])
	assert.Equal(t, memory.VKDeviceMemory, bind[2])
	assert.Equal(t, vk.DeviceSize(0), bind[3])
}

func TestCreateAndBindBufferAndMemoryCleansUp(t *testing.T) {
	drv, device := newTestDevice(t)
	drv.Results = map[string]vk.Result{"BindBufferMemory": vk.ErrorOutOfDeviceMemory}

	_, _, err := device.CreateAndBindBufferAndMemory(64, vk.BufferUsageStorageBufferBit, hostMemory(), vk.SharingModeExclusive)
	assert.ErrorIs(t, err, vk.ErrorOutOfDeviceMemory)
	assert.Equal(t, 0, drv.Live("Buffer"))
	assert.Equal(t, 0, drv.Live("DeviceMemory"))
}

func TestAllocateWithoutMatchingType(t *testing.T) {
	drv, device := newTestDevice(t)
	_, err := device.Allocate(64, 0b001, vk.MemoryPropertyHostVisibleBit)
	assert.ErrorIs(t, err, ErrNoMemoryType)
	assert.Zero(t, drv.Count("AllocateMemory"))
}

func TestMapCopyUnmap(t *testing.T) {
	drv, device := newTestDevice(t)
	memory, err := device.Allocate(16, 0b111, hostMemory())
	require.NoError(t, err)

	require.NoError(t, memory.MapCopyUnmap([]byte{1, 2, 3, 4}))
	assert.False(t, memory.IsMapped())
	assert.Equal(t, []byte{1, 2, 3, 4}, drv.Memory(memory.VKDeviceMemory)[:4])
	assert.Equal(t, 1, drv.Count("UnmapMemory"))

	err = memory.MapCopyUnmap(make([]byte, 17))
	assert.ErrorIs(t, err, vk.ErrorMemoryMapFailed)
}

func TestMapBytes(t *testing.T) {
	drv, device := newTestDevice(t)
	memory, err := device.Allocate(8, 0b111, hostMemory())
	require.NoError(t, err)

	assert.Nil(t, memory.Bytes())
	_, err = memory.Map()
	require.NoError(t, err)
	assert.True(t, memory.IsMapped())

	b := memory.Bytes()
	require.Len(t, b, 8)
	b[7] = 0xff
	assert.Equal(t, byte(0xff), drv.Memory(memory.VKDeviceMemory)[7])

	require.NoError(t, device.FlushMappedRanges(memory.Range(0, 8)))
	ranges := args(t, drv, "FlushMappedMemoryRanges")[1].([]vk.MappedMemoryRange)
	assert.Equal(t, []vk.MappedMemoryRange{{Memory: memory.VKDeviceMemory, Size: 8}}, ranges)

	memory.Unmap()
	assert.False(t, memory.IsMapped())
	assert.Nil(t, memory.Bytes())
}

func TestMapFailure(t *testing.T) {
	drv, device := newTestDevice(t)
	memory, err := device.Allocate(8, 0b111, hostMemory())
	require.NoError(t, err)

	drv.Results = map[string]vk.Result{"MapMemory": vk.ErrorMemoryMapFailed}
	_, err = memory.Map()
	assert.ErrorIs(t, err, vk.ErrorMemoryMapFailed)
	assert.False(t, memory.IsMapped())
}

func TestDeviceMemoryDestroy(t *testing.T) {
	drv, device := newTestDevice(t)
	memory, err := device.Allocate(8, 0b111, hostMemory())
	require.NoError(t, err)
	h := uint64(memory.VKDeviceMemory)

	memory.Destroy()
	memory.Destroy()
	assert.Equal(t, 1, drv.Destroyed(h))
	assert.Equal(t, vk.NullDeviceMemory, memory.VKDeviceMemory)
}

func TestBufferDescriptorInfo(t *testing.T) {
	_, device := newTestDevice(t)
	buffer, err := device.CreateBuffer(256)
	require.NoError(t, err)

	info := buffer.DescriptorInfo(64)
	assert.Equal(t, buffer.VKBuffer, info.Buffer)
	assert.Equal(t, vk.DeviceSize(64), info.Offset)
	assert.Equal(t, vk.DeviceSize(192), info.Range)

	info = buffer.DescriptorInfo(256)
	assert.Equal(t, vk.DeviceSize(256), info.Offset)
	assert.Equal(t, vk.WholeSize, info.Range)

	info = buffer.DescriptorInfo(1024)
	assert.Equal(t, vk.WholeSize, info.Range)
}

func TestImageAndView(t *testing.T) {
	drv, device := newTestDevice(t)
	image, err := device.CreateImage(vk.Extent2D{Width: 16, Height: 16}, vk.FormatR8g8b8a8Unorm,
		vk.ImageTilingOptimal, vk.ImageUsageSampledBit|vk.ImageUsageTransferDstBit)
	require.NoError(t, err)

	info := args(t, drv, "CreateImage")[1].(vk.ImageCreateInfo)
	assert.Equal(t, vk.ImageType2d, info.ImageType)
	assert.Equal(t, uint32(1), info.Extent.Depth)
	assert.Equal(t, uint32(1), info.MipLevels)

	memory, err := device.AllocateForImage(image, vk.MemoryPropertyDeviceLocalBit)
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), memory.Size)
	require.NoError(t, image.Bind(memory, 0))

	view, err := image.CreateImageView()
	require.NoError(t, err)
	vinfo := args(t, drv, "CreateImageView")[1].(vk.ImageViewCreateInfo)
	assert.Equal(t, image.VKImage, vinfo.Image)
	assert.Equal(t, vk.FormatR8g8b8a8Unorm, vinfo.Format)
	assert.Equal(t, vk.ImageAspectColorBit, vinfo.SubresourceRange.AspectMask)

	sampler, err := device.CreateSampler(vk.FilterLinear, vk.SamplerAddressModeRepeat)
	require.NoError(t, err)

	for _, d := range []Destroyer{sampler, view, image, memory, sampler, view, image, memory} {
		d.Destroy()
	}
	for _, kind := range []string{"Sampler", "ImageView", "Image", "DeviceMemory"} {
		assert.Zero(t, drv.Live(kind), kind)
	}
	assert.Equal(t, 1, drv.Count("DestroyImage"))
}

func TestDestroyAny(t *testing.T) {
	drv, device := newTestDevice(t)
	buffer, err := device.CreateBuffer(16)
	require.NoError(t, err)
	fence, err := device.CreateFence()
	require.NoError(t, err)

	device.DestroyAny(buffer)
	device.DestroyAny(fence.VKFence)
	device.DestroyAny("not a handle")

	assert.Equal(t, 1, drv.Count("DestroyBuffer"))
	assert.Equal(t, 1, drv.Count("DestroyFence"))
	assert.Equal(t, vk.NullBuffer, buffer.VKBuffer)
}

func TestMapCopyUnmapEmpty(t *testing.T) {
	drv, device := newTestDevice(t)
	memory, err := device.Allocate(16, 0b111, hostMemory())
	require.NoError(t, err)

	require.NoError(t, memory.MapCopyUnmap(nil))
	require.NoError(t, memory.MapCopyUnmap([]byte{}))
	assert.Zero(t, drv.Count("MapMemory"))
	assert.Zero(t, drv.Count("UnmapMemory"))
	assert.False(t, memory.IsMapped())
}

func TestUnmapWhenNotMapped(t *testing.T) {
	drv, device := newTestDevice(t)
	memory, err := device.Allocate(16, 0b111, hostMemory())
	require.NoError(t, err)

	memory.Unmap()
	assert.Zero(t, drv.Count("UnmapMemory"))
	assert.Equal(t, int32(0), memory.MapCount)

	_, err = memory.Map()
	require.NoError(t, err)
	memory.Unmap()
	memory.Unmap()
	assert.Equal(t, 1, drv.Count("UnmapMemory"))
	assert.Equal(t, int32(0), memory.MapCount)
	assert.False(t, memory.IsMapped())
}
