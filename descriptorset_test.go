package vkgl

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
)

func TestDescriptorSets(t *testing.T) {
	drv, device := newTestDevice(t)

	layout, err := device.CreateDescriptorSetLayout(device.NewDescriptorSetLayout().
		AddBinding(vk.DescriptorSetLayoutBinding{
			Binding:         0,
			DescriptorType:  vk.DescriptorTypeStorageBuffer,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageComputeBit,
		}).
		AddBinding(vk.DescriptorSetLayoutBinding{
			Binding:         1,
			DescriptorType:  vk.DescriptorTypeStorageImage,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageComputeBit,
		}))
	require.NoError(t, err)
	linfo := args(t, drv, "CreateDescriptorSetLayout")[1].(vk.DescriptorSetLayoutCreateInfo)
	assert.Len(t, linfo.Bindings, 2)

	pool, err := device.CreateDescriptorPool(device.NewDescriptorPool().
		AddPoolSize(vk.DescriptorTypeStorageBuffer, 4).
		AddPoolSize(vk.DescriptorTypeStorageImage, 4), 4)
	require.NoError(t, err)
	pinfo := args(t, drv, "CreateDescriptorPool")[1].(vk.DescriptorPoolCreateInfo)
	assert.Equal(t, uint32(4), pinfo.MaxSets)
	assert.Equal(t, vk.DescriptorPoolCreateFreeDescriptorSetBit, pinfo.Flags)
	assert.Len(t, pinfo.PoolSizes, 2)

	set, err := pool.Allocate(layout)
	require.NoError(t, err)
	ainfo := args(t, drv, "AllocateDescriptorSets")[1].(vk.DescriptorSetAllocateInfo)
	assert.Equal(t, []vk.DescriptorSetLayout{layout.VKDescriptorSetLayout}, ainfo.SetLayouts)
	assert.Same(t, device, set.Device())

	buffer, err := device.CreateBuffer(512)
	require.NoError(t, err)
	image, err := device.CreateImage(vk.Extent2D{Width: 8, Height: 8}, vk.FormatR8g8b8a8Unorm, vk.ImageTilingOptimal, vk.ImageUsageStorageBit)
	require.NoError(t, err)
	view, err := image.CreateImageView()
	require.NoError(t, err)

	set.AddBuffer(0, vk.DescriptorTypeStorageBuffer, buffer, 0).AddStorageImage(1, view)
	set.Write()
	assert.Empty(t, set.Writes)

	writes := args(t, drv, "UpdateDescriptorSets")[1].([]vk.WriteDescriptorSet)
	require.Len(t, writes, 2)
	assert.Equal(t, set.VKDescriptorSet, writes[0].DstSet)
	assert.Equal(t, set.VKDescriptorSet, writes[1].DstSet)
	assert.Equal(t, uint32(1), writes[0].DescriptorCount())
	assert.Equal(t, vk.DeviceSize(512), writes[0].BufferInfo[0].Range)
	assert.Equal(t, uint32(1), writes[1].DstBinding)
	assert.Equal(t, vk.ImageLayoutGeneral, writes[1].ImageInfo[0].ImageLayout)
	assert.Equal(t, uint32(1), writes[1].DescriptorCount())

	// nothing queued, nothing written
	set.Write()
	assert.Equal(t, 1, drv.Count("UpdateDescriptorSets"))

	set.Destroy()
	set.Destroy()
	assert.Equal(t, 1, drv.Count("FreeDescriptorSets"))

	pool.Destroy()
	layout.Destroy()
	layout.Destroy()
	assert.Zero(t, drv.Live("DescriptorPool"))
	assert.Zero(t, drv.Live("DescriptorSetLayout"))
}

func TestAllocateSetsAndReset(t *testing.T) {
	drv, device := newTestDevice(t)
	layout, err := device.CreateDescriptorSetLayout(device.NewDescriptorSetLayout())
	require.NoError(t, err)
	pool, err := device.CreateDescriptorPool(device.NewDescriptorPool().AddPoolSize(vk.DescriptorTypeUniformBuffer, 2), 2)
	require.NoError(t, err)

	sets, err := pool.AllocateSets(layout, layout)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.NotEqual(t, sets[0].VKDescriptorSet, sets[1].VKDescriptorSet)

	require.NoError(t, pool.Free(sets...))
	assert.Equal(t, vk.NullDescriptorSet, sets[0].VKDescriptorSet)
	require.NoError(t, pool.Free(sets...))
	assert.Equal(t, 1, drv.Count("FreeDescriptorSets"))

	require.NoError(t, pool.Reset())
	assert.Equal(t, 1, drv.Count("ResetDescriptorPool"))

	drv.Results = map[string]vk.Result{"AllocateDescriptorSets": vk.ErrorOutOfPoolMemory}
	_, err = pool.Allocate(layout)
	assert.ErrorIs(t, err, vk.ErrorOutOfPoolMemory)
}

func TestCombinedImageSampler(t *testing.T) {
	drv, device := newTestDevice(t)
	layout, err := device.CreateDescriptorSetLayout(device.NewDescriptorSetLayout())
	require.NoError(t, err)
	pool, err := device.CreateDescriptorPool(device.NewDescriptorPool().AddPoolSize(vk.DescriptorTypeCombinedImageSampler, 1), 1)
	require.NoError(t, err)
	set, err := pool.Allocate(layout)
	require.NoError(t, err)

	image, err := device.CreateImage(vk.Extent2D{Width: 8, Height: 8}, vk.FormatR8g8b8a8Unorm, vk.ImageTilingOptimal, vk.ImageUsageSampledBit)
	require.NoError(t, err)
	view, err := image.CreateImageView()
	require.NoError(t, err)
	sampler, err := device.CreateSampler(vk.FilterLinear, vk.SamplerAddressModeRepeat)
	require.NoError(t, err)

	set.AddCombinedImageSampler(2, vk.ImageLayoutShaderReadOnlyOptimal, view, sampler).Write()
	writes := args(t, drv, "UpdateDescriptorSets")[1].([]vk.WriteDescriptorSet)
	require.Len(t, writes, 1)
	assert.Equal(t, vk.DescriptorTypeCombinedImageSampler, writes[0].DescriptorType)
	assert.Equal(t, vk.DescriptorImageInfo{
		Sampler:     sampler.VKSampler,
		ImageView:   view.VKImageView,
		ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
	}, writes[0].ImageInfo[0])
}

func TestDescriptorSetDestroyLogsFreeError(t *testing.T) {
	drv, device := newTestDevice(t)
	layout, err := device.CreateDescriptorSetLayout(device.NewDescriptorSetLayout())
	require.NoError(t, err)
	pool, err := device.CreateDescriptorPool(device.NewDescriptorPool().AddPoolSize(vk.DescriptorTypeStorageBuffer, 1), 1)
	require.NoError(t, err)
	set, err := pool.Allocate(layout)
	require.NoError(t, err)
	h := set.VKDescriptorSet

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	drv.Results = map[string]vk.Result{"FreeDescriptorSets": vk.ErrorOutOfHostMemory}
	set.Destroy()
	assert.Equal(t, h, set.VKDescriptorSet)
	assert.Contains(t, logs.String(), "freeing descriptor set")
	assert.Contains(t, logs.String(), "VK_ERROR_OUT_OF_HOST_MEMORY")

	drv.Results = nil
	logs.Reset()
	set.Destroy()
	assert.Equal(t, vk.NullDescriptorSet, set.VKDescriptorSet)
	assert.Empty(t, logs.String())
}
