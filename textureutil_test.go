package vkgl

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
	"github.com/celer/vkgl/vkgltest"
)

func newTestUpload(t *testing.T) (*vkgltest.Driver, *CommandBuffer, *Queue) {
	t.Helper()
	drv, cb := newTestCommandBuffer(t)
	families, err := cb.Device().PhysicalDevice.QueueFamilies()
	require.NoError(t, err)
	return drv, cb, cb.Device().GetQueue(families[0])
}

func testImage() image.Image {
	// Offset bounds force the conversion to a tightly packed RGBA image.
	img := image.NewNRGBA(image.Rect(10, 10, 12, 12))
	img.Set(10, 10, color.NRGBA{R: 255, A: 255})
	img.Set(11, 10, color.NRGBA{G: 255, A: 255})
	img.Set(10, 11, color.NRGBA{B: 255, A: 255})
	img.Set(11, 11, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	return img
}

func TestStageTexture(t *testing.T) {
	drv, cb, queue := newTestUpload(t)

	var staged []byte
	drv.OnCall = func(name string) {
		if name == "QueueSubmit" {
			bind := args(t, drv, "BindBufferMemory")
			staged = append([]byte(nil), drv.Memory(bind[2].(vk.DeviceMemory))...)
		}
	}

	img, mem, err := cb.Device().StageTexture(testImage(), cb, queue)
	require.NoError(t, err)
	drv.OnCall = nil

	assert.Equal(t, vk.FormatR8g8b8a8Unorm, img.VKFormat)
	assert.Equal(t, vk.Extent3D{Width: 2, Height: 2, Depth: 1}, img.Extent)
	assert.NotEqual(t, vk.NullDeviceMemory, mem.VKDeviceMemory)

	info := args(t, drv, "CreateImage")[1].(vk.ImageCreateInfo)
	assert.Equal(t, vk.ImageUsageTransferDstBit|vk.ImageUsageSampledBit, info.Usage)
	assert.Equal(t, vk.ImageTilingOptimal, info.Tiling)

	require.GreaterOrEqual(t, len(staged), 16)
	assert.Equal(t, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 1, 2, 3, 255,
	}, staged[:16])

	var layouts [][2]vk.ImageLayout
	for _, c := range drv.Calls() {
		if c.Name != "CmdPipelineBarrier" {
			continue
		}
		barriers := c.Args[len(c.Args)-1].([]vk.ImageMemoryBarrier)
		require.Len(t, barriers, 1)
		layouts = append(layouts, [2]vk.ImageLayout{barriers[0].OldLayout, barriers[0].NewLayout})
	}
	assert.Equal(t, [][2]vk.ImageLayout{
		{vk.ImageLayoutUndefined, vk.ImageLayoutTransferDstOptimal},
		{vk.ImageLayoutTransferDstOptimal, vk.ImageLayoutShaderReadOnlyOptimal},
	}, layouts)

	copyArgs := args(t, drv, "CmdCopyBufferToImage")
	assert.Equal(t, img.VKImage, copyArgs[2])
	assert.Equal(t, vk.ImageLayoutTransferDstOptimal, copyArgs[3])

	assert.Zero(t, drv.Live("Buffer"), "staging buffer is destroyed")
	assert.Zero(t, drv.Live("Fence"))
	assert.Equal(t, 1, drv.Live("DeviceMemory"))
	assert.Equal(t, 1, drv.Live("Image"))
}

func TestStageTextureTimeout(t *testing.T) {
	drv, cb, queue := newTestUpload(t)
	drv.Results = map[string]vk.Result{"WaitForFences": vk.Timeout}

	_, _, err := cb.Device().StageTexture(testImage(), cb, queue)
	require.ErrorIs(t, err, vk.Timeout)

	// the device is drained before the staging buffer goes away
	names := drv.Names()
	idle := slices.Index(names, "DeviceWaitIdle")
	require.GreaterOrEqual(t, idle, 0)
	assert.Greater(t, slices.Index(names, "DestroyBuffer"), idle)
	assert.Zero(t, drv.Live("Image"))
	assert.Zero(t, drv.Live("DeviceMemory"))
	assert.Zero(t, drv.Live("Buffer"))
}

func TestStageTextureErrors(t *testing.T) {
	drv, cb, queue := newTestUpload(t)

	_, _, err := cb.Device().StageTexture(image.NewRGBA(image.Rectangle{}), cb, queue)
	require.ErrorIs(t, err, vk.ErrorFormatNotSupported)

	drv.Results = map[string]vk.Result{"QueueSubmit": vk.ErrorDeviceLost}
	_, _, err = cb.Device().StageTexture(testImage(), cb, queue)
	require.ErrorIs(t, err, vk.ErrorDeviceLost)
	assert.Zero(t, drv.Live("Image"))
}

func TestStageTextureFromDisk(t *testing.T) {
	drv, cb, queue := newTestUpload(t)

	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	img, _, err := cb.Device().StageTextureFromDisk(path, cb, queue)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), img.Extent.Width)
	assert.Equal(t, 1, drv.Count("QueueSubmit"))

	_, _, err = cb.Device().StageTextureFromDisk(filepath.Join(t.TempDir(), "missing.png"), cb, queue)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	_, _, err = cb.Device().StageTextureFromDisk(bad, cb, queue)
	require.ErrorIs(t, err, image.ErrFormat)
}
