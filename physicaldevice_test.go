package vkgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
	"github.com/celer/vkgl/vkgltest"
)

func newTestPhysicalDevice(t *testing.T) (*vkgltest.Driver, *PhysicalDevice) {
	t.Helper()
	drv := vkgltest.New()
	instance, err := (&App{Loader: drv}).CreateInstance()
	require.NoError(t, err)
	pdevices, err := instance.PhysicalDevices()
	require.NoError(t, err)
	require.NotEmpty(t, pdevices)
	return drv, pdevices[0]
}

func TestPhysicalDeviceProperties(t *testing.T) {
	drv, pd := newTestPhysicalDevice(t)

	props := pd.Properties()
	assert.Equal(t, "Fake GPU", props.DeviceName)
	assert.Equal(t, vk.PhysicalDeviceTypeDiscreteGpu, props.DeviceType)
	assert.Equal(t, "Fake GPU", pd.String())

	// properties are queried again each time
	drv.PhysicalDevices[0].Properties.DeviceName = "Renamed"
	assert.Equal(t, "Renamed", pd.Name())
	assert.Equal(t, 3, drv.Count("GetPhysicalDeviceProperties"))
}

func TestMemoryTypes(t *testing.T) {
	_, pd := newTestPhysicalDevice(t)
	types := pd.MemoryTypes()
	require.Len(t, types, 3)
	assert.Equal(t, 2, types.NumHostVisible())
	assert.Equal(t, 2, types.NumHostCoherent())
	assert.Equal(t, 2, types.NumHostVisibleAndCoherent())
	assert.Equal(t, 1, types.NumDeviceLocal())
	assert.Len(t, pd.MemoryProperties().MemoryHeaps, 2)
}

func TestFindMemoryType(t *testing.T) {
	_, pd := newTestPhysicalDevice(t)

	idx, err := pd.FindMemoryType(0b111, vk.MemoryPropertyDeviceLocalBit)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), idx)

	idx, err = pd.FindMemoryType(0b111, hostMemory())
	require.NoError(t, err)
	assert.Equal(t, uint32(1), idx)

	idx, err = pd.FindMemoryType(0b100, vk.MemoryPropertyHostVisibleBit)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), idx)

	_, err = pd.FindMemoryType(0b001, vk.MemoryPropertyHostVisibleBit)
	assert.ErrorIs(t, err, ErrNoMemoryType)
}

func TestQueueFamilies(t *testing.T) {
	drv, pd := newTestPhysicalDevice(t)
	families, err := pd.QueueFamilies()
	require.NoError(t, err)
	require.Len(t, families, 2)

	assert.Len(t, families.FilterCompute(), 1)
	assert.Len(t, families.FilterGraphics(), 1)
	assert.Len(t, families.FilterTransfer(), 2)
	assert.Equal(t, 1, families[1].Index)
	assert.False(t, families[1].IsCompute())

	surface := pd.Instance.NewSurface(drv.NewSurface())
	present := families.FilterPresent(surface)
	require.Len(t, present, 1)
	assert.Equal(t, 0, present[0].Index)
	assert.Len(t, families.FilterGraphicsAndPresent(surface), 1)

	drv.Results = map[string]vk.Result{"GetPhysicalDeviceSurfaceSupport": vk.ErrorSurfaceLost}
	_, err = families[0].PresentSupport(surface)
	assert.ErrorIs(t, err, vk.ErrorSurfaceLost)
	assert.False(t, families[0].SupportsPresent(surface))
}

func TestDeviceExtensionsAndFormats(t *testing.T) {
	_, pd := newTestPhysicalDevice(t)
	exts, err := pd.SupportedExtensions()
	require.NoError(t, err)
	require.Len(t, exts, 1)
	assert.Equal(t, "VK_KHR_swapchain", exts[0].ExtensionName)

	props := pd.FormatProperties(vk.FormatR8g8b8a8Unorm)
	assert.NotZero(t, props.OptimalTilingFeatures&vk.FormatFeatureStorageImageBit)
	assert.Zero(t, pd.FormatProperties(vk.FormatUndefined).OptimalTilingFeatures)
}

func TestCreateLogicalDeviceWithOptions(t *testing.T) {
	drv, pd := newTestPhysicalDevice(t)
	families, err := pd.QueueFamilies()
	require.NoError(t, err)

	device, err := pd.CreateLogicalDeviceWithOptions(QueueFamilySlice{families[0], families[0], families[1]}, &CreateDeviceOptions{
		EnabledExtensions: []string{"VK_KHR_swapchain"},
		QueueCount:        4,
	})
	require.NoError(t, err)

	info := args(t, drv, "CreateDevice")[1].(vk.DeviceCreateInfo)
	require.Len(t, info.QueueCreateInfos, 2)
	assert.Equal(t, uint32(0), info.QueueCreateInfos[0].QueueFamilyIndex)
	assert.Len(t, info.QueueCreateInfos[0].QueuePriorities, 4)
	assert.Equal(t, uint32(1), info.QueueCreateInfos[1].QueueFamilyIndex)
	assert.Len(t, info.QueueCreateInfos[1].QueuePriorities, 2)
	assert.Equal(t, []string{"VK_KHR_swapchain"}, info.EnabledExtensionNames)

	device.Destroy()
	device.Destroy()
	assert.Equal(t, 1, drv.Count("DestroyDevice"))
}

func TestCreateLogicalDeviceError(t *testing.T) {
	drv, pd := newTestPhysicalDevice(t)
	families, err := pd.QueueFamilies()
	require.NoError(t, err)
	drv.Results = map[string]vk.Result{"CreateDevice": vk.ErrorExtensionNotPresent}
	_, err = pd.CreateLogicalDevice(families)
	assert.ErrorIs(t, err, vk.ErrorExtensionNotPresent)
}
