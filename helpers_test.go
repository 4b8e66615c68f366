package vkgl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
	"github.com/celer/vkgl/vkgltest"
)

// newTestDevice creates an instance and a device on the first queue family
// of a fake driver.
func newTestDevice(t *testing.T) (*vkgltest.Driver, *Device) {
	t.Helper()
	drv := vkgltest.New()
	app := &App{Name: "test", Loader: drv}
	instance, err := app.CreateInstance()
	require.NoError(t, err)

	pdevices, err := instance.PhysicalDevices()
	require.NoError(t, err)
	require.Len(t, pdevices, 1)

	queues, err := pdevices[0].QueueFamilies()
	require.NoError(t, err)

	device, err := pdevices[0].CreateLogicalDevice(queues.FilterCompute())
	require.NoError(t, err)
	drv.Reset()
	return drv, device
}

func args(t *testing.T, drv *vkgltest.Driver, name string) []any {
	t.Helper()
	c, ok := drv.Last(name)
	require.True(t, ok, "%s was not called", name)
	return c.Args
}

func hostMemory() vk.MemoryPropertyFlags {
	return vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit
}
