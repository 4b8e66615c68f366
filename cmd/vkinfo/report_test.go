package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/celer/vkgl"
	"github.com/celer/vkgl/vk"
	"github.com/celer/vkgl/vkgltest"
)

func gatherFake(t *testing.T, d *vkgltest.Driver) *Report {
	t.Helper()
	r, err := Gather(&vkgl.App{Name: "vkinfo", APIVersion: vkgl.Version{Major: 1}, Loader: d})
	require.NoError(t, err)
	return r
}

func TestGather(t *testing.T) {
	d := vkgltest.New()
	r := gatherFake(t, d)

	assert.Equal(t, "1.3.250", r.InstanceVersion)
	require.Len(t, r.Layers, 1)
	assert.Equal(t, "VK_LAYER_KHRONOS_validation", r.Layers[0].Name)
	assert.Equal(t, []Extension{{"VK_KHR_surface", 25}, {"VK_EXT_debug_report", 10}}, r.Extensions)

	require.Len(t, r.Devices, 1)
	dev := r.Devices[0]
	assert.Equal(t, "Fake GPU", dev.Name)
	assert.Equal(t, "0x10de", dev.VendorID)
	assert.Equal(t, "0x2204", dev.DeviceID)
	assert.Equal(t, vk.PhysicalDeviceTypeDiscreteGpu.String(), dev.Type)
	assert.Equal(t, []QueueFamily{
		{Index: 0, Count: 16, Flags: []string{"graphics", "compute", "transfer"}},
		{Index: 1, Count: 2, Flags: []string{"transfer"}},
	}, dev.QueueFamilies)
	require.Len(t, dev.MemoryTypes, 3)
	assert.Equal(t, []string{"hostVisible", "hostCoherent", "hostCached"}, dev.MemoryTypes[2].Flags)
	assert.Equal(t, []MemoryHeap{
		{Size: "8GiB", Bytes: 8 << 30, Flags: []string{"deviceLocal"}},
		{Size: "16GiB", Bytes: 16 << 30},
	}, dev.MemoryHeaps)
	assert.Equal(t, []Extension{{"VK_KHR_swapchain", 70}}, dev.Extensions)

	assert.Equal(t, 0, d.Live("Instance"))
}

func TestGatherErrors(t *testing.T) {
	d := vkgltest.New()
	d.Results = map[string]vk.Result{"CreateInstance": vk.ErrorIncompatibleDriver}
	_, err := Gather(&vkgl.App{Loader: d})
	assert.ErrorIs(t, err, vk.ErrorIncompatibleDriver)

	_, err = Gather(&vkgl.App{})
	assert.ErrorIs(t, err, vkgl.ErrNoLoader)
}

func TestWriteYAML(t *testing.T) {
	r := gatherFake(t, vkgltest.New())
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "yaml"))
	assert.Contains(t, buf.String(), "flags: [graphics, compute, transfer]")

	var back Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r, &back)
}

func TestWriteText(t *testing.T) {
	r := gatherFake(t, vkgltest.New())
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "text"))
	out := buf.String()
	assert.Contains(t, out, "Instance version 1.3.250")
	assert.Contains(t, out, "Fake GPU\n-----------------------------\n")
	assert.Contains(t, out, "\t\t8GiB\t[deviceLocal]\n")
	assert.Contains(t, out, "\t\tVK_KHR_swapchain (70)\n")

	assert.Error(t, r.Write(&buf, "json"))
}

func TestUnknownBackend(t *testing.T) {
	_, err := newLoader("metal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vkdl")
}
