package vkgltest

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
)

func TestEnumerate(t *testing.T) {
	src := []int{1, 2, 3}

	var count uint32
	assert.Equal(t, vk.Success, enumerate(src, &count, nil))
	assert.Equal(t, uint32(3), count)

	dst := make([]int, 2)
	count = 2
	assert.Equal(t, vk.Incomplete, enumerate(src, &count, dst))
	assert.Equal(t, uint32(2), count)
	assert.Equal(t, []int{1, 2}, dst)

	dst = make([]int, 3)
	count = 3
	assert.Equal(t, vk.Success, enumerate(src, &count, dst))
	assert.Equal(t, []int{1, 2, 3}, dst)
}

func TestResultsOverride(t *testing.T) {
	d := New()
	d.Results = map[string]vk.Result{"CreateInstance": vk.ErrorLayerNotPresent}

	var instance vk.Instance
	r := d.CreateInstance(&vk.InstanceCreateInfo{}, &instance)
	assert.Equal(t, vk.ErrorLayerNotPresent, r)
	assert.Equal(t, vk.NullInstance, instance)
	assert.Zero(t, d.Live("Instance"))
	assert.Equal(t, []string{"CreateInstance"}, d.Names())
}

func TestMemoryMapping(t *testing.T) {
	d := New()
	var mem vk.DeviceMemory
	require.Equal(t, vk.Success, d.AllocateMemory(1, &vk.MemoryAllocateInfo{AllocationSize: 16}, &mem))

	var p unsafe.Pointer
	require.Equal(t, vk.Success, d.MapMemory(1, mem, 4, 8, 0, &p))
	*(*byte)(p) = 9
	assert.Equal(t, byte(9), d.Memory(mem)[4])

	assert.Equal(t, vk.ErrorMemoryMapFailed, d.MapMemory(1, mem, 8, 16, 0, &p))
	assert.Equal(t, vk.Success, d.MapMemory(1, mem, 0, vk.WholeSize, 0, &p))
}

func TestFences(t *testing.T) {
	d := New()
	var f vk.Fence
	require.Equal(t, vk.Success, d.CreateFence(1, &vk.FenceCreateInfo{}, &f))
	assert.Equal(t, vk.NotReady, d.GetFenceStatus(1, f))
	assert.Equal(t, vk.Timeout, d.WaitForFences(1, []vk.Fence{f}, true, 0))

	require.Equal(t, vk.Success, d.QueueSubmit(2, nil, f))
	assert.Equal(t, vk.Success, d.GetFenceStatus(1, f))

	require.Equal(t, vk.Success, d.ResetFences(1, []vk.Fence{f}))
	assert.Equal(t, vk.NotReady, d.GetFenceStatus(1, f))

	d.DestroyFence(1, f)
	assert.Equal(t, 1, d.Destroyed(uint64(f)))
	assert.Zero(t, d.Live("Fence"))
}

func TestSwapchainImages(t *testing.T) {
	d := New()
	d.SwapchainImageCount = 2
	var s vk.Swapchain
	require.Equal(t, vk.Success, d.CreateSwapchain(1, &vk.SwapchainCreateInfo{}, &s))

	var count uint32
	require.Equal(t, vk.Success, d.GetSwapchainImages(1, s, &count, nil))
	assert.Equal(t, uint32(2), count)

	var index uint32
	for _, want := range []uint32{0, 1, 0} {
		require.Equal(t, vk.Success, d.AcquireNextImage(1, s, 0, 0, 0, &index))
		assert.Equal(t, want, index)
	}

	d.Results = map[string]vk.Result{"AcquireNextImage": vk.Timeout}
	index = 7
	assert.Equal(t, vk.Timeout, d.AcquireNextImage(1, s, 0, 0, 0, &index))
	assert.Equal(t, uint32(7), index)
}

func TestReport(t *testing.T) {
	d := New()
	var got []string
	var cb vk.DebugReportCallback
	require.Equal(t, vk.Success, d.CreateDebugReportCallback(1, &vk.DebugReportCallbackCreateInfo{
		Flags: vk.DebugReportWarningBit,
		Callback: func(flags vk.DebugReportFlags, _ vk.DebugReportObjectType, _ uint64, _ uint, _ int32, prefix, msg string) bool {
			got = append(got, msg)
			return false
		},
	}, &cb))

	d.Report(vk.DebugReportWarningBit, "layer", "one")
	d.Report(vk.DebugReportErrorBit, "layer", "two")
	d.DestroyDebugReportCallback(1, cb)
	d.Report(vk.DebugReportWarningBit, "layer", "three")
	assert.Equal(t, []string{"one"}, got)
}
