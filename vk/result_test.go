package vk

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSuccessIsNil(t *testing.T) {
	assert.NoError(t, Error(Success))
}

func TestErrorKeepsResult(t *testing.T) {
	err := Error(ErrorDeviceLost)
	require.Error(t, err)

	wrapped := fmt.Errorf("submitting work: %w", err)
	assert.True(t, errors.Is(wrapped, ErrorDeviceLost))

	var r Result
	require.True(t, errors.As(wrapped, &r))
	assert.Equal(t, ErrorDeviceLost, r)
	assert.Equal(t, "vulkan: VK_ERROR_DEVICE_LOST", err.Error())
}

func TestStatusCodesAreNotErrors(t *testing.T) {
	for _, r := range []Result{NotReady, Timeout, EventSet, EventReset, Incomplete, Suboptimal} {
		assert.False(t, r.IsError(), r.String())
		assert.Error(t, Error(r))
	}
	assert.True(t, ErrorOutOfDate.IsError())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "VK_SUBOPTIMAL_KHR", Suboptimal.String())
	assert.Equal(t, "VkResult(42)", Result(42).String())
}

func TestVersion(t *testing.T) {
	v := MakeVersion(1, 3, 250)
	assert.Equal(t, 1, v.Major())
	assert.Equal(t, 3, v.Minor())
	assert.Equal(t, 250, v.Patch())
	assert.Equal(t, 0, v.Variant())
	assert.Equal(t, "1.3.250", v.String())
	assert.Equal(t, Version(0x4030FA), v)
	assert.Equal(t, Version(1<<22), APIVersion10)
}

func TestToString(t *testing.T) {
	var name [MaxExtensionNameSize]byte
	copy(name[:], "VK_KHR_surface")
	assert.Equal(t, "VK_KHR_surface", ToString(name[:]))
	assert.Equal(t, "abc", ToString([]byte("abc")))
}
