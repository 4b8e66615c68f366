package vkgl

import (
	"time"

	"github.com/celer/vkgl/vk"
)

type Fence struct {
	Device  *Device
	VKFence vk.Fence
}

func (d *Device) createFence(flags vk.FenceCreateFlags) (*Fence, error) {
	var fence vk.Fence
	err := vk.Error(d.Commands.CreateFence(d.VKDevice, &vk.FenceCreateInfo{Flags: flags}, &fence))
	if err != nil {
		return nil, err
	}
	var ret Fence
	ret.VKFence = fence
	ret.Device = d
	return &ret, nil
}

// CreateFence creates an unsignaled fence.
func (d *Device) CreateFence() (*Fence, error) {
	return d.createFence(0)
}

// CreateSignaledFence creates a fence in the signaled state, as used for the
// first frame of a render loop.
func (d *Device) CreateSignaledFence() (*Fence, error) {
	return d.createFence(vk.FenceCreateSignaledBit)
}

// timeoutNanos converts a timeout to the driver's nanoseconds, where a
// negative duration waits forever.
func timeoutNanos(ts time.Duration) uint64 {
	if ts < 0 {
		return vk.MaxTimeout
	}
	return uint64(ts.Nanoseconds())
}

// WaitForFences waits until all (or any) of the fences are signaled. It
// returns false when the timeout expired first.
func (d *Device) WaitForFences(waitForAll bool, ts time.Duration, fences ...*Fence) (bool, error) {
	f := make([]vk.Fence, len(fences))
	for i := range fences {
		f[i] = fences[i].VKFence
	}

	r := d.Commands.WaitForFences(d.VKDevice, f, waitForAll, timeoutNanos(ts))
	if r == vk.Timeout {
		return false, nil
	}
	if err := vk.Error(r); err != nil {
		return false, err
	}
	return true, nil
}

// ResetFences puts the fences back into the unsignaled state.
func (d *Device) ResetFences(fences ...*Fence) error {
	f := make([]vk.Fence, len(fences))
	for i := range fences {
		f[i] = fences[i].VKFence
	}
	return vk.Error(d.Commands.ResetFences(d.VKDevice, f))
}

// Status reports whether the fence is signaled.
func (f *Fence) Status() (bool, error) {
	r := f.Device.Commands.GetFenceStatus(f.Device.VKDevice, f.VKFence)
	switch r {
	case vk.Success:
		return true, nil
	case vk.NotReady:
		return false, nil
	}
	return false, r
}

// Wait waits for this fence alone, see Device.WaitForFences.
func (f *Fence) Wait(ts time.Duration) (bool, error) {
	return f.Device.WaitForFences(true, ts, f)
}

func (f *Fence) Reset() error {
	return f.Device.ResetFences(f)
}

func (f *Fence) Destroy() {
	if f.VKFence == vk.NullFence {
		return
	}
	f.Device.Commands.DestroyFence(f.Device.VKDevice, f.VKFence)
	f.VKFence = vk.NullFence
}
