package vkgl

import (
	"fmt"

	"github.com/celer/vkgl/vk"
)

type Queue struct {
	Device      *Device
	QueueFamily *QueueFamily
	VKQueue     vk.Queue
}

func (q *Queue) WaitIdle() error {
	return vk.Error(q.Device.Commands.QueueWaitIdle(q.VKQueue))
}

// Submit submits batches of work, signaling fence (which may be nil) when
// all of them complete.
func (q *Queue) Submit(fence *Fence, submits ...vk.SubmitInfo) error {
	f := vk.NullFence
	if fence != nil {
		f = fence.VKFence
	}
	return vk.Error(q.Device.Commands.QueueSubmit(q.VKQueue, submits, f))
}

func commandBufferSubmit(buffers []*CommandBuffer) vk.SubmitInfo {
	b := make([]vk.CommandBuffer, len(buffers))
	for i := range buffers {
		b[i] = buffers[i].VKCommandBuffer
	}
	return vk.SubmitInfo{CommandBuffers: b}
}

// SubmitWaitIdle submits the command buffers and waits for the queue to
// drain.
func (q *Queue) SubmitWaitIdle(buffers ...*CommandBuffer) error {
	if err := q.Submit(nil, commandBufferSubmit(buffers)); err != nil {
		return err
	}
	return q.WaitIdle()
}

func (q *Queue) SubmitWithFence(fence *Fence, buffers ...*CommandBuffer) error {
	return q.Submit(fence, commandBufferSubmit(buffers))
}

// Present queues an image for presentation. suboptimal is true when the
// swapchain no longer matches the surface exactly but was still presented.
func (q *Queue) Present(swapchain *Swapchain, imageIndex uint32, waitSemaphores ...*Semaphore) (suboptimal bool, err error) {
	info := vk.PresentInfo{
		WaitSemaphores: semaphoreHandles(waitSemaphores),
		Swapchains:     []vk.Swapchain{swapchain.VKSwapchain},
		ImageIndices:   []uint32{imageIndex},
	}
	r := q.Device.Commands.QueuePresent(q.VKQueue, &info)
	if r == vk.Suboptimal {
		return true, nil
	}
	return false, vk.Error(r)
}

func (q *Queue) String() string {
	return fmt.Sprintf("{Device: %s QueueFamily: %s}", q.Device.String(), q.QueueFamily.String())
}
