package vkgl

import (
	"fmt"

	"github.com/celer/vkgl/vk"
)

type QueueFamilySlice []*QueueFamily

func (ql QueueFamilySlice) Filter(f func(q *QueueFamily) bool) QueueFamilySlice {
	ret := make([]*QueueFamily, 0)
	for _, q := range ql {
		if f(q) {
			ret = append(ret, q)
		}
	}
	return ret
}

func (ql QueueFamilySlice) FilterCompute() QueueFamilySlice {
	return ql.Filter(func(q *QueueFamily) bool {
		return q.IsCompute()
	})
}

func (ql QueueFamilySlice) FilterPresent(surface *Surface) QueueFamilySlice {
	return ql.Filter(func(q *QueueFamily) bool {
		return q.SupportsPresent(surface)
	})
}

func (ql QueueFamilySlice) FilterGraphicsAndPresent(surface *Surface) QueueFamilySlice {
	return ql.Filter(func(q *QueueFamily) bool {
		return q.IsGraphics() && q.SupportsPresent(surface)
	})
}

func (ql QueueFamilySlice) FilterGraphics() QueueFamilySlice {
	return ql.Filter(func(q *QueueFamily) bool {
		return q.IsGraphics()
	})
}

func (ql QueueFamilySlice) FilterTransfer() QueueFamilySlice {
	return ql.Filter(func(q *QueueFamily) bool {
		return q.IsTransfer()
	})
}

// QueueFamily is one entry of PhysicalDevice.QueueFamilies.
type QueueFamily struct {
	Index          int
	PhysicalDevice *PhysicalDevice
	Properties     vk.QueueFamilyProperties
}

func (q *QueueFamily) has(flag vk.QueueFlags) bool {
	return q.Properties.QueueFlags&flag == flag
}

func (q *QueueFamily) IsCompute() bool  { return q.has(vk.QueueComputeBit) }
func (q *QueueFamily) IsGraphics() bool { return q.has(vk.QueueGraphicsBit) }
func (q *QueueFamily) IsTransfer() bool { return q.has(vk.QueueTransferBit) }

// PresentSupport asks the driver whether queues of this family can present
// to the surface.
func (q *QueueFamily) PresentSupport(surface *Surface) (bool, error) {
	var supported bool
	p := q.PhysicalDevice
	err := vk.Error(p.commands().GetPhysicalDeviceSurfaceSupport(p.VKPhysicalDevice, uint32(q.Index), surface.VKSurface, &supported))
	return supported, err
}

// SupportsPresent is PresentSupport with errors reported as false.
func (q *QueueFamily) SupportsPresent(surface *Surface) bool {
	ok, err := q.PresentSupport(surface)
	return err == nil && ok
}

func (q *QueueFamily) String() string {
	return fmt.Sprintf("{ Index: %d Compute: %v Graphics: %v Transfer: %v }", q.Index, q.IsCompute(), q.IsGraphics(), q.IsTransfer())
}
