package vkgl

import (
	"github.com/celer/vkgl/vk"
)

type Semaphore struct {
	Device      *Device
	VKSemaphore vk.Semaphore
}

// CreateSemaphore creates a binary semaphore
func (d *Device) CreateSemaphore() (*Semaphore, error) {
	var sema vk.Semaphore
	if err := vk.Error(d.Commands.CreateSemaphore(d.VKDevice, &sema)); err != nil {
		return nil, err
	}
	return &Semaphore{Device: d, VKSemaphore: sema}, nil
}

func (s *Semaphore) Destroy() {
	if s.VKSemaphore == vk.NullSemaphore {
		return
	}
	s.Device.Commands.DestroySemaphore(s.Device.VKDevice, s.VKSemaphore)
	s.VKSemaphore = vk.NullSemaphore
}

func semaphoreHandles(s []*Semaphore) []vk.Semaphore {
	if len(s) == 0 {
		return nil
	}
	ret := make([]vk.Semaphore, len(s))
	for i := range s {
		ret[i] = s[i].VKSemaphore
	}
	return ret
}
