package vkgl

import "github.com/celer/vkgl/vk"

// Surface is a VkSurfaceKHR. Surfaces are created by the window system
// integration, see package window.
type Surface struct {
	Instance  *Instance
	VKSurface vk.Surface
}

// NewSurface wraps a surface handle created outside this package so it can
// be destroyed with the instance's dispatch table.
func (i *Instance) NewSurface(surface vk.Surface) *Surface {
	return &Surface{Instance: i, VKSurface: surface}
}

func (s *Surface) Destroy() {
	if s.VKSurface == vk.NullSurface {
		return
	}
	s.Instance.Commands.DestroySurface(s.Instance.VKInstance, s.VKSurface)
	s.VKSurface = vk.NullSurface
}
