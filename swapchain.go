package vkgl

import (
	"fmt"
	"time"

	"github.com/celer/vkgl/vk"
)

type Swapchain struct {
	Extent      vk.Extent2D
	Format      vk.Format
	Device      *Device
	Surface     *Surface
	VKSwapchain vk.Swapchain
}

func (s *Swapchain) Destroy() {
	if s.VKSwapchain == vk.NullSwapchain {
		return
	}
	s.Device.Commands.DestroySwapchain(s.Device.VKDevice, s.VKSwapchain)
	s.VKSwapchain = vk.NullSwapchain
}

// GetImages returns the presentable images. They are owned by the
// swapchain, their Destroy is a no-op.
func (s *Swapchain) GetImages() ([]*Image, error) {
	swapchainImages, err := enumerate(func(count *uint32, out []vk.Image) vk.Result {
		return s.Device.Commands.GetSwapchainImages(s.Device.VKDevice, s.VKSwapchain, count, out)
	})
	if err != nil {
		return nil, err
	}

	ret := make([]*Image, len(swapchainImages))
	for i := range swapchainImages {
		ret[i] = &Image{
			Device:         s.Device,
			VKImage:        swapchainImages[i],
			VKFormat:       s.Format,
			Extent:         vk.Extent3D{Width: s.Extent.Width, Height: s.Extent.Height, Depth: 1},
			swapchainOwned: true,
		}
	}
	return ret, nil
}

// AcquireNextImage returns the index of the next image to render into.
// ok is false when the timeout expired before an image was available, and
// suboptimal reports that the swapchain should be recreated soon.
func (s *Swapchain) AcquireNextImage(timeout time.Duration, semaphore *Semaphore, fence *Fence) (index uint32, ok, suboptimal bool, err error) {
	sem := vk.NullSemaphore
	if semaphore != nil {
		sem = semaphore.VKSemaphore
	}
	f := vk.NullFence
	if fence != nil {
		f = fence.VKFence
	}
	r := s.Device.Commands.AcquireNextImage(s.Device.VKDevice, s.VKSwapchain, timeoutNanos(timeout), sem, f, &index)
	switch r {
	case vk.Success:
		return index, true, false, nil
	case vk.Suboptimal:
		return index, true, true, nil
	case vk.Timeout, vk.NotReady:
		return 0, false, false, nil
	}
	return 0, false, false, r
}

type CreateSwapchainOptions struct {
	OldSwapchain              *Swapchain
	ActualSize                vk.Extent2D
	DesiredNumSwapchainImages int
	// PresentMode is used when the surface supports it, otherwise mailbox
	// is preferred and fifo is the fallback.
	PresentMode *vk.PresentMode
}

func (d *Device) DefaultNumSwapchainImages(surface *Surface) (int, error) {
	caps, err := d.PhysicalDevice.GetSurfaceCapabilities(surface)
	if err != nil {
		return 0, err
	}
	n := int(caps.MinImageCount) + 1
	if caps.MaxImageCount > 0 && n > int(caps.MaxImageCount) {
		n = int(caps.MaxImageCount)
	}
	return n, nil
}

func (d *Device) CreateSwapchain(surface *Surface, graphicsQueue, presentQueue *Queue, options *CreateSwapchainOptions) (*Swapchain, error) {
	if options == nil {
		options = &CreateSwapchainOptions{}
	}

	modes, err := d.PhysicalDevice.GetSurfacePresentModes(surface)
	if err != nil {
		return nil, err
	}

	presentMode := vk.PresentModeFifo
	if m := modes.Filter(vk.PresentModeMailbox); len(m) > 0 {
		presentMode = m[0]
	}
	if options.PresentMode != nil && len(modes.Filter(*options.PresentMode)) > 0 {
		presentMode = *options.PresentMode
	}

	formats, err := d.PhysicalDevice.GetSurfaceFormats(surface)
	if err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		return nil, vk.ErrorFormatNotSupported
	}

	format := formats[0]
	if f := formats.Filter(func(f vk.SurfaceFormat) bool { return f.Format == vk.FormatB8g8r8a8Unorm }); len(f) > 0 {
		format = f[0]
	}

	caps, err := d.PhysicalDevice.GetSurfaceCapabilities(surface)
	if err != nil {
		return nil, err
	}

	swapchainSize := caps.CurrentExtent
	if caps.CurrentExtent.Width == ^uint32(0) {
		swapchainSize = options.ActualSize
		if swapchainSize.Width == 0 || swapchainSize.Height == 0 {
			swapchainSize = caps.MinImageExtent
		}
		swapchainSize.Width = clampExtent(swapchainSize.Width, caps.MinImageExtent.Width, caps.MaxImageExtent.Width)
		swapchainSize.Height = clampExtent(swapchainSize.Height, caps.MinImageExtent.Height, caps.MaxImageExtent.Height)
	}

	compositeAlpha, err := chooseCompositeAlpha(caps.SupportedCompositeAlpha)
	if err != nil {
		return nil, err
	}

	desiredSwapChainImages := options.DesiredNumSwapchainImages
	if desiredSwapChainImages == 0 {
		desiredSwapChainImages, err = d.DefaultNumSwapchainImages(surface)
		if err != nil {
			return nil, err
		}
	}

	createInfo := &vk.SwapchainCreateInfo{
		Surface:          surface.VKSurface,
		MinImageCount:    uint32(desiredSwapChainImages),
		ImageFormat:      format.Format,
		ImageColorSpace:  format.ColorSpace,
		ImageExtent:      swapchainSize,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageColorAttachmentBit,
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   compositeAlpha,
		PresentMode:      presentMode,
		Clipped:          true,
		OldSwapchain:     vk.NullSwapchain,
	}

	if options.OldSwapchain != nil {
		createInfo.OldSwapchain = options.OldSwapchain.VKSwapchain
	}

	if graphicsQueue.QueueFamily.Index != presentQueue.QueueFamily.Index {
		createInfo.QueueFamilyIndices = []uint32{uint32(graphicsQueue.QueueFamily.Index), uint32(presentQueue.QueueFamily.Index)}
		createInfo.ImageSharingMode = vk.SharingModeConcurrent
	}

	var swapchain vk.Swapchain
	err = vk.Error(d.Commands.CreateSwapchain(d.VKDevice, createInfo, &swapchain))
	if err != nil {
		return nil, err
	}

	var ret Swapchain
	ret.VKSwapchain = swapchain
	ret.Device = d
	ret.Surface = surface
	ret.Extent = swapchainSize
	ret.Format = format.Format

	return &ret, nil
}

// clampExtent keeps v within [lo, hi]. A zero hi is treated as unbounded.
func clampExtent(v, lo, hi uint32) uint32 {
	if hi != 0 && v > hi {
		v = hi
	}
	return max(v, lo)
}

// chooseCompositeAlpha prefers opaque and otherwise takes the first mode
// the surface supports.
func chooseCompositeAlpha(supported vk.CompositeAlphaFlags) (vk.CompositeAlphaFlags, error) {
	for _, a := range []vk.CompositeAlphaFlags{
		vk.CompositeAlphaOpaqueBit,
		vk.CompositeAlphaPreMultipliedBit,
		vk.CompositeAlphaPostMultipliedBit,
		vk.CompositeAlphaInheritBit,
	} {
		if supported&a != 0 {
			return a, nil
		}
	}
	return 0, fmt.Errorf("surface supports no composite alpha mode: %w", vk.ErrorFeatureNotPresent)
}
