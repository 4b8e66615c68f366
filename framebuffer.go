package vkgl

import (
	"errors"

	"github.com/celer/vkgl/vk"
)

// Framebuffer binds image views to the attachments of a render pass.
type Framebuffer struct {
	RenderPass    *RenderPass
	VKFramebuffer vk.Framebuffer
	Extent        vk.Extent2D
}

// CreateFramebuffer creates a single layer framebuffer. views are given in
// attachment order.
func (r *RenderPass) CreateFramebuffer(extent vk.Extent2D, views ...*ImageView) (*Framebuffer, error) {
	if len(views) == 0 {
		return nil, errors.New("vkgl: framebuffer has no attachments")
	}
	attachments := make([]vk.ImageView, len(views))
	for i, v := range views {
		attachments[i] = v.VKImageView
	}

	var framebuffer vk.Framebuffer
	d := r.Device
	err := vk.Error(d.Commands.CreateFramebuffer(d.VKDevice, &vk.FramebufferCreateInfo{
		RenderPass:  r.VKRenderPass,
		Attachments: attachments,
		Width:       extent.Width,
		Height:      extent.Height,
		Layers:      1,
	}, &framebuffer))
	if err != nil {
		return nil, err
	}
	return &Framebuffer{RenderPass: r, VKFramebuffer: framebuffer, Extent: extent}, nil
}

// RenderArea covers the whole framebuffer.
func (f *Framebuffer) RenderArea() vk.Rect2D {
	return vk.Rect2D{Extent: f.Extent}
}

func (f *Framebuffer) Destroy() {
	if f.VKFramebuffer == vk.NullFramebuffer {
		return
	}
	d := f.RenderPass.Device
	d.Commands.DestroyFramebuffer(d.VKDevice, f.VKFramebuffer)
	f.VKFramebuffer = vk.NullFramebuffer
}
