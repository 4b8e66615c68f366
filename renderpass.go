package vkgl

import (
	"github.com/celer/vkgl/vk"
)

// RenderPass describes the attachments a set of subpasses render into.
type RenderPass struct {
	Device       *Device
	VKRenderPass vk.RenderPass
}

// CreateRenderPass creates a render pass from a fully described create info.
func (d *Device) CreateRenderPass(info *vk.RenderPassCreateInfo) (*RenderPass, error) {
	var renderPass vk.RenderPass
	err := vk.Error(d.Commands.CreateRenderPass(d.VKDevice, info, &renderPass))
	if err != nil {
		return nil, err
	}
	return &RenderPass{Device: d, VKRenderPass: renderPass}, nil
}

// CreateColorDepthRenderPass creates the single subpass pass used for
// presenting: attachment 0 is a color image of colorFormat that ends in
// the present layout, attachment 1 is a depthFormat depth buffer. Pass
// vk.FormatUndefined as depthFormat to render color only.
func (d *Device) CreateColorDepthRenderPass(colorFormat, depthFormat vk.Format) (*RenderPass, error) {
	attachments := []vk.AttachmentDescription{{
		Format:         colorFormat,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpDontCare,
		InitialLayout:  vk.ImageLayoutUndefined,
		FinalLayout:    vk.ImageLayoutPresentSrc,
	}}
	subpass := vk.SubpassDescription{
		PipelineBindPoint: vk.PipelineBindPointGraphics,
		ColorAttachments: []vk.AttachmentReference{{
			Attachment: 0,
			Layout:     vk.ImageLayoutColorAttachmentOptimal,
		}},
	}
	if depthFormat != vk.FormatUndefined {
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         depthFormat,
			Samples:        vk.SampleCount1Bit,
			LoadOp:         vk.AttachmentLoadOpClear,
			StoreOp:        vk.AttachmentStoreOpDontCare,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  vk.ImageLayoutUndefined,
			FinalLayout:    vk.ImageLayoutDepthStencilAttachmentOptimal,
		})
		subpass.DepthStencilAttachment = &vk.AttachmentReference{
			Attachment: 1,
			Layout:     vk.ImageLayoutDepthStencilAttachmentOptimal,
		}
	}

	return d.CreateRenderPass(&vk.RenderPassCreateInfo{
		Attachments: attachments,
		Subpasses:   []vk.SubpassDescription{subpass},
		Dependencies: []vk.SubpassDependency{{
			SrcSubpass:    vk.SubpassExternal,
			DstSubpass:    0,
			SrcStageMask:  vk.PipelineStageColorAttachmentOutputBit,
			DstStageMask:  vk.PipelineStageColorAttachmentOutputBit,
			DstAccessMask: vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit,
		}},
	})
}

func (r *RenderPass) Destroy() {
	if r.VKRenderPass == vk.NullRenderPass {
		return
	}
	r.Device.Commands.DestroyRenderPass(r.Device.VKDevice, r.VKRenderPass)
	r.VKRenderPass = vk.NullRenderPass
}
