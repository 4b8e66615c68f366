package vkgl

import (
	"github.com/celer/vkgl/vk"
)

type ImageView struct {
	Image       *Image
	VKImageView vk.ImageView
}

func (i *Image) CreateImageView() (*ImageView, error) {
	return i.CreateImageViewWithAspectMask(vk.ImageAspectColorBit)
}

func (i *Image) CreateImageViewWithAspectMask(mask vk.ImageAspectFlags) (*ImageView, error) {
	createImage := &vk.ImageViewCreateInfo{
		Image:    i.VKImage,
		ViewType: vk.ImageViewType2d,
		Format:   i.VKFormat,
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleR,
			G: vk.ComponentSwizzleG,
			B: vk.ComponentSwizzleB,
			A: vk.ComponentSwizzleA,
		},
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: mask,
			LevelCount: 1,
			LayerCount: 1,
		},
	}

	var view vk.ImageView
	err := vk.Error(i.Device.Commands.CreateImageView(i.Device.VKDevice, createImage, &view))
	if err != nil {
		return nil, err
	}
	var ret ImageView
	ret.Image = i
	ret.VKImageView = view

	return &ret, nil
}

func (i *ImageView) Destroy() {
	if i.VKImageView == vk.NullImageView {
		return
	}
	d := i.Image.Device
	d.Commands.DestroyImageView(d.VKDevice, i.VKImageView)
	i.VKImageView = vk.NullImageView
}
