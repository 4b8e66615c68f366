package vkgl

import (
	"github.com/celer/vkgl/vk"
)

// Image is a VkImage. Images returned by Swapchain.GetImages belong to the
// swapchain and are not destroyed by Destroy.
type Image struct {
	Device   *Device
	VKImage  vk.Image
	VKFormat vk.Format
	Extent   vk.Extent3D

	swapchainOwned bool
}

// CreateImage creates a single-sampled 2D image with one mip level.
func (d *Device) CreateImage(extent vk.Extent2D, format vk.Format, tiling vk.ImageTiling, usage vk.ImageUsageFlags) (*Image, error) {
	return d.CreateImageWithOptions(vk.ImageCreateInfo{
		ImageType:     vk.ImageType2d,
		Format:        format,
		Extent:        vk.Extent3D{Width: extent.Width, Height: extent.Height, Depth: 1},
		MipLevels:     1,
		ArrayLayers:   1,
		Samples:       vk.SampleCount1Bit,
		Tiling:        tiling,
		Usage:         usage,
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	})
}

func (d *Device) CreateImageWithOptions(info vk.ImageCreateInfo) (*Image, error) {
	var image vk.Image
	err := vk.Error(d.Commands.CreateImage(d.VKDevice, &info, &image))
	if err != nil {
		return nil, err
	}

	var ret Image
	ret.Device = d
	ret.VKImage = image
	ret.VKFormat = info.Format
	ret.Extent = info.Extent

	return &ret, nil
}

func (i *Image) MemoryRequirements() vk.MemoryRequirements {
	var memRequirements vk.MemoryRequirements
	i.Device.Commands.GetImageMemoryRequirements(i.Device.VKDevice, i.VKImage, &memRequirements)
	return memRequirements
}

func (i *Image) Bind(memory *DeviceMemory, offset uint64) error {
	return vk.Error(i.Device.Commands.BindImageMemory(i.Device.VKDevice, i.VKImage, memory.VKDeviceMemory, vk.DeviceSize(offset)))
}

func (i *Image) Destroy() {
	if i.VKImage == vk.NullImage || i.swapchainOwned {
		return
	}
	i.Device.Commands.DestroyImage(i.Device.VKDevice, i.VKImage)
	i.VKImage = vk.NullImage
}
