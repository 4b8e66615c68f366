package vkgl

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"
	"time"

	// Load the png image loader
	_ "image/png"

	"github.com/celer/vkgl/vk"
)

// TextureTimeout bounds how long StageTexture waits for the upload.
var TextureTimeout = 100 * time.Second

// StageTextureFromDisk decodes an image file and uploads it with StageTexture.
func (d *Device) StageTextureFromDisk(filename string, cmd *CommandBuffer, queue *Queue) (*Image, *DeviceMemory, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	src, _, err := image.Decode(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return d.StageTexture(src, cmd, queue)
}

// StageTexture copies src into a new device-local R8G8B8A8 image through a
// host-visible staging buffer. The image is left in
// ImageLayoutShaderReadOnlyOptimal. cmd is recorded and submitted to queue,
// and the call blocks until the copy completes.
func (d *Device) StageTexture(src image.Image, cmd *CommandBuffer, queue *Queue) (*Image, *DeviceMemory, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, nil, fmt.Errorf("staging an empty image: %w", vk.ErrorFormatNotSupported)
	}

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}

	pix := rgba.Pix[:4*b.Dx()*b.Dy()]

	staging, stagingMem, err := d.CreateAndBindBufferAndMemory(uint64(len(pix)), vk.BufferUsageTransferSrcBit,
		vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCoherentBit, vk.SharingModeExclusive)
	if err != nil {
		return nil, nil, err
	}
	defer stagingMem.Destroy()
	defer staging.Destroy()

	if err := stagingMem.MapCopyUnmap(pix); err != nil {
		return nil, nil, err
	}

	extent := vk.Extent2D{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
	img, err := d.CreateImage(extent, vk.FormatR8g8b8a8Unorm, vk.ImageTilingOptimal, vk.ImageUsageTransferDstBit|vk.ImageUsageSampledBit)
	if err != nil {
		return nil, nil, err
	}
	mem, err := d.upload(img, staging, cmd, queue)
	if err != nil {
		img.Destroy()
		return nil, nil, err
	}
	return img, mem, nil
}

func (d *Device) upload(img *Image, staging *Buffer, cmd *CommandBuffer, queue *Queue) (*DeviceMemory, error) {
	mem, err := d.AllocateForImage(img, vk.MemoryPropertyDeviceLocalBit)
	if err != nil {
		return nil, err
	}
	fail := func(err error) (*DeviceMemory, error) {
		mem.Destroy()
		return nil, err
	}
	if err := img.Bind(mem, 0); err != nil {
		return fail(err)
	}

	if err := cmd.BeginOneTime(); err != nil {
		return fail(err)
	}
	cmd.TransitionImageLayout(img, vk.ImageLayoutUndefined, vk.ImageLayoutTransferDstOptimal)
	cmd.CmdCopyBufferToImage(staging, img, vk.ImageLayoutTransferDstOptimal)
	cmd.TransitionImageLayout(img, vk.ImageLayoutTransferDstOptimal, vk.ImageLayoutShaderReadOnlyOptimal)
	if err := cmd.End(); err != nil {
		return fail(err)
	}

	f, err := d.CreateFence()
	if err != nil {
		return fail(err)
	}
	defer f.Destroy()

	if err := queue.SubmitWithFence(f, cmd); err != nil {
		return fail(err)
	}
	done, err := f.Wait(TextureTimeout)
	if err != nil {
		return fail(err)
	}
	if !done {
		// The deferred staging destroys must not run while the copy may
		// still be reading the buffer.
		if err := d.WaitIdle(); err != nil {
			slog.Warn("device did not go idle after a texture upload timeout", "err", err)
		}
		return fail(fmt.Errorf("texture upload did not finish within %v: %w", TextureTimeout, vk.Timeout))
	}
	return mem, nil
}
