/*
Package vkgl wraps the Vulkan API in a small set of handle types for Go.

Every Vulkan object the package exposes (Instance, Device, Buffer, CommandBuffer
and so on) is a thin struct holding the native handle plus a reference to the
object it was created from. The parent reference is what lets Destroy call the
right native destroy function, e.g. a Buffer keeps its Device so Destroy can
call vkDestroyBuffer(device, buffer). Nothing else is tracked: getters such as
PhysicalDevice.Properties or Fence.Status go to the driver every time.

Calls are forwarded through dispatch tables (see package vk). A table is
provided by a backend:

	backend/vkdl	loads the Vulkan loader at runtime through purego, no cgo
	backend/vkgo	calls Vulkan through cgo via github.com/vulkan-go/vulkan

and vkgltest provides an in-memory table for tests.

Native Vulkan terms

	Instance	the vulkan runtime instance
	PhysicalDevice	the physical hardware device
	Device		a logical device, the target of most of the vulkan apis
	Queue		a queue which work (command buffers) may be submitted to
	DeviceMemory	an allocation of memory on the host or device
	Buffer		a range of data bound to device memory
	Image		an image bound to device memory
	ImageView	describes how an image is viewed by shaders
	DescriptorSet	a mapping of resources for use by shaders
	Pipeline	a description of how to process data on the GPU
	Swapchain	a set of images presented to a surface

A compute job typically looks like:

 1. Create the instance with App.CreateInstance
 2. Pick a physical device and a compute queue family, create a Device
 3. Create buffers and bind them to host visible memory
 4. Describe the buffers with a DescriptorSetLayout and DescriptorSet
 5. Load a SPIR-V shader and create a ComputePipeline
 6. Record a CommandBuffer, submit it to a Queue with a Fence
 7. Wait for the fence and map the memory to read the results

# Errors

Vulkan result codes are returned as vk.Result values, which implement error.
Codes that are not failures are turned into booleans: Fence.Status reports
false while the fence is unsignaled, Device.WaitForFences reports false on
timeout and Swapchain.AcquireNextImage reports a suboptimal swapchain.
*/
package vkgl
