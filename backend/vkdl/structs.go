package vkdl

// C layouts of the Vulkan structures, as laid out by a 64-bit compiler.
// Pointer members are uintptr values referring to memory pinned by an arena
// for the duration of a call.

type structureType uint32

const (
	structureTypeApplicationInfo               structureType = 0
	structureTypeInstanceCreateInfo            structureType = 1
	structureTypeDeviceQueueCreateInfo         structureType = 2
	structureTypeDeviceCreateInfo              structureType = 3
	structureTypeSubmitInfo                    structureType = 4
	structureTypeMemoryAllocateInfo            structureType = 5
	structureTypeMappedMemoryRange             structureType = 6
	structureTypeFenceCreateInfo               structureType = 8
	structureTypeSemaphoreCreateInfo           structureType = 9
	structureTypeBufferCreateInfo              structureType = 12
	structureTypeImageCreateInfo               structureType = 14
	structureTypeImageViewCreateInfo           structureType = 15
	structureTypeShaderModuleCreateInfo        structureType = 16
	structureTypePipelineCacheCreateInfo       structureType = 17
	structureTypePipelineShaderStageCreateInfo structureType = 18
	structureTypePipelineVertexInputState      structureType = 19
	structureTypePipelineInputAssemblyState    structureType = 20
	structureTypePipelineViewportState         structureType = 22
	structureTypePipelineRasterizationState    structureType = 23
	structureTypePipelineMultisampleState      structureType = 24
	structureTypePipelineDepthStencilState     structureType = 25
	structureTypePipelineColorBlendState       structureType = 26
	structureTypePipelineDynamicState          structureType = 27
	structureTypeGraphicsPipelineCreateInfo    structureType = 28
	structureTypeComputePipelineCreateInfo     structureType = 29
	structureTypePipelineLayoutCreateInfo      structureType = 30
	structureTypeSamplerCreateInfo             structureType = 31
	structureTypeDescriptorSetLayoutCreateInfo structureType = 32
	structureTypeDescriptorPoolCreateInfo      structureType = 33
	structureTypeDescriptorSetAllocateInfo     structureType = 34
	structureTypeWriteDescriptorSet            structureType = 35
	structureTypeFramebufferCreateInfo         structureType = 37
	structureTypeRenderPassCreateInfo          structureType = 38
	structureTypeCommandPoolCreateInfo         structureType = 39
	structureTypeCommandBufferAllocateInfo     structureType = 40
	structureTypeCommandBufferInheritanceInfo  structureType = 41
	structureTypeCommandBufferBeginInfo        structureType = 42
	structureTypeRenderPassBeginInfo           structureType = 43
	structureTypeBufferMemoryBarrier           structureType = 44
	structureTypeImageMemoryBarrier            structureType = 45
	structureTypeMemoryBarrier                 structureType = 46
	structureTypeSwapchainCreateInfo           structureType = 1000001000
	structureTypePresentInfo                   structureType = 1000001001
	structureTypeDebugReportCallbackCreateInfo structureType = 1000011000
)

type cApplicationInfo struct {
	sType              structureType
	pNext              uintptr
	pApplicationName   uintptr
	applicationVersion uint32
	pEngineName        uintptr
	engineVersion      uint32
	apiVersion         uint32
}

type cInstanceCreateInfo struct {
	sType                   structureType
	pNext                   uintptr
	flags                   uint32
	pApplicationInfo        uintptr
	enabledLayerCount       uint32
	ppEnabledLayerNames     uintptr
	enabledExtensionCount   uint32
	ppEnabledExtensionNames uintptr
}

type cLayerProperties struct {
	layerName             [256]byte
	specVersion           uint32
	implementationVersion uint32
	description           [256]byte
}

type cExtensionProperties struct {
	extensionName [256]byte
	specVersion   uint32
}

// cPhysicalDeviceProperties keeps VkPhysicalDeviceLimits and the sparse
// properties opaque.
type cPhysicalDeviceProperties struct {
	apiVersion        uint32
	driverVersion     uint32
	vendorID          uint32
	deviceID          uint32
	deviceType        int32
	deviceName        [256]byte
	pipelineCacheUUID [16]byte
	limits            [63]uint64
	sparseProperties  [5]uint32
}

type cMemoryType struct {
	propertyFlags uint32
	heapIndex     uint32
}

type cMemoryHeap struct {
	size  uint64
	flags uint32
}

type cPhysicalDeviceMemoryProperties struct {
	memoryTypeCount uint32
	memoryTypes     [32]cMemoryType
	memoryHeapCount uint32
	memoryHeaps     [16]cMemoryHeap
}

type cDeviceQueueCreateInfo struct {
	sType            structureType
	pNext            uintptr
	flags            uint32
	queueFamilyIndex uint32
	queueCount       uint32
	pQueuePriorities uintptr
}

type cDeviceCreateInfo struct {
	sType                   structureType
	pNext                   uintptr
	flags                   uint32
	queueCreateInfoCount    uint32
	pQueueCreateInfos       uintptr
	enabledLayerCount       uint32
	ppEnabledLayerNames     uintptr
	enabledExtensionCount   uint32
	ppEnabledExtensionNames uintptr
	pEnabledFeatures        uintptr
}

type cSubmitInfo struct {
	sType                structureType
	pNext                uintptr
	waitSemaphoreCount   uint32
	pWaitSemaphores      uintptr
	pWaitDstStageMask    uintptr
	commandBufferCount   uint32
	pCommandBuffers      uintptr
	signalSemaphoreCount uint32
	pSignalSemaphores    uintptr
}

type cMemoryAllocateInfo struct {
	sType           structureType
	pNext           uintptr
	allocationSize  uint64
	memoryTypeIndex uint32
}

type cMappedMemoryRange struct {
	sType  structureType
	pNext  uintptr
	memory uint64
	offset uint64
	size   uint64
}

type cBufferCreateInfo struct {
	sType                 structureType
	pNext                 uintptr
	flags                 uint32
	size                  uint64
	usage                 uint32
	sharingMode           int32
	queueFamilyIndexCount uint32
	pQueueFamilyIndices   uintptr
}

type cImageCreateInfo struct {
	sType                 structureType
	pNext                 uintptr
	flags                 uint32
	imageType             int32
	format                int32
	extent                [3]uint32
	mipLevels             uint32
	arrayLayers           uint32
	samples               uint32
	tiling                int32
	usage                 uint32
	sharingMode           int32
	queueFamilyIndexCount uint32
	pQueueFamilyIndices   uintptr
	initialLayout         int32
}

type cImageViewCreateInfo struct {
	sType            structureType
	pNext            uintptr
	flags            uint32
	image            uint64
	viewType         int32
	format           int32
	components       [4]int32
	subresourceRange [5]uint32
}

type cSamplerCreateInfo struct {
	sType                   structureType
	pNext                   uintptr
	flags                   uint32
	magFilter               int32
	minFilter               int32
	mipmapMode              int32
	addressModeU            int32
	addressModeV            int32
	addressModeW            int32
	mipLodBias              float32
	anisotropyEnable        uint32
	maxAnisotropy           float32
	compareEnable           uint32
	compareOp               int32
	minLod                  float32
	maxLod                  float32
	borderColor             int32
	unnormalizedCoordinates uint32
}

type cShaderModuleCreateInfo struct {
	sType    structureType
	pNext    uintptr
	flags    uint32
	codeSize uintptr
	pCode    uintptr
}

type cPipelineCacheCreateInfo struct {
	sType           structureType
	pNext           uintptr
	flags           uint32
	initialDataSize uintptr
	pInitialData    uintptr
}

type cPipelineLayoutCreateInfo struct {
	sType                  structureType
	pNext                  uintptr
	flags                  uint32
	setLayoutCount         uint32
	pSetLayouts            uintptr
	pushConstantRangeCount uint32
	pPushConstantRanges    uintptr
}

type cPipelineShaderStageCreateInfo struct {
	sType               structureType
	pNext               uintptr
	flags               uint32
	stage               uint32
	module              uint64
	pName               uintptr
	pSpecializationInfo uintptr
}

type cComputePipelineCreateInfo struct {
	sType              structureType
	pNext              uintptr
	flags              uint32
	stage              cPipelineShaderStageCreateInfo
	layout             uint64
	basePipelineHandle uint64
	basePipelineIndex  int32
}

type cDescriptorSetLayoutBinding struct {
	binding            uint32
	descriptorType     int32
	descriptorCount    uint32
	stageFlags         uint32
	pImmutableSamplers uintptr
}

type cDescriptorSetLayoutCreateInfo struct {
	sType        structureType
	pNext        uintptr
	flags        uint32
	bindingCount uint32
	pBindings    uintptr
}

type cDescriptorPoolCreateInfo struct {
	sType         structureType
	pNext         uintptr
	flags         uint32
	maxSets       uint32
	poolSizeCount uint32
	pPoolSizes    uintptr
}

type cDescriptorSetAllocateInfo struct {
	sType              structureType
	pNext              uintptr
	descriptorPool     uint64
	descriptorSetCount uint32
	pSetLayouts        uintptr
}

type cWriteDescriptorSet struct {
	sType            structureType
	pNext            uintptr
	dstSet           uint64
	dstBinding       uint32
	dstArrayElement  uint32
	descriptorCount  uint32
	descriptorType   int32
	pImageInfo       uintptr
	pBufferInfo      uintptr
	pTexelBufferView uintptr
}

// cFlagsCreateInfo is the layout shared by VkFenceCreateInfo and
// VkSemaphoreCreateInfo.
type cFlagsCreateInfo struct {
	sType structureType
	pNext uintptr
	flags uint32
}

type cCommandPoolCreateInfo struct {
	sType            structureType
	pNext            uintptr
	flags            uint32
	queueFamilyIndex uint32
}

type cCommandBufferAllocateInfo struct {
	sType              structureType
	pNext              uintptr
	commandPool        uint64
	level              int32
	commandBufferCount uint32
}

type cCommandBufferBeginInfo struct {
	sType            structureType
	pNext            uintptr
	flags            uint32
	pInheritanceInfo uintptr
}

type cCommandBufferInheritanceInfo struct {
	sType                structureType
	pNext                uintptr
	renderPass           uint64
	subpass              uint32
	framebuffer          uint64
	occlusionQueryEnable uint32
	queryFlags           uint32
	pipelineStatistics   uint32
}

type cMemoryBarrier struct {
	sType         structureType
	pNext         uintptr
	srcAccessMask uint32
	dstAccessMask uint32
}

type cBufferMemoryBarrier struct {
	sType               structureType
	pNext               uintptr
	srcAccessMask       uint32
	dstAccessMask       uint32
	srcQueueFamilyIndex uint32
	dstQueueFamilyIndex uint32
	buffer              uint64
	offset              uint64
	size                uint64
}

type cImageMemoryBarrier struct {
	sType               structureType
	pNext               uintptr
	srcAccessMask       uint32
	dstAccessMask       uint32
	oldLayout           int32
	newLayout           int32
	srcQueueFamilyIndex uint32
	dstQueueFamilyIndex uint32
	image               uint64
	subresourceRange    [5]uint32
}

type cSwapchainCreateInfo struct {
	sType                 structureType
	pNext                 uintptr
	flags                 uint32
	surface               uint64
	minImageCount         uint32
	imageFormat           int32
	imageColorSpace       int32
	imageExtent           [2]uint32
	imageArrayLayers      uint32
	imageUsage            uint32
	imageSharingMode      int32
	queueFamilyIndexCount uint32
	pQueueFamilyIndices   uintptr
	preTransform          uint32
	compositeAlpha        uint32
	presentMode           int32
	clipped               uint32
	oldSwapchain          uint64
}

type cPresentInfo struct {
	sType              structureType
	pNext              uintptr
	waitSemaphoreCount uint32
	pWaitSemaphores    uintptr
	swapchainCount     uint32
	pSwapchains        uintptr
	pImageIndices      uintptr
	pResults           uintptr
}

type cDebugReportCallbackCreateInfo struct {
	sType       structureType
	pNext       uintptr
	flags       uint32
	pfnCallback uintptr
	pUserData   uintptr
}

type cSubpassDescription struct {
	flags                   uint32
	pipelineBindPoint       int32
	inputAttachmentCount    uint32
	pInputAttachments       uintptr
	colorAttachmentCount    uint32
	pColorAttachments       uintptr
	pResolveAttachments     uintptr
	pDepthStencilAttachment uintptr
	preserveAttachmentCount uint32
	pPreserveAttachments    uintptr
}

type cRenderPassCreateInfo struct {
	sType           structureType
	pNext           uintptr
	flags           uint32
	attachmentCount uint32
	pAttachments    uintptr
	subpassCount    uint32
	pSubpasses      uintptr
	dependencyCount uint32
	pDependencies   uintptr
}

type cFramebufferCreateInfo struct {
	sType           structureType
	pNext           uintptr
	flags           uint32
	renderPass      uint64
	attachmentCount uint32
	pAttachments    uintptr
	width           uint32
	height          uint32
	layers          uint32
}

type cRenderPassBeginInfo struct {
	sType           structureType
	pNext           uintptr
	renderPass      uint64
	framebuffer     uint64
	renderArea      [4]uint32
	clearValueCount uint32
	pClearValues    uintptr
}

type cPipelineVertexInputStateCreateInfo struct {
	sType                           structureType
	pNext                           uintptr
	flags                           uint32
	vertexBindingDescriptionCount   uint32
	pVertexBindingDescriptions      uintptr
	vertexAttributeDescriptionCount uint32
	pVertexAttributeDescriptions    uintptr
}

type cPipelineInputAssemblyStateCreateInfo struct {
	sType                  structureType
	pNext                  uintptr
	flags                  uint32
	topology               int32
	primitiveRestartEnable uint32
}

type cPipelineViewportStateCreateInfo struct {
	sType         structureType
	pNext         uintptr
	flags         uint32
	viewportCount uint32
	pViewports    uintptr
	scissorCount  uint32
	pScissors     uintptr
}

type cPipelineRasterizationStateCreateInfo struct {
	sType                   structureType
	pNext                   uintptr
	flags                   uint32
	depthClampEnable        uint32
	rasterizerDiscardEnable uint32
	polygonMode             int32
	cullMode                uint32
	frontFace               int32
	depthBiasEnable         uint32
	depthBiasConstantFactor float32
	depthBiasClamp          float32
	depthBiasSlopeFactor    float32
	lineWidth               float32
}

type cPipelineMultisampleStateCreateInfo struct {
	sType                 structureType
	pNext                 uintptr
	flags                 uint32
	rasterizationSamples  uint32
	sampleShadingEnable   uint32
	minSampleShading      float32
	pSampleMask           uintptr
	alphaToCoverageEnable uint32
	alphaToOneEnable      uint32
}

type cPipelineDepthStencilStateCreateInfo struct {
	sType                 structureType
	pNext                 uintptr
	flags                 uint32
	depthTestEnable       uint32
	depthWriteEnable      uint32
	depthCompareOp        int32
	depthBoundsTestEnable uint32
	stencilTestEnable     uint32
	front                 [7]uint32
	back                  [7]uint32
	minDepthBounds        float32
	maxDepthBounds        float32
}

type cPipelineColorBlendAttachmentState struct {
	blendEnable         uint32
	srcColorBlendFactor int32
	dstColorBlendFactor int32
	colorBlendOp        int32
	srcAlphaBlendFactor int32
	dstAlphaBlendFactor int32
	alphaBlendOp        int32
	colorWriteMask      uint32
}

type cPipelineColorBlendStateCreateInfo struct {
	sType           structureType
	pNext           uintptr
	flags           uint32
	logicOpEnable   uint32
	logicOp         int32
	attachmentCount uint32
	pAttachments    uintptr
	blendConstants  [4]float32
}

type cPipelineDynamicStateCreateInfo struct {
	sType             structureType
	pNext             uintptr
	flags             uint32
	dynamicStateCount uint32
	pDynamicStates    uintptr
}

type cGraphicsPipelineCreateInfo struct {
	sType               structureType
	pNext               uintptr
	flags               uint32
	stageCount          uint32
	pStages             uintptr
	pVertexInputState   uintptr
	pInputAssemblyState uintptr
	pTessellationState  uintptr
	pViewportState      uintptr
	pRasterizationState uintptr
	pMultisampleState   uintptr
	pDepthStencilState  uintptr
	pColorBlendState    uintptr
	pDynamicState       uintptr
	layout              uint64
	renderPass          uint64
	subpass             uint32
	basePipelineHandle  uint64
	basePipelineIndex   int32
}
