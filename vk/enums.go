package vk

type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGpu PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGpu   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGpu    PhysicalDeviceType = 3
	PhysicalDeviceTypeCpu           PhysicalDeviceType = 4
)

func (t PhysicalDeviceType) String() string {
	switch t {
	case PhysicalDeviceTypeIntegratedGpu:
		return "integrated-gpu"
	case PhysicalDeviceTypeDiscreteGpu:
		return "discrete-gpu"
	case PhysicalDeviceTypeVirtualGpu:
		return "virtual-gpu"
	case PhysicalDeviceTypeCpu:
		return "cpu"
	default:
		return "other"
	}
}

type QueueFlags uint32

const (
	QueueGraphicsBit      QueueFlags = 0x1
	QueueComputeBit       QueueFlags = 0x2
	QueueTransferBit      QueueFlags = 0x4
	QueueSparseBindingBit QueueFlags = 0x8
	QueueProtectedBit     QueueFlags = 0x10
)

type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x1
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x2
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x4
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x8
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x10
	MemoryPropertyProtectedBit       MemoryPropertyFlags = 0x20
)

type MemoryHeapFlags uint32

const (
	MemoryHeapDeviceLocalBit   MemoryHeapFlags = 0x1
	MemoryHeapMultiInstanceBit MemoryHeapFlags = 0x2
)

type BufferCreateFlags uint32

type BufferUsageFlags uint32

const (
	BufferUsageTransferSrcBit        BufferUsageFlags = 0x1
	BufferUsageTransferDstBit        BufferUsageFlags = 0x2
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 0x4
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 0x8
	BufferUsageUniformBufferBit      BufferUsageFlags = 0x10
	BufferUsageStorageBufferBit      BufferUsageFlags = 0x20
	BufferUsageIndexBufferBit        BufferUsageFlags = 0x40
	BufferUsageVertexBufferBit       BufferUsageFlags = 0x80
	BufferUsageIndirectBufferBit     BufferUsageFlags = 0x100
)

type SharingMode int32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

type Format int32

const (
	FormatUndefined          Format = 0
	FormatR8g8b8a8Unorm      Format = 37
	FormatR8g8b8a8Uint       Format = 41
	FormatR8g8b8a8Srgb       Format = 43
	FormatB8g8r8a8Unorm      Format = 44
	FormatB8g8r8a8Srgb       Format = 50
	FormatR32Uint            Format = 98
	FormatR32Sfloat          Format = 100
	FormatR32g32Sfloat       Format = 103
	FormatR32g32b32Sfloat    Format = 106
	FormatR32g32b32a32Sfloat Format = 109
	FormatD32Sfloat          Format = 126
	FormatD24UnormS8Uint     Format = 129
)

type ImageCreateFlags uint32

type ImageType int32

const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x1
	ImageUsageTransferDstBit            ImageUsageFlags = 0x2
	ImageUsageSampledBit                ImageUsageFlags = 0x4
	ImageUsageStorageBit                ImageUsageFlags = 0x8
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x10
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x20
	ImageUsageTransientAttachmentBit    ImageUsageFlags = 0x40
	ImageUsageInputAttachmentBit        ImageUsageFlags = 0x80
)

type SampleCountFlags uint32

const (
	SampleCount1Bit SampleCountFlags = 0x1
	SampleCount2Bit SampleCountFlags = 0x2
	SampleCount4Bit SampleCountFlags = 0x4
	SampleCount8Bit SampleCountFlags = 0x8
)

type ImageLayout int32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
	ImageLayoutPresentSrc                    ImageLayout = 1000001002
)

type ImageViewType int32

const (
	ImageViewType1d        ImageViewType = 0
	ImageViewType2d        ImageViewType = 1
	ImageViewType3d        ImageViewType = 2
	ImageViewTypeCube      ImageViewType = 3
	ImageViewType1dArray   ImageViewType = 4
	ImageViewType2dArray   ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

type ComponentSwizzle int32

const (
	ComponentSwizzleIdentity ComponentSwizzle = 0
	ComponentSwizzleZero     ComponentSwizzle = 1
	ComponentSwizzleOne      ComponentSwizzle = 2
	ComponentSwizzleR        ComponentSwizzle = 3
	ComponentSwizzleG        ComponentSwizzle = 4
	ComponentSwizzleB        ComponentSwizzle = 5
	ComponentSwizzleA        ComponentSwizzle = 6
)

type ImageAspectFlags uint32

const (
	ImageAspectColorBit   ImageAspectFlags = 0x1
	ImageAspectDepthBit   ImageAspectFlags = 0x2
	ImageAspectStencilBit ImageAspectFlags = 0x4
)

type Filter int32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

type SamplerMipmapMode int32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2
	SamplerAddressModeClampToBorder  SamplerAddressMode = 3
)

type BorderColor int32

const (
	BorderColorFloatTransparentBlack BorderColor = 0
	BorderColorIntTransparentBlack   BorderColor = 1
	BorderColorFloatOpaqueBlack      BorderColor = 2
	BorderColorIntOpaqueBlack        BorderColor = 3
	BorderColorFloatOpaqueWhite      BorderColor = 4
	BorderColorIntOpaqueWhite        BorderColor = 5
)

type CompareOp int32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

type ShaderStageFlags uint32

const (
	ShaderStageVertexBit                 ShaderStageFlags = 0x1
	ShaderStageTessellationControlBit    ShaderStageFlags = 0x2
	ShaderStageTessellationEvaluationBit ShaderStageFlags = 0x4
	ShaderStageGeometryBit               ShaderStageFlags = 0x8
	ShaderStageFragmentBit               ShaderStageFlags = 0x10
	ShaderStageComputeBit                ShaderStageFlags = 0x20
	ShaderStageAllGraphics               ShaderStageFlags = 0x1F
	ShaderStageAll                       ShaderStageFlags = 0x7FFFFFFF
)

type PipelineCreateFlags uint32

const (
	PipelineCreateDisableOptimizationBit PipelineCreateFlags = 0x1
	PipelineCreateAllowDerivativesBit    PipelineCreateFlags = 0x2
	PipelineCreateDerivativeBit          PipelineCreateFlags = 0x4
)

type DescriptorType int32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

// UsesImageInfo reports whether writes of this type read DescriptorImageInfo.
func (t DescriptorType) UsesImageInfo() bool {
	switch t {
	case DescriptorTypeSampler, DescriptorTypeCombinedImageSampler, DescriptorTypeSampledImage,
		DescriptorTypeStorageImage, DescriptorTypeInputAttachment:
		return true
	}
	return false
}

type DescriptorPoolCreateFlags uint32

const DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 0x1

type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x1
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x2
)

type CommandPoolResetFlags uint32

const CommandPoolResetReleaseResourcesBit CommandPoolResetFlags = 0x1

type CommandBufferLevel int32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit      CommandBufferUsageFlags = 0x1
	CommandBufferUsageRenderPassContinueBit CommandBufferUsageFlags = 0x2
	CommandBufferUsageSimultaneousUseBit    CommandBufferUsageFlags = 0x4
)

type CommandBufferResetFlags uint32

const CommandBufferResetReleaseResourcesBit CommandBufferResetFlags = 0x1

type FenceCreateFlags uint32

const FenceCreateSignaledBit FenceCreateFlags = 0x1

type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipeBit                    PipelineStageFlags = 0x1
	PipelineStageDrawIndirectBit                 PipelineStageFlags = 0x2
	PipelineStageVertexInputBit                  PipelineStageFlags = 0x4
	PipelineStageVertexShaderBit                 PipelineStageFlags = 0x8
	PipelineStageTessellationControlShaderBit    PipelineStageFlags = 0x10
	PipelineStageTessellationEvaluationShaderBit PipelineStageFlags = 0x20
	PipelineStageGeometryShaderBit               PipelineStageFlags = 0x40
	PipelineStageFragmentShaderBit               PipelineStageFlags = 0x80
	PipelineStageEarlyFragmentTestsBit           PipelineStageFlags = 0x100
	PipelineStageLateFragmentTestsBit            PipelineStageFlags = 0x200
	PipelineStageColorAttachmentOutputBit        PipelineStageFlags = 0x400
	PipelineStageComputeShaderBit                PipelineStageFlags = 0x800
	PipelineStageTransferBit                     PipelineStageFlags = 0x1000
	PipelineStageBottomOfPipeBit                 PipelineStageFlags = 0x2000
	PipelineStageHostBit                         PipelineStageFlags = 0x4000
	PipelineStageAllGraphicsBit                  PipelineStageFlags = 0x8000
	PipelineStageAllCommandsBit                  PipelineStageFlags = 0x10000
)

type AccessFlags uint32

const (
	AccessIndirectCommandReadBit         AccessFlags = 0x1
	AccessIndexReadBit                   AccessFlags = 0x2
	AccessVertexAttributeReadBit         AccessFlags = 0x4
	AccessUniformReadBit                 AccessFlags = 0x8
	AccessInputAttachmentReadBit         AccessFlags = 0x10
	AccessShaderReadBit                  AccessFlags = 0x20
	AccessShaderWriteBit                 AccessFlags = 0x40
	AccessColorAttachmentReadBit         AccessFlags = 0x80
	AccessColorAttachmentWriteBit        AccessFlags = 0x100
	AccessDepthStencilAttachmentReadBit  AccessFlags = 0x200
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x400
	AccessTransferReadBit                AccessFlags = 0x800
	AccessTransferWriteBit               AccessFlags = 0x1000
	AccessHostReadBit                    AccessFlags = 0x2000
	AccessHostWriteBit                   AccessFlags = 0x4000
	AccessMemoryReadBit                  AccessFlags = 0x8000
	AccessMemoryWriteBit                 AccessFlags = 0x10000
)

type DependencyFlags uint32

const DependencyByRegionBit DependencyFlags = 0x1

type FormatFeatureFlags uint32

const (
	FormatFeatureSampledImageBit             FormatFeatureFlags = 0x1
	FormatFeatureStorageImageBit             FormatFeatureFlags = 0x2
	FormatFeatureStorageImageAtomicBit       FormatFeatureFlags = 0x4
	FormatFeatureUniformTexelBufferBit       FormatFeatureFlags = 0x8
	FormatFeatureStorageTexelBufferBit       FormatFeatureFlags = 0x10
	FormatFeatureStorageTexelBufferAtomicBit FormatFeatureFlags = 0x20
	FormatFeatureVertexBufferBit             FormatFeatureFlags = 0x40
	FormatFeatureColorAttachmentBit          FormatFeatureFlags = 0x80
	FormatFeatureColorAttachmentBlendBit     FormatFeatureFlags = 0x100
	FormatFeatureDepthStencilAttachmentBit   FormatFeatureFlags = 0x200
	FormatFeatureBlitSrcBit                  FormatFeatureFlags = 0x400
	FormatFeatureBlitDstBit                  FormatFeatureFlags = 0x800
	FormatFeatureSampledImageFilterLinearBit FormatFeatureFlags = 0x1000
)

type PresentMode int32

const (
	PresentModeImmediate   PresentMode = 0
	PresentModeMailbox     PresentMode = 1
	PresentModeFifo        PresentMode = 2
	PresentModeFifoRelaxed PresentMode = 3
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeImmediate:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	case PresentModeFifo:
		return "fifo"
	case PresentModeFifoRelaxed:
		return "fifo-relaxed"
	}
	return "unknown"
}

type ColorSpace int32

const ColorSpaceSrgbNonlinear ColorSpace = 0

type SurfaceTransformFlags uint32

const (
	SurfaceTransformIdentityBit  SurfaceTransformFlags = 0x1
	SurfaceTransformRotate90Bit  SurfaceTransformFlags = 0x2
	SurfaceTransformRotate180Bit SurfaceTransformFlags = 0x4
	SurfaceTransformRotate270Bit SurfaceTransformFlags = 0x8
	SurfaceTransformInheritBit   SurfaceTransformFlags = 0x100
)

type CompositeAlphaFlags uint32

const (
	CompositeAlphaOpaqueBit         CompositeAlphaFlags = 0x1
	CompositeAlphaPreMultipliedBit  CompositeAlphaFlags = 0x2
	CompositeAlphaPostMultipliedBit CompositeAlphaFlags = 0x4
	CompositeAlphaInheritBit        CompositeAlphaFlags = 0x8
)

type DebugReportFlags uint32

const (
	DebugReportInformationBit        DebugReportFlags = 0x1
	DebugReportWarningBit            DebugReportFlags = 0x2
	DebugReportPerformanceWarningBit DebugReportFlags = 0x4
	DebugReportErrorBit              DebugReportFlags = 0x8
	DebugReportDebugBit              DebugReportFlags = 0x10
)

type DebugReportObjectType int32

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

type SubpassContents int32

const (
	SubpassContentsInline                  SubpassContents = 0
	SubpassContentsSecondaryCommandBuffers SubpassContents = 1
)

type IndexType int32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

type PrimitiveTopology int32

const (
	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
	PrimitiveTopologyTriangleFan   PrimitiveTopology = 5
)

type PolygonMode int32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

type CullModeFlags uint32

const (
	CullModeNone         CullModeFlags = 0
	CullModeFrontBit     CullModeFlags = 0x1
	CullModeBackBit      CullModeFlags = 0x2
	CullModeFrontAndBack CullModeFlags = 0x3
)

type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

type DynamicState int32

const (
	DynamicStateViewport  DynamicState = 0
	DynamicStateScissor   DynamicState = 1
	DynamicStateLineWidth DynamicState = 2
)

type ColorComponentFlags uint32

const (
	ColorComponentRBit ColorComponentFlags = 0x1
	ColorComponentGBit ColorComponentFlags = 0x2
	ColorComponentBBit ColorComponentFlags = 0x4
	ColorComponentABit ColorComponentFlags = 0x8
)

type BlendFactor int32

const (
	BlendFactorZero             BlendFactor = 0
	BlendFactorOne              BlendFactor = 1
	BlendFactorSrcColor         BlendFactor = 2
	BlendFactorOneMinusSrcColor BlendFactor = 3
	BlendFactorDstColor         BlendFactor = 4
	BlendFactorOneMinusDstColor BlendFactor = 5
	BlendFactorSrcAlpha         BlendFactor = 6
	BlendFactorOneMinusSrcAlpha BlendFactor = 7
	BlendFactorDstAlpha         BlendFactor = 8
	BlendFactorOneMinusDstAlpha BlendFactor = 9
)

type BlendOp int32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

type LogicOp int32

const LogicOpCopy LogicOp = 3

type StencilOp int32

const (
	StencilOpKeep    StencilOp = 0
	StencilOpZero    StencilOp = 1
	StencilOpReplace StencilOp = 2
)

type VertexInputRate int32

const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)
