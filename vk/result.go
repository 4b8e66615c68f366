package vk

import "fmt"

// Result is VkResult. Negative values are errors, positive values are
// status codes that the wrappers turn into boolean returns.
type Result int32

const (
	Success                      Result = 0
	NotReady                     Result = 1
	Timeout                      Result = 2
	EventSet                     Result = 3
	EventReset                   Result = 4
	Incomplete                   Result = 5
	ErrorOutOfHostMemory         Result = -1
	ErrorOutOfDeviceMemory       Result = -2
	ErrorInitializationFailed    Result = -3
	ErrorDeviceLost              Result = -4
	ErrorMemoryMapFailed         Result = -5
	ErrorLayerNotPresent         Result = -6
	ErrorExtensionNotPresent     Result = -7
	ErrorFeatureNotPresent       Result = -8
	ErrorIncompatibleDriver      Result = -9
	ErrorTooManyObjects          Result = -10
	ErrorFormatNotSupported      Result = -11
	ErrorFragmentedPool          Result = -12
	ErrorUnknown                 Result = -13
	ErrorOutOfPoolMemory         Result = -1000069000
	ErrorInvalidExternalHandle   Result = -1000072003
	ErrorFragmentation           Result = -1000161000
	ErrorSurfaceLost             Result = -1000000000
	ErrorNativeWindowInUse       Result = -1000000001
	Suboptimal                   Result = 1000001003
	ErrorOutOfDate               Result = -1000001004
	ErrorIncompatibleDisplay     Result = -1000003001
	ErrorValidationFailed        Result = -1000011001
	ErrorInvalidShader           Result = -1000012000
	ErrorNotPermitted            Result = -1000174001
	ErrorFullScreenExclusiveLost Result = -1000255000
)

var resultNames = map[Result]string{
	Success:                      "VK_SUCCESS",
	NotReady:                     "VK_NOT_READY",
	Timeout:                      "VK_TIMEOUT",
	EventSet:                     "VK_EVENT_SET",
	EventReset:                   "VK_EVENT_RESET",
	Incomplete:                   "VK_INCOMPLETE",
	ErrorOutOfHostMemory:         "VK_ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:       "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorInitializationFailed:    "VK_ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:              "VK_ERROR_DEVICE_LOST",
	ErrorMemoryMapFailed:         "VK_ERROR_MEMORY_MAP_FAILED",
	ErrorLayerNotPresent:         "VK_ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:     "VK_ERROR_EXTENSION_NOT_PRESENT",
	ErrorFeatureNotPresent:       "VK_ERROR_FEATURE_NOT_PRESENT",
	ErrorIncompatibleDriver:      "VK_ERROR_INCOMPATIBLE_DRIVER",
	ErrorTooManyObjects:          "VK_ERROR_TOO_MANY_OBJECTS",
	ErrorFormatNotSupported:      "VK_ERROR_FORMAT_NOT_SUPPORTED",
	ErrorFragmentedPool:          "VK_ERROR_FRAGMENTED_POOL",
	ErrorUnknown:                 "VK_ERROR_UNKNOWN",
	ErrorOutOfPoolMemory:         "VK_ERROR_OUT_OF_POOL_MEMORY",
	ErrorInvalidExternalHandle:   "VK_ERROR_INVALID_EXTERNAL_HANDLE",
	ErrorFragmentation:           "VK_ERROR_FRAGMENTATION",
	ErrorSurfaceLost:             "VK_ERROR_SURFACE_LOST_KHR",
	ErrorNativeWindowInUse:       "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR",
	Suboptimal:                   "VK_SUBOPTIMAL_KHR",
	ErrorOutOfDate:               "VK_ERROR_OUT_OF_DATE_KHR",
	ErrorIncompatibleDisplay:     "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR",
	ErrorValidationFailed:        "VK_ERROR_VALIDATION_FAILED_EXT",
	ErrorInvalidShader:           "VK_ERROR_INVALID_SHADER_NV",
	ErrorNotPermitted:            "VK_ERROR_NOT_PERMITTED_KHR",
	ErrorFullScreenExclusiveLost: "VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

// Error implements the error interface so a Result can be returned and
// compared with errors.Is.
func (r Result) Error() string {
	return "vulkan: " + r.String()
}

// IsError reports whether r is one of the negative error codes.
func (r Result) IsError() bool { return r < 0 }

// Error converts a result into an error, returning nil only for Success.
// Status codes such as Timeout or NotReady are returned as errors as well;
// wrappers that expect them check for them before calling Error.
func Error(r Result) error {
	if r == Success {
		return nil
	}
	return r
}
