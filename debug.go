package vkgl

import (
	"context"
	"errors"
	"log/slog"

	"github.com/celer/vkgl/vk"
)

// ErrDebugReportUnavailable is returned when the instance dispatch table
// has no VK_EXT_debug_report entry points.
var ErrDebugReportUnavailable = errors.New("vkgl: VK_EXT_debug_report not available")

// DebugReportCallback is a registered VK_EXT_debug_report callback.
type DebugReportCallback struct {
	Instance   *Instance
	VKCallback vk.DebugReportCallback
}

// CreateDebugReportCallback registers fn for messages matching flags. The
// instance must have been created with the VK_EXT_debug_report extension.
func (i *Instance) CreateDebugReportCallback(flags vk.DebugReportFlags, fn vk.DebugReportFunc) (*DebugReportCallback, error) {
	dr, ok := i.Commands.(vk.DebugReportCommands)
	if !ok {
		return nil, ErrDebugReportUnavailable
	}
	var callback vk.DebugReportCallback
	err := vk.Error(dr.CreateDebugReportCallback(i.VKInstance, &vk.DebugReportCallbackCreateInfo{
		Flags:    flags,
		Callback: fn,
	}, &callback))
	if err != nil {
		return nil, err
	}
	return &DebugReportCallback{Instance: i, VKCallback: callback}, nil
}

// UseDefaultDebugCallback routes errors and warnings from the validation
// layers to slog.
func (i *Instance) UseDefaultDebugCallback() (*DebugReportCallback, error) {
	return i.CreateDebugReportCallback(
		vk.DebugReportErrorBit|vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit,
		DefaultDebugCallback)
}

// DebugReportLevel maps debug report flags onto a slog level.
func DebugReportLevel(flags vk.DebugReportFlags) slog.Level {
	switch {
	case flags&vk.DebugReportErrorBit != 0:
		return slog.LevelError
	case flags&(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		return slog.LevelWarn
	case flags&vk.DebugReportDebugBit != 0:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// DefaultDebugCallback logs the message through the default slog logger.
func DefaultDebugCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, layerPrefix string, message string) bool {
	slog.Log(context.Background(), DebugReportLevel(flags), message,
		"layer", layerPrefix, "code", messageCode, "object", object,
		"performance", flags&vk.DebugReportPerformanceWarningBit != 0)
	return false
}

// Destroy unregisters the callback.
func (d *DebugReportCallback) Destroy() {
	if d.VKCallback == vk.NullDebugReportCallback {
		return
	}
	if dr, ok := d.Instance.Commands.(vk.DebugReportCommands); ok {
		dr.DestroyDebugReportCallback(d.Instance.VKInstance, d.VKCallback)
	}
	d.VKCallback = vk.NullDebugReportCallback
}
