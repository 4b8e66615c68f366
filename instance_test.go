package vkgl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
	"github.com/celer/vkgl/vkgltest"
)

func TestAppWithoutLoader(t *testing.T) {
	var app App
	_, err := app.CreateInstance()
	assert.ErrorIs(t, err, ErrNoLoader)
	_, err = app.SupportedLayers()
	assert.ErrorIs(t, err, ErrNoLoader)
}

func TestSupportedLayersAndExtensions(t *testing.T) {
	drv := vkgltest.New()
	app := App{Loader: drv}

	layers, err := app.SupportedLayers()
	require.NoError(t, err)
	assert.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, layers)

	exts, err := app.SupportedExtensions()
	require.NoError(t, err)
	assert.Equal(t, []string{"VK_KHR_surface", "VK_EXT_debug_report"}, exts)

	v, err := app.InstanceVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.3.250", v.String())
}

func TestEnableLayer(t *testing.T) {
	app := &App{Loader: vkgltest.New()}
	require.NoError(t, app.EnableDebugging())
	require.NoError(t, app.EnableDebugging())
	assert.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, app.EnabledLayers)
	assert.Equal(t, []string{"VK_EXT_debug_report"}, app.EnabledExtensions)

	_, err := app.EnableLayer("VK_LAYER_missing")
	assert.True(t, errors.Is(err, ErrLayerNotSupported))
}

func TestCreateInstanceForwardsInfo(t *testing.T) {
	drv := vkgltest.New()
	app := &App{
		Name:       "compute",
		EngineName: "none",
		Version:    Version{1, 2, 3},
		APIVersion: Version{Major: 1, Minor: 2},
		Loader:     drv,
	}
	app.EnableExtension("VK_KHR_surface")

	instance, err := app.CreateInstance()
	require.NoError(t, err)
	assert.NotEqual(t, vk.NullInstance, instance.VKInstance)

	c, ok := drv.Last("CreateInstance")
	require.True(t, ok)
	info := c.Args[0].(vk.InstanceCreateInfo)
	assert.Equal(t, "compute", info.ApplicationInfo.ApplicationName)
	assert.Equal(t, vk.MakeVersion(1, 2, 3), info.ApplicationInfo.ApplicationVersion)
	assert.Equal(t, vk.APIVersion12, info.ApplicationInfo.APIVersion)
	assert.Equal(t, []string{"VK_KHR_surface"}, info.EnabledExtensionNames)

	instance.Destroy()
	instance.Destroy()
	assert.Equal(t, 1, drv.Count("DestroyInstance"))
	assert.Equal(t, 0, drv.Live("Instance"))
}

func TestCreateInstanceDefaultsAPIVersion(t *testing.T) {
	app := &App{}
	assert.Equal(t, vk.APIVersion10, app.VKApplicationInfo().APIVersion)
}

func TestCreateInstanceError(t *testing.T) {
	drv := vkgltest.New()
	drv.Results = map[string]vk.Result{"CreateInstance": vk.ErrorIncompatibleDriver}
	_, err := (&App{Loader: drv}).CreateInstance()
	assert.ErrorIs(t, err, vk.ErrorIncompatibleDriver)
}

func TestPhysicalDevicesRetriesIncomplete(t *testing.T) {
	drv := vkgltest.New()
	instance, err := (&App{Loader: drv}).CreateInstance()
	require.NoError(t, err)

	grown := false
	drv.OnCall = func(name string) {
		// a device is hot-plugged between the count and fill calls
		if name == "EnumeratePhysicalDevices" && drv.Count(name) == 1 && !grown {
			grown = true
			drv.PhysicalDevices = append(drv.PhysicalDevices, vkgltest.DefaultPhysicalDevice("Second GPU"))
		}
	}

	devices, err := instance.PhysicalDevices()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, 4, drv.Count("EnumeratePhysicalDevices"))
	assert.Equal(t, "Fake GPU", devices[0].Name())
	assert.Equal(t, "Second GPU", devices[1].Name())
}

func TestDebugReportCallback(t *testing.T) {
	drv := vkgltest.New()
	instance, err := (&App{Loader: drv}).CreateInstance()
	require.NoError(t, err)

	var got []string
	cb, err := instance.CreateDebugReportCallback(vk.DebugReportErrorBit, func(flags vk.DebugReportFlags, _ vk.DebugReportObjectType,
		_ uint64, _ uint, _ int32, layerPrefix, message string) bool {
		got = append(got, layerPrefix+": "+message)
		return false
	})
	require.NoError(t, err)

	drv.Report(vk.DebugReportErrorBit, "Validation", "bad handle")
	drv.Report(vk.DebugReportInformationBit, "Loader", "ignored")
	assert.Equal(t, []string{"Validation: bad handle"}, got)

	cb.Destroy()
	cb.Destroy()
	assert.Equal(t, 1, drv.Count("DestroyDebugReportCallback"))
}

func TestDebugReportLevel(t *testing.T) {
	assert.Equal(t, "ERROR", DebugReportLevel(vk.DebugReportErrorBit|vk.DebugReportWarningBit).String())
	assert.Equal(t, "WARN", DebugReportLevel(vk.DebugReportPerformanceWarningBit).String())
	assert.Equal(t, "DEBUG", DebugReportLevel(vk.DebugReportDebugBit).String())
	assert.Equal(t, "INFO", DebugReportLevel(vk.DebugReportInformationBit).String())
}
