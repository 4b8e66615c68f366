package vkgl

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/celer/vkgl/vk"
)

var (
	// ErrNoLoader is returned when an App has no vk.Loader configured.
	ErrNoLoader = errors.New("vkgl: no vulkan loader configured")
	// ErrLayerNotSupported is returned by EnableLayer for unknown layers.
	ErrLayerNotSupported = errors.New("vkgl: layer not supported")
)

// Version is used to specify versions of components
type Version struct {
	Major int
	Minor int
	Patch int
}

// VKVersion returns a Vulkan compatible version representation
func (v Version) VKVersion() vk.Version {
	return vk.MakeVersion(v.Major, v.Minor, v.Patch)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// App is used to provide information about this specific application to Vulkan
type App struct {
	// Name the name of the application
	Name string
	// Engine the name of the engine associated with the application
	EngineName string
	// Version the version of the application
	Version Version
	// APIVersion the expected minimum version of the Vulkan API (i.e. 1.0.0)
	APIVersion Version

	// EnabledLayers the enabled layers
	EnabledLayers []string

	// EnabledExtensions the enabled extensions
	EnabledExtensions []string

	// Loader provides the global Vulkan commands, see backend/vkdl and
	// backend/vkgo.
	Loader vk.Loader
}

func (a *App) loader() (vk.Loader, error) {
	if a.Loader == nil {
		return nil, ErrNoLoader
	}
	return a.Loader, nil
}

// InstanceVersion returns the highest instance-level API version the loader
// supports.
func (a *App) InstanceVersion() (vk.Version, error) {
	l, err := a.loader()
	if err != nil {
		return 0, err
	}
	v, r := l.EnumerateInstanceVersion()
	if err := vk.Error(r); err != nil {
		return 0, err
	}
	return v, nil
}

// SupportedLayers returns the names of the instance layers the loader knows about
func (a *App) SupportedLayers() ([]string, error) {
	props, err := a.LayerProperties()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.LayerName
	}
	return names, nil
}

// LayerProperties returns the full description of every instance layer.
func (a *App) LayerProperties() ([]vk.LayerProperties, error) {
	l, err := a.loader()
	if err != nil {
		return nil, err
	}
	return enumerate(l.EnumerateInstanceLayerProperties)
}

// SupportedExtensions returns the names of the instance extensions
func (a *App) SupportedExtensions() ([]string, error) {
	props, err := a.ExtensionProperties("")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.ExtensionName
	}
	return names, nil
}

// ExtensionProperties returns the instance extensions provided by the
// implementation, or by the named layer.
func (a *App) ExtensionProperties(layer string) ([]vk.ExtensionProperties, error) {
	l, err := a.loader()
	if err != nil {
		return nil, err
	}
	return enumerate(func(count *uint32, out []vk.ExtensionProperties) vk.Result {
		return l.EnumerateInstanceExtensionProperties(layer, count, out)
	})
}

/*
	VK_LAYER_KHRONOS_validation - The main, comprehensive Khronos validation layer. Vulkan is an
	Explicit API, minimal error checking is done inside a Vulkan driver. The validation layer
	checks that the application uses the API correctly and reports problems through
	VK_EXT_debug_report.

	see: https://vulkan.lunarg.com/doc/sdk/latest/linux/khronos_validation_layer.html
*/

// EnableDebugging enables the Khronos validation layer and the debug report
// extension.
func (a *App) EnableDebugging() error {
	if _, err := a.EnableLayer("VK_LAYER_KHRONOS_validation"); err != nil {
		return err
	}
	a.EnableExtension("VK_EXT_debug_report")
	return nil
}

// Enable a specific layer
func (a *App) EnableLayer(layer string) (*App, error) {
	layers, err := a.SupportedLayers()
	if err != nil {
		return a, fmt.Errorf("error getting supported layers: %w", err)
	}
	if !slices.Contains(layers, layer) {
		return a, fmt.Errorf("layer '%s': %w", layer, ErrLayerNotSupported)
	}
	if !slices.Contains(a.EnabledLayers, layer) {
		a.EnabledLayers = append(a.EnabledLayers, layer)
	}
	return a, nil
}

// Enable an extension for use by the application
func (a *App) EnableExtension(extension string) *App {
	if !slices.Contains(a.EnabledExtensions, extension) {
		a.EnabledExtensions = append(a.EnabledExtensions, extension)
	}
	return a
}

// VKApplicationInfo creates a structure representing this application in a Vulkan friendly format
func (a *App) VKApplicationInfo() vk.ApplicationInfo {
	api := a.APIVersion
	if api.Major < 1 {
		api = Version{Major: 1}
	}
	return vk.ApplicationInfo{
		ApplicationName:    a.Name,
		ApplicationVersion: a.Version.VKVersion(),
		EngineName:         a.EngineName,
		APIVersion:         api.VKVersion(),
	}
}

// CreateInstance creates the Vulkan Instance and resolves its dispatch table
func (a *App) CreateInstance() (*Instance, error) {
	l, err := a.loader()
	if err != nil {
		return nil, err
	}
	appInfo := a.VKApplicationInfo()

	createInfo := vk.InstanceCreateInfo{
		ApplicationInfo:       &appInfo,
		EnabledLayerNames:     a.EnabledLayers,
		EnabledExtensionNames: a.EnabledExtensions,
	}

	var instance vk.Instance
	if err := vk.Error(l.CreateInstance(&createInfo, &instance)); err != nil {
		return nil, fmt.Errorf("creating instance: %w", err)
	}

	commands, err := l.InstanceCommands(instance)
	if err != nil {
		return nil, fmt.Errorf("loading instance commands: %w", err)
	}

	slog.Debug("vulkan instance created", "app", a.Name, "api", appInfo.APIVersion,
		"layers", a.EnabledLayers, "extensions", a.EnabledExtensions)

	return &Instance{App: a, VKInstance: instance, Commands: commands}, nil
}

// Instance is an instance of the Vulkan subsystem
type Instance struct {
	App *App
	// VKInstance is the native Vulkan instance object
	VKInstance vk.Instance
	// Commands is the dispatch table resolved for this instance
	Commands vk.InstanceCommands
}

// PhysicalDevices returns a list of physical devices known to Vulkan
func (i *Instance) PhysicalDevices() ([]*PhysicalDevice, error) {
	devices, err := enumerate(func(count *uint32, out []vk.PhysicalDevice) vk.Result {
		return i.Commands.EnumeratePhysicalDevices(i.VKInstance, count, out)
	})
	if err != nil {
		return nil, err
	}

	ret := make([]*PhysicalDevice, len(devices))
	for j, device := range devices {
		ret[j] = &PhysicalDevice{Instance: i, VKPhysicalDevice: device}
	}
	return ret, nil
}

// Destroy destroys the instance. Every object created from it must be
// destroyed first.
func (i *Instance) Destroy() {
	if i.VKInstance == vk.NullInstance {
		return
	}
	i.Commands.DestroyInstance(i.VKInstance)
	i.VKInstance = vk.NullInstance
}
