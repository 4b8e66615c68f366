package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"cogentcore.org/core/base/errors"
	units "github.com/docker/go-units"
	"gopkg.in/yaml.v3"

	"github.com/celer/vkgl"
	"github.com/celer/vkgl/vk"
)

const validationLayer = "VK_LAYER_KHRONOS_validation"

// Report is everything vkinfo prints.
type Report struct {
	InstanceVersion string      `yaml:"instanceVersion"`
	Layers          []Layer     `yaml:"layers"`
	Extensions      []Extension `yaml:"extensions"`
	Devices         []Device    `yaml:"devices"`
}

type Layer struct {
	Name        string `yaml:"name"`
	SpecVersion string `yaml:"specVersion"`
	Description string `yaml:"description"`
}

type Extension struct {
	Name        string `yaml:"name"`
	SpecVersion uint32 `yaml:"specVersion"`
}

type Device struct {
	Name          string        `yaml:"name"`
	Type          string        `yaml:"type"`
	APIVersion    string        `yaml:"apiVersion"`
	DriverVersion uint32        `yaml:"driverVersion"`
	VendorID      string        `yaml:"vendorID"`
	DeviceID      string        `yaml:"deviceID"`
	QueueFamilies []QueueFamily `yaml:"queueFamilies"`
	MemoryTypes   []MemoryType  `yaml:"memoryTypes"`
	MemoryHeaps   []MemoryHeap  `yaml:"memoryHeaps"`
	Extensions    []Extension   `yaml:"extensions"`
}

type QueueFamily struct {
	Index int      `yaml:"index"`
	Count uint32   `yaml:"count"`
	Flags []string `yaml:"flags,flow,omitempty"`
}

type MemoryType struct {
	HeapIndex uint32   `yaml:"heapIndex"`
	Flags     []string `yaml:"flags,flow,omitempty"`
}

type MemoryHeap struct {
	Size  string   `yaml:"size"`
	Bytes uint64   `yaml:"bytes"`
	Flags []string `yaml:"flags,flow,omitempty"`
}

type flagName[F ~uint32] struct {
	flag F
	name string
}

var queueFlags = []flagName[vk.QueueFlags]{
	{vk.QueueGraphicsBit, "graphics"},
	{vk.QueueComputeBit, "compute"},
	{vk.QueueTransferBit, "transfer"},
	{vk.QueueSparseBindingBit, "sparseBinding"},
}

var memoryPropertyFlags = []flagName[vk.MemoryPropertyFlags]{
	{vk.MemoryPropertyDeviceLocalBit, "deviceLocal"},
	{vk.MemoryPropertyHostVisibleBit, "hostVisible"},
	{vk.MemoryPropertyHostCoherentBit, "hostCoherent"},
	{vk.MemoryPropertyHostCachedBit, "hostCached"},
	{vk.MemoryPropertyLazilyAllocatedBit, "lazilyAllocated"},
	{vk.MemoryPropertyProtectedBit, "protected"},
}

var memoryHeapFlags = []flagName[vk.MemoryHeapFlags]{
	{vk.MemoryHeapDeviceLocalBit, "deviceLocal"},
	{vk.MemoryHeapMultiInstanceBit, "multiInstance"},
}

func flagNames[F ~uint32](f F, names []flagName[F]) []string {
	var s []string
	for _, n := range names {
		if f&n.flag != 0 {
			s = append(s, n.name)
		}
	}
	return s
}

func extensions(props []vk.ExtensionProperties) []Extension {
	ret := make([]Extension, len(props))
	for i, p := range props {
		ret[i] = Extension{Name: p.ExtensionName, SpecVersion: p.SpecVersion}
	}
	return ret
}

// Run writes the report for c to standard output.
func Run(c *Config) error {
	loader, err := newLoader(c.Backend)
	if err != nil {
		return err
	}
	app := &vkgl.App{
		Name:       "vkinfo",
		APIVersion: vkgl.Version{Major: 1},
		Loader:     loader,
	}
	if c.Validation {
		_, err := app.EnableLayer(validationLayer)
		errors.Log(err)
	}
	r, err := Gather(app)
	if err != nil {
		return err
	}
	return r.Write(os.Stdout, c.Format)
}

// Gather creates an instance for app, queries every physical device and
// destroys the instance again.
func Gather(app *vkgl.App) (*Report, error) {
	r := &Report{}
	version, err := app.InstanceVersion()
	if err != nil {
		return nil, err
	}
	r.InstanceVersion = version.String()

	layers, err := app.LayerProperties()
	if err != nil {
		return nil, err
	}
	for _, l := range layers {
		r.Layers = append(r.Layers, Layer{Name: l.LayerName, SpecVersion: l.SpecVersion.String(), Description: l.Description})
	}
	exts, err := app.ExtensionProperties("")
	if err != nil {
		return nil, err
	}
	r.Extensions = extensions(exts)

	instance, err := app.CreateInstance()
	if err != nil {
		return nil, err
	}
	defer instance.Destroy()

	devices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, err
	}
	for _, pd := range devices {
		d, err := gatherDevice(pd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pd.Name(), err)
		}
		r.Devices = append(r.Devices, d)
	}
	return r, nil
}

func gatherDevice(pd *vkgl.PhysicalDevice) (Device, error) {
	props := pd.Properties()
	d := Device{
		Name:          props.DeviceName,
		Type:          props.DeviceType.String(),
		APIVersion:    props.APIVersion.String(),
		DriverVersion: props.DriverVersion,
		VendorID:      fmt.Sprintf("0x%04x", props.VendorID),
		DeviceID:      fmt.Sprintf("0x%04x", props.DeviceID),
	}

	families, err := pd.QueueFamilies()
	if err != nil {
		return d, err
	}
	for _, qf := range families {
		d.QueueFamilies = append(d.QueueFamilies, QueueFamily{
			Index: qf.Index,
			Count: qf.Properties.QueueCount,
			Flags: flagNames(qf.Properties.QueueFlags, queueFlags),
		})
	}

	mem := pd.MemoryProperties()
	for _, mt := range mem.MemoryTypes {
		d.MemoryTypes = append(d.MemoryTypes, MemoryType{
			HeapIndex: mt.HeapIndex,
			Flags:     flagNames(mt.PropertyFlags, memoryPropertyFlags),
		})
	}
	for _, h := range mem.MemoryHeaps {
		d.MemoryHeaps = append(d.MemoryHeaps, MemoryHeap{
			Size:  units.BytesSize(float64(h.Size)),
			Bytes: uint64(h.Size),
			Flags: flagNames(h.Flags, memoryHeapFlags),
		})
	}

	// A device that fails the extension query is still reported.
	exts, err := pd.SupportedExtensions()
	errors.Log(err)
	d.Extensions = extensions(exts)
	slices.SortFunc(d.Extensions, func(a, b Extension) int { return cmp.Compare(a.Name, b.Name) })
	return d, nil
}

// Write renders r as text or yaml.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return r.writeText(w)
	}
	return fmt.Errorf("unknown format %q", format)
}

func (r *Report) writeText(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Instance version %s\n\n", r.InstanceVersion)
	p.title("Layers")
	for _, l := range r.Layers {
		p.printf("\t%s %s\t%s\n", l.Name, l.SpecVersion, l.Description)
	}
	p.printf("\n")
	p.title("Extensions")
	for _, e := range r.Extensions {
		p.printf("\t%s (%d)\n", e.Name, e.SpecVersion)
	}
	for _, d := range r.Devices {
		p.printf("\n")
		p.title(d.Name)
		p.printf("\tType %s\n\tAPI %s\n\tVendor %s Device %s Driver %d\n", d.Type, d.APIVersion, d.VendorID, d.DeviceID, d.DriverVersion)
		p.printf("\n\tQueue Families\n")
		for _, qf := range d.QueueFamilies {
			p.printf("\t\t%d\tx%d\t%v\n", qf.Index, qf.Count, qf.Flags)
		}
		p.printf("\n\tMemory Types\n\t\tHeapIdx\tFlags\n")
		for _, mt := range d.MemoryTypes {
			p.printf("\t\t%d\t%v\n", mt.HeapIndex, mt.Flags)
		}
		p.printf("\n\tMemory Heaps\n")
		for _, h := range d.MemoryHeaps {
			p.printf("\t\t%s\t%v\n", h.Size, h.Flags)
		}
		p.printf("\n\tSupported Extensions\n")
		for _, e := range d.Extensions {
			p.printf("\t\t%s (%d)\n", e.Name, e.SpecVersion)
		}
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) title(s string) {
	p.printf("%s\n-----------------------------\n", s)
}
