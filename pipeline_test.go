package vkgl

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkgl/vk"
)

// spirv returns a minimal SPIR-V header followed by the given words.
func spirv(words ...uint32) []byte {
	header := []uint32{spirvMagic, 0x00010000, 0, 1, 0}
	b := make([]byte, 0, (len(header)+len(words))*4)
	for _, w := range append(header, words...) {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

func TestSPIRVWords(t *testing.T) {
	words, err := SPIRVWords(spirv(42))
	require.NoError(t, err)
	assert.Len(t, words, 6)
	assert.Equal(t, uint32(spirvMagic), words[0])
	assert.Equal(t, uint32(42), words[5])

	_, err = SPIRVWords(spirv()[:19])
	assert.ErrorIs(t, err, ErrInvalidSPIRV)

	_, err = SPIRVWords(nil)
	assert.ErrorIs(t, err, ErrInvalidSPIRV)

	bad := spirv()
	bad[0] = 0
	_, err = SPIRVWords(bad)
	assert.ErrorIs(t, err, ErrInvalidSPIRV)
}

func TestCreateShaderModule(t *testing.T) {
	drv, device := newTestDevice(t)

	_, err := device.CreateShaderModule([]byte("#version 450"))
	assert.ErrorIs(t, err, ErrInvalidSPIRV)
	assert.Zero(t, drv.Count("CreateShaderModule"))

	module, err := device.CreateShaderModule(spirv(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 8, args(t, drv, "CreateShaderModule")[1])

	stage := module.StageCreateInfo(vk.ShaderStageComputeBit, "main")
	assert.Equal(t, vk.PipelineShaderStageCreateInfo{Stage: vk.ShaderStageComputeBit, Module: module.VKShaderModule, Name: "main"}, stage)

	module.Destroy()
	module.Destroy()
	assert.Equal(t, 1, drv.Count("DestroyShaderModule"))
}

func TestLoadShaderModuleFromFile(t *testing.T) {
	_, device := newTestDevice(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "comp.spv")
	require.NoError(t, os.WriteFile(good, spirv(), 0o644))
	module, err := device.LoadShaderModuleFromFile(good)
	require.NoError(t, err)
	assert.Equal(t, good, module.Description)

	bad := filepath.Join(dir, "comp.glsl")
	require.NoError(t, os.WriteFile(bad, []byte("void main() {}\n"), 0o644))
	_, err = device.LoadShaderModuleFromFile(bad)
	assert.ErrorIs(t, err, ErrInvalidSPIRV)
	assert.Contains(t, err.Error(), "comp.glsl")

	_, err = device.LoadShaderModuleFromFile(filepath.Join(dir, "missing.spv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateComputePipelines(t *testing.T) {
	drv, device := newTestDevice(t)
	module, err := device.CreateShaderModule(spirv())
	require.NoError(t, err)
	dsl, err := device.CreateDescriptorSetLayout(device.NewDescriptorSetLayout())
	require.NoError(t, err)
	layout, err := device.CreatePipelineLayout(dsl)
	require.NoError(t, err)
	linfo := args(t, drv, "CreatePipelineLayout")[1].(vk.PipelineLayoutCreateInfo)
	assert.Equal(t, []vk.DescriptorSetLayout{dsl.VKDescriptorSetLayout}, linfo.SetLayouts)
	assert.Empty(t, linfo.PushConstantRanges)

	var a, b ComputePipeline
	a.SetShaderStage("main", module)
	b.SetShaderStage("other", module)
	a.SetPipelineLayout(layout)

	err = device.CreateComputePipelines(nil, &a, &b)
	require.Error(t, err)
	assert.Zero(t, drv.Count("CreateComputePipelines"))

	b.SetPipelineLayout(layout)
	require.NoError(t, device.CreateComputePipelines(nil, &a, &b))

	call := args(t, drv, "CreateComputePipelines")
	assert.Equal(t, vk.NullPipelineCache, call[1])
	infos := call[2].([]vk.ComputePipelineCreateInfo)
	require.Len(t, infos, 2)
	assert.Equal(t, "main", infos[0].Stage.Name)
	assert.Equal(t, "other", infos[1].Stage.Name)
	assert.Equal(t, vk.ShaderStageComputeBit, infos[0].Stage.Stage)
	assert.Equal(t, layout.VKPipelineLayout, infos[1].Layout)
	assert.Equal(t, int32(-1), infos[0].BasePipelineIndex)

	assert.Same(t, device, a.Device)
	assert.NotEqual(t, vk.NullPipeline, a.VKPipeline)
	assert.NotEqual(t, a.VKPipeline, b.VKPipeline)

	for _, d := range []Destroyer{&a, &b, layout, dsl, module, &a} {
		d.Destroy()
	}
	assert.Zero(t, drv.Live("Pipeline"))
	assert.Zero(t, drv.Live("PipelineLayout"))
}

func TestPipelineCache(t *testing.T) {
	drv, device := newTestDevice(t)
	cache, err := device.CreatePipelineCache()
	require.NoError(t, err)

	data, err := cache.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("pipeline-cache"), data)

	restored, err := device.CreatePipelineCacheWithData(data)
	require.NoError(t, err)
	assert.Equal(t, data, args(t, drv, "CreatePipelineCache")[1])

	var p ComputePipeline
	module, err := device.CreateShaderModule(spirv())
	require.NoError(t, err)
	layout, err := device.CreatePipelineLayout()
	require.NoError(t, err)
	p.SetShaderStage("main", module)
	p.SetPipelineLayout(layout)
	require.NoError(t, device.CreateComputePipelines(restored, &p))
	assert.Equal(t, restored.VKPipelineCache, args(t, drv, "CreateComputePipelines")[1])

	drv.PipelineCacheData = nil
	data, err = cache.Data()
	require.NoError(t, err)
	assert.Empty(t, data)

	cache.Destroy()
	restored.Destroy()
	restored.Destroy()
	assert.Equal(t, 2, drv.Count("DestroyPipelineCache"))
}

func TestPipelineCacheDataGrows(t *testing.T) {
	drv, device := newTestDevice(t)
	cache, err := device.CreatePipelineCache()
	require.NoError(t, err)

	grown := false
	drv.OnCall = func(name string) {
		if name == "GetPipelineCacheData" && drv.Count(name) == 1 && !grown {
			grown = true
			drv.PipelineCacheData = []byte("a larger pipeline cache")
		}
	}
	data, err := cache.Data()
	require.NoError(t, err)
	assert.Equal(t, "a larger pipeline cache", string(data))
	assert.Equal(t, 4, drv.Count("GetPipelineCacheData"))
}
