package vkgl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/celer/vkgl/vk"
)

const spirvMagic = 0x07230203

// ErrInvalidSPIRV is returned for shader code that is not a SPIR-V module.
var ErrInvalidSPIRV = errors.New("vkgl: invalid SPIR-V")

type ShaderModule struct {
	Device         *Device
	Description    string
	VKShaderModule vk.ShaderModule
}

// SPIRVWords converts little-endian SPIR-V bytes to words, checking the
// magic number.
func SPIRVWords(data []byte) ([]uint32, error) {
	if len(data) < 20 || len(data)%4 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(data), ErrInvalidSPIRV)
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("magic %#08x: %w", words[0], ErrInvalidSPIRV)
	}
	return words, nil
}

func (d *Device) CreateShaderModule(code []byte) (*ShaderModule, error) {
	words, err := SPIRVWords(code)
	if err != nil {
		return nil, err
	}
	var module vk.ShaderModule
	err = vk.Error(d.Commands.CreateShaderModule(d.VKDevice, &vk.ShaderModuleCreateInfo{Code: words}, &module))
	if err != nil {
		return nil, err
	}

	var ret ShaderModule
	ret.VKShaderModule = module
	ret.Device = d
	return &ret, nil
}

func (d *Device) LoadShaderModuleFromFile(file string) (*ShaderModule, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	s, err := d.CreateShaderModule(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	s.Description = file
	return s, nil
}

func (s *ShaderModule) StageCreateInfo(stage vk.ShaderStageFlags, entryPoint string) vk.PipelineShaderStageCreateInfo {
	return vk.PipelineShaderStageCreateInfo{
		Stage:  stage,
		Module: s.VKShaderModule,
		Name:   entryPoint,
	}
}

func (s *ShaderModule) Destroy() {
	if s.VKShaderModule == vk.NullShaderModule {
		return
	}
	s.Device.Commands.DestroyShaderModule(s.Device.VKDevice, s.VKShaderModule)
	s.VKShaderModule = vk.NullShaderModule
}
