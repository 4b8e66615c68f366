package vkgl

import (
	"github.com/celer/vkgl/vk"
)

// DescriptorPool is the Vulkan pool descriptor sets are allocated from.
type DescriptorPool struct {
	Device           *Device
	VKDescriptorPool vk.DescriptorPool
	PoolSizes        []vk.DescriptorPoolSize
}

func (d *Device) NewDescriptorPool() *DescriptorPool {
	return &DescriptorPool{Device: d}
}

// AddPoolSize informs the descriptor pool how many of a certain descriptortype it will contain
func (d *DescriptorPool) AddPoolSize(dtype vk.DescriptorType, count int) *DescriptorPool {
	d.PoolSizes = append(d.PoolSizes, vk.DescriptorPoolSize{
		Type:            dtype,
		DescriptorCount: uint32(count),
	})
	return d
}

// CreateDescriptorPool creates the descriptor pool. Sets allocated from it
// can be freed individually.
func (d *Device) CreateDescriptorPool(pool *DescriptorPool, maxSets int) (*DescriptorPool, error) {
	info := vk.DescriptorPoolCreateInfo{
		Flags:     vk.DescriptorPoolCreateFreeDescriptorSetBit,
		MaxSets:   uint32(maxSets),
		PoolSizes: pool.PoolSizes,
	}

	var descriptorPool vk.DescriptorPool
	err := vk.Error(d.Commands.CreateDescriptorPool(d.VKDevice, &info, &descriptorPool))
	if err != nil {
		return nil, err
	}

	pool.Device = d
	pool.VKDescriptorPool = descriptorPool

	return pool, nil
}

// Allocate allocates one descriptor set with the given layout.
func (d *DescriptorPool) Allocate(layout *DescriptorSetLayout) (*DescriptorSet, error) {
	sets, err := d.AllocateSets(layout)
	if err != nil {
		return nil, err
	}
	return sets[0], nil
}

// AllocateSets allocates one descriptor set per layout.
func (d *DescriptorPool) AllocateSets(layouts ...*DescriptorSetLayout) ([]*DescriptorSet, error) {
	dsl := make([]vk.DescriptorSetLayout, len(layouts))
	for i, l := range layouts {
		dsl[i] = l.VKDescriptorSetLayout
	}

	info := vk.DescriptorSetAllocateInfo{
		DescriptorPool: d.VKDescriptorPool,
		SetLayouts:     dsl,
	}

	sets := make([]vk.DescriptorSet, len(layouts))
	err := vk.Error(d.Device.Commands.AllocateDescriptorSets(d.Device.VKDevice, &info, sets))
	if err != nil {
		return nil, err
	}

	ret := make([]*DescriptorSet, len(sets))
	for i, s := range sets {
		ret[i] = &DescriptorSet{DescriptorPool: d, VKDescriptorSet: s}
	}
	return ret, nil
}

// Reset returns every set allocated from the pool to it.
func (d *DescriptorPool) Reset() error {
	return vk.Error(d.Device.Commands.ResetDescriptorPool(d.Device.VKDevice, d.VKDescriptorPool, 0))
}

// Free returns sets to the pool. Sets that were already freed are skipped.
func (d *DescriptorPool) Free(sets ...*DescriptorSet) error {
	handles := make([]vk.DescriptorSet, 0, len(sets))
	for _, s := range sets {
		if s.VKDescriptorSet != vk.NullDescriptorSet {
			handles = append(handles, s.VKDescriptorSet)
		}
	}
	if len(handles) == 0 {
		return nil
	}
	err := vk.Error(d.Device.Commands.FreeDescriptorSets(d.Device.VKDevice, d.VKDescriptorPool, handles))
	if err != nil {
		return err
	}
	for _, s := range sets {
		s.VKDescriptorSet = vk.NullDescriptorSet
	}
	return nil
}

func (d *DescriptorPool) Destroy() {
	if d.VKDescriptorPool == vk.NullDescriptorPool {
		return
	}
	d.Device.Commands.DestroyDescriptorPool(d.Device.VKDevice, d.VKDescriptorPool)
	d.VKDescriptorPool = vk.NullDescriptorPool
}
