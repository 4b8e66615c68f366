package window

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celer/vkgl/vk"
)

func TestInstanceArg(t *testing.T) {
	v := reflect.ValueOf(instanceArg(vk.Instance(0x1000)))
	assert.Equal(t, reflect.Ptr, v.Kind())
	assert.Equal(t, uintptr(0x1000), v.Pointer())
	assert.True(t, reflect.ValueOf(instanceArg(vk.NullInstance)).IsNil())
}
