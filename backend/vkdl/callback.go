package vkdl

import (
	"sync"

	"github.com/ebitengine/purego"

	"github.com/celer/vkgl/vk"
)

// purego has a fixed number of callback slots, so every debug report
// callback shares one C function pointer and is told apart by pUserData.
var (
	trampolineOnce sync.Once
	trampoline     uintptr

	callbacks = &callbackRegistry{
		funcs:   map[uintptr]vk.DebugReportFunc{},
		handles: map[vk.DebugReportCallback]uintptr{},
	}
)

func debugReportTrampoline() uintptr {
	trampolineOnce.Do(func() {
		trampoline = purego.NewCallback(debugReport)
	})
	return trampoline
}

// debugReport has the PFN_vkDebugReportCallbackEXT signature.
func debugReport(flags, objectType, object, location, messageCode, layerPrefix, message, userData uintptr) uintptr {
	fn := callbacks.lookup(userData)
	if fn == nil {
		return 0
	}
	abort := fn(vk.DebugReportFlags(flags), vk.DebugReportObjectType(int32(objectType)), uint64(object),
		uint(location), int32(messageCode), cGoString(layerPrefix), cGoString(message))
	return uintptr(boolean(abort))
}

type callbackRegistry struct {
	mu      sync.Mutex
	next    uintptr
	funcs   map[uintptr]vk.DebugReportFunc
	handles map[vk.DebugReportCallback]uintptr
}

func (c *callbackRegistry) add(fn vk.DebugReportFunc) uintptr {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	c.funcs[c.next] = fn
	return c.next
}

func (c *callbackRegistry) bind(handle vk.DebugReportCallback, id uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handles[handle] = id
}

func (c *callbackRegistry) lookup(id uintptr) vk.DebugReportFunc {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.funcs[id]
}

func (c *callbackRegistry) remove(id uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.funcs, id)
}

// release forgets the function registered for handle.
func (c *callbackRegistry) release(handle vk.DebugReportCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.funcs, c.handles[handle])
	delete(c.handles, handle)
}
