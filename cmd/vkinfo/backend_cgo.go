//go:build cgo

package main

import (
	"github.com/celer/vkgl/backend/vkgo"
	"github.com/celer/vkgl/vk"
)

func init() {
	backends["vkgo"] = func() (vk.Loader, error) { return vkgo.New() }
}
