package main

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/celer/vkgl/backend/vkdl"
	"github.com/celer/vkgl/vk"
)

var backends = map[string]func() (vk.Loader, error){
	"vkdl": func() (vk.Loader, error) { return vkdl.Open() },
}

func newLoader(name string) (vk.Loader, error) {
	open, ok := backends[name]
	if !ok {
		names := maps.Keys(backends)
		slices.Sort(names)
		return nil, fmt.Errorf("unknown backend %q, available: %s", name, strings.Join(names, ", "))
	}
	return open()
}
