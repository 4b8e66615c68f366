package vk

import "fmt"

// Version is a packed Vulkan API version (VK_MAKE_API_VERSION).
type Version uint32

// MakeVersion packs a version with variant 0.
func MakeVersion(major, minor, patch int) Version {
	return MakeAPIVersion(0, major, minor, patch)
}

// MakeAPIVersion packs a version the way VK_MAKE_API_VERSION does.
func MakeAPIVersion(variant, major, minor, patch int) Version {
	return Version(uint32(variant)<<29 | uint32(major)<<22 | uint32(minor)<<12 | uint32(patch))
}

func (v Version) Variant() int { return int(uint32(v) >> 29) }
func (v Version) Major() int   { return int((uint32(v) >> 22) & 0x7F) }
func (v Version) Minor() int   { return int((uint32(v) >> 12) & 0x3FF) }
func (v Version) Patch() int   { return int(uint32(v) & 0xFFF) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

var (
	APIVersion10 = MakeVersion(1, 0, 0)
	APIVersion11 = MakeVersion(1, 1, 0)
	APIVersion12 = MakeVersion(1, 2, 0)
	APIVersion13 = MakeVersion(1, 3, 0)
)
