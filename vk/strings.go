package vk

import "bytes"

// ToString converts a fixed-size, NUL-padded C character array to a Go string.
func ToString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
