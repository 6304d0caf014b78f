//go:build !debug

package consts

// Debug is true when built with '-tags debug'. Assertions only fire in debug builds.
const Debug = false
