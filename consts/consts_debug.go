//go:build debug

package consts

const Debug = true
