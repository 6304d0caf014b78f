// Package glerr polls the OpenGL error flags around calls.
//
// Errors are logged with the call name and the caller's file:line, and execution
// continues. Debug builds additionally panic through assert.T.
package glerr

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/assert"
	"github.com/lgl-dev/lgl/logging"
)

// maxDrain bounds the drain loops in case there is no current context, where some
// drivers keep returning an error forever
const maxDrain = 64

// getError is swapped in tests
var getError = gl.GetError

// Clear drains all pending error flags. Any flag still set was raised by an earlier call that
// was never checked, so each one is logged. Returns false if anything was pending.
func Clear() bool {
	return drain("unchecked call", 2)
}

// Check logs every pending error flag as caused by fn and returns false if there was at least one
func Check(fn string) bool {
	return check(fn, 2)
}

func check(fn string, callerSkip int) bool {

	ok := drain(fn, callerSkip+1)
	assert.T(ok, "OpenGL call '%s' failed", fn)
	return ok
}

func drain(fn string, callerSkip int) bool {

	ok := true
	for i := 0; i < maxDrain; i++ {

		errCode := getError()
		if errCode == gl.NO_ERROR {
			break
		}

		ok = false
		_, file, line, _ := runtime.Caller(callerSkip)
		logging.ErrLog.Printf("[OpenGL Error] (%d %s): %s %s:%d\n", errCode, ErrorString(errCode), fn, file, line)
	}

	return ok
}

// Call drains errors left by earlier unchecked calls, runs f and checks for errors caused by it.
// Only errors raised by f make it return false.
func Call(fn string, f func()) bool {
	drain("unchecked call before "+fn, 2)
	f()
	return check(fn, 2)
}

func ErrorString(errCode uint32) string {

	switch errCode {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	default:
		return fmt.Sprintf("GL_UNKNOWN_ERROR_0x%X", errCode)
	}
}
