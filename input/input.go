// The input package tracks keyboard state and quit requests between frames.
//
// Most functions have two forms, 'xy' and 'xyCaptured'. The captured form always
// returns the real state even if the keyboard is captured by the UI, while the 'xy'
// form returns false while the UI is capturing the keyboard (e.g. typing in a textbox).
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                 sdl.Keycode
	State               int
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

var (
	keyMap = make(map[sdl.Keycode]keyState)

	isQuitRequested    bool
	isKeyboardCaptured bool
)

// EventLoopStart resets the per-frame state. Call it once per frame before handling events.
func EventLoopStart(keyboardGotCaptured bool) {

	isKeyboardCaptured = keyboardGotCaptured

	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	isQuitRequested = false
}

func ClearKeyboardState() {
	clear(keyMap)
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsKeyboardCaptured() bool {
	return isKeyboardCaptured
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	ks, ok := keyMap[e.Keysym.Sym]
	if !ok {
		ks = keyState{Key: e.Keysym.Sym}
	}

	ks.State = int(e.State)
	ks.IsPressedThisFrame = e.State == sdl.PRESSED && e.Repeat == 0
	ks.IsReleasedThisFrame = e.State == sdl.RELEASED && e.Repeat == 0

	keyMap[ks.Key] = ks
}

func KeyClicked(kc sdl.Keycode) bool {

	if isKeyboardCaptured {
		return false
	}

	return KeyClickedCaptured(kc)
}

func KeyClickedCaptured(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsPressedThisFrame
}

func KeyReleased(kc sdl.Keycode) bool {

	if isKeyboardCaptured {
		return false
	}

	return KeyReleasedCaptured(kc)
}

func KeyReleasedCaptured(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsReleasedThisFrame
}

func KeyDown(kc sdl.Keycode) bool {

	if isKeyboardCaptured {
		return false
	}

	return KeyDownCaptured(kc)
}

func KeyDownCaptured(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.State == sdl.PRESSED
}
