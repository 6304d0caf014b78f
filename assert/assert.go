package assert

import (
	"fmt"

	"github.com/lgl-dev/lgl/consts"
	"github.com/lgl-dev/lgl/logging"
)

// T panics with the formatted message if check is false. It is a no-op unless built with '-tags debug'
func T(check bool, msg string, args ...any) {

	if !consts.Debug || check {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	logging.ErrLog.Errorln("Assert failed: " + msg)
	panic("Assert failed: " + msg)
}
