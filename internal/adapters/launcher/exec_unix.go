//go:build unix

package launcher

import "golang.org/x/sys/unix"

var defaultExec ExecFunc = unix.Exec
