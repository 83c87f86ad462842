//go:build !unix

package launcher

// Process image replacement is unavailable, so launches spawn a child.
var defaultExec ExecFunc
