// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/runway/internal/adapters/cargo"
	_ "go.trai.ch/runway/internal/adapters/cas"
	_ "go.trai.ch/runway/internal/adapters/config"
	_ "go.trai.ch/runway/internal/adapters/fs"
	_ "go.trai.ch/runway/internal/adapters/hostid"
	_ "go.trai.ch/runway/internal/adapters/launcher"
	_ "go.trai.ch/runway/internal/adapters/logger"
	_ "go.trai.ch/runway/internal/adapters/probe"
	_ "go.trai.ch/runway/internal/adapters/provision"
	_ "go.trai.ch/runway/internal/adapters/shell"
	_ "go.trai.ch/runway/internal/adapters/terminal"
	_ "go.trai.ch/runway/internal/adapters/toolchain"
	// Register app nodes.
	_ "go.trai.ch/runway/internal/app"
)
