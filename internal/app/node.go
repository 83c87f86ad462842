package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runway/internal/adapters/cargo"     //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/hostid"    //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/launcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/probe"     //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/provision" //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/terminal"  //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/runway/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			hostid.NodeID,
			probe.NodeID,
			provision.NodeID,
			toolchain.NodeID,
			fs.StalenessNodeID,
			cargo.NodeID,
			cas.NodeID,
			terminal.NodeID,
			launcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	var deps pipeline.Deps
	if deps.Identifier, err = graft.Dep[ports.HostIdentifier](ctx); err != nil {
		return nil, err
	}
	if deps.Prober, err = graft.Dep[ports.CapabilityProber](ctx); err != nil {
		return nil, err
	}
	if deps.Provisioner, err = graft.Dep[ports.Provisioner](ctx); err != nil {
		return nil, err
	}
	if deps.Toolchain, err = graft.Dep[ports.ToolchainInstaller](ctx); err != nil {
		return nil, err
	}
	if deps.Staleness, err = graft.Dep[ports.StalenessChecker](ctx); err != nil {
		return nil, err
	}
	if deps.Builder, err = graft.Dep[ports.Builder](ctx); err != nil {
		return nil, err
	}
	if deps.Journal, err = graft.Dep[ports.BuildJournal](ctx); err != nil {
		return nil, err
	}
	if deps.Gatekeeper, err = graft.Dep[ports.Gatekeeper](ctx); err != nil {
		return nil, err
	}
	if deps.Launcher, err = graft.Dep[ports.Launcher](ctx); err != nil {
		return nil, err
	}

	return New(loader, deps, log), nil
}
