package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runway/internal/adapters/fs"    //nolint:depguard // Wired in adapter layer
	"go.trai.ch/runway/internal/adapters/shell" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/runway/internal/core/ports"
)

// NodeID is the unique identifier for the cargo builder Graft node.
const NodeID graft.ID = "adapter.cargo_builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return New(executor, hasher), nil
		},
	})
}
