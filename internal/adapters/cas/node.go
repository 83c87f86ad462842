package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runway/internal/core/ports"
)

// NodeID is the unique identifier for the build journal Graft node.
const NodeID graft.ID = "adapter.build_journal"

func init() {
	graft.Register(graft.Node[ports.BuildJournal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildJournal, error) {
			return NewStore(), nil
		},
	})
}
