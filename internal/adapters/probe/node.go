package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runway/internal/core/ports"
)

// NodeID is the unique identifier for the capability prober Graft node.
const NodeID graft.ID = "adapter.capability_prober"

func init() {
	graft.Register(graft.Node[ports.CapabilityProber]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CapabilityProber, error) {
			return New(), nil
		},
	})
}
