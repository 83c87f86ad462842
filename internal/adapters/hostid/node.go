package hostid

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runway/internal/core/ports"
)

// NodeID is the unique identifier for the host identifier Graft node.
const NodeID graft.ID = "adapter.host_identifier"

func init() {
	graft.Register(graft.Node[ports.HostIdentifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostIdentifier, error) {
			return New(), nil
		},
	})
}
