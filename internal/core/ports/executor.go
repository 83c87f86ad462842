package ports

import (
	"context"
	"io"

	"go.trai.ch/runway/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command with its output captured through a pseudo-terminal
	// and copied to stdout and stderr.
	//
	// The env parameter holds "KEY=VALUE" entries layered over the inherited
	// environment. A PATH entry is prepended to the inherited PATH.
	Execute(ctx context.Context, cmd *domain.Command, env []string, stdout, stderr io.Writer) error

	// Interact runs the command attached to the orchestrator's own terminal so
	// that it can prompt the user, e.g. for an elevation password.
	Interact(ctx context.Context, cmd *domain.Command, env []string) error
}
