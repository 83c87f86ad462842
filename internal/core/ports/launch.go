package ports

import (
	"context"

	"go.trai.ch/runway/internal/core/domain"
)

// Gatekeeper checks the terminal before handing it to the application.
//
//go:generate mockgen -source=launch.go -destination=mocks/mock_launch.go -package=mocks
type Gatekeeper interface {
	// Admit returns false when the terminal is undersized and the user
	// declines to continue.
	Admit(ctx context.Context, spec domain.TerminalSpec) (bool, error)
}

// Launcher hands control to the compiled application.
type Launcher interface {
	// Launch starts the artifact with args. In exec mode it only returns on
	// failure; in spawn mode it waits for the child to exit.
	Launch(ctx context.Context, mode domain.LaunchMode, artifact string, args []string, env []string) error
}
