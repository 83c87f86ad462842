package ports

import (
	"context"

	"go.trai.ch/runway/internal/core/domain"
)

// HostIdentifier classifies the running operating system.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostIdentifier interface {
	// Identify returns the host profile. It never fails; unrecognised hosts
	// yield domain.HostUnknown.
	Identify() domain.HostProfile
}

// CapabilityProber reports which required tools are resolvable.
type CapabilityProber interface {
	// Probe resolves every requirement on the PATH of env. It has no side effects.
	Probe(reqs []domain.Requirement, env []string) domain.CapabilitySet
}

// ProvisionStatus summarises a provisioning attempt.
type ProvisionStatus int

const (
	// ProvisionNotNeeded means every capability was already present.
	ProvisionNotNeeded ProvisionStatus = iota
	// ProvisionSkipped means provisioning was not attempted (unknown host, no privileges).
	ProvisionSkipped
	// ProvisionApplied means every package manager invocation succeeded.
	ProvisionApplied
	// ProvisionPartial means at least one invocation failed.
	ProvisionPartial
)

// ProvisionReport describes what the provisioner did.
type ProvisionReport struct {
	Status      ProvisionStatus
	Invocations int
	// Warnings holds one error per skipped or failed step. None are fatal.
	Warnings []error
}

// Provisioner installs missing build dependencies with the host package manager.
type Provisioner interface {
	// Provision installs packages for the missing capabilities. Failures are
	// reported in the returned ProvisionReport; the error is only set when ctx
	// is cancelled.
	Provision(ctx context.Context, host domain.HostProfile, caps domain.CapabilitySet) (ProvisionReport, error)
}
