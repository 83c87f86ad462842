// Package probe reports which required host tools resolve on the search path.
package probe

import (
	"go.trai.ch/runway/internal/adapters/shell" //nolint:depguard // shares PATH resolution with the executor
	"go.trai.ch/runway/internal/core/domain"
)

// Prober implements ports.CapabilityProber.
type Prober struct {
	lookPath func(file string, env []string) (string, error)
}

// New creates a Prober resolving tools the same way the executor does.
func New() *Prober {
	return &Prober{lookPath: shell.LookPath}
}

// Probe resolves each requirement against the PATH in env. For each
// requirement the first tool that resolves wins.
func (p *Prober) Probe(reqs []domain.Requirement, env []string) domain.CapabilitySet {
	set := make(domain.CapabilitySet, 0, len(reqs))
	for _, req := range reqs {
		status := domain.CapabilityStatus{Capability: req.Capability}
		for _, tool := range req.Tools {
			if path, err := p.lookPath(tool, env); err == nil {
				status.Tool = tool
				status.Path = path
				break
			}
		}
		set = append(set, status)
	}
	return set
}
