package domain

import "strings"

// Capability is a class of host tool the build needs.
type Capability string

// Required capabilities.
const (
	CapabilityCompiler    Capability = "compiler"
	CapabilityBuildDriver Capability = "build-driver"
	CapabilityFetcher     Capability = "fetcher"
)

// Requirement is satisfied when any one of its tools resolves on the search path.
type Requirement struct {
	Capability Capability `yaml:"capability"`
	Tools      []string   `yaml:"tools"`
}

// DefaultRequirements returns the tools a native Rust build needs on the host.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{Capability: CapabilityCompiler, Tools: []string{"cc", "gcc", "clang"}},
		{Capability: CapabilityBuildDriver, Tools: []string{"make"}},
		{Capability: CapabilityFetcher, Tools: []string{"curl", "wget"}},
	}
}

// CapabilityStatus is the probe result for a single requirement.
type CapabilityStatus struct {
	Capability Capability
	// Tool is the tool that satisfied the requirement, empty if none did.
	Tool string
	Path string
}

// Present reports whether the requirement resolved.
func (s CapabilityStatus) Present() bool {
	return s.Path != ""
}

// CapabilitySet is the ordered result of probing every requirement.
type CapabilitySet []CapabilityStatus

// Satisfied reports whether every requirement resolved.
func (s CapabilitySet) Satisfied() bool {
	return len(s.Missing()) == 0
}

// Missing returns the capabilities that did not resolve, in probe order.
func (s CapabilitySet) Missing() []Capability {
	var missing []Capability
	for _, status := range s {
		if !status.Present() {
			missing = append(missing, status.Capability)
		}
	}
	return missing
}

// Lookup returns the status of a single capability.
func (s CapabilitySet) Lookup(c Capability) (CapabilityStatus, bool) {
	for _, status := range s {
		if status.Capability == c {
			return status, true
		}
	}
	return CapabilityStatus{}, false
}

func (s CapabilitySet) String() string {
	parts := make([]string, 0, len(s))
	for _, status := range s {
		if status.Present() {
			parts = append(parts, string(status.Capability)+"="+status.Tool)
		} else {
			parts = append(parts, string(status.Capability)+"=missing")
		}
	}
	return strings.Join(parts, " ")
}
