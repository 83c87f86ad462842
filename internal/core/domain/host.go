package domain

// HostID names a recognised operating-system family.
type HostID string

// Recognised host identities.
const (
	HostDebian   HostID = "debian"
	HostUbuntu   HostID = "ubuntu"
	HostFedora   HostID = "fedora"
	HostRHEL     HostID = "rhel"
	HostCentOS   HostID = "centos"
	HostArch     HostID = "arch"
	HostOpenSUSE HostID = "opensuse"
	HostAlpine   HostID = "alpine"
	HostUnknown  HostID = "unknown"
)

// KnownHosts lists every identity the provisioner has a package plan for.
var KnownHosts = []HostID{
	HostDebian,
	HostUbuntu,
	HostFedora,
	HostRHEL,
	HostCentOS,
	HostArch,
	HostOpenSUSE,
	HostAlpine,
}

// Known reports whether the identity is one of the recognised families.
func (h HostID) Known() bool {
	for _, k := range KnownHosts {
		if h == k {
			return true
		}
	}
	return false
}

func (h HostID) String() string {
	if h == "" {
		return string(HostUnknown)
	}
	return string(h)
}

// HostProfile is the identity of the running host, derived once per run.
type HostProfile struct {
	ID      HostID
	Version string
	// Source is the marker file that produced the identification.
	Source string
}

// UnknownHost returns the profile used when no probe matches.
func UnknownHost() HostProfile {
	return HostProfile{ID: HostUnknown}
}

func (p HostProfile) String() string {
	if p.Version == "" {
		return p.ID.String()
	}
	return p.ID.String() + " " + p.Version
}
