package provision

import "go.trai.ch/runway/internal/core/domain"

// Plan is how one host family installs the native build dependencies.
type Plan struct {
	// Update refreshes the package index. Nil when the manager refreshes on install.
	Update []string
	// Install is the install command without package names.
	Install  []string
	Packages []string
	// Fallback replaces the manager binary when it is not installed.
	Fallback string
	// AllowUnprivileged permits an install attempt without elevation.
	AllowUnprivileged bool
}

// Manager returns the package manager binary.
func (p Plan) Manager() string {
	if len(p.Install) == 0 {
		return ""
	}
	return p.Install[0]
}

var (
	aptPlan = Plan{
		Update:   []string{"apt-get", "update"},
		Install:  []string{"apt-get", "install", "-y"},
		Packages: []string{"build-essential", "pkg-config", "libssl-dev", "curl", "ca-certificates"},
	}
	dnfPlan = Plan{
		Install:  []string{"dnf", "install", "-y"},
		Packages: []string{"gcc", "make", "pkgconf-pkg-config", "openssl-devel", "curl"},
		Fallback: "yum",
	}
)

// DefaultPlans maps every known host family to its package plan.
func DefaultPlans() map[domain.HostID]Plan {
	return map[domain.HostID]Plan{
		domain.HostDebian: aptPlan,
		domain.HostUbuntu: aptPlan,
		domain.HostFedora: dnfPlan,
		domain.HostRHEL:   dnfPlan,
		domain.HostCentOS: dnfPlan,
		domain.HostArch: {
			Update:   []string{"pacman", "-Sy", "--noconfirm"},
			Install:  []string{"pacman", "-S", "--needed", "--noconfirm"},
			Packages: []string{"base-devel", "pkgconf", "openssl", "curl"},
		},
		domain.HostOpenSUSE: {
			Update:   []string{"zypper", "--non-interactive", "refresh"},
			Install:  []string{"zypper", "--non-interactive", "install"},
			Packages: []string{"gcc", "make", "pkg-config", "libopenssl-devel", "curl"},
		},
		domain.HostAlpine: {
			Update:            []string{"apk", "update"},
			Install:           []string{"apk", "add"},
			Packages:          []string{"build-base", "pkgconf", "openssl-dev", "curl"},
			AllowUnprivileged: true,
		},
	}
}
