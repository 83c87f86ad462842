// Package hostid classifies the running operating system from release marker files.
package hostid

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/runway/internal/core/domain"
)

// Marker files consulted by the probes, relative to the filesystem root.
const (
	osReleaseFile     = "etc/os-release"
	debianVersionFile = "etc/debian_version"
	redhatReleaseFile = "etc/redhat-release"
	archReleaseFile   = "etc/arch-release"
	alpineReleaseFile = "etc/alpine-release"
)

// probe inspects the filesystem and reports a profile if it recognises the host.
type probe func(fsys fs.FS) (domain.HostProfile, bool)

// probes are evaluated in order; the first match wins.
var probes = []probe{
	probeOSRelease,
	probeDebianVersion,
	probeRedHatRelease,
	probeMarker(archReleaseFile, domain.HostArch),
	probeAlpineRelease,
}

// Identifier implements ports.HostIdentifier over a root filesystem.
type Identifier struct {
	fsys fs.FS
}

// New creates an Identifier reading from the real filesystem root.
func New() *Identifier {
	return NewWithFS(os.DirFS("/"))
}

// NewWithFS creates an Identifier reading from fsys, which stands in for "/".
func NewWithFS(fsys fs.FS) *Identifier {
	return &Identifier{fsys: fsys}
}

// Identify returns the first profile produced by the probe chain, or the
// unknown profile when nothing matches.
func (i *Identifier) Identify() domain.HostProfile {
	for _, p := range probes {
		if profile, ok := p(i.fsys); ok {
			return profile
		}
	}
	return domain.UnknownHost()
}

var idAliases = map[string]domain.HostID{
	"redhat":              domain.HostRHEL,
	"archlinux":           domain.HostArch,
	"opensuse-leap":       domain.HostOpenSUSE,
	"opensuse-tumbleweed": domain.HostOpenSUSE,
	"sles":                domain.HostOpenSUSE,
}

// probeOSRelease classifies the host from os-release. Debian testing and
// unstable ship no VERSION_ID, so their version comes from debian_version.
func probeOSRelease(fsys fs.FS) (domain.HostProfile, bool) {
	data, err := fs.ReadFile(fsys, osReleaseFile)
	if err != nil {
		return domain.HostProfile{}, false
	}

	fields := parseOSRelease(data)
	id, ok := classifyOSRelease(fields)
	if !ok {
		return domain.HostProfile{}, false
	}

	profile := domain.HostProfile{
		ID:      id,
		Version: fields["VERSION_ID"],
		Source:  "/" + osReleaseFile,
	}
	if profile.ID == domain.HostDebian && profile.Version == "" {
		if version, err := fs.ReadFile(fsys, debianVersionFile); err == nil {
			profile.Version = strings.TrimSpace(string(version))
		}
	}
	return profile, true
}

func classifyOSRelease(fields map[string]string) (domain.HostID, bool) {
	id := strings.ToLower(fields["ID"])
	if alias, ok := idAliases[id]; ok {
		return alias, true
	}
	if host := domain.HostID(id); host.Known() {
		return host, true
	}

	like := strings.ToLower(fields["ID_LIKE"])
	switch {
	case containsWord(like, "rhel"), containsWord(like, "fedora"):
		if containsWord(like, "centos") {
			return domain.HostCentOS, true
		}
		return domain.HostRHEL, true
	case containsWord(like, "debian"):
		if containsWord(like, "ubuntu") {
			return domain.HostUbuntu, true
		}
		return domain.HostDebian, true
	case containsWord(like, "suse"), strings.Contains(like, "opensuse"):
		return domain.HostOpenSUSE, true
	case containsWord(like, "arch"):
		return domain.HostArch, true
	case containsWord(like, "alpine"):
		return domain.HostAlpine, true
	default:
		return "", false
	}
}

func probeDebianVersion(fsys fs.FS) (domain.HostProfile, bool) {
	data, err := fs.ReadFile(fsys, debianVersionFile)
	if err != nil {
		return domain.HostProfile{}, false
	}
	return domain.HostProfile{
		ID:      domain.HostDebian,
		Version: strings.TrimSpace(string(data)),
		Source:  "/" + debianVersionFile,
	}, true
}

func probeRedHatRelease(fsys fs.FS) (domain.HostProfile, bool) {
	data, err := fs.ReadFile(fsys, redhatReleaseFile)
	if err != nil {
		return domain.HostProfile{}, false
	}

	content := strings.ToLower(string(data))
	id := domain.HostRHEL
	switch {
	case strings.Contains(content, "centos"):
		id = domain.HostCentOS
	case strings.Contains(content, "fedora"):
		id = domain.HostFedora
	}

	return domain.HostProfile{
		ID:      id,
		Version: releaseVersion(content),
		Source:  "/" + redhatReleaseFile,
	}, true
}

func probeAlpineRelease(fsys fs.FS) (domain.HostProfile, bool) {
	data, err := fs.ReadFile(fsys, alpineReleaseFile)
	if err != nil {
		return domain.HostProfile{}, false
	}
	return domain.HostProfile{
		ID:      domain.HostAlpine,
		Version: strings.TrimSpace(string(data)),
		Source:  "/" + alpineReleaseFile,
	}, true
}

// probeMarker matches on the mere presence of a file.
func probeMarker(name string, id domain.HostID) probe {
	return func(fsys fs.FS) (domain.HostProfile, bool) {
		if _, err := fs.Stat(fsys, name); err != nil {
			return domain.HostProfile{}, false
		}
		return domain.HostProfile{ID: id, Source: "/" + name}, true
	}
}

// parseOSRelease reads KEY=value lines, stripping optional quotes.
func parseOSRelease(data []byte) map[string]string {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	return fields
}

func containsWord(list, word string) bool {
	for _, f := range strings.Fields(list) {
		if f == word {
			return true
		}
	}
	return false
}

// releaseVersion extracts the token following "release" in a redhat-release line.
func releaseVersion(content string) string {
	fields := strings.Fields(content)
	for i, f := range fields {
		if f == "release" && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}
