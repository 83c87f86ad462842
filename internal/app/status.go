package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/ui/output"
	"go.trai.ch/runway/internal/ui/style"
)

// StatusReport is a read-only snapshot of everything the pipeline would
// check, gathered without installing, building or launching anything.
type StatusReport struct {
	Project         domain.Project
	Mode            domain.BuildMode
	ManifestPresent bool
	Host            domain.HostProfile
	Capabilities    domain.CapabilitySet
	Toolchain       domain.Toolchain
	ToolchainFound  bool
	Artifact        domain.Artifact
	Decision        domain.Decision
	LastBuild       *domain.BuildRecord
}

// StatusOptions configuration for the Status method.
type StatusOptions struct {
	Mode       domain.BuildMode
	ProjectDir string
}

// Status gathers a StatusReport.
func (a *App) Status(_ context.Context, opts StatusOptions) (*StatusReport, error) {
	cfg, err := a.load(opts.ProjectDir)
	if err != nil {
		return nil, err
	}
	project := cfg.Project

	report := &StatusReport{
		Project: project,
		Mode:    opts.Mode,
		Host:    a.deps.Identifier.Identify(),
	}

	if _, err := os.Stat(project.ManifestPath()); err == nil {
		report.ManifestPresent = true
	}

	report.Toolchain, report.ToolchainFound = a.deps.Toolchain.Locate(cfg.Toolchain)
	report.Capabilities = a.deps.Prober.Probe(cfg.Requirements, report.Toolchain.Path.Env())
	report.Artifact = a.deps.Staleness.Inspect(project, opts.Mode)
	report.Decision = a.deps.Staleness.NeedsRebuild(domain.RunRequest{Mode: opts.Mode}, project)

	record, err := a.deps.Journal.Get(project.Root, opts.Mode)
	if err != nil {
		a.logger.Warn("could not read build journal: " + err.Error())
	}
	report.LastBuild = record

	return report, nil
}

// PrintStatus renders the report to the app's stdout.
func (a *App) PrintStatus(report *StatusReport) error {
	renderer := lipgloss.NewRenderer(a.stdout, termenv.WithProfile(output.ColorProfile()))
	return RenderStatus(renderer, a.stdout, report)
}

// RenderStatus writes a human readable report to w using renderer's color
// profile.
func RenderStatus(renderer *lipgloss.Renderer, w io.Writer, r *StatusReport) error {
	heading := style.Heading.Renderer(renderer)
	label := style.Label.Renderer(renderer)
	good := renderer.NewStyle().Foreground(style.Green)
	bad := renderer.NewStyle().Foreground(style.Red)
	warn := renderer.NewStyle().Foreground(style.Yellow)

	var b strings.Builder
	row := func(key, value string) {
		b.WriteString("  " + label.Render(key) + value + "\n")
	}
	ok := func(s string) string { return good.Render(style.Check) + " " + s }
	fail := func(s string) string { return bad.Render(style.Cross) + " " + s }
	caution := func(s string) string { return warn.Render(style.Warning) + " " + s }

	b.WriteString(heading.Render("Project") + "\n")
	row("root", r.Project.Root)
	if r.ManifestPresent {
		row("manifest", ok(r.Project.Manifest))
	} else {
		row("manifest", fail(r.Project.Manifest+" not found"))
	}
	row("binary", r.Project.Binary)

	b.WriteString("\n" + heading.Render("Host") + "\n")
	row("system", r.Host.String())
	for _, c := range r.Capabilities {
		if c.Present() {
			row(string(c.Capability), ok(fmt.Sprintf("%s (%s)", c.Tool, c.Path)))
		} else {
			row(string(c.Capability), fail("missing"))
		}
	}

	b.WriteString("\n" + heading.Render("Toolchain") + "\n")
	if r.ToolchainFound {
		row("driver", ok(r.Toolchain.Driver))
	} else {
		row("driver", fail("not installed"))
	}

	b.WriteString("\n" + heading.Render(fmt.Sprintf("Artifact (%s)", r.Mode.Dir())) + "\n")
	row("path", relativeTo(r.Project.Root, r.Artifact.Path))
	switch {
	case !r.Artifact.Exists:
		row("state", fail("not built"))
	case r.Decision.Rebuild:
		reason := r.Decision.Reason
		if r.Decision.Trigger != "" {
			reason += " (" + relativeTo(r.Project.Root, r.Decision.Trigger) + ")"
		}
		row("state", caution("stale: "+reason))
	default:
		row("state", ok("up to date"))
	}

	if r.LastBuild != nil {
		row("last build", fmt.Sprintf("%s on %s in %s",
			r.LastBuild.BuiltAt.UTC().Format(time.RFC3339),
			r.LastBuild.Host,
			r.LastBuild.Duration.Round(time.Millisecond)))
		if r.LastBuild.Digest != "" {
			row("digest", r.LastBuild.Digest)
		}
	} else {
		row("last build", "never")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func relativeTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func rootPath(root, rel string) string {
	return filepath.Join(root, rel)
}
