// Package pipeline sequences the bootstrap stages that take a checkout to a
// running application.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names, in execution order.
const (
	StageManifest  = "manifest"
	StageIdentify  = "identify"
	StageProbe     = "probe"
	StageProvision = "provision"
	StageToolchain = "toolchain"
	StageBuild     = "build"
	StageTerminal  = "terminal"
)

// Stages lists every stage Prepare runs.
var Stages = []string{
	StageManifest,
	StageIdentify,
	StageProbe,
	StageProvision,
	StageToolchain,
	StageBuild,
	StageTerminal,
}

// Deps holds the ports the pipeline drives.
type Deps struct {
	Identifier  ports.HostIdentifier
	Prober      ports.CapabilityProber
	Provisioner ports.Provisioner
	Toolchain   ports.ToolchainInstaller
	Staleness   ports.StalenessChecker
	Builder     ports.Builder
	Journal     ports.BuildJournal
	Gatekeeper  ports.Gatekeeper
	Launcher    ports.Launcher
	Tracer      ports.Tracer
	Logger      ports.Logger
}

// Pipeline runs the stages strictly in order. A fatal stage error skips all
// later stages.
type Pipeline struct {
	Deps
	now func() time.Time
}

// New creates a new Pipeline.
func New(deps Deps) *Pipeline {
	return &Pipeline{Deps: deps, now: time.Now}
}

// Prepared is the outcome of Prepare.
type Prepared struct {
	// Admitted is false when the user declined to launch in an undersized
	// terminal.
	Admitted bool
	Mode     domain.LaunchMode
	Artifact domain.Artifact
	Args     []string
	Env      []string
	Host     domain.HostProfile
	Rebuilt  bool
}

// Prepare runs every stage up to and including the terminal check.
//
//nolint:cyclop // orchestration function
func (p *Pipeline) Prepare(ctx context.Context, cfg *domain.Config, req domain.RunRequest) (*Prepared, error) {
	p.Tracer.EmitPlan(ctx, Stages)

	out := &Prepared{Mode: cfg.Launch, Args: req.Args}
	project := cfg.Project

	if err := p.stage(ctx, StageManifest, func(_ context.Context, span ports.Span, log ports.Logger) error {
		path := project.ManifestPath()
		span.SetAttribute("runway.manifest", path)
		if _, err := os.Stat(path); err != nil {
			return zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	_ = p.stage(ctx, StageIdentify, func(_ context.Context, span ports.Span, log ports.Logger) error {
		out.Host = p.Identifier.Identify()
		span.SetAttribute("runway.host", out.Host.String())
		log.Info("host: " + out.Host.String())
		return nil
	})

	var caps domain.CapabilitySet
	_ = p.stage(ctx, StageProbe, func(_ context.Context, span ports.Span, log ports.Logger) error {
		caps = p.probe(cfg)
		span.SetAttribute("runway.capabilities", caps.String())
		return nil
	})

	if err := p.stage(ctx, StageProvision, func(ctx context.Context, span ports.Span, log ports.Logger) error {
		report, err := p.Provisioner.Provision(ctx, out.Host, caps)
		if err != nil {
			return err
		}
		span.SetAttribute("runway.provision.invocations", report.Invocations)
		for _, w := range report.Warnings {
			log.Warn(w.Error())
		}

		if report.Status == ports.ProvisionApplied || report.Status == ports.ProvisionPartial {
			caps = p.probe(cfg)
			span.SetAttribute("runway.capabilities", caps.String())
		}
		if missing := caps.Missing(); len(missing) > 0 {
			log.Warn("build dependencies still missing: " + joinCapabilities(missing))
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var tc domain.Toolchain
	if err := p.stage(ctx, StageToolchain, func(ctx context.Context, span ports.Span, log ports.Logger) error {
		var err error
		tc, err = p.Toolchain.Ensure(ctx, cfg.Toolchain, span)
		if err != nil {
			return err
		}
		span.SetAttribute("runway.driver", tc.Driver)
		span.SetAttribute("runway.toolchain.installed", tc.Installed)
		return nil
	}); err != nil {
		return nil, err
	}
	out.Env = tc.Path.Env()

	if err := p.stage(ctx, StageBuild, func(ctx context.Context, span ports.Span, log ports.Logger) error {
		art, rebuilt, err := p.build(ctx, cfg, req, tc, out.Host, span, log)
		if err != nil {
			return err
		}
		out.Artifact = art
		out.Rebuilt = rebuilt
		span.SetAttribute("runway.rebuilt", rebuilt)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := p.stage(ctx, StageTerminal, func(ctx context.Context, _ ports.Span, _ ports.Logger) error {
		var err error
		out.Admitted, err = p.Gatekeeper.Admit(ctx, cfg.Terminal)
		return err
	}); err != nil {
		return nil, err
	}

	if !out.Admitted {
		p.Logger.Info("launch cancelled")
	}
	return out, nil
}

// Launch hands control to the prepared artifact. In exec mode it only
// returns on failure.
func (p *Pipeline) Launch(ctx context.Context, prepared *Prepared) error {
	if prepared == nil || !prepared.Admitted {
		return nil
	}
	return p.Launcher.Launch(ctx, prepared.Mode, prepared.Artifact.Path, prepared.Args, prepared.Env)
}

// Run prepares and launches in one go.
func (p *Pipeline) Run(ctx context.Context, cfg *domain.Config, req domain.RunRequest) error {
	prepared, err := p.Prepare(ctx, cfg, req)
	if err != nil {
		return err
	}
	return p.Launch(ctx, prepared)
}

// stageLogger is implemented by loggers that can tag records with a stage.
type stageLogger interface {
	WithStage(stage string) ports.Logger
}

func (p *Pipeline) stage(ctx context.Context, name string, fn func(context.Context, ports.Span, ports.Logger) error) error {
	ctx, span := p.Tracer.Start(ctx, name)
	defer span.End()

	log := p.Logger
	if sl, ok := log.(stageLogger); ok {
		log = sl.WithStage(name)
	}

	if err := fn(ctx, span, log); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// probe resolves capabilities on the inherited PATH extended by an already
// installed toolchain's directories.
func (p *Pipeline) probe(cfg *domain.Config) domain.CapabilitySet {
	var env []string
	if tc, ok := p.Toolchain.Locate(cfg.Toolchain); ok {
		env = tc.Path.Env()
	}
	return p.Prober.Probe(cfg.Requirements, env)
}

func (p *Pipeline) build(
	ctx context.Context,
	cfg *domain.Config,
	req domain.RunRequest,
	tc domain.Toolchain,
	host domain.HostProfile,
	span ports.Span,
	log ports.Logger,
) (domain.Artifact, bool, error) {
	project := cfg.Project

	decision := p.Staleness.NeedsRebuild(req, project)
	span.SetAttribute("runway.build.reason", decision.Reason)
	if !decision.Rebuild {
		log.Info(fmt.Sprintf("%s build is up to date", req.Mode.Dir()))
		return p.Staleness.Inspect(project, req.Mode), false, nil
	}

	msg := fmt.Sprintf("building %s: %s", req.Mode.Dir(), decision.Reason)
	if decision.Trigger != "" {
		msg += " (" + decision.Trigger + ")"
	}
	log.Info(msg)

	start := p.now()
	art, err := p.Builder.Build(ctx, project, req.Mode, tc, span)
	if err != nil {
		return domain.Artifact{}, false, err
	}

	record := domain.BuildRecord{
		Mode:     req.Mode,
		Artifact: art.Path,
		Digest:   art.Digest,
		Host:     host.String(),
		BuiltAt:  art.ModTime,
		Duration: p.now().Sub(start),
	}
	if err := p.Journal.Put(project.Root, record); err != nil {
		log.Warn("could not record build: " + err.Error())
	}

	return art, true, nil
}

func joinCapabilities(caps []domain.Capability) string {
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
