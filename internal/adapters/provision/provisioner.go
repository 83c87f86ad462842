// Package provision installs missing native build dependencies with the host package manager.
package provision

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/zerr"
)

// elevators are tried in order when the orchestrator is not running as root.
var elevators = []string{"sudo", "doas"}

// Provisioner implements ports.Provisioner.
type Provisioner struct {
	executor ports.Executor
	logger   ports.Logger
	plans    map[domain.HostID]Plan
	euid     func() int
	lookPath func(file string) (string, error)
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithEUID overrides the effective user id source.
func WithEUID(fn func() int) Option {
	return func(p *Provisioner) {
		p.euid = fn
	}
}

// WithLookPath overrides how elevation tools and package managers are located.
func WithLookPath(fn func(file string) (string, error)) Option {
	return func(p *Provisioner) {
		p.lookPath = fn
	}
}

// WithPlans replaces the package plan table.
func WithPlans(plans map[domain.HostID]Plan) Option {
	return func(p *Provisioner) {
		p.plans = plans
	}
}

// New creates a Provisioner.
func New(executor ports.Executor, logger ports.Logger, opts ...Option) *Provisioner {
	p := &Provisioner{
		executor: executor,
		logger:   logger,
		plans:    DefaultPlans(),
		euid:     os.Geteuid,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Provision installs the host's build dependency packages when caps has
// anything missing. A satisfied set performs no invocations. Each failed step
// becomes a warning in the report and the remaining steps still run.
func (p *Provisioner) Provision(
	ctx context.Context,
	host domain.HostProfile,
	caps domain.CapabilitySet,
) (ports.ProvisionReport, error) {
	report := ports.ProvisionReport{Status: ports.ProvisionNotNeeded}
	if caps.Satisfied() {
		return report, nil
	}

	plan, ok := p.plans[host.ID]
	if !ok {
		report.Status = ports.ProvisionSkipped
		report.Warnings = append(report.Warnings, zerr.With(domain.ErrUnknownHost, "host", host.ID.String()))
		return report, nil
	}

	plan = p.resolveManager(plan)

	prefix, err := p.elevation(plan)
	if err != nil {
		report.Status = ports.ProvisionSkipped
		report.Warnings = append(report.Warnings, err)
		return report, nil
	}

	missing := make([]string, 0, len(caps.Missing()))
	for _, c := range caps.Missing() {
		missing = append(missing, string(c))
	}
	p.logger.Info("installing build dependencies with " + plan.Manager() + " (missing: " + strings.Join(missing, ", ") + ")")

	var steps [][]string
	if len(plan.Update) > 0 {
		steps = append(steps, plan.Update)
	}
	install := append(append([]string{}, plan.Install...), plan.Packages...)
	steps = append(steps, install)

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		argv := append(append([]string{}, prefix...), step...)
		cmd := &domain.Command{Name: argv[0], Args: argv[1:]}

		report.Invocations++
		if err := p.executor.Interact(ctx, cmd, nil); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			warning := zerr.With(zerr.Wrap(err, domain.ErrPackageManagerFailed.Error()), "step", strings.Join(step, " "))
			report.Warnings = append(report.Warnings, warning)
		}
	}

	report.Status = ports.ProvisionApplied
	if len(report.Warnings) > 0 {
		report.Status = ports.ProvisionPartial
	}
	return report, nil
}

// resolveManager swaps in the fallback manager when the primary one is absent.
func (p *Provisioner) resolveManager(plan Plan) Plan {
	if plan.Fallback == "" {
		return plan
	}
	if _, err := p.lookPath(plan.Manager()); err == nil {
		return plan
	}
	if _, err := p.lookPath(plan.Fallback); err != nil {
		return plan
	}

	swap := func(argv []string) []string {
		if len(argv) == 0 {
			return nil
		}
		return append([]string{plan.Fallback}, argv[1:]...)
	}
	plan.Update = swap(plan.Update)
	plan.Install = swap(plan.Install)
	return plan
}

// elevation returns the command prefix needed to run the package manager.
func (p *Provisioner) elevation(plan Plan) ([]string, error) {
	if p.euid() == 0 {
		return nil, nil
	}
	for _, tool := range elevators {
		if _, err := p.lookPath(tool); err == nil {
			return []string{tool}, nil
		}
	}
	if plan.AllowUnprivileged {
		p.logger.Warn("no elevation tool found, attempting an unprivileged install")
		return nil, nil
	}
	return nil, domain.ErrNoElevation
}
