// Package toolchain locates the build driver and bootstraps it when absent.
package toolchain

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.trai.ch/runway/internal/adapters/shell" //nolint:depguard // shares PATH resolution with the executor
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.ToolchainInstaller.
type Installer struct {
	executor ports.Executor
	logger   ports.Logger
	client   *http.Client
	progress io.Writer
	getenv   func(string) string
	environ  func() []string
}

// Option configures an Installer.
type Option func(*Installer)

// WithHTTPClient replaces the client used to fetch the installer script.
func WithHTTPClient(c *http.Client) Option {
	return func(i *Installer) {
		i.client = c
	}
}

// WithProgress sets where the download progress bar is drawn.
func WithProgress(w io.Writer) Option {
	return func(i *Installer) {
		i.progress = w
	}
}

// WithEnv overrides the process environment used for descriptor expansion
// and driver resolution.
func WithEnv(getenv func(string) string, environ func() []string) Option {
	return func(i *Installer) {
		i.getenv = getenv
		i.environ = environ
	}
}

// New creates an Installer.
func New(executor ports.Executor, logger ports.Logger, opts ...Option) *Installer {
	i := &Installer{
		executor: executor,
		logger:   logger,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
		progress: os.Stderr,
		getenv:   os.Getenv,
		environ:  os.Environ,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// DescriptorPath returns the environment descriptor location for spec.
func (i *Installer) DescriptorPath(spec domain.ToolchainSpec) string {
	if spec.Descriptor != "" {
		return os.Expand(spec.Descriptor, i.getenv)
	}
	if cargoHome := i.getenv("CARGO_HOME"); cargoHome != "" {
		return filepath.Join(cargoHome, "env")
	}
	return filepath.Join(i.getenv("HOME"), ".cargo", "env")
}

// Environment reads the descriptor and returns the tool path it defines. A
// missing descriptor yields an empty tool path.
func (i *Installer) Environment(spec domain.ToolchainSpec) domain.ToolPath {
	path := i.DescriptorPath(spec)
	data, err := os.ReadFile(path) //nolint:gosec // descriptor lives in the user's home
	if err != nil {
		return domain.ToolPath{}
	}
	return domain.ToolPath{Dirs: parseDescriptor(data, filepath.Dir(path), i.getenv)}
}

// Locate resolves the build driver on the system PATH extended by the
// descriptor's tool path.
func (i *Installer) Locate(spec domain.ToolchainSpec) (domain.Toolchain, bool) {
	toolPath := i.Environment(spec)
	env := shell.ResolveEnvironment(i.environ(), toolPath.Env(), nil)

	driver, err := shell.LookPath(spec.Driver, env)
	if err != nil {
		return domain.Toolchain{Path: toolPath}, false
	}
	return domain.Toolchain{Driver: driver, Path: toolPath}, true
}

// Ensure returns the located build driver, bootstrapping it first when it
// cannot be found. The installer runs at most once.
func (i *Installer) Ensure(ctx context.Context, spec domain.ToolchainSpec, out io.Writer) (domain.Toolchain, error) {
	if tc, ok := i.Locate(spec); ok {
		return tc, nil
	}

	i.logger.Info(spec.Driver + " not found, bootstrapping toolchain from " + spec.InstallerURL)

	script, err := i.download(ctx, spec.InstallerURL)
	if err != nil {
		return domain.Toolchain{}, err
	}
	defer func() { _ = os.Remove(script) }()

	cmd := &domain.Command{
		Name: "sh",
		Args: append([]string{script}, spec.InstallerArgs...),
	}
	if err := i.executor.Execute(ctx, cmd, nil, out, out); err != nil {
		return domain.Toolchain{}, zerr.Wrap(err, domain.ErrInstallerFailed.Error())
	}

	tc, ok := i.Locate(spec)
	if !ok {
		return domain.Toolchain{}, zerr.With(domain.ErrToolchainUnavailable, "descriptor", i.DescriptorPath(spec))
	}
	tc.Installed = true
	return tc, nil
}

// download fetches the installer script over TLS into a temporary file and
// returns its path.
func (i *Installer) download(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "https" {
		return "", zerr.With(domain.ErrInsecureInstallerURL, "url", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrInstallerDownloadFailed.Error())
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInstallerDownloadFailed.Error()), "url", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(domain.ErrInstallerDownloadFailed, "status", resp.Status)
		return "", zerr.With(err, "url", rawURL)
	}

	f, err := os.CreateTemp("", "runway-installer-*.sh")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrInstallerDownloadFailed.Error())
	}

	bar := progressbar.NewOptions64(resp.ContentLength,
		progressbar.OptionSetWriter(i.progress),
		progressbar.OptionSetDescription("downloading toolchain installer"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	_, copyErr := io.Copy(io.MultiWriter(f, bar), resp.Body)
	_ = bar.Finish()
	closeErr := f.Close()

	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, domain.ErrInstallerDownloadFailed.Error())
	}

	return f.Name(), nil
}
