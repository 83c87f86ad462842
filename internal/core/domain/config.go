package domain

// Minimum terminal dimensions the launched application renders correctly in.
const (
	MinTerminalWidth  = 80
	MinTerminalHeight = 24
)

// TerminalSpec configures the terminal gatekeeper.
type TerminalSpec struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// LaunchMode selects how the artifact is started.
type LaunchMode string

// Launch modes.
const (
	// LaunchExec replaces the orchestrator's process image.
	LaunchExec LaunchMode = "exec"
	// LaunchSpawn runs the artifact as a child and waits for it.
	LaunchSpawn LaunchMode = "spawn"
)

// Config is the resolved orchestrator configuration.
type Config struct {
	Project      Project
	Requirements []Requirement
	Toolchain    ToolchainSpec
	Terminal     TerminalSpec
	Launch       LaunchMode
}

// DefaultConfig returns the configuration used when no runway.yaml exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Project:      DefaultProject(root),
		Requirements: DefaultRequirements(),
		Toolchain:    DefaultToolchainSpec(),
		Terminal: TerminalSpec{
			MinWidth:  MinTerminalWidth,
			MinHeight: MinTerminalHeight,
		},
		Launch: LaunchExec,
	}
}

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Environment overrides entries of the inherited environment.
	Environment map[string]string
}

// Argv returns the full argument vector.
func (c *Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
