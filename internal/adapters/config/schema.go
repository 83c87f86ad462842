package config

import "go.trai.ch/runway/internal/core/domain"

// Runwayfile represents the structure of the runway.yaml configuration file.
type Runwayfile struct {
	Version      string               `yaml:"version"`
	Project      domain.Project       `yaml:"project"`
	Requirements []domain.Requirement `yaml:"requirements"`
	Toolchain    domain.ToolchainSpec `yaml:"toolchain"`
	Terminal     domain.TerminalSpec  `yaml:"terminal"`
	Launch       LaunchDTO            `yaml:"launch"`
}

// LaunchDTO represents the launch section of the configuration.
type LaunchDTO struct {
	Mode string `yaml:"mode"`
}

// cargoManifest is the subset of Cargo.toml needed to name the artifact.
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}
