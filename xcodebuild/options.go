package xcodebuild

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// DerivedDataPath is the scratch directory xcodebuild writes its intermediate build artifacts to
const DerivedDataPath = "/tmp/snapshot_derived/"

// Test actions ...
const (
	CleanAction = "clean"
	TestAction  = "test"
)

// options returns the project arguments followed by
// -configuration, -sdk, -derivedDataPath and the optional -xcconfig and raw options.
func (g *generator) options(cfg Config, project Project) ([]string, error) {
	projectParams := project.XcodebuildParameters()
	if len(projectParams) == 0 {
		return nil, newMissingProjectError()
	}

	var options []string
	options = append(options, projectParams...)
	if cfg.Configuration != "" {
		options = append(options, quotedFlag("configuration", cfg.Configuration))
	}
	if cfg.SDK != "" {
		options = append(options, quotedFlag("sdk", cfg.SDK))
	}
	options = append(options, quotedFlag("derivedDataPath", DerivedDataPath))

	if cfg.XCConfigPath != "" {
		options = append(options, quotedFlag("xcconfig", cfg.XCConfigPath))
	}
	if cfg.XcodebuildOptions != "" {
		if _, err := shellquote.Split(cfg.XcodebuildOptions); err != nil {
			return nil, fmt.Errorf("failed to parse additional options (%s): %w", cfg.XcodebuildOptions, err)
		}
		options = append(options, cfg.XcodebuildOptions)
	}

	return options, nil
}

func actions(cfg Config) []string {
	var actions []string
	if cfg.PerformCleanAction {
		actions = append(actions, CleanAction)
	}
	actions = append(actions, TestAction)

	return actions
}

func suffix(cfg Config) []string {
	var suffix []string
	if cfg.ArchivePath != "" {
		suffix = append(suffix, quotedFlag("archivePath", cfg.ArchivePath))
	}

	return suffix
}
