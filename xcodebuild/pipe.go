package xcodebuild

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-steplib/steps-snapshot-test-command/xcpretty"
)

// LogFilePath returns <buildlog_path>/<app name>-<scheme>.log without touching the filesystem.
func (g *generator) LogFilePath(cfg Config, project Project) (string, error) {
	logDir := cfg.BuildlogPath
	if logDir == "" {
		logDir = "."
	}

	absLogDir, err := g.pathModifier.AbsPath(logDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of build log directory (%s): %w", logDir, err)
	}

	fileName := fmt.Sprintf("%s-%s.log", project.AppName(), cfg.Scheme)

	return filepath.Join(absLogDir, fileName), nil
}

func (g *generator) pipe(cfg Config, project Project) ([]string, error) {
	logPath, err := g.LogFilePath(cfg, project)
	if err != nil {
		return nil, err
	}

	if err := g.dirCreator.EnsureDir(filepath.Dir(logPath)); err != nil {
		return nil, fmt.Errorf("failed to create build log directory: %w", err)
	}

	return []string{fmt.Sprintf("| tee '%s' | %s", logPath, xcpretty.Tool)}, nil
}
