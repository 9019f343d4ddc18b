package output

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Exported outputs ...
const (
	CommandKey     = "SNAPSHOT_XCODEBUILD_COMMAND"
	CommandPathKey = "SNAPSHOT_XCODEBUILD_COMMAND_PATH"
	LogPathKey     = "SNAPSHOT_XCODEBUILD_LOG_PATH"
)

const commandScriptName = "snapshot_xcodebuild.sh"

// OutputExporter exposes values for subsequent steps
type OutputExporter interface {
	ExportOutputNoExpand(key, value string) error
}

// Exporter ...
type Exporter interface {
	ExportCommand(command string) error
	ExportBuildLogPath(logPath string) error
	ExportCommandScript(deployDir, command string) (string, error)
}

type exporter struct {
	envRepository  env.Repository
	logger         log.Logger
	outputExporter OutputExporter
	fileManager    fileutil.FileManager
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter OutputExporter, fileManager fileutil.FileManager) Exporter {
	return &exporter{
		envRepository:  envRepository,
		logger:         logger,
		outputExporter: outputExporter,
		fileManager:    fileManager,
	}
}

// ExportCommand exports the command unexpanded, it carries quotes and pipes.
func (e exporter) ExportCommand(command string) error {
	if err := e.outputExporter.ExportOutputNoExpand(CommandKey, command); err != nil {
		return fmt.Errorf("failed to export %s: %w", CommandKey, err)
	}
	e.logger.Donef("The generated command is available in the $%s environment variable", CommandKey)

	return nil
}

func (e exporter) ExportBuildLogPath(logPath string) error {
	if err := e.envRepository.Set(LogPathKey, logPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", LogPathKey, err)
	}
	e.logger.Donef("The build log path is available in the $%s environment variable", LogPathKey)

	return nil
}

// ExportCommandScript writes the command as a bash script into deployDir and exports its path.
func (e exporter) ExportCommandScript(deployDir, command string) (string, error) {
	scriptPath := filepath.Join(deployDir, commandScriptName)
	content := fmt.Sprintf("#!/bin/bash\n%s\n", command)

	if err := e.fileManager.Write(scriptPath, content, 0755); err != nil {
		return "", fmt.Errorf("failed to write command script: %w", err)
	}

	if err := e.envRepository.Set(CommandPathKey, scriptPath); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", CommandPathKey, err)
	}
	e.logger.Donef("The command script is available in the $%s environment variable", CommandPathKey)

	return scriptPath, nil
}
