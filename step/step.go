package step

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-snapshot-test-command/output"
	"github.com/bitrise-steplib/steps-snapshot-test-command/project"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcodebuild"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcpretty"
)

// Result ...
type Result struct {
	Command   xcodebuild.CommandLine
	LogPath   string
	DeployDir string
}

// SnapshotCommandStep ...
type SnapshotCommandStep struct {
	logger          log.Logger
	xcprettyChecker xcpretty.Checker
	generator       xcodebuild.Generator
	outputExporter  output.Exporter
}

// NewSnapshotCommandStep ...
func NewSnapshotCommandStep(logger log.Logger, xcprettyChecker xcpretty.Checker, generator xcodebuild.Generator, outputExporter output.Exporter) SnapshotCommandStep {
	return SnapshotCommandStep{
		logger:          logger,
		xcprettyChecker: xcprettyChecker,
		generator:       generator,
		outputExporter:  outputExporter,
	}
}

// CheckDeps reports the xcpretty used by the generated pipe. A missing xcpretty does not fail the step,
// the command is only generated here.
func (s SnapshotCommandStep) CheckDeps() {
	s.logger.Println()
	s.logger.Infof("Checking dependencies")

	xcprettyVersion, err := s.xcprettyChecker.CheckInstall()
	if err != nil {
		s.logger.Warnf("%s is not available, the generated command will fail without it: %s", xcpretty.Tool, err)
		return
	}

	s.logger.Printf("- %s version: %s", xcpretty.Tool, xcprettyVersion.String())
}

// Run generates the xcodebuild test command for the given config.
func (s SnapshotCommandStep) Run(cfg Config) (Result, error) {
	proj := project.New(cfg.ProjectPath, cfg.Xcodebuild.Scheme, cfg.AppName)

	s.logger.Println()
	s.logger.Infof("Generating test command")

	cmd, err := s.generator.Generate(cfg.Xcodebuild, proj, cfg.DeviceName)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate test command: %w", err)
	}

	logPath, err := s.generator.LogFilePath(cfg.Xcodebuild, proj)
	if err != nil {
		return Result{}, fmt.Errorf("failed to determine build log path: %w", err)
	}

	s.logger.Donef("$ %s", cmd.String())

	return Result{
		Command:   cmd,
		LogPath:   logPath,
		DeployDir: cfg.DeployDir,
	}, nil
}

// Export ...
func (s SnapshotCommandStep) Export(result Result) error {
	s.logger.Println()
	s.logger.Infof("Exporting outputs")

	if err := s.outputExporter.ExportCommand(result.Command.String()); err != nil {
		return err
	}

	if err := s.outputExporter.ExportBuildLogPath(result.LogPath); err != nil {
		return err
	}

	if result.DeployDir == "" {
		s.logger.Warnf("No deploy dir set, skipping command script export")
		return nil
	}

	if _, err := s.outputExporter.ExportCommandScript(result.DeployDir, result.Command.String()); err != nil {
		return err
	}

	return nil
}
