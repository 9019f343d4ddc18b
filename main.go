package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-io/go-xcode/v2/destination"
	"github.com/bitrise-steplib/steps-snapshot-test-command/dircreator"
	"github.com/bitrise-steplib/steps-snapshot-test-command/output"
	"github.com/bitrise-steplib/steps-snapshot-test-command/project"
	"github.com/bitrise-steplib/steps-snapshot-test-command/simulator"
	"github.com/bitrise-steplib/steps-snapshot-test-command/step"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcconfig"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcodebuild"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcodeversion"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcpretty"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()

	xcodeVersion, err := xcodeversion.NewXcodeVersionReader().Version()
	if err != nil {
		logger.Errorf("Read Xcode version: %s", err)
		return 1
	}

	configParser, snapshotStep := createStep(logger, xcodeVersion)

	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	snapshotStep.CheckDeps()

	result, err := snapshotStep.Run(config)
	if err != nil {
		logger.Errorf("Run: %s", err)
		return 1
	}

	if err := snapshotStep.Export(result); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	return 0
}

func createStep(logger log.Logger, xcodeVersion xcodeversion.Version) (step.SnapshotCommandConfigParser, step.SnapshotCommandStep) {
	envRepository := env.NewRepository()
	commandFactory := command.NewFactory(envRepository)
	inputParser := stepconf.NewInputParser(envRepository)
	pathModifier := pathutil.NewPathModifier()
	fileManager := fileutil.NewFileManager()

	deviceFinder := destination.NewDeviceFinder(logger, commandFactory, xcodeVersion)
	deviceDirectory := simulator.NewDirectory(logger, deviceFinder, simulator.PlatformIOS)
	buildSettingsReader := project.NewBuildSettingsReader(logger, commandFactory)
	xcconfigWriter := xcconfig.NewWriter(pathutil.NewPathProvider(), fileManager, pathutil.NewPathChecker(), pathModifier)

	configParser := step.NewSnapshotCommandConfigParser(inputParser, logger, xcodeVersion, deviceDirectory, buildSettingsReader, xcconfigWriter, pathModifier)

	xcprettyChecker := xcpretty.NewChecker(logger, commandFactory)
	generator := xcodebuild.NewGenerator(logger, deviceDirectory, pathModifier, dircreator.NewDirCreator())
	outputExporter := export.NewExporter(commandFactory, fileManager)
	exporter := output.NewExporter(stepenv.NewRepository(envRepository), logger, &outputExporter, fileManager)

	snapshotStep := step.NewSnapshotCommandStep(logger, xcprettyChecker, generator, exporter)

	return configParser, snapshotStep
}
