package step

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-io/go-xcode/v2/destination"
	"github.com/bitrise-steplib/steps-snapshot-test-command/project"
	"github.com/bitrise-steplib/steps-snapshot-test-command/simulator"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcconfig"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcodebuild"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcodeversion"
)

const (
	latestOSVersion     = "latest"
	simulatorPlatformID = "iOS Simulator"
)

// Input ...
type Input struct {
	// Project Parameters
	ProjectPath string `env:"project_path,required"`
	Scheme      string `env:"scheme,required"`
	AppName     string `env:"app_name"`

	// Simulator Configs
	SimulatorDevice string `env:"simulator_device"`
	Destination     string `env:"destination"`
	IOSVersion      string `env:"ios_version"`

	// Build Configs
	Configuration string `env:"configuration"`
	SDK           string `env:"sdk"`
	BuildlogPath  string `env:"buildlog_path,required"`

	PerformCleanAction bool   `env:"perform_clean_action,opt[yes,no]"`
	XCConfigContent    string `env:"xcconfig_content"`
	XcodebuildOptions  string `env:"xcodebuild_options"`
	ArchivePath        string `env:"archive_path"`

	// Debug
	VerboseLog bool `env:"verbose_log,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	ProjectPath string
	AppName     string
	DeviceName  string

	Xcodebuild xcodebuild.Config

	DeployDir string
}

// SnapshotCommandConfigParser ...
type SnapshotCommandConfigParser struct {
	inputParser         stepconf.InputParser
	logger              log.Logger
	xcodeVersion        xcodeversion.Version
	deviceDirectory     simulator.Directory
	buildSettingsReader project.BuildSettingsReader
	xcconfigWriter      xcconfig.Writer
	pathModifier        pathutil.PathModifier
}

// NewSnapshotCommandConfigParser ...
func NewSnapshotCommandConfigParser(inputParser stepconf.InputParser, logger log.Logger, xcodeVersion xcodeversion.Version, deviceDirectory simulator.Directory, buildSettingsReader project.BuildSettingsReader, xcconfigWriter xcconfig.Writer, pathModifier pathutil.PathModifier) SnapshotCommandConfigParser {
	return SnapshotCommandConfigParser{
		inputParser:         inputParser,
		logger:              logger,
		xcodeVersion:        xcodeVersion,
		deviceDirectory:     deviceDirectory,
		buildSettingsReader: buildSettingsReader,
		xcconfigWriter:      xcconfigWriter,
		pathModifier:        pathModifier,
	}
}

// ProcessConfig ...
func (s SnapshotCommandConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := s.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	s.logger.Println()

	s.logger.EnableDebugLog(input.VerboseLog)

	s.logger.Printf("- xcodebuildVersion: %s (%s)", s.xcodeVersion.Version, s.xcodeVersion.BuildVersion)

	projectPath, err := s.pathModifier.AbsPath(input.ProjectPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute project path: %w", err)
	}
	if !project.IsProject(projectPath) && !project.IsWorkspace(projectPath) {
		return Config{}, fmt.Errorf("invalid project file (%s), extension should be (.xcodeproj/.xcworkspace)", projectPath)
	}

	deviceName, osVersion, err := s.simulatorTarget(input)
	if err != nil {
		return Config{}, err
	}

	if osVersion == "" || osVersion == latestOSVersion {
		osVersion, err = s.latestOSVersion()
		if err != nil {
			return Config{}, err
		}
	}

	s.logger.Infof("Simulator infos")
	s.logger.Printf("* simulator_name: %s, version: %s", deviceName, osVersion)
	s.logger.Println()

	appName := input.AppName
	if appName == "" {
		appName = s.appNameFromBuildSettings(projectPath, input.Scheme, input.Configuration)
	}

	xcconfigPath := ""
	if input.XCConfigContent != "" {
		xcconfigPath, err = s.xcconfigWriter.Write(input.XCConfigContent)
		if err != nil {
			return Config{}, err
		}
	}

	return Config{
		ProjectPath: projectPath,
		AppName:     appName,
		DeviceName:  deviceName,

		Xcodebuild: xcodebuild.Config{
			Scheme:        input.Scheme,
			Configuration: input.Configuration,
			SDK:           input.SDK,
			IOSVersion:    osVersion,
			BuildlogPath:  input.BuildlogPath,

			PerformCleanAction: input.PerformCleanAction,
			XCConfigPath:       xcconfigPath,
			XcodebuildOptions:  input.XcodebuildOptions,
			ArchivePath:        input.ArchivePath,
		},

		DeployDir: input.DeployDir,
	}, nil
}

// simulatorTarget returns the device name and OS version, the destination input takes precedence.
func (s SnapshotCommandConfigParser) simulatorTarget(input Input) (string, string, error) {
	if input.Destination == "" {
		if strings.TrimSpace(input.SimulatorDevice) == "" {
			return "", "", errors.New("either Simulator device (simulator_device) or Destination (destination) is required")
		}
		return input.SimulatorDevice, input.IOSVersion, nil
	}

	if input.SimulatorDevice != "" {
		s.logger.Warnf("Both Destination (destination) and Simulator device (simulator_device) are set, using destination")
	}

	sim, err := destination.NewSimulator(input.Destination)
	if err != nil {
		return "", "", fmt.Errorf("invalid destination specifier (%s): %w", input.Destination, err)
	}
	if sim.Platform != simulatorPlatformID {
		return "", "", fmt.Errorf("unsupported destination platform (%s), only %s is supported", sim.Platform, simulatorPlatformID)
	}

	return sim.Name, sim.OS, nil
}

func (s SnapshotCommandConfigParser) latestOSVersion() (string, error) {
	devices, err := s.deviceDirectory.ListDevices()
	if err != nil {
		return "", fmt.Errorf("failed to list simulators: %w", err)
	}

	osVersion, err := simulator.LatestOSVersion(devices)
	if err != nil {
		return "", fmt.Errorf("failed to determine latest iOS version: %w", err)
	}

	return osVersion, nil
}

func (s SnapshotCommandConfigParser) appNameFromBuildSettings(projectPath, scheme, configuration string) string {
	settings, err := s.buildSettingsReader.BuildSettings(projectPath, scheme, configuration)
	if err != nil {
		s.logger.Warnf("Failed to read build settings, using the scheme (%s) as app name: %s", scheme, err)
		return scheme
	}

	appName := project.AppNameFromSettings(settings)
	if appName == "" {
		s.logger.Warnf("No app name found in build settings, using the scheme (%s) as app name", scheme)
		return scheme
	}

	return appName
}
