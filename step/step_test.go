package step

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-snapshot-test-command/project"
	"github.com/bitrise-steplib/steps-snapshot-test-command/simulator"
	"github.com/bitrise-steplib/steps-snapshot-test-command/step/mocks"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcodebuild"
	"github.com/bitrise-steplib/steps-snapshot-test-command/xcodeversion"
	"github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type configParserMocks struct {
	deviceDirectory     *mocks.Directory
	buildSettingsReader *mocks.BuildSettingsReader
	xcconfigWriter      *mocks.XcconfigWriter
}

type stepMocks struct {
	xcprettyChecker *mocks.XcprettyChecker
	generator       *mocks.Generator
	outputExporter  *mocks.Exporter
}

func Test_GivenSimulatorDeviceAndVersion_WhenProcessConfig_ThenConfigIsFilled(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	configParser, _ := createConfigParser(t, envValues)

	// When
	cfg, err := configParser.ProcessConfig()

	// Then
	require.NoError(t, err)
	assert.Equal(t, absPath(t, "./_tmp/Snapshot.xcworkspace"), cfg.ProjectPath)
	assert.Equal(t, "Snapshot", cfg.AppName)
	assert.Equal(t, "iPhone 8", cfg.DeviceName)
	assert.Equal(t, xcodebuild.Config{
		Scheme:        "SnapshotUITests",
		Configuration: "Debug",
		SDK:           "iphonesimulator",
		IOSVersion:    "16.4",
		BuildlogPath:  "./snapshot_logs",
	}, cfg.Xcodebuild)
	assert.Equal(t, "/deploy", cfg.DeployDir)
}

func Test_GivenDestination_WhenProcessConfig_ThenDeviceComesFromDestination(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["simulator_device"] = ""
	envValues["ios_version"] = ""
	envValues["destination"] = "platform=iOS Simulator,name=iPhone 14 Pro,OS=16.2"
	configParser, _ := createConfigParser(t, envValues)

	// When
	cfg, err := configParser.ProcessConfig()

	// Then
	require.NoError(t, err)
	assert.Equal(t, "iPhone 14 Pro", cfg.DeviceName)
	assert.Equal(t, "16.2", cfg.Xcodebuild.IOSVersion)
}

func Test_GivenNonSimulatorDestination_WhenProcessConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["destination"] = "platform=macOS,arch=arm64"
	configParser, _ := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.Error(t, err)
}

func Test_GivenNoDevice_WhenProcessConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["simulator_device"] = "  "
	configParser, _ := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.EqualError(t, err, "either Simulator device (simulator_device) or Destination (destination) is required")
}

func Test_GivenInvalidProjectExtension_WhenProcessConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["project_path"] = "./_tmp/Snapshot.xcodeproj/project.pbxproj"
	configParser, _ := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project file")
}

func Test_GivenMissingRequiredInput_WhenProcessConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["buildlog_path"] = ""
	configParser, _ := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.Error(t, err)
}

func Test_GivenLatestOSVersion_WhenProcessConfig_ThenNewestRuntimeIsUsed(t *testing.T) {
	tests := []struct {
		name       string
		iosVersion string
	}{
		{name: "empty", iosVersion: ""},
		{name: "latest", iosVersion: "latest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			envValues := defaultEnvValues()
			envValues["ios_version"] = tt.iosVersion
			configParser, mocks := createConfigParser(t, envValues)
			mocks.deviceDirectory.On("ListDevices").Return([]simulator.Device{
				{Name: "iPhone 8", UDID: "A", OS: "9.0"},
				{Name: "iPhone 8", UDID: "B", OS: "16.4"},
				{Name: "iPhone 8", UDID: "C", OS: "10.3"},
			}, nil)

			// When
			cfg, err := configParser.ProcessConfig()

			// Then
			require.NoError(t, err)
			assert.Equal(t, "16.4", cfg.Xcodebuild.IOSVersion)
		})
	}
}

func Test_GivenDeviceListingFails_WhenLatestOSVersionIsNeeded_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["ios_version"] = "latest"
	configParser, mocks := createConfigParser(t, envValues)
	mocks.deviceDirectory.On("ListDevices").Return(nil, errors.New("simctl failed"))

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simctl failed")
}

func Test_GivenNoAppName_WhenProcessConfig_ThenAppNameComesFromBuildSettings(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["app_name"] = ""
	configParser, mocks := createConfigParser(t, envValues)
	mocks.buildSettingsReader.On("BuildSettings", absPath(t, "./_tmp/Snapshot.xcworkspace"), "SnapshotUITests", "Debug").
		Return(map[string]string{"WRAPPER_NAME": "SnapshotApp.app", "PRODUCT_NAME": "Other"}, nil)

	// When
	cfg, err := configParser.ProcessConfig()

	// Then
	require.NoError(t, err)
	assert.Equal(t, "SnapshotApp", cfg.AppName)
}

func Test_GivenBuildSettingsFail_WhenProcessConfig_ThenSchemeIsTheAppName(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["app_name"] = ""
	configParser, mocks := createConfigParser(t, envValues)
	mocks.buildSettingsReader.On("BuildSettings", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("xcodebuild failed"))

	// When
	cfg, err := configParser.ProcessConfig()

	// Then
	require.NoError(t, err)
	assert.Equal(t, "SnapshotUITests", cfg.AppName)
}

func Test_GivenXcconfigContentAndToggles_WhenProcessConfig_ThenTheyArePassedToXcodebuild(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["perform_clean_action"] = "yes"
	envValues["xcconfig_content"] = "COMPILER_INDEX_STORE_ENABLE = NO"
	envValues["xcodebuild_options"] = "-verbose"
	envValues["archive_path"] = "./Snapshot.xcarchive"
	configParser, mocks := createConfigParser(t, envValues)
	mocks.xcconfigWriter.On("Write", "COMPILER_INDEX_STORE_ENABLE = NO").Return("/tmp/xcconfig/temp.xcconfig", nil)

	// When
	cfg, err := configParser.ProcessConfig()

	// Then
	require.NoError(t, err)
	assert.True(t, cfg.Xcodebuild.PerformCleanAction)
	assert.Equal(t, "/tmp/xcconfig/temp.xcconfig", cfg.Xcodebuild.XCConfigPath)
	assert.Equal(t, "-verbose", cfg.Xcodebuild.XcodebuildOptions)
	assert.Equal(t, "./Snapshot.xcarchive", cfg.Xcodebuild.ArchivePath)
}

func Test_GivenConfig_WhenRun_ThenCommandIsGenerated(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	cfg := defaultConfig()
	command := xcodebuild.CommandLine{"set -o pipefail &&", "xcodebuild", "test"}
	expectedProject := project.New(cfg.ProjectPath, cfg.Xcodebuild.Scheme, cfg.AppName)

	mocks.generator.On("Generate", cfg.Xcodebuild, expectedProject, "iPhone 8").Return(command, nil)
	mocks.generator.On("LogFilePath", cfg.Xcodebuild, expectedProject).Return("/logs/Snapshot-SnapshotUITests.log", nil)

	// When
	result, err := step.Run(cfg)

	// Then
	require.NoError(t, err)
	assert.Equal(t, Result{
		Command:   command,
		LogPath:   "/logs/Snapshot-SnapshotUITests.log",
		DeployDir: "/deploy",
	}, result)
}

func Test_GivenGeneratorFails_WhenRun_ThenFails(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	mocks.generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(nil, &xcodebuild.ConfigurationError{Reason: "no project/workspace found"})

	// When
	_, err := step.Run(defaultConfig())

	// Then
	var configErr *xcodebuild.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func Test_GivenResult_WhenExport_ThenOutputsAreExported(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	result := Result{
		Command:   xcodebuild.CommandLine{"xcodebuild", "test"},
		LogPath:   "/logs/Snapshot-SnapshotUITests.log",
		DeployDir: "/deploy",
	}
	mocks.outputExporter.On("ExportCommand", "xcodebuild test").Return(nil)
	mocks.outputExporter.On("ExportBuildLogPath", "/logs/Snapshot-SnapshotUITests.log").Return(nil)
	mocks.outputExporter.On("ExportCommandScript", "/deploy", "xcodebuild test").Return("/deploy/snapshot_xcodebuild.sh", nil)

	// When
	err := step.Export(result)

	// Then
	require.NoError(t, err)
}

func Test_GivenNoDeployDir_WhenExport_ThenScriptIsSkipped(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	result := Result{Command: xcodebuild.CommandLine{"xcodebuild", "test"}, LogPath: "/logs/a.log"}
	mocks.outputExporter.On("ExportCommand", mock.Anything).Return(nil)
	mocks.outputExporter.On("ExportBuildLogPath", mock.Anything).Return(nil)

	// When
	err := step.Export(result)

	// Then
	require.NoError(t, err)
	mocks.outputExporter.AssertNotCalled(t, "ExportCommandScript", mock.Anything, mock.Anything)
}

func Test_GivenMissingXcpretty_WhenCheckDeps_ThenOnlyWarns(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	mocks.xcprettyChecker.On("CheckInstall").Return(nil, errors.New("xcpretty: command not found"))

	// When
	step.CheckDeps()

	// Then
	mocks.xcprettyChecker.AssertCalled(t, "CheckInstall")
}

func Test_GivenInstalledXcpretty_WhenCheckDeps_ThenVersionIsRead(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	mocks.xcprettyChecker.On("CheckInstall").Return(version.Must(version.NewVersion("0.3.0")), nil)

	// When
	step.CheckDeps()

	// Then
	mocks.xcprettyChecker.AssertCalled(t, "CheckInstall")
}

// Helpers

func defaultEnvValues() map[string]string {
	return map[string]string{
		"project_path":         "./_tmp/Snapshot.xcworkspace",
		"scheme":               "SnapshotUITests",
		"app_name":             "Snapshot",
		"simulator_device":     "iPhone 8",
		"ios_version":          "16.4",
		"configuration":        "Debug",
		"sdk":                  "iphonesimulator",
		"buildlog_path":        "./snapshot_logs",
		"perform_clean_action": "no",
		"verbose_log":          "no",
		"BITRISE_DEPLOY_DIR":   "/deploy",
	}
}

func defaultXcodeVersion() xcodeversion.Version {
	return xcodeversion.Version{
		Version:      "Xcode 14.3",
		BuildVersion: "14E222b",
		Major:        14,
	}
}

func defaultConfig() Config {
	return Config{
		ProjectPath: "/_tmp/Snapshot.xcworkspace",
		AppName:     "Snapshot",
		DeviceName:  "iPhone 8",
		Xcodebuild: xcodebuild.Config{
			Scheme:       "SnapshotUITests",
			IOSVersion:   "16.4",
			BuildlogPath: "/logs",
		},
		DeployDir: "/deploy",
	}
}

func absPath(t *testing.T, pth string) string {
	abs, err := filepath.Abs(pth)
	require.NoError(t, err)
	return abs
}

func createConfigParser(t *testing.T, envValues map[string]string) (SnapshotCommandConfigParser, configParserMocks) {
	envRepository := mocks.NewRepository(t)

	if envValues != nil {
		call := envRepository.On("Get", mock.Anything)
		call.RunFn = func(arguments mock.Arguments) {
			key := arguments[0].(string)
			value := envValues[key]
			call.ReturnArguments = mock.Arguments{value, nil}
		}
	}

	logger := log.NewLogger()
	inputParser := stepconf.NewInputParser(envRepository)
	deviceDirectory := mocks.NewDirectory(t)
	buildSettingsReader := mocks.NewBuildSettingsReader(t)
	xcconfigWriter := mocks.NewXcconfigWriter(t)

	configParser := NewSnapshotCommandConfigParser(inputParser, logger, defaultXcodeVersion(), deviceDirectory, buildSettingsReader, xcconfigWriter, pathutil.NewPathModifier())
	mocks := configParserMocks{
		deviceDirectory:     deviceDirectory,
		buildSettingsReader: buildSettingsReader,
		xcconfigWriter:      xcconfigWriter,
	}

	return configParser, mocks
}

func createStepAndMocks(t *testing.T) (SnapshotCommandStep, stepMocks) {
	logger := log.NewLogger()
	xcprettyChecker := mocks.NewXcprettyChecker(t)
	generator := mocks.NewGenerator(t)
	outputExporter := mocks.NewExporter(t)

	step := NewSnapshotCommandStep(logger, xcprettyChecker, generator, outputExporter)
	mocks := stepMocks{
		xcprettyChecker: xcprettyChecker,
		generator:       generator,
		outputExporter:  outputExporter,
	}

	return step, mocks
}
