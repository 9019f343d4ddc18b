package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-snapshot-test-command/output/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const command = "set -o pipefail && xcodebuild -project BullsEye.xcodeproj test | tee '/tmp/BullsEye-BullsEye.log' | xcpretty"

type testingMocks struct {
	envRepository  *mocks.Repository
	outputExporter *mocks.OutputExporter
}

func Test_GivenCommand_WhenExporting_ThenExportsItWithoutExpansion(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()
	mocks.outputExporter.On("ExportOutputNoExpand", CommandKey, command).Return(nil)

	// When
	err := exporter.ExportCommand(command)

	// Then
	assert.NoError(t, err)
	mocks.outputExporter.AssertCalled(t, "ExportOutputNoExpand", CommandKey, command)
}

func Test_GivenExportFails_WhenExportingCommand_ThenReturnsError(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()
	mocks.outputExporter.On("ExportOutputNoExpand", mock.Anything, mock.Anything).Return(errors.New("envman failed"))

	// When
	err := exporter.ExportCommand(command)

	// Then
	assert.Error(t, err)
}

func Test_GivenLogPath_WhenExporting_ThenSetsEnvVariable(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	err := exporter.ExportBuildLogPath("/tmp/BullsEye-BullsEye.log")

	// Then
	assert.NoError(t, err)
	mocks.envRepository.AssertCalled(t, "Set", LogPathKey, "/tmp/BullsEye-BullsEye.log")
}

func Test_GivenDeployDir_WhenExportingCommandScript_ThenWritesItAndSetsEnvVariable(t *testing.T) {
	// Given
	deployDir := t.TempDir()
	exporter, mocks := createSutAndMocks()

	// When
	scriptPath, err := exporter.ExportCommandScript(deployDir, command)

	// Then
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(deployDir, "snapshot_xcodebuild.sh"), scriptPath)
	mocks.envRepository.AssertCalled(t, "Set", CommandPathKey, scriptPath)

	content, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/bash\n"+command+"\n", string(content))
}

// Helpers

func createSutAndMocks() (Exporter, testingMocks) {
	envRepository := new(mocks.Repository)
	envRepository.On("Set", mock.Anything, mock.Anything).Return(nil)
	outputExporter := new(mocks.OutputExporter)

	exporter := NewExporter(envRepository, log.NewLogger(), outputExporter, fileutil.NewFileManager())

	return exporter, testingMocks{
		envRepository:  envRepository,
		outputExporter: outputExporter,
	}
}
