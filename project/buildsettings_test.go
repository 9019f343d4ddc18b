package project

import (
	"errors"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-snapshot-test-command/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const showBuildSettingsOutput = `Command line invocation:
    /Applications/Xcode.app/Contents/Developer/usr/bin/xcodebuild -project BullsEye.xcodeproj -scheme BullsEye -showBuildSettings

Build settings for action build and target BullsEyeKit:
    PRODUCT_NAME = BullsEyeKit
    WRAPPER_NAME = BullsEyeKit.framework

Build settings for action build and target BullsEye:
    PRODUCT_NAME = BullsEye
    WRAPPER_NAME = BullsEye.app
    OTHER_SWIFT_FLAGS = -D DEBUG = 1
`

func Test_GivenShowBuildSettingsOutput_WhenBuildSettings_ThenLastValueWins(t *testing.T) {
	// Given
	commandFactory := new(mocks.Factory)
	args := []string{"-project", "BullsEye.xcodeproj", "-scheme", "BullsEye", "-configuration", "Debug", "-showBuildSettings"}
	commandFactory.On("Create", "xcodebuild", args, mock.Anything).Return(createCommand(showBuildSettingsOutput, nil))
	reader := NewBuildSettingsReader(log.NewLogger(), commandFactory)

	// When
	settings, err := reader.BuildSettings("BullsEye.xcodeproj", "BullsEye", "Debug")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "BullsEye", settings["PRODUCT_NAME"])
	assert.Equal(t, "BullsEye.app", settings["WRAPPER_NAME"])
	assert.Equal(t, "-D DEBUG = 1", settings["OTHER_SWIFT_FLAGS"])
	assert.Equal(t, "BullsEye", AppNameFromSettings(settings))
}

func Test_GivenWorkspace_WhenBuildSettings_ThenUsesWorkspaceFlag(t *testing.T) {
	// Given
	commandFactory := new(mocks.Factory)
	args := []string{"-workspace", "BullsEye.xcworkspace", "-scheme", "BullsEye", "-showBuildSettings"}
	commandFactory.On("Create", "xcodebuild", args, mock.Anything).Return(createCommand("", nil))
	reader := NewBuildSettingsReader(log.NewLogger(), commandFactory)

	// When
	_, err := reader.BuildSettings("BullsEye.xcworkspace", "BullsEye", "")

	// Then
	require.NoError(t, err)
	commandFactory.AssertCalled(t, "Create", "xcodebuild", args, mock.Anything)
}

func Test_GivenCommandFails_WhenBuildSettings_ThenReturnsError(t *testing.T) {
	// Given
	commandFactory := new(mocks.Factory)
	commandFactory.On("Create", "xcodebuild", mock.Anything, mock.Anything).Return(createCommand("", errors.New("not found")))
	reader := NewBuildSettingsReader(log.NewLogger(), commandFactory)

	// When
	_, err := reader.BuildSettings("BullsEye.xcodeproj", "BullsEye", "")

	// Then
	require.Error(t, err)
}

func TestAppNameFromSettings(t *testing.T) {
	assert.Equal(t, "Bulls Eye", AppNameFromSettings(map[string]string{"WRAPPER_NAME": "Bulls Eye.app", "PRODUCT_NAME": "Other"}))
	assert.Equal(t, "BullsEye", AppNameFromSettings(map[string]string{"PRODUCT_NAME": "BullsEye"}))
	assert.Equal(t, "", AppNameFromSettings(map[string]string{}))
}

func createCommand(output string, err error) *mocks.Command {
	command := new(mocks.Command)
	command.On("PrintableCommandArgs").Return("xcodebuild")
	command.On("RunAndReturnTrimmedCombinedOutput").Return(output, err)

	return command
}
