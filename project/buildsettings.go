package project

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/errorutil"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
)

// BuildSettingsReader ...
type BuildSettingsReader interface {
	BuildSettings(projectPath, scheme, configuration string) (map[string]string, error)
}

type buildSettingsReader struct {
	logger         log.Logger
	commandFactory command.Factory
}

// NewBuildSettingsReader ...
func NewBuildSettingsReader(logger log.Logger, commandFactory command.Factory) BuildSettingsReader {
	return &buildSettingsReader{
		logger:         logger,
		commandFactory: commandFactory,
	}
}

// BuildSettings gets the build settings for a scheme (multiple targets),
// returns the last outputted value for any key
func (r buildSettingsReader) BuildSettings(projectPath, scheme, configuration string) (map[string]string, error) {
	var args []string
	if IsWorkspace(projectPath) {
		args = append(args, "-workspace", projectPath)
	} else {
		args = append(args, "-project", projectPath)
	}
	args = append(args, "-scheme", scheme)
	if configuration != "" {
		args = append(args, "-configuration", configuration)
	}
	args = append(args, "-showBuildSettings")

	cmd := r.commandFactory.Create("xcodebuild", args, nil)
	r.logger.TDebugf("$ %s", cmd.PrintableCommandArgs())

	out, err := cmd.RunAndReturnTrimmedCombinedOutput()
	if err != nil {
		if errorutil.IsExitStatusError(err) {
			return nil, fmt.Errorf("%s failed: %s", cmd.PrintableCommandArgs(), out)
		}
		return nil, fmt.Errorf("failed to run %s: %w", cmd.PrintableCommandArgs(), err)
	}

	return parseShowBuildSettingsOutput(out), nil
}

func parseShowBuildSettingsOutput(out string) map[string]string {
	settings := map[string]string{}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "Build settings") {
			continue
		}
		if strings.HasPrefix(line, "User defaults from command line") {
			continue
		}
		if line == "" {
			continue
		}

		// combined output also carries the invocation and warnings
		split := strings.Split(line, " = ")
		if len(split) < 2 {
			continue
		}

		key := strings.TrimSpace(split[0])
		value := strings.TrimSpace(strings.Join(split[1:], " = "))

		settings[key] = value
	}

	return settings
}

// AppNameFromSettings returns the name of the app bundle the scheme builds.
func AppNameFromSettings(settings map[string]string) string {
	if wrapperName := settings["WRAPPER_NAME"]; wrapperName != "" {
		return strings.TrimSuffix(wrapperName, ".app")
	}
	return settings["PRODUCT_NAME"]
}
