package xcpretty

import (
	"fmt"

	"github.com/bitrise-io/go-utils/errorutil"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-version"
)

// Tool is the pretty-printer the generated command pipes into
const Tool = "xcpretty"

// Checker ...
type Checker interface {
	CheckInstall() (*version.Version, error)
}

type checker struct {
	logger         log.Logger
	commandFactory command.Factory
}

// NewChecker ...
func NewChecker(logger log.Logger, commandFactory command.Factory) Checker {
	return &checker{
		logger:         logger,
		commandFactory: commandFactory,
	}
}

// CheckInstall returns the installed xcpretty version
func (c checker) CheckInstall() (*version.Version, error) {
	c.logger.Println()
	c.logger.Infof("Checking log formatter (%s) version", Tool)

	versionCmd := c.commandFactory.Create(Tool, []string{"--version"}, nil)

	out, err := versionCmd.RunAndReturnTrimmedCombinedOutput()
	if err != nil {
		if errorutil.IsExitStatusError(err) {
			return nil, fmt.Errorf("%s version command failed: %w", Tool, err)
		}

		return nil, fmt.Errorf("failed to run %s command: %w", Tool, err)
	}

	return version.NewVersion(out)
}
