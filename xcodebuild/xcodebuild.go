package xcodebuild

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-snapshot-test-command/simulator"
)

// Tool ...
const Tool = "xcodebuild"

// Config holds the build options the command is generated from.
// An empty value means the option is not set.
type Config struct {
	Scheme        string
	Configuration string
	SDK           string
	IOSVersion    string
	BuildlogPath  string

	// Extension points, all of them are off by default.
	PerformCleanAction bool
	XCConfigPath       string
	XcodebuildOptions  string
	ArchivePath        string
}

// Project describes the project or workspace to test
type Project interface {
	XcodebuildParameters() []string
	AppName() string
}

// DeviceDirectory ...
type DeviceDirectory interface {
	ListDevices() ([]simulator.Device, error)
}

// DirCreator ...
type DirCreator interface {
	EnsureDir(dir string) error
}

// CommandLine is the ordered list of shell tokens of the generated command
type CommandLine []string

// String joins the tokens the way the shell receives them.
func (c CommandLine) String() string {
	return strings.Join(c, " ")
}

// Generator ...
type Generator interface {
	Generate(cfg Config, project Project, deviceName string) (CommandLine, error)
	LogFilePath(cfg Config, project Project) (string, error)
}

type generator struct {
	logger          log.Logger
	deviceDirectory DeviceDirectory
	pathModifier    pathutil.PathModifier
	dirCreator      DirCreator
}

// NewGenerator ...
func NewGenerator(logger log.Logger, deviceDirectory DeviceDirectory, pathModifier pathutil.PathModifier, dirCreator DirCreator) Generator {
	return &generator{
		logger:          logger,
		deviceDirectory: deviceDirectory,
		pathModifier:    pathModifier,
		dirCreator:      dirCreator,
	}
}

// Generate builds the full test command:
// prefix, xcodebuild, options, destination, actions, suffix and the output pipe.
func (g *generator) Generate(cfg Config, project Project, deviceName string) (CommandLine, error) {
	options, err := g.options(cfg, project)
	if err != nil {
		return nil, err
	}

	destination, err := g.destination(cfg, deviceName)
	if err != nil {
		return nil, err
	}

	pipe, err := g.pipe(cfg, project)
	if err != nil {
		return nil, err
	}

	parts := prefix()
	parts = append(parts, Tool)
	parts = append(parts, options...)
	parts = append(parts, destination...)
	parts = append(parts, actions(cfg)...)
	parts = append(parts, suffix(cfg)...)
	parts = append(parts, pipe...)

	return parts, nil
}

func prefix() []string {
	return []string{"set -o pipefail &&"}
}

func quotedFlag(flag, value string) string {
	return fmt.Sprintf("-%s '%s'", flag, value)
}
