package xcconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// Writer ...
type Writer interface {
	Write(input string) (string, error)
}

type writer struct {
	pathProvider pathutil.PathProvider
	fileManager  fileutil.FileManager
	pathChecker  pathutil.PathChecker
	pathModifier pathutil.PathModifier
}

// NewWriter ...
func NewWriter(pathProvider pathutil.PathProvider, fileManager fileutil.FileManager, pathChecker pathutil.PathChecker, pathModifier pathutil.PathModifier) Writer {
	return &writer{
		pathProvider: pathProvider,
		fileManager:  fileManager,
		pathChecker:  pathChecker,
		pathModifier: pathModifier,
	}
}

// Write returns the path of an existing xcconfig file when input points to one,
// otherwise input is treated as xcconfig content and written to a temporary file.
func (w writer) Write(input string) (string, error) {
	if strings.HasSuffix(input, ".xcconfig") {
		xcconfigPath, err := w.pathModifier.AbsPath(input)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path of xcconfig (%s): %w", input, err)
		}

		exists, err := w.pathChecker.IsPathExists(xcconfigPath)
		if err != nil {
			return "", fmt.Errorf("failed to check xcconfig path (%s): %w", xcconfigPath, err)
		}
		if !exists {
			return "", fmt.Errorf("xcconfig file does not exist: %s", xcconfigPath)
		}

		return xcconfigPath, nil
	}

	dir, err := w.pathProvider.CreateTempDir("")
	if err != nil {
		return "", fmt.Errorf("unable to create temp dir for writing XCConfig: %w", err)
	}
	xcconfigPath := filepath.Join(dir, "temp.xcconfig")
	if err = w.fileManager.Write(xcconfigPath, input, 0644); err != nil {
		return "", fmt.Errorf("unable to write XCConfig content into file: %w", err)
	}
	return xcconfigPath, nil
}
