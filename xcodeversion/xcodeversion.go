package xcodeversion

import (
	"fmt"

	"github.com/bitrise-io/go-xcode/utility"
	"github.com/bitrise-io/go-xcode/v2/xcodeversion"
)

// Version describes the active Xcode, in the form the simulator device finder expects
type Version = xcodeversion.Version

// Reader ...
type Reader interface {
	Version() (Version, error)
}

type reader struct {
	getVersion func() (string, string, int64, error)
}

// NewXcodeVersionReader returns a Reader backed by `xcodebuild -version`.
func NewXcodeVersionReader() Reader {
	return &reader{getVersion: xcodebuildVersion}
}

func (r *reader) Version() (Version, error) {
	version, buildVersion, major, err := r.getVersion()
	if err != nil {
		return Version{}, fmt.Errorf("failed to read Xcode version: %w", err)
	}
	if major == 0 {
		return Version{}, fmt.Errorf("unexpected Xcode version: %s", version)
	}

	return Version{
		Version:      version,
		BuildVersion: buildVersion,
		Major:        major,
	}, nil
}

func xcodebuildVersion() (string, string, int64, error) {
	model, err := utility.GetXcodeVersion()
	if err != nil {
		return "", "", 0, err
	}

	return model.Version, model.BuildVersion, model.MajorVersion, nil
}
