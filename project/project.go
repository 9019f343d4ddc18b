package project

import (
	"path/filepath"

	"github.com/kballard/go-shellquote"
)

const (
	workspaceExt = ".xcworkspace"
	projectExt   = ".xcodeproj"
)

// Project describes the Xcode project or workspace the tests are run from
type Project struct {
	Path    string
	Scheme  string
	appName string
}

// New ...
func New(path, scheme, appName string) Project {
	return Project{
		Path:    path,
		Scheme:  scheme,
		appName: appName,
	}
}

// IsWorkspace ...
func IsWorkspace(pth string) bool {
	return filepath.Ext(pth) == workspaceExt
}

// IsProject ...
func IsProject(pth string) bool {
	return filepath.Ext(pth) == projectExt
}

// XcodebuildParameters returns the shell escaped project selector arguments,
// nothing is returned when no project path is set.
func (p Project) XcodebuildParameters() []string {
	if p.Path == "" {
		return nil
	}

	var params []string
	if IsWorkspace(p.Path) {
		params = append(params, "-workspace "+shellquote.Join(p.Path))
	} else {
		params = append(params, "-project "+shellquote.Join(p.Path))
	}

	if p.Scheme != "" {
		params = append(params, "-scheme "+shellquote.Join(p.Scheme))
	}

	return params
}

// AppName ...
func (p Project) AppName() string {
	return p.appName
}
