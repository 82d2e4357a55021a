package vfs

import "errors"

var (
	// ErrNotFound indicates the path does not resolve to any node
	ErrNotFound = errors.New("no such file or directory")

	// ErrNotDirectory indicates a directory was expected but a file was found
	ErrNotDirectory = errors.New("not a directory")

	// ErrIsDirectory indicates a file was expected but a directory was found
	ErrIsDirectory = errors.New("is a directory")

	// ErrExists indicates the target name is already taken in its parent
	ErrExists = errors.New("file exists")
)
