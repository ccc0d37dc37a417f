package apps

import "fmt"

// DirectoryReadError is logged and absorbed: the directory contributes no entries.
type DirectoryReadError struct {
	Dir string
	Err error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("error reading directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

// EntryReadError is logged and absorbed: the file is skipped.
type EntryReadError struct {
	Path string
	Err  error
}

func (e *EntryReadError) Error() string {
	return fmt.Sprintf("error reading desktop file %s: %v", e.Path, e.Err)
}

func (e *EntryReadError) Unwrap() error { return e.Err }

// UserDirectoryError is fatal.
type UserDirectoryError struct {
	Dir string
	Err error
}

func (e *UserDirectoryError) Error() string {
	return fmt.Sprintf("error reading user directory %s: %v", e.Dir, e.Err)
}

func (e *UserDirectoryError) Unwrap() error { return e.Err }
