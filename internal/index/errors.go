package index

import (
	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
)

// Op names the filesystem operation that failed.
type Op string

const (
	OpListDir    Op = "list_dir"
	OpReadFile   Op = "read_file"
	OpReadReadme Op = "read_readme"
	OpWriteIndex Op = "write_index"
)

var opMessages = map[Op]string{
	OpListDir:    "list docs directory",
	OpReadFile:   "read document",
	OpReadReadme: "read readme",
	OpWriteIndex: "write index",
}

// filesystemError builds the FilesystemError kind: one category for every
// filesystem surface, distinguished by op and path context.
func filesystemError(op Op, path string, cause error) error {
	return ferrors.FileSystemError(opMessages[op]).
		WithCause(cause).
		WithContext("op", string(op)).
		WithContext("path", path).
		Build()
}

// IsFilesystemError reports whether err is (or wraps) a FilesystemError.
func IsFilesystemError(err error) bool {
	return ferrors.HasCategory(err, ferrors.CategoryFileSystem)
}

// OpOf returns the failed operation of a FilesystemError.
func OpOf(err error) (Op, bool) {
	if !IsFilesystemError(err) {
		return "", false
	}
	op, ok := ferrors.ContextString(err, "op")
	return Op(op), ok
}

// PathOf returns the path a FilesystemError refers to.
func PathOf(err error) (string, bool) {
	if !IsFilesystemError(err) {
		return "", false
	}
	return ferrors.ContextString(err, "path")
}
