// Package filecontexts resolves the security contexts the policy expects
// filesystem objects to carry. The file contexts database of the policy has
// no pure Go binding, so consumers program against the Database interface
// and pick one of the provided implementations.
package filecontexts

import (
	"fmt"
	"io/fs"
)

// Database resolves the expected security context of filesystem objects.
type Database interface {
	// Lookup returns the context the policy expects for an object at path
	// with the provided mode.
	Lookup(path string, mode fs.FileMode) (string, error)
}

// Reloader is implemented by databases which can refresh their backing data.
type Reloader interface {
	// Reload refreshes the database from its backing source.
	Reload() error
}

// FileTypes are the file type names understood by the database
// implementations, spelled the way matchpathcon -m expects them.
var FileTypes = []string{
	"file", "dir", "pipe", "chr_file", "blk_file", "lnk_file", "sock_file",
}

// TypeOfMode returns the file type name for the type bits of mode, or an
// empty string if the mode matches no recognized file type.
func TypeOfMode(mode fs.FileMode) string {
	switch mode & fs.ModeType {
	case 0:
		return "file"
	case fs.ModeDir:
		return "dir"
	case fs.ModeNamedPipe:
		return "pipe"
	case fs.ModeSymlink:
		return "lnk_file"
	case fs.ModeSocket:
		return "sock_file"
	case fs.ModeDevice | fs.ModeCharDevice:
		return "chr_file"
	case fs.ModeDevice:
		return "blk_file"
	}

	return ""
}

// ModeOfType returns the mode type bits for the provided file type name.
func ModeOfType(fileType string) (fs.FileMode, error) {
	switch fileType {
	case "file":
		return 0, nil
	case "dir":
		return fs.ModeDir, nil
	case "pipe":
		return fs.ModeNamedPipe, nil
	case "lnk_file":
		return fs.ModeSymlink, nil
	case "sock_file":
		return fs.ModeSocket, nil
	case "chr_file":
		return fs.ModeDevice | fs.ModeCharDevice, nil
	case "blk_file":
		return fs.ModeDevice, nil
	}

	return 0, fmt.Errorf("unknown file type %q", fileType)
}
