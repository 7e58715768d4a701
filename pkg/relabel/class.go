package relabel

import (
	"fmt"
	"io/fs"
)

// Security class names of the seven filesystem object types, as the policy
// defines them.
const (
	ClassFile        = "file"
	ClassDir         = "dir"
	ClassCharDevice  = "chr_file"
	ClassBlockDevice = "blk_file"
	ClassFifo        = "fifo_file"
	ClassSymlink     = "lnk_file"
	ClassSocket      = "sock_file"
)

// ClassFromMode maps the type bits of mode to the name of the corresponding
// security class. Permission bits are ignored. Mode bits matching none of
// the seven filesystem object types fail with ErrInvalidClass.
func ClassFromMode(mode fs.FileMode) (string, error) {
	switch mode & fs.ModeType {
	case 0:
		return ClassFile, nil
	case fs.ModeDir:
		return ClassDir, nil
	case fs.ModeSymlink:
		return ClassSymlink, nil
	case fs.ModeNamedPipe:
		return ClassFifo, nil
	case fs.ModeSocket:
		return ClassSocket, nil
	case fs.ModeDevice | fs.ModeCharDevice:
		return ClassCharDevice, nil
	case fs.ModeDevice:
		return ClassBlockDevice, nil
	}

	return "", fmt.Errorf("%w: no class for mode %v", ErrInvalidClass, mode)
}

// securityClass maps mode to its class name and validates the class against
// the loaded policy.
func (r *Relabeler) securityClass(mode fs.FileMode) (string, error) {
	class, err := ClassFromMode(mode)
	if err != nil {
		return "", err
	}

	if _, err := r.impl.ClassIndex(class); err != nil {
		return "", fmt.Errorf("%w: class %q not defined in policy: %v", ErrInvalidClass, class, err)
	}

	return class, nil
}
