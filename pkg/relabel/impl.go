package relabel

import (
	"io/fs"
	"os"
	"path/filepath"

	selinux "github.com/opencontainers/selinux/go-selinux"
	"golang.org/x/sys/unix"
)

// securityXattr is the extended attribute holding the security context of a
// filesystem object.
const securityXattr = "security.selinux"

// Impl is the main implementation interface of this package.
type Impl interface {
	CurrentLabel() (string, error)
	FileLabel(path string) (string, error)
	LfileLabel(path string) (string, error)
	LsetFileLabel(path, label string) error
	FileLabelByHandle(file *os.File) (string, error)
	SetFileLabelByHandle(file *os.File, label string) error
	FSCreateLabel() (string, error)
	SetFSCreateLabel(label string) error
	ClassIndex(class string) (int, error)
	ComputeCreateContext(source, target, class string) (string, error)
	OpenNoFollow(path string) (*os.File, error)
	Lstat(path string) (fs.FileInfo, error)
	Stat(file *os.File) (fs.FileInfo, error)
	Close(file *os.File) error
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// defaultImpl is the default implementation on top of go-selinux and the
// raw syscall interfaces.
type defaultImpl struct{}

func (*defaultImpl) CurrentLabel() (string, error) {
	return selinux.CurrentLabel()
}

func (*defaultImpl) FileLabel(path string) (string, error) {
	return selinux.FileLabel(path)
}

func (*defaultImpl) LfileLabel(path string) (string, error) {
	return selinux.LfileLabel(path)
}

func (*defaultImpl) LsetFileLabel(path, label string) error {
	return selinux.LsetFileLabel(path, label)
}

// FileLabelByHandle reads the security context through an open descriptor.
// go-selinux has no fgetfilecon equivalent, so the xattr is read directly.
func (*defaultImpl) FileLabelByHandle(file *os.File) (string, error) {
	fd := int(file.Fd())

	buf := make([]byte, 128)
	size, err := unix.Fgetxattr(fd, securityXattr, buf)
	if err == unix.ERANGE {
		// The attribute grew in between, ask for the required size.
		size, err = unix.Fgetxattr(fd, securityXattr, []byte{})
		if err != nil {
			return "", err
		}

		buf = make([]byte, size)
		size, err = unix.Fgetxattr(fd, securityXattr, buf)
	}
	if err != nil {
		return "", err
	}

	// The attribute may carry a trailing NUL byte.
	if size > 0 && buf[size-1] == '\x00' {
		size--
	}

	return string(buf[:size]), nil
}

func (*defaultImpl) SetFileLabelByHandle(file *os.File, label string) error {
	return unix.Fsetxattr(int(file.Fd()), securityXattr, []byte(label), 0)
}

func (*defaultImpl) FSCreateLabel() (string, error) {
	return selinux.FSCreateLabel()
}

func (*defaultImpl) SetFSCreateLabel(label string) error {
	return selinux.SetFSCreateLabel(label)
}

func (*defaultImpl) ClassIndex(class string) (int, error) {
	return selinux.ClassIndex(class)
}

func (*defaultImpl) ComputeCreateContext(source, target, class string) (string, error) {
	return selinux.ComputeCreateContext(source, target, class)
}

func (*defaultImpl) OpenNoFollow(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY|unix.O_NOFOLLOW, 0)
}

func (*defaultImpl) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

func (*defaultImpl) Stat(file *os.File) (fs.FileInfo, error) {
	return file.Stat()
}

func (*defaultImpl) Close(file *os.File) error {
	return file.Close()
}

func (*defaultImpl) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
