package relabel

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"github.com/cri-o/relabel/internal/log"
)

// objectRef addresses an existing filesystem object for stat, context read
// and context write. Objects which can be opened are addressed through their
// descriptor, symbolic links by path through the link-aware syscall
// variants.
type objectRef interface {
	Stat() (fs.FileInfo, error)
	Label() (string, error)
	SetLabel(label string) error
	Close() error
}

// handleRef addresses an object through an open descriptor.
type handleRef struct {
	file *os.File
	impl Impl
}

func (h *handleRef) Stat() (fs.FileInfo, error) {
	return h.impl.Stat(h.file)
}

func (h *handleRef) Label() (string, error) {
	return h.impl.FileLabelByHandle(h.file)
}

func (h *handleRef) SetLabel(label string) error {
	return h.impl.SetFileLabelByHandle(h.file, label)
}

func (h *handleRef) Close() error {
	return h.impl.Close(h.file)
}

// linkRef addresses a symbolic link by path, never following it.
type linkRef struct {
	path string
	impl Impl
}

func (l *linkRef) Stat() (fs.FileInfo, error) {
	return l.impl.Lstat(l.path)
}

func (l *linkRef) Label() (string, error) {
	return l.impl.LfileLabel(l.path)
}

func (l *linkRef) SetLabel(label string) error {
	return l.impl.LsetFileLabel(l.path, label)
}

func (l *linkRef) Close() error {
	return nil
}

// openObject opens path without following a trailing symlink. ELOOP from the
// open identifies a symbolic link and selects the link-aware variants for
// all subsequent operations. Success of the open is solely the returned
// error being nil, never a property of the descriptor value.
func (r *Relabeler) openObject(path string) (objectRef, error) {
	file, err := r.impl.OpenNoFollow(path)
	if errors.Is(err, unix.ELOOP) {
		return &linkRef{path: path, impl: r.impl}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrContextQuery, path, err)
	}

	return &handleRef{file: file, impl: r.impl}, nil
}

// relabelPath applies the appropriate security context to the single
// existing object at path.
func (r *Relabeler) relabelPath(ctx context.Context, path string, opts *Options) error {
	if opts.Preserve {
		return r.preservePath(ctx, path, opts.DryRun)
	}

	obj, err := r.openObject(path)
	if err != nil {
		return err
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", ErrContextQuery, path, err)
	}

	expected, err := r.db.Lookup(path, info.Mode())
	if err != nil {
		return fmt.Errorf("%w: file contexts lookup for %s: %v", ErrContextQuery, path, err)
	}

	current, err := obj.Label()
	if err != nil {
		return fmt.Errorf("%w: context of %s: %v", ErrContextQuery, path, err)
	}

	merged, err := CopyType(expected, current)
	if err != nil {
		return err
	}

	if opts.DryRun {
		log.Infof(ctx, "Would relabel %s from %s to %s", path, current, merged)
		return nil
	}

	if err := obj.SetLabel(merged); err != nil {
		return fmt.Errorf("%w: relabel %s to %s: %v", ErrContextApply, path, merged, err)
	}

	log.Debugf(ctx, "Relabeled %s from %s to %s", path, current, merged)

	return nil
}

// preservePath copies the file creation context of the current process onto
// the object at path, never following symlinks.
func (r *Relabeler) preservePath(ctx context.Context, path string, dryRun bool) error {
	label, err := r.impl.FSCreateLabel()
	if err != nil {
		return fmt.Errorf("%w: file creation context: %v", ErrContextQuery, err)
	}

	if dryRun {
		log.Infof(ctx, "Would relabel %s to %s", path, label)
		return nil
	}

	if err := r.impl.LsetFileLabel(path, label); err != nil {
		return fmt.Errorf("%w: relabel %s to %s: %v", ErrContextApply, path, label, err)
	}

	log.Debugf(ctx, "Relabeled %s to %s", path, label)

	return nil
}
