package relabel

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/cri-o/relabel/internal/log"
)

// creationContext synthesizes the security context a newly created object at
// path with the provided mode would receive from the kernel: the current
// process context as subject, the on-disk context of the textual parent
// directory as object, combined for the object's security class.
func (r *Relabeler) creationContext(path string, mode fs.FileMode) (string, error) {
	parent := filepath.Dir(path)

	processLabel, err := r.impl.CurrentLabel()
	if err != nil {
		return "", fmt.Errorf("%w: current process context: %v", ErrContextQuery, err)
	}

	parentLabel, err := r.impl.FileLabel(parent)
	if err != nil {
		return "", fmt.Errorf("%w: context of %s: %v", ErrContextQuery, parent, err)
	}

	class, err := r.securityClass(mode)
	if err != nil {
		return "", err
	}

	label, err := r.impl.ComputeCreateContext(processLabel, parentLabel, class)
	if err != nil {
		return "", fmt.Errorf("%w: compute creation context for %s: %v", ErrContextQuery, path, err)
	}

	return label, nil
}

// DefaultCreationContext returns the context objects created at path with
// the provided mode should receive: the kernel computed creation context,
// with its type forced to the type the file contexts database expects for
// the path.
func (r *Relabeler) DefaultCreationContext(ctx context.Context, path string, mode fs.FileMode) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.defaultCreationContext(ctx, path, mode)
}

func (r *Relabeler) defaultCreationContext(ctx context.Context, path string, mode fs.FileMode) (string, error) {
	path = filepath.Clean(path)

	expected, err := r.db.Lookup(path, mode)
	if err != nil {
		return "", fmt.Errorf("%w: file contexts lookup for %s: %v", ErrContextQuery, path, err)
	}

	created, err := r.creationContext(path, mode)
	if err != nil {
		return "", err
	}

	hybrid, err := CopyType(expected, created)
	if err != nil {
		return "", err
	}

	log.Debugf(ctx, "Default creation context for %s: %s", path, hybrid)

	return hybrid, nil
}

// InstallDefaultCreationContext computes the default creation context for
// path and mode and installs it as the file creation context of the current
// process. The kernel applies the installed context to every object the
// process creates afterwards, until it is changed again.
func (r *Relabeler) InstallDefaultCreationContext(ctx context.Context, path string, mode fs.FileMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hybrid, err := r.defaultCreationContext(ctx, path, mode)
	if err != nil {
		return err
	}

	if err := r.impl.SetFSCreateLabel(hybrid); err != nil {
		return fmt.Errorf("%w: set file creation context: %v", ErrContextApply, err)
	}

	log.Infof(ctx, "Installed file creation context %s", hybrid)

	return nil
}
