// Package relabel computes and applies SELinux security contexts to
// filesystem objects. It combines three independent label sources: the
// context of the running process, the on-disk context of parent directories
// and objects, and the file contexts database of the policy.
package relabel

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	selinux "github.com/opencontainers/selinux/go-selinux"

	"github.com/cri-o/relabel/internal/log"
	"github.com/cri-o/relabel/pkg/filecontexts"
)

// Relabeler is the main structure for this package. It owns the process wide
// file creation context, so at most one of its operations runs at a time.
type Relabeler struct {
	impl Impl
	db   filecontexts.Database
	mu   sync.Mutex
}

// Options configure a relabel operation.
type Options struct {
	// Recurse descends into directory trees, never following symlinks.
	Recurse bool

	// Preserve copies the current file creation context onto the objects
	// instead of consulting the file contexts database.
	Preserve bool

	// DryRun logs every change without applying it.
	DryRun bool
}

// New creates a new Relabeler which resolves expected contexts from the
// provided database.
func New(db filecontexts.Database) *Relabeler {
	return &Relabeler{
		impl: &defaultImpl{},
		db:   db,
	}
}

// Enabled reports whether SELinux support is enabled on the host.
func Enabled() bool {
	return selinux.GetEnabled()
}

// SetDatabase replaces the file contexts database, for example after its
// backing file changed.
func (r *Relabeler) SetDatabase(db filecontexts.Database) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db = db
}

// Relabel applies the appropriate security context to path. With
// opts.Recurse set it walks the tree rooted at path in physical preorder and
// relabels every entry. A failing entry does not stop the walk, it is logged
// and folded into the returned error, which aggregates all per entry and
// traversal failures. Objects relabeled before a later failure keep their
// new context. The returned error is nil only if every entry succeeded.
func (r *Relabeler) Relabel(ctx context.Context, path string, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path = filepath.Clean(path)

	if !opts.Recurse {
		return r.relabelPath(ctx, path, opts)
	}

	var errs *multierror.Error

	walkErr := r.impl.WalkDir(path, func(entry string, _ fs.DirEntry, err error) error {
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrTraversal, entry, err)
			log.Errorf(ctx, "%v", err)
			errs = multierror.Append(errs, err)

			return nil
		}

		if err := r.relabelPath(ctx, entry, opts); err != nil {
			log.Errorf(ctx, "Relabeling %s failed: %v", entry, err)
			errs = multierror.Append(errs, err)
		}

		return nil
	})
	if walkErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("%w: %v", ErrTraversal, walkErr))
	}

	return errs.ErrorOrNil()
}
