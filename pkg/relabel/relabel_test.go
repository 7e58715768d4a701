package relabel_test

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cri-o/relabel/pkg/relabel"
)

// The actual test suite
var _ = t.Describe("Relabel recursively", func() {
	const (
		testRoot    = "/tmp/tree"
		creationCon = "user_u:role_r:new_file_t"
	)

	var (
		ctx  context.Context
		opts *relabel.Options
	)

	BeforeEach(func() {
		ctx = context.Background()
		opts = &relabel.Options{Recurse: true, Preserve: true}
	})

	// walkOver lets the mocked traversal produce the provided entries.
	walkOver := func(entries ...string) {
		implMock.EXPECT().WalkDir(testRoot, gomock.Any()).DoAndReturn(
			func(root string, fn fs.WalkDirFunc) error {
				for _, entry := range entries {
					Expect(fn(entry, nil, nil)).To(Succeed())
				}

				return nil
			})
	}

	entries := func(n int) []string {
		res := []string{testRoot}
		for i := 1; i < n; i++ {
			res = append(res, filepath.Join(testRoot, string(rune('a'+i-1))))
		}

		return res
	}

	It("should relabel every entry of the tree", func() {
		// Given
		all := entries(3)
		walkOver(all...)
		for _, entry := range all {
			implMock.EXPECT().FSCreateLabel().Return(creationCon, nil)
			implMock.EXPECT().LsetFileLabel(entry, creationCon).Return(nil)
		}

		// When
		err := sut.Relabel(ctx, testRoot, opts)

		// Then
		Expect(err).ToNot(HaveOccurred())
	})

	It("should attempt every entry when some fail", func() {
		// Given
		all := entries(5)
		failing := map[string]bool{all[1]: true, all[3]: true}

		walkOver(all...)
		for _, entry := range all {
			implMock.EXPECT().FSCreateLabel().Return(creationCon, nil)

			call := implMock.EXPECT().LsetFileLabel(entry, creationCon)
			if failing[entry] {
				call.Return(errTest)
			} else {
				call.Return(nil)
			}
		}

		// When
		err := sut.Relabel(ctx, testRoot, opts)

		// Then
		Expect(err).To(HaveOccurred())
		Expect(err).To(MatchError(relabel.ErrContextApply))
	})

	It("should continue when the traversal reports entry errors", func() {
		// Given
		all := entries(2)
		implMock.EXPECT().WalkDir(testRoot, gomock.Any()).DoAndReturn(
			func(root string, fn fs.WalkDirFunc) error {
				Expect(fn(all[0], nil, nil)).To(Succeed())
				Expect(fn(all[1], nil, errTest)).To(Succeed())

				return nil
			})
		implMock.EXPECT().FSCreateLabel().Return(creationCon, nil)
		implMock.EXPECT().LsetFileLabel(all[0], creationCon).Return(nil)

		// When
		err := sut.Relabel(ctx, testRoot, opts)

		// Then
		Expect(err).To(MatchError(relabel.ErrTraversal))
	})

	It("should report an unclean traversal end", func() {
		// Given
		all := entries(4)
		implMock.EXPECT().WalkDir(testRoot, gomock.Any()).DoAndReturn(
			func(root string, fn fs.WalkDirFunc) error {
				// The walk dies after producing three entries.
				for _, entry := range all[:3] {
					Expect(fn(entry, nil, nil)).To(Succeed())
				}

				return errTest
			})
		for _, entry := range all[:3] {
			implMock.EXPECT().FSCreateLabel().Return(creationCon, nil)
			implMock.EXPECT().LsetFileLabel(entry, creationCon).Return(nil)
		}

		// When
		err := sut.Relabel(ctx, testRoot, opts)

		// Then
		Expect(err).To(MatchError(relabel.ErrTraversal))
	})
})
