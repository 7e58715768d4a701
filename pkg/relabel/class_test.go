package relabel_test

import (
	"io/fs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cri-o/relabel/pkg/relabel"
)

// The actual test suite
var _ = t.Describe("ClassFromMode", func() {
	DescribeTable("should map the file type bits to the class", func(mode fs.FileMode, class string) {
		// Given
		// When
		res, err := relabel.ClassFromMode(mode)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(class))
	},
		Entry("regular file", fs.FileMode(0), relabel.ClassFile),
		Entry("directory", fs.ModeDir, relabel.ClassDir),
		Entry("symlink", fs.ModeSymlink, relabel.ClassSymlink),
		Entry("fifo", fs.ModeNamedPipe, relabel.ClassFifo),
		Entry("socket", fs.ModeSocket, relabel.ClassSocket),
		Entry("char device", fs.ModeDevice|fs.ModeCharDevice, relabel.ClassCharDevice),
		Entry("block device", fs.ModeDevice, relabel.ClassBlockDevice),
	)

	It("should ignore the permission bits", func() {
		// Given
		// When
		res, err := relabel.ClassFromMode(fs.ModeDir | 0o755)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(relabel.ClassDir))
	})

	It("should fail for unrecognized type bits", func() {
		// Given
		// When
		res, err := relabel.ClassFromMode(fs.ModeIrregular)

		// Then
		Expect(err).To(MatchError(relabel.ErrInvalidClass))
		Expect(res).To(BeEmpty())
	})
})
