package relabel_test

import (
	"context"
	"errors"
	"io/fs"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cri-o/relabel/pkg/relabel"
)

var errTest = errors.New("test")

// The actual test suite
var _ = t.Describe("DefaultCreationContext", func() {
	const (
		testPath     = "/tmp/x"
		testParent   = "/tmp"
		processCon   = "user_u:role_r:proc_t"
		parentCon    = "user_u:role_r:dir_t"
		createdCon   = "user_u:role_r:new_file_t"
		expectedCon  = "user_u:role_r:etc_t"
		testFileMode = fs.FileMode(0o644)
	)

	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	expectSynthesis := func() {
		gomock.InOrder(
			dbMock.EXPECT().Lookup(testPath, testFileMode).Return(expectedCon, nil),
			implMock.EXPECT().CurrentLabel().Return(processCon, nil),
			implMock.EXPECT().FileLabel(testParent).Return(parentCon, nil),
			implMock.EXPECT().ClassIndex(relabel.ClassFile).Return(1, nil),
			implMock.EXPECT().ComputeCreateContext(processCon, parentCon, relabel.ClassFile).
				Return(createdCon, nil),
		)
	}

	It("should force the database type onto the creation context", func() {
		// Given
		expectSynthesis()

		// When
		res, err := sut.DefaultCreationContext(ctx, testPath, testFileMode)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(expectedCon))
	})

	It("should fail when the database lookup fails", func() {
		// Given
		dbMock.EXPECT().Lookup(testPath, testFileMode).Return("", errTest)

		// When
		res, err := sut.DefaultCreationContext(ctx, testPath, testFileMode)

		// Then
		Expect(err).To(MatchError(relabel.ErrContextQuery))
		Expect(res).To(BeEmpty())
	})

	It("should fail when the process context query fails", func() {
		// Given
		gomock.InOrder(
			dbMock.EXPECT().Lookup(testPath, testFileMode).Return(expectedCon, nil),
			implMock.EXPECT().CurrentLabel().Return("", errTest),
		)

		// When
		_, err := sut.DefaultCreationContext(ctx, testPath, testFileMode)

		// Then
		Expect(err).To(MatchError(relabel.ErrContextQuery))
	})

	It("should fail when the parent context query fails", func() {
		// Given
		gomock.InOrder(
			dbMock.EXPECT().Lookup(testPath, testFileMode).Return(expectedCon, nil),
			implMock.EXPECT().CurrentLabel().Return(processCon, nil),
			implMock.EXPECT().FileLabel(testParent).Return("", errTest),
		)

		// When
		_, err := sut.DefaultCreationContext(ctx, testPath, testFileMode)

		// Then
		Expect(err).To(MatchError(relabel.ErrContextQuery))
	})

	It("should fail when the policy does not define the class", func() {
		// Given
		gomock.InOrder(
			dbMock.EXPECT().Lookup(testPath, testFileMode).Return(expectedCon, nil),
			implMock.EXPECT().CurrentLabel().Return(processCon, nil),
			implMock.EXPECT().FileLabel(testParent).Return(parentCon, nil),
			implMock.EXPECT().ClassIndex(relabel.ClassFile).Return(0, errTest),
		)

		// When
		_, err := sut.DefaultCreationContext(ctx, testPath, testFileMode)

		// Then
		Expect(err).To(MatchError(relabel.ErrInvalidClass))
	})

	It("should fail when the mode has no class", func() {
		// Given
		dbMock.EXPECT().Lookup(testPath, fs.ModeIrregular).Return(expectedCon, nil)

		// When
		_, err := sut.DefaultCreationContext(ctx, testPath, fs.ModeIrregular)

		// Then
		Expect(err).To(MatchError(relabel.ErrInvalidClass))
	})

	It("should fail when the database context does not parse", func() {
		// Given
		gomock.InOrder(
			dbMock.EXPECT().Lookup(testPath, testFileMode).Return("junk", nil),
			implMock.EXPECT().CurrentLabel().Return(processCon, nil),
			implMock.EXPECT().FileLabel(testParent).Return(parentCon, nil),
			implMock.EXPECT().ClassIndex(relabel.ClassFile).Return(1, nil),
			implMock.EXPECT().ComputeCreateContext(processCon, parentCon, relabel.ClassFile).
				Return(createdCon, nil),
		)

		// When
		_, err := sut.DefaultCreationContext(ctx, testPath, testFileMode)

		// Then
		Expect(err).To(MatchError(relabel.ErrContextParse))
	})

	t.Describe("InstallDefaultCreationContext", func() {
		It("should install the hybrid context for the process", func() {
			// Given
			expectSynthesis()
			implMock.EXPECT().SetFSCreateLabel(expectedCon).Return(nil)

			// When
			err := sut.InstallDefaultCreationContext(ctx, testPath, testFileMode)

			// Then
			Expect(err).ToNot(HaveOccurred())
		})

		It("should fail when the installation fails", func() {
			// Given
			expectSynthesis()
			implMock.EXPECT().SetFSCreateLabel(expectedCon).Return(errTest)

			// When
			err := sut.InstallDefaultCreationContext(ctx, testPath, testFileMode)

			// Then
			Expect(err).To(MatchError(relabel.ErrContextApply))
		})

		It("should not install anything when the synthesis fails", func() {
			// Given
			dbMock.EXPECT().Lookup(testPath, testFileMode).Return("", errTest)

			// When
			err := sut.InstallDefaultCreationContext(ctx, testPath, testFileMode)

			// Then
			Expect(err).To(MatchError(relabel.ErrContextQuery))
		})
	})
})
