package filecontexts_test

import (
	"errors"
	"io/fs"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cri-o/relabel/internal/cmdrunner"
	"github.com/cri-o/relabel/pkg/filecontexts"
	runnermock "github.com/cri-o/relabel/test/mocks/cmdrunner"
)

// The actual test suite
var _ = t.Describe("MatchPathCon", func() {
	const (
		testPath = "/tmp/x"
		testCon  = "system_u:object_r:etc_t"
	)

	var (
		mockCtrl   *gomock.Controller
		runnerMock *runnermock.MockCommandRunner
		sut        *filecontexts.MatchPathCon
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		runnerMock = runnermock.NewMockCommandRunner(mockCtrl)
		cmdrunner.SetMocked(runnerMock)

		sut = filecontexts.NewMatchPathCon()
	})

	AfterEach(func() {
		cmdrunner.ResetPrependedCmd()
		mockCtrl.Finish()
	})

	It("should resolve the context through the binary", func() {
		// Given
		runnerMock.EXPECT().
			CombinedOutput("matchpathcon", "-n", "-m", "file", testPath).
			Return([]byte(testCon+"\n"), nil)

		// When
		res, err := sut.Lookup(testPath, 0o644)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(testCon))
	})

	It("should skip the -m flag for unrecognized modes", func() {
		// Given
		runnerMock.EXPECT().
			CombinedOutput("matchpathcon", "-n", testPath).
			Return([]byte(testCon+"\n"), nil)

		// When
		res, err := sut.Lookup(testPath, fs.ModeIrregular)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(testCon))
	})

	It("should cache resolved contexts", func() {
		// Given
		runnerMock.EXPECT().
			CombinedOutput("matchpathcon", "-n", "-m", "file", testPath).
			Return([]byte(testCon+"\n"), nil)

		// When
		first, errFirst := sut.Lookup(testPath, 0o644)
		second, errSecond := sut.Lookup(testPath, 0o644)

		// Then
		Expect(errFirst).ToNot(HaveOccurred())
		Expect(errSecond).ToNot(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	It("should drop the cache on reload", func() {
		// Given
		runnerMock.EXPECT().
			CombinedOutput("matchpathcon", "-n", "-m", "file", testPath).
			Return([]byte(testCon+"\n"), nil).
			Times(2)

		// When
		_, errFirst := sut.Lookup(testPath, 0o644)
		Expect(sut.Reload()).To(Succeed())
		_, errSecond := sut.Lookup(testPath, 0o644)

		// Then
		Expect(errFirst).ToNot(HaveOccurred())
		Expect(errSecond).ToNot(HaveOccurred())
	})

	It("should fail when the binary fails", func() {
		// Given
		runnerMock.EXPECT().
			CombinedOutput("matchpathcon", "-n", "-m", "file", testPath).
			Return([]byte("boom"), errors.New("test"))

		// When
		_, err := sut.Lookup(testPath, 0o644)

		// Then
		Expect(err).To(HaveOccurred())
	})

	It("should fail for explicitly unlabeled paths", func() {
		// Given
		runnerMock.EXPECT().
			CombinedOutput("matchpathcon", "-n", "-m", "file", testPath).
			Return([]byte("<<none>>\n"), nil)

		// When
		_, err := sut.Lookup(testPath, 0o644)

		// Then
		Expect(err).To(HaveOccurred())
	})
})
