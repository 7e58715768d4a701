package cmdrunner_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cri-o/relabel/internal/cmdrunner"
)

var _ = t.Describe("CommandRunner", func() {
	AfterEach(func() {
		cmdrunner.ResetPrependedCmd()
	})

	It("command should not prepend if not configured", func() {
		// Given
		cmd := "echo"
		baseline, err := exec.Command(cmd, "hello").CombinedOutput()
		Expect(err).ToNot(HaveOccurred())

		// When
		output, err := cmdrunner.CombinedOutput(cmd, "hello")

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(Equal(baseline))
	})

	It("command should prepend if configured", func() {
		// Given
		cmd := "ls"
		cmdrunner.PrependCommandsWith("echo")
		baseline, err := exec.Command(cmd).CombinedOutput()
		Expect(err).ToNot(HaveOccurred())

		// When
		output, err := cmdrunner.CombinedOutput(cmd)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(output).NotTo(Equal(baseline))
		Expect(string(output)).To(Equal(cmd + "\n"))
	})

	It("command should prepend args if configured", func() {
		// Given
		cmdrunner.PrependCommandsWith("echo", "prefix")

		// When
		output, err := cmdrunner.CombinedOutput("suffix")

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(string(output)).To(Equal("prefix suffix\n"))
	})

	It("command should not prepend if only args are configured", func() {
		// Given
		cmd := "echo"
		cmdrunner.PrependCommandsWith("", "-l")
		baseline, err := exec.Command(cmd, "hello").CombinedOutput()
		Expect(err).ToNot(HaveOccurred())

		// When
		output, err := cmdrunner.CombinedOutput(cmd, "hello")

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(Equal(baseline))
	})

	It("GetPrependedCmd should return the configured prefix", func() {
		// Given
		Expect(cmdrunner.GetPrependedCmd()).To(BeEmpty())

		// When
		cmdrunner.PrependCommandsWith("nsenter", "-t", "1", "-m")

		// Then
		Expect(cmdrunner.GetPrependedCmd()).To(Equal("nsenter"))
	})
})
