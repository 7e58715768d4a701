package version_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cri-o/relabel/internal/version"
)

// The actual test suite
var _ = t.Describe("Version", func() {
	t.Describe("Get", func() {
		It("should succeed", func() {
			// Given
			// When
			res, err := version.Get(false)

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Version).To(Equal(version.Version))
			Expect(res.GoVersion).NotTo(BeEmpty())
			Expect(res.Platform).To(ContainSubstring("/"))
			Expect(res.Dependencies).To(BeEmpty())
		})

		It("should succeed verbose", func() {
			// Given
			// When
			res, err := version.Get(true)

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Version).To(Equal(version.Version))
		})
	})

	t.Describe("String", func() {
		It("should contain the version fields", func() {
			// Given
			res, err := version.Get(false)
			Expect(err).ToNot(HaveOccurred())

			// When
			str := res.String()

			// Then
			Expect(str).To(ContainSubstring("Version:"))
			Expect(str).To(ContainSubstring(version.Version))
			Expect(str).To(ContainSubstring("GoVersion:"))
		})

		It("should skip empty fields", func() {
			// Given
			res := &version.Info{Version: "1.0.0"}

			// When
			str := res.String()

			// Then
			Expect(str).NotTo(ContainSubstring("GitCommit"))
			Expect(str).NotTo(ContainSubstring("Dependencies"))
		})

		It("should list dependencies", func() {
			// Given
			res := &version.Info{Dependencies: []string{"a v1.0.0 h1:"}}

			// When
			str := res.String()

			// Then
			Expect(str).To(ContainSubstring("Dependencies:"))
			Expect(str).To(ContainSubstring("a v1.0.0"))
		})
	})

	t.Describe("JSONString", func() {
		It("should marshal to valid JSON", func() {
			// Given
			res, err := version.Get(false)
			Expect(err).ToNot(HaveOccurred())

			// When
			str, err := res.JSONString()

			// Then
			Expect(err).ToNot(HaveOccurred())
			info := version.Info{}
			Expect(json.Unmarshal([]byte(str), &info)).To(Succeed())
			Expect(info.Version).To(Equal(version.Version))
		})
	})
})
