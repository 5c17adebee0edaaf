package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/batch"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Command line", func() {
	Context("parsing assignments", func() {
		It("parses name=value pairs", func() {
			inputs, err := parseAssignments([]string{"food_quality=9", "service=3.5", "ambience=-1"})
			Expect(err).ToNot(HaveOccurred())
			Expect(inputs).To(Equal(map[string]float64{"food_quality": 9, "service": 3.5, "ambience": -1}))
		})

		It("rejects a missing separator", func() {
			_, err := parseAssignments([]string{"food_quality"})
			Expect(err).To(MatchError(ContainSubstring("name=value")))
		})

		It("rejects a missing name", func() {
			_, err := parseAssignments([]string{"=3"})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a value that is not a number", func() {
			_, err := parseAssignments([]string{"service=good"})
			Expect(err).To(MatchError(ContainSubstring("service")))
		})
	})

	It("reads cases from a CSV file", func() {
		dir, err := os.MkdirTemp("", "satisfaction")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "cases.csv")
		Expect(os.WriteFile(path, []byte("# food, service, ambience\n1, 2, 3\n9,9,9\n"), 0o644)).To(Succeed())
		rows, err := readCases(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(Equal([][]float64{{1, 2, 3}, {9, 9, 9}}))
	})

	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	It("prints the reference table", func() {
		out, err := execute("table")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("food_quality"))
		Expect(out).To(ContainSubstring("satisfaction"))
		Expect(out).To(ContainSubstring("2.31"))
		Expect(out).To(ContainSubstring("7.69"))
		Expect(out).To(ContainSubstring("5.82"))
	})

	It("evaluates one set of inputs", func() {
		out, err := execute("eval", "food_quality=9", "service=3", "ambience=3")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("satisfaction = 5.82\n"))
	})

	It("reports evaluation errors", func() {
		_, err := execute("eval", "food_quality=9", "service=3")
		Expect(err).To(MatchError(ContainSubstring("missing input: ambience")))
	})

	It("evaluates without the root command setup", func() {
		var out bytes.Buffer
		Expect(runEval(&out, []string{"food_quality=5", "service=5", "ambience=5"})).To(Succeed())
		Expect(out.String()).To(Equal("satisfaction = 5.00\n"))
	})

	It("rounds outputs in the table", func() {
		var out bytes.Buffer
		rows := [][]float64{{1, 1, 1}, {0, 5, 5}}
		outcomes := []batch.Outcome{{Output: 30.0 / 13}, {Err: errors.New("undefined")}}
		Expect(printTable(&out, []string{"a", "b", "c"}, "out", rows, outcomes)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("2.31"))
		Expect(out.String()).To(ContainSubstring("error: undefined"))
		Expect(out.String()).ToNot(ContainSubstring("2.307"))
	})
})
