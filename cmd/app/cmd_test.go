// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gardener/richcontent/cmd/configuration"
	"github.com/gardener/richcontent/pkg/osfakes/osshim"
	"github.com/gardener/richcontent/pkg/osfakes/osshim/osshimfakes"
	"github.com/gardener/richcontent/pkg/version"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/utils/pointer"
)

type staticLoader struct {
	config *configuration.Config
	err    error
}

func (s *staticLoader) Load() (*configuration.Config, error) {
	return s.config, s.err
}

var _ = Describe("Commands", func() {
	var (
		tmp        string
		configPath string
		out        *bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		tmp, err = os.MkdirTemp("", "richcontent")
		Expect(err).NotTo(HaveOccurred())
		configPath = filepath.Join(tmp, "config")
		Expect(os.WriteFile(configPath, []byte("workers: 2\n"), 0644)).To(Succeed())
		out = &bytes.Buffer{}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmp)).To(Succeed())
	})

	run := func(sh osshim.Os, in string, args ...string) error {
		cmd := newCommand(context.Background(), sh)
		cmd.SetIn(strings.NewReader(in))
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append(args, "--config", configPath))
		return cmd.Execute()
	}

	Describe("incoming", func() {
		It("rewrites the standard input", func() {
			Expect(run(&osshim.OsShim{}, `<a href="/courses/1/files/2?verifier=v">x</a>`, "incoming")).To(Succeed())
			Expect(out.String()).To(Equal(`<a href="/courses/1/files/2">x</a>`))
		})

		It("makes local links root-relative", func() {
			Expect(run(&osshim.OsShim{}, `<a href="https://lms.example/courses/1/files/2?verifier=v">x</a>`, "incoming", "-", "--local-hosts", "lms.example")).To(Succeed())
			Expect(out.String()).To(Equal(`<a href="/courses/1/files/2">x</a>`))
		})

		It("reads files", func() {
			sh := &osshimfakes.FakeOs{}
			sh.ReadFileReturns([]byte(`<p>x</p>`), nil)
			Expect(run(sh, "", "incoming", "in.html")).To(Succeed())
			Expect(out.String()).To(Equal(`<p>x</p>`))
			Expect(sh.ReadFileArgsForCall(0)).To(Equal("in.html"))
		})

		It("fails on missing files", func() {
			sh := &osshimfakes.FakeOs{}
			sh.ReadFileReturns(nil, os.ErrNotExist)
			sh.IsNotExistReturns(true)
			Expect(run(sh, "", "incoming", "in.html")).To(MatchError(ContainSubstring("does not exist")))
		})

		It("fails on inputs over the size limit", func() {
			err := run(&osshim.OsShim{}, `<p>too long</p>`, "incoming", "--max-input-bytes", "4")
			Expect(err).To(MatchError(ContainSubstring("exceeds the maximum input size of 4 bytes")))
		})
	})

	Describe("outgoing", func() {
		It("makes URLs absolute", func() {
			Expect(run(&osshim.OsShim{}, `<img src="/courses/1/files/2/preview">`, "outgoing", "--host", "lms.example")).To(Succeed())
			Expect(out.String()).To(ContainSubstring(`src="https://lms.example/courses/1/files/2/preview"`))
		})

		It("annotates user content with a secret", func() {
			Expect(run(&osshim.OsShim{}, `<embed src="https://x/y">`, "outgoing", "--host", "lms.example", "--secret", "k")).To(Succeed())
			Expect(out.String()).To(ContainSubstring(`class="instructure_user_content"`))
			Expect(out.String()).To(ContainSubstring(`data-uc_sig=`))
		})

		It("requires a host", func() {
			Expect(run(&osshim.OsShim{}, `<p>x</p>`, "outgoing")).To(MatchError(ContainSubstring("host is required")))
		})
	})

	It("sanitizes", func() {
		Expect(run(&osshim.OsShim{}, `<script>alert(1)</script><a href="/x" onclick="y()">y</a>`, "sanitize")).To(Succeed())
		Expect(out.String()).NotTo(ContainSubstring("script"))
		Expect(out.String()).NotTo(ContainSubstring("onclick"))
		Expect(out.String()).To(ContainSubstring(`href="/x"`))
	})

	It("prints the version", func() {
		Expect(run(&osshim.OsShim{}, "", "version")).To(Succeed())
		Expect(out.String()).To(Equal(version.Version + "\n"))
	})

	It("generates completion scripts", func() {
		Expect(run(&osshim.OsShim{}, "", "completion", "bash")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("richcontent"))
	})

	It("fails on invalid configuration files", func() {
		Expect(os.WriteFile(configPath, []byte("host: [x\n"), 0644)).To(Succeed())
		Expect(run(&osshim.OsShim{}, "", "incoming")).To(HaveOccurred())
	})

	Describe("batch", func() {
		var source, destination string

		BeforeEach(func() {
			source = filepath.Join(tmp, "source")
			destination = filepath.Join(tmp, "destination")
			Expect(os.MkdirAll(filepath.Join(source, "sub"), os.ModePerm)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(source, "a.html"), []byte(`<a href="/courses/1/files/2?verifier=v">a</a>`), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(source, "sub", "b.html"), []byte(`<p>b</p>`), 0644)).To(Succeed())
		})

		It("writes one output per input", func() {
			Expect(run(&osshim.OsShim{}, "", "batch", "--source", source, "--destination", destination)).To(Succeed())
			a, err := os.ReadFile(filepath.Join(destination, "a.html"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(a)).To(Equal(`<a href="/courses/1/files/2">a</a>`))
			b, err := os.ReadFile(filepath.Join(destination, "sub", "b.html"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal(`<p>b</p>`))
		})

		It("prints the projected files on dry run", func() {
			Expect(run(&osshim.OsShim{}, "", "batch", "--source", source, "--destination", "out", "--dry-run")).To(Succeed())
			Expect(out.String()).To(HavePrefix("out\n  a.html\n    incoming stats: 45 bytes in, 34 bytes out\n  sub\n    b.html\n"))
			_, err := os.Stat(destination)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("aggregates errors", func() {
			Expect(os.WriteFile(filepath.Join(source, "big.html"), bytes.Repeat([]byte("x"), 100), 0644)).To(Succeed())
			err := run(&osshim.OsShim{}, "", "batch", "--source", source, "--destination", destination, "--max-input-bytes", "64")
			Expect(err).To(MatchError(ContainSubstring("big.html")))
			_, err = os.Stat(filepath.Join(destination, "a.html"))
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("validates its options",
			func(msg string, args ...string) {
				Expect(run(&osshim.OsShim{}, "", append([]string{"batch"}, args...)...)).To(MatchError(ContainSubstring(msg)))
			},
			Entry("source", "source is required", "--destination", "x"),
			Entry("destination", "destination is required", "--source", "x"),
			Entry("direction", "unknown direction", "--source", "x", "--destination", "y", "--direction", "sideways"),
		)

		It("fails on missing source", func() {
			sh := &osshimfakes.FakeOs{}
			sh.IsDirReturns(false, errors.New("no such directory"))
			Expect(run(sh, "", "batch", "--source", "x", "--destination", "y")).To(MatchError(ContainSubstring("no such directory")))
		})
	})
})

var _ = Describe("loadConfiguration", func() {
	var (
		vip *viper.Viper
		cmd *cobra.Command
	)

	BeforeEach(func() {
		vip = viper.New()
		vip.SetEnvPrefix(EnvPrefix)
		vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		vip.AutomaticEnv()
		cmd = &cobra.Command{}
		configureFlags(cmd, vip)
	})

	AfterEach(func() {
		Expect(os.Unsetenv("RICHCONTENT_PROTOCOL")).To(Succeed())
	})

	protocol := func(config *configuration.Config, env string, args ...string) string {
		if env != "" {
			Expect(os.Setenv("RICHCONTENT_PROTOCOL", env)).To(Succeed())
		}
		Expect(cmd.PersistentFlags().Parse(args)).To(Succeed())
		Expect(loadConfiguration(vip, &staticLoader{config: config})).To(Succeed())
		var o options
		Expect(vip.Unmarshal(&o)).To(Succeed())
		return o.Protocol
	}

	DescribeTable("applies flag > env > file > default",
		func(config *configuration.Config, env string, args []string, want string) {
			Expect(protocol(config, env, args...)).To(Equal(want))
		},
		Entry("default", &configuration.Config{}, "", nil, "https"),
		Entry("file", &configuration.Config{Protocol: pointer.StringPtr("file")}, "", nil, "file"),
		Entry("env", &configuration.Config{Protocol: pointer.StringPtr("file")}, "env", nil, "env"),
		Entry("flag", &configuration.Config{Protocol: pointer.StringPtr("file")}, "env", []string{"--protocol", "flag"}, "flag"),
	)

	It("reads lists and numbers from the configuration file", func() {
		limit := int64(5)
		workers := 3
		Expect(loadConfiguration(vip, &staticLoader{config: &configuration.Config{
			LocalHosts:    []string{"a", "b"},
			MaxInputBytes: &limit,
			Workers:       &workers,
		}})).To(Succeed())
		var o options
		Expect(vip.Unmarshal(&o)).To(Succeed())
		Expect(o.LocalHosts).To(Equal([]string{"a", "b"}))
		Expect(o.MaxInputBytes).To(Equal(int64(5)))
		Expect(o.Workers).To(Equal(3))
	})

	It("returns loader errors", func() {
		Expect(loadConfiguration(vip, &staticLoader{err: errors.New("broken")})).To(MatchError("broken"))
	})
})
