// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("envoke command", func() {

	var exitCode int
	var out strings.Builder
	var rootCmd *cobra.Command

	BeforeEach(func() {
		exitCode = 0
		out.Reset()
		rootCmd = newRootCmd(&exitCode)
		rootCmd.SilenceErrors = true
		rootCmd.SetOut(&out)
		rootCmd.SetErr(GinkgoWriter)
	})

	It("requires a definitions file", func() {
		rootCmd.SetArgs([]string{"--dump"})
		Expect(rootCmd.Execute()).To(MatchError(
			ContainSubstring(`"file" not set`)))
	})

	It("requires a command when not dumping", func() {
		rootCmd.SetArgs([]string{"-f", "testdata/hellorld.env"})
		Expect(rootCmd.Execute()).To(MatchError(
			ContainSubstring("missing command to run")))
	})

	It("reports unreadable definitions files", func() {
		rootCmd.SetArgs([]string{"-f", "/nothing-nada-nil", "--dump"})
		Expect(rootCmd.Execute()).To(MatchError(
			ContainSubstring("cannot read definitions file")))
	})

	It("dumps the definitions as they are", func() {
		rootCmd.SetArgs([]string{"-f", "testdata/hellorld.env", "--dump"})
		Expect(rootCmd.Execute()).To(Succeed())
		Expect(out.String()).To(Equal(`GREETING="hellorld"
MESSAGE="${GREETING}, ${RECIPIENT}!"
RECIPIENT="world"
`))
	})

	It("dumps expanded definitions as JSON", func() {
		rootCmd.SetArgs([]string{
			"-x", "-f", "testdata/hellorld.env", "--dump", "--format", "json"})
		Expect(rootCmd.Execute()).To(Succeed())
		var vars map[string]string
		Expect(json.Unmarshal([]byte(out.String()), &vars)).To(Succeed())
		Expect(vars).To(HaveKeyWithValue("MESSAGE", "hellorld, world!"))
	})

	It("rejects unknown dump formats", func() {
		rootCmd.SetArgs([]string{
			"-f", "testdata/hellorld.env", "--dump", "--format", "toml"})
		Expect(rootCmd.Execute()).To(MatchError(
			ContainSubstring("unknown dump format")))
	})

	It("runs the command inside the definitions environment", func() {
		outPath := filepath.Join(GinkgoT().TempDir(), "out")
		rootCmd.SetArgs([]string{
			"-x", "-f", "testdata/hellorld.env", "--",
			"/bin/sh", "-c", `printf '%s' "$MESSAGE" > ` + outPath,
		})
		Expect(rootCmd.Execute()).To(Succeed())
		Expect(exitCode).To(BeZero())
		Expect(os.ReadFile(outPath)).To(BeEquivalentTo("hellorld, world!"))
	})

	It("propagates the command's exit code", func() {
		rootCmd.SetArgs([]string{
			"-f", "testdata/hellorld.env", "--", "/bin/sh", "-c", "exit 42"})
		Expect(rootCmd.Execute()).To(Succeed())
		Expect(exitCode).To(Equal(42))
	})

	It("keeps the command's own flags to the command", func() {
		// without any “--”: flag parsing must already stop at “/bin/sh”, so
		// “-c” doesn't end up as an unknown envoke flag.
		rootCmd.SetArgs([]string{
			"-f", "testdata/hellorld.env", "/bin/sh", "-c", "exit 7"})
		Expect(rootCmd.Execute()).To(Succeed())
		Expect(exitCode).To(Equal(7))
	})

})
