// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-pil/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [flags] ir_file",
	Short: "print an analyzed constraint file as PIL source.",
	Long: `Print a given analyzed constraint file as canonical PIL source.
	Constraint files can be given either as yaml or json files.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		ir := readAnalyzedFile(cmd, args[0])
		// Decide whether to highlight
		colour := termio.IsTerminal(os.Stdout)
		if GetFlag(cmd, "color") {
			colour = true
		} else if GetFlag(cmd, "no-color") {
			colour = false
		}
		//
		var out io.WriteCloser = nopCloser{os.Stdout}
		if colour {
			out = termio.NewHighlighter().Writer(os.Stdout)
		}
		//
		n, err := ir.WriteTo(out)
		if err == nil {
			err = out.Close()
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		log.Debugf("wrote %d bytes", n)
	},
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().Bool("color", false, "force highlighted output")
	printCmd.Flags().Bool("no-color", false, "disable highlighted output")
	printCmd.Flags().Uint("degree", 0, "override the degree used in namespace headers")
	printCmd.MarkFlagsMutuallyExclusive("color", "no-color")
}
