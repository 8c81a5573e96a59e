package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netdut-project/netdut/pkg/util"
	"github.com/netdut-project/netdut/pkg/version"
)

var verboseFlag bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "netdut",
		Short: "Device-under-test command translation and execution",
		Long: `Netdut runs control-plane commands against test devices, translating
between the canonical EOS-flavored dialect and whatever the device speaks.

  netdut translate --to mos -       # rewrite canonical commands from stdin
  netdut run --device dut1 "show version"
  netdut run --device dut1 --query .model_name "show version"`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				_ = util.SetLogLevel("debug")
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newTranslateCmd(),
		newRunCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println("netdut " + version.Info())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
