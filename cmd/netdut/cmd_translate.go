package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netdut-project/netdut/pkg/dialect"
	"github.com/netdut-project/netdut/pkg/util"
)

func newTranslateCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Rewrite a canonical command block for a target dialect",
		Long: `Translate reads a newline-separated block of canonical commands from a
file (or stdin when the argument is "-" or omitted) and prints the command
sequence the target dialect actually understands.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := readCommandBlock(args)
			if err != nil {
				return err
			}

			tr, err := dialect.NewMOSTranslator()
			if err != nil {
				return err
			}
			translated, err := tr.TranslateCommands(dialect.Dialect(to), util.SplitCommands(block))
			if err != nil {
				return err
			}

			fmt.Println(strings.Join(translated, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", string(dialect.MOS), "Target dialect (eos, mos)")
	return cmd
}

func readCommandBlock(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
