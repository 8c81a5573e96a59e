package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var testbedPath, device, query string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run --device <name> <command>...",
		Short: "Run canonical commands on a testbed device",
		Long: `Run connects to a device from the testbed file, executes the given
canonical commands in order, and prints each normalized reply as JSON.
A gojq filter may be applied to each reply with --query.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(testbedPath, device)
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			replies, err := sess.RunBatch(ctx, args)
			if err != nil {
				return err
			}

			for _, reply := range replies {
				if query != "" {
					if err := printQuery(query, reply); err != nil {
						return err
					}
					continue
				}
				if err := printJSON(reply); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&testbedPath, "testbed", "testbed.yaml", "Testbed file")
	cmd.Flags().StringVar(&device, "device", "", "Device name from the testbed")
	cmd.Flags().StringVar(&query, "query", "", "gojq filter applied to each reply")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall command deadline")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printQuery runs a gojq filter over one reply and prints every produced
// value.
func printQuery(query string, reply interface{}) error {
	q, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("query %q: %w", query, err)
	}

	iter := q.Run(reply)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query %q: %w", query, err)
		}
		if err := printJSON(v); err != nil {
			return err
		}
	}
	return nil
}
