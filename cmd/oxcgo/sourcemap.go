package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxc-go/oxc-core/internal/sourcemap"
)

func newSourcemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sourcemap",
		Short: "Inspect and validate source map v3 documents",
	}
	cmd.AddCommand(newSourcemapDecodeCmd())
	return cmd
}

func newSourcemapDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a source map and print its mapping tokens and source list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			m, err := sourcemap.Decode(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			out, err := json.MarshalIndent(struct {
				Version int      `json:"version"`
				Sources []string `json:"sources"`
				Names   []string `json:"names"`
			}{m.Version, m.Sources, m.Names}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
