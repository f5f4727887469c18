package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devkit.dev/pkg/devkit/internal/domain/typekit"
	m "devkit.dev/pkg/devkit/internal/model"
)

const docsFlagName = "docs"

func newTypegenCmd() *cobra.Command {
	var docs bool

	cmd := &cobra.Command{
		Use:   "typegen FILE.json",
		Short: "Generate a TypeScript interface from a JSON object",
		Long: `Read a JSON object and print a TypeScript-style interface describing the
runtime type of each top-level key, in document order. With --docs print
one "- key: type" line per key instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := fsAdapter.ReadFile(cmd.Context(), m.Path(args[0]))
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			fields, err := typekit.DecodeFields(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			if docs {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), typekit.RenderDocLines(fields))
				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), typekit.RenderInterface(fields))

			return nil
		},
	}

	cmd.Flags().BoolVar(&docs, docsFlagName, false, "print documentation lines instead of an interface")

	return cmd
}

func newTypemapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typemap TYPE...",
		Short: "Map TypeScript type names to Python type names",
		Long:  "Print the Python type name for each TypeScript type name. Unknown names map to " + typekit.UnknownTypeName + ".",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range args {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, typekit.MapTypeName(name))
			}
		},
	}
}

func init() {
	rootCmd.AddCommand(newTypegenCmd(), newTypemapCmd())
}
