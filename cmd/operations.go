package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devkit.dev/pkg/devkit/internal/domain"
	m "devkit.dev/pkg/devkit/internal/model"
)

const scanLongDescription = `Scan source files for risky patterns such as eval(...).

Each file is reported once per rule, with the location of every occurrence.

` + pathPatternsHelp

const translateLongDescription = `Translate Java-like declarations into TypeScript-like text.

The rewrite is a plain text substitution: String becomes string, int becomes
number (also inside identifiers), class becomes interface and semicolons are
dropped. With --write the result is saved next to the source as a .ts file.

` + pathPatternsHelp

const stubsLongDescription = `List a test stub for every "function name(" declaration in the source files.

` + pathPatternsHelp

const normalizeLongDescription = `Collapse every run of whitespace into a single space and trim the result.

With --write the files are rewritten in place.

` + pathPatternsHelp

// operationFlags holds the flag values of a single operation command.
type operationFlags struct {
	parallel      int
	extensions    []string
	write         bool
	diff          bool
	failOnWarning bool
}

func newScanCmd() *cobra.Command {
	return newOperationCmd(m.OperationScan, "Report risky patterns in source files", scanLongDescription)
}

func newTranslateCmd() *cobra.Command {
	return newOperationCmd(m.OperationTranslate, "Translate Java-like sources to TypeScript-like text", translateLongDescription)
}

func newStubsCmd() *cobra.Command {
	return newOperationCmd(m.OperationStubs, "List test stubs for declared functions", stubsLongDescription)
}

func newNormalizeCmd() *cobra.Command {
	return newOperationCmd(m.OperationNormalize, "Collapse whitespace in source files", normalizeLongDescription)
}

func newOperationCmd(op m.Operation, short, long string) *cobra.Command {
	flags := &operationFlags{}

	cmd := &cobra.Command{
		Use:   op.String() + " [paths...]",
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bound at run time because every operation command shares the keys.
			bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
			bindFlagToConfig(cmd.Flags().Lookup(extensionsFlagName), extensionsConfigKey)

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Operation:     op,
				Paths:         parsePaths(args),
				Exclude:       viper.GetStringSlice(excludeConfigKey),
				Extensions:    viper.GetStringSlice(extensionsConfigKey),
				Threads:       viper.GetInt(runParallelConfigKey),
				UseCache:      !viper.GetBool(noCacheFlagName),
				Reports:       m.Path(viper.GetString(outputFlagName)),
				Write:         flags.write,
				Diff:          flags.diff,
				FailOnWarning: flags.failOnWarning,
			})
		},
	}

	configureOperationFlags(cmd, op, flags)

	return cmd
}

func configureOperationFlags(cmd *cobra.Command, op m.Operation, flags *operationFlags) {
	cmd.Flags().IntVarP(&flags.parallel, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers")
	cmd.Flags().StringSliceVar(&flags.extensions, extensionsFlagName, nil, "file extensions to process (default "+strings.Join(op.DefaultExtensions(), ",")+")")

	switch {
	case op.Rewrites():
		cmd.Flags().BoolVar(&flags.write, writeFlagName, false, "write the rewritten text to disk")
		cmd.Flags().BoolVar(&flags.diff, diffFlagName, false, "show a unified diff of the rewrite")
	case op == m.OperationScan:
		cmd.Flags().BoolVar(&flags.failOnWarning, failOnWarningFlagName, false, "exit with an error when any warning is reported")
	}
}

func init() {
	rootCmd.AddCommand(newScanCmd(), newTranslateCmd(), newStubsCmd(), newNormalizeCmd())
}
