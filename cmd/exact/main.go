package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cairngraph/exact"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "exact"
)

var digits int

var (
	rootCmd = &cobra.Command{
		Use:     AppName,
		Version: Version,
	}

	evalCmd = &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate an arithmetic query document and print the typed result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := exact.NewEngine(
				exact.WithDecimalDigits(digits),
			)

			var (
				result exact.Result
				err    error
			)
			if args[0] == "-" {
				result, err = e.Eval(os.Stdin)
			} else {
				result, err = e.EvalFile(args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result.TypedRecord()))
			return nil
		},
	}

	projectCmd = &cobra.Command{
		Use:   "project LEXICAL XSD-TYPE",
		Short: "Project a stored literal onto the wire",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := exact.NewEngine(
				exact.WithDecimalDigits(digits),
			)

			token, err := e.ProjectLiteral(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(token))
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&digits, "digits", 20, "fractional digits for non-terminating decimal expansions")
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(projectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
