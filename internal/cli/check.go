package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evoglot/evoglot/internal/harness"
)

// CheckResult summarizes one scenario run.
type CheckResult struct {
	Scenario string   `json:"scenario"`
	Cases    int      `json:"cases"`
	Failures []string `json:"failures,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Run sound change scenarios and report failures",
		Long: `Run one or more YAML scenarios against their language definitions.

Each scenario's word cases are pushed through the language's rules and
compared against the expected outcomes.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var summaries []CheckResult
	failed := 0
	for _, path := range paths {
		scenario, err := harness.LoadScenario(path)
		if err != nil {
			wrapped := WrapExitError(ExitCommandError, fmt.Sprintf("load scenario %s", path), err)
			_ = formatter.Error(ErrCodeFileRead, wrapped.Error(), nil)
			return wrapped
		}

		formatter.VerboseLog("Running scenario %q (%d cases)", scenario.Name, len(scenario.Words))

		result, err := harness.Run(scenario)
		if err != nil {
			wrapped := WrapExitError(ExitFailure, fmt.Sprintf("run scenario %s", scenario.Name), err)
			_ = formatter.Error(ErrCodeGeneric, wrapped.Error(), nil)
			return wrapped
		}

		failures := result.Failures()
		if len(failures) > 0 {
			failed++
		}
		summaries = append(summaries, CheckResult{
			Scenario: scenario.Name,
			Cases:    len(result.Cases),
			Failures: failures,
		})
	}

	if formatter.Format == "json" {
		if err := formatter.Success(summaries); err != nil {
			return err
		}
	} else {
		for _, s := range summaries {
			if len(s.Failures) == 0 {
				fmt.Fprintf(formatter.Writer, "✓ %s (%d cases)\n", s.Scenario, s.Cases)
				continue
			}
			fmt.Fprintf(formatter.Writer, "✗ %s (%d cases)\n", s.Scenario, s.Cases)
			for _, failure := range s.Failures {
				fmt.Fprintf(formatter.Writer, "    %s\n", failure)
			}
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", failed))
	}
	return nil
}
