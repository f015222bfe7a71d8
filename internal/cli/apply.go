package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ApplyResult holds the outcome of applying rules to one word.
type ApplyResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <definition.cue> <word>...",
		Short: "Apply a language's sound rules to words",
		Long: `Apply every sound rule of a language definition to one or more words.

Words are space-separated sound symbols, e.g.:

  evoglot apply taan.cue "k a k a" "a k a"`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runApply(opts *RootOptions, path string, words []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	lang, err := loadLanguage(path, 0)
	if err != nil {
		_ = formatter.Error(ErrCodeBuild, err.Error(), nil)
		return err
	}

	formatter.VerboseLog("Applying %d rule(s) of %q to %d word(s)", lang.Rules().Len(), lang.Name(), len(words))

	// Each word is independent, so batches run concurrently. Results
	// keep argument order.
	results := make([]ApplyResult, len(words))
	var g errgroup.Group
	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			input := strings.Fields(word)
			if len(input) == 0 {
				return WrapExitError(ExitCommandError, fmt.Sprintf("word %d is empty", i+1), nil)
			}
			output, err := lang.ApplyRules(input)
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("apply rules to %q", word), err)
			}
			results[i] = ApplyResult{Input: word, Output: strings.Join(output, " ")}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		_ = formatter.Error(ErrCodeBadWord, err.Error(), nil)
		return err
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintf(formatter.Writer, "%s -> %s\n", r.Input, r.Output)
	}
	return nil
}
