package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/evoglot/evoglot/internal/lexicon"
)

// LexiconEntry is one dictionary entry in command output.
type LexiconEntry struct {
	Headword   string `json:"headword"`
	Index      int    `json:"index"`
	Definition string `json:"definition,omitempty"`
	Sound      string `json:"sound"`
	Change     string `json:"change,omitempty"`
	POS        string `json:"pos,omitempty"`
}

// NewLexiconCommand creates the lexicon command group.
func NewLexiconCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage a language's dictionary",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "lexicon.db", "path to the lexicon database")

	cmd.AddCommand(newLexiconAddCommand(rootOpts, &dbPath))
	cmd.AddCommand(newLexiconSearchCommand(rootOpts, &dbPath))

	return cmd
}

func newLexiconAddCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var (
		definition string
		change     string
		pos        string
	)

	cmd := &cobra.Command{
		Use:   "add <headword> <sound>",
		Short: "File a new entry under a spelled headword",
		Long: `File a dictionary entry. The sound is space-separated symbols:

  evoglot lexicon add kata "k a t a" --define "a fish" --pos noun`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexiconAdd(rootOpts, *dbPath, args[0], args[1], definition, change, pos, cmd)
		},
	}

	cmd.Flags().StringVar(&definition, "define", "", "definition text")
	cmd.Flags().StringVar(&change, "change", "", "post-rule sound, space-separated symbols")
	cmd.Flags().StringVar(&pos, "pos", "", "part of speech")

	return cmd
}

func runLexiconAdd(opts *RootOptions, dbPath, headword, sound, definition, change, pos string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	store, err := lexicon.Open(dbPath)
	if err != nil {
		wrapped := WrapExitError(ExitCommandError, fmt.Sprintf("open lexicon %s", dbPath), err)
		_ = formatter.Error(ErrCodeLexicon, wrapped.Error(), nil)
		return wrapped
	}
	defer store.Close()

	ref, err := store.AddEntry(cmd.Context(), lexicon.Entry{
		Headword:   headword,
		Definition: definition,
		Sound:      strings.Fields(sound),
		Change:     strings.Fields(change),
		POS:        pos,
	})
	if err != nil {
		wrapped := WrapExitError(ExitFailure, "add entry", err)
		_ = formatter.Error(ErrCodeLexicon, wrapped.Error(), nil)
		return wrapped
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{"headword": ref.Headword, "index": ref.Index})
	}
	fmt.Fprintf(formatter.Writer, "added %s (entry %d)\n", ref.Headword, ref.Index)
	return nil
}

func newLexiconSearchCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var (
		spelling   string
		keywords   []string
		sound      string
		change     string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search dictionary entries by one attribute",
		Long: `Search the lexicon. Exactly one of --spelling, --keyword, --sound
or --change must be given:

  evoglot lexicon search --keyword fish --keyword river
  evoglot lexicon search --sound "k a t a"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexiconSearch(rootOpts, *dbPath, spelling, keywords, sound, change, maxResults, cmd)
		},
	}

	cmd.Flags().StringVar(&spelling, "spelling", "", "exact spelled headword")
	cmd.Flags().StringArrayVar(&keywords, "keyword", nil, "definition keyword (repeatable)")
	cmd.Flags().StringVar(&sound, "sound", "", "underlying sound, space-separated symbols")
	cmd.Flags().StringVar(&change, "change", "", "post-rule sound, space-separated symbols")
	cmd.Flags().IntVar(&maxResults, "max", lexicon.DefaultMaxResults, "maximum results")

	return cmd
}

func runLexiconSearch(opts *RootOptions, dbPath, spelling string, keywords []string, sound, change string, maxResults int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	given := 0
	for _, attr := range []bool{spelling != "", len(keywords) > 0, sound != "", change != ""} {
		if attr {
			given++
		}
	}
	if given != 1 {
		err := NewExitError(ExitCommandError, "exactly one of --spelling, --keyword, --sound or --change is required")
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return err
	}

	store, err := lexicon.Open(dbPath)
	if err != nil {
		wrapped := WrapExitError(ExitCommandError, fmt.Sprintf("open lexicon %s", dbPath), err)
		_ = formatter.Error(ErrCodeLexicon, wrapped.Error(), nil)
		return wrapped
	}
	defer store.Close()

	ctx := cmd.Context()
	var entries []lexicon.Entry
	switch {
	case spelling != "":
		entries, err = store.SearchSpelling(ctx, spelling, maxResults)
	case len(keywords) > 0:
		entries, err = store.SearchDefinitions(ctx, keywords, maxResults)
	case sound != "":
		entries, err = store.SearchSound(ctx, strings.Fields(sound), maxResults)
	default:
		entries, err = store.SearchChange(ctx, strings.Fields(change), maxResults)
	}
	if err != nil {
		wrapped := WrapExitError(ExitFailure, "search lexicon", err)
		_ = formatter.Error(ErrCodeLexicon, wrapped.Error(), nil)
		return wrapped
	}

	results := make([]LexiconEntry, len(entries))
	for i, e := range entries {
		results[i] = LexiconEntry{
			Headword:   e.Headword,
			Index:      e.Index,
			Definition: e.Definition,
			Sound:      strings.Join(e.Sound, " "),
			Change:     strings.Join(e.Change, " "),
			POS:        e.POS,
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(formatter.Writer, "no entries found")
		return nil
	}

	table := tablewriter.NewWriter(formatter.Writer)
	table.SetHeader([]string{"Headword", "#", "Definition", "Sound", "Change", "POS"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	for _, r := range results {
		table.Append([]string{r.Headword, fmt.Sprintf("%d", r.Index), r.Definition, r.Sound, r.Change, r.POS})
	}
	table.Render()
	return nil
}
