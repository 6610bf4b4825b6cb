package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rushd/domain/assessment"
	"rushd/domain/career"
	"rushd/domain/journal"
)

// The CLI runs both engines offline over JSON files: score an assessment
// against a catalog, or analyze an exported journal. No storage, no
// network; the same deterministic results the server produces.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rushd-cli",
		Short: "Run career scoring and journal analytics over local JSON files",
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newAnalyzeCmd(),
		newQuestionsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newScoreCmd() *cobra.Command {
	var minCompatibility int
	var sortKey string

	cmd := &cobra.Command{
		Use:   "score <answers.json> <catalog.json>",
		Short: "Rank a career catalog against assessment answers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawAnswers, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read answers: %w", err)
			}
			answers := assessment.Decode(rawAnswers)

			rawCatalog, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read catalog: %w", err)
			}
			var catalog []career.Profile
			if err := json.Unmarshal(rawCatalog, &catalog); err != nil {
				return fmt.Errorf("failed to parse catalog: %w", err)
			}

			recs := career.Score(answers, catalog)
			recs = career.FilterAndSort(recs, career.Filters{
				MinCompatibility: minCompatibility,
			}, career.SortKey(sortKey))

			return printJSON(recs)
		},
	}

	cmd.Flags().IntVar(&minCompatibility, "min-compatibility", 0, "drop results under this score")
	cmd.Flags().StringVar(&sortKey, "sort", string(career.SortCompatibility), "sort key: compatibility|title|salary|growth|industry")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var rangeName string

	cmd := &cobra.Command{
		Use:   "analyze <entries.json>",
		Short: "Compute journal analytics over exported entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read entries: %w", err)
			}
			var entries []journal.Entry
			if err := json.Unmarshal(raw, &entries); err != nil {
				return fmt.Errorf("failed to parse entries: %w", err)
			}

			rng := journal.Range(rangeName)
			if _, known := rng.Duration(); !known {
				return fmt.Errorf("unknown range %q", rangeName)
			}

			now := time.Now()
			result := journal.Analyze(journal.FilterRange(entries, rng, now), now)
			if result == nil {
				fmt.Println("Not enough data in the selected range.")
				return nil
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&rangeName, "range", string(journal.Range30Days), "lookback range: 7days|30days|90days|1year")
	return cmd
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the assessment question set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(assessment.DefaultQuestions())
		},
	}
}

func printJSON(payload interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
