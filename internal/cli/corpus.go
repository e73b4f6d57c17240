package cli

import (
	"fmt"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/classifier"
	"github.com/raphaelgruber/isha-go/internal/corpus"
	"github.com/raphaelgruber/isha-go/internal/llm"
	"github.com/spf13/cobra"
)

var corpusTop int

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect the exemplar corpus",
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every exemplar with its label",
	RunE: func(cmd *cobra.Command, args []string) error {
		examples, err := corpus.Load()
		if err != nil {
			return err
		}
		for _, ex := range examples {
			fmt.Printf("%-8s %-12s %s\n", ex.Intent, ex.Entity, ex.Text)
		}
		fmt.Printf("\n%d examples\n", len(examples))
		return nil
	},
}

var corpusMatchCmd = &cobra.Command{
	Use:   "match <message>",
	Short: "Show the closest exemplars for a message",
	Long: `Match embeds the message and prints the nearest corpus exemplars with
their cosine similarity, regardless of the match threshold. Useful for
checking why the vector tier did or did not answer.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		message := strings.Join(args, " ")

		embedder, err := llm.NewEmbedder(cfg, logger)
		if err != nil {
			return fmt.Errorf("init embedder: %w", err)
		}

		matcher := classifier.NewMatcher(embedder, logger)
		if err := matcher.Init(ctx); err != nil {
			return fmt.Errorf("build corpus index: %w", err)
		}

		matches, err := matcher.TopMatches(ctx, message, corpusTop)
		if err != nil {
			return err
		}
		for _, m := range matches {
			marker := " "
			if m.Confidence >= cfg.MatchThreshold {
				marker = "*"
			}
			fmt.Printf("%s %.3f  %-8s %-12s %s\n", marker, m.Confidence, m.Intent, m.Entity, m.MatchedText)
		}
		return nil
	},
}

func init() {
	corpusMatchCmd.Flags().IntVarP(&corpusTop, "top", "n", 5, "number of matches to show")
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusMatchCmd)
}
