package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <message>",
	Short: "Classify a message without executing anything",
	Long: `Classify runs the cascade and prints the resulting classification as JSON.
Nothing is written to the database; use it to inspect how a phrasing lands.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		message := strings.Join(args, " ")

		cls, err := buildClassifier()
		if err != nil {
			return err
		}

		result := cls.Classify(ctx, message)
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal classification: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}
