package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askStats bool

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Interpret a message and apply it to the tracker",
	Long: `Ask classifies the message through the cascade and executes the resulting
action against the database.

Examples:
  isha ask "did 3 sets of 12 bench press at 60kg"
  isha ask "remind me to call mom tomorrow at 6pm"
  isha ask "add milk and eggs to my shopping list"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		message := strings.Join(args, " ")

		a, cleanup, err := buildAssistant(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		cls, result := a.Handle(ctx, message)

		fmt.Printf("intent: %s  entity: %s  (method=%s, confidence=%.2f)\n",
			cls.Intent, cls.Entity, cls.Method, cls.Confidence)
		if result.Success {
			fmt.Println(result.Message)
		} else {
			fmt.Printf("failed: %s\n", result.Error)
		}

		if askStats {
			snapshot, err := json.MarshalIndent(a.Stats(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal stats: %w", err)
			}
			fmt.Println(string(snapshot))
		}
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askStats, "stats", false, "print pipeline timing stats after the action")
}
