package cli

import (
	"fmt"

	"github.com/rcliao/threadlink/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "quick SUMMARY [CHAT_URL]",
		Short: "Create a thread with a generated tag",
		Long:  "Create a thread whose tag is derived from the summary and today's date.",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runQuick,
	}

	RootCmd.AddCommand(cmd)
}

func runQuick(cmd *cobra.Command, args []string) {
	chatURL := ""
	if len(args) == 2 {
		chatURL = args[1]
	}

	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	id, t, err := s.QuickCreate(store.QuickCreateParams{
		Summary: args[0],
		ChatURL: chatURL,
	})
	if err != nil {
		report("quick", err)
		return
	}

	fmt.Printf("Thread created: %s\n", id)
	fmt.Printf("Summary: %s\n", t.Summary)
	if t.ChatURL != "" {
		fmt.Printf("Chat URL: %s\n", t.ChatURL)
	}
}
