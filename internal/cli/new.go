package cli

import (
	"fmt"

	"github.com/rcliao/threadlink/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new thread",
		Long:  "Create a thread entry. Without --tag, a random ID is generated.",
		Run:   runNew,
	}

	cmd.Flags().String("tag", "", "Custom thread tag (optional)")
	cmd.Flags().String("summary", "", "Short summary of the thread")
	cmd.Flags().String("chat_url", "", "Link to the chat")

	RootCmd.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, args []string) {
	tag, _ := cmd.Flags().GetString("tag")
	summary, _ := cmd.Flags().GetString("summary")
	chatURL, _ := cmd.Flags().GetString("chat_url")

	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	id, _, err := s.Create(store.CreateParams{
		Tag:     tag,
		Summary: summary,
		ChatURL: chatURL,
	})
	if err != nil {
		report("new", err)
		return
	}

	fmt.Printf("New thread created: %s\n", id)
}
