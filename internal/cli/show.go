package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show TAG",
		Short: "Show thread details",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	t, err := s.Show(args[0])
	if err != nil {
		report("show", err)
		return
	}

	if formatFlag == "text" {
		fmt.Printf("Thread:   %s\n", args[0])
		fmt.Printf("Summary:  %s\n", t.Summary)
		fmt.Printf("Chat URL: %s\n", t.ChatURL)
		fmt.Printf("Created:  %s\n", t.DateCreated.Format(time.RFC3339))
		fmt.Printf("Files:    %s\n", strings.Join(t.LinkedFiles, ", "))
		return
	}

	b, _ := json.MarshalIndent(t, "", "  ")
	fmt.Println(string(b))
}
