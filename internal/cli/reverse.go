package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reverse FILE",
		Short: "Find the thread linked to a file",
		Args:  cobra.ExactArgs(1),
		Run:   runReverse,
	}

	RootCmd.AddCommand(cmd)
}

func runReverse(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	res, err := s.ReverseLookup(args[0])
	if err != nil {
		report("reverse", err)
		return
	}

	if res.Warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", res.Warning)
	}
	if formatFlag == "text" {
		fmt.Printf("Thread:   %s\n", res.ThreadID)
		fmt.Printf("Summary:  %s\n", res.Summary)
		fmt.Printf("Chat URL: %s\n", res.ChatURL)
		fmt.Printf("File:     %s\n", res.FilePath)
		return
	}

	b, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(b))
}
