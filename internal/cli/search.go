package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search threads by keyword",
		Long:  "Case-insensitive substring match against thread IDs and summaries.",
		Args:  cobra.ExactArgs(1),
		Run:   runSearch,
	}

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	results, err := s.Search(args[0])
	if err != nil {
		exitErr("search", err)
	}

	if len(results) == 0 {
		if formatFlag == "text" {
			fmt.Println("No matching threads found.")
		} else {
			fmt.Println("[]")
		}
		return
	}

	if formatFlag == "text" {
		for _, e := range results {
			fmt.Printf("%s\t%s\n", e.ID, e.Summary)
		}
		return
	}

	b, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(b))
}
