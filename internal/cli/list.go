package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List threads",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	entries, err := s.List(limit)
	if err != nil {
		exitErr("list", err)
	}

	if formatFlag == "text" {
		for _, e := range entries {
			fmt.Printf("%s\t%s\n", e.ID, e.Summary)
		}
		return
	}

	if len(entries) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
