package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the registry as JSON",
		Long:  "Dump the full registry to stdout in its on-disk JSON form.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	reg, err := s.ExportAll()
	if err != nil {
		exitErr("export", err)
	}

	b, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		exitErr("export", err)
	}
	fmt.Println(string(b))
}
