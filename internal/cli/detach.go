package cli

import (
	"fmt"
	"os"

	"github.com/rcliao/threadlink/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detach TAG FILE",
		Short: "Remove a file from a thread",
		Args:  cobra.ExactArgs(2),
		Run:   runDetach,
	}

	RootCmd.AddCommand(cmd)
}

func runDetach(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	res, err := s.Detach(store.DetachParams{Tag: args[0], File: args[1]})
	if err != nil {
		report("detach", err)
		return
	}

	if res.Warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", res.Warning)
	}
	fmt.Printf("File %s detached from thread %q.\n", res.Path, res.ThreadID)
}
