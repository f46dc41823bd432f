package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rcliao/threadlink/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "attach TAG FILE",
		Short: "Attach a file to a thread",
		Long:  "Resolve FILE to an absolute path and link it to the thread. Missing files prompt for confirmation.",
		Args:  cobra.ExactArgs(2),
		Run:   runAttach,
	}

	cmd.Flags().BoolP("yes", "y", false, "Attach missing files without prompting")

	RootCmd.AddCommand(cmd)
}

func runAttach(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")

	s, err := openStore()
	if err != nil {
		exitErr("open registry", err)
	}

	res, err := s.Attach(store.AttachParams{
		Tag:  args[0],
		File: args[1],
		Confirm: func(path string) bool {
			return yes || confirmAttach(cmd.Context(), os.Stdin, path)
		},
	})
	if err != nil {
		report("attach", err)
		return
	}

	if res.Warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", res.Warning)
	}
	switch {
	case res.Declined:
		fmt.Println("Attach canceled.")
	case res.AlreadyLinked:
		fmt.Printf("File %s is already linked to thread %q.\n", res.Path, res.ThreadID)
	default:
		fmt.Printf("File %s attached to thread %q.\n", res.Path, res.ThreadID)
	}
}

// confirmAttach asks whether a missing file should be attached anyway.
// Cancelling ctx (Ctrl-C) declines instead of leaving the process stuck
// on the read.
func confirmAttach(ctx context.Context, in io.Reader, path string) bool {
	fmt.Printf("File %s does not exist. Attach anyway? [y/N] ", path)

	answer := make(chan string, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil {
			answer <- ""
			return
		}
		answer <- line
	}()

	select {
	case <-ctx.Done():
		fmt.Println()
		return false
	case line := <-answer:
		line = strings.ToLower(strings.TrimSpace(line))
		return line == "y" || line == "yes"
	}
}
