// Package cli implements the threadlink CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rcliao/threadlink/internal/store"
	"github.com/rcliao/threadlink/internal/validate"
	"github.com/spf13/cobra"
)

var (
	registryPath string
	formatFlag   string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "threadlink",
	Short: "Tag conversations and link files to them",
	Long:  "A tiny CLI that maps thread tags to summaries, chat URLs and linked files. JSON-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&registryPath, "registry", "r", "", "Registry path (default: $THREADLINK_REGISTRY or ~/.threadlink/thread_index.json)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getRegistryPath() string {
	if registryPath != "" {
		return registryPath
	}
	if env := os.Getenv("THREADLINK_REGISTRY"); env != "" {
		return env
	}
	return store.DefaultPath()
}

func openStore() (*store.Store, error) {
	return store.Open(getRegistryPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// report prints validation and not-found outcomes as plain messages; only
// storage and unexpected errors are fatal.
func report(op string, err error) {
	if errors.Is(err, validate.ErrInvalid) ||
		errors.Is(err, store.ErrThreadExists) ||
		errors.Is(err, store.ErrThreadNotFound) ||
		errors.Is(err, store.ErrFileNotLinked) ||
		errors.Is(err, store.ErrNoThreadForFile) {
		fmt.Println(err)
		return
	}
	exitErr(op, err)
}
