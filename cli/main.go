package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwantia/azvfs"
	"github.com/mwantia/azvfs/azure"
	"github.com/mwantia/azvfs/cmd"
	"github.com/mwantia/azvfs/cmd/builtin"
	"github.com/mwantia/azvfs/log"
	"github.com/mwantia/azvfs/storage"
	"github.com/mwantia/azvfs/storage/azureblob"
	"github.com/mwantia/azvfs/storage/memory"
)

// newContainer connects to the container named by the AZVFS_* environment,
// or falls back to a seeded in-memory demo container so the shell can be
// explored without credentials.
func newContainer() (storage.Container, error) {
	account := os.Getenv("AZVFS_ACCOUNT")
	key := os.Getenv("AZVFS_ACCOUNT_KEY")
	name := os.Getenv("AZVFS_CONTAINER")

	if account != "" && key != "" && name != "" {
		return azureblob.NewContainer(azureblob.Config{
			Account:    account,
			AccountKey: key,
			Container:  name,
		})
	}

	store := memory.NewContainer("demo", "playground")

	files := map[string]string{
		"readme.txt":              "Welcome to the azvfs demo shell. Try 'help'.\n",
		"docs/getting-started.md": "# Getting started\n\nResolve, read, copy.\n",
		"docs/faq.md":             "Folders are virtual; they exist through their content.\n",
		"logs/2026/app.log":       "startup complete\n",
	}
	for path, content := range files {
		store.Seed(path, []byte(content), 0)
	}

	return store, nil
}

func run() error {
	ctx := context.Background()

	container, err := newContainer()
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	logger := log.NewLogger("azvfs", log.Parse(os.Getenv("AZVFS_LOG_LEVEL")), "", false)

	fs, err := azure.NewFileSystem(container, azvfs.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("filesystem: %w", err)
	}
	defer fs.Close()

	registry := cmd.NewRegistry()
	if err := builtin.InitBuiltin(registry); err != nil {
		return err
	}

	shell := cmd.NewShell(fs)
	fmt.Printf("connected to %s/%s\n", container.Account(), container.Name())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", shell.Cwd)
		if !scanner.Scan() {
			break
		}

		line := strings.Fields(scanner.Text())
		if err := registry.Run(ctx, shell, line, os.Stdout); err != nil {
			if errors.Is(err, cmd.ErrExit) {
				return nil
			}

			return err
		}
	}

	return scanner.Err()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
