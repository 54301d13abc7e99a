// Package main is the entry point for quotekeeper.
package main

import (
	"context"
	"os"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotekeeper/internal/cli"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	opts := cli.DefaultOptions(handlers.NewBuildInfo(Version, Commit, BuildTime))

	os.Exit(cli.Execute(context.Background(), opts, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
