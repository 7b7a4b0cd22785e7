package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/petal-labs/easel/core"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags "-X github.com/petal-labs/easel/cli/commands.Version=v1.0.0"
var (
	// Version is the semantic version of the CLI.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

type versionInfo struct {
	Version      string `json:"version"`
	Commit       string `json:"commit"`
	BuildDate    string `json:"buildDate"`
	GoVersion    string `json:"goVersion"`
	Platform     string `json:"platform"`
	DefaultModel string `json:"defaultModel"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Version:      Version,
		Commit:       Commit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		DefaultModel: string(core.DefaultModel),
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, build date, Go runtime and the default image model.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := currentVersion()
			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(v)
			}

			fmt.Fprintf(a.stdout, "easel %s\n", v.Version)
			fmt.Fprintf(a.stdout, "  commit:     %s\n", v.Commit)
			fmt.Fprintf(a.stdout, "  built:      %s\n", v.BuildDate)
			fmt.Fprintf(a.stdout, "  go version: %s\n", v.GoVersion)
			fmt.Fprintf(a.stdout, "  platform:   %s\n", v.Platform)
			fmt.Fprintf(a.stdout, "  model:      %s\n", v.DefaultModel)
			return nil
		},
	}
}
