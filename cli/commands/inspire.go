package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/petal-labs/easel/core"
)

func (a *App) newInspireCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspire",
		Short: "Suggest a creative prompt",
		Long: `Print one of the built-in creative prompts.

The same --seed always picks the same prompt. Without --seed the current
time is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := a.inspireSeed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			prompt := core.Pick(seed, core.InspirationPrompts())
			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(map[string]any{"prompt": prompt, "seed": seed})
			}
			fmt.Fprintln(a.stdout, prompt)
			return nil
		},
	}

	cmd.Flags().Int64Var(&a.inspireSeed, "seed", 0, "seed for a reproducible pick")
	return cmd
}
