package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/petal-labs/easel/core"
	"github.com/petal-labs/easel/providers/openai"
)

func (a *App) newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List styles, sizes and quality tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(map[string]any{
					"styles": core.Styles(),
					"sizes": lo.Map(core.Sizes(), func(s core.Size, _ int) map[string]string {
						return map[string]string{"name": string(s), "dimensions": s.Dimensions()}
					}),
					"qualities": core.Qualities(),
					"models": lo.Map(openai.Models(), func(m openai.ModelInfo, _ int) map[string]any {
						return map[string]any{
							"id":         m.ID,
							"name":       m.DisplayName,
							"sizes":      m.Sizes,
							"qualities":  m.Qualities,
							"max_images": m.MaxImages,
						}
					}),
				})
			}

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Styles:")
			for _, s := range core.Styles() {
				fmt.Fprintf(w, "  %s\t%s\n", s, lo.Ternary(s.IsNatural(), "(default, prompt unchanged)", ""))
			}
			fmt.Fprintln(w, "Sizes:")
			for _, s := range core.Sizes() {
				fmt.Fprintf(w, "  %s\t%s\n", s, s.Label())
			}
			fmt.Fprintln(w, "Qualities:")
			for _, q := range core.Qualities() {
				fmt.Fprintf(w, "  %s\t\n", q)
			}
			fmt.Fprintln(w, "Models (openai):")
			for _, m := range openai.Models() {
				fmt.Fprintf(w, "  %s\t%s, sizes %s, up to %d per request\n",
					m.ID, m.DisplayName, strings.Join(m.Sizes, " "), m.MaxImages)
			}
			return w.Flush()
		},
	}
}
