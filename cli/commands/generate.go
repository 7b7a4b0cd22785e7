package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/petal-labs/easel/core"
	"github.com/petal-labs/easel/internal/log"
	"github.com/petal-labs/easel/providers/openai"
)

func (a *App) newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Generate an image from a text prompt",
		Long: `Generate an image from a text prompt and save it to disk.

The selected style is appended to the prompt ("..., in the style of Anime")
unless it is Natural. The image is written as ai_masterpiece.<ext> in the
output directory.

Example:
  easel generate --prompt "a red bicycle" --style anime
  easel generate "a lighthouse at dusk" --size landscape --quality hd`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runGenerate,
	}

	cmd.Flags().StringVarP(&a.genPrompt, "prompt", "p", "", "text describing the image")
	cmd.Flags().StringVar(&a.genSize, "size", "", "canvas size: square, portrait, landscape")
	cmd.Flags().StringVar(&a.genQuality, "quality", "", "quality tier: standard, hd")
	cmd.Flags().StringVar(&a.genStyle, "style", "", "artistic style (see 'easel styles')")
	cmd.Flags().StringVarP(&a.genOutput, "output", "o", "", "output directory")
	cmd.Flags().IntVarP(&a.genCount, "count", "n", 1, "number of images to request")

	return cmd
}

// fetchBurst is how many downloads may start together under fetch_interval.
const fetchBurst = 2

// generateResult is the --json output for one saved asset.
type generateResult struct {
	Path          string `json:"path"`
	URL           string `json:"url"`
	Format        string `json:"format"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Bytes         int    `json:"bytes"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

func (a *App) runGenerate(cmd *cobra.Command, args []string) error {
	prompt := a.genPrompt
	if prompt == "" {
		prompt = strings.Join(args, " ")
	}

	req, err := a.buildRequest(prompt)
	if err != nil {
		return failureExit(err)
	}
	if a.genCount < 1 {
		return failureExit(&core.Failure{Kind: core.FailureValidation, Message: core.ErrInvalidCount.Error(), Err: core.ErrInvalidCount})
	}

	if err := a.checkModel(req); err != nil {
		return failureExit(err)
	}

	provider, err := a.newProvider()
	if err != nil {
		return err
	}

	ctx := log.NewContext(cmd.Context(), a.logger)
	opts := []core.PipelineOption{
		core.WithModel(core.ModelID(a.model)),
		core.WithTelemetry(log.NewTelemetryHook(a.logger)),
	}
	if a.cfg.FetchInterval > 0 {
		opts = append(opts, core.WithFetchLimiter(rate.NewLimiter(rate.Every(a.cfg.FetchInterval), fetchBurst)))
	}
	pipeline := core.NewPipeline(provider, a.fetcher, opts...)

	var generated []*core.Asset
	if a.genCount == 1 {
		asset, err := pipeline.Generate(ctx, req)
		if err != nil {
			return failureExit(err)
		}
		generated = []*core.Asset{asset}
	} else {
		generated, err = pipeline.GenerateBatch(ctx, req, a.genCount)
		if err != nil {
			return failureExit(err)
		}
	}

	dir := lo.Ternary(a.genOutput != "", a.genOutput, a.cfg.Defaults.Output)
	paths, err := saveAssets(dir, generated)
	if err != nil {
		return exitWithCode(ExitValidation, fmt.Errorf("failed to save image: %w", err))
	}

	results := lo.Map(generated, func(asset *core.Asset, i int) generateResult {
		return generateResult{
			Path:          paths[i],
			URL:           asset.ImageRef,
			Format:        asset.Format,
			Width:         asset.Width,
			Height:        asset.Height,
			Bytes:         len(asset.Data),
			RevisedPrompt: asset.RevisedPrompt,
		}
	})

	if a.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"prompt": req.Prompt(),
			"images": results,
		})
	}

	for _, r := range results {
		fmt.Fprintf(a.stdout, "Saved %s (%s %dx%d, %d bytes)\n", r.Path, r.Format, r.Width, r.Height, r.Bytes)
		if r.RevisedPrompt != "" {
			fmt.Fprintf(a.stdout, "  revised prompt: %s\n", r.RevisedPrompt)
		}
	}
	return nil
}

// buildRequest parses the option flags, falling back to config defaults.
func (a *App) buildRequest(prompt string) (core.GenerationRequest, error) {
	d := a.cfg.Defaults

	size, err := core.ParseSize(lo.Ternary(a.genSize != "", a.genSize, d.Size))
	if err != nil {
		return core.GenerationRequest{}, err
	}
	quality, err := core.ParseQuality(lo.Ternary(a.genQuality != "", a.genQuality, d.Quality))
	if err != nil {
		return core.GenerationRequest{}, err
	}
	style, err := core.ParseStyle(lo.Ternary(a.genStyle != "", a.genStyle, d.Style))
	if err != nil {
		return core.GenerationRequest{}, err
	}

	return core.Build(prompt, size, quality, style)
}

// checkModel rejects options a known model cannot serve before any network
// call. Unknown models and other providers are left to the provider.
func (a *App) checkModel(req core.GenerationRequest) error {
	if a.provider != openai.ProviderID {
		return nil
	}
	info := openai.GetModelInfo(core.ModelID(a.model))
	if info == nil {
		return nil
	}
	return info.Check(req.Size().Dimensions(), req.Quality(), a.genCount)
}

// saveAssets writes each asset's download artifact into dir. Batches get a
// numeric suffix: ai_masterpiece_1.png, ai_masterpiece_2.png.
func saveAssets(dir string, generated []*core.Asset) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(generated))
	for i, asset := range generated {
		dl := asset.Download()
		name := dl.Filename
		if len(generated) > 1 {
			ext := filepath.Ext(name)
			name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), i+1, ext)
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, dl.Data, 0644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
