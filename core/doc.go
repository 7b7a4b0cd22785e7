// Package core implements the request-to-asset pipeline.
//
// A caller first normalizes user input with [Build], which validates the
// prompt and appends the selected [Style]:
//
//	req, err := core.Build("a red bicycle", core.SizeSquare, core.QualityStandard, core.StyleAnime)
//	// req.Prompt() == "a red bicycle, in the style of Anime"
//
// A [Pipeline] then submits the request to an [ImageProvider], downloads
// the returned reference through a [Fetcher] and decodes the bytes:
//
//	p := core.NewPipeline(openai.New(key), assets.NewHTTPFetcher())
//	asset, err := p.Generate(ctx, req)
//
// # Errors
//
// Every error returned by Build and Pipeline is a [*Failure] whose Kind
// names the stage that failed:
//
//	if f, ok := core.AsFailure(err); ok && f.Kind == core.FailureProvider {
//	    // the provider rejected the request
//	}
//
// Provider errors also wrap the sentinels in this package, so
// errors.Is(err, core.ErrRateLimited) works across the Failure.
package core
