package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultModel is the image model used when none is configured.
const DefaultModel ModelID = "dall-e-3"

// ImageProvider submits generation requests to a hosted image model.
// Implementations SHOULD be safe for concurrent calls.
type ImageProvider interface {
	// ID returns the provider identifier (e.g., "openai").
	ID() string

	// GenerateImage requests req.N images and returns their references.
	GenerateImage(ctx context.Context, req *ImageGenerateRequest) (*ImageResponse, error)
}

// Fetcher retrieves the binary content behind an image reference.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, uri string) ([]byte, error)

// Fetch calls f(ctx, uri).
func (f FetcherFunc) Fetch(ctx context.Context, uri string) ([]byte, error) {
	return f(ctx, uri)
}

// Pipeline turns a GenerationRequest into a downloaded, decoded Asset.
// It holds no per-request state and is safe for concurrent use when its
// provider and fetcher are.
type Pipeline struct {
	provider  ImageProvider
	fetcher   Fetcher
	model     ModelID
	telemetry TelemetryHook
	limiter   *rate.Limiter
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithModel sets the image model sent to the provider.
func WithModel(m ModelID) PipelineOption {
	return func(p *Pipeline) {
		if m != "" {
			p.model = m
		}
	}
}

// WithTelemetry sets the telemetry hook for the pipeline.
func WithTelemetry(h TelemetryHook) PipelineOption {
	return func(p *Pipeline) {
		if h != nil {
			p.telemetry = h
		}
	}
}

// WithFetchLimiter throttles image downloads. Each fetch waits for a token,
// so batch downloads start no faster than the limiter allows.
func WithFetchLimiter(l *rate.Limiter) PipelineOption {
	return func(p *Pipeline) {
		p.limiter = l
	}
}

// NewPipeline creates a Pipeline from its collaborators.
func NewPipeline(provider ImageProvider, fetcher Fetcher, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		provider:  provider,
		fetcher:   fetcher,
		model:     DefaultModel,
		telemetry: NoopTelemetryHook{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Model returns the image model the pipeline requests.
func (p *Pipeline) Model() ModelID {
	return p.model
}

// Generate submits req for exactly one image, downloads it, and decodes it.
// A non-nil error is always a *Failure; nothing is retried.
func (p *Pipeline) Generate(ctx context.Context, req GenerationRequest) (*Asset, error) {
	assets, err := p.run(ctx, req, 1)
	if err != nil {
		return nil, err
	}
	return assets[0], nil
}

// GenerateBatch requests n images in a single provider call and downloads
// them concurrently. The first failure aborts the whole batch.
func (p *Pipeline) GenerateBatch(ctx context.Context, req GenerationRequest, n int) ([]*Asset, error) {
	return p.run(ctx, req, n)
}

func (p *Pipeline) run(ctx context.Context, req GenerationRequest, n int) (assets []*Asset, err error) {
	if req.IsZero() {
		return nil, &Failure{Kind: FailureValidation, Message: ErrEmptyPrompt.Error(), Err: ErrEmptyPrompt}
	}
	if n < 1 {
		return nil, &Failure{Kind: FailureValidation, Message: ErrInvalidCount.Error(), Err: ErrInvalidCount}
	}

	id := uuid.NewString()
	start := time.Now()
	stage := StageGenerate
	var providerID string

	defer func() {
		if r := recover(); r != nil {
			assets = nil
			err = &Failure{Kind: stageKind(stage), Message: fmt.Sprintf("panic during %s: %v", stage, r)}
		}

		total := 0
		for _, a := range assets {
			total += len(a.Data)
		}
		p.telemetry.OnRequestEnd(RequestEndEvent{
			ID:       id,
			Provider: providerID,
			Model:    p.model,
			Start:    start,
			End:      time.Now(),
			Bytes:    total,
			Stage:    stage,
			Err:      err,
		})
	}()

	providerID = p.provider.ID()
	p.telemetry.OnRequestStart(RequestStartEvent{
		ID:       id,
		Provider: providerID,
		Model:    p.model,
		Size:     req.Size(),
		Quality:  req.Quality(),
		Count:    n,
		Start:    start,
	})

	images, err := p.submit(ctx, req, n)
	if err != nil {
		return nil, err
	}

	stage = StageFetch
	blobs, err := p.fetchAll(ctx, images)
	if err != nil {
		return nil, err
	}

	stage = StageDecode
	assets = make([]*Asset, len(images))
	for i, img := range images {
		a, err := decodeAsset(img.URL, blobs[i])
		if err != nil {
			return nil, newFailure(FailureDecode, err)
		}
		a.RevisedPrompt = img.RevisedPrompt
		assets[i] = a
	}
	return assets, nil
}

// submit performs the provider call and returns exactly n image references.
func (p *Pipeline) submit(ctx context.Context, req GenerationRequest, n int) ([]ImageData, error) {
	resp, err := p.provider.GenerateImage(ctx, &ImageGenerateRequest{
		Model:   p.model,
		Prompt:  req.Prompt(),
		N:       n,
		Size:    req.Size().Dimensions(),
		Quality: string(req.Quality()),
	})
	if err != nil {
		return nil, newFailure(FailureProvider, err)
	}
	if resp == nil || len(resp.Data) < n {
		return nil, newFailure(FailureProvider, ErrNoImage)
	}

	images := resp.Data[:n]
	for _, img := range images {
		if img.URL == "" {
			return nil, newFailure(FailureProvider, ErrNoImage)
		}
	}
	return images, nil
}

// fetchAll downloads every reference. A single reference is fetched on the
// caller's goroutine.
func (p *Pipeline) fetchAll(ctx context.Context, images []ImageData) ([][]byte, error) {
	blobs := make([][]byte, len(images))
	if len(images) == 1 {
		data, err := p.fetch(ctx, images[0].URL)
		if err != nil {
			return nil, err
		}
		blobs[0] = data
		return blobs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range images {
		i, uri := i, img.URL
		g.Go(func() error {
			data, err := p.fetch(gctx, uri)
			if err != nil {
				return err
			}
			blobs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blobs, nil
}

func (p *Pipeline) fetch(ctx context.Context, uri string) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = &Failure{Kind: FailureTransport, Message: fmt.Sprintf("panic during fetch: %v", r)}
		}
	}()

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, newFailure(FailureTransport, err)
		}
	}

	data, err = p.fetcher.Fetch(ctx, uri)
	if err != nil {
		return nil, newFailure(FailureTransport, err)
	}
	return data, nil
}

func stageKind(s Stage) FailureKind {
	switch s {
	case StageFetch:
		return FailureTransport
	case StageDecode:
		return FailureDecode
	default:
		return FailureProvider
	}
}
