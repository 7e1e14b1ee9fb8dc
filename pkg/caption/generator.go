package caption

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/umputun/captions/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// ErrInvalidInput returned for requests rejected before any caption is built
var ErrInvalidInput = errors.New("invalid input")

// variants limits
const (
	MinVariants = 1
	MaxVariants = 10
)

// Store persists generation records
type Store interface {
	CreateGeneration(ctx context.Context, gen *domain.Generation) (string, error)
}

// Result is the outcome of a generation request
type Result struct {
	Variants []string
	SavedID  string // empty if the record was not persisted
}

// GeneratorParams defines optional generator settings
type GeneratorParams struct {
	Chooser        Chooser       // prefix picker, RandomChoice by default
	PersistTimeout time.Duration // upper bound for the store call, no limit if zero
	Now            func() time.Time
}

// Generator produces caption variants and records them in the store
type Generator struct {
	assembler      *Assembler
	store          Store
	persistTimeout time.Duration
	now            func() time.Time
}

// NewGenerator makes a generator. Store can be nil, in this case nothing is persisted.
func NewGenerator(store Store, params GeneratorParams) *Generator {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Generator{
		assembler:      NewAssembler(params.Chooser),
		store:          store,
		persistTimeout: params.PersistTimeout,
		now:            now,
	}
}

// Generate builds req.Variants independent captions and tries to persist them.
// Only an empty topic or out-of-range variants count fail the call, store errors are logged and dropped.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (Result, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return Result{}, fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}
	if req.Variants < MinVariants || req.Variants > MaxVariants {
		return Result{}, fmt.Errorf("%w: variants must be between %d and %d, got %d",
			ErrInvalidInput, MinVariants, MaxVariants, req.Variants)
	}

	// surrounding spaces are ignored, so " witty" resolves to witty rather than the default tone
	tone := strings.ToLower(strings.TrimSpace(req.Tone))
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	length := strings.ToLower(strings.TrimSpace(req.Length))

	opts := Options{
		Topic:           topic,
		Tone:            domain.ParseTone(tone),
		Platform:        platform,
		Length:          domain.ParseLength(length),
		IncludeEmojis:   req.IncludeEmojis,
		IncludeHashtags: req.IncludeHashtags,
	}

	variants := make([]string, 0, req.Variants)
	for range req.Variants {
		variants = append(variants, g.assembler.Build(opts))
	}

	gen := &domain.Generation{
		Topic:           topic,
		Tone:            tone,
		Platform:        platform,
		Length:          length,
		IncludeEmojis:   req.IncludeEmojis,
		IncludeHashtags: req.IncludeHashtags,
		Variants:        variants,
		GeneratedAt:     g.now().UTC(),
	}

	return Result{Variants: variants, SavedID: g.persistBestEffort(ctx, gen)}, nil
}

// persistBestEffort stores the record and returns its id, empty on any store error.
// Errors are logged and discarded.
func (g *Generator) persistBestEffort(ctx context.Context, gen *domain.Generation) string {
	if g.store == nil {
		return ""
	}

	if g.persistTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.persistTimeout)
		defer cancel()
	}

	id, err := g.store.CreateGeneration(ctx, gen)
	if err != nil {
		log.Printf("[WARN] can't save generation for %q: %v", gen.Topic, err)
		return ""
	}
	log.Printf("[DEBUG] saved generation %s with %d variants", id, len(gen.Variants))
	return id
}
