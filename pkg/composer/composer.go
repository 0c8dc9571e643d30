package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pdf-evidence-be/pkg/processing"
)

// ErrEmptySelection is returned when composition is requested with nothing
// selected. No network call is made in that case.
var ErrEmptySelection = errors.New("composer: no evidence selected")

// GenerationAPI is the single call the composer issues.
type GenerationAPI interface {
	GenerateEssay(ctx context.Context, req processing.EssayGenerationRequest) (*processing.EssayStructure, error)
}

// Source is one selected evidence item with its attribution.
type Source struct {
	DocumentName string
	RawText      string
}

// Request carries the caller-supplied generation parameters.
type Request struct {
	Topic            string
	WordCount        int
	IncludeCitations bool
}

// Composer combines the selected evidence into one generation request. It
// does not coalesce concurrent requests; callers disable the trigger while a
// request is outstanding.
type Composer struct {
	api GenerationAPI
}

func New(api GenerationAPI) *Composer {
	return &Composer{api: api}
}

// Compose fails fast on an empty selection, otherwise concatenates the
// selected items (with source attribution) into one context blob and issues a
// single generation call. On failure the caller's stored result is left
// untouched; only a successful response is returned.
func (c *Composer) Compose(ctx context.Context, sources []Source, req Request) (*processing.EssayStructure, error) {
	if len(sources) == 0 {
		return nil, ErrEmptySelection
	}

	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		parts = append(parts, fmt.Sprintf("[Source: %s]\n%s", s.DocumentName, s.RawText))
	}

	structure, err := c.api.GenerateEssay(ctx, processing.EssayGenerationRequest{
		Context:          strings.Join(parts, "\n\n"),
		Topic:            req.Topic,
		WordCount:        req.WordCount,
		IncludeCitations: req.IncludeCitations,
	})
	if err != nil {
		return nil, err
	}
	return structure, nil
}
