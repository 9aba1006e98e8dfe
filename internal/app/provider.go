package app

import (
	"context"
	"fmt"

	"github.com/ferdiebergado/boring/internal/config"
	"github.com/ferdiebergado/boring/internal/platform/llm"
	"github.com/ferdiebergado/boring/internal/platform/markdown"
	"github.com/ferdiebergado/boring/internal/platform/router"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

type Provider struct {
	Validator validation.Validator
	Router    router.Router
	Renderer  markdown.Renderer
	// Generator is nil when no model is configured; /api/chat is then not
	// mounted.
	Generator llm.Generator
}

func newProvider(ctx context.Context, cfg *config.Options, geminiKey string) (*Provider, error) {
	provider := &Provider{
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Renderer:  markdown.NewGoldmarkRenderer(),
	}

	if geminiKey != "" {
		generator, err := llm.NewGeminiGenerator(ctx, geminiKey, cfg.LLM.Model)
		if err != nil {
			return nil, fmt.Errorf("new gemini generator: %w", err)
		}
		provider.Generator = generator
	}

	return provider, nil
}
