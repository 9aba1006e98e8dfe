package llm_test

import (
	"context"
	"testing"

	"github.com/ferdiebergado/boring/internal/platform/llm"
)

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := llm.NewGeminiGenerator(context.Background(), "", ""); err == nil {
		t.Error("llm.NewGeminiGenerator() with an empty key = nil, want: error")
	}
}

func TestNewGeminiGenerator(t *testing.T) {
	t.Parallel()

	g, err := llm.NewGeminiGenerator(context.Background(), "test-key", "")
	if err != nil {
		t.Fatalf("llm.NewGeminiGenerator() = %v", err)
	}
	if g == nil {
		t.Fatal("llm.NewGeminiGenerator() returned a nil generator")
	}
}
