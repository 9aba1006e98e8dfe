package llm

import (
	"context"
	"errors"
)

type StubGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

var _ Generator = (*StubGenerator)(nil)

func (s *StubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if s.GenerateFunc == nil {
		return "", errors.New("Generate() not implemented by stub")
	}
	return s.GenerateFunc(ctx, prompt)
}
