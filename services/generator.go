package services

import "context"

// Generator produces message text from a prompt. Implementations wrap a
// concrete model client so callers (and tests) don't depend on one.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

type geminiGenerator struct {
	model string
}

func (g *geminiGenerator) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	return generateModelText(ctx, g.model, systemInstruction, prompt)
}
