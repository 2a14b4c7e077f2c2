package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dmforge/config"
)

// defaultAccomplishment stands in when the caller provides no recent news
// about the athlete.
const defaultAccomplishment = "No specific recent accomplishment provided — mention their general skill / reputation in the sport."

// generateTimeout bounds a single outbound completion call.
const generateTimeout = 60 * time.Second

var (
	dmGenerator Generator
	chunkDelay  = 50 * time.Millisecond
)

// InitDMService initializes the Gemini client and the DM generator from the
// loaded configuration. Must be called once before serving requests.
func InitDMService(cfg *config.Config) {
	client, err := initGemini(cfg.Gemini.ApiKey)
	if err != nil {
		panic("Failed to initialize Gemini client: " + err.Error())
	}
	geminiClient = client

	model := cfg.Gemini.Model
	if model == "" {
		model = defaultGeminiModel
	}
	dmGenerator = &geminiGenerator{model: model}

	if cfg.Stream.ChunkDelayMs > 0 {
		chunkDelay = time.Duration(cfg.Stream.ChunkDelayMs) * time.Millisecond
	}
}

// SetGenerator swaps the text generator. Tests use it to avoid network calls.
func SetGenerator(g Generator) {
	dmGenerator = g
}

// BuildPrompt interpolates the athlete name and accomplishment into the
// outreach prompt template. An empty accomplishment falls back to the default
// sentence so the model always has something to open with.
func BuildPrompt(athleteName, accomplishment string) string {
	if strings.TrimSpace(accomplishment) == "" {
		accomplishment = defaultAccomplishment
	}

	return fmt.Sprintf(`Athlete: %s

Recent accomplishment/news:
%s

Send a DM to %s inviting them for an interview.`, athleteName, accomplishment, athleteName)
}

// GenerateDM builds the prompt and asks the model for a complete direct
// message. The caller is expected to have validated athleteName already.
func GenerateDM(ctx context.Context, athleteName, accomplishment string) (string, error) {
	if dmGenerator == nil {
		return "", errors.New("DM service not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	prompt := BuildPrompt(athleteName, accomplishment)
	dm, err := dmGenerator.Generate(ctx, socialMediaManagerInstructions, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate DM: %w", err)
	}

	dm = strings.TrimSpace(dm)
	if dm == "" {
		return "", errors.New("model returned an empty message")
	}
	return dm, nil
}

// StreamDM generates the full message, then replays it word by word. The
// completion call finishes before the first chunk is sent; the pacing is
// purely presentational.
func StreamDM(ctx context.Context, athleteName, accomplishment string) (<-chan string, error) {
	dm, err := GenerateDM(ctx, athleteName, accomplishment)
	if err != nil {
		return nil, err
	}
	return EmitChunks(ctx, dm, chunkDelay), nil
}

// EmitChunks splits text on whitespace and sends one token at a time on the
// returned channel, each carrying a trailing space except the last. The
// channel closes after the final token or when ctx is canceled.
func EmitChunks(ctx context.Context, text string, delay time.Duration) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		words := strings.Fields(text)
		for i, word := range words {
			chunk := word
			if i < len(words)-1 {
				chunk += " "
			}

			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}

			if i < len(words)-1 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
