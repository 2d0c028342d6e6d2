package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService wraps the Gemini generative API behind a single Generate
// call. Upstream calls are bounded by a token bucket and a per-call timeout;
// everything that goes wrong upstream surfaces as a *GenerationError.
type GeminiService struct {
	client      *genai.Client
	model       *genai.GenerativeModel
	timeout     time.Duration
	typingDelay time.Duration
	rateChan    chan struct{} // Token bucket
}

func NewGeminiService(apiKey, modelName string, concurrentReqs, timeoutSecs, typingDelayMs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)

	// Token bucket bounding concurrent upstream requests
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:      client,
		model:       model,
		timeout:     time.Duration(timeoutSecs) * time.Second,
		typingDelay: time.Duration(typingDelayMs) * time.Millisecond,
		rateChan:    rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Generate sends the prompt to Gemini and returns the textual completion.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", &GenerationError{Err: err}
	}
	defer s.releaseRate()

	// Optional cosmetic delay before the upstream call.
	if s.typingDelay > 0 {
		select {
		case <-time.After(s.typingDelay):
		case <-ctx.Done():
			return "", &GenerationError{Err: ctx.Err()}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Err: fmt.Errorf("Gemini API error: %w", err)}
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := extractText(resp)
	if text == "" {
		return "", &GenerationError{Err: fmt.Errorf("Gemini returned an empty completion")}
	}

	return strings.TrimSpace(text), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
