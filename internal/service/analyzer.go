package service

import (
	"context"
	"strings"
	"time"

	"syllabus-analyzer/internal/domain"
	apperrors "syllabus-analyzer/pkg/errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAnalyzer sends the extracted syllabus text to the chat completions
// API and returns the model's formatted response. One request per analysis,
// no retries: a failed attempt is the end of that attempt, and the caller
// decides what to tell the user.
type OpenAIAnalyzer struct {
	client    *openai.Client
	logger    domain.Logger
	model     string
	maxTokens int
	timeout   time.Duration
	prompt    string
}

// NewOpenAIAnalyzer creates an analyzer from configuration. An OPENAI_BASE_URL
// override points the client at a compatible endpoint (OpenRouter, a local
// stub in tests).
func NewOpenAIAnalyzer(cfg domain.Config, logger domain.Logger) *OpenAIAnalyzer {
	clientCfg := openai.DefaultConfig(cfg.GetOpenAIKey())
	if baseURL := cfg.GetOpenAIBaseURL(); baseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	return &OpenAIAnalyzer{
		client:    openai.NewClientWithConfig(clientCfg),
		logger:    logger,
		model:     cfg.GetOpenAIModel(),
		maxTokens: cfg.GetAnalysisMaxTokens(),
		timeout:   time.Duration(cfg.GetAnalysisTimeoutSec()) * time.Second,
		prompt:    analysisPromptTemplate,
	}
}

// SetPromptTemplate replaces the instruction template. The document text is
// appended to whatever template is in effect.
func (a *OpenAIAnalyzer) SetPromptTemplate(template string) {
	a.prompt = template
}

// Analyze issues one completion request over the document text and returns
// the trimmed response. Every remote failure comes back as an analysis error
// with the cause attached; registry state is never touched from here.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: a.prompt + text,
			},
		},
	})
	if err != nil {
		a.logger.Error("Completion request failed", err, "model", a.model)
		return "", apperrors.NewAnalysisError("completion request failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewAnalysisError("completion returned no choices", nil)
	}

	analysis := strings.TrimSpace(resp.Choices[0].Message.Content)
	if analysis == "" {
		return "", apperrors.NewAnalysisError("completion returned empty content", nil)
	}

	a.logger.Info("Analysis generated",
		"model", a.model,
		"input_chars", len(text),
		"output_chars", len(analysis),
		"elapsed_ms", time.Since(start).Milliseconds())
	return analysis, nil
}
