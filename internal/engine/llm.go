package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
func CallLLM(ctx context.Context, system, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", fmt.Errorf("llm: no client configured")
	}
	key := CacheKey("llm", system, prompt)
	if data, ok := CacheGet(ctx, key); ok {
		return string(data), nil
	}
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, system, prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	out := stripFences(resp)
	CacheSet(ctx, key, []byte(out))
	return out, nil
}

// CallLLMTuned sends a prompt overriding temperature and max_tokens for
// this call only.
func CallLLMTuned(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error) {
	if cfg.LLMClient == nil {
		return "", fmt.Errorf("llm: no client configured")
	}
	key := CacheKey("llm", system, prompt, fmt.Sprintf("%g|%d", temperature, maxTokens))
	if data, ok := CacheGet(ctx, key); ok {
		return string(data), nil
	}
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, system, prompt,
		llm.WithChatTemperature(temperature),
		llm.WithChatMaxTokens(maxTokens),
	)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	out := stripFences(resp)
	CacheSet(ctx, key, []byte(out))
	return out, nil
}

// CallLLMJSON sends a prompt and parses the fenced-stripped response as JSON
// into T. Parse failures carry a truncated copy of the raw payload.
func CallLLMJSON[T any](ctx context.Context, system, prompt string, temperature float64, maxTokens int) (*T, string, error) {
	raw, err := CallLLMTuned(ctx, system, prompt, temperature, maxTokens)
	if err != nil {
		return nil, "", err
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, raw, fmt.Errorf("llm parse: %w (raw: %s)", err, TruncateRunes(raw, 200, "..."))
	}
	return &out, raw, nil
}
