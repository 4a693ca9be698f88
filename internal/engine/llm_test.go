package engine

import (
	"context"
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "json fence",
			raw:  "```json\n{\"skills\": []}\n```",
			want: `{"skills": []}`,
		},
		{
			name: "bare fence",
			raw:  "```\nPython, Go\n```",
			want: "Python, Go",
		},
		{
			name: "no fence",
			raw:  "Python, Go",
			want: "Python, Go",
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n{\"ok\": true}\n  ",
			want: `{"ok": true}`,
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.raw); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCallLLMNoClient(t *testing.T) {
	Init(Config{})

	if _, err := CallLLM(context.Background(), "system", "prompt"); err == nil {
		t.Fatal("CallLLM without a client should fail")
	}
	if _, err := CallLLMTuned(context.Background(), "system", "prompt", 0.5, 100); err == nil {
		t.Fatal("CallLLMTuned without a client should fail")
	}
}

func TestCallLLMJSONNoClient(t *testing.T) {
	Init(Config{})

	_, _, err := CallLLMJSON[map[string]string](context.Background(), "system", "prompt", 0.5, 100)
	if err == nil {
		t.Fatal("CallLLMJSON without a client should fail")
	}
	if !strings.Contains(err.Error(), "no client") {
		t.Errorf("unexpected error: %v", err)
	}
}
