package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswitch-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-pro"
)

var (
	ErrEmptyResponse = errors.New("generator returned no text")
	ErrUpstream      = errors.New("generator request failed")
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type GeminiClient struct {
	cfg Config
	log log.Log
}

// NewGeminiClient returns nil when no key is configured so callers can treat AI as unavailable.
func NewGeminiClient(cfg Config, logger log.Log) *GeminiClient {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &GeminiClient{cfg: cfg, log: logger}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timeout := c.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	agent := fiber.Post(url)
	agent.Set("x-goog-api-key", c.cfg.APIKey)
	agent.Timeout(timeout)
	agent.JSON(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err := agent.Parse(); err != nil {
		return "", err
	}

	start := time.Now()
	code, body, errs := agent.Bytes()
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		c.log.Slow("gateway/ai", "gemini generate", "Generate", elapsed.String())
	}
	if len(errs) > 0 {
		c.log.Error("gateway/ai", errs[0].Error(), "Generate", url)
		return "", fmt.Errorf("%w: %v", ErrUpstream, errs[0])
	}

	var res generateResponse
	if err := json.Unmarshal(body, &res); err != nil && code == fiber.StatusOK {
		return "", fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	if code != fiber.StatusOK {
		msg := fmt.Sprintf("status %d", code)
		if res.Error != nil {
			msg = fmt.Sprintf("status %d: %s", code, res.Error.Message)
		}
		c.log.Error("gateway/ai", msg, "Generate", url)
		return "", fmt.Errorf("%w: %s", ErrUpstream, msg)
	}

	var sb strings.Builder
	for _, cand := range res.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// StripCodeFence removes a surrounding ```json ... ``` block that models like to add.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
