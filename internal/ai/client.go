// Package ai calls a Gemini-compatible generateContent endpoint to turn
// decision lists into short natural-language summaries and suggestions.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/domain/contract"
	"github.com/diegoclair/slack-decision-bot/internal/domain/entity"
)

type client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New builds an AI client. Returns nil when no API key is configured so
// callers can treat the feature as disabled.
func New(apiKey, model, baseURL string) contract.AISummarizer {
	if apiKey == "" {
		return nil
	}
	return &client{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) SummarizeDecisions(ctx context.Context, decisions []*entity.Decision) (string, error) {
	prompt := "You are a helpful assistant for a team that tracks group decisions in Slack.\n" +
		"Summarize the following decisions in a few short sentences. Mention how many " +
		"are approved, rejected and still pending, and call out anything notable.\n\n" +
		formatDecisions(decisions)
	return c.generate(ctx, prompt)
}

func (c *client) SuggestNextSteps(ctx context.Context, decisions []*entity.Decision) (string, error) {
	prompt := "You are a helpful assistant for a team that tracks group decisions in Slack.\n" +
		"Based on the following decisions, suggest 2-3 concrete next steps for the team. " +
		"Keep it short and actionable.\n\n" +
		formatDecisions(decisions)
	return c.generate(ctx, prompt)
}

func (c *client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ai request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build ai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai request failed: %w", err)
	}
	defer resp.Body.Close()

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode ai response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("ai api error %d: %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("ai response contained no candidates")
	}

	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}

func formatDecisions(decisions []*entity.Decision) string {
	var b strings.Builder
	for _, d := range decisions {
		fmt.Fprintf(&b, "- #%d [%s] %q (approvals: %d, rejections: %d, proposed by %s on %s)\n",
			d.ID, d.Status, d.Text, d.ApprovalCount, d.RejectionCount,
			d.ProposerName, d.CreatedAt.Format("2006-01-02"))
	}
	return b.String()
}
