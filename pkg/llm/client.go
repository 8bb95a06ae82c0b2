package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// GeminiAPIEndpoint is the Google Generative Language API base URL.
	GeminiAPIEndpoint = "https://generativelanguage.googleapis.com"
	// GeminiModel is the default model to use.
	GeminiModel = "gemini-2.0-flash"
)

// Client represents a Gemini API client. Calls are synchronous and unary:
// one prompt per request, no batching, no retries.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a new Gemini API client.
func NewClient(apiKey, model string) (client *Client) {
	if model == "" {
		model = GeminiModel
	}
	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: GeminiAPIEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// EnhanceSummary generates a 2-3 sentence professional summary.
func (c *Client) EnhanceSummary(ctx context.Context, name, jobTitle, keySkills string) (summary string, err error) {
	prompt := buildSummaryPrompt(name, jobTitle, keySkills)

	var responseText string
	responseText, err = c.GenerateText(ctx, prompt)
	if err != nil {
		err = errors.Wrap(err, "summary enhancement request failed")
		return summary, err
	}

	summary = strings.TrimSpace(stripMarkdownCodeFences(responseText))

	return summary, err
}

// EnhanceExperience rewrites a job description into resume bullet points.
func (c *Client) EnhanceExperience(ctx context.Context, title, company, basicDescription string) (points []string, err error) {
	prompt := buildExperiencePrompt(title, company, basicDescription)

	var responseText string
	responseText, err = c.GenerateText(ctx, prompt)
	if err != nil {
		err = errors.Wrap(err, "experience enhancement request failed")
		return points, err
	}

	points = splitBulletLines(stripMarkdownCodeFences(responseText))

	return points, err
}

// EnhanceProject rewrites a project description into resume bullet points.
func (c *Client) EnhanceProject(ctx context.Context, projectName, technologies, basicDescription string) (points []string, err error) {
	prompt := buildProjectPrompt(projectName, technologies, basicDescription)

	var responseText string
	responseText, err = c.GenerateText(ctx, prompt)
	if err != nil {
		err = errors.Wrap(err, "project enhancement request failed")
		return points, err
	}

	points = splitBulletLines(stripMarkdownCodeFences(responseText))

	return points, err
}

// CleanupSkills normalizes a comma-separated skill list for ATS matching.
func (c *Client) CleanupSkills(ctx context.Context, category, skills string) (cleaned string, err error) {
	prompt := buildSkillsPrompt(category, skills)

	var responseText string
	responseText, err = c.GenerateText(ctx, prompt)
	if err != nil {
		err = errors.Wrap(err, "skills cleanup request failed")
		return cleaned, err
	}

	cleaned = strings.TrimSpace(stripMarkdownCodeFences(responseText))

	return cleaned, err
}

// GenerateText sends one prompt to the generateContent endpoint and returns
// the first candidate's text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (responseText string, err error) {
	if c.apiKey == "" {
		err = errors.New("no API key configured")
		return responseText, err
	}

	geminiReq := GeminiRequest{
		Contents: []GeminiContent{
			{
				Parts: []GeminiPart{
					{Text: prompt},
				},
			},
		},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(geminiReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	requestURL := c.endpoint + "/v1beta/models/" + c.model + ":generateContent?key=" + url.QueryEscape(c.apiKey)

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
		return responseText, err
	}

	var geminiResp GeminiResponse
	err = json.Unmarshal(respBody, &geminiResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse Gemini response: %s", string(respBody))
		return responseText, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		err = errors.New("no content in Gemini response")
		return responseText, err
	}

	responseText = geminiResp.Candidates[0].Content.Parts[0].Text

	return responseText, err
}

// stripMarkdownCodeFences removes a wrapping markdown code fence, with or
// without a language tag, from a model response.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = text

	trimmed := strings.TrimSpace(cleaned)
	if !strings.HasPrefix(trimmed, "```") {
		return cleaned
	}

	// Drop the opening fence line (``` or ```lang).
	start := strings.IndexByte(trimmed, '\n')
	if start == -1 {
		return cleaned
	}
	body := trimmed[start+1:]

	// Drop the closing fence.
	end := strings.LastIndex(body, "```")
	if end == -1 {
		return cleaned
	}
	body = body[:end]

	cleaned = strings.TrimRight(body, " \r\n")

	return cleaned
}

// splitBulletLines splits model output into one entry per non-blank line.
func splitBulletLines(text string) (lines []string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
