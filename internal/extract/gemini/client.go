package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/entity"
	"github.com/hundredplus/onboard-tracker/internal/extract"
)

// ExtractFields implements extract.FieldExtractor against generateContent.
// Binary payloads go out as inlineData plus the instruction prompt; text
// payloads inline the extracted text into the prompt. The response is
// validated locally against the fixed schema before it is returned, so a
// non-conformant body never yields a partially-populated result.
func (c *Client) ExtractFields(ctx context.Context, doc entity.IngestedDocument) (extract.EmployeeFields, []byte, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return extract.EmployeeFields{}, nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", common.ErrServiceUnavailable)
	}

	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"file", doc.FileName,
		"format", doc.Format,
		"payload", doc.Payload,
	)

	schema := extract.BuildEmployeeSchema()
	prompt := extract.BuildInstructionPrompt()

	var parts []map[string]any
	if doc.Payload == entity.PayloadBinary {
		parts = []map[string]any{
			{"inlineData": map[string]any{"mimeType": doc.MIMEType, "data": doc.Data}},
			{"text": prompt},
		}
	} else {
		parts = []map[string]any{
			{"text": prompt + "\n\nDocument text:\n" + doc.Text},
		}
	}

	body := map[string]any{
		"contents": []map[string]any{{"parts": parts}},
		"generationConfig": map[string]any{
			"temperature":      c.cfg.Temperature,
			"responseMimeType": "application/json",
			"responseSchema":   toResponseSchema(schema),
		},
	}

	raw, err := c.post(ctx, c.cfg.Model, body)
	if err != nil {
		c.log.Error("extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.EmployeeFields{}, nil, err
	}

	content, err := candidateText(raw)
	if err != nil {
		c.log.Error("extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.EmployeeFields{}, raw, fmt.Errorf("%w: %v", common.ErrSchemaViolation, err)
	}
	rawContent := []byte(strings.TrimSpace(content))

	if err := extract.ValidateAgainstSchema(schema, rawContent); err != nil {
		c.log.Error("extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.EmployeeFields{}, rawContent, fmt.Errorf("%w: %v", common.ErrSchemaViolation, err)
	}

	var out extract.EmployeeFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.EmployeeFields{}, rawContent, fmt.Errorf("%w: unmarshal fields: %v", common.ErrSchemaViolation, err)
	}

	c.log.Info("extract.ok",
		"req_id", rid,
		"name", out.Name,
		"department", out.Department,
		"education_entries", len(out.Education),
		"employment_entries", len(out.Employment),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

// QueryInsights implements extract.InsightsQuerier. At most the first 50
// records are sent as context.
func (c *Client) QueryInsights(ctx context.Context, question string, roster []entity.Employee) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is not set", common.ErrServiceUnavailable)
	}
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question is empty", common.ErrInvalidInput)
	}

	sample := roster
	if len(sample) > 50 {
		sample = sample[:50]
	}
	rosterJSON, err := json.Marshal(sample)
	if err != nil {
		return "", fmt.Errorf("marshal roster: %w", err)
	}

	body := map[string]any{
		"contents": []map[string]any{{"parts": []map[string]any{
			{"text": extract.BuildInsightsPrompt(question, string(rosterJSON))},
		}}},
	}

	raw, err := c.post(ctx, c.cfg.Model, body)
	if err != nil {
		return "", err
	}
	answer, err := candidateText(raw)
	if err != nil {
		return "", fmt.Errorf("insights response: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func (c *Client) post(ctx context.Context, model string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("gemini response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("%w: read response: %v", common.ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: gemini status %d: %s", common.ErrNetwork, resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

// candidateText pulls the first candidate's text part out of a
// generateContent response.
func candidateText(raw []byte) (string, error) {
	var gr struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
