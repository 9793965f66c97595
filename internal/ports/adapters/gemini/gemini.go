package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"segcut/internal/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	// The collaborator call is the only externally bounded wait in an
	// operation; encoder calls are never timed out.
	requestTimeout = 45 * time.Second

	// Inline uploads above this size are rejected by the API anyway, so the
	// limit is enforced before spending time on the request.
	maxInlinePayload = 20 << 20
)

type Adapter struct {
	key     string
	model   string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func New(apiKey, model, baseURL string) *Adapter {
	if model == "" {
		model = defaultModel
	}
	baseURL = normalizeBaseURL(baseURL)
	return &Adapter{
		key:     apiKey,
		model:   model,
		baseURL: baseURL,
		timeout: requestTimeout,
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

// FindTimestamps sends the video inline together with the instruction and
// returns the model's free-form answer text. Callers scrape timecodes out of
// the text themselves.
func (a *Adapter) FindTimestamps(ctx context.Context, videoPath, instruction string) (string, error) {
	vb, err := os.ReadFile(videoPath)
	if err != nil {
		return "", fmt.Errorf("read video: %w", err)
	}
	if len(vb) > maxInlinePayload {
		return "", fmt.Errorf("%w: %s is %d bytes, inline limit is %d; trim or downscale the source first",
			ports.ErrPayloadTooLarge, filepath.Base(videoPath), len(vb), maxInlinePayload)
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{
						"inline_data": map[string]any{
							"mime_type": mimeFromExt(videoPath),
							"data":      base64.StdEncoding.EncodeToString(vb),
						},
					},
					{"text": instruction},
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", a.baseURL, a.model)

	reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.key)

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: no answer within %s (model=%s); retry with a shorter video",
				ports.ErrCollaboratorTimeout, a.timeout, a.model)
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(resp.Body)
		diag := truncate(redactSecrets(string(rb), a.key), 400)
		if resp.StatusCode == http.StatusRequestEntityTooLarge {
			return "", fmt.Errorf("%w: status %d: %s; trim or downscale the source first",
				ports.ErrPayloadTooLarge, resp.StatusCode, diag)
		}
		return "", fmt.Errorf("%w: status %d: %s", ports.ErrCollaboratorRejected, resp.StatusCode, diag)
	}

	var raw struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ports.ErrCollaboratorRejected, err)
	}
	if len(raw.Candidates) == 0 {
		return "", fmt.Errorf("%w: response carried no candidates", ports.ErrCollaboratorRejected)
	}

	var b strings.Builder
	for _, p := range raw.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("%w: response carried no text", ports.ErrCollaboratorRejected)
	}
	return text, nil
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

func mimeFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".mkv":
		return "video/x-matroska"
	case ".avi":
		return "video/x-msvideo"
	default:
		return "video/mp4"
	}
}

func redactSecrets(s, apiKey string) string {
	if s == "" || apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, apiKey, "[REDACTED]")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
