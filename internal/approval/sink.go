package approval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SinkClient posts cell mutations to the external script endpoint. The
// endpoint is an opaque HTTP sink; all we contract on is the request body
// shape and a loose reading of its responses.
type SinkClient struct {
	URL string
	hc  *http.Client
}

func NewSinkClient(url string) *SinkClient {
	return &SinkClient{
		URL: url,
		hc:  &http.Client{Timeout: 20 * time.Second},
	}
}

// WriteRequest is one cell mutation plus echoed identity fields for the
// sink's audit trail.
type WriteRequest struct {
	Action     string `json:"action"`
	DocumentID string `json:"documentId"`
	TabName    string `json:"tabName"`
	Row        int    `json:"row"`
	Column     int    `json:"column"`
	Value      string `json:"value"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	PostURL    string `json:"postUrl"`
}

type sinkResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Write issues the mutation and interprets the response: non-2xx is a hard
// failure; a 2xx JSON body with an explicit failure flag is a hard failure; a
// 2xx body that isn't JSON passes only if it carries no error-like tokens
// (script hosts are fond of answering 200 with an HTML error page).
func (s *SinkClient) Write(ctx context.Context, wr WriteRequest) error {
	body, err := json.Marshal(wr)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.hc.Do(req)
	if err != nil {
		return fmt.Errorf("sink post: %w", err)
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("sink status %d: %s", res.StatusCode, firstLine(raw))
	}

	var sr sinkResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		low := strings.ToLower(string(raw))
		for _, tok := range []string{"error", "exception", "<html"} {
			if strings.Contains(low, tok) {
				return fmt.Errorf("sink replied 2xx but body looks like a failure: %s", firstLine(raw))
			}
		}
		return nil
	}

	if sr.Success != nil && !*sr.Success {
		msg := sr.Error
		if msg == "" {
			msg = sr.Message
		}
		if msg == "" {
			msg = "sink reported failure"
		}
		return fmt.Errorf("sink: %s", msg)
	}
	if sr.Success == nil && sr.Error != "" {
		return fmt.Errorf("sink: %s", sr.Error)
	}
	return nil
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
