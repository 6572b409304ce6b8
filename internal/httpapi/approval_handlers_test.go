package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadboard-engine/internal/approval"
	"leadboard-engine/internal/domain"
	"leadboard-engine/internal/sheet"
)

func newApprovalHandler(sinkURL string, entries []domain.MessageEntry) ApprovalHandler {
	load := func(ctx context.Context) ([]domain.MessageEntry, sheet.MessageColumns, error) {
		return entries, sheet.MessageColumns{Approval: 5}, nil
	}
	return ApprovalHandler{
		Updater: &approval.Updater{
			LoadMessages: load,
			SinkURL:      func() string { return sinkURL },
			DocumentID:   "doc",
			TabName:      "Messages",
		},
		LoadMessages: load,
	}
}

func postApproval(t *testing.T, h ApprovalHandler, body string) (*httptest.ResponseRecorder, approvalResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/approval", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	var resp approvalResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not json: %v (%s)", err, rr.Body.String())
	}
	return rr, resp
}

func TestApprovalUpdate_TargetSent_Returns400(t *testing.T) {
	h := newApprovalHandler("http://sink.invalid", nil)

	rr, resp := postApproval(t, h, `{"ordinal":1,"targetState":"sent"}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
	if resp.Success {
		t.Error("success must be false")
	}
}

func TestApprovalUpdate_SinkUnconfigured_Returns503WithClearMessage(t *testing.T) {
	h := newApprovalHandler("", nil)

	rr, resp := postApproval(t, h, `{"ordinal":1,"targetState":"rejected"}`)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", rr.Code)
	}
	if resp.Error != "sink_not_configured" {
		t.Errorf("error: got %q, want sink_not_configured", resp.Error)
	}
}

func TestApprovalUpdate_HappyPath_ReportsSuccess(t *testing.T) {
	// Arrange
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(sink.Close)
	entries := []domain.MessageEntry{{Ordinal: 1, Row: 2, FirstName: "Jane", State: domain.StatePending}}
	h := newApprovalHandler(sink.URL, entries)

	// Act
	rr, resp := postApproval(t, h, `{"ordinal":1,"targetState":"rejected","firstName":"Jane"}`)

	// Assert
	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if !resp.Success {
		t.Errorf("success: got false, body=%s", rr.Body.String())
	}
}

func TestApprovalUpdate_RowGone_Returns409(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("sink must not be reached when the row is gone")
	}))
	t.Cleanup(sink.Close)
	h := newApprovalHandler(sink.URL, nil) // fresh fetch finds zero rows

	rr, resp := postApproval(t, h, `{"ordinal":7,"targetState":"rejected"}`)

	if rr.Code != http.StatusConflict {
		t.Errorf("status: got %d, want 409", rr.Code)
	}
	if resp.Error != "row_not_found" {
		t.Errorf("error: got %q, want row_not_found", resp.Error)
	}
}

func TestMessagesList_FetchFailure_IsEmptyQueueNotError(t *testing.T) {
	h := newApprovalHandler("", nil)
	h.LoadMessages = func(ctx context.Context) ([]domain.MessageEntry, sheet.MessageColumns, error) {
		return nil, sheet.MessageColumns{}, context.DeadlineExceeded
	}

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"messages":[]`) {
		t.Errorf("body: got %s, want empty messages list", rr.Body.String())
	}
}
