package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

const upstreamRecallBody = `{
	"Count": 1,
	"results": [
		{
			"NHTSACampaignNumber": "19V182000",
			"Manufacturer": "Honda",
			"Component": "AIR BAGS",
			"Summary": "Inflator may rupture.",
			"ModelYear": "2019",
			"parkIt": "No",
			"parkOutSide": "No"
		}
	]
}`

// newTestHandler builds a router backed by a fake upstream registry.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recallsByVehicle":
			if r.URL.Query().Get("make") == "Honda" {
				io.WriteString(w, upstreamRecallBody)
				return
			}
			io.WriteString(w, `{"Count": 0, "results": []}`)
		case "/campaignNumber":
			if r.URL.Query().Get("campaignNumber") == "19V182000" {
				io.WriteString(w, upstreamRecallBody)
				return
			}
			io.WriteString(w, `{"Count": 0, "results": []}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	client := recall.NewWithOptions(recall.Options{
		BaseURL: upstream.URL,
		Logger:  log.New(io.Discard),
	})
	return newRouter(client, log.New(io.Discard))
}

func TestRouterHealthz(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRouterRecalls(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recalls?make=Honda&model=Civic", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Count   int              `json:"count"`
		Results []*recall.Record `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 1 || len(body.Results) != 1 {
		t.Fatalf("count = %d, results = %d, want 1/1", body.Count, len(body.Results))
	}
	if body.Results[0].CampaignNumber != "19V182000" {
		t.Errorf("CampaignNumber = %q", body.Results[0].CampaignNumber)
	}
}

func TestRouterRecallsMissingParams(t *testing.T) {
	handler := newTestHandler(t)

	for _, target := range []string{"/v1/recalls", "/v1/recalls?make=Honda", "/v1/recalls?model=Civic"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "INVALID_INPUT") {
			t.Errorf("%s: body = %s, want INVALID_INPUT code", target, rec.Body.String())
		}
	}
}

func TestRouterCampaign(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/19V182000", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var record recall.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if record.Component != "AIR BAGS" {
		t.Errorf("Component = %q", record.Component)
	}
}

func TestRouterCampaignNotFound(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/99X999999", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "CAMPAIGN_NOT_FOUND") {
		t.Errorf("body = %s, want CAMPAIGN_NOT_FOUND code", rec.Body.String())
	}
}

func TestRouterRequestID(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}
