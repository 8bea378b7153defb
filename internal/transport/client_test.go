package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
)

func TestBearerAuth_Apply(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	(&BearerAuth{}).Apply(req, "secret-token")

	if got := req.Header.Get("Authorization"); got != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want Bearer secret-token", got)
	}
}

func TestHeaderAuth_Apply(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	(&HeaderAuth{Header: "X-Api-Key"}).Apply(req, "secret-token")

	if got := req.Header.Get("X-Api-Key"); got != "secret-token" {
		t.Errorf("X-Api-Key = %q, want secret-token", got)
	}
}

func TestClient_DoJSON_AppliesAuthAndHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "token123")

	var target struct {
		OK bool `json:"ok"`
	}
	err := client.DoJSON(context.Background(), http.MethodPost, server.URL, map[string]string{"a": "b"}, &target)
	if err != nil {
		t.Fatalf("DoJSON() failed: %v", err)
	}

	if gotAuth != "Bearer token123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if !target.OK {
		t.Error("response body not decoded")
	}
}

func TestClient_DoJSON_MapsStatusToAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "variable not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "token")
	err := client.DoJSON(context.Background(), http.MethodDelete, server.URL, nil, nil)
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}

	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *errors.APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if !apperrors.IsNotFound(err) {
		t.Error("404 response should classify as not found")
	}
}

func TestClient_DoJSON_EmptyBodyOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	var target map[string]string
	if err := client.DoJSON(context.Background(), http.MethodGet, server.URL, nil, &target); err != nil {
		t.Fatalf("DoJSON() failed on empty body: %v", err)
	}
}

func TestClient_DoJSON_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(&NoAuth{}, "")
	err := client.DoJSON(ctx, http.MethodGet, server.URL, nil, nil)
	if !errors.Is(err, apperrors.ErrCanceled) {
		t.Errorf("expected ErrCanceled, got %v", err)
	}
}

func TestClient_DoJSON_DeadlineExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	client := New(&NoAuth{}, "")
	err := client.DoJSON(ctx, http.MethodGet, server.URL, nil, nil)
	if !errors.Is(err, apperrors.ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}
