package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

type recordingDoer struct {
	requests []*http.Request
	bodies   []string
	status   int
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	body := ""
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}
	d.requests = append(d.requests, req)
	d.bodies = append(d.bodies, body)

	status := d.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader("{}")),
	}, nil
}

func TestRevalidatePostsSecretAndPaths(t *testing.T) {
	svc := NewHookService("https://frontend.mutant.tech/api/revalidate", "s3cret", "")
	doer := &recordingDoer{}
	svc.SetHTTPClient(doer)

	svc.Revalidate("/", "/blog")

	if len(doer.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(doer.requests))
	}

	req := doer.requests[0]
	if req.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", req.Method)
	}
	if req.URL.String() != "https://frontend.mutant.tech/api/revalidate" {
		t.Fatalf("unexpected endpoint: %s", req.URL)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}

	var payload struct {
		Secret string   `json:"secret"`
		Paths  []string `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doer.bodies[0]), &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if payload.Secret != "s3cret" {
		t.Fatalf("unexpected secret: %q", payload.Secret)
	}
	if len(payload.Paths) != 2 || payload.Paths[0] != "/" || payload.Paths[1] != "/blog" {
		t.Fatalf("unexpected paths: %v", payload.Paths)
	}
}

func TestRevalidateSkipsWhenUnconfigured(t *testing.T) {
	svc := NewHookService("", "secret", "")
	doer := &recordingDoer{}
	svc.SetHTTPClient(doer)

	svc.Revalidate("/")

	if len(doer.requests) != 0 {
		t.Fatalf("unconfigured hook must not call out, got %d requests", len(doer.requests))
	}
}

func TestRevalidateSkipsWithoutPaths(t *testing.T) {
	svc := NewHookService("https://frontend.mutant.tech/api/revalidate", "secret", "")
	doer := &recordingDoer{}
	svc.SetHTTPClient(doer)

	svc.Revalidate()

	if len(doer.requests) != 0 {
		t.Fatalf("expected no request without paths, got %d", len(doer.requests))
	}
}

func TestDeployHitsWebhook(t *testing.T) {
	svc := NewHookService("", "", "https://deploy.mutant.tech/hook/abc")
	doer := &recordingDoer{}
	svc.SetHTTPClient(doer)

	svc.Deploy()

	if len(doer.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(doer.requests))
	}
	if doer.requests[0].URL.String() != "https://deploy.mutant.tech/hook/abc" {
		t.Fatalf("unexpected endpoint: %s", doer.requests[0].URL)
	}
	if doer.bodies[0] != "{}" {
		t.Fatalf("expected empty json body, got %q", doer.bodies[0])
	}
}

func TestHookFailuresAreSwallowed(t *testing.T) {
	svc := NewHookService("https://frontend.mutant.tech/api/revalidate", "secret", "")
	doer := &recordingDoer{status: http.StatusInternalServerError}
	svc.SetHTTPClient(doer)

	// Must not panic or surface the failure.
	svc.Revalidate("/")

	if len(doer.requests) != 1 {
		t.Fatalf("expected the request to be attempted, got %d", len(doer.requests))
	}
}
