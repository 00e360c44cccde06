package service

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HookService fires the static-site revalidation and deploy triggers after
// admin mutations. Both calls are fire-and-forget: failures are logged and
// never surfaced to the admin request.
type HookService struct {
	httpClient       httpDoer
	revalidateURL    string
	revalidateSecret string
	deployHookURL    string
}

// NewHookService constructs a HookService. Empty URLs disable the
// corresponding trigger.
func NewHookService(revalidateURL, revalidateSecret, deployHookURL string) *HookService {
	return &HookService{
		httpClient:       &http.Client{Timeout: 10 * time.Second},
		revalidateURL:    strings.TrimSpace(revalidateURL),
		revalidateSecret: strings.TrimSpace(revalidateSecret),
		deployHookURL:    strings.TrimSpace(deployHookURL),
	}
}

// SetHTTPClient swaps the HTTP client, mainly for tests.
func (s *HookService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.httpClient = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.httpClient = client
}

// Revalidate asks the static frontend to re-render the given paths.
func (s *HookService) Revalidate(paths ...string) {
	if s.revalidateURL == "" || len(paths) == 0 {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"secret": s.revalidateSecret,
		"paths":  paths,
	})
	if err != nil {
		log.Printf("encode revalidate payload: %v", err)
		return
	}

	s.post(s.revalidateURL, payload)
}

// Deploy triggers a full rebuild through the deploy webhook.
func (s *HookService) Deploy() {
	if s.deployHookURL == "" {
		return
	}
	s.post(s.deployHookURL, nil)
}

func (s *HookService) post(endpoint string, payload []byte) {
	var body *bytes.Reader
	if payload == nil {
		body = bytes.NewReader([]byte("{}"))
	} else {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		log.Printf("build hook request for %s: %v", endpoint, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("trigger hook %s: %v", endpoint, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("hook %s returned %s", endpoint, resp.Status)
	}
}
