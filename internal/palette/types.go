package palette

import "fmt"

// Request は /generate-palette への入力です。
type Request struct {
	Prompt string `json:"prompt"`
}

// Response は生成された配色です。Colors は常に大文字の #RRGGBB です。
type Response struct {
	Colors      []string `json:"colors"`
	Timestamp   int64    `json:"timestamp"`
	Description string   `json:"description"`
	Source      string   `json:"source,omitempty"`
}

// HealthStatus は /health の応答です。
type HealthStatus struct {
	Status string `json:"status"`
	Time   int64  `json:"time"`
	AI     bool   `json:"ai"`
}

// OK reports whether the service declared itself healthy.
func (h *HealthStatus) OK() bool {
	return h != nil && h.Status == "ok"
}

// APIError は 2xx 以外の応答を表します。
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return fmt.Sprintf("palette api %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("palette api %s %s: status %d", e.Method, e.URL, e.StatusCode)
}
