package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phyten/palettex/internal/analysis"
	"github.com/phyten/palettex/internal/generator"
	"github.com/phyten/palettex/internal/palette"
)

type stubGenerator struct {
	result generator.Result
	err    error
	panics bool
	prompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (generator.Result, error) {
	if g.panics {
		panic("boom")
	}
	g.prompt = prompt
	return g.result, g.err
}

var fixedNow = time.Unix(1700000000, 0)

func newTestServer(gen PaletteGenerator) *Server {
	return New(Options{
		Generator:  gen,
		AIEnabled:  true,
		Background: "#FFFFFF",
		Now:        func() time.Time { return fixedNow },
	})
}

func do(t *testing.T, s *Server, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var res errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("JSONのデコードに失敗しました: %v", err)
	}
	return res.Error
}

func TestHealthは状態を返す(t *testing.T) {
	rr := do(t, newTestServer(&stubGenerator{}), http.MethodGet, "/api/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("予期しないステータス: %d", rr.Code)
	}
	var status palette.HealthStatus
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("JSONのデコードに失敗しました: %v", err)
	}
	if !status.OK() || status.Time != fixedNow.Unix() || !status.AI {
		t.Fatalf("予期しない応答: %+v", status)
	}
	if rr.Header().Get(requestIDHeader) == "" {
		t.Fatal("X-Request-ID が付与されていません")
	}
}

func TestGeneratePaletteは配色を返す(t *testing.T) {
	gen := &stubGenerator{result: generator.Result{
		Colors: []string{"#FF5733", "#C70039", "#900C3F", "#581845", "#FFC300"},
		Source: generator.SourceAI,
	}}
	rr := do(t, newTestServer(gen), http.MethodPost, "/api/generate-palette",
		`{"prompt":"  sunset <b>beach</b>  "}`, map[string]string{requestIDHeader: "req-42"})
	if rr.Code != http.StatusOK {
		t.Fatalf("予期しないステータス: %d\n%s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get(requestIDHeader); got != "req-42" {
		t.Fatalf("X-Request-ID が引き継がれていません: %q", got)
	}
	if !strings.Contains(rr.Body.String(), "<b>beach</b>") {
		t.Fatalf("説明がエスケープされて返却されました: %s", rr.Body.String())
	}
	var res palette.Response
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("JSONのデコードに失敗しました: %v", err)
	}
	if gen.prompt != "sunset <b>beach</b>" {
		t.Fatalf("プロンプトが整形されていません: %q", gen.prompt)
	}
	if res.Description != `palette generated for prompt "sunset <b>beach</b>"` {
		t.Fatalf("説明が期待値と異なります: %q", res.Description)
	}
	if len(res.Colors) != 5 || res.Colors[0] != "#FF5733" || res.Source != generator.SourceAI || res.Timestamp != fixedNow.Unix() {
		t.Fatalf("予期しない応答: %+v", res)
	}
}

func TestGeneratePaletteは不正な入力を拒否する(t *testing.T) {
	s := newTestServer(&stubGenerator{})
	cases := map[string]struct {
		body string
		want string
	}{
		"空のプロンプト":  {body: `{"prompt":"   "}`, want: "prompt is required"},
		"プロンプトなし":  {body: `{}`, want: "prompt is required"},
		"壊れたJSON":   {body: `{"prompt":`, want: "invalid request body"},
		"大きすぎる本文": {body: `{"prompt":"` + strings.Repeat("a", maxBodyBytes) + `"}`, want: "request body too large"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := do(t, s, http.MethodPost, "/api/generate-palette", tc.body, nil)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("予期しないステータス: %d", rr.Code)
			}
			if got := decodeError(t, rr); got != tc.want {
				t.Fatalf("エラーが期待値と異なります: %q", got)
			}
		})
	}
}

func TestGeneratePaletteは生成失敗で500を返す(t *testing.T) {
	rr := do(t, newTestServer(&stubGenerator{err: errors.New("down")}), http.MethodPost, "/api/generate-palette", `{"prompt":"x"}`, nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("予期しないステータス: %d", rr.Code)
	}
	if got := decodeError(t, rr); got != "failed to generate palette" {
		t.Fatalf("エラーが期待値と異なります: %q", got)
	}
}

func TestGeneratePaletteは既定でフォールバックを使う(t *testing.T) {
	s := New(Options{})
	rr := do(t, s, http.MethodPost, "/api/generate-palette", `{"prompt":"forest"}`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("予期しないステータス: %d", rr.Code)
	}
	var res palette.Response
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("JSONのデコードに失敗しました: %v", err)
	}
	if res.Source != generator.SourceFallback || len(res.Colors) != generator.PaletteSize {
		t.Fatalf("予期しない応答: %+v", res)
	}
}

func TestAnalyzeはレポートを返す(t *testing.T) {
	s := newTestServer(&stubGenerator{})
	rr := do(t, s, http.MethodPost, "/api/analyze", `{"colors":["#000","#ff0000"]}`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("予期しないステータス: %d\n%s", rr.Code, rr.Body.String())
	}
	var report analysis.Report
	if err := json.NewDecoder(rr.Body).Decode(&report); err != nil {
		t.Fatalf("JSONのデコードに失敗しました: %v", err)
	}
	if report.Background != "#FFFFFF" || len(report.Entries) != 2 {
		t.Fatalf("予期しない応答: %+v", report)
	}
	if report.Entries[0].Hex != "#000000" || report.Entries[0].Level != "AAA" {
		t.Fatalf("黒の評価が期待値と異なります: %+v", report.Entries[0])
	}

	rr = do(t, s, http.MethodPost, "/api/analyze", `{"colors":["#GG0000"]}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("不正な色で予期しないステータス: %d", rr.Code)
	}
	rr = do(t, s, http.MethodPost, "/api/analyze", `{"colors":[]}`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("空の配列で予期しないステータス: %d", rr.Code)
	}
}

func TestCORSプリフライトに応答する(t *testing.T) {
	s := newTestServer(&stubGenerator{})
	rr := do(t, s, http.MethodOptions, "/api/generate-palette", "", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": http.MethodPost,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("予期しないステータス: %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("Access-Control-Allow-Origin がありません")
	}
}

func TestCORSは許可外のメソッドを拒否する(t *testing.T) {
	s := newTestServer(&stubGenerator{})
	rr := do(t, s, http.MethodOptions, "/api/generate-palette", "", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": http.MethodDelete,
	})
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("予期しないステータス: %d", rr.Code)
	}
}

func TestPanicは500に変換される(t *testing.T) {
	rr := do(t, newTestServer(&stubGenerator{panics: true}), http.MethodPost, "/api/generate-palette", `{"prompt":"x"}`, nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("予期しないステータス: %d", rr.Code)
	}
}

func TestUnknownAPIは404をJSONで返す(t *testing.T) {
	rr := do(t, newTestServer(&stubGenerator{}), http.MethodGet, "/api/nope", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("予期しないステータス: %d", rr.Code)
	}
	if got := decodeError(t, rr); got != "not found" {
		t.Fatalf("エラーが期待値と異なります: %q", got)
	}
}

func TestIndexはUIを返す(t *testing.T) {
	rr := do(t, newTestServer(&stubGenerator{}), http.MethodGet, "/", "", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "palettex") {
		t.Fatalf("予期しない応答: %d", rr.Code)
	}
}

func TestServeはコンテキスト終了で停止する(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	listening := make(chan net.Addr, 1)
	s := New(Options{OnListen: func(addr net.Addr) { listening <- addr }})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	addr := <-listening
	resp, err := http.Get("http://" + addr.String() + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("予期しないステータス: %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve がエラーを返しました: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve が停止しませんでした")
	}
}
