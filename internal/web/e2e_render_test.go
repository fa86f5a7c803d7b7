//go:build e2e

package web

import (
	"context"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/gorilla/mux"
)

func TestRenderPaletteはブラウザで色を適用する(t *testing.T) {
	t.Parallel()

	if !hasBrowser() {
		t.Skip("Chrome/Chromiumが見つからないためスキップします")
	}

	r := mux.NewRouter()
	UI{}.Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// chromedp navigation can take some time in CI environments.
	ctx, cancel = context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var swatches, injected int
	var label, bg string
	err := chromedp.Run(ctx,
		chromedp.Navigate(srv.URL),
		chromedp.WaitVisible(`#palette`, chromedp.ByID),
		chromedp.Evaluate(`const el = document.getElementById('palette');
			el.innerHTML = renderPalette({colors: ['#FF5733', '<img src=x onerror=alert(1)>', '#33FF57']});
			applySwatches(el);`, nil),
		chromedp.Evaluate(`document.querySelectorAll('#palette .swatch').length`, &swatches),
		chromedp.Evaluate(`document.querySelectorAll('#palette img, #palette script').length`, &injected),
		chromedp.Text(`#palette .swatch code`, &label, chromedp.ByQuery),
		chromedp.Evaluate(`getComputedStyle(document.querySelector('#palette .swatch')).backgroundColor`, &bg),
	)
	if err != nil {
		t.Fatalf("chromedpの操作に失敗しました: %v", err)
	}
	if swatches != 2 {
		t.Fatalf("スウォッチの数が期待値と異なります: %d", swatches)
	}
	if injected != 0 {
		t.Fatalf("危険なノードが挿入されています: %d", injected)
	}
	if label != "#FF5733" {
		t.Fatalf("ラベルが期待値と異なります: %q", label)
	}
	if bg != "rgb(255, 87, 51)" {
		t.Fatalf("背景色が適用されていません: %q", bg)
	}
}

func hasBrowser() bool {
	candidates := []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"}
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
