package web

import (
	"strings"
	"testing"

	"github.com/dop251/goja"
)

func newRuntime(t *testing.T) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	if _, err := vm.RunString(Script()); err != nil {
		t.Fatalf("ui.jsの評価に失敗しました: %v", err)
	}
	return vm
}

func eval(t *testing.T, vm *goja.Runtime, src string) string {
	t.Helper()
	v, err := vm.RunString(src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return v.String()
}

func TestEscは特殊文字をエスケープする(t *testing.T) {
	vm := newRuntime(t)
	got := eval(t, vm, `esc("<a href='x'>\"&\"</a>")`)
	want := "&lt;a href=&#39;x&#39;&gt;&quot;&amp;&quot;&lt;/a&gt;"
	if got != want {
		t.Fatalf("esc = %q, want %q", got, want)
	}
	if got := eval(t, vm, `esc(null)`); got != "" {
		t.Fatalf("esc(null) = %q", got)
	}
}

func TestRenderPaletteは不正な色を捨てる(t *testing.T) {
	vm := newRuntime(t)
	got := eval(t, vm, `renderPalette({colors: ["#FF5733", "red\"><img src=x>", "#00aaff"]})`)
	if strings.Count(got, `class="swatch"`) != 2 {
		t.Fatalf("スウォッチの数が期待値と異なります: %s", got)
	}
	if strings.Contains(got, "<img") {
		t.Fatalf("危険なノードが含まれています: %s", got)
	}
	if !strings.Contains(got, `data-color="#FF5733"`) || !strings.Contains(got, "<code>#00aaff</code>") {
		t.Fatalf("色のラベルがありません: %s", got)
	}
	if got := eval(t, vm, `renderPalette(null)`); got != "" {
		t.Fatalf("renderPalette(null) = %q", got)
	}
}

func TestRenderReportは表と衝突一覧を描画する(t *testing.T) {
	vm := newRuntime(t)
	got := eval(t, vm, `renderReport({
		background: "#FFFFFF",
		entries: [{
			hex: "#FF0000", luminance: 0.2126, contrast: 3.998, level: "FAIL",
			text_color: "#000000",
			simulations: {deuteranopia: "#CFDA00", protanopia: "#A6A600", tritanopia: "#FF0000", achromatopsia: "#959595"}
		}],
		collisions: [{deficiency: "achromatopsia", a: "#FF0000", b: "<b>", delta_e: 3.21}]
	})`)
	for _, want := range []string{
		"<th>achromatopsia</th>",
		`<td class="num">0.2126</td>`,
		`<td class="num">4.00</td>`,
		`<td class="level-FAIL">FAIL</td>`,
		`data-color="#CFDA00"`,
		"achromatopsia: #FF0000 / &lt;b&gt; (ΔE 3.2)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("%q が見つかりません:\n%s", want, got)
		}
	}
}
