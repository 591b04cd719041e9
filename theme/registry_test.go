package theme_test

import (
	"testing"

	"github.com/kpumuk/lazychart/theme"
)

func TestRegistryGet(t *testing.T) {
	t.Parallel()

	r := theme.NewRegistry()

	got, ok := r.Get("default")
	if !ok {
		t.Fatalf("default theme not registered")
	}
	if len(got.SeriesPalette) == 0 {
		t.Errorf("default theme has an empty series palette")
	}

	if _, ok := r.Get("nope"); ok {
		t.Errorf("Get(unknown) reported an exact match")
	}
}

func TestRegistryFallback(t *testing.T) {
	t.Parallel()

	r := theme.NewRegistry()
	custom := theme.Default
	custom.SeriesPalette = custom.SeriesPalette[:1]
	r.Register("mono", custom)

	if err := r.SetFallback("mono"); err != nil {
		t.Fatalf("SetFallback(mono) error: %v", err)
	}
	got, ok := r.Get("missing")
	if ok {
		t.Fatalf("Get(missing) reported exact match")
	}
	if len(got.SeriesPalette) != 1 {
		t.Errorf("fallback did not return the mono theme")
	}

	if err := r.SetFallback("unregistered"); err == nil {
		t.Errorf("SetFallback(unregistered) did not fail")
	}
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()

	r := theme.NewRegistry()
	r.Register("zebra", theme.Default)
	r.Register("aqua", theme.Default)

	names := r.Names()
	want := []string{"aqua", "default", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestSeriesColorWraps(t *testing.T) {
	t.Parallel()

	n := len(theme.Default.SeriesPalette)
	if theme.Default.SeriesColor(0) != theme.Default.SeriesColor(n) {
		t.Errorf("SeriesColor did not wrap around the palette")
	}
}

func TestNewStylesUsesTheme(t *testing.T) {
	t.Parallel()

	styles := theme.NewStyles(theme.Default)
	if len(styles.Series) != len(theme.Default.SeriesPalette) {
		t.Errorf("Series styles = %d, want %d", len(styles.Series), len(theme.Default.SeriesPalette))
	}
}
