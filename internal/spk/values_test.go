package spk_test

import (
	"testing"

	"github.com/mind-engage/mindengage-spk/internal/spk"
)

func TestParseScore(t *testing.T) {
	cases := map[string]float64{
		"8,5":   8.5,
		"7.25":  7.25,
		" 90 ":  90,
		"N/A":   0,
		"":      0,
		"-":     0,
		"nan":   0,
		"inf":   0,
		"0x10":  0,
		"1_000": 0,
		"1e2":   100,
		"-3,5":  -3.5,
	}
	for in, want := range cases {
		if got := spk.ParseScore(in); got != want {
			t.Fatalf("ParseScore(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseScore_Idempotent(t *testing.T) {
	for _, in := range []string{"8,5", "N/A", "100", "0.1", "1e-7", "33,333333333"} {
		v := spk.ParseScore(in)
		if again := spk.ParseScore(spk.FormatScore(v)); again != v {
			t.Fatalf("re-normalizing %q: %v != %v", in, again, v)
		}
	}
}

func TestNormalize_PadsShortRows(t *testing.T) {
	tb := table(
		"NIM|Nama|Modul1|Modul2|UTP|UAP|Keaktifan",
		"001|Ani|7,5|N/A|80|90",
	)
	s, err := spk.ResolveColumns(tb.Header)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	st := spk.Normalize(tb, s)
	if len(st) != 1 {
		t.Fatalf("expected 1 student, got %d", len(st))
	}
	got := st[0]
	if got.Modules[0] != 7.5 || got.Modules[1] != 0 || got.UTP != 80 || got.UAP != 90 || got.Keaktifan != 0 {
		t.Fatalf("unexpected student: %+v", got)
	}
}
