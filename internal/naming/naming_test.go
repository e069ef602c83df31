package naming

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/backmassage/seqrename/internal/config"
)

func TestSuffix_AlphaSingleLetters(t *testing.T) {
	for i := 1; i <= 26; i++ {
		want := string(rune('a' + i - 1))
		if got := Suffix(i, config.StyleAlpha); got != want {
			t.Errorf("Suffix(%d, alpha) = %q, want %q", i, got, want)
		}
	}
}

func TestSuffix_AlphaMultiLetter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{27, "aa"},
		{28, "ab"},
		{52, "az"},
		{53, "ba"},
		{702, "zz"},
		{703, "aaa"},
		{18278, "zzz"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Suffix(tt.index, config.StyleAlpha); got != tt.want {
				t.Errorf("Suffix(%d, alpha) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestSuffix_AlphaZeroIsEmpty(t *testing.T) {
	if got := Suffix(0, config.StyleAlpha); got != "" {
		t.Errorf("Suffix(0, alpha) = %q, want empty", got)
	}
}

func TestSuffix_Numeric(t *testing.T) {
	for _, i := range []int{0, 1, 9, 10, 27, 1000} {
		if got := Suffix(i, config.StyleNumeric); got != strconv.Itoa(i) {
			t.Errorf("Suffix(%d, numeric) = %q", i, got)
		}
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.png", ".png"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".bashrc", ""},
		{"..hidden", ""},
		{".config.yaml", ".yaml"},
		{"trailing.", "."},
		{"UPPER.JPG", ".JPG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ext(tt.name); got != tt.want {
				t.Errorf("Ext(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestPlan_Numeric(t *testing.T) {
	job := config.Job{BaseName: "photo", Style: config.StyleNumeric, Start: 1}
	plan := Plan([]string{"x.png", "y.png"}, job)

	want := []Rename{
		{Index: 1, Old: "x.png", New: "photo_1.png"},
		{Index: 2, Old: "y.png", New: "photo_2.png"},
	}
	if len(plan) != len(want) {
		t.Fatalf("got %d entries, want %d", len(plan), len(want))
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Errorf("plan[%d] = %+v, want %+v", i, plan[i], want[i])
		}
	}
}

func TestPlan_Alpha(t *testing.T) {
	job := config.Job{BaseName: "img", Style: config.StyleAlpha, Start: 1}
	plan := Plan([]string{"p.jpg", "q.jpg", "r.jpg"}, job)

	for i, wantNew := range []string{"img_a.jpg", "img_b.jpg", "img_c.jpg"} {
		if plan[i].New != wantNew {
			t.Errorf("plan[%d].New = %q, want %q", i, plan[i].New, wantNew)
		}
	}
}

func TestPlan_StartOffsetAndMissingExt(t *testing.T) {
	job := config.Job{BaseName: "doc", Style: config.StyleNumeric, Start: 0}
	plan := Plan([]string{"notes", "letter.TXT"}, job)

	if plan[0].New != "doc_0" {
		t.Errorf("plan[0].New = %q, want %q", plan[0].New, "doc_0")
	}
	if plan[1].New != "doc_1.TXT" {
		t.Errorf("plan[1].New = %q, want %q (extension case preserved)", plan[1].New, "doc_1.TXT")
	}
}

func TestPlan_LargestStartKeepsSuffixes(t *testing.T) {
	for _, style := range []config.NumberingStyle{config.StyleNumeric, config.StyleAlpha} {
		job := config.Job{BaseName: "img", Style: style, Start: config.MaxStart}
		plan := Plan([]string{"a.jpg", "b.jpg", "c.jpg"}, job)
		for p, r := range plan {
			if r.Index != config.MaxStart+p {
				t.Errorf("%s: plan[%d].Index = %d, want %d", style, p, r.Index, config.MaxStart+p)
			}
			if r.New == "img_.jpg" || Suffix(r.Index, style) == "" {
				t.Errorf("%s: plan[%d].New = %q has no suffix", style, p, r.New)
			}
		}
	}
}

func TestPlan_Empty(t *testing.T) {
	plan := Plan(nil, config.Job{BaseName: "x", Style: config.StyleNumeric, Start: 1})
	if len(plan) != 0 {
		t.Errorf("got %d entries, want 0", len(plan))
	}
}

func TestTakenAndCollisions(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo_1.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "photo_3.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	if !Taken(dir, "photo_1.png") {
		t.Error("Taken(photo_1.png) = false, want true")
	}
	if Taken(dir, "photo_2.png") {
		t.Error("Taken(photo_2.png) = true, want false")
	}

	plan := []Rename{
		{Index: 1, Old: "a.png", New: "photo_1.png"},
		{Index: 2, Old: "b.png", New: "photo_2.png"},
		{Index: 3, Old: "c.png", New: "photo_3.png"},
	}
	got := Collisions(dir, plan)
	if len(got) != 2 || got[0].Old != "a.png" || got[1].Old != "c.png" {
		t.Errorf("Collisions = %+v, want entries for a.png and c.png", got)
	}
}
