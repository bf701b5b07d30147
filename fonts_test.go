package touchkit

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestAcceptsFontFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Inter.ttf", true},
		{"Inter-Bold.OTF", true},
		{"inter.woff", true},
		{"inter.woff2", false},
		{"fonts/dir/Inter.TTF", true},
		{"inter.ttc", false},
		{"readme.txt", false},
		{"ttf", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AcceptsFontFile(tt.name); got != tt.want {
				t.Errorf("AcceptsFontFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFontLibrary_Add(t *testing.T) {
	lib := NewFontLibrary()
	f, err := lib.Add("Go-Regular.ttf", goregular.TTF)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if f.Family == "" {
		t.Error("family not read from font")
	}
	if f.Style != "Regular" {
		t.Errorf("Style = %q, want Regular", f.Style)
	}
	if lib.Find(f.ID) != f {
		t.Error("Find did not return the added font")
	}
	if f.Face(24).Size != 24 {
		t.Error("Face size mismatch")
	}

	// Re-adding the same face replaces rather than duplicates.
	if _, err := lib.Add("copy.ttf", goregular.TTF); err != nil {
		t.Fatal(err)
	}
	if lib.Len() != 1 {
		t.Errorf("Len = %d after re-add, want 1", lib.Len())
	}
	if lib.Find(f.ID).FileName != "copy.ttf" {
		t.Error("re-add should replace the stored file")
	}
}

func TestFontLibrary_AddErrors(t *testing.T) {
	lib := NewFontLibrary()
	if _, err := lib.Add("notes.txt", goregular.TTF); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Add(.txt) error = %v", err)
	}
	if _, err := lib.Add("broken.ttf", []byte("not a font")); err == nil || !strings.Contains(err.Error(), "failed to parse font broken.ttf") {
		t.Errorf("Add(garbage) error = %v", err)
	}
	if _, err := lib.Add("inter.woff2", goregular.TTF); err == nil || !strings.Contains(err.Error(), "unsupported font file type") {
		t.Errorf("Add(.woff2) error = %v", err)
	}
	// A WOFF2 payload behind an accepted extension is named as such rather
	// than reported as a parse failure.
	woff2 := append([]byte("wOF2"), make([]byte, 44)...)
	if _, err := lib.Add("renamed.woff", woff2); err == nil || !strings.Contains(err.Error(), "unsupported font format WOFF2") {
		t.Errorf("Add(wOF2 data) error = %v", err)
	}
	if lib.Len() != 0 {
		t.Errorf("Len = %d after failed adds", lib.Len())
	}
}

func TestFontLibrary_FamiliesAndSearch(t *testing.T) {
	lib := NewFontLibrary()
	added, err := lib.AddFiles(map[string][]byte{
		"Go-Regular.ttf": goregular.TTF,
		"Go-Bold.ttf":    gobold.TTF,
		"Go-Italic.ttf":  goitalic.TTF,
		"license.txt":    []byte("skipped"),
	})
	if err != nil {
		t.Fatalf("AddFiles: %v", err)
	}
	if len(added) != 3 || lib.Len() != 3 {
		t.Fatalf("added %d, Len %d, want 3/3", len(added), lib.Len())
	}

	fams := lib.Families()
	total := 0
	for _, fam := range fams {
		total += len(fam.Fonts)
		for i := 1; i < len(fam.Fonts); i++ {
			if fam.Fonts[i-1].Style > fam.Fonts[i].Style {
				t.Errorf("family %q fonts not sorted by style", fam.Name)
			}
		}
	}
	if total != 3 {
		t.Errorf("families hold %d fonts, want 3", total)
	}

	res := lib.Search("bold")
	if len(res) == 0 || res[0].Style != "Bold" {
		t.Errorf("Search(bold) = %v, want the bold face first", res)
	}
	if got := lib.Search("  "); len(got) != 3 {
		t.Errorf("Search(blank) returned %d, want all 3", len(got))
	}
	if got := lib.Search("zzzz"); len(got) != 0 {
		t.Errorf("Search(zzzz) returned %d, want 0", len(got))
	}

	if !lib.Remove(res[0].ID) || lib.Remove(res[0].ID) {
		t.Error("Remove should succeed once")
	}
	if lib.Len() != 2 {
		t.Errorf("Len = %d after Remove, want 2", lib.Len())
	}
}

func TestFontLibrary_AddFilesStopsOnError(t *testing.T) {
	lib := NewFontLibrary()
	added, err := lib.AddFiles(map[string][]byte{
		"a.ttf": goregular.TTF,
		"b.ttf": []byte("junk"),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(added) != 1 {
		t.Errorf("added %d before error, want 1", len(added))
	}
}

func TestFontID(t *testing.T) {
	if got := fontID("Source Serif  4", "Bold Italic"); got != "source-serif-4-bold-italic" {
		t.Errorf("fontID = %q", got)
	}
}
