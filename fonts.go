package touchkit

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sahilm/fuzzy"
)

// FontFileExtensions lists the file types the font picker accepts. WOFF2
// is left out: the text/v2 parser only reads sfnt and WOFF.
var FontFileExtensions = []string{".ttf", ".otf", ".woff"}

var woff2Signature = []byte("wOF2")

// AcceptsFontFile reports whether name has an accepted font extension.
// Matching is case-insensitive.
func AcceptsFontFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range FontFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Font is a loaded font file.
type Font struct {
	ID       string
	Family   string
	Style    string
	FileName string

	source *text.GoTextFaceSource
}

// Name returns "Family Style".
func (f *Font) Name() string {
	return f.Family + " " + f.Style
}

// Face returns a renderable face at size.
func (f *Font) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// FontFamily groups the fonts sharing a family name.
type FontFamily struct {
	Name  string
	Fonts []*Font
}

// FontLibrary holds fonts the user has added, grouped by family.
type FontLibrary struct {
	fonts map[string]*Font
	order []string
}

// NewFontLibrary creates an empty library.
func NewFontLibrary() *FontLibrary {
	return &FontLibrary{fonts: make(map[string]*Font)}
}

// Len returns the number of fonts.
func (l *FontLibrary) Len() int {
	return len(l.order)
}

// Add parses data as a font file named fileName and stores it. A font with
// the same family and style replaces the earlier one.
func (l *FontLibrary) Add(fileName string, data []byte) (*Font, error) {
	if !AcceptsFontFile(fileName) {
		return nil, fmt.Errorf("touchkit: %s: unsupported font file type", fileName)
	}
	if bytes.HasPrefix(data, woff2Signature) {
		return nil, fmt.Errorf("touchkit: %s: unsupported font format WOFF2", fileName)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("touchkit: failed to parse font %s: %w", fileName, err)
	}

	md := source.Metadata()
	family := strings.TrimSpace(md.Family)
	if family == "" {
		family = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	}
	style := styleName(md.Weight, md.Style)

	f := &Font{
		ID:       fontID(family, style),
		Family:   family,
		Style:    style,
		FileName: fileName,
		source:   source,
	}
	if _, exists := l.fonts[f.ID]; !exists {
		l.order = append(l.order, f.ID)
	}
	l.fonts[f.ID] = f
	return f, nil
}

// AddFiles adds several files, skipping ones with unaccepted extensions.
// Parsing stops at the first malformed file.
func (l *FontLibrary) AddFiles(files map[string][]byte) ([]*Font, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		if AcceptsFontFile(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	added := make([]*Font, 0, len(names))
	for _, name := range names {
		f, err := l.Add(name, files[name])
		if err != nil {
			return added, err
		}
		added = append(added, f)
	}
	return added, nil
}

// Find returns the font with id, or nil.
func (l *FontLibrary) Find(id string) *Font {
	return l.fonts[id]
}

// Remove drops a font. Reports whether it existed.
func (l *FontLibrary) Remove(id string) bool {
	if _, ok := l.fonts[id]; !ok {
		return false
	}
	delete(l.fonts, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Families returns fonts grouped by family, families sorted by name and
// fonts within a family sorted by style.
func (l *FontLibrary) Families() []FontFamily {
	byFamily := make(map[string][]*Font)
	for _, id := range l.order {
		f := l.fonts[id]
		byFamily[f.Family] = append(byFamily[f.Family], f)
	}
	out := make([]FontFamily, 0, len(byFamily))
	for name, fonts := range byFamily {
		sort.Slice(fonts, func(i, j int) bool { return fonts[i].Style < fonts[j].Style })
		out = append(out, FontFamily{Name: name, Fonts: fonts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Search fuzzy-matches query against "Family Style" and returns fonts best
// match first. An empty query returns every font in insertion order.
func (l *FontLibrary) Search(query string) []*Font {
	all := make([]*Font, len(l.order))
	for i, id := range l.order {
		all[i] = l.fonts[id]
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return all
	}

	names := make([]string, len(all))
	for i, f := range all {
		names[i] = f.Name()
	}
	matches := fuzzy.Find(query, names)
	out := make([]*Font, len(matches))
	for i, m := range matches {
		out[i] = all[m.Index]
	}
	return out
}

func fontID(family, style string) string {
	id := strings.ToLower(family + "-" + style)
	return strings.Join(strings.Fields(id), "-")
}

func styleName(w text.Weight, s text.Style) string {
	var name string
	switch {
	case w <= text.WeightThin:
		name = "Thin"
	case w <= text.WeightExtraLight:
		name = "ExtraLight"
	case w <= text.WeightLight:
		name = "Light"
	case w <= text.WeightNormal:
		name = "Regular"
	case w <= text.WeightMedium:
		name = "Medium"
	case w <= text.WeightSemibold:
		name = "SemiBold"
	case w <= text.WeightBold:
		name = "Bold"
	case w <= text.WeightExtraBold:
		name = "ExtraBold"
	default:
		name = "Black"
	}
	if s == text.StyleItalic {
		if name == "Regular" {
			return "Italic"
		}
		return name + " Italic"
	}
	return name
}
