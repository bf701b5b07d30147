package touchkit

import "sort"

// Language is one entry of the word-list language catalog.
type Language struct {
	Name  string
	Label string
	Code  string
}

// Languages is the catalog offered by the language dialog.
var Languages = []Language{
	{Name: "catalan", Label: "Catalan", Code: "ca"},
	{Name: "czech", Label: "Czech", Code: "cs"},
	{Name: "danish", Label: "Danish", Code: "da"},
	{Name: "dutch", Label: "Dutch", Code: "nl"},
	{Name: "english", Label: "English", Code: "en"},
	{Name: "finnish", Label: "Finnish", Code: "fi"},
	{Name: "french", Label: "French", Code: "fr"},
	{Name: "german", Label: "German", Code: "de"},
	{Name: "hungarian", Label: "Hungarian", Code: "hu"},
	{Name: "icelandic", Label: "Icelandic", Code: "is"},
	{Name: "italian", Label: "Italian", Code: "it"},
	{Name: "latin", Label: "Latin", Code: "la"},
	{Name: "norwegian", Label: "Norwegian", Code: "no"},
	{Name: "polish", Label: "Polish", Code: "pl"},
	{Name: "slovak", Label: "Slovak", Code: "sk"},
	{Name: "spanish", Label: "Spanish", Code: "es"},
	{Name: "vietnamese", Label: "Vietnamese", Code: "vi"},
}

const defaultLanguage = "english"

// LanguageStore is the application's language selection.
type LanguageStore interface {
	// Selected reports the state of a language. known is false when the
	// store has no record of it.
	Selected(name string) (selected, known bool)
	SetSelected(name string, selected bool)
}

// LanguageSet is a map-backed LanguageStore.
type LanguageSet map[string]bool

// Selected implements LanguageStore.
func (s LanguageSet) Selected(name string) (bool, bool) {
	v, ok := s[name]
	return v, ok
}

// SetSelected implements LanguageStore.
func (s LanguageSet) SetSelected(name string, selected bool) {
	s[name] = selected
}

// LanguageDialog edits a draft of the language selection. Nothing reaches
// the store until Apply.
type LanguageDialog struct {
	store LanguageStore
	draft map[string]bool
	start map[string]bool
	open  bool
}

// OpenLanguageDialog snapshots store into a new draft. Languages the store
// does not know default to English only.
func OpenLanguageDialog(store LanguageStore) *LanguageDialog {
	d := &LanguageDialog{
		store: store,
		draft: make(map[string]bool, len(Languages)),
		start: make(map[string]bool, len(Languages)),
		open:  true,
	}
	for _, lang := range Languages {
		sel, known := false, false
		if store != nil {
			sel, known = store.Selected(lang.Name)
		}
		if !known {
			sel = lang.Name == defaultLanguage
		}
		d.draft[lang.Name] = sel
		d.start[lang.Name] = sel
	}
	return d
}

// IsOpen reports whether the dialog still accepts edits.
func (d *LanguageDialog) IsOpen() bool {
	return d.open
}

// Checked reports the draft state of a language.
func (d *LanguageDialog) Checked(name string) bool {
	return d.draft[name]
}

// Toggle flips a language in the draft. Unknown names and a closed dialog
// are ignored. Returns the new draft state.
func (d *LanguageDialog) Toggle(name string) bool {
	cur, ok := d.draft[name]
	if !d.open || !ok {
		return false
	}
	d.draft[name] = !cur
	return !cur
}

// Apply writes the languages whose state changed to the store, closes the
// dialog and returns the changed names in catalog order.
func (d *LanguageDialog) Apply() []string {
	if !d.open {
		return nil
	}
	d.open = false
	var changed []string
	for _, lang := range Languages {
		if d.draft[lang.Name] != d.start[lang.Name] {
			changed = append(changed, lang.Name)
			if d.store != nil {
				d.store.SetSelected(lang.Name, d.draft[lang.Name])
			}
		}
	}
	return changed
}

// Cancel discards the draft and closes the dialog.
func (d *LanguageDialog) Cancel() {
	d.open = false
}

// SelectedLanguages returns the draft's checked language names, sorted.
func (d *LanguageDialog) SelectedLanguages() []string {
	var out []string
	for name, sel := range d.draft {
		if sel {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
