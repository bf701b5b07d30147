package touchkit

// Section ids for the stock mobile control panel.
const (
	SectionFont     = "font-settings"
	SectionSize     = "size-settings"
	SectionFilter   = "filter-settings"
	SectionFeatures = "features-settings"
	SectionActions  = "actions"
	SectionLanguage = "languages"
)

const (
	glyphClosed    = "▼"
	glyphOpen      = "▲"
	glyphMenu      = "☰"
	glyphMenuClose = "×"
)

// Section is one collapsible panel.
type Section struct {
	ID    string
	Title string
	Open  bool
}

// Glyph returns the toggle indicator for the section's current state.
func (s Section) Glyph() string {
	if s.Open {
		return glyphOpen
	}
	return glyphClosed
}

// DefaultSections returns the stock control panel sections, all closed.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionFont, Title: "Font Settings"},
		{ID: SectionSize, Title: "Size Settings"},
		{ID: SectionFilter, Title: "Filter Settings"},
		{ID: SectionFeatures, Title: "OpenType Features"},
		{ID: SectionActions, Title: "Actions"},
		{ID: SectionLanguage, Title: "Language"},
	}
}

// Accordion holds a set of collapsible sections. In exclusive mode at most
// one section is open at a time.
type Accordion struct {
	Exclusive bool

	sections []Section
}

// NewAccordion creates an accordion over sections. Duplicate ids keep the
// first occurrence.
func NewAccordion(exclusive bool, sections ...Section) *Accordion {
	a := &Accordion{Exclusive: exclusive}
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		a.sections = append(a.sections, s)
	}
	if exclusive {
		// Only the first open section survives.
		found := false
		for i := range a.sections {
			if a.sections[i].Open {
				if found {
					a.sections[i].Open = false
				}
				found = true
			}
		}
	}
	return a
}

// Sections returns the sections in order. The returned slice MUST NOT be mutated.
func (a *Accordion) Sections() []Section {
	return a.sections
}

// Toggle flips section id. In exclusive mode opening a section closes the
// others. Unknown ids are ignored. Returns the section's new state.
func (a *Accordion) Toggle(id string) bool {
	i := a.find(id)
	if i < 0 {
		return false
	}
	open := !a.sections[i].Open
	if open && a.Exclusive {
		for j := range a.sections {
			a.sections[j].Open = false
		}
	}
	a.sections[i].Open = open
	return open
}

// IsOpen reports whether section id is open.
func (a *Accordion) IsOpen(id string) bool {
	i := a.find(id)
	return i >= 0 && a.sections[i].Open
}

// OpenSection returns the id of the first open section, or "" if none.
func (a *Accordion) OpenSection() string {
	for _, s := range a.sections {
		if s.Open {
			return s.ID
		}
	}
	return ""
}

// CollapseAll closes every section.
func (a *Accordion) CollapseAll() {
	for i := range a.sections {
		a.sections[i].Open = false
	}
}

func (a *Accordion) find(id string) int {
	for i := range a.sections {
		if a.sections[i].ID == id {
			return i
		}
	}
	return -1
}

// Menu is the compact main-menu toggle.
type Menu struct {
	open bool
}

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// Close closes the menu.
func (m *Menu) Close() {
	m.open = false
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Glyph returns the toggle button label: ☰ when closed, × when open.
func (m *Menu) Glyph() string {
	if m.open {
		return glyphMenuClose
	}
	return glyphMenu
}
