package domain

import "sort"

// Sections of a draft that mutations can touch.
const (
	SectionBasicInfo    = "basic_info"
	SectionTranslations = "translations"
	SectionPrices       = "prices"
	SectionMedia        = "media"
	SectionInventory    = "inventory"
	SectionAttributes   = "attributes"
	SectionVariations   = "variations"
	SectionOrganization = "organization"
	SectionLanguage     = "language"
	SectionCurrency     = "currency"
)

// ChangeTracker tracks which sections of a draft have been modified since
// the draft was created or last reset. A draft is dirty iff it has changes.
type ChangeTracker struct {
	dirtySections map[string]bool
}

// NewChangeTracker creates a new ChangeTracker instance.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtySections: make(map[string]bool),
	}
}

// MarkDirty marks a section as modified.
func (ct *ChangeTracker) MarkDirty(section string) {
	ct.dirtySections[section] = true
}

// Dirty checks if a specific section has been marked dirty.
func (ct *ChangeTracker) Dirty(section string) bool {
	return ct.dirtySections[section]
}

// HasChanges returns true if any section has been marked dirty.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtySections) > 0
}

// DirtySections returns the modified section names in lexical order.
func (ct *ChangeTracker) DirtySections() []string {
	sections := make([]string, 0, len(ct.dirtySections))
	for section := range ct.dirtySections {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections
}

// Clear removes all dirty markers.
func (ct *ChangeTracker) Clear() {
	ct.dirtySections = make(map[string]bool)
}
