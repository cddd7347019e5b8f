package cleaning

import (
	"sort"
	"strings"
)

// Dictionary is the in-memory rule set one cleaning session matches against.
// It is an explicit versioned collection: every mutation bumps Version and is
// expected to be followed by a rescan pass over the affected rows, so no
// per-row state can go stale against it.
//
// Size and name rules live side by side; price cleaning never consults the
// dictionary.
type Dictionary struct {
	// Version counts mutations since the dictionary was built.
	Version int

	// Sizes holds the canonical size labels and their matcher fragments.
	Sizes []KnownValue

	// ProductAliases maps raw alias texts to canonical product names.
	ProductAliases []Alias

	// ProductNames holds every canonical product name.
	ProductNames []string

	// nameMatchers is the combined matcher list for name cleaning: every
	// alias plus every product name (mapping to itself), sorted by text
	// length descending so the most specific fragment wins.
	nameMatchers []Alias
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// BuildDictionary merges the four store collections into one dictionary.
// Size aliases are folded into the matcher sets of their mapped labels,
// creating labels the statistics feed did not carry.
func BuildDictionary(sizes []KnownValue, sizeAliases, productAliases []Alias, productNames []string) *Dictionary {
	d := &Dictionary{}
	for _, s := range sizes {
		label := strings.TrimSpace(s.Label)
		if label == "" {
			continue
		}
		d.Sizes = append(d.Sizes, KnownValue{Label: label, Matchers: append([]string(nil), s.Matchers...)})
	}
	for _, a := range sizeAliases {
		d.addSizeMatcher(strings.TrimSpace(a.Mapped), strings.TrimSpace(a.Text))
	}
	for _, a := range productAliases {
		if strings.TrimSpace(a.Text) == "" || strings.TrimSpace(a.Mapped) == "" {
			continue
		}
		d.ProductAliases = append(d.ProductAliases, Alias{Text: strings.TrimSpace(a.Text), Mapped: strings.TrimSpace(a.Mapped)})
	}
	for _, n := range productNames {
		if strings.TrimSpace(n) != "" {
			d.ProductNames = append(d.ProductNames, strings.TrimSpace(n))
		}
	}
	d.rebuildNameMatchers()
	return d
}

// Clone returns an independent copy. Sessions mutate their own dictionary as
// rules are learned, so shared (cached) dictionaries are handed out as clones.
func (d *Dictionary) Clone() *Dictionary {
	c := &Dictionary{
		Version:        d.Version,
		Sizes:          make([]KnownValue, len(d.Sizes)),
		ProductAliases: append([]Alias(nil), d.ProductAliases...),
		ProductNames:   append([]string(nil), d.ProductNames...),
	}
	for i, s := range d.Sizes {
		c.Sizes[i] = KnownValue{Label: s.Label, Matchers: append([]string(nil), s.Matchers...)}
	}
	c.rebuildNameMatchers()
	return c
}

// FindSize returns the known size value whose label equals the given text
// case-insensitively, or nil.
func (d *Dictionary) FindSize(label string) *KnownValue {
	label = strings.TrimSpace(label)
	for i := range d.Sizes {
		if strings.EqualFold(d.Sizes[i].Label, label) {
			return &d.Sizes[i]
		}
	}
	return nil
}

// HasSizeLabel reports whether the label exists, case-insensitively.
func (d *Dictionary) HasSizeLabel(label string) bool {
	return d.FindSize(label) != nil
}

// HasProductName reports whether the canonical product name exists,
// case-insensitively.
func (d *Dictionary) HasProductName(name string) bool {
	name = strings.TrimSpace(name)
	for _, n := range d.ProductNames {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// FindProductAlias returns the canonical name mapped by an alias whose text
// equals the given text case-insensitively, or "".
func (d *Dictionary) FindProductAlias(text string) string {
	text = strings.TrimSpace(text)
	for _, a := range d.ProductAliases {
		if strings.EqualFold(a.Text, text) {
			return a.Mapped
		}
	}
	return ""
}

// NameMatchers returns the combined name matcher list, longest text first.
func (d *Dictionary) NameMatchers() []Alias {
	return d.nameMatchers
}

// AddSizeRule learns a size rule: it ensures a known value with the given
// label exists and registers matcher as an alias fragment for it. An empty
// matcher, or one equal to the label, adds no fragment. Returns whether the
// label was newly created and whether a fragment was added.
//
// Empty labels are rejected wholesale; the dictionary never carries empty
// labels or matchers.
func (d *Dictionary) AddSizeRule(label, matcher string) (created, added bool) {
	label = strings.TrimSpace(label)
	matcher = strings.TrimSpace(matcher)
	if label == "" {
		return false, false
	}

	kv := d.FindSize(label)
	if kv == nil {
		d.Sizes = append(d.Sizes, KnownValue{Label: label})
		kv = &d.Sizes[len(d.Sizes)-1]
		created = true
	}

	if matcher != "" && !strings.EqualFold(matcher, label) && !containsFold(kv.Matchers, matcher) {
		kv.Matchers = append(kv.Matchers, matcher)
		added = true
	}

	if created || added {
		d.Version++
	}
	return created, added
}

// addSizeMatcher registers a fragment without bumping Version; used while
// building the dictionary from the store.
func (d *Dictionary) addSizeMatcher(label, matcher string) {
	if label == "" {
		return
	}
	kv := d.FindSize(label)
	if kv == nil {
		d.Sizes = append(d.Sizes, KnownValue{Label: label})
		kv = &d.Sizes[len(d.Sizes)-1]
	}
	if matcher == "" || strings.EqualFold(matcher, label) || containsFold(kv.Matchers, matcher) {
		return
	}
	kv.Matchers = append(kv.Matchers, matcher)
}

// AddProductAlias learns a name rule mapping aliasText to the canonical name.
// The canonical name is registered as a product name if it is new. Empty
// texts are rejected. Returns false if the identical alias already exists.
func (d *Dictionary) AddProductAlias(aliasText, name string) bool {
	aliasText = strings.TrimSpace(aliasText)
	name = strings.TrimSpace(name)
	if aliasText == "" || name == "" {
		return false
	}

	changed := false
	if existing := d.FindProductAlias(aliasText); !strings.EqualFold(existing, name) {
		d.ProductAliases = append(d.ProductAliases, Alias{Text: aliasText, Mapped: name})
		changed = true
	}
	if !d.HasProductName(name) {
		d.ProductNames = append(d.ProductNames, name)
		changed = true
	}
	if changed {
		d.Version++
		d.rebuildNameMatchers()
	}
	return changed
}

// rebuildNameMatchers recomputes the combined name matcher list.
func (d *Dictionary) rebuildNameMatchers() {
	matchers := make([]Alias, 0, len(d.ProductAliases)+len(d.ProductNames))
	matchers = append(matchers, d.ProductAliases...)
	for _, n := range d.ProductNames {
		matchers = append(matchers, Alias{Text: n, Mapped: n})
	}
	// Longest fragment first so the most specific rule wins; ties keep
	// insertion order for determinism.
	sort.SliceStable(matchers, func(i, j int) bool {
		return len(matchers[i].Text) > len(matchers[j].Text)
	})
	d.nameMatchers = matchers
}

// containsFold reports whether list carries s, compared case-insensitively.
func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
