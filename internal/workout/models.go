// Package workout defines the static 28-day training plan and the
// equipment-substitution engine that adapts it to the gear a visitor owns.
package workout

import "slices"

// Category identifies the equipment an exercise requires.
type Category string

const (
	CategoryBodyweight     Category = "bodyweight"
	CategoryResistanceBand Category = "resistance_band"
	CategoryDumbbell       Category = "dumbbell"
	CategoryKettlebell     Category = "kettlebell"
	CategoryPullupBar      Category = "pullup_bar"
)

// Categories lists every equipment category in display order.
func Categories() []Category {
	return []Category{
		CategoryBodyweight,
		CategoryResistanceBand,
		CategoryDumbbell,
		CategoryKettlebell,
		CategoryPullupBar,
	}
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryBodyweight:
		return "Bodyweight"
	case CategoryResistanceBand:
		return "Resistance band"
	case CategoryDumbbell:
		return "Dumbbells"
	case CategoryKettlebell:
		return "Kettlebell"
	case CategoryPullupBar:
		return "Pull-up bar"
	}
	return string(c)
}

// EquipmentSet is the set of equipment categories a visitor owns.
// Bodyweight is always a member and cannot be removed.
type EquipmentSet map[Category]bool

// NewEquipmentSet builds an equipment set from the given categories.
// Bodyweight is inserted whether or not it is listed.
func NewEquipmentSet(categories ...Category) EquipmentSet {
	s := EquipmentSet{CategoryBodyweight: true}
	for _, c := range categories {
		s[c] = true
	}
	return s
}

// FullEquipmentSet returns a set containing every category. It is the
// default for first-time visitors.
func FullEquipmentSet() EquipmentSet {
	return NewEquipmentSet(Categories()...)
}

// Has reports whether the set contains the category.
func (s EquipmentSet) Has(c Category) bool {
	return s[c]
}

// Toggle flips ownership of a category. Toggling bodyweight is a no-op.
func (s EquipmentSet) Toggle(c Category) {
	if c == CategoryBodyweight {
		return
	}
	if s[c] {
		delete(s, c)
	} else {
		s[c] = true
	}
}

// List returns the owned categories in display order, suitable for
// serialization.
func (s EquipmentSet) List() []Category {
	var out []Category
	for _, c := range Categories() {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// ParseCategory maps a string onto a known category.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	return c, slices.Contains(Categories(), c)
}

// Key identifies one exercise definition in the catalog.
type Key string

// Definition is an immutable exercise catalog record.
type Definition struct {
	Key      Key
	Name     string
	Load     string
	Category Category
	// Notes is the default instructional note. A per-day override takes
	// precedence over it.
	Notes   string
	Gif     string
	YouTube string
}

// Alternatives lists fallback catalog keys for lower equipment tiers.
// Bodyweight is always set when a link exists; the other tiers are optional.
type Alternatives struct {
	PullupBar  Key
	Band       Key
	Bodyweight Key
}

// ItemKind discriminates the items in a day so circuit and benchmark
// headers are never resolved against the catalog.
type ItemKind int

const (
	// ItemStandard is a plain scheduled exercise.
	ItemStandard ItemKind = iota
	// ItemCircuitStep is an exercise inside a repeated-round circuit,
	// displayed with a directional prefix.
	ItemCircuitStep
	// ItemHeader is an opaque circuit or benchmark label.
	ItemHeader
)

// Item is one scheduled occurrence of a catalog exercise inside a day.
type Item struct {
	ID   string
	Kind ItemKind
	// Key is the catalog key the item resolves through. Empty for headers.
	Key     Key
	Name    string
	Sets    string
	Reps    string
	Time    string
	Tempo   string
	Load    string
	Notes   string
	Gif     string
	YouTube string
}

// DisplayName returns the name with the circuit-step prefix applied.
func (i Item) DisplayName() string {
	if i.Kind == ItemCircuitStep {
		return "→ " + i.Name
	}
	return i.Name
}

// MobilityItem is an exercise-like instance in a mobility block or shoulder
// finisher. It is independent of the catalog: gating happens through its own
// RequiresEquipment/Alternative pair.
type MobilityItem struct {
	ID      string
	Name    string
	Reps    string
	Time    string
	Notes   string
	Gif     string
	YouTube string
	// RequiresEquipment gates the item. The zero value means no gating.
	RequiresEquipment Category
	// Alternative is substituted whole when the required equipment is
	// missing. Its own equipment requirement is never re-checked.
	Alternative *MobilityItem
}

// MobilityBlock is a named, duration-labeled sequence of mobility items.
type MobilityBlock struct {
	Title    string
	Duration string
	Items    []MobilityItem
}

// Finisher is the short supplementary shoulder block appended to upper-body
// days.
type Finisher struct {
	Name  string
	Items []MobilityItem
}

// Day is one day of the 28-day program.
type Day struct {
	ID        int
	DayOfWeek string
	Title     string
	Subtitle  string
	Rest      bool
	Items     []Item
	Finisher  *Finisher
}

// Week groups seven consecutive days under a theme.
type Week struct {
	ID    int
	Name  string
	Theme string
	Days  []Day
}
