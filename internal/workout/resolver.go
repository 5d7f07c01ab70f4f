package workout

// Resolve maps a requested catalog exercise onto the best entry the visitor
// can actually perform with the given equipment.
//
// If the requested exercise's own category is owned, it is returned
// unchanged. Otherwise the alternative link is consulted in strict priority
// order: pull-up-bar, then resistance-band, then bodyweight. Bar and band
// substitutes preserve more of the original loading character than a
// bodyweight substitute, so they win whenever the visitor owns that gear,
// regardless of what the original exercise required.
//
// The function is total: an unknown key or a missing alternative link
// returns the requested key unchanged, so a catalog typo degrades to an
// unresolved exercise instead of breaking the rendering of a whole day.
func Resolve(requested Key, available EquipmentSet) Key {
	def, ok := catalog[requested]
	if !ok {
		return requested
	}
	if available.Has(def.Category) {
		return requested
	}

	alts, ok := alternatives[requested]
	if !ok {
		return requested
	}
	if alts.PullupBar != "" && available.Has(CategoryPullupBar) {
		return alts.PullupBar
	}
	if alts.Band != "" && available.Has(CategoryResistanceBand) {
		return alts.Band
	}
	// The bodyweight tier is mandatory on every link and bodyweight is
	// always available.
	return alts.Bodyweight
}
