package workout

// TransformDay rewrites every exercise in the day through Resolve so the
// result only references exercises the visitor can perform. The input is
// never mutated; rest days are returned unchanged.
//
// Headers pass through verbatim. For resolved items the display name, load
// descriptor and media references come from the resolved catalog entry. An
// explicit per-day note always survives; the resolved entry's default note
// fills the field only when no override was authored.
func TransformDay(day Day, available EquipmentSet) Day {
	if day.Rest {
		return day
	}

	out := day
	out.Items = make([]Item, len(day.Items))
	for i, item := range day.Items {
		out.Items[i] = transformItem(item, available)
	}
	if day.Finisher != nil {
		out.Finisher = transformFinisher(*day.Finisher, available)
	}
	return out
}

func transformItem(item Item, available EquipmentSet) Item {
	if item.Kind == ItemHeader {
		return item
	}

	resolved := Resolve(item.Key, available)
	def, ok := catalog[resolved]
	if !ok {
		// Fail open: surface the original item rather than dropping it.
		return item
	}

	out := item
	out.Key = resolved
	out.Name = def.Name
	out.Load = def.Load
	out.Gif = def.Gif
	out.YouTube = def.YouTube
	if out.Notes == "" {
		out.Notes = def.Notes
	}
	return out
}

func transformFinisher(f Finisher, available EquipmentSet) *Finisher {
	items := TransformMobilityList(f.Items, available)
	if len(items) == 0 {
		// Every instance was gated out; drop the whole block rather than
		// rendering an empty section.
		return nil
	}
	return &Finisher{Name: f.Name, Items: items}
}

// TransformMobilityList applies per-instance equipment gating to mobility
// and finisher items. Ungated items and items whose requirement is owned are
// kept as-is. A gated item with an alternative is replaced by that
// alternative wholesale, without re-checking the alternative's own
// requirement. A gated item without one is dropped. Order is preserved.
func TransformMobilityList(items []MobilityItem, available EquipmentSet) []MobilityItem {
	out := make([]MobilityItem, 0, len(items))
	for _, item := range items {
		if item.RequiresEquipment == "" || available.Has(item.RequiresEquipment) {
			out = append(out, item)
			continue
		}
		if item.Alternative != nil {
			out = append(out, *item.Alternative)
		}
	}
	return out
}

// TransformMobilityBlocks gates every block in the daily mobility routine.
// Blocks whose items are all gated out are omitted.
func TransformMobilityBlocks(blocks []MobilityBlock, available EquipmentSet) []MobilityBlock {
	out := make([]MobilityBlock, 0, len(blocks))
	for _, block := range blocks {
		items := TransformMobilityList(block.Items, available)
		if len(items) == 0 {
			continue
		}
		out = append(out, MobilityBlock{Title: block.Title, Duration: block.Duration, Items: items})
	}
	return out
}
