package workout

import "testing"

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested Key
		available EquipmentSet
		want      Key
	}{
		{
			name:      "equipment owned keeps original",
			requested: KeyChestSupportedRow,
			available: NewEquipmentSet(CategoryDumbbell),
			want:      KeyChestSupportedRow,
		},
		{
			name:      "pull-up bar preferred over band",
			requested: KeyChestSupportedRow,
			available: NewEquipmentSet(CategoryPullupBar, CategoryResistanceBand),
			want:      KeyInvertedRow,
		},
		{
			name:      "band preferred over bodyweight",
			requested: KeyChestSupportedRow,
			available: NewEquipmentSet(CategoryResistanceBand),
			want:      KeyBandRow,
		},
		{
			name:      "bodyweight floor",
			requested: KeyChestSupportedRow,
			available: NewEquipmentSet(),
			want:      KeyProneRow,
		},
		{
			name:      "tier without entry falls through",
			requested: KeyGobletSquat,
			available: NewEquipmentSet(CategoryPullupBar, CategoryResistanceBand),
			want:      KeyTempoAirSquat,
		},
		{
			name:      "no alternatives passes through",
			requested: KeyWindmill,
			available: NewEquipmentSet(),
			want:      KeyWindmill,
		},
		{
			name:      "unknown key passes through",
			requested: Key("mystery-move"),
			available: NewEquipmentSet(),
			want:      Key("mystery-move"),
		},
		{
			name:      "bodyweight exercise never substituted",
			requested: KeyPushUps,
			available: NewEquipmentSet(),
			want:      KeyPushUps,
		},
		{
			name:      "kettlebell swing to band pull-through",
			requested: KeyKettlebellSwing,
			available: NewEquipmentSet(CategoryResistanceBand, CategoryDumbbell),
			want:      KeyBandPullThrough,
		},
		{
			name:      "emom variant follows the same chain",
			requested: KeyKettlebellSwingEMOM,
			available: NewEquipmentSet(),
			want:      KeyJumpSquat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Resolve(tt.requested, tt.available); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.requested, got, tt.want)
			}
		})
	}
}

// A pull-up bar alone must not pull a kettlebell exercise up to the bar
// tier when no bar alternative exists for it.
func TestResolveSkipsMissingBarTier(t *testing.T) {
	t.Parallel()

	got := Resolve(KeyRomanianDeadlift, NewEquipmentSet(CategoryPullupBar))
	if got != KeySingleLegHipHinge {
		t.Errorf("Resolve(%q) = %q, want %q", KeyRomanianDeadlift, got, KeySingleLegHipHinge)
	}
}

func TestResolveIsTotalOverCatalog(t *testing.T) {
	t.Parallel()

	sets := []EquipmentSet{
		NewEquipmentSet(),
		NewEquipmentSet(CategoryResistanceBand),
		NewEquipmentSet(CategoryPullupBar),
		FullEquipmentSet(),
	}
	for key := range catalog {
		for _, set := range sets {
			resolved := Resolve(key, set)
			if _, ok := catalog[resolved]; !ok {
				t.Errorf("Resolve(%q) = %q which is not in the catalog", key, resolved)
			}
		}
	}
}
