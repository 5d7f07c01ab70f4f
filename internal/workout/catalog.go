package workout

// The exercise catalog and alternative map are fixed at process start and
// never mutated. Every alternative key must exist in the catalog, and the
// bodyweight tier is mandatory whenever a link exists at all; the catalog
// tests enforce both.

const (
	KeyChestSupportedRow    Key = "chestSupportedRow"
	KeySingleArmRow         Key = "singleArmRow"
	KeySuitcaseCarry        Key = "suitcaseCarry"
	KeyDeadBug              Key = "deadBug"
	KeyGobletSquat          Key = "gobletSquat"
	KeyRomanianDeadlift     Key = "romanianDeadlift"
	KeyKettlebellSwing      Key = "kettlebellSwing"
	KeyKettlebellSwingEMOM  Key = "kettlebellSwingEMOM"
	KeyPopUpSprawl          Key = "popUpSprawl"
	KeyHalfKneelingPress    Key = "halfKneelingPress"
	KeyFloorPress           Key = "floorPress"
	KeyWindmill             Key = "windmill"
	KeyHalo                 Key = "halo"
	KeyReverseLunge         Key = "reverseLunge"
	KeyBentOverRow          Key = "bentOverRow"
	KeyFarmerCarry          Key = "farmerCarry"
	KeyPushUps              Key = "pushUps"
	KeyInvertedRow          Key = "invertedRow"
	KeyBandRow              Key = "bandRow"
	KeyProneRow             Key = "proneRow"
	KeyBandPullThrough      Key = "bandPullThrough"
	KeyBandChestPress       Key = "bandChestPress"
	KeyHalfKneelingBandPress Key = "halfKneelingBandPress"
	KeyBandGoodMorning      Key = "bandGoodMorning"
	KeyTempoAirSquat        Key = "tempoAirSquat"
	KeySingleLegHipHinge    Key = "singleLegHipHinge"
	KeyJumpSquat            Key = "jumpSquat"
	KeyPikePushUp           Key = "pikePushUp"
	KeySidePlank            Key = "sidePlank"
	KeyDeadBugUnloaded      Key = "deadBugUnloaded"
	KeyReverseLungeBW       Key = "reverseLungeBodyweight"
	KeyBearCrawl            Key = "bearCrawl"
)

var catalog = map[Key]Definition{
	KeyChestSupportedRow: {
		Key:      KeyChestSupportedRow,
		Name:     "Chest-Supported DB Row",
		Load:     "Matched DBs",
		Category: CategoryDumbbell,
		Notes:    "Focus on squeezing shoulder blades together at the top.",
		Gif:      "/exercises/chest-supported-row.gif",
	},
	KeySingleArmRow: {
		Key:      KeySingleArmRow,
		Name:     "1-Arm DB Row (split stance)",
		Load:     "1 DB",
		Category: CategoryDumbbell,
		Notes:    "Stagger your stance for stability. Keep hips square to the ground.",
		Gif:      "/exercises/single-arm-row.gif",
	},
	KeySuitcaseCarry: {
		Key:      KeySuitcaseCarry,
		Name:     "DB Suitcase Carry",
		Load:     "1 DB",
		Category: CategoryDumbbell,
		Notes:    "Walk tall, don't lean. Builds anti-lateral flexion strength crucial for balance on the board.",
		Gif:      "/exercises/suitcase-carry.gif",
	},
	KeyDeadBug: {
		Key:      KeyDeadBug,
		Name:     "Dead Bug (DBs held straight up)",
		Load:     "Matched DBs",
		Category: CategoryDumbbell,
		Notes:    "Press DBs toward ceiling throughout. Only lower opposite arm/leg as far as you can maintain flat back.",
		Gif:      "/exercises/dead-bug.gif",
	},
	KeyGobletSquat: {
		Key:      KeyGobletSquat,
		Name:     "Goblet Squat",
		Load:     "1 DB",
		Category: CategoryDumbbell,
		Notes:    "Explode up from the bottom. This builds the power for quick pop-ups.",
		Gif:      "/exercises/goblet-squat.gif",
	},
	KeyRomanianDeadlift: {
		Key:      KeyRomanianDeadlift,
		Name:     "DB Romanian Deadlift",
		Load:     "Matched DBs",
		Category: CategoryDumbbell,
		Notes:    "Hinge at hips, keep slight knee bend. Feel stretch in hamstrings, not lower back.",
		Gif:      "/exercises/db-rdl.gif",
	},
	KeyKettlebellSwing: {
		Key:      KeyKettlebellSwing,
		Name:     "Kettlebell Swing",
		Load:     "Kettlebell",
		Category: CategoryKettlebell,
		Notes:    "Hinge style - drive with hips, not arms. This is your hip power generator.",
		Gif:      "/exercises/kbs.gif",
	},
	KeyKettlebellSwingEMOM: {
		Key:      KeyKettlebellSwingEMOM,
		Name:     "Kettlebell Swing EMOM",
		Load:     "Kettlebell",
		Category: CategoryKettlebell,
		Gif:      "/exercises/kbs.gif",
	},
	KeyPopUpSprawl: {
		Key:      KeyPopUpSprawl,
		Name:     "Pop-Up Sprawl → Stand",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Smooth and controlled. Start prone, sprawl to pop-up position, stand.",
		Gif:      "/exercises/pop-up-sprawl.gif",
	},
	KeyHalfKneelingPress: {
		Key:      KeyHalfKneelingPress,
		Name:     "Half-Kneeling DB Press",
		Load:     "1 DB",
		Category: CategoryDumbbell,
		Notes:    "Squeeze glute on kneeling side. Press straight up, no lean. Builds rotational stability.",
		Gif:      "/exercises/half-kneeling-press.gif",
	},
	KeyFloorPress: {
		Key:      KeyFloorPress,
		Name:     "DB Floor Press",
		Load:     "Matched DBs",
		Category: CategoryDumbbell,
		Notes:    "Elbows at 45 degrees. Control the descent until triceps touch floor.",
		Gif:      "/exercises/floor-press.gif",
	},
	KeyWindmill: {
		Key:      KeyWindmill,
		Name:     "DB Windmill",
		Load:     "1 DB",
		Category: CategoryDumbbell,
		Notes:    "Light weight, focus on hip hinge and thoracic rotation. Keep eyes on the DB overhead.",
		Gif:      "/exercises/windmill.gif",
	},
	KeyHalo: {
		Key:      KeyHalo,
		Name:     "Tall-Kneeling DB Halo",
		Load:     "1 DB",
		Category: CategoryDumbbell,
		Notes:    "Circle the DB around your head slowly. Engages shoulders and core for paddling stability.",
		Gif:      "/exercises/halo.gif",
	},
	KeyReverseLunge: {
		Key:      KeyReverseLunge,
		Name:     "Reverse Lunges (goblet hold)",
		Load:     "1 DB",
		Category: CategoryDumbbell,
		Gif:      "/exercises/reverse-lunge.gif",
	},
	KeyBentOverRow: {
		Key:      KeyBentOverRow,
		Name:     "Bent-Over DB Rows",
		Load:     "Matched DBs",
		Category: CategoryDumbbell,
		Gif:      "/exercises/bent-over-row.gif",
	},
	KeyFarmerCarry: {
		Key:      KeyFarmerCarry,
		Name:     "Farmer Carry",
		Load:     "Matched DBs",
		Category: CategoryDumbbell,
		Gif:      "/exercises/farmer-carry.gif",
	},
	KeyPushUps: {
		Key:      KeyPushUps,
		Name:     "Push-Ups",
		Load:     "BW",
		Category: CategoryBodyweight,
	},

	// Substitution variants.
	KeyInvertedRow: {
		Key:      KeyInvertedRow,
		Name:     "Inverted Row",
		Load:     "Bar",
		Category: CategoryPullupBar,
		Notes:    "Body straight like a plank. The lower the bar, the harder it gets.",
		Gif:      "/exercises/inverted-row.gif",
	},
	KeyBandRow: {
		Key:      KeyBandRow,
		Name:     "Band Row",
		Load:     "Band",
		Category: CategoryResistanceBand,
		Notes:    "Anchor at chest height. Squeeze shoulder blades, slow return.",
		Gif:      "/exercises/band-row.gif",
	},
	KeyProneRow: {
		Key:      KeyProneRow,
		Name:     "Prone Row (towel squeeze)",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Lying face down, row a rolled towel to your chest and squeeze hard for 2 seconds.",
	},
	KeyBandPullThrough: {
		Key:      KeyBandPullThrough,
		Name:     "Band Pull-Through",
		Load:     "Band",
		Category: CategoryResistanceBand,
		Notes:    "Same hip snap as the swing. Stand tall at the top, glutes tight.",
	},
	KeyBandChestPress: {
		Key:      KeyBandChestPress,
		Name:     "Standing Band Chest Press",
		Load:     "Band",
		Category: CategoryResistanceBand,
		Notes:    "Split stance, brace your core against the band's pull.",
	},
	KeyHalfKneelingBandPress: {
		Key:      KeyHalfKneelingBandPress,
		Name:     "Half-Kneeling Band Press",
		Load:     "Band",
		Category: CategoryResistanceBand,
		Notes:    "Band under the kneeling-side knee. Press straight up, no lean.",
	},
	KeyBandGoodMorning: {
		Key:      KeyBandGoodMorning,
		Name:     "Band Good Morning",
		Load:     "Band",
		Category: CategoryResistanceBand,
		Notes:    "Band over shoulders, hinge at the hips. Feel the hamstrings load.",
	},
	KeyTempoAirSquat: {
		Key:      KeyTempoAirSquat,
		Name:     "Tempo Air Squat",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "3 seconds down, explode up. Tempo replaces the missing load.",
	},
	KeySingleLegHipHinge: {
		Key:      KeySingleLegHipHinge,
		Name:     "Single-Leg Hip Hinge",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Reach for the floor, rear leg long. Balance work is a bonus for the board.",
	},
	KeyJumpSquat: {
		Key:      KeyJumpSquat,
		Name:     "Jump Squat",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Land soft, reset, repeat. Hip power without the bell.",
	},
	KeyPikePushUp: {
		Key:      KeyPikePushUp,
		Name:     "Pike Push-Up",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Hips high, head travels toward the floor between your hands.",
	},
	KeySidePlank: {
		Key:      KeySidePlank,
		Name:     "Side Plank",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Straight line shoulder to ankle. Same anti-lateral work as the carry.",
	},
	KeyDeadBugUnloaded: {
		Key:      KeyDeadBugUnloaded,
		Name:     "Dead Bug (unloaded)",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Arms reach toward the ceiling. Only lower opposite arm/leg as far as your back stays flat.",
		Gif:      "/exercises/dead-bug.gif",
	},
	KeyReverseLungeBW: {
		Key:      KeyReverseLungeBW,
		Name:     "Reverse Lunge (bodyweight)",
		Load:     "BW",
		Category: CategoryBodyweight,
		Gif:      "/exercises/reverse-lunge.gif",
	},
	KeyBearCrawl: {
		Key:      KeyBearCrawl,
		Name:     "Bear Crawl",
		Load:     "BW",
		Category: CategoryBodyweight,
		Notes:    "Knees an inch off the floor, hips quiet. Crawl slow.",
	},
}

var alternatives = map[Key]Alternatives{
	KeyChestSupportedRow:   {PullupBar: KeyInvertedRow, Band: KeyBandRow, Bodyweight: KeyProneRow},
	KeyBentOverRow:         {PullupBar: KeyInvertedRow, Band: KeyBandRow, Bodyweight: KeyProneRow},
	KeySingleArmRow:        {Band: KeyBandRow, Bodyweight: KeyProneRow},
	KeyInvertedRow:         {Band: KeyBandRow, Bodyweight: KeyProneRow},
	KeyGobletSquat:         {Bodyweight: KeyTempoAirSquat},
	KeyRomanianDeadlift:    {Band: KeyBandGoodMorning, Bodyweight: KeySingleLegHipHinge},
	KeyKettlebellSwing:     {Band: KeyBandPullThrough, Bodyweight: KeyJumpSquat},
	KeyKettlebellSwingEMOM: {Band: KeyBandPullThrough, Bodyweight: KeyJumpSquat},
	KeyFloorPress:          {Band: KeyBandChestPress, Bodyweight: KeyPushUps},
	KeyHalfKneelingPress:   {Band: KeyHalfKneelingBandPress, Bodyweight: KeyPikePushUp},
	KeySuitcaseCarry:       {Bodyweight: KeySidePlank},
	KeyDeadBug:             {Bodyweight: KeyDeadBugUnloaded},
	KeyReverseLunge:        {Bodyweight: KeyReverseLungeBW},
	KeyFarmerCarry:         {Bodyweight: KeyBearCrawl},
	// windmill and halo have no safe substitution and surface as-is when
	// the visitor lacks dumbbells.
}

// Lookup returns the catalog definition for key.
func Lookup(key Key) (Definition, bool) {
	def, ok := catalog[key]
	return def, ok
}

// AlternativesFor returns the alternative link for key, if any.
func AlternativesFor(key Key) (Alternatives, bool) {
	alts, ok := alternatives[key]
	return alts, ok
}
