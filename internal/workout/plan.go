package workout

import "fmt"

// TotalDays is the length of the program.
const TotalDays = 28

// itemConfig carries the per-day prescription for an exercise occurrence.
// Zero fields fall back to the catalog definition during transformation.
type itemConfig struct {
	sets  string
	reps  string
	time  string
	tempo string
	notes string
	load  string
}

// ex builds a standard item from a catalog definition. Display fields are
// filled from the catalog so an untransformed day still renders; notes hold
// only the per-day override, the default note is applied by TransformDay.
func ex(id string, key Key, cfg itemConfig) Item {
	def := catalog[key]
	load := cfg.load
	if load == "" {
		load = def.Load
	}
	return Item{
		ID:      id,
		Kind:    ItemStandard,
		Key:     key,
		Name:    def.Name,
		Sets:    cfg.sets,
		Reps:    cfg.reps,
		Time:    cfg.time,
		Tempo:   cfg.tempo,
		Load:    load,
		Notes:   cfg.notes,
		Gif:     def.Gif,
		YouTube: def.YouTube,
	}
}

// circuitEx builds a circuit step. It shares the circuit header's rounds, so
// it carries no sets of its own.
func circuitEx(id string, key Key, cfg itemConfig) Item {
	item := ex(id, key, cfg)
	item.Kind = ItemCircuitStep
	item.Sets = ""
	return item
}

// circuitHeader builds the opaque label introducing a circuit. Headers are
// never resolved against the catalog.
func circuitHeader(id string, rounds int, notes string) Item {
	return Item{
		ID:    id,
		Kind:  ItemHeader,
		Name:  fmt.Sprintf("Circuit: %d Rounds", rounds),
		Sets:  fmt.Sprintf("%d rounds", rounds),
		Load:  "Mixed",
		Notes: notes,
	}
}

func benchmarkHeader(id string, rounds int, notes string) Item {
	return Item{
		ID:    id,
		Kind:  ItemHeader,
		Name:  fmt.Sprintf("Benchmark Circuit: %d Rounds", rounds),
		Sets:  fmt.Sprintf("%d rounds", rounds),
		Load:  "Mixed",
		Notes: notes,
	}
}

func restDay(id int, dayOfWeek, subtitle string) Day {
	return Day{
		ID:        id,
		DayOfWeek: dayOfWeek,
		Title:     "REST",
		Subtitle:  subtitle,
		Rest:      true,
	}
}

// Shoulder finishers alternate between upper-body days. Their items gate on
// their own equipment requirements, not on the catalog.

var shoulderFinisherA = Finisher{
	Name: "Long-Lever Hold",
	Items: []MobilityItem{
		{
			ID:                "sf1",
			Name:              "Bottom-Up DB Hold",
			Time:              "20-30 sec/side × 2",
			Notes:             "Light DB held bottom-up. Builds rotator cuff endurance.",
			RequiresEquipment: CategoryDumbbell,
			Alternative: &MobilityItem{
				ID:    "sf1-alt",
				Name:  "Wall Slide",
				Reps:  "2×10 slow",
				Notes: "Back and arms against the wall, slide overhead without arching.",
			},
		},
	},
}

var shoulderFinisherB = Finisher{
	Name: "Scap Endurance",
	Items: []MobilityItem{
		{
			ID:      "sf2a",
			Name:    "Prone Y-Raise",
			Reps:    "2×8 slow",
			Notes:   "Light DBs or bodyweight. Squeeze shoulder blades, thumbs up.",
			YouTube: "https://www.youtube.com/watch?v=w1AWGKubE5U",
		},
		{
			ID:                "sf2b",
			Name:              "Dead Hang",
			Time:              "30-45 sec",
			Notes:             "Passive hang. Let shoulders decompress.",
			YouTube:           "https://www.youtube.com/shorts/9eY15prKcUY",
			RequiresEquipment: CategoryPullupBar,
		},
	},
}

var dailyMobility = []MobilityBlock{
	{
		Title:    "T-Spine + Scap",
		Duration: "3-4 min",
		Items: []MobilityItem{
			{
				ID:      "m1a",
				Name:    "Quadruped T-Spine Rotation",
				Reps:    "5/side",
				Notes:   "Hand behind head, rotate through mid-back. Keep hips square.",
				YouTube: "https://www.youtube.com/shorts/IJhZNTsLf-A",
			},
			{
				ID:      "m1b",
				Name:    "Scapula Push-Ups",
				Reps:    "8-10",
				Notes:   "Push floor away at top, let shoulder blades pinch at bottom.",
				YouTube: "https://www.youtube.com/watch?v=NKekqeudgWs",
			},
			{
				ID:      "m1c",
				Name:    "Neck CARs",
				Reps:    "2 circles each way",
				Notes:   "Slow, controlled circles. Don't force range.",
				YouTube: "https://www.youtube.com/shorts/beLPmjhPcWw",
			},
		},
	},
	{
		Title:    "Shoulders",
		Duration: "2-3 min",
		Items: []MobilityItem{
			{
				ID:      "m2a",
				Name:    "Arm Circles (controlled)",
				Reps:    "10 each direction",
				Notes:   "Forward and backward. Smooth, not jerky.",
				YouTube: "https://www.youtube.com/shorts/2sEZSRbOlVA",
			},
			{
				ID:      "m2b",
				Name:    "Shoulder CARs",
				Reps:    "3 slow reps/side",
				Notes:   "Biggest circle possible without moving torso.",
				YouTube: "https://www.youtube.com/watch?v=9FFiaMIkcNY",
			},
		},
	},
	{
		Title:    "Hips",
		Duration: "1-2 min",
		Items: []MobilityItem{
			{
				ID:      "m3a",
				Name:    "World's Greatest Stretch",
				Reps:    "3/side",
				Notes:   "Lunge, elbow to instep, rotate and reach to sky.",
				YouTube: "https://www.youtube.com/watch?v=-CiWQ2IvY34",
			},
			{
				ID:      "m3b",
				Name:    "Hip Airplanes",
				Reps:    "3/side",
				Notes:   "Single leg, rotate torso open and closed. Control balance.",
				YouTube: "https://www.youtube.com/watch?v=4XCbYaQGF2o",
			},
		},
	},
}

var plan = []Week{
	{
		ID:    1,
		Name:  "WEEK 1",
		Theme: "BASELINE CONTROL",
		Days: []Day{
			{
				ID:        1,
				DayOfWeek: "Monday",
				Title:     "UPPER PULL",
				Subtitle:  "Paddling Engine",
				Finisher:  &shoulderFinisherA,
				Items: []Item{
					ex("1a", KeyChestSupportedRow, itemConfig{
						sets:  "3",
						reps:  "8",
						tempo: "3 sec down",
						notes: "Focus on squeezing shoulder blades together at the top. Control the descent for 3 full seconds.",
					}),
					ex("1b", KeySingleArmRow, itemConfig{sets: "2", reps: "10/side"}),
					ex("1c", KeySuitcaseCarry, itemConfig{sets: "4", time: "30 sec/side"}),
					ex("1d", KeyDeadBug, itemConfig{sets: "3", reps: "6/side"}),
				},
			},
			{
				ID:        2,
				DayOfWeek: "Tuesday",
				Title:     "LOWER BODY",
				Subtitle:  "Pop-Up Power",
				Items: []Item{
					ex("2a", KeyGobletSquat, itemConfig{sets: "3", reps: "6", tempo: "Fast up"}),
					ex("2b", KeyRomanianDeadlift, itemConfig{sets: "3", reps: "8"}),
					ex("2c", KeyKettlebellSwing, itemConfig{sets: "4", reps: "15"}),
					ex("2d", KeyPopUpSprawl, itemConfig{sets: "3", reps: "5", notes: "Quality over speed."}),
				},
			},
			restDay(3, "Wednesday", "Recovery Day"),
			{
				ID:        4,
				DayOfWeek: "Thursday",
				Title:     "UPPER PUSH",
				Subtitle:  "Rotation Power",
				Finisher:  &shoulderFinisherB,
				Items: []Item{
					ex("4a", KeyHalfKneelingPress, itemConfig{sets: "3", reps: "6/side"}),
					ex("4b", KeyFloorPress, itemConfig{sets: "3", reps: "8"}),
					ex("4c", KeyWindmill, itemConfig{sets: "3", reps: "5/side"}),
					ex("4d", KeyHalo, itemConfig{sets: "3", reps: "8 each direction"}),
				},
			},
			{
				ID:        5,
				DayOfWeek: "Friday",
				Title:     "FLOW",
				Subtitle:  "Conditioning",
				Items: []Item{
					circuitHeader("5a", 4, "Rest 90 sec between rounds. Move with purpose but don't rush."),
					circuitEx("5b", KeyKettlebellSwing, itemConfig{reps: "12"}),
					circuitEx("5c", KeyReverseLunge, itemConfig{reps: "8 total"}),
					circuitEx("5d", KeyBentOverRow, itemConfig{reps: "10"}),
					circuitEx("5e", KeyFarmerCarry, itemConfig{time: "40 sec"}),
				},
			},
			restDay(6, "Saturday", "Surf or Recover"),
			restDay(7, "Sunday", "Surf or Recover"),
		},
	},
	{
		ID:    2,
		Name:  "WEEK 2",
		Theme: "VOLUME PROGRESSION",
		Days: []Day{
			{
				ID:        8,
				DayOfWeek: "Monday",
				Title:     "UPPER PULL",
				Subtitle:  "Paddling Engine +",
				Finisher:  &shoulderFinisherB,
				Items: []Item{
					ex("8a", KeyChestSupportedRow, itemConfig{
						sets:  "4",
						reps:  "8",
						tempo: "3 sec down",
						notes: "Added set from Week 1. Same controlled tempo.",
					}),
					ex("8b", KeySingleArmRow, itemConfig{
						sets:  "3",
						reps:  "10/side",
						notes: "One more set than Week 1. Maintain form quality.",
					}),
					ex("8c", KeySuitcaseCarry, itemConfig{
						sets:  "4",
						time:  "40-45 sec/side",
						notes: "Extended time under tension. Stay tall, breathe steadily.",
					}),
					ex("8d", KeyDeadBug, itemConfig{
						sets:  "4",
						reps:  "6/side",
						notes: "Added set. Same quality focus - flat back throughout.",
					}),
				},
			},
			{
				ID:        9,
				DayOfWeek: "Tuesday",
				Title:     "LOWER BODY",
				Subtitle:  "Pop-Up Power +",
				Items: []Item{
					ex("9a", KeyGobletSquat, itemConfig{
						sets:  "4",
						reps:  "6",
						tempo: "Fast up",
						notes: "Volume increase. Same explosive intent.",
					}),
					ex("9b", KeyRomanianDeadlift, itemConfig{
						sets:  "4",
						reps:  "8",
						notes: "Added set. Keep the stretch-tension in hamstrings.",
					}),
					ex("9c", KeyKettlebellSwing, itemConfig{
						sets:  "5",
						reps:  "15",
						notes: "5 sets now. Short rest between sets (60 sec max).",
					}),
					ex("9d", KeyPopUpSprawl, itemConfig{
						sets:  "4",
						reps:  "5",
						notes: "Added set. Start adding a bit more speed while staying smooth.",
					}),
				},
			},
			restDay(10, "Wednesday", "Recovery Day"),
			{
				ID:        11,
				DayOfWeek: "Thursday",
				Title:     "UPPER PUSH",
				Subtitle:  "Rotation Power +",
				Finisher:  &shoulderFinisherA,
				Items: []Item{
					ex("11a", KeyHalfKneelingPress, itemConfig{
						sets:  "4",
						reps:  "6/side",
						notes: "Volume bump. Same technique focus.",
					}),
					ex("11b", KeyFloorPress, itemConfig{
						sets:  "4",
						reps:  "8",
						notes: "Added set. Maintain the 45-degree elbow angle.",
					}),
					ex("11c", KeyWindmill, itemConfig{
						sets:  "4",
						reps:  "5/side",
						notes: "One more set. Feeling looser in the hips yet?",
					}),
					ex("11d", KeyHalo, itemConfig{
						sets:  "4",
						reps:  "8 each direction",
						notes: "Added set. Keep the circles smooth and controlled.",
					}),
				},
			},
			{
				ID:        12,
				DayOfWeek: "Friday",
				Title:     "FLOW",
				Subtitle:  "Conditioning +",
				Items: []Item{
					circuitHeader("12a", 4, "Same structure, try to reduce rest to 75 sec between rounds."),
					circuitEx("12b", KeyKettlebellSwing, itemConfig{reps: "15", notes: "Bumped from 12 reps"}),
					circuitEx("12c", KeyReverseLunge, itemConfig{reps: "10 total", notes: "Bumped from 8 reps"}),
					circuitEx("12d", KeyBentOverRow, itemConfig{reps: "12", notes: "Bumped from 10 reps"}),
					circuitEx("12e", KeyFarmerCarry, itemConfig{time: "45 sec", notes: "Extended from 40 sec"}),
				},
			},
			restDay(13, "Saturday", "Surf or Recover"),
			restDay(14, "Sunday", "Surf or Recover"),
		},
	},
	{
		ID:    3,
		Name:  "WEEK 3",
		Theme: "INTENSITY FOCUS",
		Days: []Day{
			{
				ID:        15,
				DayOfWeek: "Monday",
				Title:     "UPPER PULL",
				Subtitle:  "Slow & Strong",
				Finisher:  &shoulderFinisherA,
				Items: []Item{
					ex("15a", KeyChestSupportedRow, itemConfig{
						sets:  "4",
						reps:  "5-6",
						tempo: "4 sec down",
						notes: "Slower eccentric now. Fewer reps, more time under tension.",
					}),
					ex("15b", KeySingleArmRow, itemConfig{
						sets:  "3",
						reps:  "6/side",
						tempo: "4 sec down",
						notes: "Same slow tempo. Feel every inch of the movement.",
					}),
					ex("15c", KeySuitcaseCarry, itemConfig{
						sets:  "4",
						time:  "45 sec/side",
						notes: "Maximum time. Stay perfectly vertical.",
					}),
					ex("15d", KeyDeadBug, itemConfig{
						sets:  "4",
						reps:  "8/side",
						notes: "Added reps. Slower, more controlled extension.",
					}),
				},
			},
			{
				ID:        16,
				DayOfWeek: "Tuesday",
				Title:     "LOWER BODY",
				Subtitle:  "Tension & Power",
				Items: []Item{
					ex("16a", KeyGobletSquat, itemConfig{
						sets:  "4",
						reps:  "5",
						tempo: "1 sec pause at bottom",
						notes: "Pause squat. Explode from the dead stop.",
					}),
					ex("16b", KeyRomanianDeadlift, itemConfig{
						sets:  "4",
						reps:  "6",
						tempo: "4 sec down",
						notes: "Slow eccentric. Deep hamstring stretch.",
					}),
					ex("16c", KeyKettlebellSwingEMOM, itemConfig{
						sets:  "10 min",
						reps:  "10 every minute",
						notes: "Every Minute On the Minute. 10 swings, rest remainder of minute. Repeat for 10 minutes.",
					}),
					ex("16d", KeyPopUpSprawl, itemConfig{
						sets:  "4",
						reps:  "5",
						notes: "Focus on speed now. Quick and snappy.",
					}),
				},
			},
			restDay(17, "Wednesday", "Recovery Day"),
			{
				ID:        18,
				DayOfWeek: "Thursday",
				Title:     "UPPER PUSH",
				Subtitle:  "Slow & Strong",
				Finisher:  &shoulderFinisherB,
				Items: []Item{
					ex("18a", KeyHalfKneelingPress, itemConfig{
						sets:  "4",
						reps:  "5/side",
						tempo: "4 sec down",
						notes: "Slow lowering phase. Control is power.",
					}),
					ex("18b", KeyFloorPress, itemConfig{
						sets:  "4",
						reps:  "6",
						tempo: "4 sec down",
						notes: "Slow eccentric until triceps touch floor.",
					}),
					ex("18c", KeyWindmill, itemConfig{
						sets:  "4",
						reps:  "5/side",
						notes: "Same as Week 2. Maintain the quality.",
					}),
					ex("18d", KeyHalo, itemConfig{
						sets:  "4",
						reps:  "10 each direction",
						notes: "Added reps. Slow, deliberate circles.",
					}),
				},
			},
			{
				ID:        19,
				DayOfWeek: "Friday",
				Title:     "FLOW",
				Subtitle:  "Endurance Push",
				Items: []Item{
					circuitHeader("19a", 5, "Added a round. Push through but don't sacrifice form."),
					circuitEx("19b", KeyKettlebellSwing, itemConfig{reps: "15"}),
					circuitEx("19c", KeyReverseLunge, itemConfig{reps: "10 total"}),
					circuitEx("19d", KeyBentOverRow, itemConfig{reps: "12"}),
					circuitEx("19e", KeyFarmerCarry, itemConfig{time: "45 sec"}),
				},
			},
			restDay(20, "Saturday", "Surf or Recover"),
			restDay(21, "Sunday", "Surf or Recover"),
		},
	},
	{
		ID:    4,
		Name:  "WEEK 4",
		Theme: "POWER & DENSITY",
		Days: []Day{
			{
				ID:        22,
				DayOfWeek: "Monday",
				Title:     "UPPER PULL",
				Subtitle:  "Peak Power",
				Finisher:  &shoulderFinisherB,
				Items: []Item{
					ex("22a", KeyChestSupportedRow, itemConfig{
						sets:  "3",
						reps:  "6",
						tempo: "Explosive up",
						notes: "Reduced sets, explosive intent. Quality reps only.",
					}),
					ex("22b", KeySingleArmRow, itemConfig{
						sets:  "2",
						reps:  "8/side",
						tempo: "Explosive up",
						notes: "Power focus. Pull fast, control down.",
					}),
					ex("22c", KeySuitcaseCarry, itemConfig{
						sets:  "3",
						time:  "40 sec/side",
						notes: "Slightly reduced. Stay fresh, stay strong.",
					}),
					ex("22d", KeyDeadBug, itemConfig{
						sets:  "3",
						reps:  "6/side",
						notes: "Back to baseline. Perfect reps.",
					}),
				},
			},
			{
				ID:        23,
				DayOfWeek: "Tuesday",
				Title:     "LOWER BODY",
				Subtitle:  "Explosive Power",
				Items: []Item{
					ex("23a", KeyGobletSquat, itemConfig{
						sets:  "6",
						reps:  "3",
						tempo: "FAST",
						notes: "Power clusters. 3 explosive reps, long rest between sets.",
					}),
					ex("23b", KeyRomanianDeadlift, itemConfig{
						sets:  "3",
						reps:  "6",
						notes: "Reduced volume. Maintain quality.",
					}),
					ex("23c", KeyKettlebellSwingEMOM, itemConfig{
						sets:  "15 min",
						reps:  "10 every minute",
						notes: "Extended to 15 minutes. This is your peak conditioning test.",
					}),
					ex("23d", KeyPopUpSprawl, itemConfig{
						sets:  "4",
						reps:  "3",
						notes: "Fast and crisp. Like you're catching a wave.",
					}),
				},
			},
			restDay(24, "Wednesday", "Recovery Day"),
			{
				ID:        25,
				DayOfWeek: "Thursday",
				Title:     "UPPER PUSH",
				Subtitle:  "Peak Power",
				Finisher:  &shoulderFinisherA,
				Items: []Item{
					ex("25a", KeyHalfKneelingPress, itemConfig{
						sets:  "3",
						reps:  "5/side",
						tempo: "Explosive up",
						notes: "Reduced sets. Explosive pressing power.",
					}),
					ex("25b", KeyFloorPress, itemConfig{
						sets:  "3",
						reps:  "6",
						tempo: "Explosive up",
						notes: "Power focus. Fast up, controlled down.",
					}),
					ex("25c", KeyWindmill, itemConfig{
						sets:  "3",
						reps:  "5/side",
						notes: "Reduced volume. Maintain mobility.",
					}),
					ex("25d", KeyHalo, itemConfig{
						sets:  "3",
						reps:  "8 each direction",
						notes: "Back to baseline. Keep shoulders healthy.",
					}),
				},
			},
			{
				ID:        26,
				DayOfWeek: "Friday",
				Title:     "BENCHMARK",
				Subtitle:  "Peak Flow Test",
				Items: []Item{
					benchmarkHeader("26a", 5, "This is your test. Time it. Feel SPRINGY, not smoked."),
					circuitEx("26b", KeyKettlebellSwing, itemConfig{reps: "15"}),
					circuitEx("26c", KeyPushUps, itemConfig{reps: "10"}),
					circuitEx("26d", KeyBentOverRow, itemConfig{reps: "10"}),
					circuitEx("26e", KeyFarmerCarry, itemConfig{time: "45 sec"}),
				},
			},
			restDay(27, "Saturday", "Surf or Recover"),
			restDay(28, "Sunday", "Surf or Recover"),
		},
	},
}

// Weeks returns the full four-week plan.
func Weeks() []Week {
	return plan
}

// DailyMobility returns the warm-up routine shared by every training day.
func DailyMobility() []MobilityBlock {
	return dailyMobility
}

// DayByID returns the day with the given 1-based identifier.
func DayByID(id int) (Day, bool) {
	for _, week := range plan {
		for _, day := range week.Days {
			if day.ID == id {
				return day, true
			}
		}
	}
	return Day{}, false
}

// WeekForDay returns the week enclosing the given day identifier.
func WeekForDay(id int) (Week, bool) {
	for _, week := range plan {
		for _, day := range week.Days {
			if day.ID == id {
				return week, true
			}
		}
	}
	return Week{}, false
}
