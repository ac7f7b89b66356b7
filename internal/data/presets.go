package data

import (
	"github.com/udisondev/ehpsim/internal/buff"
	"github.com/udisondev/ehpsim/internal/heal"
	"github.com/udisondev/ehpsim/internal/preset"
)

func f(v float64) *float64 { return &v }

// buffPresets builds the built-in skill tables. Tables are immutable, so a
// fresh map per call only costs the allocations.
func buffPresets() map[string]buff.Table {
	return map[string]buff.Table{
		"Abyssal Banquet": buff.NewFlat(buff.Value{DamageMul: 0.85},
			"If this ship is equipped with a Normal or AP main gun, decrease this ship’s damage taken by 15.0% and increase this ship’s critical rate by 12.0%."),
		"All Out Assault - Takao Class II": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 1, EvasionChance: 0.10}, Period: 300, Rate: 0, FirstOffset: f(18), FirstRate: f(1), Duration: 300,
			Info: "Every 4 shots from the main gun, trigger All Out Assault - Takao Class II. The first time this ship fires its All Out Assault, increases this ship’s Evasion Rate by 10%, activating only once. [This calculation assumes it triggers 18s into the fight.]",
		}),
		"An Shan Name Ship": buff.NewFlat(buff.Value{DamageMul: 1, EvasionAdd: 0.10},
			"Increase Accuracy and FP by 25.0% and EVA by 10.0% for all An Shan-class destroyers."),
		"Bilibili Mascot Girl - 22": buff.NewFlat(buff.Value{DamageMul: 1, EvasionAdd: 0.35},
			"When sortied as main tank in the same fleet as 33, increase both 22’s and 33’s EVA by 35.0%."),
		"Blazing Choreography": buff.NewFlat(buff.Value{DamageMul: 1, EvasionAdd: 0.15},
			"At the start of the battle, if there is a CV, CVL, or Muse ship in the same fleet, increase this ship’s EVA by 15% and increase your Vanguard’s AA by 15%."),
		"Death Raid": buff.NewFlat(buff.Identity(), "Death Raid is assumed to not activate."),
		"Defense Order": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 0.85}, Period: 20, Rate: 0.25, Duration: 8,
			Info: "Every 20s, 25% chance to decrease the damage your entire fleet takes by 15% for 8s.",
		}),
		"Demon Dance": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 1, EvasionAdd: 0.30}, Period: 20, Rate: 0.70, Duration: 5,
			Info: "Every 20s, 70% chance to increase own Evasion by 30% for 5s and release a powerful barrage while launching fast torpedoes in a helical pattern.",
		}),
		"Dual Nock": buff.NewFlat(buff.Value{DamageMul: 0.85},
			"If equipped with a Main Gun in own Secondary Weapon slot, increase AA Gun Efficiency by 15%. If equipped with an AA Gun in own Secondary Weapon slot, increase Main Gun Efficiency by 15%. If placed in the backmost position in the vanguard, decrease damage taken by self by 15%."),
		"Emergency Maneuvers": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 1, PerfectDodge: true}, Period: 20, Rate: 0.30, Duration: 6,
			Info: "Every 20s, 30% chance to evade all incoming attacks for 6s.",
		}),
		"Engulfer of the Golden Vortex": buff.NewFlat(buff.Value{DamageMul: 1, EvasionAdd: 0.15},
			"When this ship’s torpedoes hit an enemy, decrease that enemy’s Speed by 60.0% for 5s. As long as this ship is not Out of Ammo, increase this ship’s EVA by 15.0%."),
		"Giant Hunter": buff.NewFlat(buff.Value{DamageMul: 1, EvasionAdd: 0.15},
			"Increase own EVA and TRP by 15.0%. Increase own damage against medium armor enemies by 25.0%. Slow enemy Heavy Cruisers by 30% for 5s after hitting them 4 times."),
		"Hide and Seek": buff.NewComposite(
			buff.MustPeriodic(buff.PeriodicParams{
				Value: buff.Value{DamageMul: 1, EvasionChance: 0.40}, Period: 20, Rate: 1, FirstOffset: f(0), Duration: 5,
			}),
			buff.MustPeriodic(buff.PeriodicParams{
				Value: buff.Value{DamageMul: 1, PerfectDodge: true}, Period: 20, Rate: 1, FirstOffset: f(0), Duration: 2,
			}),
			buff.NewFlat(buff.Identity(), "When this ship fires its Torpedoes: deploy a smokescreen, and a barrier onto this ship. This smokescreen increases Evasion Rate by 40.0% for all ships inside it and lasts 5s. The barrier lasts 5s and can absorb up to 6.0% of this ship’s max HP. If this barrier is destroyed before it expires, this ship evades all attacks for 2s."),
			buff.NewFlat(buff.Identity(), "For the purpose of this calculation, she’s assumed to fire torps every 20 seconds, and the barrier is assumed to always pop. This will be updated if more emperical data arrives."),
		),
		"Mercurial Memories": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 1, PerfectDodge: true}, Period: 20, Rate: 1, Duration: 10,
			Info: "Increase this ship’s damage dealt to enemy CAs and BBs by 20%. When this ship takes damage, 15% chance to for her to evade all enemy attacks for 10s. (This skill has a 20s cooldown when activated and starts on cooldown.) [For this calculation, she is assumed to proc as soon as possible.]",
		}),
		"Mizuho’s Intuition": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 1, EvasionAdd: 0.25}, Period: 20, Rate: 1, Duration: 12,
			Info: "Every 20s, 100% chance to increase own Evasion by 25% and Accuracy by 50% for 12s. [Torp damage reduction is not considered for this calculation.]",
		}),
		"Practical Teaching": buff.NewFlat(buff.Value{DamageMul: 0.92},
			"For 80s after battle starts, increase damage dealt by self by 15%, and reduce damage taken by self by 8% and by other Destroyers in the same fleet by 12%."),
		"Shields": buff.NewFlat(buff.Identity(), "Rotating and/or stationary shields are not factored into this calculation."),
		"Smokescreen": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 1, EvasionChance: 0.40}, Period: 15, Rate: 0.30, FirstOffset: f(0), FirstRate: f(1), Duration: 5,
			Info: "When the battle begins, and 30% chance every 15s after that, deploy a smokescreen that lasts for 5s. Allied ships inside the smokescreen gain 40% evasion rate.",
		}),
		"Smokescreen: Light Cruisers": buff.MustPeriodic(buff.PeriodicParams{
			Value: buff.Value{DamageMul: 1, EvasionChance: 0.35}, Period: 20, Rate: 0.20, FirstOffset: f(10), FirstRate: f(1), Duration: 10,
			Info: "10s after battle starts and 20% chance every 20s after that: deploy a smokescreen that increases Evasion Rate by 35% and decreases damage taken from enemy aircraft by 35% for all your ships inside it. Smokescreen lasts for 10s, and does not stack with other smokescreens.",
		}),
		"Vice Defense": buff.NewFlat(buff.Value{DamageMul: 0.96},
			"When taking damage, 8.0% chance to decrease said damage by 50%. [This is treated as a 4% flat-damage-reduction for this calculation.]"),
	}
}

func healPresets() map[string]heal.Entry {
	return map[string]heal.Entry{
		"Hide and Seek": heal.MustNew(heal.Params{Magnitude: 0.06, Period: 20, Rate: 1, FirstOffset: f(0)}),
	}
}

// Presets returns the built-in preset table.
func Presets() *preset.Table {
	return preset.New(buffPresets(), healPresets())
}
