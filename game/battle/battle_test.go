package battle

import (
	"math/rand"
	"testing"
)

func testCombatants() (Combatant, Combatant) {
	return Combatant{ID: "p1", Name: "Alba"}, Combatant{ID: "p2", Name: "Bruno"}
}

func TestRunAllVariants(t *testing.T) {
	p1, p2 := testCombatants()
	for _, v := range Variants {
		rng := rand.New(rand.NewSource(99))
		res, err := Run(rng, v, p1, p2, nil, nil)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if res.Variant != v {
			t.Errorf("%s: result reports variant %q", v, res.Variant)
		}
		if res.WinnerID != p1.ID && res.WinnerID != p2.ID {
			t.Errorf("%s: winner %q is not a combatant", v, res.WinnerID)
		}
		if res.WinnerID == res.LoserID {
			t.Errorf("%s: winner and loser are the same", v)
		}
		if len(res.Rounds) == 0 || len(res.Rounds) > MaxRounds {
			t.Errorf("%s: played %d rounds", v, len(res.Rounds))
		}
		if res.HP1 < 0 || res.HP1 > MaxHP || res.HP2 < 0 || res.HP2 > MaxHP {
			t.Errorf("%s: HP out of range: %d/%d", v, res.HP1, res.HP2)
		}
	}
}

func TestRunUnknownVariant(t *testing.T) {
	p1, p2 := testCombatants()
	rng := rand.New(rand.NewSource(1))
	if _, err := Run(rng, Variant("chess"), p1, p2, nil, nil); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestRunDeterministicUnderSeed(t *testing.T) {
	p1, p2 := testCombatants()
	for _, v := range Variants {
		a := rand.New(rand.NewSource(7))
		b := rand.New(rand.NewSource(7))
		resA, _ := Run(a, v, p1, p2, nil, nil)
		resB, _ := Run(b, v, p1, p2, nil, nil)
		if resA.WinnerID != resB.WinnerID || resA.HP1 != resB.HP1 || resA.HP2 != resB.HP2 {
			t.Errorf("%s: same seed produced different outcomes", v)
		}
	}
}

func TestTieFavorsInitiator(t *testing.T) {
	p1, p2 := testCombatants()
	res := finish(p1, p2, 60, 60, nil)
	if res.WinnerID != p1.ID {
		t.Errorf("HP tie should favor the initiator, winner was %q", res.WinnerID)
	}
	res = finish(p1, p2, 10, 60, nil)
	if res.WinnerID != p2.ID {
		t.Errorf("expected p2 to win at 10 vs 60, winner was %q", res.WinnerID)
	}
}

func TestStrategicDamageRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		heavy := strategicDamage(rng, ActionHeavyAttack, ActionQuickAttack)
		if heavy != 0 && (heavy < 30 || heavy > 40) {
			t.Fatalf("heavy attack dealt %d", heavy)
		}
		quick := strategicDamage(rng, ActionQuickAttack, ActionHeavyAttack)
		if quick < 15 || quick > 25 {
			t.Fatalf("quick attack dealt %d", quick)
		}
		defended := strategicDamage(rng, ActionHeavyAttack, ActionDefend)
		if defended < 15 || defended > 20 {
			t.Fatalf("defended heavy attack dealt %d", defended)
		}
		if d := strategicDamage(rng, ActionDefend, ActionQuickAttack); d != 0 {
			t.Fatalf("defend dealt %d damage", d)
		}
	}
}

func TestStrategicDodgeOnlyStopsHeavy(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dodgedHeavy := 0
	for i := 0; i < 1000; i++ {
		if strategicDamage(rng, ActionHeavyAttack, ActionDodge) == 0 {
			dodgedHeavy++
		}
		if strategicDamage(rng, ActionQuickAttack, ActionDodge) == 0 {
			t.Fatal("dodge avoided a quick attack")
		}
	}
	if dodgedHeavy < 500 || dodgedHeavy > 700 {
		t.Errorf("dodge rate off: %d/1000 heavy attacks avoided", dodgedHeavy)
	}
}

func TestClassicBeatsCycle(t *testing.T) {
	tests := []struct{ winner, loser string }{
		{WeaponSword, WeaponBow},
		{WeaponBow, WeaponShield},
		{WeaponShield, WeaponSword},
	}
	for _, tt := range tests {
		if classicBeats[tt.winner] != tt.loser {
			t.Errorf("%s should beat %s", tt.winner, tt.loser)
		}
	}
}

func TestClassicScriptedSweep(t *testing.T) {
	p1, p2 := testCombatants()
	rng := rand.New(rand.NewSource(5))
	// p1 counters p2's script every round: 30 damage x3.
	a1 := ScriptProvider{Actions: []string{WeaponSword, WeaponSword, WeaponSword}}
	a2 := ScriptProvider{Actions: []string{WeaponBow, WeaponBow, WeaponBow}}
	res, err := Run(rng, VariantClassic, p1, p2, a1, a2)
	if err != nil {
		t.Fatal(err)
	}
	if res.WinnerID != p1.ID {
		t.Errorf("scripted sweep lost: winner %q", res.WinnerID)
	}
	if res.HP2 != MaxHP-3*classicDamage {
		t.Errorf("expected p2 at %d HP, got %d", MaxHP-3*classicDamage, res.HP2)
	}
	if res.HP1 != MaxHP {
		t.Errorf("expected p1 untouched, got %d", res.HP1)
	}
}

func TestCardHandsAreConsumed(t *testing.T) {
	p1, p2 := testCombatants()
	rng := rand.New(rand.NewSource(21))
	res, err := Run(rng, VariantCard, p1, p2, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Card damage tops out at (90-70)/2 = 10 per round, so the duel always
	// runs the full three rounds.
	if len(res.Rounds) != MaxRounds {
		t.Errorf("card duel played %d rounds", len(res.Rounds))
	}
}

func TestScriptProviderFallsBack(t *testing.T) {
	p := ScriptProvider{Actions: []string{"nope"}}
	got := p.ChooseAction(VariantClassic, 1, []string{WeaponSword, WeaponBow})
	if got != WeaponSword {
		t.Errorf("expected fallback to first option, got %q", got)
	}
	got = p.ChooseAction(VariantClassic, 2, []string{WeaponShield})
	if got != WeaponShield {
		t.Errorf("expected fallback past script end, got %q", got)
	}
}

func TestRhythmScoreBuckets(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 200; i++ {
		s := rhythmScore(rng)
		if s < 0 || s > rhythmTargets*perfectScore {
			t.Fatalf("rhythm score out of range: %d", s)
		}
	}
}
