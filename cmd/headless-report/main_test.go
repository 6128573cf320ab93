package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Gunplay/internal/game"
)

func testPlan(i int, seed int64, scenario string) runPlan {
	return runPlan{
		index:    i,
		seed:     seed,
		scenario: scenario,
		duration: 6,
		weapon:   game.DefaultWeaponConfig(),
		recover:  20,
	}
}

func TestRunOne_RapidEmptiesReserveOverTime(t *testing.T) {
	rs, err := runOne(context.Background(), testPlan(1, 42, "rapid"))
	if err != nil {
		t.Fatalf("runOne: %v", err)
	}
	r := rs.result
	if r.Stats.Shots < 5 {
		t.Fatalf("expected at least 5 shots in 6s of held trigger, got %d", r.Stats.Shots)
	}
	if r.Stats.Reloads < 2 {
		t.Fatalf("expected at least 2 reloads, got %d", r.Stats.Reloads)
	}
	if rs.rateLimited == 0 {
		t.Fatal("holding the trigger every frame should hit the rate limit")
	}
	if r.Stats.PelletHits == 0 || r.DummiesDown == 0 || rs.firstDownTime < 0 {
		t.Fatalf("close dummies should go down: hits=%d down=%d first=%.2f",
			r.Stats.PelletHits, r.DummiesDown, rs.firstDownTime)
	}
}

func TestRunOne_PacedReloadsByHand(t *testing.T) {
	rs, err := runOne(context.Background(), testPlan(1, 7, "paced"))
	if err != nil {
		t.Fatalf("runOne: %v", err)
	}
	if rs.result.Stats.Shots != 3 || rs.reloadStarts != 3 {
		t.Fatalf("expected 3 shots and 3 top-ups, got shots=%d starts=%d", rs.result.Stats.Shots, rs.reloadStarts)
	}
	if rs.reloadStarts < 2 {
		t.Fatalf("expected manual reloads, got %d starts", rs.reloadStarts)
	}
	if rs.result.Stats.EmptyClicks != 0 {
		t.Fatalf("paced script should never click empty, got %d", rs.result.Stats.EmptyClicks)
	}
}

func TestPrintRun_IncludesGrade(t *testing.T) {
	rs, err := runOne(context.Background(), testPlan(3, 5, "rapid"))
	if err != nil {
		t.Fatalf("runOne: %v", err)
	}
	var buf bytes.Buffer
	printRun(&buf, rs)
	out := buf.String()
	for _, want := range []string{"--- Run 3 (seed=5) ---", "grade: ", "Accuracy=", "trigger_mashing"} {
		if !strings.Contains(out, want) {
			t.Fatalf("run report missing %q:\n%s", want, out)
		}
	}
}

func TestRunOne_UnknownScenario(t *testing.T) {
	if _, err := runOne(context.Background(), testPlan(1, 1, "nope")); err == nil {
		t.Fatal("expected an error for an unknown scenario")
	}
}

func TestRunAll_KeepsOrderAndIsDeterministic(t *testing.T) {
	plans := []runPlan{testPlan(1, 10, "rapid"), testPlan(2, 11, "rapid"), testPlan(3, 10, "rapid")}
	all, err := runAll(context.Background(), plans, 2, zerolog.Nop())
	if err != nil {
		t.Fatalf("runAll: %v", err)
	}
	for i, rs := range all {
		if rs.runIndex != i+1 {
			t.Fatalf("slot %d holds run %d", i, rs.runIndex)
		}
	}
	if all[0].result != all[2].result {
		t.Fatalf("same seed should give the same result:\n%+v\n%+v", all[0].result, all[2].result)
	}
}

func TestRunAll_PropagatesFailure(t *testing.T) {
	plans := []runPlan{testPlan(1, 1, "rapid"), testPlan(2, 2, "bogus")}
	_, err := runAll(context.Background(), plans, 0, zerolog.Nop())
	if err == nil || !strings.Contains(err.Error(), "run 2") {
		t.Fatalf("expected run 2 to fail, got %v", err)
	}
}

func TestPrintAggregate(t *testing.T) {
	all := []runStats{
		{runIndex: 1, firstDownTime: 1.0, grade: game.RunGrade{Score: 80}, result: game.ScenarioResult{Stats: game.WeaponStats{Shots: 4, Pellets: 32, PelletHits: 16}}},
		{runIndex: 2, firstDownTime: -1, grade: game.RunGrade{Score: 60}, result: game.ScenarioResult{Stats: game.WeaponStats{Shots: 6, Pellets: 48, PelletHits: 24}}},
	}
	var buf bytes.Buffer
	printAggregate(&buf, all)
	out := buf.String()
	for _, want := range []string{"Aggregate (2 runs)", "avg_shots=5.0", "pellet_hit_rate=50.0%", "(1/2 runs)", "avg_score=70.0 (B)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("aggregate missing %q:\n%s", want, out)
		}
	}
}

func TestLabels(t *testing.T) {
	if got := reserveLabel(game.InfiniteReserve); got != "inf" {
		t.Fatalf("reserveLabel(inf) = %q", got)
	}
	if got := timeLabel(-1); got != "never" {
		t.Fatalf("timeLabel(-1) = %q", got)
	}
	if got := healthLabel([]float64{100, 0}); got != "[100 0]" {
		t.Fatalf("healthLabel = %q", got)
	}
	if got := spreadLabel(nil, 3); got != "never in 3 runs" {
		t.Fatalf("spreadLabel(nil) = %q", got)
	}
}
