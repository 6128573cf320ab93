package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Gunplay/internal/config"
	"github.com/Garsondee/Gunplay/internal/game"
	"github.com/Garsondee/Gunplay/internal/logging"
)

// scenarios maps a name to its scripted trigger pattern.
var scenarios = map[string]func(duration float64) []game.ScenarioOption{
	// rapid holds the trigger: a press every frame.
	"rapid": func(duration float64) []game.ScenarioOption {
		return []game.ScenarioOption{game.WithFireEvery(0, 1.0/60.0, int(duration*60)+1)}
	},
	// paced fires one barrel, tops up by hand, and repeats.
	"paced": func(duration float64) []game.ScenarioOption {
		var opts []game.ScenarioOption
		for t := 0.0; t < duration; t += 2.5 {
			opts = append(opts,
				game.WithPress(t, game.Input{Fire: true}),
				game.WithPress(t+0.7, game.Input{Reload: true}),
			)
		}
		return opts
	},
}

type runPlan struct {
	index    int
	seed     int64
	scenario string
	duration float64
	weapon   game.WeaponConfig
	recover  float64
}

type runStats struct {
	runIndex      int
	seed          int64
	result        game.ScenarioResult
	firstDownTime float64 // -1 when nothing went down
	dummyHealth   []float64
	reloadStarts  int
	rateLimited   int
	grade         game.RunGrade
}

func main() {
	var (
		cfgPath  string
		runs     int
		duration float64
		seedBase int64
		seedStep int64
		workers  int
		scenario string
	)
	flag.StringVar(&cfgPath, "config", "", "config file (json, toml or yaml)")
	flag.IntVar(&runs, "runs", 0, "number of runs (0 = config report.runs)")
	flag.Float64Var(&duration, "duration", 0, "seconds per run (0 = config report.duration)")
	flag.Int64Var(&seedBase, "seed-base", 0, "seed for run 1 (0 = config report.seed)")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&workers, "workers", 0, "parallel runs (0 = config report.workers)")
	flag.StringVar(&scenario, "scenario", "rapid", "scenario name: "+strings.Join(scenarioNames(), ", "))
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(logging.Options{Level: cfg.LogLevel, Console: true})

	if runs == 0 {
		runs = cfg.Report.Runs
	}
	if duration == 0 {
		duration = cfg.Report.Duration
	}
	if seedBase == 0 {
		seedBase = cfg.Report.Seed
	}
	if workers == 0 {
		workers = cfg.Report.Workers
	}
	if runs <= 0 || duration <= 0 {
		log.Error().Int("runs", runs).Float64("duration", duration).Msg("runs and duration must be > 0")
		os.Exit(2)
	}
	if _, ok := scenarios[scenario]; !ok {
		log.Error().Str("scenario", scenario).Strs("supported", scenarioNames()).Msg("unsupported scenario")
		os.Exit(2)
	}

	plans := make([]runPlan, runs)
	for i := range plans {
		plans[i] = runPlan{
			index:    i + 1,
			seed:     seedBase + int64(i)*seedStep,
			scenario: scenario,
			duration: duration,
			weapon:   cfg.GameWeapon(),
			recover:  cfg.Weapon.RecoverRate,
		}
	}

	all, err := runAll(context.Background(), plans, workers, log)
	if err != nil {
		log.Error().Err(err).Msg("report aborted")
		os.Exit(1)
	}

	out := os.Stdout
	fmt.Fprintf(out, "=== Headless Range Report ===\n")
	fmt.Fprintf(out, "scenario=%s runs=%d duration=%.1fs seed_base=%d seed_step=%d weapon=%s\n\n",
		scenario, runs, duration, seedBase, seedStep, cfg.Weapon.Name)
	for _, rs := range all {
		printRun(out, rs)
	}
	printAggregate(out, all)
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// buildScenario sets up the standard three-dummy lane for plan.
func buildScenario(plan runPlan) (*game.Scenario, error) {
	script, ok := scenarios[plan.scenario]
	if !ok {
		return nil, fmt.Errorf("unsupported scenario %q", plan.scenario)
	}
	opts := []game.ScenarioOption{
		game.WithWeaponConfig(plan.weapon),
		game.WithScenarioSeed(plan.seed),
		game.WithRecoverRate(plan.recover),
		game.WithDummy("8m", mgl64.Vec3{-0.3, 1.5, 8}, 100),
		game.WithDummy("12m", mgl64.Vec3{0.4, 1.5, 12}, 100),
		game.WithDummy("20m", mgl64.Vec3{0, 1.5, 20}, 100),
	}
	opts = append(opts, script(plan.duration)...)
	return game.NewScenario(opts...), nil
}

func runOne(ctx context.Context, plan runPlan) (runStats, error) {
	s, err := buildScenario(plan)
	if err != nil {
		return runStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return runStats{}, err
	}

	firstDown := s.RunUntil(func(s *game.Scenario) bool {
		for _, d := range s.Dummies {
			if d.Down() {
				return true
			}
		}
		return false
	}, plan.duration)
	s.RunFor(plan.duration)

	rs := runStats{
		runIndex:      plan.index,
		seed:          plan.seed,
		result:        s.Result(),
		firstDownTime: firstDown,
		reloadStarts:  s.Log.Count(game.CatReload, "start"),
		rateLimited:   s.Log.Count(game.CatFire, "rate_limited"),
	}
	for _, d := range s.Dummies {
		rs.dummyHealth = append(rs.dummyHealth, d.Health)
	}
	rs.grade = game.GradeRun(rs.result, firstDown, plan.duration)
	return rs, nil
}

// runAll runs every plan, at most workers at a time, and returns the stats
// in plan order.
func runAll(ctx context.Context, plans []runPlan, workers int, log zerolog.Logger) ([]runStats, error) {
	out := make([]runStats, len(plans))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, plan := range plans {
		eg.Go(func() error {
			rs, err := runOne(ctx, plan)
			if err != nil {
				return fmt.Errorf("run %d (seed=%d): %w", plan.index, plan.seed, err)
			}
			log.Debug().Int("run", plan.index).Int64("seed", plan.seed).Msg("run finished")
			out[i] = rs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func printRun(w io.Writer, rs runStats) {
	r := rs.result
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "fire: shots=%d pellets=%d hits=%d hit_rate=%.1f%% damage=%.0f\n",
		r.Stats.Shots, r.Stats.Pellets, r.Stats.PelletHits, r.HitRate*100, r.Stats.DamageDealt)
	fmt.Fprintf(w, "ammo: shells=%d reserve=%s reloads=%d reload_starts=%d empty=%d rate_limited=%d\n",
		r.ShellsLoaded, reserveLabel(r.Reserve), r.Stats.Reloads, rs.reloadStarts, r.Stats.EmptyClicks, rs.rateLimited)
	fmt.Fprintf(w, "targets: down=%d first_down=%s health=%s\n",
		r.DummiesDown, timeLabel(rs.firstDownTime), healthLabel(rs.dummyHealth))
	fmt.Fprintf(w, "recoil_left=%.2f\n", r.FinalRecoil)
	fmt.Fprintf(w, "%s\n", game.FormatGrade(rs.grade))
}

func printAggregate(w io.Writer, all []runStats) {
	if len(all) == 0 {
		return
	}
	var shots, hits, pellets, down int
	var damage float64
	var downTimes []float64
	grades := make([]game.RunGrade, 0, len(all))
	for _, rs := range all {
		grades = append(grades, rs.grade)
		shots += rs.result.Stats.Shots
		hits += rs.result.Stats.PelletHits
		pellets += rs.result.Stats.Pellets
		damage += rs.result.Stats.DamageDealt
		down += rs.result.DummiesDown
		if rs.firstDownTime >= 0 {
			downTimes = append(downTimes, rs.firstDownTime)
		}
	}
	n := float64(len(all))
	fmt.Fprintf(w, "=== Aggregate (%d runs) ===\n", len(all))
	fmt.Fprintf(w, "avg_shots=%.1f avg_damage=%.1f avg_down=%.2f\n", float64(shots)/n, damage/n, float64(down)/n)
	rate := 0.0
	if pellets > 0 {
		rate = float64(hits) / float64(pellets)
	}
	fmt.Fprintf(w, "pellet_hit_rate=%.1f%%\n", rate*100)
	fmt.Fprintf(w, "first_down: %s\n", spreadLabel(downTimes, len(all)))
	fmt.Fprint(w, game.FormatGradesSummary(grades))
}

func reserveLabel(n int) string {
	if n == game.InfiniteReserve {
		return "inf"
	}
	return fmt.Sprintf("%d", n)
}

func timeLabel(t float64) string {
	if t < 0 {
		return "never"
	}
	return fmt.Sprintf("%.2fs", t)
}

func healthLabel(hs []float64) string {
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = fmt.Sprintf("%.0f", h)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// spreadLabel summarises a set of times as min/median/max.
func spreadLabel(ts []float64, runs int) string {
	if len(ts) == 0 {
		return fmt.Sprintf("never in %d runs", runs)
	}
	s := append([]float64(nil), ts...)
	sort.Float64s(s)
	return fmt.Sprintf("min=%.2fs median=%.2fs max=%.2fs (%d/%d runs)",
		s[0], s[len(s)/2], s[len(s)-1], len(s), runs)
}
