package game

import (
	"fmt"
	"strings"
)

// WeaponDebugReport renders the weapon state plus the last `last` events as
// plain text, suitable for pasting into a bug report.
func WeaponDebugReport(fc *FireControl, log *EventLog, now float64, last int) string {
	if fc == nil {
		return ""
	}
	if last <= 0 {
		last = 20
	}

	st := fc.State()
	stats := fc.Stats()
	cfg := fc.Config()

	var b strings.Builder
	fmt.Fprintf(&b, "--- Gunplay weapon report ---\n")
	fmt.Fprintf(&b, "weapon=%s t=%.3f enabled=%v\n", cfg.Name, now, st.Enabled)
	fmt.Fprintf(&b, "shells=%d/%d reserve=%s next_barrel=%d\n",
		st.ShellsLoaded, st.MagazineCapacity, reserveLabel(st.ReserveAmmo), st.NextBarrel)
	if st.Reloading {
		fmt.Fprintf(&b, "reloading: done_at=%.3f remaining=%.3f\n", st.ReloadDoneAt, st.ReloadDoneAt-now)
	}
	fmt.Fprintf(&b, "tuning: interval=%.2f reload=%.2f pellets=%d spread=%.1f° dmg=%.1f range=%.0f kick=%.1f°\n",
		cfg.FireInterval, cfg.ReloadTime, cfg.PelletsPerShot, cfg.SpreadAngle,
		cfg.PelletDamage, cfg.MaxRange, cfg.RecoilKick)
	fmt.Fprintf(&b,
		"stats: shots=%d pellets=%d hits=%d reloads=%d empty=%d rejected=%d damage=%.0f\n",
		stats.Shots, stats.Pellets, stats.PelletHits, stats.Reloads,
		stats.EmptyClicks, stats.Rejected, stats.DamageDealt)

	entries := log.Entries()
	if len(entries) > last {
		entries = entries[len(entries)-last:]
	}
	b.WriteString("events:\n")
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func reserveLabel(n int) string {
	if n == InfiniteReserve {
		return "inf"
	}
	return fmt.Sprintf("%d", n)
}
