package coins

// EffectWindow is a timed player buff tracked by its activation
// timestamp against the game's millisecond clock. Re-activating an
// open window restarts it from the new timestamp.
type EffectWindow struct {
	Active      bool
	ActivatedAt int64
}

// Activate opens the window, or restarts it if already open.
func (w *EffectWindow) Activate(now int64) {
	w.Active = true
	w.ActivatedAt = now
}

// Clear closes the window immediately.
func (w *EffectWindow) Clear() {
	w.Active = false
}

// Tick polls expiry. The window closes only once strictly more than
// duration milliseconds have elapsed, so at exactly duration elapsed
// it is still open and the effect never ends early.
func (w *EffectWindow) Tick(now, duration int64) {
	if w.Active && now-w.ActivatedAt > duration {
		w.Active = false
	}
}

// Remaining reports the milliseconds left in the window, zero if it is
// closed or overdue.
func (w *EffectWindow) Remaining(now, duration int64) int64 {
	if !w.Active {
		return 0
	}
	left := duration - (now - w.ActivatedAt)
	if left < 0 {
		return 0
	}
	return left
}
