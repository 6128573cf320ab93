package sandbox

// viewModel is the on-screen weapon sprite's animator. It only remembers the
// last trigger and when it fired; Draw turns that into a kick or a tilt.
type viewModel struct {
	now     func() float64
	trigger string
	at      float64
	count   map[string]int
}

func newViewModel(now func() float64) *viewModel {
	return &viewModel{now: now, at: -1, count: make(map[string]int)}
}

// SetTrigger implements game.Animator.
func (v *viewModel) SetTrigger(name string) {
	v.trigger = name
	v.at = v.now()
	v.count[name]++
}

// pose returns the active trigger and how far into it we are, in [0,1].
// Nothing is active once length has passed.
func (v *viewModel) pose(length float64) (string, float64) {
	if v.at < 0 || length <= 0 {
		return "", 0
	}
	p := (v.now() - v.at) / length
	if p < 0 || p >= 1 {
		return "", 0
	}
	return v.trigger, p
}
