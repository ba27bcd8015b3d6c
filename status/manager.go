package status

// Manager owns the active effects of a single target: one effect per type,
// replace-on-reapply, with a per-frame expiry sweep.
type Manager struct {
	target  Target
	effects map[Type]Effect
}

func NewManager(target Target) *Manager {
	return &Manager{
		target:  target,
		effects: make(map[Type]Effect),
	}
}

// ApplyEffect attaches an effect. An already-active effect of the same
// type is fully removed (its remove hook runs) before the new one's apply
// hook runs, so two instances of a type never overlap.
func (m *Manager) ApplyEffect(e Effect) {
	if e == nil {
		return
	}
	if old, ok := m.effects[e.Type()]; ok {
		old.Remove(m.target)
	}
	m.effects[e.Type()] = e
	e.Apply(m.target)
}

func (m *Manager) HasEffect(t Type) bool {
	_, ok := m.effects[t]
	return ok
}

func (m *Manager) GetEffect(t Type) (Effect, bool) {
	e, ok := m.effects[t]
	return e, ok
}

// RemoveEffect detaches an effect explicitly, running its remove hook.
func (m *Manager) RemoveEffect(t Type) {
	e, ok := m.effects[t]
	if !ok {
		return
	}
	e.Remove(m.target)
	delete(m.effects, t)
}

// Update runs every active effect's tick hook and counts durations down,
// then removes expirations after the full sweep so the map is never
// mutated mid-iteration.
func (m *Manager) Update() {
	var expired []Type
	for t, e := range m.effects {
		e.Update(m.target)
		e.Tick()
		if e.Expired() {
			expired = append(expired, t)
		}
	}
	for _, t := range expired {
		m.effects[t].Remove(m.target)
		delete(m.effects, t)
	}
}

// Clear removes all effects through their remove hooks. Scene teardown
// calls this so no modified stat leaks past the manager's lifetime.
func (m *Manager) Clear() {
	for t, e := range m.effects {
		e.Remove(m.target)
		delete(m.effects, t)
	}
}
