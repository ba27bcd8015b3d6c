package weapon

import "driftwood/common"

// Manager owns the weapon inventory, the current selection and the shared
// projectile pool, and fans out update and fire calls.
type Manager struct {
	weapons []Weapon
	index   int
	pool    *Pool
}

func NewManager(pool *Pool, weapons ...Weapon) *Manager {
	return &Manager{weapons: weapons, pool: pool}
}

// AttachOwner wires every weapon to its wielder.
func (m *Manager) AttachOwner(owner Owner) {
	for _, w := range m.weapons {
		w.Attach(owner)
	}
}

// Current returns the selected weapon, or nil for an empty inventory.
func (m *Manager) Current() Weapon {
	if len(m.weapons) == 0 {
		return nil
	}
	return m.weapons[m.index]
}

// Next selects the following weapon, wrapping at the end.
func (m *Manager) Next() {
	if len(m.weapons) == 0 {
		return
	}
	m.releaseCurrent()
	m.index = (m.index + 1) % len(m.weapons)
}

// Previous selects the preceding weapon, wrapping at the start.
func (m *Manager) Previous() {
	if len(m.weapons) == 0 {
		return
	}
	m.releaseCurrent()
	m.index = (m.index - 1 + len(m.weapons)) % len(m.weapons)
}

// releaseCurrent drops a held continuous weapon before switching away so
// its region does not linger.
func (m *Manager) releaseCurrent() {
	if c, ok := m.Current().(Continuous); ok {
		c.SetHeld(common.Vec2{}, false)
	}
}

// Fire delegates to the currently selected weapon only.
func (m *Manager) Fire(dir common.Vec2) bool {
	w := m.Current()
	if w == nil {
		return false
	}
	return w.Fire(dir)
}

// SetHeld forwards trigger-held state to the selection when it is a
// continuous weapon.
func (m *Manager) SetHeld(dir common.Vec2, held bool) {
	if c, ok := m.Current().(Continuous); ok {
		c.SetHeld(dir, held)
	}
}

// Update advances every weapon's cooldown and transient state, then the
// projectile pool.
func (m *Manager) Update() {
	for _, w := range m.weapons {
		w.Update()
	}
	if m.pool != nil {
		m.pool.Update()
	}
}

// Pool returns the shared projectile pool.
func (m *Manager) Pool() *Pool { return m.pool }

// Regions collects the live damage regions across all weapons, not just
// the selection; a melee swing keeps hitting after a switch.
func (m *Manager) Regions() []*Region {
	var regions []*Region
	for _, w := range m.weapons {
		switch v := w.(type) {
		case *Melee:
			if r := v.Region(); r != nil {
				regions = append(regions, r)
			}
		case *Cone:
			if r := v.Region(); r != nil {
				regions = append(regions, r)
			}
		}
	}
	return regions
}
