package input

import "driftwood/logging"

// Mapper is the single authoritative source of player intent for a frame.
// It merges all device readers into one action set per update and keeps the
// previous frame's set for rising-edge queries.
type Mapper struct {
	readers  []DeviceReader
	current  ActionSet
	previous ActionSet
}

// NewMapper builds a mapper over the given readers. Nil readers are logged
// and skipped so a missing device never blocks the others.
func NewMapper(readers ...DeviceReader) *Mapper {
	m := &Mapper{}
	for _, r := range readers {
		if r == nil {
			logging.L.Warnw("input: device unavailable, continuing without it")
			continue
		}
		m.readers = append(m.readers, r)
	}
	return m
}

// Update advances the frame: the current set becomes the previous set and
// each reader contributes into a fresh current set. Readers are polled in
// registration order and only ever add actions (union semantics).
func (m *Mapper) Update() {
	m.previous = m.current
	m.current.Clear()
	put := m.current.Add
	for _, r := range m.readers {
		r.Read(put)
	}
}

// IsActionActive reports whether the action is active this frame.
func (m *Mapper) IsActionActive(a Action) bool {
	return m.current.Has(a)
}

// IsActionJustPressed reports a rising edge: active this frame and not the
// previous one. The edge is not consumed; callers that poll the same action
// twice in one frame both see it.
func (m *Mapper) IsActionJustPressed(a Action) bool {
	return m.current.Has(a) && !m.previous.Has(a)
}

// Axis derives a movement vector from the active directional actions. Each
// axis is -1, 0 or +1; opposing directions cancel.
func (m *Mapper) Axis() (x, y int) {
	if m.current.Has(ActionMoveLeft) {
		x--
	}
	if m.current.Has(ActionMoveRight) {
		x++
	}
	if m.current.Has(ActionMoveUp) {
		y--
	}
	if m.current.Has(ActionMoveDown) {
		y++
	}
	return x, y
}

// Attach rewires readers to the active surface. Readers restart from empty
// low-level state; held keys reappear on their next physical edge.
func (m *Mapper) Attach() {
	for _, r := range m.readers {
		if a, ok := r.(Attachable); ok {
			a.Attach()
		}
	}
}

// Detach releases device listeners, e.g. on scene teardown.
func (m *Mapper) Detach() {
	for _, r := range m.readers {
		if a, ok := r.(Attachable); ok {
			a.Detach()
		}
	}
}
