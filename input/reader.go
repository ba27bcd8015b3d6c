package input

// DeviceReader contributes the actions its device considers active this
// frame. Readers only ever add to the set; the mapper unions all readers,
// so simultaneous keyboard and gamepad input never conflicts.
type DeviceReader interface {
	// Name identifies the device in logs.
	Name() string
	// Read appends the device's currently active actions via put.
	Read(put func(Action))
}

// Attachable is implemented by readers that hold listener or buffered key
// state tied to the active surface. Attach starts from empty low-level
// state; a key physically held across a re-attach is not seen again until
// its next press edge.
type Attachable interface {
	Attach()
	Detach()
}
