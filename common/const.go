package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	TileSize = 32

	// Gravity is world gravity in pixels per second squared, pointing down.
	Gravity = 1800.0

	// TPS is the fixed logic tick rate; all frame-counted timers assume it.
	TPS = 60
)
