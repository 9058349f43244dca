package hal

// Screen geometry of the emulated handheld.
const (
	TopWidth     = 400
	BottomWidth  = 320
	ScreenHeight = 240
)
