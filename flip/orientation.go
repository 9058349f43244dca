package flip

// Orientation selects which of the four image variants is shown.
type Orientation uint8

const (
	Original Orientation = iota
	FlippedVertically
	FlippedHorizontally
	FlippedVerticallyAndHorizontally
)

// Orientations lists every orientation in declaration order.
var Orientations = [...]Orientation{
	Original,
	FlippedVertically,
	FlippedHorizontally,
	FlippedVerticallyAndHorizontally,
}

func (o Orientation) String() string {
	switch o {
	case Original:
		return "original"
	case FlippedVertically:
		return "flipped vertically"
	case FlippedHorizontally:
		return "flipped horizontally"
	case FlippedVerticallyAndHorizontally:
		return "flipped vertically and horizontally"
	default:
		return "unknown"
	}
}

// ToggleVertical flips o across the vertical-flip axis.
func (o Orientation) ToggleVertical() Orientation {
	switch o {
	case Original:
		return FlippedVertically
	case FlippedVertically:
		return Original
	case FlippedHorizontally:
		return FlippedVerticallyAndHorizontally
	case FlippedVerticallyAndHorizontally:
		return FlippedHorizontally
	default:
		return o
	}
}

// ToggleHorizontal flips o across the horizontal-flip axis.
func (o Orientation) ToggleHorizontal() Orientation {
	switch o {
	case Original:
		return FlippedHorizontally
	case FlippedVertically:
		return FlippedVerticallyAndHorizontally
	case FlippedHorizontally:
		return Original
	case FlippedVerticallyAndHorizontally:
		return FlippedVertically
	default:
		return o
	}
}

// Vertical reports whether o includes a vertical flip.
func (o Orientation) Vertical() bool {
	return o == FlippedVertically || o == FlippedVerticallyAndHorizontally
}

// Horizontal reports whether o includes a horizontal flip.
func (o Orientation) Horizontal() bool {
	return o == FlippedHorizontally || o == FlippedVerticallyAndHorizontally
}

// Machine holds the current orientation. The zero value starts at Original.
type Machine struct {
	cur Orientation
}

// Current returns the current orientation.
func (m *Machine) Current() Orientation { return m.cur }

// Step applies the inputs sampled for one tick. alpha toggles the vertical
// flip, beta the horizontal one; when both fire the state moves diagonally.
func (m *Machine) Step(alpha, beta bool) (Orientation, bool) {
	prev := m.cur
	if alpha {
		m.cur = m.cur.ToggleVertical()
	}
	if beta {
		m.cur = m.cur.ToggleHorizontal()
	}
	return m.cur, m.cur != prev
}

// Reset returns the machine to Original.
func (m *Machine) Reset() { m.cur = Original }
