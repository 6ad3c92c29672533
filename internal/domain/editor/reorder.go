package editor

// Reorder computes the new id order for a drag-and-drop move. offsetY is the
// pointer's vertical offset inside the hovered block's bounding box and
// hoverHeight that box's height, both supplied by the UI layer.
//
// A downward drag is suppressed while the pointer is still above the hovered
// block's midpoint, and an upward drag while still below it. Without this the
// dragged block's index oscillates when the pointer sits on a boundary during
// continuous motion.
//
// The second return value reports whether the order actually changed.
func Reorder(ids []string, dragID, hoverID string, offsetY, hoverHeight float64) ([]string, bool) {
	dragIndex := indexOf(ids, dragID)
	hoverIndex := indexOf(ids, hoverID)
	if dragIndex < 0 || hoverIndex < 0 || dragIndex == hoverIndex {
		return ids, false
	}

	midpoint := hoverHeight / 2
	if dragIndex < hoverIndex && offsetY < midpoint {
		return ids, false
	}
	if dragIndex > hoverIndex && offsetY > midpoint {
		return ids, false
	}

	return moveIndex(ids, dragIndex, hoverIndex), true
}

// moveIndex removes the element at from and reinserts it at to, preserving
// the relative order of everything else.
func moveIndex(ids []string, from, to int) []string {
	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	out = append(out[:to], append([]string{ids[from]}, out[to:]...)...)
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
