package widget

// NoHighlight is the highlighted index when nothing is highlighted.
const NoHighlight = -1

// Nav is the dropdown state machine: closed, or open with a highlighted
// index over the current result list. Movement methods take the current
// list length so wrap-around always reflects the live results rather
// than a stale snapshot.
//
// Nav is not safe for concurrent use; Session serializes access.
type Nav struct {
	open        bool
	highlighted int
}

// NewNav returns a closed Nav with nothing highlighted.
func NewNav() *Nav {
	return &Nav{highlighted: NoHighlight}
}

// Open opens the dropdown with nothing highlighted.
func (n *Nav) Open() {
	n.open = true
	n.highlighted = NoHighlight
}

// Escape closes the dropdown and clears the highlight.
func (n *Nav) Escape() {
	n.open = false
	n.highlighted = NoHighlight
}

// IsOpen reports whether the dropdown is open.
func (n *Nav) IsOpen() bool {
	return n.open
}

// Highlighted returns the highlighted index, or NoHighlight.
func (n *Nav) Highlighted() int {
	return n.highlighted
}

// MoveDown advances the highlight, wrapping to the top past the end.
// From NoHighlight it moves to the first item. No-op when the dropdown
// is closed or the list is empty.
func (n *Nav) MoveDown(length int) {
	if !n.open || length <= 0 {
		return
	}
	if n.highlighted < 0 || n.highlighted >= length-1 {
		n.highlighted = 0
		return
	}
	n.highlighted++
}

// MoveUp retreats the highlight, wrapping to the bottom before the top.
// From NoHighlight it moves to the last item. No-op when the dropdown
// is closed or the list is empty.
func (n *Nav) MoveUp(length int) {
	if !n.open || length <= 0 {
		return
	}
	if n.highlighted <= 0 {
		n.highlighted = length - 1
		return
	}
	n.highlighted--
}

// Confirm returns the highlighted index when it falls inside the current
// list, or NoHighlight when there is nothing valid to confirm.
func (n *Nav) Confirm(length int) int {
	if !n.open || n.highlighted < 0 || n.highlighted >= length {
		return NoHighlight
	}
	return n.highlighted
}

// Clamp resets the highlight to NoHighlight when it falls outside the
// current list. Called whenever the result list changes so the highlight
// never points past the visible items.
func (n *Nav) Clamp(length int) {
	if n.highlighted >= length {
		n.highlighted = NoHighlight
	}
}
