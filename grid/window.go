package grid

// Window is the contiguous index range of the derived view that has to be
// rendered, plus the heights standing in for the rows above and below it.
// End is inclusive; an empty view yields End == -1.
type Window struct {
	Start    int
	End      int
	Leading  int
	Trailing int
}

// Len is the number of rows to render.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

func (w Window) Empty() bool { return w.Len() == 0 }

func (w Window) Contains(index int) bool {
	return index >= w.Start && index <= w.End
}

// ComputeWindow returns the rows of a viewLength-row view that a viewport
// of viewportHeight scrolled to scrollOffset must render, widened by
// overscan rows on both sides. Leading + Trailing + Len()*rowHeight always
// equals viewLength*rowHeight.
func ComputeWindow(viewLength, rowHeight, scrollOffset, viewportHeight, overscan int) Window {
	if viewLength <= 0 {
		return Window{Start: 0, End: -1}
	}
	rowHeight = max(rowHeight, 1)
	scrollOffset = max(scrollOffset, 0)
	viewportHeight = max(viewportHeight, 0)
	overscan = max(overscan, 0)

	start := max(0, scrollOffset/rowHeight-overscan)
	start = min(start, viewLength-1)

	visible := ceilDiv(viewportHeight, rowHeight) + 2*overscan
	end := min(viewLength-1, start+visible)

	return Window{
		Start:    start,
		End:      end,
		Leading:  start * rowHeight,
		Trailing: max(0, (viewLength-1-end)*rowHeight),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Viewport is the scroll geometry of the rendering surface. Offset and
// Height are in the same unit as RowHeight.
type Viewport struct {
	RowHeight int
	Height    int
	Offset    int
	Overscan  int
}

func (v Viewport) rowHeight() int { return max(v.RowHeight, 1) }

// Window computes the window over a view of n rows.
func (v Viewport) Window(n int) Window {
	return ComputeWindow(n, v.RowHeight, v.Offset, v.Height, v.Overscan)
}

// MaxOffset is the furthest scroll offset that still fills the viewport.
func (v Viewport) MaxOffset(n int) int {
	return max(0, n*v.rowHeight()-v.Height)
}

// ClampOffset keeps Offset within [0, MaxOffset(n)]. Call it whenever the
// view length changes.
func (v *Viewport) ClampOffset(n int) {
	v.Offset = min(max(v.Offset, 0), v.MaxOffset(n))
}

func (v *Viewport) ScrollBy(delta, n int) {
	v.Offset += delta
	v.ClampOffset(n)
}

// EnsureVisible moves Offset as little as possible so row index is fully
// on screen.
func (v *Viewport) EnsureVisible(index, n int) {
	h := v.rowHeight()
	top := index * h
	switch {
	case top < v.Offset:
		v.Offset = top
	case top+h > v.Offset+v.Height:
		v.Offset = top + h - v.Height
	}
	v.ClampOffset(n)
}

// FirstVisible is the index of the topmost row at least partly on screen.
func (v Viewport) FirstVisible() int {
	return max(v.Offset, 0) / v.rowHeight()
}

// VisibleRows is how many rows fit in the viewport when scrolled to a row
// boundary.
func (v Viewport) VisibleRows() int {
	return max(v.Height, 0) / v.rowHeight()
}
