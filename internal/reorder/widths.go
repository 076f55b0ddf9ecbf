package reorder

// MinWidthPercent is the floor any column can be squeezed to.
const MinWidthPercent = 10.0

// Widths holds the proportional column widths of one overlap group, as
// percentages summing to 100. This is ephemeral UI state, never part of
// the task entity.
type Widths struct {
	values []float64
}

// NewWidths creates equal shares for n columns.
func NewWidths(n int) *Widths {
	if n <= 0 {
		return &Widths{}
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 / float64(n)
	}
	return &Widths{values: values}
}

// Len returns the number of columns.
func (w *Widths) Len() int {
	return len(w.values)
}

// Values returns a copy of the current widths.
func (w *Widths) Values() []float64 {
	out := make([]float64, len(w.values))
	copy(out, w.values)
	return out
}

// Resize moves the boundary between column and its right neighbor by
// delta percentage points: the column grows by delta, the neighbor
// shrinks by the same amount. The last column resizes against its left
// neighbor instead. Both sides clamp to the minimum floor and the whole
// group renormalizes to exactly 100 afterwards, so repeated resizes never
// drift.
func (w *Widths) Resize(column int, delta float64) {
	if len(w.values) < 2 || column < 0 || column >= len(w.values) {
		return
	}

	neighbor := column + 1
	if neighbor >= len(w.values) {
		neighbor = column - 1
	}

	if w.values[column]+delta < MinWidthPercent {
		delta = MinWidthPercent - w.values[column]
	}
	if w.values[neighbor]-delta < MinWidthPercent {
		delta = w.values[neighbor] - MinWidthPercent
	}

	w.values[column] += delta
	w.values[neighbor] -= delta
	w.normalize()
}

// normalize rescales the widths to sum to exactly 100.
func (w *Widths) normalize() {
	var sum float64
	for _, v := range w.values {
		sum += v
	}
	if sum == 0 {
		return
	}
	for i := range w.values {
		w.values[i] = w.values[i] * 100 / sum
	}
}
