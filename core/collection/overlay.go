package collection

// Overlay is the detail overlay of a screen: either closed, or open on exactly one record.
// The zero value is closed.
type Overlay[T any] struct {
	rec  T
	open bool
}

func OpenOverlay[T any](rec T) Overlay[T] {
	return Overlay[T]{rec: rec, open: true}
}

func (o Overlay[T]) IsOpen() bool {
	return o.open
}

// Selected returns the record the overlay is open on.
func (o Overlay[T]) Selected() (T, bool) {
	return o.rec, o.open
}

func (o *Overlay[T]) Open(rec T) {
	o.rec = rec
	o.open = true
}

// Close hides the overlay and drops the selected record.
func (o *Overlay[T]) Close() {
	var zero T
	o.rec = zero
	o.open = false
}
