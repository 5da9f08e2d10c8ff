package tui

// SplitSpanName exposes splitSpanName for testing.
var SplitSpanName = splitSpanName

// MaxOffset exposes the private maxOffset method for testing.
func (v *Vterm) MaxOffset() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.maxOffset()
}
