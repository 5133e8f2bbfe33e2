package entity

// Input is the per-frame snapshot of the keys the ship cares about. The
// controller samples it from the keyboard once per tick.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}
