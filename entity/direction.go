package entity

// Direction is a cursor movement on a 2-D grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (dir Direction) String() string {
	switch dir {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
