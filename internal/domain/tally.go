package domain

// Tally counts finished rounds.
type Tally struct {
	X    int
	O    int
	Ties int
}

// Record adds one finished round; Empty counts as a tie.
func (t *Tally) Record(winner Cell) {
	switch winner {
	case X:
		t.X++
	case O:
		t.O++
	default:
		t.Ties++
	}
}

// Total is the number of rounds recorded.
func (t Tally) Total() int { return t.X + t.O + t.Ties }
