package invaders

// Input is the set of commands applied by one Update. Key handlers set the held
// flags; drag handlers and fire buttons go through MoveLeft, MoveRight and Fire.
type Input struct {
	Left, Right bool
	// Shift is a signed horizontal displacement applied on top of held keys.
	Shift float64
	Shots int
}

// MoveLeft displaces the ship left by amount.
func (in *Input) MoveLeft(amount float64) {
	in.Shift -= amount
}

// MoveRight displaces the ship right by amount.
func (in *Input) MoveRight(amount float64) {
	in.Shift += amount
}

// Fire requests one bullet.
func (in *Input) Fire() {
	in.Shots++
}
