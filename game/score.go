package game

// ScoreLedger counts delivered points.
type ScoreLedger struct {
	score int
}

// AddPoints adds n to the score. Deliveries only ever pass positive
// values; other callers are trusted.
func (l *ScoreLedger) AddPoints(n int) {
	l.score += n
}

// Score returns the current total.
func (l *ScoreLedger) Score() int {
	return l.score
}

// Reset sets the score back to zero.
func (l *ScoreLedger) Reset() {
	l.score = 0
}
