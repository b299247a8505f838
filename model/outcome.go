package model

// MoveResult reports the outcome of one discrete move request.
type MoveResult struct {
	Direction Direction
	Col, Row  int
	Success   bool
}
