package config

// RoundStateID identifies the state of the current round
type RoundStateID int

const (
	RoundIdle RoundStateID = iota
	RoundRunning
	RoundOver
)
