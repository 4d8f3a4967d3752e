package components

import "github.com/yohamta/donburi"

// MessageData is the singleton toast state: at most one transient message is
// visible at a time.
type MessageData struct {
	Text         string
	DisplayTimer int // frames remaining, 0 = hidden
}

var Message = donburi.NewComponentType[MessageData]()
