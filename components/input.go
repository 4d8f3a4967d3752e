package components

import (
	cfg "github.com/lunapark/gravflip/config"
	"github.com/yohamta/donburi"
)

// InputData holds the polled action state for the current and previous frame.
// Edge states (just pressed/released) are derived from the two buffers.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// ActionState is the derived state of a single action for this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}
