package systems

import "time"

// timeNow is the monotonic timestamp source for the spawn throttle and the
// flip window. Spawn cadence is wall-clock based rather than frame based so
// it stays framerate independent. Tests substitute a fake clock.
var timeNow = time.Now
