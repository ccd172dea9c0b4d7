package engine

// CommandKind enumerates every control instruction the scheduler understands.
type CommandKind int

const (
	CmdStartStop CommandKind = iota
	CmdAdjustTempo
	CmdSetTempo
	CmdNextSound
	CmdPrevSound
	CmdTestSound
	CmdVolumeUp
	CmdVolumeDown
	CmdToggleRandom
	CmdAdjustSpread
	CmdQuit
)

// Command is a single, immutable user intent. Value is only meaningful for
// the kinds that carry one (tempo and spread adjustments).
type Command struct {
	Kind  CommandKind
	Value int
}

func StartStop() Command             { return Command{Kind: CmdStartStop} }
func AdjustTempo(delta int) Command  { return Command{Kind: CmdAdjustTempo, Value: delta} }
func SetTempo(bpm int) Command       { return Command{Kind: CmdSetTempo, Value: bpm} }
func NextSound() Command             { return Command{Kind: CmdNextSound} }
func PrevSound() Command             { return Command{Kind: CmdPrevSound} }
func TestSound() Command             { return Command{Kind: CmdTestSound} }
func VolumeUp() Command              { return Command{Kind: CmdVolumeUp} }
func VolumeDown() Command            { return Command{Kind: CmdVolumeDown} }
func ToggleRandom() Command          { return Command{Kind: CmdToggleRandom} }
func AdjustSpread(delta int) Command { return Command{Kind: CmdAdjustSpread, Value: delta} }
func Quit() Command                  { return Command{Kind: CmdQuit} }

func (k CommandKind) String() string {
	switch k {
	case CmdStartStop:
		return "start_stop"
	case CmdAdjustTempo:
		return "adjust_tempo"
	case CmdSetTempo:
		return "set_tempo"
	case CmdNextSound:
		return "next_sound"
	case CmdPrevSound:
		return "prev_sound"
	case CmdTestSound:
		return "test_sound"
	case CmdVolumeUp:
		return "volume_up"
	case CmdVolumeDown:
		return "volume_down"
	case CmdToggleRandom:
		return "toggle_random"
	case CmdAdjustSpread:
		return "adjust_spread"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}
