package game

// InputMode routes pointer input
type InputMode int

const (
	ModeCurve InputMode = iota
	ModeControl
	ModePlay
	modeCount
)

func (m InputMode) String() string {
	switch m {
	case ModeCurve:
		return "curve"
	case ModeControl:
		return "control"
	case ModePlay:
		return "play"
	}
	return "unknown"
}

// Valid reports whether m is one of the three modes
func (m InputMode) Valid() bool {
	return m >= ModeCurve && m < modeCount
}

// ControlID names the selected curve handle
type ControlID int

const (
	ControlNone ControlID = iota
	Control1
	Control2
)

// Session is the per-process score state
type Session struct {
	Mode       InputMode
	Score      int
	HighScore  int
	Scored     bool
	HighScored bool
}
