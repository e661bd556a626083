package tabulator

type State uint8

const (
	StateSetup State = iota
	StateDistributing
	StateWinnerCheck
	StateEliminating
	StateTerminal
)

func (st State) String() string {
	switch st {
	case StateSetup:
		return "SETUP"
	case StateDistributing:
		return "DISTRIBUTING"
	case StateWinnerCheck:
		return "WINNER-CHECK"
	case StateEliminating:
		return "ELIMINATING"
	case StateTerminal:
		return "TERMINAL"
	default:
		return "<unknown State>"
	}
}

func (st State) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}
