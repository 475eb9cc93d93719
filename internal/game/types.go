package game

// Role identifies how a seat is controlled
type Role int

const (
	RolePlayer Role = iota // human-controlled
	RoleAI                 // scripted opponent
	RoleDealer             // fixed house rule
)

// String returns the string representation of a role
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleAI:
		return "ai"
	case RoleDealer:
		return "dealer"
	default:
		return "unknown"
	}
}

// Result is a seat's settled outcome. It is meaningful only after the
// round has been resolved.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
	ResultPush
	ResultBlackjack
	ResultBust
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	case ResultPush:
		return "push"
	case ResultBlackjack:
		return "blackjack"
	case ResultBust:
		return "bust"
	default:
		return "unknown"
	}
}

// Phase is the round engine's current state
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseDealing
	PhasePlaying
	PhaseResolving
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDealing:
		return "dealing"
	case PhasePlaying:
		return "playing"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Action is a decision the human seat can submit
type Action int

const (
	Hit Action = iota
	Stand
	Double
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}
