package tableclient

// UnsetValue marks an unresolved index or amount.
const UnsetValue = -1

// GameActionType is the action vocabulary shared with the server. The server
// is authoritative and may introduce values, so it stays an open string tag.
type GameActionType string

const (
	// Table actions
	GameAction_JoinTable  GameActionType = "JOIN_TABLE"
	GameAction_LeaveTable GameActionType = "LEAVE_TABLE"
	GameAction_Sit        GameActionType = "SIT"
	GameAction_SitOut     GameActionType = "SIT_OUT"
	GameAction_Ready      GameActionType = "READY"

	// Wager actions
	GameAction_Fold  GameActionType = "FOLD"
	GameAction_Check GameActionType = "CHECK"
	GameAction_Call  GameActionType = "CALL"
	GameAction_Bet   GameActionType = "BET"
	GameAction_Raise GameActionType = "RAISE"
	GameAction_AllIn GameActionType = "ALL_IN"

	// System actions
	GameAction_StartHand GameActionType = "START_HAND"
	GameAction_Timeout   GameActionType = "TIMEOUT"
	GameAction_Chat      GameActionType = "CHAT"
)

// GamePhase is the current street of a hand. Open string tag for the same
// reason as GameActionType.
type GamePhase string

const (
	GamePhase_Waiting  GamePhase = "WAITING"
	GamePhase_Preflop  GamePhase = "PREFLOP"
	GamePhase_Flop     GamePhase = "FLOP"
	GamePhase_Turn     GamePhase = "TURN"
	GamePhase_River    GamePhase = "RIVER"
	GamePhase_Showdown GamePhase = "SHOWDOWN"
)

// SessionStateStatus tracks a table subscription's lifecycle.
type SessionStateStatus string

const (
	SessionStateStatus_Idle            SessionStateStatus = "idle"
	SessionStateStatus_AwaitingJoinAck SessionStateStatus = "awaiting_join_ack"
	SessionStateStatus_Joined          SessionStateStatus = "joined"
	SessionStateStatus_Left            SessionStateStatus = "left"
	SessionStateStatus_Disconnected    SessionStateStatus = "disconnected"
)

// actionLabels names the short-lived per-seat indicator for each action type.
// Actions without an entry produce no indicator.
var actionLabels = map[GameActionType]string{
	GameAction_Fold:       "Fold",
	GameAction_Check:      "Check",
	GameAction_Call:       "Call",
	GameAction_Bet:        "Bet",
	GameAction_Raise:      "Raise",
	GameAction_AllIn:      "All-in",
	GameAction_StartHand:  "New hand",
	GameAction_LeaveTable: "Left",
	GameAction_SitOut:     "Sitting out",
	GameAction_Ready:      "Ready",
}

// wagerActionTypes carry an amount in their indicator text.
var wagerActionTypes = map[GameActionType]bool{
	GameAction_Call:  true,
	GameAction_Bet:   true,
	GameAction_Raise: true,
	GameAction_AllIn: true,
}
