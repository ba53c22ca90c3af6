package actor

import (
	"math/rand"
	"time"

	"github.com/holdup/tableclient"
	"github.com/weedbox/timebank"
)

type ActionProbability struct {
	Action tableclient.GameActionType
	Weight float64
}

var (
	actionProbabilities = []ActionProbability{
		{Action: tableclient.GameAction_Check, Weight: 0.1},
		{Action: tableclient.GameAction_Call, Weight: 0.3},
		{Action: tableclient.GameAction_Fold, Weight: 0.15},
		{Action: tableclient.GameAction_AllIn, Weight: 0.05},
		{Action: tableclient.GameAction_Raise, Weight: 0.3},
		{Action: tableclient.GameAction_Bet, Weight: 0.1},
	}
)

// BotRunner drives a TableSession automatically: it joins, starts hands while
// the table is waiting, and plays weighted random legal actions when it is the
// bot's turn. Useful for demos and for exercising a table end to end.
type BotRunner struct {
	session     tableclient.TableSession
	playerID    string
	isHumanized bool
	timebank    *timebank.TimeBank
}

func NewBotRunner(session tableclient.TableSession, playerID string) *BotRunner {
	return &BotRunner{
		session:  session,
		playerID: playerID,
		timebank: timebank.NewTimeBank(),
	}
}

// Humanized makes the bot pause a random beat before acting.
func (br *BotRunner) Humanized(enabled bool) {
	br.isHumanized = enabled
}

// Run attaches the bot to its session and joins the table.
func (br *BotRunner) Run() error {
	br.session.OnTableUpdated(br.updateTableState)
	return br.session.Join()
}

// Stop cancels any pending action.
func (br *BotRunner) Stop() {
	br.timebank.Cancel()
}

// updateTableState reacts to a fresh view. Acting is deferred through the
// timebank so the decision runs outside the session's event path; a newer
// view cancels the pending move.
func (br *BotRunner) updateTableState(view *tableclient.TableSnapshot) {
	if view == nil {
		return
	}

	mySeatIdx := view.ResolveOwnSeat(br.playerID)
	if mySeatIdx == tableclient.UnsetValue {
		return
	}

	if view.HandState.Phase == tableclient.GamePhase_Waiting {
		br.timebank.Cancel()
		if err := br.timebank.NewTask(br.actionDelay(), func(isCancelled bool) {
			if isCancelled {
				return
			}
			_ = br.session.SendAction(tableclient.GameAction_StartHand)
		}); err != nil {
			return
		}
		return
	}

	affordances := tableclient.DeriveAffordances(view, mySeatIdx)
	if !affordances.IsMyTurn {
		return
	}

	br.timebank.Cancel()
	_ = br.timebank.NewTask(br.actionDelay(), func(isCancelled bool) {
		if isCancelled {
			return
		}
		br.requestMove(affordances)
	})
}

func (br *BotRunner) actionDelay() time.Duration {
	if br.isHumanized {
		return time.Duration(rand.Intn(1900)+100) * time.Millisecond
	}
	return 100 * time.Millisecond
}

// requestMove picks a weighted random action among the ones the affordances
// allow, falling back to safer actions when the drawn one is unavailable.
func (br *BotRunner) requestMove(affordances tableclient.Affordances) {
	action := br.drawAction()

	switch action {
	case tableclient.GameAction_Check:
		if !affordances.CanCheck {
			action = tableclient.GameAction_Call
		}
	case tableclient.GameAction_Bet, tableclient.GameAction_Raise:
		if !affordances.CanRaise {
			action = tableclient.GameAction_Call
		}
	case tableclient.GameAction_AllIn:
		if !affordances.CanAllIn {
			action = tableclient.GameAction_Fold
		}
	}

	if action == tableclient.GameAction_Call && !affordances.CanCall {
		if affordances.CanCheck {
			action = tableclient.GameAction_Check
		} else {
			action = tableclient.GameAction_Fold
		}
	}

	switch action {
	case tableclient.GameAction_Bet, tableclient.GameAction_Raise:
		_ = br.session.SendWager(action, affordances.MinRaiseTotal)
	case tableclient.GameAction_Call:
		_ = br.session.SendWager(action, affordances.ToCall)
	default:
		_ = br.session.SendAction(action)
	}
}

func (br *BotRunner) drawAction() tableclient.GameActionType {
	total := 0.0
	for _, p := range actionProbabilities {
		total += p.Weight
	}

	draw := rand.Float64() * total
	cumulative := 0.0
	for _, p := range actionProbabilities {
		cumulative += p.Weight
		if draw < cumulative {
			return p.Action
		}
	}
	return tableclient.GameAction_Fold
}
