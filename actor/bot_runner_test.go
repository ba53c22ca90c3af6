package actor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/holdup/tableclient"
	"github.com/holdup/tableclient/transport"
)

func newBotFixture(t *testing.T) (*BotRunner, *transport.Inproc) {
	t.Helper()

	inproc := transport.NewInproc()
	session, err := tableclient.NewTableSession(inproc, tableclient.NewTableSessionOptions("t1", "bot"))
	assert.NoError(t, err)

	return NewBotRunner(session, "bot"), inproc
}

func botSnapshot(phase tableclient.GamePhase, actingSeatIdx *int) *tableclient.TableSnapshot {
	return &tableclient.TableSnapshot{
		TableID: "t1",
		Seats: []tableclient.SeatSnapshot{
			{SeatIndex: 0, Player: &tableclient.PlayerSnapshot{ID: "bot", DisplayName: "bot", Stack: 1000}},
			{SeatIndex: 1, Player: &tableclient.PlayerSnapshot{ID: "p2", DisplayName: "p2", Stack: 1000, CurrentBetThisStreet: 20}},
		},
		HandState: tableclient.HandStateSnapshot{
			Phase:           phase,
			Pot:             30,
			CurrentBet:      20,
			MinRaise:        20,
			ActingSeatIndex: actingSeatIdx,
		},
	}
}

func publishBotSnapshot(t *testing.T, inproc *transport.Inproc, snapshot *tableclient.TableSnapshot) {
	t.Helper()
	data, err := json.Marshal(&tableclient.ActionResult{
		Success: true,
		Payload: &tableclient.ActionPayload{TableState: snapshot},
	})
	assert.NoError(t, err)
	inproc.Publish("/topic/table/t1", data)
}

func waitForIntents(t *testing.T, inproc *transport.Inproc, n int) []tableclient.ActionIntent {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		sent := inproc.SentTo("/app/action")
		if len(sent) >= n {
			out := make([]tableclient.ActionIntent, 0, len(sent))
			for _, m := range sent {
				var intent tableclient.ActionIntent
				assert.NoError(t, json.Unmarshal(m.Data, &intent))
				out = append(out, intent)
			}
			return out
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("expected %d intents, got %d", n, len(inproc.SentTo("/app/action")))
	return nil
}

func TestBotRunner_JoinsOnRun(t *testing.T) {
	bot, inproc := newBotFixture(t)
	defer bot.Stop()

	assert.NoError(t, bot.Run())

	intents := waitForIntents(t, inproc, 1)
	assert.Equal(t, tableclient.GameAction_JoinTable, intents[0].ActionType)
}

func TestBotRunner_StartsHandWhileWaiting(t *testing.T) {
	bot, inproc := newBotFixture(t)
	defer bot.Stop()

	assert.NoError(t, bot.Run())
	publishBotSnapshot(t, inproc, botSnapshot(tableclient.GamePhase_Waiting, nil))

	intents := waitForIntents(t, inproc, 2)
	assert.Equal(t, tableclient.GameAction_StartHand, intents[1].ActionType)
}

func TestBotRunner_ActsOnItsTurn(t *testing.T) {
	bot, inproc := newBotFixture(t)
	defer bot.Stop()

	assert.NoError(t, bot.Run())

	acting := 0
	publishBotSnapshot(t, inproc, botSnapshot(tableclient.GamePhase_Flop, &acting))

	intents := waitForIntents(t, inproc, 2)
	move := intents[1]

	legal := map[tableclient.GameActionType]bool{
		tableclient.GameAction_Fold:  true,
		tableclient.GameAction_Call:  true,
		tableclient.GameAction_Bet:   true,
		tableclient.GameAction_Raise: true,
		tableclient.GameAction_AllIn: true,
	}
	assert.True(t, legal[move.ActionType], "unexpected action %s", move.ActionType)

	// wagers always carry an amount
	switch move.ActionType {
	case tableclient.GameAction_Call:
		assert.NotNil(t, move.Amount)
		assert.Equal(t, int64(20), *move.Amount)
	case tableclient.GameAction_Bet, tableclient.GameAction_Raise:
		assert.NotNil(t, move.Amount)
		assert.Equal(t, int64(40), *move.Amount)
	}
}

func TestBotRunner_StaysQuietWhenNotItsTurn(t *testing.T) {
	bot, inproc := newBotFixture(t)
	defer bot.Stop()

	assert.NoError(t, bot.Run())

	acting := 1
	publishBotSnapshot(t, inproc, botSnapshot(tableclient.GamePhase_Flop, &acting))

	time.Sleep(400 * time.Millisecond)
	assert.Len(t, inproc.SentTo("/app/action"), 1)
}
