package tableclient

import (
	"errors"
	"sync"

	"github.com/holdup/tableclient/transport"
	"github.com/weedbox/syncsaga"
	"github.com/weedbox/timebank"
	"go.uber.org/zap"
)

var (
	ErrSessionNotJoinable = errors.New("tableclient: session is not in a joinable state")
	ErrSessionNotJoined   = errors.New("tableclient: session has not joined a table")
	ErrInvalidOptions     = errors.New("tableclient: table id and player id are required")
)

type TableSessionOpt func(*tableSession)

// TableSession reconciles inbound table events into a single consistent view
// and issues the viewer's intents. All reconciliation is serialized through
// one ingestion path; the last snapshot for the table wins.
type TableSession interface {
	// Events
	OnTableUpdated(fn func(*TableSnapshot))
	OnSeatBubbleUpdated(fn func(int, *SeatBubble))
	OnNoticesUpdated(fn func([]Notice))
	OnProtocolError(fn func(string))
	OnJoinTimeout(fn func())
	OnStatusUpdated(fn func(SessionStateStatus))

	// Lifecycle
	Join() error
	RetryJoin() error
	Leave() error
	HandleDisconnect()

	// View
	Status() SessionStateStatus
	Snapshot() *TableSnapshot
	MySeatIndex() int
	MyAffordances() Affordances
	BestHandName() (string, bool)
	SeatBubbles() map[int]SeatBubble
	Notices() []Notice

	// Intents
	SendAction(actionType GameActionType) error
	SendWager(actionType GameActionType, amount int64) error

	// Event ingestion
	ApplyPublicEvent(data []byte)
	ApplyPrivateEvent(data []byte)
}

type tableSession struct {
	lock      sync.Mutex
	options   *TableSessionOptions
	transport transport.Transport
	logger    *zap.Logger

	status       SessionStateStatus
	view         *TableSnapshot
	mySeatIdx    int
	joinAttempts int

	rg             *syncsaga.ReadyGroup
	bubbleTimeBank map[int]*timebank.TimeBank
	bubbles        map[int]*SeatBubble
	noticeTimeBank map[string]*timebank.TimeBank
	notices        []Notice
	unsubscribes   []func()

	onTableUpdated      func(*TableSnapshot)
	onSeatBubbleUpdated func(int, *SeatBubble)
	onNoticesUpdated    func([]Notice)
	onProtocolError     func(string)
	onJoinTimeout       func()
	onStatusUpdated     func(SessionStateStatus)
}

func NewTableSession(t transport.Transport, options *TableSessionOptions, opts ...TableSessionOpt) (TableSession, error) {
	if options == nil || options.TableID == "" || options.PlayerID == "" {
		return nil, ErrInvalidOptions
	}

	callbacks := NewTableSessionCallbacks()
	ts := &tableSession{
		options:             options,
		transport:           t,
		logger:              zap.NewNop(),
		status:              SessionStateStatus_Idle,
		mySeatIdx:           UnsetValue,
		rg:                  syncsaga.NewReadyGroup(),
		bubbleTimeBank:      make(map[int]*timebank.TimeBank),
		bubbles:             make(map[int]*SeatBubble),
		noticeTimeBank:      make(map[string]*timebank.TimeBank),
		notices:             make([]Notice, 0),
		unsubscribes:        make([]func(), 0),
		onTableUpdated:      callbacks.OnTableUpdated,
		onSeatBubbleUpdated: callbacks.OnSeatBubbleUpdated,
		onNoticesUpdated:    callbacks.OnNoticesUpdated,
		onProtocolError:     callbacks.OnProtocolError,
		onJoinTimeout:       callbacks.OnJoinTimeout,
		onStatusUpdated:     callbacks.OnStatusUpdated,
	}

	for _, opt := range opts {
		opt(ts)
	}

	return ts, nil
}

func WithLogger(logger *zap.Logger) TableSessionOpt {
	return func(ts *tableSession) {
		ts.logger = logger
	}
}

func (ts *tableSession) OnTableUpdated(fn func(*TableSnapshot)) {
	ts.onTableUpdated = fn
}

func (ts *tableSession) OnSeatBubbleUpdated(fn func(int, *SeatBubble)) {
	ts.onSeatBubbleUpdated = fn
}

func (ts *tableSession) OnNoticesUpdated(fn func([]Notice)) {
	ts.onNoticesUpdated = fn
}

func (ts *tableSession) OnProtocolError(fn func(string)) {
	ts.onProtocolError = fn
}

func (ts *tableSession) OnJoinTimeout(fn func()) {
	ts.onJoinTimeout = fn
}

func (ts *tableSession) OnStatusUpdated(fn func(SessionStateStatus)) {
	ts.onStatusUpdated = fn
}

/*
Join subscribes the public table topic and the viewer's private queue, then
emits the join intent. The join is acknowledged by the first snapshot; if none
arrives within the configured wait the intent is re-sent once before a
retryable timeout is surfaced. The server no-ops duplicate joins, so re-sending
is safe.
*/
func (ts *tableSession) Join() error {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	switch ts.status {
	case SessionStateStatus_Idle, SessionStateStatus_Left, SessionStateStatus_Disconnected:
	default:
		return ErrSessionNotJoinable
	}

	publicUnsub, err := ts.transport.Subscribe(ts.options.TableTopicPrefix+ts.options.TableID, ts.ApplyPublicEvent)
	if err != nil {
		return err
	}
	privateUnsub, err := ts.transport.Subscribe(ts.options.PrivateDestination, ts.ApplyPrivateEvent)
	if err != nil {
		publicUnsub()
		return err
	}
	ts.unsubscribes = append(ts.unsubscribes, publicUnsub, privateUnsub)

	ts.joinAttempts = 1
	ts.startJoinAckWait()
	ts.setStatus(SessionStateStatus_AwaitingJoinAck)
	return ts.sendIntent(GameAction_JoinTable, nil)
}

// RetryJoin re-sends the join intent after a surfaced timeout. Manual only;
// the session never retries indefinitely on its own.
func (ts *tableSession) RetryJoin() error {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	if ts.status != SessionStateStatus_AwaitingJoinAck {
		return ErrSessionNotJoinable
	}

	ts.joinAttempts = 1
	ts.startJoinAckWait()
	return ts.sendIntent(GameAction_JoinTable, nil)
}

// Leave emits the leave intent, tears down subscriptions and timers, and
// discards the view.
func (ts *tableSession) Leave() error {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	if ts.status == SessionStateStatus_Idle || ts.status == SessionStateStatus_Left {
		return ErrSessionNotJoined
	}

	err := ts.sendIntent(GameAction_LeaveTable, nil)
	ts.teardown(SessionStateStatus_Left)
	return err
}

// HandleDisconnect discards the view after the transport reports a lost
// connection. No leave intent is sent; the channel is already gone.
func (ts *tableSession) HandleDisconnect() {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	if ts.status == SessionStateStatus_Idle || ts.status == SessionStateStatus_Left {
		return
	}
	ts.teardown(SessionStateStatus_Disconnected)
}

func (ts *tableSession) Status() SessionStateStatus {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	return ts.status
}

func (ts *tableSession) Snapshot() *TableSnapshot {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	return ts.view
}

func (ts *tableSession) MySeatIndex() int {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	return ts.mySeatIdx
}

func (ts *tableSession) MyAffordances() Affordances {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	return DeriveAffordances(ts.view, ts.mySeatIdx)
}

func (ts *tableSession) SendAction(actionType GameActionType) error {
	return ts.sendIntent(actionType, nil)
}

func (ts *tableSession) SendWager(actionType GameActionType, amount int64) error {
	return ts.sendIntent(actionType, &amount)
}

// sendIntent emits an outbound intent. A send that fails because the channel
// is down is logged and reported, never fatal to the session.
func (ts *tableSession) sendIntent(actionType GameActionType, amount *int64) error {
	intent := ActionIntent{
		ActionType: actionType,
		TableID:    ts.options.TableID,
		PlayerID:   ts.options.PlayerID,
		Amount:     amount,
	}
	if err := ts.transport.Send(ts.options.ActionDestination, intent); err != nil {
		ts.logger.Warn("tableclient: send intent failed",
			zap.String("action_type", string(actionType)),
			zap.Error(err))
		return err
	}
	return nil
}
