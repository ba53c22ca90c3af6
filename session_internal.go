package tableclient

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/holdup/tableclient/pokerhand"
	"github.com/thoas/go-funk"
	"github.com/weedbox/syncsaga"
	"github.com/weedbox/timebank"
	"go.uber.org/zap"
)

// ApplyPublicEvent consumes an event broadcast to every table observer.
func (ts *tableSession) ApplyPublicEvent(data []byte) {
	ts.applyEvent(data, false)
}

// ApplyPrivateEvent consumes an event pushed only to the viewer. Private
// snapshots are the only ones carrying the viewer's hole cards.
func (ts *tableSession) ApplyPrivateEvent(data []byte) {
	ts.applyEvent(data, true)
}

func (ts *tableSession) applyEvent(data []byte, isPrivate bool) {
	result, err := DecodeActionResult(data)
	if err != nil {
		// Keep the last good view; a bad payload never tears the session down.
		ts.logger.Warn("tableclient: could not process update",
			zap.Bool("private", isPrivate),
			zap.Error(err))
		ts.lock.Lock()
		ts.postNoticeLocked("Could not process a table update.")
		ts.lock.Unlock()
		return
	}

	ts.lock.Lock()
	defer ts.lock.Unlock()

	ts.showBubbleLocked(result)

	if !isPrivate && result.ActionType == GameAction_LeaveTable && result.Success {
		ts.postNoticeLocked(ts.leaveNoticeTextLocked(result))
	}

	if result.Payload != nil && result.Payload.TableState != nil {
		ts.applySnapshotLocked(result.Payload.TableState)
	}

	// Protocol-level failures surface verbatim and leave the view alone.
	if !result.Success && result.Message != "" {
		ts.onProtocolError(result.Message)
	}
}

// applySnapshotLocked replaces the view wholesale. No field-level merging:
// arrival order is trusted as causal order unless both snapshots carry a
// positive update serial, in which case a stale one is discarded.
func (ts *tableSession) applySnapshotLocked(snapshot *TableSnapshot) {
	if ts.view != nil && ts.view.UpdateSerial > 0 && snapshot.UpdateSerial > 0 &&
		snapshot.UpdateSerial < ts.view.UpdateSerial {
		ts.logger.Debug("tableclient: discarding stale snapshot",
			zap.Int64("held_serial", ts.view.UpdateSerial),
			zap.Int64("incoming_serial", snapshot.UpdateSerial))
		return
	}

	ts.view = snapshot
	ts.mySeatIdx = snapshot.ResolveOwnSeat(ts.options.PlayerID)

	if ts.status == SessionStateStatus_AwaitingJoinAck {
		ts.rg.Ready(0)
		ts.rg.Stop()
		ts.setStatus(SessionStateStatus_Joined)
	}

	ts.onTableUpdated(snapshot)
}

/*
showBubbleLocked attaches a short-lived action indicator to the acting seat.
The viewer's own actions never produce a bubble. A fresh action for a seat
replaces the pending indicator; the old expiry timer is always cancelled
before the new one is scheduled so a delayed expiry cannot clobber it.
*/
func (ts *tableSession) showBubbleLocked(result *ActionResult) {
	text, ok := result.BubbleText()
	if !ok {
		return
	}

	seatIdx := UnsetValue
	if result.SeatIndex != nil {
		seatIdx = *result.SeatIndex
	} else if result.PlayerID != "" && ts.view != nil {
		if seat := ts.view.FindSeatByPlayerID(result.PlayerID); seat != nil {
			seatIdx = seat.SeatIndex
		}
	}
	if seatIdx == UnsetValue {
		return
	}

	if result.PlayerID != "" {
		if result.PlayerID == ts.options.PlayerID {
			return
		}
		if ts.view != nil && ts.mySeatIdx != UnsetValue {
			if mySeat := ts.view.FindSeat(ts.mySeatIdx); mySeat != nil && mySeat.Player != nil && mySeat.Player.ID == result.PlayerID {
				return
			}
		}
	}

	bubble := &SeatBubble{SeatIndex: seatIdx, Text: text}
	ts.bubbles[seatIdx] = bubble
	ts.onSeatBubbleUpdated(seatIdx, bubble)

	if _, ok := ts.bubbleTimeBank[seatIdx]; !ok {
		ts.bubbleTimeBank[seatIdx] = timebank.NewTimeBank()
	}
	ts.bubbleTimeBank[seatIdx].Cancel()
	if err := ts.bubbleTimeBank[seatIdx].NewTask(ts.options.BubbleTTL, func(isCancelled bool) {
		if isCancelled {
			return
		}
		ts.lock.Lock()
		if ts.bubbles[seatIdx] != bubble {
			ts.lock.Unlock()
			return
		}
		delete(ts.bubbles, seatIdx)
		ts.lock.Unlock()
		ts.onSeatBubbleUpdated(seatIdx, nil)
	}); err != nil {
		ts.logger.Warn("tableclient: bubble expiry scheduling failed", zap.Error(err))
	}
}

// SeatBubbles returns the currently visible per-seat indicators.
func (ts *tableSession) SeatBubbles() map[int]SeatBubble {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	out := make(map[int]SeatBubble, len(ts.bubbles))
	for seatIdx, bubble := range ts.bubbles {
		out[seatIdx] = *bubble
	}
	return out
}

func (ts *tableSession) leaveNoticeTextLocked(result *ActionResult) string {
	if result.Message != "" {
		return result.Message
	}
	if result.SeatIndex != nil && ts.view != nil {
		if seat := ts.view.FindSeat(*result.SeatIndex); seat != nil && seat.Player != nil {
			return fmt.Sprintf("%s left the table.", seat.Player.DisplayName)
		}
	}
	return "A player left the table."
}

// postNoticeLocked appends a transient notice, keeping only the most recent
// ones. Each notice expires independently.
func (ts *tableSession) postNoticeLocked(text string) {
	notice := Notice{ID: uuid.New().String(), Text: text}
	ts.notices = append(ts.notices, notice)
	for len(ts.notices) > ts.options.MaxNotices {
		expired := ts.notices[0]
		ts.notices = ts.notices[1:]
		if tb, ok := ts.noticeTimeBank[expired.ID]; ok {
			tb.Cancel()
			delete(ts.noticeTimeBank, expired.ID)
		}
	}

	tb := timebank.NewTimeBank()
	ts.noticeTimeBank[notice.ID] = tb
	if err := tb.NewTask(ts.options.NoticeTTL, func(isCancelled bool) {
		if isCancelled {
			return
		}
		ts.lock.Lock()
		ts.notices = funk.Filter(ts.notices, func(n Notice) bool {
			return n.ID != notice.ID
		}).([]Notice)
		delete(ts.noticeTimeBank, notice.ID)
		remaining := ts.noticesCopyLocked()
		ts.lock.Unlock()
		ts.onNoticesUpdated(remaining)
	}); err != nil {
		ts.logger.Warn("tableclient: notice expiry scheduling failed", zap.Error(err))
	}

	ts.onNoticesUpdated(ts.noticesCopyLocked())
}

// Notices returns the currently visible transient notices.
func (ts *tableSession) Notices() []Notice {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	return ts.noticesCopyLocked()
}

func (ts *tableSession) noticesCopyLocked() []Notice {
	out := make([]Notice, len(ts.notices))
	copy(out, ts.notices)
	return out
}

// BestHandName evaluates the viewer's best hand from the reconciled view.
// Returns false while fewer than five cards are known.
func (ts *tableSession) BestHandName() (string, bool) {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	if ts.view == nil || ts.mySeatIdx == UnsetValue {
		return "", false
	}
	seat := ts.view.FindSeat(ts.mySeatIdx)
	if seat == nil || seat.Player == nil {
		return "", false
	}

	best := pokerhand.BestFromPool(seat.Player.HoleCards, ts.view.HandState.CommunityCards)
	if best == nil {
		return "", false
	}
	return best.Name(), true
}

// startJoinAckWait arms the ready group that guards the join handshake. The
// single participant is readied by the first applied snapshot; the timeout
// drives the bounded retry.
func (ts *tableSession) startJoinAckWait() {
	ts.rg.Stop()
	ts.rg.SetTimeoutInterval(ts.options.JoinAckTimeout)
	ts.rg.OnTimeout(func(rg *syncsaga.ReadyGroup) {
		ts.handleJoinAckTimeout()
	})
	ts.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {})
	ts.rg.ResetParticipants()
	ts.rg.Add(0, false)
	ts.rg.Start()
}

func (ts *tableSession) handleJoinAckTimeout() {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	if ts.status != SessionStateStatus_AwaitingJoinAck {
		return
	}

	if ts.joinAttempts < ts.options.MaxJoinAttempts {
		ts.joinAttempts++
		ts.logger.Info("tableclient: no join ack, re-sending join intent",
			zap.String("table_id", ts.options.TableID),
			zap.Int("attempt", ts.joinAttempts))
		_ = ts.sendIntent(GameAction_JoinTable, nil)
		ts.startJoinAckWait()
		return
	}

	ts.logger.Warn("tableclient: join handshake timed out",
		zap.String("table_id", ts.options.TableID))
	ts.onJoinTimeout()
}

// teardown cancels every pending timer, drops the subscriptions and discards
// the view. Called with the lock held.
func (ts *tableSession) teardown(status SessionStateStatus) {
	ts.rg.Stop()

	for _, tb := range ts.bubbleTimeBank {
		tb.Cancel()
	}
	ts.bubbleTimeBank = make(map[int]*timebank.TimeBank)
	ts.bubbles = make(map[int]*SeatBubble)

	for _, tb := range ts.noticeTimeBank {
		tb.Cancel()
	}
	ts.noticeTimeBank = make(map[string]*timebank.TimeBank)
	ts.notices = make([]Notice, 0)

	for _, unsubscribe := range ts.unsubscribes {
		unsubscribe()
	}
	ts.unsubscribes = make([]func(), 0)

	ts.view = nil
	ts.mySeatIdx = UnsetValue
	ts.setStatus(status)
}

func (ts *tableSession) setStatus(status SessionStateStatus) {
	ts.status = status
	ts.onStatusUpdated(status)
}
