package tableclient

import "time"

// TableSessionCallbacks are the event listeners a presenter can attach.
// All callbacks default to no-ops.
type TableSessionCallbacks struct {
	OnTableUpdated      func(view *TableSnapshot)
	OnSeatBubbleUpdated func(seatIdx int, bubble *SeatBubble) // nil bubble on expiry
	OnNoticesUpdated    func(notices []Notice)
	OnProtocolError     func(message string)
	OnJoinTimeout       func()
	OnStatusUpdated     func(status SessionStateStatus)
}

func NewTableSessionCallbacks() *TableSessionCallbacks {
	return &TableSessionCallbacks{
		OnTableUpdated:      func(*TableSnapshot) {},
		OnSeatBubbleUpdated: func(int, *SeatBubble) {},
		OnNoticesUpdated:    func([]Notice) {},
		OnProtocolError:     func(string) {},
		OnJoinTimeout:       func() {},
		OnStatusUpdated:     func(SessionStateStatus) {},
	}
}

// TableSessionOptions configures one table subscription. PlayerID doubles as
// the display nickname; the server keys both off the same value.
type TableSessionOptions struct {
	TableID  string
	PlayerID string

	// Destinations are opaque routable strings handed to the transport.
	ActionDestination  string
	TableTopicPrefix   string
	PrivateDestination string

	JoinAckTimeout  int // seconds to wait for the acknowledging snapshot
	MaxJoinAttempts int // total sends of the join intent before surfacing a timeout

	BubbleTTL  time.Duration
	NoticeTTL  time.Duration
	MaxNotices int
}

func NewTableSessionOptions(tableID, playerID string) *TableSessionOptions {
	return &TableSessionOptions{
		TableID:            tableID,
		PlayerID:           playerID,
		ActionDestination:  "/app/action",
		TableTopicPrefix:   "/topic/table/",
		PrivateDestination: "/user/queue/table-state",
		JoinAckTimeout:     3,
		MaxJoinAttempts:    2,
		BubbleTTL:          2 * time.Second,
		NoticeTTL:          2500 * time.Millisecond,
		MaxNotices:         4,
	}
}
