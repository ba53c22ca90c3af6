package tableclient

import (
	"encoding/json"

	"github.com/thoas/go-funk"
)

// TableSnapshot is the reconciled table view. It mirrors the server's snapshot
// wire shape and is replaced wholesale on every acknowledged update.
type TableSnapshot struct {
	TableID          string            `json:"tableId"`
	TableName        string            `json:"tableName"`
	Seats            []SeatSnapshot    `json:"seats"`
	HandState        HandStateSnapshot `json:"handState"`
	SmallBlindAmount int64             `json:"smallBlindAmount"`
	BigBlindAmount   int64             `json:"bigBlindAmount"`
	UpdateSerial     int64             `json:"updateSerial,omitempty"` // optional monotonic serial, 0 when the server omits it
}

// SeatSnapshot is one fixed seat slot; Player is nil for an empty seat.
type SeatSnapshot struct {
	SeatIndex int             `json:"seatIndex"`
	Player    *PlayerSnapshot `json:"player"`
}

// PlayerSnapshot is the public state of a seated player. HoleCards is present
// only on the viewer's own seat or at showdown; it must never be assumed.
type PlayerSnapshot struct {
	ID                   string   `json:"id"`
	DisplayName          string   `json:"displayName"`
	Stack                int64    `json:"stack"`
	Folded               bool     `json:"folded"`
	AllIn                bool     `json:"allIn"`
	CurrentBetThisStreet int64    `json:"currentBetThisStreet"`
	HoleCards            []string `json:"holeCards,omitempty"`
}

// HandStateSnapshot is the state of the hand in progress.
type HandStateSnapshot struct {
	Phase           GamePhase `json:"phase"`
	CommunityCards  []string  `json:"communityCards"`
	Pot             int64     `json:"pot"`
	CurrentBet      int64     `json:"currentBet"`
	ActingSeatIndex *int      `json:"actingSeatIndex"`
	MinRaise        int64     `json:"minRaise"`
}

// FindSeat returns the seat with the given index, or nil.
func (ts *TableSnapshot) FindSeat(seatIdx int) *SeatSnapshot {
	for i := range ts.Seats {
		if ts.Seats[i].SeatIndex == seatIdx {
			return &ts.Seats[i]
		}
	}
	return nil
}

// FindSeatByPlayerID returns the seat occupied by the given player, or nil.
func (ts *TableSnapshot) FindSeatByPlayerID(playerID string) *SeatSnapshot {
	for i := range ts.Seats {
		if ts.Seats[i].Player != nil && ts.Seats[i].Player.ID == playerID {
			return &ts.Seats[i]
		}
	}
	return nil
}

// OccupiedSeats returns the seats that currently hold a player.
func (ts *TableSnapshot) OccupiedSeats() []SeatSnapshot {
	return funk.Filter(ts.Seats, func(seat SeatSnapshot) bool {
		return seat.Player != nil
	}).([]SeatSnapshot)
}

/*
ResolveOwnSeat determines which seat belongs to the viewer.
  - Tier 1: the first seat exposing hole cards. Only the viewer ever receives
    hole cards, so this signal wins whenever present.
  - Tier 2: the first seat whose display name matches the viewer's nickname.
    Duplicate nicknames can misattribute here; the server does not transmit a
    stable viewer-seat identifier in every event shape.

Returns UnsetValue when neither tier resolves.
*/
func (ts *TableSnapshot) ResolveOwnSeat(nickname string) int {
	for _, seat := range ts.Seats {
		if seat.Player != nil && len(seat.Player.HoleCards) > 0 {
			return seat.SeatIndex
		}
	}
	for _, seat := range ts.Seats {
		if seat.Player != nil && seat.Player.DisplayName == nickname {
			return seat.SeatIndex
		}
	}
	return UnsetValue
}

// GetJSON encodes the snapshot for logging and debugging.
func (ts TableSnapshot) GetJSON() (string, error) {
	encoded, err := json.Marshal(ts)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
