package tableclient

// Affordances are the locally derived, non-authoritative action hints for the
// viewer. The server remains the only authority on legality.
type Affordances struct {
	ToCall        int64 `json:"to_call"`
	CanCheck      bool  `json:"can_check"`
	CanCall       bool  `json:"can_call"`
	CanRaise      bool  `json:"can_raise"`
	CanAllIn      bool  `json:"can_all_in"`
	MinRaiseTotal int64 `json:"min_raise_total"` // suggested minimum raise total
	IsMyTurn      bool  `json:"is_my_turn"`
}

// DeriveAffordances computes the viewer's affordances from the reconciled view.
// A nil view, unresolved seat, or empty seat yields the zero value.
func DeriveAffordances(view *TableSnapshot, mySeatIdx int) Affordances {
	var a Affordances
	if view == nil || mySeatIdx == UnsetValue {
		return a
	}
	seat := view.FindSeat(mySeatIdx)
	if seat == nil || seat.Player == nil {
		return a
	}

	minRaise := view.HandState.MinRaise
	if minRaise < 1 {
		minRaise = 1
	}

	toCall := view.HandState.CurrentBet - seat.Player.CurrentBetThisStreet
	if toCall < 0 {
		toCall = 0
	}

	a.ToCall = toCall
	a.CanCheck = toCall == 0
	a.CanCall = toCall > 0 && seat.Player.Stack > 0
	a.CanRaise = seat.Player.Stack > toCall+minRaise
	a.CanAllIn = seat.Player.Stack > 0
	a.MinRaiseTotal = toCall + minRaise

	acting := view.HandState.ActingSeatIndex
	a.IsMyTurn = acting != nil && *acting == mySeatIdx && !seat.Player.Folded
	return a
}
