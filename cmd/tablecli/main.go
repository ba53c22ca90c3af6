package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"go.uber.org/zap"

	"github.com/holdup/tableclient"
	"github.com/holdup/tableclient/auth"
	"github.com/holdup/tableclient/pokerhand"
	"github.com/holdup/tableclient/transport"
)

func main() {
	natsURL := flag.String("nats", "nats://127.0.0.1:4222", "NATS server URL")
	wsURL := flag.String("ws", "", "websocket URL (used instead of NATS when set)")
	tableID := flag.String("table", "", "table to join")
	nickname := flag.String("nickname", "", "display name (falls back to HOLDUP_NICKNAME)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	printBanner()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}

	name := *nickname
	if name == "" {
		if session, err := auth.Load(); err == nil {
			name = session.Nickname
		}
	}
	if name == "" {
		name, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your nickname").Show()
		name = strings.TrimSpace(name)
	}
	if name == "" {
		pterm.Error.Println("a nickname is required")
		os.Exit(1)
	}
	auth.Set(&auth.Session{PlayerID: name, Nickname: name})
	defer auth.Clear()

	table := *tableID
	if table == "" {
		table, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Enter a table id").Show()
		table = strings.TrimSpace(table)
	}
	if table == "" {
		pterm.Error.Println("a table id is required")
		os.Exit(1)
	}

	t, cleanup, err := dial(*wsURL, *natsURL)
	if err != nil {
		pterm.Error.Printfln("connect failed: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	session, err := tableclient.NewTableSession(t,
		tableclient.NewTableSessionOptions(table, name),
		tableclient.WithLogger(logger))
	if err != nil {
		pterm.Error.Printfln("session setup failed: %v", err)
		os.Exit(1)
	}

	updates := make(chan struct{}, 1)
	notify := func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	}
	session.OnTableUpdated(func(*tableclient.TableSnapshot) { notify() })
	session.OnSeatBubbleUpdated(func(int, *tableclient.SeatBubble) { notify() })
	session.OnNoticesUpdated(func([]tableclient.Notice) { notify() })
	session.OnProtocolError(func(message string) {
		pterm.Error.Println(message)
	})
	session.OnJoinTimeout(func() {
		pterm.Warning.Println("No response from the table. Choose 'retry join' to try again.")
		notify()
	})

	if err := session.Join(); err != nil {
		pterm.Error.Printfln("join failed: %v", err)
		os.Exit(1)
	}
	pterm.Info.Printfln("Joining table %s as %s...", table, name)

	runLoop(session, updates)
}

func printBanner() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hold", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("up", pterm.FgGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
}

func dial(wsURL, natsURL string) (transport.Transport, func(), error) {
	if wsURL != "" {
		t, err := transport.NewWebSocketTransport(wsURL)
		if err != nil {
			return nil, nil, err
		}
		return t, func() { _ = t.Close() }, nil
	}
	t, err := transport.NewNATSTransport(natsURL)
	if err != nil {
		return nil, nil, err
	}
	return t, func() {}, nil
}

func runLoop(session tableclient.TableSession, updates <-chan struct{}) {
	for {
		<-updates
		render(session)

		if session.Status() == tableclient.SessionStateStatus_AwaitingJoinAck {
			continue
		}

		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions(menuOptions(session)).
			WithDefaultText("Action").
			Show()

		if done := dispatch(session, choice); done {
			return
		}
	}
}

func menuOptions(session tableclient.TableSession) []string {
	options := make([]string, 0, 8)
	affordances := session.MyAffordances()

	view := session.Snapshot()
	if view != nil && view.HandState.Phase == tableclient.GamePhase_Waiting {
		options = append(options, "start hand")
	}
	if affordances.IsMyTurn {
		options = append(options, "fold")
		if affordances.CanCheck {
			options = append(options, "check")
		}
		if affordances.CanCall {
			options = append(options, fmt.Sprintf("call %d", affordances.ToCall))
		}
		if affordances.CanRaise {
			options = append(options, fmt.Sprintf("raise to %d", affordances.MinRaiseTotal))
		}
		if affordances.CanAllIn {
			options = append(options, "all-in")
		}
	}
	options = append(options, "wait", "retry join", "leave")
	return options
}

func dispatch(session tableclient.TableSession, choice string) bool {
	affordances := session.MyAffordances()

	switch {
	case choice == "start hand":
		_ = session.SendAction(tableclient.GameAction_StartHand)
	case choice == "fold":
		_ = session.SendAction(tableclient.GameAction_Fold)
	case choice == "check":
		_ = session.SendAction(tableclient.GameAction_Check)
	case strings.HasPrefix(choice, "call"):
		_ = session.SendWager(tableclient.GameAction_Call, affordances.ToCall)
	case strings.HasPrefix(choice, "raise"):
		_ = session.SendWager(tableclient.GameAction_Raise, affordances.MinRaiseTotal)
	case choice == "all-in":
		_ = session.SendAction(tableclient.GameAction_AllIn)
	case choice == "retry join":
		_ = session.RetryJoin()
	case choice == "leave":
		_ = session.Leave()
		pterm.Info.Println("Left the table.")
		return true
	}
	return false
}

func render(session tableclient.TableSession) {
	view := session.Snapshot()
	if view == nil {
		pterm.Println(pterm.Gray("waiting for the table state..."))
		return
	}

	pterm.DefaultSection.Printfln("%s  ·  pot %d  ·  %s", view.TableName, view.HandState.Pot, view.HandState.Phase)

	if len(view.HandState.CommunityCards) > 0 {
		pterm.Printfln("Board: %s", formatCards(view.HandState.CommunityCards))
	}

	bubbles := session.SeatBubbles()
	mySeatIdx := session.MySeatIndex()

	rows := pterm.TableData{{"Seat", "Player", "Stack", "Bet", ""}}
	for _, seat := range view.OccupiedSeats() {
		marker := ""
		if seat.SeatIndex == mySeatIdx {
			marker = "(you)"
		}
		status := ""
		if seat.Player.Folded {
			status = "folded"
		} else if seat.Player.AllIn {
			status = "all-in"
		}
		if bubble, ok := bubbles[seat.SeatIndex]; ok {
			status = bubble.Text
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d %s", seat.SeatIndex+1, marker),
			seat.Player.DisplayName,
			fmt.Sprintf("%d", seat.Player.Stack),
			fmt.Sprintf("%d", seat.Player.CurrentBetThisStreet),
			status,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	if mySeatIdx != tableclient.UnsetValue {
		if seat := view.FindSeat(mySeatIdx); seat != nil && seat.Player != nil && len(seat.Player.HoleCards) > 0 {
			pterm.Printfln("Your cards: %s", formatCards(seat.Player.HoleCards))
		}
	}
	if name, ok := session.BestHandName(); ok {
		pterm.Printfln("Best hand: %s", pterm.LightYellow(name))
	}

	for _, notice := range session.Notices() {
		pterm.Println(pterm.Gray(notice.Text))
	}

	if session.MyAffordances().IsMyTurn {
		pterm.Success.Println("It's your turn.")
	} else if acting := view.HandState.ActingSeatIndex; acting != nil {
		if seat := view.FindSeat(*acting); seat != nil && seat.Player != nil {
			pterm.Printfln("Waiting for %s...", seat.Player.DisplayName)
		}
	}
}

func formatCards(codes []string) string {
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = formatCard(code)
	}
	return strings.Join(out, " ")
}

func formatCard(code string) string {
	display := pokerhand.FormatCardCode(code)
	if strings.ContainsAny(display, "♥♦") {
		return pterm.LightRed(display)
	}
	return display
}
