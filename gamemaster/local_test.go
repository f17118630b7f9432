package gamemaster

import (
	"dobutsu/game"
	"errors"
	"reflect"
	"testing"
)

func sq(row, col int) game.Square { return game.MustSquare(row, col) }

func trialPosition(t *testing.T) *game.Position {
	t.Helper()
	var b game.Board
	if err := b.Set(sq(1, 0), game.NewPiece(game.Lion, game.South)); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(sq(2, 2), game.NewPiece(game.Lion, game.North)); err != nil {
		t.Fatal(err)
	}
	p, err := game.NewPosition(b, nil, nil, game.South)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine()
	position, getUpdate := engine.Init()

	if position == nil {
		t.Fatal("expected a Position, got nil")
	}
	if position.ToMove() != game.South {
		t.Errorf("expected South to move first, got %v", position.ToMove())
	}
	if engine.Outcome().IsOver() {
		t.Errorf("expected an ongoing game, got %v", engine.Outcome())
	}

	// Check that getUpdate returns nil if no moves have been played
	move, newPosition := getUpdate()
	if move != (game.Move{}) || newPosition != nil {
		t.Errorf("expected no update yet, got move=%v position=%v", move, newPosition)
	}
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	engine := NewLocalEngine()
	position, getUpdate := engine.Init()

	move := game.NewBoardMove(sq(2, 1), sq(1, 1)) // Chick takes Chick
	if err := engine.Play(move); err != nil {
		t.Errorf("expected no error for a valid move, got %v", err)
	}

	playedMove, updated := getUpdate()
	if updated == nil {
		t.Fatal("expected an update after playing a move, got none")
	}
	if playedMove != move {
		t.Errorf("expected update for %v, got %v", move, playedMove)
	}
	if updated.ToMove() != game.North {
		t.Errorf("expected North to move after South, got %v", updated.ToMove())
	}
	if got := updated.Stock(game.South).Count(game.Chick); got != 1 {
		t.Errorf("expected South to hold the captured Chick, got %d", got)
	}
	if position.Ply() != 0 {
		t.Errorf("expected the initial position to stay untouched, got ply %d", position.Ply())
	}

	// Updates are consumed once
	if _, again := getUpdate(); again != nil {
		t.Errorf("expected the update queue to be drained, got %v", again)
	}
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init()

	// The Lion cannot step onto its own Elephant.
	illegalMove := game.NewBoardMove(sq(3, 1), sq(3, 0))

	err := engine.Play(illegalMove)
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
	if engine.Position().Ply() != 0 {
		t.Error("expected an illegal move to leave the game untouched")
	}
}

func TestLocalEnginePlay_UnreachableMove(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init()

	// Untrusted input is rejected before it can reach Position.Play.
	jump := game.NewBoardMove(sq(3, 1), sq(1, 0))

	err := engine.Play(jump)
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
}

func TestLocalEnginePlay_Uninitialized(t *testing.T) {
	engine := NewLocalEngine()
	if err := engine.Play(game.NewBoardMove(sq(2, 1), sq(1, 1))); err == nil {
		t.Error("expected an error before Init, got none")
	}
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.InitFrom(trialPosition(t))

	trial := game.NewBoardMove(sq(1, 0), sq(0, 0))
	if err := engine.Play(trial); err != nil {
		t.Fatalf("did not expect error on the winning move, got %v", err)
	}

	expected := game.Outcome{Status: game.Win, Winner: game.South, Reason: game.ReasonTrial}
	if engine.Outcome() != expected {
		t.Errorf("expected %v, got %v", expected, engine.Outcome())
	}

	// The final update is still delivered
	playedMove, updated := getUpdate()
	if playedMove != trial || updated == nil {
		t.Errorf("expected a final update before game ends, got move=%v position=%v", playedMove, updated)
	}

	// Now if we try to play another move, it should return "game is over"
	err := engine.Play(game.NewBoardMove(sq(2, 2), sq(3, 2)))
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	engine := NewLocalEngine()
	position1, _ := engine.Init()

	engine2 := NewLocalEngine()
	position2, _ := engine2.Init()

	if !reflect.DeepEqual(position1, position2) {
		t.Error("expected the same initial position, got differences")
	}
}
