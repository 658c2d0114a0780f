package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/registry"
)

// InputSource yields directional moves, blocking until one is available.
// Keys that do not map to a move must be swallowed by the source.
type InputSource interface {
	NextMove(ctx context.Context) (board.Move, error)
}

// Renderer draws the grid. over is true for the final frame.
type Renderer interface {
	Render(g board.Grid, over bool) error
}

// Acknowledger waits for the player to dismiss the final board.
type Acknowledger interface {
	Acknowledge(ctx context.Context) error
}

// moveAck acknowledges with whatever move the input yields next.
type moveAck struct {
	in InputSource
}

func (a moveAck) Acknowledge(ctx context.Context) error {
	_, err := a.in.NextMove(ctx)
	return err
}

// Runner drives a Session synchronously until the game is over.
type Runner struct {
	Renderer Renderer      // nil disables rendering
	Delay    time.Duration // pause between policy moves
	Ack      Acknowledger  // waited on once after game over; Run falls back to its input
}

// Run plays a human game: render, block for a move, apply it, repeat.
func (r Runner) Run(ctx context.Context, s *Session, in InputSource) error {
	for s.State() == StatePlaying {
		if err := r.render(s, false); err != nil {
			return err
		}

		m, err := in.NextMove(ctx)
		if err != nil {
			return err
		}

		if _, err := s.Play(m); err != nil {
			return err
		}
	}

	ack := r.Ack
	if ack == nil {
		if a, ok := in.(Acknowledger); ok {
			ack = a
		} else {
			ack = moveAck{in: in}
		}
	}
	return r.finish(ctx, s, ack)
}

// RunPolicy plays a game with moves chosen by p, pausing Delay between turns.
func (r Runner) RunPolicy(ctx context.Context, s *Session, p registry.Policy) error {
	for s.State() == StatePlaying {
		if err := r.render(s, false); err != nil {
			return err
		}

		if _, _, err := s.PlayPolicy(p); err != nil {
			return err
		}

		if err := sleep(ctx, r.Delay); err != nil {
			return err
		}
	}

	return r.finish(ctx, s, r.Ack)
}

func (r Runner) finish(ctx context.Context, s *Session, ack Acknowledger) error {
	if err := r.render(s, true); err != nil {
		return err
	}
	if ack == nil {
		return nil
	}

	if err := ack.Acknowledge(ctx); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (r Runner) render(s *Session, over bool) error {
	if r.Renderer == nil {
		return nil
	}
	return r.Renderer.Render(s.Grid(), over)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
