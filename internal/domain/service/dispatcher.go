package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

type dispatcher struct {
	synthesizer contract.Synthesizer
	player      contract.Player
}

func newDispatcher(synthesizer contract.Synthesizer, player contract.Player) *dispatcher {
	return &dispatcher{
		synthesizer: synthesizer,
		player:      player,
	}
}

// Announce synthesizes text and plays it in the background. Input errors are
// returned directly; everything after that is reported on Done.
func (d *dispatcher) Announce(ctx context.Context, text string, voice entity.VoiceName) (*entity.Announcement, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: announcement text is empty", domain.ErrInvalidInput)
	}
	if !voice.Valid() {
		return nil, fmt.Errorf("%w: unknown voice %q", domain.ErrInvalidInput, voice)
	}

	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		defer close(done)

		audio, err := d.synthesizer.Synthesize(ctx, text, voice)
		if err != nil {
			done <- fmt.Errorf("failed to synthesize announcement: %w", err)
			return
		}
		if audio == nil || len(audio.PCM) == 0 {
			done <- domain.ErrEmptyAudio
			return
		}

		close(started)
		log.Printf("Playing announcement with voice %s (%s)", voice, audio.Duration())

		if err := d.player.Play(ctx, text, audio); err != nil {
			done <- fmt.Errorf("failed to play announcement: %w", err)
			return
		}
		done <- nil
	}()

	return &entity.Announcement{Started: started, Done: done}, nil
}
