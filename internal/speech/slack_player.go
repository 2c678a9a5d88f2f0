package speech

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackPlayer delivers announcements and alerts to one Slack channel.
type SlackPlayer struct {
	client    contract.SlackClient
	channelID string
}

func NewSlackPlayer(client contract.SlackClient, channelID string) *SlackPlayer {
	return &SlackPlayer{
		client:    client,
		channelID: channelID,
	}
}

// Play uploads the clip as a WAV file with the announcement text as comment.
func (p *SlackPlayer) Play(ctx context.Context, text string, audio *entity.Audio) error {
	wav := EncodeWAV(audio)
	filename := fmt.Sprintf("announcement-%s.wav", time.Now().Format("20060102-150405"))

	_, err := p.client.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Reader:         bytes.NewReader(wav),
		FileSize:       len(wav),
		Filename:       filename,
		Title:          "Announcement",
		InitialComment: fmt.Sprintf(":loudspeaker: %s", text),
		Channel:        p.channelID,
	})
	if err != nil {
		return fmt.Errorf("failed to upload announcement: %w", err)
	}

	log.Printf("Uploaded announcement %s (%s)", filename, audio.Duration())
	return nil
}

func (p *SlackPlayer) Alert(ctx context.Context, message string) error {
	_, _, err := p.client.PostMessage(
		p.channelID,
		slack.MsgOptionText(fmt.Sprintf(":warning: %s", message), false),
	)
	if err != nil {
		return fmt.Errorf("failed to post alert: %w", err)
	}
	return nil
}
