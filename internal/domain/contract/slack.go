//go:generate mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks
package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UploadFileV2Context uploads a file and shares it in a channel
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}
