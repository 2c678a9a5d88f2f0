package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "Should default to help", text: "   ", wantType: CmdHelp},
		{name: "Should parse a bare command", text: "today", wantType: CmdToday},
		{name: "Should keep arguments", text: "schedule add 1 1 15:00 16:00 10 - Piano class", wantType: CmdSchedule,
			wantArgs: []string{"add", "1", "1", "15:00", "16:00", "10", "-", "Piano", "class"}},
		{name: "Should be case insensitive", text: "Briefing 2", wantType: CmdBriefing, wantArgs: []string{"2"}},
		{name: "Should resolve aliases", text: "kids", wantType: CmdChildren},
		{name: "Should reject unknown commands", text: "dance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestCommand_Sub(t *testing.T) {
	cmd, err := ParseCommand("audio ON")
	require.NoError(t, err)
	assert.Equal(t, "on", cmd.Sub())

	cmd, err = ParseCommand("status")
	require.NoError(t, err)
	assert.Empty(t, cmd.Sub())
}
