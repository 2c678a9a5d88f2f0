package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdHelp       CommandType = "help"
	CmdToday      CommandType = "today"
	CmdBriefing   CommandType = "briefing"
	CmdAudio      CommandType = "audio"
	CmdStatus     CommandType = "status"
	CmdChildren   CommandType = "children"
	CmdChild      CommandType = "child"
	CmdSchedules  CommandType = "schedules"
	CmdSchedule   CommandType = "schedule"
	CmdSkip       CommandType = "skip"
	CmdActivities CommandType = "activities"
	CmdActivity   CommandType = "activity"
	CmdEnroll     CommandType = "enroll"
	CmdPayments   CommandType = "payments"
	CmdPaid       CommandType = "paid"
	CmdUnpaid     CommandType = "unpaid"
	CmdConfig     CommandType = "config"
	CmdRegion     CommandType = "region"
)

var commandAliases = map[string]CommandType{
	"help":       CmdHelp,
	"today":      CmdToday,
	"briefing":   CmdBriefing,
	"audio":      CmdAudio,
	"status":     CmdStatus,
	"children":   CmdChildren,
	"kids":       CmdChildren,
	"child":      CmdChild,
	"schedules":  CmdSchedules,
	"ls":         CmdSchedules,
	"schedule":   CmdSchedule,
	"skip":       CmdSkip,
	"activities": CmdActivities,
	"activity":   CmdActivity,
	"enroll":     CmdEnroll,
	"payments":   CmdPayments,
	"paid":       CmdPaid,
	"unpaid":     CmdUnpaid,
	"config":     CmdConfig,
	"region":     CmdRegion,
}

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmdType, ok := commandAliases[strings.ToLower(parts[0])]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	cmd := &Command{
		Type: cmdType,
		Raw:  text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

// Sub returns the lower-cased first argument, used by commands with sub-actions.
func (c *Command) Sub() string {
	if len(c.Args) == 0 {
		return ""
	}
	return strings.ToLower(c.Args[0])
}

func GetHelpText() string {
	return `*Available Commands:*

*Today:*
• ` + "`/family today [childID]`" + ` - Show today's schedule
• ` + "`/family briefing [childID]`" + ` - Play the daily briefing now
• ` + "`/family audio on|off`" + ` - Turn voice notifications on or off
• ` + "`/family status`" + ` - Show bot status

*Children:*
• ` + "`/family children`" + ` - List children
• ` + "`/family child add VOICE AGE|- NAME`" + ` - Add a child (voices: Puck, Charon, Kore, Fenrir, Zephyr)
• ` + "`/family child remove ID`" + ` - Remove a child and all of their schedules

*Schedules:*
• ` + "`/family schedules`" + ` - List all schedule items
• ` + "`/family schedule add CHILD DAY HH:MM HH:MM NOTIFY PICKUP|- TITLE`" + ` - Add a weekly item (DAY 0=Sun ... 6=Sat)
• ` + "`/family schedule remove ID`" + ` - Remove a schedule item
• ` + "`/family skip ID`" + ` - Skip this week's occurrence

*Activities & Payments:*
• ` + "`/family activities`" + ` - List activity templates
• ` + "`/family activity add CATEGORY FEE PAYDAY NAME`" + ` - Add a template (ACADEMY, SCHOOL, KINDERGARTEN, OTHER)
• ` + "`/family activity remove ID`" + ` - Remove a template
• ` + "`/family enroll ACTIVITY CHILD [paid]`" + ` - Enroll a child for payment tracking
• ` + "`/family payments`" + ` - Show monthly fees and payment status
• ` + "`/family paid ID [YYYY-MM-DD]`" + ` - Mark a payment as done
• ` + "`/family unpaid ID`" + ` - Clear a payment

*Briefing settings:*
• ` + "`/family config show`" + ` - Show briefing settings
• ` + "`/family config on|off`" + ` - Enable or disable the automatic briefing
• ` + "`/family config time HH:MM`" + ` - Set the briefing time
• ` + "`/family config days 1,2,3,4,5`" + ` - Set briefing days (0=Sun ... 6=Sat)
• ` + "`/family region [ID]`" + ` - Show or change the weather region`
}
