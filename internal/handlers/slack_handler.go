package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/family-schedule-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

const engineCallTimeout = 5 * time.Second

type SlackHandler struct {
	household     contract.HouseholdService
	engine        contract.EngineController
	weather       contract.WeatherRefresher
	signingSecret string
	location      *time.Location
}

func New(household contract.HouseholdService, engine contract.EngineController, weather contract.WeatherRefresher, signingSecret string, location *time.Location) *SlackHandler {
	if location == nil {
		location = time.Local
	}
	return &SlackHandler{
		household:     household,
		engine:        engine,
		weather:       weather,
		signingSecret: signingSecret,
		location:      location,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("ERROR failed to encode slack response: %v", err)
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdHelp:
		return h.handleHelp()
	case slackcmd.CmdToday:
		return h.handleToday(cmd)
	case slackcmd.CmdBriefing:
		return h.handleBriefing(ctx, cmd)
	case slackcmd.CmdAudio:
		return h.handleAudio(ctx, cmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(ctx)
	case slackcmd.CmdChildren:
		return h.handleListChildren()
	case slackcmd.CmdChild:
		return h.handleChild(cmd)
	case slackcmd.CmdSchedules:
		return h.handleListSchedules()
	case slackcmd.CmdSchedule:
		return h.handleSchedule(cmd)
	case slackcmd.CmdSkip:
		return h.handleSkip(cmd)
	case slackcmd.CmdActivities:
		return h.handleListActivities()
	case slackcmd.CmdActivity:
		return h.handleActivity(cmd)
	case slackcmd.CmdEnroll:
		return h.handleEnroll(cmd)
	case slackcmd.CmdPayments:
		return h.handlePayments()
	case slackcmd.CmdPaid:
		return h.handlePaid(cmd)
	case slackcmd.CmdUnpaid:
		return h.handleUnpaid(cmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd)
	case slackcmd.CmdRegion:
		return h.handleRegion(cmd)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) now() time.Time {
	return time.Now().In(h.location)
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) handleToday(cmd *slackcmd.Command) *slack.Msg {
	filter := childFilter(cmd.Args)
	now := h.now()
	occurrences := h.household.Today(now, filter)
	household := h.household.Snapshot()

	if len(occurrences) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("📅 Nothing scheduled for %s.", domain.WeekdayNames[int(now.Weekday())]),
		}
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*📅 Today (%s, %s):*\n", domain.WeekdayNames[int(now.Weekday())], domain.DateOf(now)))
	for _, o := range occurrences {
		line := fmt.Sprintf("%s-%s %s: %s", o.Item.StartTime, o.Item.EndTime, childName(household, o.Item.ChildID), o.Item.Title)
		if o.Item.Supplies != "" {
			line += fmt.Sprintf(" (bring: %s)", o.Item.Supplies)
		}
		if o.IsSkipped {
			line = fmt.Sprintf("~%s~ _skipped_", line)
		}
		text.WriteString("• " + line + "\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleBriefing(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	ctx, cancel := context.WithTimeout(ctx, engineCallTimeout)
	defer cancel()

	if err := h.engine.RequestBriefing(ctx, childFilter(cmd.Args)); err != nil {
		if errors.Is(err, domain.ErrBriefingInProgress) {
			return h.createErrorResponse("A briefing is already playing, please wait for it to finish")
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to start the briefing: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "📣 Briefing started",
	}
}

func (h *SlackHandler) handleAudio(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	var enabled bool
	switch cmd.Sub() {
	case "on":
		enabled = true
	case "off":
	default:
		return h.createErrorResponse("Usage: `/family audio on|off`")
	}

	ctx, cancel := context.WithTimeout(ctx, engineCallTimeout)
	defer cancel()

	if err := h.engine.SetAudioEnabled(ctx, enabled); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to change audio: %v", err))
	}

	if enabled {
		return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: "🔊 Voice notifications are on"}
	}
	return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: "🔇 Voice notifications are off"}
}

func (h *SlackHandler) handleStatus(ctx context.Context) *slack.Msg {
	ctx, cancel := context.WithTimeout(ctx, engineCallTimeout)
	defer cancel()

	status, err := h.engine.Status(ctx)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to read status: %v", err))
	}
	household := h.household.Snapshot()

	var text strings.Builder
	text.WriteString("*Bot status:*\n")
	text.WriteString(fmt.Sprintf("• Audio: %s\n", onOff(status.AudioEnabled)))
	text.WriteString(fmt.Sprintf("• Speaking: %s\n", yesNo(status.Speaking)))
	text.WriteString(fmt.Sprintf("• Briefing in progress: %s\n", yesNo(status.BriefingInProgress)))
	if status.LastAnnouncedID != "" {
		text.WriteString(fmt.Sprintf("• Last announcement: %s\n", status.LastAnnouncedID))
	}
	if status.LastAutoBriefingDate != "" {
		text.WriteString(fmt.Sprintf("• Last automatic briefing: %s\n", status.LastAutoBriefingDate))
	}
	text.WriteString(fmt.Sprintf("• Region: %s\n", household.Region.Name))
	if status.Weather != nil {
		text.WriteString(fmt.Sprintf("• Weather: %s, %.1f°C\n", status.Weather.ConditionText, status.Weather.Temperature))
	} else {
		text.WriteString("• Weather: unavailable\n")
	}
	text.WriteString(briefingSettingsText(household.Briefing))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleListChildren() *slack.Msg {
	household := h.household.Snapshot()
	if len(household.Children) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No children registered. Use `/family child add` to add one.",
		}
	}

	var text strings.Builder
	text.WriteString("*Children:*\n")
	for _, c := range household.Children {
		age := "-"
		if c.Age != nil {
			age = strconv.Itoa(*c.Age)
		}
		text.WriteString(fmt.Sprintf("• `%s` %s (age %s, voice %s)\n", c.ID, c.Name, age, c.Voice))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleChild(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Sub() {
	case "add":
		if len(cmd.Args) < 4 {
			return h.createErrorResponse("Usage: `/family child add VOICE AGE|- NAME`")
		}
		voice := entity.VoiceName(cmd.Args[1])
		if !voice.Valid() {
			return h.createErrorResponse(fmt.Sprintf("Unknown voice %s, use one of %s", cmd.Args[1], voiceList()))
		}
		age, err := optionalInt(cmd.Args[2])
		if err != nil {
			return h.createErrorResponse("Age must be a number or `-`")
		}

		child, err := h.household.AddChild(strings.Join(cmd.Args[3:], " "), age, voice, "")
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to add child: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ %s was added (id `%s`)", child.Name, child.ID),
		}

	case "remove":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Usage: `/family child remove ID`")
		}
		if err := h.household.RemoveChild(cmd.Args[1]); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to remove child: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Child `%s` and their schedules were removed", cmd.Args[1]),
		}

	default:
		return h.createErrorResponse("Usage: `/family child add|remove ...`")
	}
}

func (h *SlackHandler) handleListSchedules() *slack.Msg {
	household := h.household.Snapshot()
	if len(household.Schedules) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No schedule items yet. Use `/family schedule add` to add one.",
		}
	}

	var text strings.Builder
	text.WriteString("*Schedule items:*\n")
	for _, s := range household.Schedules {
		when := "payment only"
		if s.DayOfWeek != domain.HiddenDayOfWeek {
			when = fmt.Sprintf("%s %s-%s", domain.WeekdayNames[s.DayOfWeek], s.StartTime, s.EndTime)
		}
		text.WriteString(fmt.Sprintf("• `%s` %s: %s (%s)\n", s.ID, childName(household, s.ChildID), s.Title, when))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleSchedule(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Sub() {
	case "add":
		const usage = "Usage: `/family schedule add CHILD DAY HH:MM HH:MM NOTIFY PICKUP|- TITLE`"
		if len(cmd.Args) < 8 {
			return h.createErrorResponse(usage)
		}
		day, ok := domain.WeekdayNumbers[cmd.Args[2]]
		if !ok {
			return h.createErrorResponse("Day must be a number from 0 (Sunday) to 6 (Saturday)")
		}
		notify, err := strconv.Atoi(cmd.Args[5])
		if err != nil {
			return h.createErrorResponse(usage)
		}
		pickup, err := optionalInt(cmd.Args[6])
		if err != nil {
			return h.createErrorResponse(usage)
		}

		item, err := h.household.SaveSchedule(&entity.ScheduleItem{
			ChildID:                   cmd.Args[1],
			Title:                     strings.Join(cmd.Args[7:], " "),
			DayOfWeek:                 day,
			StartTime:                 cmd.Args[3],
			EndTime:                   cmd.Args[4],
			NotifyMinutesBefore:       notify,
			PickupNotifyMinutesBefore: pickup,
		})
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to save schedule: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text: fmt.Sprintf("✅ %s added on %s %s-%s (id `%s`)",
				item.Title, domain.WeekdayNames[item.DayOfWeek], item.StartTime, item.EndTime, item.ID),
		}

	case "remove":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Usage: `/family schedule remove ID`")
		}
		if err := h.household.DeleteSchedule(cmd.Args[1]); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to remove schedule: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Schedule `%s` was removed", cmd.Args[1]),
		}

	default:
		return h.createErrorResponse("Usage: `/family schedule add|remove ...`")
	}
}

func (h *SlackHandler) handleSkip(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/family skip ID`")
	}

	exception, err := h.household.SkipSchedule(cmd.Args[0], h.now())
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to skip: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("⏭️ Skipping `%s` on %s", exception.ScheduleID, exception.Date),
	}
}

func (h *SlackHandler) handleListActivities() *slack.Msg {
	household := h.household.Snapshot()
	if len(household.Activities) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No activities yet. Use `/family activity add` to add one.",
		}
	}

	var text strings.Builder
	text.WriteString("*Activities:*\n")
	for _, a := range household.Activities {
		text.WriteString(fmt.Sprintf("• `%s` %s [%s] fee %d, due day %d\n", a.ID, a.Name, a.Category, a.DefaultFee, a.DefaultPaymentDay))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleActivity(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Sub() {
	case "add":
		const usage = "Usage: `/family activity add CATEGORY FEE PAYDAY NAME`"
		if len(cmd.Args) < 5 {
			return h.createErrorResponse(usage)
		}
		category := entity.Category(strings.ToUpper(cmd.Args[1]))
		if !category.Valid() {
			return h.createErrorResponse("Category must be ACADEMY, SCHOOL, KINDERGARTEN or OTHER")
		}
		fee, err := strconv.Atoi(cmd.Args[2])
		if err != nil {
			return h.createErrorResponse(usage)
		}
		payDay, err := strconv.Atoi(cmd.Args[3])
		if err != nil {
			return h.createErrorResponse(usage)
		}

		activity, err := h.household.AddActivity(&entity.Activity{
			Name:              strings.Join(cmd.Args[4:], " "),
			Category:          category,
			DefaultFee:        fee,
			DefaultPaymentDay: payDay,
		})
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to add activity: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Activity %s was added (id `%s`)", activity.Name, activity.ID),
		}

	case "remove":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Usage: `/family activity remove ID`")
		}
		if err := h.household.RemoveActivity(cmd.Args[1]); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to remove activity: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Activity `%s` was removed", cmd.Args[1]),
		}

	default:
		return h.createErrorResponse("Usage: `/family activity add|remove ...`")
	}
}

func (h *SlackHandler) handleEnroll(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/family enroll ACTIVITY CHILD [paid]`")
	}
	paidNow := len(cmd.Args) > 2 && strings.EqualFold(cmd.Args[2], "paid")

	item, err := h.household.EnrollActivity(cmd.Args[0], cmd.Args[1], paidNow, h.now())
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to enroll: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Enrolled in %s (payment id `%s`)", item.Title, item.ID),
	}
}

func (h *SlackHandler) handlePayments() *slack.Msg {
	summary := h.household.PaymentSummary(h.now())
	if len(summary.Groups) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No monthly fees are tracked yet.",
		}
	}
	household := h.household.Snapshot()

	var text strings.Builder
	text.WriteString("*💰 Monthly fees:*\n")
	for _, g := range summary.Groups {
		mark := "❌ unpaid"
		if g.Paid {
			mark = "✅ paid"
		}
		text.WriteString(fmt.Sprintf("• `%s` %s: %s %d, due day %d, %s\n",
			g.ScheduleIDs[0], childName(household, g.ChildID), g.Title, g.Fee, g.PaymentCycleDay, mark))
	}
	text.WriteString(fmt.Sprintf("\n*Total:* %d\n", summary.Total))
	for _, c := range summary.ByChild {
		text.WriteString(fmt.Sprintf("• %s: %d\n", c.Name, c.Total))
	}
	text.WriteString(fmt.Sprintf("*Outstanding:* %d", summary.Unpaid))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handlePaid(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/family paid ID [YYYY-MM-DD]`")
	}
	date := domain.DateOf(h.now())
	if len(cmd.Args) > 1 {
		date = cmd.Args[1]
	}

	if err := h.household.MarkPaid(cmd.Args[0], date); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to mark payment: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Payment recorded on %s", date),
	}
}

func (h *SlackHandler) handleUnpaid(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/family unpaid ID`")
	}

	if err := h.household.ClearPaid(cmd.Args[0]); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to clear payment: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Payment cleared",
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command) *slack.Msg {
	settings := h.household.Snapshot().Briefing

	switch cmd.Sub() {
	case "", "show":
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         briefingSettingsText(settings),
		}
	case "on":
		settings.Enabled = true
	case "off":
		settings.Enabled = false
	case "time":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Usage: `/family config time HH:MM`")
		}
		settings.Time = cmd.Args[1]
	case "days":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Usage: `/family config days 1,2,3,4,5`")
		}
		days, err := parseDays(cmd.Args[1])
		if err != nil {
			return h.createErrorResponse("Days must be numbers from 0 (Sunday) to 6 (Saturday), e.g. 1,2,3,4,5")
		}
		settings.Days = days
	default:
		return h.createErrorResponse("Usage: `/family config show|on|off|time HH:MM|days 1,2,3`")
	}

	if err := h.household.SaveBriefingSettings(settings); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to save settings: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Briefing settings updated\n" + briefingSettingsText(settings),
	}
}

func (h *SlackHandler) handleRegion(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		current := h.household.Snapshot().Region

		var text strings.Builder
		text.WriteString("*Weather regions:*\n")
		for _, r := range domain.Regions {
			marker := ""
			if r.ID == current.ID {
				marker = " ⬅️ current"
			}
			text.WriteString(fmt.Sprintf("• `%s` %s%s\n", r.ID, r.Name, marker))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         text.String(),
		}
	}

	region, err := h.household.SetRegion(strings.ToLower(cmd.Args[0]))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.createErrorResponse(fmt.Sprintf("Unknown region %s, use `/family region` to list them", cmd.Args[0]))
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to change region: %v", err))
	}

	if err := h.weather.RefreshWeather(); err != nil {
		log.Printf("ERROR failed to refresh weather after region change: %v", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🌤️ Weather region set to %s", region.Name),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("ERROR failed to encode slack response: %v", err)
	}
}

func childFilter(args []string) string {
	if len(args) == 0 {
		return domain.AllChildren
	}
	return args[0]
}

func childName(h *entity.Household, id string) string {
	if c := h.ChildByID(id); c != nil {
		return c.Name
	}
	return id
}

func optionalInt(value string) (*int, error) {
	if value == "-" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseDays(value string) ([]int, error) {
	days := []int{}
	for _, part := range strings.Split(value, ",") {
		day, ok := domain.WeekdayNumbers[strings.TrimSpace(part)]
		if !ok {
			return nil, fmt.Errorf("invalid day %q", part)
		}
		days = append(days, day)
	}
	return days, nil
}

func briefingSettingsText(settings *entity.BriefingSettings) string {
	names := make([]string, 0, len(settings.Days))
	for _, d := range settings.Days {
		names = append(names, domain.WeekdayNames[d])
	}
	days := strings.Join(names, ", ")
	if days == "" {
		days = "none"
	}
	return fmt.Sprintf("*Automatic briefing:* %s at %s on %s\n", onOff(settings.Enabled), settings.Time, days)
}

func voiceList() string {
	names := make([]string, len(entity.Voices))
	for i, v := range entity.Voices {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
