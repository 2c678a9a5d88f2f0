package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

// similarTempRange is the daily max difference, in degrees, reported as "similar".
const similarTempRange = 3

type BriefingInput struct {
	Now         time.Time
	Weather     *entity.Weather
	Region      entity.Region
	Items       []*entity.ScheduleItem
	Exceptions  []*entity.ScheduleException
	Children    []*entity.Child
	ChildFilter string
}

// ComposeBriefing builds the spoken daily briefing.
func ComposeBriefing(in BriefingInput) string {
	parts := []string{
		fmt.Sprintf("Today is %d/%d, %s.", int(in.Now.Month()), in.Now.Day(), domain.WeekdayNames[int(in.Now.Weekday())]),
		"Good morning.",
	}

	if in.Weather != nil {
		parts = append(parts, weatherSection(in.Weather, in.Region))
	}

	parts = append(parts, scheduleSection(in))

	return strings.Join(parts, " ")
}

func weatherSection(w *entity.Weather, region entity.Region) string {
	parts := []string{
		"First, the weather.",
		fmt.Sprintf("It's currently %s in %s at %d degrees.", w.ConditionText, region.Name, roundInt(w.Temperature)),
	}

	if w.YesterdayMaxTemp != nil {
		diff := w.MaxTemp - *w.YesterdayMaxTemp
		switch {
		case math.Abs(diff) < similarTempRange:
			parts = append(parts, "Similar to yesterday.")
		case diff > 0:
			parts = append(parts,
				fmt.Sprintf("%d degrees warmer than yesterday.", roundInt(diff)),
				"You can dress a little lighter.")
		default:
			parts = append(parts,
				fmt.Sprintf("%d degrees colder than yesterday.", roundInt(math.Abs(diff))),
				"Dress the kids warmly.")
		}
	}

	if domain.PrecipitationCodes[w.ConditionCode] {
		parts = append(parts, "Rain or snow is expected, so don't forget an umbrella.")
	}

	return strings.Join(parts, " ")
}

func scheduleSection(in BriefingInput) string {
	names := make(map[string]string, len(in.Children))
	for _, c := range in.Children {
		names[c.ID] = c.Name
	}

	var clauses []string
	for _, occ := range Resolve(in.Now, in.Items, in.Exceptions, in.ChildFilter) {
		if occ.IsSkipped {
			continue
		}
		name, ok := names[occ.Item.ChildID]
		if !ok {
			continue
		}
		clause := fmt.Sprintf("%s has %s at %s", name, occ.Item.Title, SpokenTime(occ.Item.StartTime))
		if s := strings.TrimSpace(occ.Item.Supplies); s != "" {
			clause += ", supplies are " + s
		}
		clauses = append(clauses, clause)
	}

	if len(clauses) == 0 {
		return "There are no academy or activity schedules today. Enjoy your time with the kids!"
	}

	return "Next, today's schedule. " + strings.Join(clauses, ", and ") + ". Have an energetic day!"
}

// SpokenTime renders "HH:MM" as it is read aloud, e.g. "15:30" as "3 PM 30 minutes".
func SpokenTime(clock string) string {
	minutes, err := domain.ParseClock(clock)
	if err != nil {
		return clock
	}
	h, m := minutes/60, minutes%60

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	hour := h
	switch {
	case h == 0:
		hour = 12
	case h > 12:
		hour = h - 12
	}

	spoken := fmt.Sprintf("%d %s", hour, period)
	if m > 0 {
		spoken += fmt.Sprintf(" %d minutes", m)
	}
	return spoken
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
