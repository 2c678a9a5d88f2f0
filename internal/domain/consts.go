package domain

import (
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

// Weekday numbers follow time.Weekday: Sunday is 0.
const (
	Sunday    = 0
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

// HiddenDayOfWeek marks payment-only schedule items that never occur weekly.
const HiddenDayOfWeek = 8

// AllChildren is the child filter sentinel meaning "no filter".
const AllChildren = "ALL"

// Layouts shared by every component that reads or writes dates and clock times.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// AnnouncementCooldown is how long an announced event id stays blocked after speaking ends.
const AnnouncementCooldown = 60 * time.Second

// WeatherPollInterval is the weather refresh cadence.
const WeatherPollInterval = 30 * time.Minute

// AnnouncerVoice reads the daily briefing.
const AnnouncerVoice = entity.VoiceCharon

// SkipReason is stored on exceptions created from the skip command.
const SkipReason = "absent"

// WeekdayNames maps weekday numbers to their English names
var WeekdayNames = map[int]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// WeekdayNumbers maps weekday numbers as strings to integers
var WeekdayNumbers = map[string]int{
	"0": Sunday,
	"1": Monday,
	"2": Tuesday,
	"3": Wednesday,
	"4": Thursday,
	"5": Friday,
	"6": Saturday,
}

// Default briefing settings: disabled, 08:00, Monday through Friday
const DefaultBriefingTime = "08:00"

var DefaultBriefingDays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// PrecipitationCodes are the WMO weather codes that trigger the umbrella reminder.
var PrecipitationCodes = map[int]bool{
	51: true, 53: true, 55: true,
	61: true, 63: true, 65: true, 66: true, 67: true,
	71: true, 73: true, 75: true, 77: true,
	80: true, 81: true, 82: true,
	95: true, 96: true, 99: true,
}

// Regions is the fixed list of selectable weather regions.
var Regions = []entity.Region{
	{ID: "seoul", Name: "Seoul", Lat: 37.5665, Lon: 126.9780},
	{ID: "busan", Name: "Busan", Lat: 35.1796, Lon: 129.0756},
	{ID: "incheon", Name: "Incheon", Lat: 37.4563, Lon: 126.7052},
	{ID: "daegu", Name: "Daegu", Lat: 35.8714, Lon: 128.6014},
	{ID: "daejeon", Name: "Daejeon", Lat: 36.3504, Lon: 127.3845},
	{ID: "gwangju", Name: "Gwangju", Lat: 35.1595, Lon: 126.8526},
	{ID: "suwon", Name: "Suwon", Lat: 37.2636, Lon: 127.0286},
	{ID: "ulsan", Name: "Ulsan", Lat: 35.5384, Lon: 129.3114},
	{ID: "jeju", Name: "Jeju", Lat: 33.4996, Lon: 126.5312},
}

const DefaultRegionID = "seoul"

// RegionByID returns the region with the given id and whether it exists.
func RegionByID(id string) (entity.Region, bool) {
	for _, r := range Regions {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Region{}, false
}

// DefaultRegion is the region used when no valid preference is stored.
func DefaultRegion() entity.Region {
	r, _ := RegionByID(DefaultRegionID)
	return r
}

// DefaultBriefingSettings returns a fresh copy of the default briefing configuration.
func DefaultBriefingSettings() *entity.BriefingSettings {
	days := make([]int, len(DefaultBriefingDays))
	copy(days, DefaultBriefingDays)
	return &entity.BriefingSettings{
		Enabled: false,
		Time:    DefaultBriefingTime,
		Days:    days,
	}
}

// DefaultChildren returns the two seed children used on a fresh household.
// The ids match the rows inserted by the initial migration.
func DefaultChildren() []*entity.Child {
	firstAge, secondAge := 7, 5
	return []*entity.Child{
		{ID: "1", Name: "First", Age: &firstAge, Color: "blue", Voice: entity.VoicePuck},
		{ID: "2", Name: "Second", Age: &secondAge, Color: "pink", Voice: entity.VoiceKore},
	}
}
