package entity

import "time"

type EventType string

const (
	EventStart EventType = "start"
	EventEnd   EventType = "end"
)

// Event is a detected notification boundary for one schedule item.
type Event struct {
	Item *ScheduleItem
	Type EventType
}

// ID is the idempotence key of the event, "{itemID}-{type}".
func (e *Event) ID() string {
	return e.Item.ID + "-" + string(e.Type)
}

// Audio is raw mono/stereo 16-bit little-endian PCM.
type Audio struct {
	PCM        []byte
	SampleRate int
	Channels   int
}

func (a *Audio) Duration() time.Duration {
	if a.SampleRate == 0 || a.Channels == 0 {
		return 0
	}
	frames := len(a.PCM) / (2 * a.Channels)
	return time.Duration(frames) * time.Second / time.Duration(a.SampleRate)
}

// Announcement tracks one dispatched announcement. Started is closed when
// playback begins; Done receives exactly one value (nil on success) and is
// then closed. A failure before playback leaves Started open.
type Announcement struct {
	Started <-chan struct{}
	Done    <-chan error
}
