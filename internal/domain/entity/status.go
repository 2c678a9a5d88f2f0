package entity

// EngineStatus is a read-only view of the engine state.
type EngineStatus struct {
	AudioEnabled         bool
	Speaking             bool
	BriefingInProgress   bool
	LastAnnouncedID      string
	LastAutoBriefingDate string
	Weather              *Weather
}
