package service

import (
	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
)

type Instance struct {
	Household  contract.HouseholdService
	Engine     *Engine
	Dispatcher contract.Announcer
}

// Dependencies are the collaborators the services are built on.
type Dependencies struct {
	DataManager  contract.DataManager
	Synthesizer  contract.Synthesizer
	Player       contract.Player
	Alerter      contract.Alerter
	Weather      contract.WeatherClient
	AudioEnabled bool
}

func NewInstance(deps Dependencies) *Instance {
	household := newHousehold(deps.DataManager)
	dispatcher := newDispatcher(deps.Synthesizer, deps.Player)

	return &Instance{
		Household:  household,
		Engine:     newEngine(household, dispatcher, deps.Alerter, deps.Weather, deps.AudioEnabled),
		Dispatcher: dispatcher,
	}
}
