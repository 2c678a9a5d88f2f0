package service

import (
	"context"
	"testing"

	"github.com/diegoclair/family-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/family-schedule-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockChildRepo     *mocks.MockChildRepo
	mockActivityRepo  *mocks.MockActivityRepo
	mockScheduleRepo  *mocks.MockScheduleRepo
	mockExceptionRepo *mocks.MockExceptionRepo
	mockSettingsRepo  *mocks.MockSettingsRepo
	mockHousehold     *mocks.MockHouseholdService
	mockAnnouncer     *mocks.MockAnnouncer
	mockSynthesizer   *mocks.MockSynthesizer
	mockPlayer        *mocks.MockPlayer
	mockAlerter       *mocks.MockAlerter
	mockWeatherClient *mocks.MockWeatherClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	childRepo := mocks.NewMockChildRepo(ctrl)
	dm.EXPECT().Child().Return(childRepo).AnyTimes()

	activityRepo := mocks.NewMockActivityRepo(ctrl)
	dm.EXPECT().Activity().Return(activityRepo).AnyTimes()

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	exceptionRepo := mocks.NewMockExceptionRepo(ctrl)
	dm.EXPECT().Exception().Return(exceptionRepo).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	// Transactions run the callback against the same mocked repositories
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockChildRepo:     childRepo,
		mockActivityRepo:  activityRepo,
		mockScheduleRepo:  scheduleRepo,
		mockExceptionRepo: exceptionRepo,
		mockSettingsRepo:  settingsRepo,
		mockHousehold:     mocks.NewMockHouseholdService(ctrl),
		mockAnnouncer:     mocks.NewMockAnnouncer(ctrl),
		mockSynthesizer:   mocks.NewMockSynthesizer(ctrl),
		mockPlayer:        mocks.NewMockPlayer(ctrl),
		mockAlerter:       mocks.NewMockAlerter(ctrl),
		mockWeatherClient: mocks.NewMockWeatherClient(ctrl),
	}

	return
}
