package service

import (
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain"
	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_householdService_Load(t *testing.T) {
	storedChildren := []*entity.Child{{ID: "c1", Name: "Minjun", Voice: entity.VoiceFenrir}}
	storedItems := []*entity.ScheduleItem{pianoItem()}
	storedBriefing := &entity.BriefingSettings{Enabled: true, Time: "07:30", Days: []int{0}}

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		check     func(t *testing.T, h *entity.Household)
	}{
		{
			name: "Should load every collection",
			buildMock: func(mocks allMocks) {
				mocks.mockChildRepo.EXPECT().List().Return(storedChildren, nil)
				mocks.mockActivityRepo.EXPECT().List().Return(nil, nil)
				mocks.mockScheduleRepo.EXPECT().List().Return(storedItems, nil)
				mocks.mockExceptionRepo.EXPECT().List().Return(nil, nil)
				mocks.mockSettingsRepo.EXPECT().GetBriefing().Return(storedBriefing, nil)
				mocks.mockSettingsRepo.EXPECT().GetRegionID().Return("busan", nil)
			},
			check: func(t *testing.T, h *entity.Household) {
				require.Len(t, h.Children, 1)
				assert.Equal(t, "Minjun", h.Children[0].Name)
				assert.Len(t, h.Schedules, 1)
				assert.Equal(t, storedBriefing, h.Briefing)
				assert.Equal(t, "busan", h.Region.ID)
			},
		},
		{
			name: "Should fall back per collection on errors",
			buildMock: func(mocks allMocks) {
				mocks.mockChildRepo.EXPECT().List().Return(nil, errors.New("no such table"))
				mocks.mockActivityRepo.EXPECT().List().Return(nil, nil)
				mocks.mockScheduleRepo.EXPECT().List().Return(storedItems, nil)
				mocks.mockExceptionRepo.EXPECT().List().Return(nil, errors.New("scan failed"))
				mocks.mockSettingsRepo.EXPECT().GetBriefing().Return(nil, errors.New("bad json"))
				mocks.mockSettingsRepo.EXPECT().GetRegionID().Return("atlantis", nil)
			},
			check: func(t *testing.T, h *entity.Household) {
				assert.Equal(t, domain.DefaultChildren(), h.Children)
				assert.Len(t, h.Schedules, 1)
				assert.Empty(t, h.Exceptions)
				assert.Equal(t, domain.DefaultBriefingSettings(), h.Briefing)
				assert.Equal(t, domain.DefaultRegion(), h.Region)
			},
		},
		{
			name: "Should fall back when stored rows are invalid",
			buildMock: func(mocks allMocks) {
				mocks.mockChildRepo.EXPECT().List().Return([]*entity.Child{{ID: "c1", Name: "X", Voice: "Robot"}}, nil)
				mocks.mockActivityRepo.EXPECT().List().Return(nil, nil)
				bad := pianoItem()
				bad.StartTime = "11:00"
				mocks.mockScheduleRepo.EXPECT().List().Return([]*entity.ScheduleItem{bad}, nil)
				mocks.mockExceptionRepo.EXPECT().List().Return(nil, nil)
				mocks.mockSettingsRepo.EXPECT().GetBriefing().Return(&entity.BriefingSettings{Time: "late"}, nil)
				mocks.mockSettingsRepo.EXPECT().GetRegionID().Return("", errors.New("locked"))
			},
			check: func(t *testing.T, h *entity.Household) {
				assert.Equal(t, domain.DefaultChildren(), h.Children)
				assert.Empty(t, h.Schedules)
				assert.Equal(t, domain.DefaultBriefingSettings(), h.Briefing)
				assert.Equal(t, domain.DefaultRegion(), h.Region)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)
			s := newHousehold(m.mockDataManager)

			require.NoError(t, s.Load())
			tt.check(t, s.Snapshot())
		})
	}
}

func Test_householdService_Snapshot(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newHousehold(m.mockDataManager)
	s.schedules = []*entity.ScheduleItem{pianoItem()}

	h := s.Snapshot()
	h.Children[0].Name = "changed"
	h.Schedules[0].Title = "changed"
	h.Briefing.Days[0] = 6

	again := s.Snapshot()
	assert.Equal(t, "First", again.Children[0].Name)
	assert.Equal(t, "Piano", again.Schedules[0].Title)
	assert.Equal(t, domain.Monday, again.Briefing.Days[0])
}

func Test_householdService_AddChild(t *testing.T) {
	age := 6

	tests := []struct {
		name      string
		voice     entity.VoiceName
		buildMock func(mocks allMocks)
		wantErr   error
		wantCount int
	}{
		{
			name:  "Should add a child",
			voice: entity.VoiceZephyr,
			buildMock: func(mocks allMocks) {
				mocks.mockChildRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(c *entity.Child) error {
					assert.NotEmpty(t, c.ID)
					assert.Equal(t, "Jiho", c.Name)
					return nil
				})
			},
			wantCount: 3,
		},
		{
			name:      "Should reject an unknown voice",
			voice:     "Robot",
			buildMock: func(mocks allMocks) {},
			wantErr:   domain.ErrInvalidInput,
			wantCount: 2,
		},
		{
			name:  "Should leave memory untouched when persistence fails",
			voice: entity.VoicePuck,
			buildMock: func(mocks allMocks) {
				mocks.mockChildRepo.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr:   errors.New("disk full"),
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)
			s := newHousehold(m.mockDataManager)

			child, err := s.AddChild("Jiho", &age, tt.voice, "green")
			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, domain.ErrInvalidInput) {
					assert.ErrorIs(t, err, domain.ErrInvalidInput)
				}
				assert.Nil(t, child)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.voice, child.Voice)
			}
			assert.Len(t, s.Snapshot().Children, tt.wantCount)
		})
	}
}

func Test_householdService_RemoveChild(t *testing.T) {
	t.Run("Should delete the child with its schedule items", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newHousehold(m.mockDataManager)
		other := item("s2", "2", 2, "09:00", "10:00")
		s.schedules = []*entity.ScheduleItem{pianoItem(), other}

		gomock.InOrder(
			m.mockScheduleRepo.EXPECT().DeleteByChild("1").Return(nil),
			m.mockChildRepo.EXPECT().Delete("1").Return(nil),
		)

		require.NoError(t, s.RemoveChild("1"))

		h := s.Snapshot()
		require.Len(t, h.Children, 1)
		assert.Equal(t, "2", h.Children[0].ID)
		require.Len(t, h.Schedules, 1)
		assert.Equal(t, "s2", h.Schedules[0].ID)
	})

	t.Run("Should keep everything when the transaction fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newHousehold(m.mockDataManager)
		s.schedules = []*entity.ScheduleItem{pianoItem()}

		m.mockScheduleRepo.EXPECT().DeleteByChild("1").Return(nil)
		m.mockChildRepo.EXPECT().Delete("1").Return(errors.New("locked"))

		assert.Error(t, s.RemoveChild("1"))
		h := s.Snapshot()
		assert.Len(t, h.Children, 2)
		assert.Len(t, h.Schedules, 1)
	})

	t.Run("Should report a missing child", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newHousehold(m.mockDataManager)
		assert.ErrorIs(t, s.RemoveChild("9"), domain.ErrNotFound)
	})
}

func Test_householdService_SaveSchedule(t *testing.T) {
	t.Run("Should create an item with a new id", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newHousehold(m.mockDataManager)
		m.mockScheduleRepo.EXPECT().Save(gomock.Any()).Return(nil)

		input := pianoItem()
		input.ID = ""
		input.PaymentCycleDay = 0

		saved, err := s.SaveSchedule(input)
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, 1, saved.PaymentCycleDay)
		assert.Empty(t, input.ID, "input must not be modified")
		assert.Len(t, s.Snapshot().Schedules, 1)
	})

	t.Run("Should replace an existing item in place", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newHousehold(m.mockDataManager)
		s.schedules = []*entity.ScheduleItem{pianoItem(), item("s2", "2", 2, "09:00", "10:00")}
		m.mockScheduleRepo.EXPECT().Save(gomock.Any()).Return(nil)

		update := pianoItem()
		update.StartTime = "08:30"
		_, err := s.SaveSchedule(update)
		require.NoError(t, err)

		h := s.Snapshot()
		require.Len(t, h.Schedules, 2)
		assert.Equal(t, "08:30", h.Schedules[0].StartTime)
	})

	t.Run("Should reject invalid items and unknown children", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newHousehold(m.mockDataManager)

		bad := pianoItem()
		bad.ID = ""
		bad.EndTime = "08:00"
		_, err := s.SaveSchedule(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		orphan := pianoItem()
		orphan.ID = ""
		orphan.ChildID = "9"
		_, err = s.SaveSchedule(orphan)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.SaveSchedule(pianoItem())
		assert.ErrorIs(t, err, domain.ErrNotFound, "unknown id")
	})
}

func Test_householdService_DeleteSchedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newHousehold(m.mockDataManager)
	s.schedules = []*entity.ScheduleItem{pianoItem()}
	s.exceptions = []*entity.ScheduleException{{ID: "e1", ScheduleID: "s1", Date: "2024-03-04"}}

	m.mockScheduleRepo.EXPECT().Delete("s1").Return(nil)

	require.NoError(t, s.DeleteSchedule("s1"))
	h := s.Snapshot()
	assert.Empty(t, h.Schedules)
	assert.Len(t, h.Exceptions, 1)

	assert.ErrorIs(t, s.DeleteSchedule("s1"), domain.ErrNotFound)
}

func Test_householdService_SkipSchedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newHousehold(m.mockDataManager)
	wednesday := item("s2", "1", domain.Wednesday, "14:00", "15:00")
	hidden := item("s3", "1", domain.HiddenDayOfWeek, "00:00", "00:00")
	s.schedules = []*entity.ScheduleItem{pianoItem(), wednesday, hidden}

	m.mockExceptionRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	// Friday 2024-03-08; the week started on Sunday 2024-03-03
	friday := time.Date(2024, 3, 8, 18, 0, 0, 0, time.Local)

	exception, err := s.SkipSchedule("s2", friday)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-06", exception.Date)
	assert.Equal(t, "absent", exception.Reason)
	assert.NotEmpty(t, exception.ID)

	exception, err = s.SkipSchedule("s1", friday)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", exception.Date)

	_, err = s.SkipSchedule("s3", friday)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.SkipSchedule("missing", friday)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	occurrences := s.Today(time.Date(2024, 3, 6, 9, 0, 0, 0, time.Local), domain.AllChildren)
	require.Len(t, occurrences, 1)
	assert.True(t, occurrences[0].IsSkipped)
}

func Test_householdService_Activities(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newHousehold(m.mockDataManager)

	m.mockActivityRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)
	m.mockActivityRepo.EXPECT().Delete(gomock.Any()).Return(nil)
	m.mockScheduleRepo.EXPECT().Save(gomock.Any()).Return(nil)

	activity, err := s.AddActivity(&entity.Activity{
		Name:              "Taekwondo",
		Category:          entity.CategoryAcademy,
		DefaultFee:        120000,
		DefaultPaymentDay: 0,
		Supplies:          "uniform",
	})
	require.NoError(t, err)
	require.NotEmpty(t, activity.ID)

	_, err = s.AddActivity(&entity.Activity{Name: "Gym", Category: "GYM"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	enrolled, err := s.EnrollActivity(activity.ID, "2", true, today)
	require.NoError(t, err)
	assert.Equal(t, domain.HiddenDayOfWeek, enrolled.DayOfWeek)
	assert.Equal(t, "Taekwondo", enrolled.Title)
	assert.Equal(t, 120000, enrolled.Fee)
	assert.Equal(t, 1, enrolled.PaymentCycleDay)
	assert.Equal(t, "uniform", enrolled.Supplies)
	assert.Equal(t, "2024-03-15", enrolled.LastPaidDate)

	_, err = s.EnrollActivity(activity.ID, "9", false, today)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	activity.Teacher = "Park"
	require.NoError(t, s.UpdateActivity(activity))

	// Removing the template leaves enrolled items alone
	require.NoError(t, s.RemoveActivity(activity.ID))
	h := s.Snapshot()
	assert.Empty(t, h.Activities)
	assert.Len(t, h.Schedules, 1)

	assert.ErrorIs(t, s.RemoveActivity(activity.ID), domain.ErrNotFound)
}

func Test_householdService_Payments(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newHousehold(m.mockDataManager)

	mon := pianoItem()
	mon.Fee = 100000
	mon.PaymentCycleDay = 10
	wed := item("s2", "1", domain.Wednesday, "09:00", "10:00")
	wed.Title = "Piano"
	wed.Fee = 100000
	other := item("s3", "2", domain.Tuesday, "09:00", "10:00")
	other.Fee = 50000
	s.schedules = []*entity.ScheduleItem{mon, wed, other}

	saved := map[string]string{}
	m.mockScheduleRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(item *entity.ScheduleItem) error {
		saved[item.ID] = item.LastPaidDate
		return nil
	}).Times(4)

	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	require.NoError(t, s.MarkPaid("s2", "2024-03-12"))
	assert.Equal(t, map[string]string{"s1": "2024-03-12", "s2": "2024-03-12"}, saved)

	summary := s.PaymentSummary(today)
	require.Len(t, summary.Groups, 2)
	assert.True(t, summary.Groups[0].Paid)
	assert.False(t, summary.Groups[1].Paid)
	assert.Equal(t, 150000, summary.Total)
	assert.Equal(t, 50000, summary.Unpaid)

	require.NoError(t, s.ClearPaid("s1"))
	assert.Equal(t, map[string]string{"s1": "", "s2": ""}, saved)
	assert.False(t, s.PaymentSummary(today).Groups[0].Paid)

	assert.ErrorIs(t, s.MarkPaid("s1", "12/03/2024"), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.MarkPaid("missing", "2024-03-12"), domain.ErrNotFound)
}

func Test_householdService_Settings(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newHousehold(m.mockDataManager)

	m.mockSettingsRepo.EXPECT().SaveBriefing(gomock.Any()).Return(nil)
	m.mockSettingsRepo.EXPECT().SaveRegionID("jeju").Return(nil)

	settings := &entity.BriefingSettings{Enabled: true, Time: "07:00", Days: []int{0, 6}}
	require.NoError(t, s.SaveBriefingSettings(settings))
	settings.Days[0] = 3
	assert.Equal(t, []int{0, 6}, s.Snapshot().Briefing.Days)

	assert.ErrorIs(t, s.SaveBriefingSettings(&entity.BriefingSettings{Time: "7am"}), domain.ErrInvalidInput)

	region, err := s.SetRegion("jeju")
	require.NoError(t, err)
	assert.Equal(t, "Jeju", region.Name)
	assert.Equal(t, "jeju", s.Snapshot().Region.ID)

	_, err = s.SetRegion("atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
