//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks
package contract

import (
	"context"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Child() ChildRepo
	Activity() ActivityRepo
	Schedule() ScheduleRepo
	Exception() ExceptionRepo
	Settings() SettingsRepo
}

// ChildRepo defines the contract for child repository
type ChildRepo interface {
	List() ([]*entity.Child, error)
	Save(child *entity.Child) error
	Delete(id string) error
}

// ActivityRepo defines the contract for activity repository
type ActivityRepo interface {
	List() ([]*entity.Activity, error)
	Save(activity *entity.Activity) error
	Delete(id string) error
}

// ScheduleRepo defines the contract for schedule item repository
type ScheduleRepo interface {
	List() ([]*entity.ScheduleItem, error)
	Save(item *entity.ScheduleItem) error
	Delete(id string) error
	DeleteByChild(childID string) error
}

// ExceptionRepo defines the contract for schedule exception repository
type ExceptionRepo interface {
	List() ([]*entity.ScheduleException, error)
	Create(exception *entity.ScheduleException) error
}

// SettingsRepo defines the contract for singleton settings and preferences
type SettingsRepo interface {
	GetBriefing() (*entity.BriefingSettings, error)
	SaveBriefing(settings *entity.BriefingSettings) error
	GetRegionID() (string, error)
	SaveRegionID(regionID string) error
}
