package repository

import (
	"Bonjour/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type WeeklyTaskRepo interface {
	ListTasks(ctx context.Context, brandID uint64) ([]*model.WeeklyTask, error)
	GetTask(ctx context.Context, brandID, id uint64) (*model.WeeklyTask, error)
	UpdateTaskCompleted(ctx context.Context, id uint64, completed bool) error
}

type weeklyTaskRepoImpl struct {
	db *gorm.DB
}

func NewWeeklyTaskRepository(db *gorm.DB) WeeklyTaskRepo {
	return &weeklyTaskRepoImpl{db: db}
}

func (r *weeklyTaskRepoImpl) ListTasks(ctx context.Context, brandID uint64) ([]*model.WeeklyTask, error) {
	tasks := make([]*model.WeeklyTask, 0)
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("id ASC").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (r *weeklyTaskRepoImpl) GetTask(ctx context.Context, brandID, id uint64) (*model.WeeklyTask, error) {
	var task model.WeeklyTask
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *weeklyTaskRepoImpl) UpdateTaskCompleted(ctx context.Context, id uint64, completed bool) error {
	return r.db.WithContext(ctx).
		Model(&model.WeeklyTask{}).
		Where("id = ?", id).
		Update("completed", completed).Error
}
