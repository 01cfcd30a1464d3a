package service

import (
	"Bonjour/internal/model"
	"Bonjour/internal/repository"
	"context"
)

type WeeklyTaskService interface {
	ListTasks(ctx context.Context, brandID uint64) ([]*model.WeeklyTask, error)
	// ToggleTask 翻转完成状态，返回更新后的任务
	ToggleTask(ctx context.Context, brandID, id uint64) (*model.WeeklyTask, error)
}

type WeeklyTaskServiceImpl struct {
	taskRepo repository.WeeklyTaskRepo
}

func NewWeeklyTaskService(taskRepo repository.WeeklyTaskRepo) WeeklyTaskService {
	return &WeeklyTaskServiceImpl{taskRepo: taskRepo}
}

func (s *WeeklyTaskServiceImpl) ListTasks(ctx context.Context, brandID uint64) ([]*model.WeeklyTask, error) {
	return s.taskRepo.ListTasks(ctx, brandID)
}

func (s *WeeklyTaskServiceImpl) ToggleTask(ctx context.Context, brandID, id uint64) (*model.WeeklyTask, error) {
	task, err := s.taskRepo.GetTask(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Completed = !task.Completed
	if err = s.taskRepo.UpdateTaskCompleted(ctx, id, task.Completed); err != nil {
		return nil, err
	}
	return task, nil
}
