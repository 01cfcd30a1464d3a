package handler

import (
	"Bonjour/internal/pkg/response"
	"Bonjour/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	analyticsSvc service.AnalyticsService
	taskSvc      service.WeeklyTaskService
}

func NewDashboardHandler(
	analyticsSvc service.AnalyticsService,
	taskSvc service.WeeklyTaskService,
) *DashboardHandler {
	return &DashboardHandler{
		analyticsSvc: analyticsSvc,
		taskSvc:      taskSvc,
	}
}

func (s *DashboardHandler) GetOverview(c *gin.Context) {
	brandID := c.GetUint64("brand_id")
	result, err := s.analyticsSvc.GetOverview(c.Request.Context(), brandID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *DashboardHandler) GetWeeklyPlan(c *gin.Context) {
	brandID := c.GetUint64("brand_id")
	tasks, err := s.taskSvc.ListTasks(c.Request.Context(), brandID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tasks)
}

func (s *DashboardHandler) ToggleWeeklyTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	brandID := c.GetUint64("brand_id")
	task, err := s.taskSvc.ToggleTask(c.Request.Context(), brandID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}
