package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrTimeRangeInvalid  = errors.New("不支持的时间范围")
	ErrMetricInvalid     = errors.New("不支持的指标")
	ErrPlatformInvalid   = errors.New("不支持的平台")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserExist         = errors.New("用户已存在")
	ErrPasswordIncorrect = errors.New("邮箱或密码错误")
	ErrBrandNotFound     = errors.New("品牌不存在")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrPostScheduleTime  = errors.New("定时发布必须指定未来时间")
	ErrLookbookNotFound  = errors.New("画册不存在")
	ErrOrderNotFound     = errors.New("订单不存在")
	ErrOrderCodeExist    = errors.New("订单编号已存在")
	ErrTaskNotFound      = errors.New("任务不存在")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	ErrFileTooLarge      = errors.New("文件过大")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrTimeRangeInvalid:  BadRequest,
	ErrMetricInvalid:     BadRequest,
	ErrPlatformInvalid:   BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserExist:         BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrBrandNotFound:     NotFound,
	ErrPostNotFound:      NotFound,
	ErrPostScheduleTime:  BadRequest,
	ErrLookbookNotFound:  NotFound,
	ErrOrderNotFound:     NotFound,
	ErrOrderCodeExist:    BadRequest,
	ErrTaskNotFound:      NotFound,
	ErrFileNotSupported:  BadRequest,
	ErrFileTooLarge:      BadRequest,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
