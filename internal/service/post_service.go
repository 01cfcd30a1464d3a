package service

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/model"
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/repository"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, brandID uint64, postDTO *dto.PostBaseDTO) (*model.Post, error)
	GetPost(ctx context.Context, brandID, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, brandID uint64, listDTO *dto.PostListDTO) ([]*model.Post, error)
	ListTags(ctx context.Context, brandID uint64) ([]string, error)
	UpdatePost(ctx context.Context, brandID, id uint64, postDTO *dto.PostBaseDTO) (*model.Post, error)
	DeletePost(ctx context.Context, brandID, id uint64) error
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &PostServiceImpl{postRepo: postRepo}
}

// validateSchedule 定时发布必须带未来时间，其余状态忽略 scheduled_at
func validateSchedule(status string, scheduledAt *time.Time) error {
	if status != consts.PostStatusScheduled {
		return nil
	}
	if scheduledAt == nil || !scheduledAt.After(time.Now()) {
		return ErrPostScheduleTime
	}
	return nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, brandID uint64, postDTO *dto.PostBaseDTO) (*model.Post, error) {
	if postDTO.Status == "" {
		postDTO.Status = consts.PostStatusDraft
	}
	if err := validateSchedule(postDTO.Status, postDTO.ScheduledAt); err != nil {
		return nil, err
	}

	post := &model.Post{}
	if err := copier.Copy(post, postDTO); err != nil {
		return nil, err
	}
	post.BrandID = brandID

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, brandID, id uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostServiceImpl) ListPosts(ctx context.Context, brandID uint64, listDTO *dto.PostListDTO) ([]*model.Post, error) {
	return s.postRepo.ListPosts(ctx, brandID, repository.PostFilter{
		Status: listDTO.Status,
		Tag:    listDTO.Tag,
	})
}

// ListTags 把各帖子的逗号分隔标签拆开去重，按字典序返回
func (s *PostServiceImpl) ListTags(ctx context.Context, brandID uint64) ([]string, error) {
	rows, err := s.postRepo.ListTags(ctx, brandID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, row := range rows {
		for _, tag := range strings.Split(row, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, brandID, id uint64, postDTO *dto.PostBaseDTO) (*model.Post, error) {
	post, err := s.GetPost(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if postDTO.Status == "" {
		postDTO.Status = post.Status
	}
	if err = validateSchedule(postDTO.Status, postDTO.ScheduledAt); err != nil {
		return nil, err
	}

	if err = copier.Copy(post, postDTO); err != nil {
		return nil, err
	}
	post.ScheduledAt = postDTO.ScheduledAt

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, brandID, id uint64) error {
	if _, err := s.GetPost(ctx, brandID, id); err != nil {
		return err
	}
	return s.postRepo.DeletePost(ctx, brandID, id)
}
