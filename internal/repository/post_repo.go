package repository

import (
	"Bonjour/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PostFilter 帖子列表的类型化过滤条件
type PostFilter struct {
	Status string
	Tag    string
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, brandID, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, brandID uint64, filter PostFilter) ([]*model.Post, error)
	ListTags(ctx context.Context, brandID uint64) ([]string, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, brandID, id uint64) error
	// GetDueScheduledPosts 取所有到点待发布的帖子
	GetDueScheduledPosts(ctx context.Context, now time.Time) ([]*model.Post, error)
	UpdatePostStatus(ctx context.Context, id uint64, status string) error
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

func (r *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepoImpl) GetPost(ctx context.Context, brandID, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepoImpl) ListPosts(ctx context.Context, brandID uint64, filter PostFilter) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	tx := r.db.WithContext(ctx).Where("brand_id = ?", brandID)
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Tag != "" {
		tx = tx.Where("tags LIKE ?", "%"+filter.Tag+"%")
	}
	result := tx.Order("updated_at DESC").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (r *postRepoImpl) ListTags(ctx context.Context, brandID uint64) ([]string, error) {
	tags := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("brand_id = ? AND tags <> ''", brandID).
		Pluck("tags", &tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *postRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).
		Select("title", "content", "status", "tags", "media", "platforms", "scheduled_at").
		Updates(post).Error
}

func (r *postRepoImpl) DeletePost(ctx context.Context, brandID, id uint64) error {
	return r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Delete(&model.Post{}, id).Error
}

func (r *postRepoImpl) GetDueScheduledPosts(ctx context.Context, now time.Time) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", "SCHEDULED", now).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (r *postRepoImpl) UpdatePostStatus(ctx context.Context, id uint64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("status", status).Error
}
