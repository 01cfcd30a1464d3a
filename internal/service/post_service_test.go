package service

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/model"
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/repository"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type fakePostRepo struct {
	posts  map[uint64]*model.Post
	tags   []string
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*model.Post), nextID: 1}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, brandID, id uint64) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.BrandID != brandID {
		return nil, nil
	}
	return post, nil
}

func (f *fakePostRepo) ListPosts(_ context.Context, brandID uint64, _ repository.PostFilter) ([]*model.Post, error) {
	result := make([]*model.Post, 0)
	for _, p := range f.posts {
		if p.BrandID == brandID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePostRepo) ListTags(_ context.Context, _ uint64) ([]string, error) {
	return f.tags, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, _, id uint64) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) GetDueScheduledPosts(_ context.Context, now time.Time) ([]*model.Post, error) {
	due := make([]*model.Post, 0)
	for _, p := range f.posts {
		if p.Status == consts.PostStatusScheduled && p.ScheduledAt != nil && !p.ScheduledAt.After(now) {
			due = append(due, p)
		}
	}
	return due, nil
}

func (f *fakePostRepo) UpdatePostStatus(_ context.Context, id uint64, status string) error {
	if p, ok := f.posts[id]; ok {
		p.Status = status
	}
	return nil
}

func TestCreatePostScheduleValidation(t *testing.T) {
	s := NewPostService(newFakePostRepo())
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	_, err := s.CreatePost(ctx, 1, &dto.PostBaseDTO{
		Title: "t", Content: "c",
		Status:      consts.PostStatusScheduled,
		ScheduledAt: &past,
	})
	if !errors.Is(err, ErrPostScheduleTime) {
		t.Fatalf("过去时间应被拒绝, err = %v", err)
	}

	_, err = s.CreatePost(ctx, 1, &dto.PostBaseDTO{
		Title: "t", Content: "c",
		Status: consts.PostStatusScheduled,
	})
	if !errors.Is(err, ErrPostScheduleTime) {
		t.Fatalf("缺少时间应被拒绝, err = %v", err)
	}

	future := time.Now().Add(time.Hour)
	post, err := s.CreatePost(ctx, 1, &dto.PostBaseDTO{
		Title: "t", Content: "c",
		Status:      consts.PostStatusScheduled,
		ScheduledAt: &future,
	})
	if err != nil {
		t.Fatal(err)
	}
	if post.Status != consts.PostStatusScheduled || post.BrandID != 1 {
		t.Fatalf("post = %+v", post)
	}

	// 未指定状态默认草稿
	draft, err := s.CreatePost(ctx, 1, &dto.PostBaseDTO{Title: "d", Content: "c"})
	if err != nil {
		t.Fatal(err)
	}
	if draft.Status != consts.PostStatusDraft {
		t.Fatalf("status = %s, want DRAFT", draft.Status)
	}
}

func TestListTagsDedupe(t *testing.T) {
	repo := newFakePostRepo()
	repo.tags = []string{"summer,sale", "sale, new", "", "summer"}
	s := NewPostService(repo)

	tags, err := s.ListTags(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"new", "sale", "summer"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
}

func TestGetPostBrandScope(t *testing.T) {
	repo := newFakePostRepo()
	s := NewPostService(repo)
	ctx := context.Background()

	post, err := s.CreatePost(ctx, 1, &dto.PostBaseDTO{Title: "t", Content: "c"})
	if err != nil {
		t.Fatal(err)
	}

	// 其他品牌看不到这条帖子
	if _, err = s.GetPost(ctx, 2, post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("跨品牌读取应返回未找到, err = %v", err)
	}
	if _, err = s.GetPost(ctx, 1, post.ID); err != nil {
		t.Fatal(err)
	}
}
