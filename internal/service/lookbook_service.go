package service

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/model"
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/pkg/minio"
	"Bonjour/internal/pkg/util"
	"Bonjour/internal/repository"
	"context"
	log "log/slog"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// LookbookFilesDTO 创建/更新时随表单一起提交的图片文件
type LookbookFilesDTO struct {
	Image   *multipart.FileHeader
	Banner  *multipart.FileHeader
	Gallery []*multipart.FileHeader
}

type LookbookService interface {
	CreateLookbook(ctx context.Context, brandID uint64, baseDTO *dto.LookbookBaseDTO, files *LookbookFilesDTO) (*model.Lookbook, error)
	GetLookbook(ctx context.Context, brandID, id uint64) (*model.Lookbook, error)
	ListLookbooks(ctx context.Context, brandID uint64) ([]*model.Lookbook, error)
	UpdateLookbook(ctx context.Context, brandID, id uint64, baseDTO *dto.LookbookBaseDTO, files *LookbookFilesDTO) (*model.Lookbook, error)
	DeleteLookbook(ctx context.Context, brandID, id uint64) error
}

type LookbookServiceImpl struct {
	lookbookRepo repository.LookbookRepo
}

func NewLookbookService(lookbookRepo repository.LookbookRepo) LookbookService {
	return &LookbookServiceImpl{lookbookRepo: lookbookRepo}
}

// uploadImage 校验图片类型后上传，返回公开访问 URL
func uploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", ErrParamInvalid
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + path.Ext(file.Filename)
	fileKey, err := minio.UploadFile(ctx, objectName, reader, file.Size, contentType)
	if err != nil {
		return "", err
	}
	return minio.GetPublicURL(fileKey), nil
}

func uploadGallery(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := uploadImage(ctx, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *LookbookServiceImpl) CreateLookbook(ctx context.Context, brandID uint64, baseDTO *dto.LookbookBaseDTO, files *LookbookFilesDTO) (*model.Lookbook, error) {
	lookbook := &model.Lookbook{}
	if err := copier.Copy(lookbook, baseDTO); err != nil {
		return nil, err
	}
	lookbook.BrandID = brandID

	if files.Image != nil {
		url, err := uploadImage(ctx, files.Image)
		if err != nil {
			return nil, err
		}
		lookbook.ImageURL = url
	}
	if files.Banner != nil {
		url, err := uploadImage(ctx, files.Banner)
		if err != nil {
			return nil, err
		}
		lookbook.BannerURL = url
	}
	if len(files.Gallery) > 0 {
		urls, err := uploadGallery(ctx, files.Gallery)
		if err != nil {
			return nil, err
		}
		lookbook.ImagesURL = strings.Join(urls, ",")
	}

	if err := s.lookbookRepo.CreateLookbook(ctx, lookbook); err != nil {
		return nil, err
	}
	return lookbook, nil
}

func (s *LookbookServiceImpl) GetLookbook(ctx context.Context, brandID, id uint64) (*model.Lookbook, error) {
	lookbook, err := s.lookbookRepo.GetLookbook(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if lookbook == nil {
		return nil, ErrLookbookNotFound
	}
	return lookbook, nil
}

func (s *LookbookServiceImpl) ListLookbooks(ctx context.Context, brandID uint64) ([]*model.Lookbook, error) {
	return s.lookbookRepo.ListLookbooks(ctx, brandID)
}

func (s *LookbookServiceImpl) UpdateLookbook(ctx context.Context, brandID, id uint64, baseDTO *dto.LookbookBaseDTO, files *LookbookFilesDTO) (*model.Lookbook, error) {
	lookbook, err := s.GetLookbook(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if err = copier.Copy(lookbook, baseDTO); err != nil {
		return nil, err
	}

	if files.Image != nil {
		url, err := uploadImage(ctx, files.Image)
		if err != nil {
			return nil, err
		}
		lookbook.ImageURL = url
	}
	if files.Banner != nil {
		url, err := uploadImage(ctx, files.Banner)
		if err != nil {
			return nil, err
		}
		lookbook.BannerURL = url
	}

	gallery := splitURLs(lookbook.ImagesURL)
	if baseDTO.RemovedGalleryImages != "" {
		var removed []string
		if err = json.Unmarshal([]byte(baseDTO.RemovedGalleryImages), &removed); err != nil {
			return nil, ErrParamInvalid
		}
		gallery = removeURLs(gallery, removed)
	}
	if len(files.Gallery) > 0 {
		added, err := uploadGallery(ctx, files.Gallery)
		if err != nil {
			return nil, err
		}
		gallery = append(gallery, added...)
	}
	lookbook.ImagesURL = strings.Join(gallery, ",")

	if err = s.lookbookRepo.UpdateLookbook(ctx, lookbook); err != nil {
		return nil, err
	}
	return lookbook, nil
}

func (s *LookbookServiceImpl) DeleteLookbook(ctx context.Context, brandID, id uint64) error {
	lookbook, err := s.GetLookbook(ctx, brandID, id)
	if err != nil {
		return err
	}
	if err = s.lookbookRepo.DeleteLookbook(ctx, brandID, id); err != nil {
		return err
	}

	// 对象清理尽力而为，失败只记日志
	for _, url := range append(splitURLs(lookbook.ImagesURL), lookbook.ImageURL, lookbook.BannerURL) {
		if url == "" {
			continue
		}
		if err = minio.DeleteFile(ctx, objectNameFromURL(url)); err != nil {
			log.WarnContext(ctx, "删除画册对象失败", "url", url, "err", err)
		}
	}
	return nil
}

func splitURLs(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}

func removeURLs(urls, removed []string) []string {
	drop := make(map[string]bool, len(removed))
	for _, u := range removed {
		drop[u] = true
	}
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if !drop[u] {
			kept = append(kept, u)
		}
	}
	return kept
}

// objectNameFromURL 从公开 URL 中还原对象键（桶名之后的部分）
func objectNameFromURL(url string) string {
	parts := strings.SplitN(url, "/"+minio.Bucket+"/", 2)
	if len(parts) != 2 {
		return url
	}
	return parts[1]
}
