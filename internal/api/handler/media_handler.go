package handler

import (
	"Bonjour/internal/api/config"
	"Bonjour/internal/api/dto"
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/pkg/minio"
	"Bonjour/internal/pkg/response"
	"Bonjour/internal/pkg/util"
	"Bonjour/internal/service"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if file.Size > int64(config.Cfg.Upload.MaxSizeMB)<<20 {
		response.Error(c, service.ErrFileTooLarge)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isImage := strings.HasPrefix(contentType, consts.MimePrefixImage)
	isVideo := strings.HasPrefix(contentType, consts.MimePrefixVideo)
	if !isImage && !isVideo {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	result := &dto.MediaUploadResultDTO{
		URL:  minio.GetPublicURL(fileKey),
		Mime: contentType,
		Size: file.Size,
	}

	// 图片额外生成缩略图，失败不阻塞上传
	if isImage {
		if _, err = reader.Seek(0, 0); err == nil {
			thumb, size, thumbErr := util.MakeThumbnail(reader, config.Cfg.Upload.ThumbnailWidth)
			if thumbErr == nil {
				thumbName := strings.TrimSuffix(objectName, ext) + "_thumb.jpg"
				thumbKey, upErr := minio.UploadFile(c.Request.Context(), thumbName, thumb, size, "image/jpeg")
				if upErr == nil {
					result.ThumbnailURL = minio.GetPublicURL(thumbKey)
				}
			} else {
				log.WarnContext(c.Request.Context(), "生成缩略图失败", "file", file.Filename, "err", thumbErr)
			}
		}
	}

	log.InfoContext(c.Request.Context(), "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, result)
}
