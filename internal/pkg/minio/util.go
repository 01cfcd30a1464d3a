package minio

import (
	"Bonjour/internal/api/config"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// UploadFile 上传文件到MinIO
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", errors.New("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload file")
	}

	return uploadInfo.Key, nil
}

// DeleteFile 删除MinIO中的文件
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return errors.New("minio client is not initialized")
	}

	err := Client.RemoveObject(ctx, Bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "failed to delete file")
	}

	return nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	endpoint := cfg.ExternalEndpoint
	protocol := "https"
	if endpoint == "" {
		endpoint = cfg.InternalEndpoint
		if !cfg.InternalUseSSL {
			protocol = "http"
		}
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, Bucket, objectName)
}
