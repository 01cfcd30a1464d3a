package util

import (
	"bytes"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 根据文件头嗅探真实 MIME 类型，不信任客户端声明
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}

// MakeThumbnail 等比缩放生成 JPEG 缩略图，宽度超出 width 时按宽缩放
func MakeThumbnail(reader io.ReadSeeker, width int) (io.Reader, int64, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, err
	}

	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, 0, err
	}

	return &buf, int64(buf.Len()), nil
}
