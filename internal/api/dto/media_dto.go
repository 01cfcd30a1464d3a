package dto

// MediaUploadResultDTO 上传结果
type MediaUploadResultDTO struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Mime         string `json:"mime"`
	Size         int64  `json:"size"`
}
