package dto

// LookbookBaseDTO 创建/更新画册的表单字段，图片走 multipart 文件域
type LookbookBaseDTO struct {
	Name        string `form:"name" binding:"required,max=255"`
	Description string `form:"description"`
	Link        string `form:"link" binding:"omitempty,url"`
	// RemovedGalleryImages 更新时要移除的画册图片 URL，JSON 数组字符串
	RemovedGalleryImages string `form:"removed_gallery_images"`
}
