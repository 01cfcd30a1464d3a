package dto

// LoginDTO 邮箱密码登录请求
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 脱敏后的用户信息
type UserDTO struct {
	ID      uint64 `json:"id"`
	BrandID uint64 `json:"brand_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// LoginResultDTO 登录结果
type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// BrandDTO 品牌概要，用于页面头部展示
type BrandDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Likes     int64  `json:"likes"`
	Followers int64  `json:"followers"`
}

// MeDTO 当前登录身份：用户 + 所属品牌
type MeDTO struct {
	User  *UserDTO  `json:"user"`
	Brand *BrandDTO `json:"brand"`
}
