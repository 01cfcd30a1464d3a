package model

// 平台为封闭枚举，选择器哨兵值 all 表示全部平台
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformThreads   = "threads"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"

	PlatformAll = "all"
)

// AllPlatforms 已知平台列表，顺序即响应中的平台顺序
var AllPlatforms = []string{
	PlatformFacebook,
	PlatformInstagram,
	PlatformThreads,
	PlatformTikTok,
	PlatformYouTube,
}

// IsValidPlatform 判断是否为已知平台名（不含 all）
func IsValidPlatform(name string) bool {
	for _, p := range AllPlatforms {
		if p == name {
			return true
		}
	}
	return false
}
