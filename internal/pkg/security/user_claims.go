package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Bonjour"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims 定义了我们 Token 中需要包含的业务信息。
// BrandID 是所有数据的租户边界，鉴权后注入请求上下文。
type UserClaims struct {
	UserID  uint64   `json:"user_id"`
	BrandID uint64   `json:"brand_id"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}
