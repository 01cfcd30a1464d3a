package service

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/pkg/redis"
	"Bonjour/internal/pkg/security"
	"Bonjour/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type AuthService interface {
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetMe(ctx context.Context, userID uint64) (*dto.MeDTO, error)
}

type AuthServiceImpl struct {
	userRepo  repository.UserRepo
	brandRepo repository.BrandRepo
}

func NewAuthService(userRepo repository.UserRepo, brandRepo repository.BrandRepo) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, brandRepo: brandRepo}
}

func (s *AuthServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}
	// 用户不存在与密码错误返回同一错误，不暴露邮箱是否注册
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.BrandID, []string{user.Role})
	if err != nil {
		return nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{Token: token, User: userDTO}, nil
}

// Logout 把 Token 签名写入 Redis 黑名单，有效期与 Token 剩余寿命同阶
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, "1", security.JWTExpirationTime)
}

func (s *AuthServiceImpl) GetMe(ctx context.Context, userID uint64) (*dto.MeDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	brand, err := s.brandRepo.GetBrand(ctx, user.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	brandDTO := &dto.BrandDTO{}
	if err = copier.Copy(brandDTO, brand); err != nil {
		return nil, err
	}
	return &dto.MeDTO{User: userDTO, Brand: brandDTO}, nil
}
