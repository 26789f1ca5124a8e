package authService

import (
	"InterviewGolang/internal/api/auth"
	authRepository "InterviewGolang/internal/api/auth/repository"
	"InterviewGolang/pkg/bcrypt"
	"InterviewGolang/pkg/google"
	"InterviewGolang/pkg/redis"
	"InterviewGolang/pkg/s3"
	"InterviewGolang/pkg/utils"
	"context"
	"mime/multipart"
	"net/url"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.CreateUserRequest) error
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.LoginUserResponse, error)
	Logout(ctx context.Context, userID string) error
	LoginGoogle() (*url.URL, error)
	LoginWithGoogleAccount(ctx context.Context, userInfo auth.UserGoogle) (auth.LoginUserResponse, error)
	GetProfile(ctx context.Context, userID string) (auth.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) error
	UpdateProfilePhoto(ctx context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		googleProvider: googleProvider,
		redisServer:    redisServer,
		s3Client:       s3Client,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}
