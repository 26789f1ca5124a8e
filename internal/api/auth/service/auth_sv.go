package authService

import (
	"InterviewGolang/internal/api/auth"
	"InterviewGolang/internal/entity"
	contextPkg "InterviewGolang/pkg/context"
	jwtPkg "InterviewGolang/pkg/jwt"
	"context"
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func (s *authService) Register(ctx context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	user := entity.User{
		ID:         userID,
		Email:      req.Email,
		Name:       req.Name,
		Password:   hashedPassword,
		TargetRole: req.TargetRole,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("User registered")

	return nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueTokens(ctx, requestID, user)
}

func (s *authService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	stored, err := s.redisServer.GetRefreshToken(ctx, req.UserID)
	if err != nil || stored == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Refresh token not found or expired")
		return auth.LoginUserResponse{}, auth.ErrorTokenExpired
	}

	if stored != req.RefreshToken {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Refresh token mismatch")
		return auth.LoginUserResponse{}, auth.ErrorInvalidToken
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, req.UserID)
	if err != nil {
		return auth.LoginUserResponse{}, err
	}

	return s.issueTokens(ctx, requestID, user)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.redisServer.DeleteRefreshToken(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete refresh token")
		return err
	}

	return nil
}

func (s *authService) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

// LoginWithGoogleAccount signs in an existing user by verified Google
// email, registering them first if this is their first visit.
func (s *authService) LoginWithGoogleAccount(ctx context.Context, userInfo auth.UserGoogle) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, userInfo.Email)
	if errors.Is(err, auth.ErrUserNotFound) {
		userID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return auth.LoginUserResponse{}, err
		}

		name := userInfo.Name
		if name == "" {
			name = userInfo.Email
		}

		user = entity.User{
			ID:              userID,
			Email:           userInfo.Email,
			Name:            name,
			ProfilePhotoURL: userInfo.Picture,
			IsVerified:      userInfo.VerifiedEmail,
		}

		if err := repo.Users.CreateUser(ctx, user); err != nil {
			return auth.LoginUserResponse{}, err
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"provider":   entity.AuthProviderGoogle.String(),
		}).Info("User registered via OAuth")
	} else if err != nil {
		return auth.LoginUserResponse{}, err
	}

	return s.issueTokens(ctx, requestID, user)
}

func (s *authService) issueTokens(ctx context.Context, requestID string, user entity.User) (auth.LoginUserResponse, error) {
	userData := map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Name,
	}

	accessToken, expired, err := jwtPkg.Sign(userData, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	refreshToken, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate refresh token")
		return auth.LoginUserResponse{}, err
	}

	if err := s.redisServer.SetRefreshToken(ctx, user.ID, refreshToken, refreshTokenTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store refresh token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.LoginUserResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}
