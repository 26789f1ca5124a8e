package authService

import (
	"InterviewGolang/internal/api/auth"
	contextPkg "InterviewGolang/pkg/context"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

func (s *authService) GetProfile(ctx context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		TargetRole:      user.TargetRole,
		PhoneNumber:     user.PhoneNumber,
		ProfilePhotoURL: user.ProfilePhotoURL,
		IsVerified:      user.IsVerified,
		CreatedAt:       user.CreatedAt,
	}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.TargetRole != "" {
		user.TargetRole = req.TargetRole
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := repo.Users.UpdateProfile(ctx, user); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("User profile updated")

	return nil
}

func (s *authService) UpdateProfilePhoto(ctx context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   photoFile.Filename,
			"error":      err.Error(),
		}).Warn("Invalid profile photo file")
		return nil, auth.ErrInvalidFileType
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.s3Client.UploadProfilePhoto(userID, photoFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile photo")
		return nil, auth.ErrFailedToUploadFile
	}

	if user.ProfilePhotoURL != "" {
		if err := s.s3Client.DeleteFile(user.ProfilePhotoURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete previous profile photo")
		}
	}

	if err := repo.Users.UpdateProfilePhoto(ctx, userID, photoURL); err != nil {
		return nil, err
	}

	return &auth.ProfilePhotoResponse{
		ID:              userID,
		ProfilePhotoURL: photoURL,
	}, nil
}
