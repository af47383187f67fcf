package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/repository"
	"fitbuddy/server/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidContentType = errors.New("avatar content type must be an image")
	ErrUploadURLError     = errors.New("failed to generate upload URL")
)

// Profile is a user record prepared for display: no credential material,
// avatar resolved to a temporary download URL when one exists.
type Profile struct {
	domain.User
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UploadURLResponse carries a presigned upload URL plus the object key the
// client reports back on confirm.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ProfileService serves buddy profiles and the avatar upload flow.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	RequestAvatarUploadURL(ctx context.Context, userID, contentType string) (*UploadURLResponse, error)
	ConfirmAvatar(ctx context.Context, userID, objectKey string) (*Profile, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// GetProfile resolves a user by hex id. Malformed ids read as absent users.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.toProfile(ctx, user), nil
}

// RequestAvatarUploadURL generates a presigned PUT URL for a new avatar.
func (s *profileService) RequestAvatarUploadURL(ctx context.Context, userID, contentType string) (*UploadURLResponse, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, ErrInvalidContentType
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("avatars", id.Hex(), fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// ConfirmAvatar records the uploaded object key on the user and retires
// the previous avatar object, if any.
func (s *profileService) ConfirmAvatar(ctx context.Context, userID, objectKey string) (*Profile, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if objectKey == "" {
		return nil, errors.New("object key is required")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepo.SetAvatarKey(ctx, id, objectKey); err != nil {
		return nil, err
	}

	// Best effort; an orphaned object is not worth failing the request.
	if user.AvatarKey != "" && user.AvatarKey != objectKey {
		_ = s.fileStorage.DeleteObject(ctx, user.AvatarKey)
	}

	user.AvatarKey = objectKey
	return s.toProfile(ctx, user), nil
}

func (s *profileService) toProfile(ctx context.Context, user *domain.User) *Profile {
	profile := &Profile{User: *user}
	profile.PasswordHash = ""
	if user.AvatarKey != "" {
		if url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.AvatarKey, storage.DefaultPresignedURLExpiry); err == nil {
			profile.AvatarURL = url
		}
	}
	return profile
}
