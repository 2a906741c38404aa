package services

import (
	"context"
	"fmt"
	"time"

	"stayhub/dto"

	"github.com/redis/go-redis/v9"
)

// Session blobs live under fixed key names, one per account, the way the
// browser app kept them in local storage.
const (
	sessionKeyPrefix = "hotel_user:"
	sessionTTL       = 3 * 24 * time.Hour
)

func sessionKey(userID uint) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}

// SaveSession persists the logged-in user's profile blob
func SaveSession(ctx context.Context, rdb *redis.Client, userID uint, user *dto.UserLoginResponse) error {
	return SetToRedis(ctx, rdb, sessionKey(userID), user, sessionTTL)
}

// GetSession loads the stored profile blob, or nil when absent
func GetSession(ctx context.Context, rdb *redis.Client, userID uint) (*dto.UserLoginResponse, error) {
	var user dto.UserLoginResponse
	if err := GetFromRedis(ctx, rdb, sessionKey(userID), &user); err != nil {
		return nil, err
	}
	if user.UserID == 0 {
		return nil, nil
	}
	return &user, nil
}

// ClearSession drops the stored profile blob
func ClearSession(ctx context.Context, rdb *redis.Client, userID uint) error {
	return DeleteFromRedis(ctx, rdb, sessionKey(userID))
}
