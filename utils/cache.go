// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"salonbook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// NotificationCacheClient holds the single-slot notification banner.
	NotificationCacheClient *redis.Client
	// MirrorCacheClient holds the non-canonical mirror of submitted bookings.
	MirrorCacheClient *redis.Client
)

// InitNotificationCache initializes the Redis client for the notification slot.
func InitNotificationCache() {
	NotificationCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotificationDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NotificationCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Notifications): %v", err)
	}
}

// GetNotificationCacheClient returns the notification slot client.
func GetNotificationCacheClient() *redis.Client {
	if NotificationCacheClient == nil {
		InitNotificationCache()
	}
	return NotificationCacheClient
}

// InitMirrorCache initializes the Redis client for the booking mirror.
func InitMirrorCache() {
	MirrorCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMirrorDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := MirrorCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Booking Mirror): %v", err)
	}
}

// GetMirrorCacheClient returns the booking mirror client.
func GetMirrorCacheClient() *redis.Client {
	if MirrorCacheClient == nil {
		InitMirrorCache()
	}
	return MirrorCacheClient
}
