package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StudentSessionKey returns the cache key for a student's active session.
func (r *CacheKeyStruct) StudentSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// DashboardStatsKey returns the cache key for a user's dashboard stats.
func (r *CacheKeyStruct) DashboardStatsKey(role string, profileID int) string {
	return fmt.Sprintf("dashboard:%s:%d", role, profileID)
}

// AnnouncementChannel returns the Pub/Sub channel for the announcement feed.
func (r *CacheKeyStruct) AnnouncementChannel() string {
	return "announcements:feed"
}

var CacheKey = NewCacheKeyStruct()
