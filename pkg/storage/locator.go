package storage

import (
	"fmt"
	"strings"
)

// ParseLocator splits a full storage locator into its container (bucket) and
// object key. The bucket is the locator's fourth path segment and the key is
// everything after "<bucket>/", e.g.
//
//	https://s3.wasabisys.com/clips/2024/beach_sunset.mp4 → ("clips", "2024/beach_sunset.mp4")
func ParseLocator(locator string) (bucket, key string, err error) {
	parts := strings.Split(locator, "/")
	if len(parts) < 5 {
		return "", "", fmt.Errorf("storage locator %q has no bucket segment", locator)
	}
	bucket = parts[3]
	if bucket == "" {
		return "", "", fmt.Errorf("storage locator %q has an empty bucket segment", locator)
	}
	_, key, found := strings.Cut(locator, bucket+"/")
	if !found || key == "" {
		return "", "", fmt.Errorf("storage locator %q has no object key", locator)
	}
	return bucket, key, nil
}
