package service

import (
	"context"
	"log"
	"strings"

	"anoa.com/yayasanalhikmah/pkg/storage"
)

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	result := trimmed
	return &result
}

// filterByIDs keeps items whose key appears in ids, preserving list order.
func filterByIDs[T any](items []T, ids []string, key func(T) string) []T {
	matched := make(map[string]bool, len(ids))
	for _, id := range ids {
		matched[id] = true
	}

	var filtered []T
	for _, item := range items {
		if matched[key(item)] {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// cleanupReplacedPhoto best-effort deletes the old photo after an update
// swapped it out. The record write has already succeeded; a storage failure
// here only leaks a file.
func cleanupReplacedPhoto(ctx context.Context, store storage.ImageStorage, oldURL, newURL *string) {
	if store == nil || oldURL == nil {
		return
	}
	if newURL != nil && *newURL == *oldURL {
		return
	}

	if err := store.DeleteImage(ctx, *oldURL); err != nil {
		log.Printf("failed to delete replaced photo: %v", err)
	}
}
