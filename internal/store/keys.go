package store

import (
	"fmt"
	"strings"
)

const (
	// KeyPrefixProfile is the prefix for every persisted slice of a profile
	KeyPrefixProfile = "pali:profile:"
)

// Slice keys. Each slice is stored under its own key so a reload restores
// slices independently.
const (
	KeyTheme   = "theme"
	KeyLang    = "lang"
	KeyUser    = "user"
	KeyIsAdmin = "isAdmin"
	KeyAppData = "appData"
)

// SliceKeys lists every persisted slice key.
var SliceKeys = []string{KeyTheme, KeyLang, KeyUser, KeyIsAdmin, KeyAppData}

// ProfileKey returns the backend key of one slice of a profile
func ProfileKey(profileID, key string) string {
	return KeyPrefixProfile + profileID + ":" + key
}

// SplitProfileKey extracts the profile id and slice key from a backend key
func SplitProfileKey(full string) (profileID, key string, err error) {
	if !strings.HasPrefix(full, KeyPrefixProfile) {
		return "", "", fmt.Errorf("invalid profile key: %s", full)
	}
	rest := full[len(KeyPrefixProfile):]
	i := strings.LastIndexByte(rest, ':')
	if i <= 0 || i == len(rest)-1 {
		return "", "", fmt.Errorf("invalid profile key: %s", full)
	}
	return rest[:i], rest[i+1:], nil
}
