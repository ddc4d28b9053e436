package btrfs

import "strings"

// subvolumeMountPatterns maps well-known subvolume naming conventions to
// their mount targets. Order matters: the first matching pattern wins.
var subvolumeMountPatterns = []struct {
	pattern    string
	mountPoint string
}{
	{"@", "/"},
	{"@root", "/"},
	{"@home", "/home"},
	{"@var", "/var"},
	{"@tmp", "/tmp"},
	{"@opt", "/opt"},
	{"@srv", "/srv"},
	{"@usr", "/usr"},
	{"@boot", "/boot"},
	{"root", "/"},
	{"home", "/home"},
	{"var", "/var"},
	{"tmp", "/tmp"},
}

// SuggestSubvolumeMount proposes a mount target from a subvolume path,
// preferring an exact name match over a substring match. An empty result
// means no convention applied.
func SuggestSubvolumeMount(path string) string {
	for _, p := range subvolumeMountPatterns {
		if path == p.pattern {
			return p.mountPoint
		}
	}

	lower := strings.ToLower(path)
	for _, p := range subvolumeMountPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.mountPoint
		}
	}

	return ""
}
