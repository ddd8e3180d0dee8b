/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package character

import (
	"path"
	"strings"
)

// ImagePath maps a dataset image reference onto the portrait directory
// served under base. References already under base are kept as-is; anything
// else (a remote URL, a relative path from an older dataset) is reduced to
// its file name.
func ImagePath(image, base string) string {
	if image == "" {
		return ""
	}

	base = "/" + strings.Trim(base, "/")
	if strings.HasPrefix("/"+strings.TrimPrefix(image, "/"), base+"/") {
		return "/" + strings.TrimPrefix(image, "/")
	}

	name := image
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return ""
	}

	return path.Join(base, name)
}
