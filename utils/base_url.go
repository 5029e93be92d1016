package utils

import "strings"

// ShareableLink builds the public share URL for a user from the
// configured frontend base URL.
func ShareableLink(userID string) string {
	base := GetEnvAsString("FRONTEND_URL", "http://localhost:3000")
	return strings.TrimSuffix(base, "/") + "/api/v1/brain/" + userID
}
