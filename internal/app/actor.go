package app

import "os/user"

// currentActor names the operating system user for activity log entries.
func currentActor() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "unknown"
	}
	return u.Username
}
