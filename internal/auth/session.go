package auth

const sessionKeyPrefix = "fittracker-session||"

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
