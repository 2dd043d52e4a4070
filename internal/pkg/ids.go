package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

const maxGameID = 99999999

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateGameID - generates a numeric identifier for a game.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(maxGameID))
	if err != nil {
		return ""
	}
	return n.String()
}
