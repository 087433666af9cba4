package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateSerial builds a certificate serial like GEO-2026-1A2B3C4D:
// a fixed prefix, the issue year, and 8 random hex characters.
func GenerateSerial(now time.Time) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("GEO-%d-%s", now.UTC().Year(), strings.ToUpper(hex.EncodeToString(buf)))
}
