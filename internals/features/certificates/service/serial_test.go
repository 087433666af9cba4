package service

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateSerialFormat(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	serial := GenerateSerial(now)

	matched, err := regexp.MatchString(`^GEO-2026-[0-9A-F]{8}$`, serial)
	if err != nil {
		t.Fatalf("regexp error: %v", err)
	}
	if !matched {
		t.Fatalf("unexpected serial format: %s", serial)
	}
}

func TestGenerateSerialUsesUTCYear(t *testing.T) {
	// 31 Dec 23:30 in UTC-5 is already 1 Jan in UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2025, 12, 31, 23, 30, 0, 0, loc)

	serial := GenerateSerial(now)
	if serial[:9] != "GEO-2026-" {
		t.Fatalf("expected UTC year 2026 in serial, got %s", serial)
	}
}

func TestGenerateSerialIsUnlikelyToRepeat(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := GenerateSerial(now)
		if seen[s] {
			t.Fatalf("serial repeated within 1000 draws: %s", s)
		}
		seen[s] = true
	}
}
