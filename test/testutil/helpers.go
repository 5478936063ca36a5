// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/tripwise/flight-offers/internal/domain"
)

// FixtureFile is the name of the shipped provider response under docs/response-mock.
const FixtureFile = "flight_offers.json"

// projectRoot returns the repository root relative to this file.
func projectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// MockPath returns the path of a file in the docs/response-mock directory.
func MockPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "docs", "response-mock", filename)
}

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(MockPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// OfferIDs returns the IDs of offers in order.
func OfferIDs(offers []domain.Offer) []string {
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	return ids
}

// Carriers returns the outbound carrier of each offer in order.
func Carriers(offers []domain.Offer) []string {
	codes := make([]string, len(offers))
	for i, o := range offers {
		codes[i] = o.Outbound.Carrier
	}
	return codes
}
