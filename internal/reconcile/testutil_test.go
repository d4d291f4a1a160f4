package reconcile

import (
	"time"

	"github.com/google/uuid"
)

// Fixed clock for validity evaluation in tests.
var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
