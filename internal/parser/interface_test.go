package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/domain"
)

// TestNewResult_Valid tests successful creation of a parse result
func TestNewResult_Valid(t *testing.T) {
	meta, err := NewMetadata("/statements/first_platypus/2011/jan.bai2", time.Now())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	result, err := NewResult(&domain.File{Sender: "SENDER"}, *meta, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result == nil {
		t.Fatal("Expected result to be created")
	}
	if result.File().Sender != "SENDER" {
		t.Errorf("Expected Sender 'SENDER', got: %s", result.File().Sender)
	}
	if result.Meta().FilePath() != meta.FilePath() {
		t.Errorf("Expected FilePath '%s', got: %s", meta.FilePath(), result.Meta().FilePath())
	}
	if result.Period() != nil {
		t.Errorf("Expected nil Period, got: %v", result.Period())
	}
}

// TestNewResult_NilFile tests validation of a nil document
func TestNewResult_NilFile(t *testing.T) {
	meta, err := NewMetadata("/statements/jan.bai2", time.Now())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	result, err := NewResult(nil, *meta, nil)
	if err == nil {
		t.Error("Expected error for nil file, got nil")
	}
	if result != nil {
		t.Error("Expected nil result for invalid input")
	}
	if err != nil && !strings.Contains(err.Error(), "file cannot be nil") {
		t.Errorf("Expected 'file cannot be nil' error, got: %v", err)
	}
}

// TestNewMetadata_Valid tests successful creation of metadata
func TestNewMetadata_Valid(t *testing.T) {
	detectedAt := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	meta, err := NewMetadata("/statements/first_platypus/2011/jan.bai2", detectedAt)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if meta == nil {
		t.Fatal("Expected metadata to be created")
	}
	if meta.FilePath() != "/statements/first_platypus/2011/jan.bai2" {
		t.Errorf("Unexpected FilePath: %s", meta.FilePath())
	}
	if !meta.DetectedAt().Equal(detectedAt) {
		t.Errorf("Expected DetectedAt %v, got: %v", detectedAt, meta.DetectedAt())
	}
	if meta.Bank() != "" {
		t.Errorf("Expected empty Bank initially, got: %s", meta.Bank())
	}
	if meta.AccountNumber() != "" {
		t.Errorf("Expected empty AccountNumber initially, got: %s", meta.AccountNumber())
	}
	if meta.Period() != "" {
		t.Errorf("Expected empty Period initially, got: %s", meta.Period())
	}
}

// TestNewMetadata_EmptyPath tests validation of an empty file path
func TestNewMetadata_EmptyPath(t *testing.T) {
	meta, err := NewMetadata("", time.Now())
	if err == nil {
		t.Error("Expected error for empty file path, got nil")
	}
	if meta != nil {
		t.Error("Expected nil metadata for invalid input")
	}
	if err != nil && !strings.Contains(err.Error(), "file path cannot be empty") {
		t.Errorf("Expected 'file path cannot be empty' error, got: %v", err)
	}
}

// TestNewMetadata_ZeroDetectedAt tests validation of a zero detection time
func TestNewMetadata_ZeroDetectedAt(t *testing.T) {
	meta, err := NewMetadata("/statements/jan.bai2", time.Time{})
	if err == nil {
		t.Error("Expected error for zero detected time, got nil")
	}
	if meta != nil {
		t.Error("Expected nil metadata for invalid input")
	}
	if err != nil && !strings.Contains(err.Error(), "detected time cannot be zero") {
		t.Errorf("Expected 'detected time cannot be zero' error, got: %v", err)
	}
}

// TestMetadata_Setters tests the optional field setters
func TestMetadata_Setters(t *testing.T) {
	meta, err := NewMetadata("/statements/jan.bai2", time.Now())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	meta.SetBank("first_platypus")
	meta.SetAccountNumber("2011")
	meta.SetPeriod("2025-01")

	if meta.Bank() != "first_platypus" {
		t.Errorf("Expected Bank 'first_platypus', got: %s", meta.Bank())
	}
	if meta.AccountNumber() != "2011" {
		t.Errorf("Expected AccountNumber '2011', got: %s", meta.AccountNumber())
	}
	if meta.Period() != "2025-01" {
		t.Errorf("Expected Period '2025-01', got: %s", meta.Period())
	}
}

// TestMetadata_AccessorsThroughResult tests that every accessor is callable
// on the value returned by Result.Meta without taking its address
func TestMetadata_AccessorsThroughResult(t *testing.T) {
	detectedAt := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	meta, err := NewMetadata("/statements/first_platypus/2011/2025-01/jan.bai2", detectedAt)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	meta.SetBank("First Platypus")
	meta.SetAccountNumber("2011")
	meta.SetPeriod("2025-01")

	result, err := NewResult(&domain.File{}, *meta, nil)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if result.Meta().FilePath() != "/statements/first_platypus/2011/2025-01/jan.bai2" {
		t.Errorf("Meta().FilePath() = %q", result.Meta().FilePath())
	}
	if result.Meta().Bank() != "First Platypus" {
		t.Errorf("Meta().Bank() = %q, want First Platypus", result.Meta().Bank())
	}
	if result.Meta().AccountNumber() != "2011" {
		t.Errorf("Meta().AccountNumber() = %q, want 2011", result.Meta().AccountNumber())
	}
	if result.Meta().Period() != "2025-01" {
		t.Errorf("Meta().Period() = %q, want 2025-01", result.Meta().Period())
	}
	if !result.Meta().DetectedAt().Equal(detectedAt) {
		t.Errorf("Meta().DetectedAt() = %v, want %v", result.Meta().DetectedAt(), detectedAt)
	}
}

// TestNewPeriod_Valid tests successful creation of a period
func TestNewPeriod_Valid(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	period, err := NewPeriod(start, end)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if period == nil {
		t.Fatal("Expected period to be created")
	}
	if !period.Start().Equal(start) {
		t.Errorf("Expected Start %v, got: %v", start, period.Start())
	}
	if !period.End().Equal(end) {
		t.Errorf("Expected End %v, got: %v", end, period.End())
	}
}

// TestNewPeriod_ZeroStart tests validation of zero start time
func TestNewPeriod_ZeroStart(t *testing.T) {
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	period, err := NewPeriod(time.Time{}, end)
	if err == nil {
		t.Error("Expected error for zero start time, got nil")
	}
	if period != nil {
		t.Error("Expected nil period for invalid input")
	}
	if err != nil && !strings.Contains(err.Error(), "start time cannot be zero") {
		t.Errorf("Expected 'start time cannot be zero' error, got: %v", err)
	}
}

// TestNewPeriod_ZeroEnd tests validation of zero end time
func TestNewPeriod_ZeroEnd(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	period, err := NewPeriod(start, time.Time{})
	if err == nil {
		t.Error("Expected error for zero end time, got nil")
	}
	if period != nil {
		t.Error("Expected nil period for invalid input")
	}
	if err != nil && !strings.Contains(err.Error(), "end time cannot be zero") {
		t.Errorf("Expected 'end time cannot be zero' error, got: %v", err)
	}
}

// TestNewPeriod_StartEqualsEnd tests that a single-day period is allowed
func TestNewPeriod_StartEqualsEnd(t *testing.T) {
	sameTime := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	period, err := NewPeriod(sameTime, sameTime)
	if err != nil {
		t.Fatalf("Expected no error when start equals end, got: %v", err)
	}
	if period == nil {
		t.Fatal("Expected period to be created")
	}
	if period.Duration() != 0 {
		t.Errorf("Expected zero Duration, got: %v", period.Duration())
	}
}

// TestNewPeriod_StartAfterEnd tests validation when start is after end
func TestNewPeriod_StartAfterEnd(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	period, err := NewPeriod(start, end)
	if err == nil {
		t.Error("Expected error when start is after end, got nil")
	}
	if period != nil {
		t.Error("Expected nil period for invalid input")
	}
	if err != nil && !strings.Contains(err.Error(), "end must not be before start") {
		t.Errorf("Expected 'end must not be before start' error, got: %v", err)
	}
}

// TestPeriod_Duration tests the Duration method
func TestPeriod_Duration(t *testing.T) {
	tests := []struct {
		name             string
		start            time.Time
		end              time.Time
		expectedDuration time.Duration
	}{
		{
			name:             "One hour",
			start:            time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			end:              time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC),
			expectedDuration: 1 * time.Hour,
		},
		{
			name:             "One day",
			start:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			end:              time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			expectedDuration: 24 * time.Hour,
		},
		{
			name:             "30 days",
			start:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			end:              time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			expectedDuration: 30 * 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := NewPeriod(tt.start, tt.end)
			if err != nil {
				t.Fatalf("Setup failed: %v", err)
			}

			duration := period.Duration()
			if duration != tt.expectedDuration {
				t.Errorf("Expected Duration() %v, got: %v", tt.expectedDuration, duration)
			}
		})
	}
}

// TestPeriod_Contains tests the Contains method
func TestPeriod_Contains(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	period, err := NewPeriod(start, end)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	tests := []struct {
		name     string
		testTime time.Time
		expected bool
	}{
		{
			name:     "Before period",
			testTime: time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: false,
		},
		{
			name:     "At start (inclusive)",
			testTime: start,
			expected: true,
		},
		{
			name:     "Middle of period",
			testTime: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "At end (inclusive)",
			testTime: end,
			expected: true,
		},
		{
			name:     "After period",
			testTime: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := period.Contains(tt.testTime)
			if result != tt.expected {
				t.Errorf("Expected Contains(%v) to return %v, got: %v", tt.testTime, tt.expected, result)
			}
		})
	}
}
