package util

import (
    "testing"
    "time"
)

func TestGetFormattedDate(t *testing.T) {
    testCases := []struct {
        input    time.Time
        expected string
    }{
        {time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), "01-10-2023"},
        {time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), "29-02-2024"},
        {time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), "30-08-2026"},
    }

    for _, tc := range testCases {
        result := GetFormattedDate(tc.input)
        if result != tc.expected {
            t.Errorf("For input %s, expected %s, but got %s", tc.input, tc.expected, result)
        }
    }
}

func TestIsEmptyString(t *testing.T) {
    if !IsEmptyString("") {
        t.Error("Expected empty string to be empty")
    }
    if !IsEmptyString("   \t") {
        t.Error("Expected whitespace-only string to be empty")
    }
    if IsEmptyString("content") {
        t.Error("Expected non-empty string to not be empty")
    }
}

func TestIsEmptyStringPtr(t *testing.T) {
    if !IsEmptyStringPtr(nil) {
        t.Error("Expected nil pointer to be empty")
    }
    empty := " "
    if !IsEmptyStringPtr(&empty) {
        t.Error("Expected pointer to whitespace to be empty")
    }
    value := "content"
    if IsEmptyStringPtr(&value) {
        t.Error("Expected pointer to non-empty string to not be empty")
    }
}
