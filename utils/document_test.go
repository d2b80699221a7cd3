package utils

import (
	"strings"
	"testing"
)

func TestExtractCVTextRejectsNonPDF(t *testing.T) {
	t.Parallel()

	_, err := ExtractCVText([]byte("word bytes"), "application/msword")
	if err == nil {
		t.Fatal("expected error for non-PDF content")
	}
	if !strings.Contains(err.Error(), "application/msword") {
		t.Fatalf("expected MIME type in error, got %v", err)
	}
}

func TestExtractCVTextRejectsCorruptPDF(t *testing.T) {
	t.Parallel()

	if _, err := ExtractCVText([]byte("not a pdf at all"), "application/pdf"); err == nil {
		t.Fatal("expected error for corrupt PDF bytes")
	}
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	uri := DataURI([]byte("hello"), "application/pdf")
	if uri != "data:application/pdf;base64,aGVsbG8=" {
		t.Fatalf("unexpected data URI: %q", uri)
	}
}
