package domain

import (
	"testing"
	"time"
)

func TestDocument_ExportName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"report.docx", "report.md"},
		{"archive.tar.gz", "archive.tar.md"},
		{"notes.md", "notes.md"},
		{"README", "README.md"},
		{".bashrc", "document.md"},
		{"dir.v2/file", "file.md"},
		{"", "document.md"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			got := Document{FileName: tt.fileName}.ExportName()
			if got != tt.want {
				t.Errorf("ExportName(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestDocument_IsEmpty(t *testing.T) {
	if !(Document{}).IsEmpty() {
		t.Error("zero Document should be empty")
	}
	if (Document{FileName: "a.txt"}).IsEmpty() {
		t.Error("Document with a name should not be empty")
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(0)

	if s.ID == "" {
		t.Error("NewSession() did not generate ID")
	}
	if s.Mode != "preview" {
		t.Errorf("NewSession() Mode = %q, want preview", s.Mode)
	}
	if s.Loaded {
		t.Error("NewSession() should not have a loaded document")
	}
	if s.ExpiresAt != nil || s.IsExpired() {
		t.Error("session without ttl should never expire")
	}
}

func TestSession_IsExpired(t *testing.T) {
	s := NewSession(time.Hour)
	if s.IsExpired() {
		t.Error("fresh session should not be expired")
	}

	past := time.Now().Add(-time.Minute)
	s.ExpiresAt = &past
	if !s.IsExpired() {
		t.Error("session past ExpiresAt should be expired")
	}
}

func TestConversion_Document(t *testing.T) {
	c := &Conversion{Success: true, Markdown: "# x", FileName: "x.html"}

	want := Document{Markdown: "# x", FileName: "x.html"}
	if c.Document() != want {
		t.Errorf("Document() = %+v, want %+v", c.Document(), want)
	}
}
