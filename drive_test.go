package drivepath

import (
	"testing"

	"google.golang.org/api/drive/v3"
)

// TestEscapeQuery tests the escapeQuery function.
func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "simple"},
		{"with'quote", "with\\'quote"},
		{"with\\backslash", "with\\\\backslash"},
		{"mixed'and\\special", "mixed\\'and\\\\special"},
	}

	for _, tt := range tests {
		result := escapeQuery(tt.input)
		if result != tt.expected {
			t.Errorf("escapeQuery(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestDriveItem_Accessors(t *testing.T) {
	i := driveItem{file: &drive.File{Id: "abc123", Name: "Report"}}
	if i.ID() != "abc123" {
		t.Errorf("ID() = %q, want %q", i.ID(), "abc123")
	}
	if i.Name() != "Report" {
		t.Errorf("Name() = %q, want %q", i.Name(), "Report")
	}
}

func TestDriveBackend_ParentIDsFromFetchedItem(t *testing.T) {
	// Parent IDs come straight off an item fetched through this backend,
	// without another API round-trip.
	b := &DriveBackend{}
	item := driveItem{file: &drive.File{Id: "child", Parents: []string{"p1", "p2"}}}

	ids, err := b.parentIDs(t.Context(), item)
	if err != nil {
		t.Fatalf("parentIDs() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Errorf("parentIDs() = %v, want [p1 p2]", ids)
	}
}
