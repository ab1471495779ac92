package keyboard

import (
	"strings"
	"testing"
)

func TestBuiltinLayoutsAreValid(t *testing.T) {
	for _, name := range LayoutNames() {
		t.Run(name, func(t *testing.T) {
			l, err := LayoutByName(name)
			if err != nil {
				t.Fatalf("LayoutByName(%q) error = %v", name, err)
			}
			if err := l.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if len(l.Rows) != 3 {
				t.Errorf("rows = %d, want 3", len(l.Rows))
			}
		})
	}
}

func TestQWERTYRows(t *testing.T) {
	l := QWERTY()
	want := []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}
	for i, row := range l.Rows {
		if string(row) != want[i] {
			t.Errorf("row %d = %s, want %s", i, string(row), want[i])
		}
	}
}

func TestLayoutsAreFreshCopies(t *testing.T) {
	a := QWERTY()
	a.Rows[0][0] = 'X'

	if b := QWERTY(); b.Rows[0][0] != 'Q' {
		t.Error("mutating one layout leaked into another")
	}
}

func TestLayoutByNameUnknown(t *testing.T) {
	if _, err := LayoutByName("dvorak"); err == nil {
		t.Error("LayoutByName(dvorak) should fail")
	}
	if l, err := LayoutByName(""); err != nil || l.Name != "qwerty" {
		t.Errorf("LayoutByName(\"\") = %v, %v, want qwerty", l.Name, err)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr string
	}{
		{"duplicate", newLayout("dup", "QWERTYUIOPQ", "ASDFGHJKL", "ZXCVBNM"), "more than once"},
		{"missing", newLayout("short", "QWERTYUIOP", "ASDFGHJKL", "ZXCVBN"), "missing letters M"},
		{"foreign", newLayout("foreign", "QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM1"), "not in the alphabet"},
		{"slots", Layout{Name: "zero", Rows: QWERTY().Rows, Slots: 0}, "slots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
