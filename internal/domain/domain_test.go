package domain

import "testing"

func TestIssueFieldCaseInsensitiveLookup(t *testing.T) {
	issue := Issue{Fields: []CustomField{
		StateField("State", "Open", false),
		SingleUserField("Assignee", "jdoe", "Jane Doe"),
	}}

	tests := []struct {
		query string
		want  string
	}{
		{"state", "State"},
		{"STATE", "State"},
		{"StAtE", "State"},
		{"assignee", "Assignee"},
	}
	for _, tt := range tests {
		f, ok := issue.Field(tt.query)
		if !ok {
			t.Errorf("Field(%q): not found", tt.query)
			continue
		}
		if f.Name != tt.want {
			t.Errorf("Field(%q).Name = %q, want %q", tt.query, f.Name, tt.want)
		}
	}
}

func TestIssueFieldNotFound(t *testing.T) {
	issue := Issue{Fields: []CustomField{StateField("State", "Open", false)}}
	if _, ok := issue.Field("Priority"); ok {
		t.Error("Field(\"Priority\") found, want not found")
	}
}

func TestIssueFieldDifferingLengthNamesNeverMatch(t *testing.T) {
	issue := Issue{Fields: []CustomField{StateField("State", "Open", false)}}
	if _, ok := issue.Field("States"); ok {
		t.Error("Field(\"States\") matched a shorter field name")
	}
}

func TestFieldConstructorsSetKindAndPayload(t *testing.T) {
	if f := SingleEnumField("Priority", "High"); f.Kind != FieldSingleEnum || f.Value != "High" {
		t.Errorf("SingleEnumField = %+v", f)
	}
	if f := MultiEnumField("Labels", []string{"a", "b"}); f.Kind != FieldMultiEnum || len(f.Values) != 2 {
		t.Errorf("MultiEnumField = %+v", f)
	}
	if f := StateField("State", "Done", true); f.Kind != FieldState || !f.IsResolved {
		t.Errorf("StateField = %+v", f)
	}
	if f := SingleUserField("Assignee", "jdoe", "Jane Doe"); f.Kind != FieldSingleUser || f.Login != "jdoe" {
		t.Errorf("SingleUserField = %+v", f)
	}
	if f := TextField("Notes", "hello"); f.Kind != FieldText || f.Value != "hello" {
		t.Errorf("TextField = %+v", f)
	}
	if f := UnknownField("Mystery"); f.Kind != FieldUnknown || f.Name != "Mystery" {
		t.Errorf("UnknownField = %+v", f)
	}
}
