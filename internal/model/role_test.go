package model

import "testing"

func TestPageSetHas(t *testing.T) {
	s := PageSet{"dashboard", "cariler"}

	if !s.Has("cariler") {
		t.Error("expected cariler to be in the set")
	}
	if s.Has("faturalar") {
		t.Error("expected faturalar to be missing")
	}
	if (PageSet{}).Has("dashboard") {
		t.Error("empty set should deny everything")
	}
}

func TestPageSetScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"valid array", []byte(`["dashboard","cariler"]`), []string{"dashboard", "cariler"}},
		{"valid string input", `["logs"]`, []string{"logs"}},
		{"empty array", []byte(`[]`), []string{}},
		{"nil value", nil, []string{}},
		{"malformed json", []byte(`{not json`), []string{}},
		{"wrong shape", []byte(`{"a":1}`), []string{}},
		{"unexpected type", 42, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s PageSet
			if err := s.Scan(tt.input); err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}
			if len(s) != len(tt.want) {
				t.Fatalf("got %v, want %v", s, tt.want)
			}
			for i := range tt.want {
				if s[i] != tt.want[i] {
					t.Errorf("got %v, want %v", s, tt.want)
				}
			}
		})
	}
}

func TestPageSetValue(t *testing.T) {
	v, err := PageSet(nil).Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil set should marshal to [], got %s", v)
	}

	v, err = PageSet{"users"}.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if string(v.([]byte)) != `["users"]` {
		t.Errorf("got %s", v)
	}
}

func TestEntityPermSetCan(t *testing.T) {
	s := EntityPermSet{
		"cari":    {"add", "edit"},
		"malzeme": {},
	}

	if !s.Can("cari", "add") {
		t.Error("expected cari add to be allowed")
	}
	if s.Can("cari", "delete") {
		t.Error("expected cari delete to be denied")
	}
	if s.Can("malzeme", "add") {
		t.Error("empty action list should deny")
	}
	if s.Can("fatura", "add") {
		t.Error("absent entity should deny")
	}
	if (EntityPermSet)(nil).Can("cari", "add") {
		t.Error("nil set should deny everything")
	}
}

func TestEntityPermSetScanFailsClosed(t *testing.T) {
	var s EntityPermSet
	if err := s.Scan([]byte(`not valid json at all`)); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(s) != 0 {
		t.Errorf("malformed json should scan to empty set, got %v", s)
	}
	if s.Can("cari", "add") {
		t.Error("scan of malformed json must deny all actions")
	}

	if err := s.Scan([]byte(`{"cari":["add","delete"]}`)); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if !s.Can("cari", "delete") {
		t.Error("expected cari delete after valid scan")
	}
}

func TestEntityPermSetValidate(t *testing.T) {
	valid := EntityPermSet{"cari": {"add", "edit", "delete"}}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid set, got %v", err)
	}

	invalid := EntityPermSet{"cari": {"add", "destroy"}}
	if err := invalid.Validate(); err == nil {
		t.Error("expected error for unknown action")
	}

	if err := (EntityPermSet{}).Validate(); err != nil {
		t.Errorf("empty set should validate, got %v", err)
	}
}
