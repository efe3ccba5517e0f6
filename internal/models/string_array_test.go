package models

import "testing"

func TestStringArrayValue(t *testing.T) {
	var nilArr StringArray
	v, err := nilArr.Value()
	if err != nil || v != "[]" {
		t.Errorf("nil Value() = %v, %v", v, err)
	}

	v, err = StringArray{"Reuters", "AP News"}.Value()
	if err != nil || v != `["Reuters","AP News"]` {
		t.Errorf("Value() = %v, %v", v, err)
	}
}

func TestStringArrayScan(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"json array", []byte(`["a","b"]`), []string{"a", "b"}},
		{"empty array", `[]`, []string{}},
		{"nil", nil, []string{}},
		{"empty string", "", []string{}},
		{"null literal", "null", []string{}},
	}
	for _, tc := range cases {
		var a StringArray
		if err := a.Scan(tc.input); err != nil {
			t.Errorf("%s: Scan error %v", tc.name, err)
			continue
		}
		if a == nil {
			t.Errorf("%s: scanned to nil slice", tc.name)
			continue
		}
		if len(a) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, a, tc.want)
			continue
		}
		for i := range a {
			if a[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.name, a, tc.want)
				break
			}
		}
	}
}

func TestStringArrayScanRejectsNonArray(t *testing.T) {
	for _, input := range []string{"Reuters", `"Reuters"`, `{"a":1}`} {
		var a StringArray
		if err := a.Scan(input); err == nil {
			t.Errorf("Scan(%q) accepted a non-array value", input)
		}
	}
}
