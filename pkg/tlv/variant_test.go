package tlv

import "testing"

func TestParseVariant(t *testing.T) {
	testCases := []struct {
		name string
		want Variant
	}{
		{name: "standard", want: Standard{}},
		{name: "", want: Standard{}},
		{name: "inclusive", want: Inclusive{}},
		{name: "padded4", want: Padded{Align: 4}},
	}

	for _, tc := range testCases {
		t.Run("name "+tc.name, func(t *testing.T) {
			got, err := ParseVariant(tc.name)
			if err != nil {
				t.Fatalf("ParseVariant(%q) failed: %v", tc.name, err)
			}
			if got != tc.want {
				t.Errorf("ParseVariant(%q) = %#v, want %#v", tc.name, got, tc.want)
			}
		})
	}

	if _, err := ParseVariant("exotic"); err == nil {
		t.Error("unknown variant name should be rejected")
	}
}
