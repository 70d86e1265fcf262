package tlv

import "fmt"

// ParseVariant resolves a length-policy name used by tlvkit's tooling to
// its Variant value. Known names are "standard", "inclusive" and
// "padded4".
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "standard", "":
		return Standard{}, nil
	case "inclusive":
		return Inclusive{}, nil
	case "padded4":
		return Padded{Align: 4}, nil
	}
	return nil, fmt.Errorf("unknown variant %q", name)
}
