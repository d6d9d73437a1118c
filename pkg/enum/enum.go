// Package enum models small enumerated declarations whose variants carry a
// wire value, a display label and an optional semantic category used for
// status colouring in clients.
package enum

// Category is the semantic colouring hint attached to a variant.
type Category string

const (
	Primary Category = "primary"
	Success Category = "success"
	Info    Category = "info"
	Warning Category = "warning"
	Danger  Category = "danger"
)

// Variant is one named entry of a declaration.
type Variant struct {
	Name     string
	Value    int
	Label    string
	Category Category
}

// Declaration is an ordered list of variants. Declarations are tiny
// (a handful of entries), so lookups are linear scans over declared order.
type Declaration []Variant

// Declare builds a Declaration from its variants.
func Declare(variants ...Variant) Declaration {
	return Declaration(variants)
}

// Label returns the label of the variant whose declared value matches, or
// the empty string when no variant matches.
func Label(d Declaration, value int) string {
	for _, v := range d {
		if v.Value == value {
			return v.Label
		}
	}
	return ""
}

// CategoryOf returns the declared category of the matching variant. The
// second return is false when no variant matches or the matching variant
// declares no category.
func CategoryOf(d Declaration, value int) (Category, bool) {
	for _, v := range d {
		if v.Value == value {
			if v.Category == "" {
				return "", false
			}
			return v.Category, true
		}
	}
	return "", false
}

// ValueOf returns the value declared under name. The second return is
// false when the name is not declared.
func ValueOf(d Declaration, name string) (int, bool) {
	for _, v := range d {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}
