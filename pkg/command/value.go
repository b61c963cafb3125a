package command

// Value is a literal cell value: text, a number, or a boolean. Exactly one
// constructor variant is ever set; the zero Value is malformed so an
// accidentally omitted field cannot render as an empty string.
type Value struct {
	kind   valueKind
	text   string
	number float64
	flag   bool
}

type valueKind int

const (
	valueNone valueKind = iota
	valueText
	valueNumber
	valueBool
)

// Text builds a string value.
func Text(s string) Value { return Value{kind: valueText, text: s} }

// Number builds a numeric value.
func Number(n float64) Value { return Value{kind: valueNumber, number: n} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{kind: valueBool, flag: b} }

// IsText reports whether the value is a string, returning it if so.
func (v Value) IsText() (string, bool) { return v.text, v.kind == valueText }

// IsNumber reports whether the value is numeric, returning it if so.
func (v Value) IsNumber() (float64, bool) { return v.number, v.kind == valueNumber }

// IsBool reports whether the value is boolean, returning it if so.
func (v Value) IsBool() (bool, bool) { return v.flag, v.kind == valueBool }

func (v Value) validate() error {
	if v.kind == valueNone {
		return malformed("missing cell value")
	}
	return nil
}
