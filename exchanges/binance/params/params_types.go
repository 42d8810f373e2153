package params

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Kind selects the serialiser used for a field value
type Kind uint8

// Field kinds
const (
	KindString Kind = iota
	KindInt
	KindDecimal
	KindBool
	KindEnum
	KindStrings
	KindTime
)

var kindNames = [...]string{"string", "int", "decimal", "bool", "enum", "strings", "time"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Field declares a single named parameter and its constraints. Zero valued
// constraints are not enforced.
type Field struct {
	Name     string
	Required bool
	Kind     Kind
	// Scale is the maximum number of fractional digits accepted by a decimal
	// field. Zero leaves precision to the exchange.
	Scale int32
	// Min and Max bound int and decimal values inclusively
	Min, Max *decimal.Decimal
	// MinLen and MaxLen bound the rune length of strings or the element count
	// of string lists
	MinLen, MaxLen int
	Pattern        *regexp.Regexp
	// OneOf lists the accepted wire symbols of an enum field
	OneOf []string
}

// Schema is the ordered field list of a parameter record
type Schema struct {
	fields []Field
	index  map[string]int
}

// Pair is a single encoded query parameter
type Pair struct {
	Name  string
	Value string
}

// Query is an ordered list of encoded parameters
type Query []Pair

// Record is a parameter bag driven by a Schema. Values are serialised when
// set and emitted in schema order.
type Record struct {
	schema *Schema
	values map[string]string
	// invalid holds the latest constraint violation per field
	invalid map[string]string
	// unknown holds names set that the schema does not declare, in set order
	unknown []string
}
