package params

import (
	"bytes"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobinance/encoding/json"
)

// NewSchema returns a schema enumerating fields in the order given
func NewSchema(fields ...Field) *Schema {
	s := &Schema{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	for i := range s.fields {
		s.index[s.fields[i].Name] = i
	}
	return s
}

// Extend returns a new schema with fields appended to the receiver's fields
func (s *Schema) Extend(fields ...Field) *Schema {
	return NewSchema(append(slices.Clone(s.Fields()), fields...)...)
}

// Fields returns the schema's fields in order
func (s *Schema) Fields() []Field {
	if s == nil {
		return nil
	}
	return s.fields
}

// Field returns the field declared under name
func (s *Schema) Field(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Limit returns a bound usable as Field.Min or Field.Max
func Limit(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// NewRecord returns an empty record for the schema
func NewRecord(s *Schema) *Record {
	return &Record{
		schema:  s,
		values:  make(map[string]string),
		invalid: make(map[string]string),
	}
}

// SetString sets a string field
func (r *Record) SetString(name, v string) *Record {
	return r.set(name, KindString, v, func(f *Field) string { return checkString(f, v) })
}

// SetInt sets an integer field
func (r *Record) SetInt(name string, v int64) *Record {
	return r.set(name, KindInt, strconv.FormatInt(v, 10), func(f *Field) string {
		return checkRange(f, decimal.NewFromInt(v))
	})
}

// SetDecimal sets a decimal field, serialised in plain notation with trailing
// zeros stripped. Values carrying more fractional digits than the field's
// scale are rejected rather than rounded.
func (r *Record) SetDecimal(name string, v decimal.Decimal) *Record {
	return r.set(name, KindDecimal, v.String(), func(f *Field) string {
		if f.Scale > 0 && !v.Equal(v.Truncate(f.Scale)) {
			return fmt.Sprintf("exceeds %d decimal places", f.Scale)
		}
		return checkRange(f, v)
	})
}

// SetBool sets a boolean field
func (r *Record) SetBool(name string, v bool) *Record {
	return r.set(name, KindBool, strconv.FormatBool(v), nil)
}

// SetEnum sets an enumerated field by its wire symbol
func (r *Record) SetEnum(name, symbol string) *Record {
	return r.set(name, KindEnum, symbol, func(f *Field) string {
		if symbol == "" {
			return "must not be empty"
		}
		if len(f.OneOf) > 0 && !slices.Contains(f.OneOf, symbol) {
			return fmt.Sprintf("%q is not one of %s", symbol, strings.Join(f.OneOf, ","))
		}
		return ""
	})
}

// SetStrings sets a list field, serialised as a compact JSON array
func (r *Record) SetStrings(name string, v []string) *Record {
	return r.set(name, KindStrings, marshalStrings(v), func(f *Field) string {
		if f.MinLen > 0 && len(v) < f.MinLen {
			return fmt.Sprintf("needs at least %d elements", f.MinLen)
		}
		if f.MaxLen > 0 && len(v) > f.MaxLen {
			return fmt.Sprintf("allows at most %d elements", f.MaxLen)
		}
		for i := range v {
			if f.Pattern != nil && !f.Pattern.MatchString(v[i]) {
				return fmt.Sprintf("element %q does not match %s", v[i], f.Pattern)
			}
		}
		return ""
	})
}

// SetTime sets a time field as Unix milliseconds
func (r *Record) SetTime(name string, t time.Time) *Record {
	ms := t.UnixMilli()
	return r.set(name, KindTime, strconv.FormatInt(ms, 10), func(f *Field) string {
		return checkRange(f, decimal.NewFromInt(ms))
	})
}

// Unset removes a field so that it is omitted from the query
func (r *Record) Unset(name string) *Record {
	delete(r.values, name)
	delete(r.invalid, name)
	return r
}

// Invalidate marks a field as unusable so that Encode fails with reason. It
// is for values that could not be produced, such as a failed id generation.
func (r *Record) Invalidate(name, reason string) *Record {
	if _, ok := r.schema.Field(name); !ok {
		if !slices.Contains(r.unknown, name) {
			r.unknown = append(r.unknown, name)
		}
		return r
	}
	delete(r.values, name)
	r.invalid[name] = reason
	return r
}

// Value returns the serialised value of a set field
func (r *Record) Value(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.values[name]
	return v, ok
}

// IsSet returns whether the named field holds a value
func (r *Record) IsSet(name string) bool {
	_, ok := r.Value(name)
	return ok
}

// Schema returns the record's schema
func (r *Record) Schema() *Schema {
	return r.schema
}

func (r *Record) set(name string, kind Kind, value string, check func(*Field) string) *Record {
	f, ok := r.schema.Field(name)
	if !ok {
		if !slices.Contains(r.unknown, name) {
			r.unknown = append(r.unknown, name)
		}
		return r
	}
	r.values[name] = value
	delete(r.invalid, name)
	if f.Kind != kind {
		r.invalid[name] = fmt.Sprintf("expects %s value, got %s", f.Kind, kind)
		return r
	}
	if check != nil {
		if reason := check(&f); reason != "" {
			r.invalid[name] = reason
		}
	}
	return r
}

// Encode validates the record and returns its fields in schema order. The
// first problem found is returned as a *ValidationError; unknown fields are
// reported before constraint violations, which are reported before missing
// required fields.
func (r *Record) Encode() (Query, error) {
	if len(r.unknown) > 0 {
		return nil, &ValidationError{Field: r.unknown[0], Reason: "unknown parameter"}
	}
	fields := r.schema.Fields()
	for i := range fields {
		if reason, ok := r.invalid[fields[i].Name]; ok {
			return nil, &ValidationError{Field: fields[i].Name, Reason: reason}
		}
	}
	q := make(Query, 0, len(r.values)+3)
	for i := range fields {
		v, ok := r.values[fields[i].Name]
		if !ok {
			if fields[i].Required {
				return nil, &ValidationError{Field: fields[i].Name, Reason: "required"}
			}
			continue
		}
		q = append(q, Pair{Name: fields[i].Name, Value: v})
	}
	return q, nil
}

func checkString(f *Field, v string) string {
	n := utf8.RuneCountInString(v)
	switch {
	case f.MinLen > 0 && n < f.MinLen:
		return fmt.Sprintf("shorter than %d characters", f.MinLen)
	case f.MaxLen > 0 && n > f.MaxLen:
		return fmt.Sprintf("longer than %d characters", f.MaxLen)
	case f.Pattern != nil && !f.Pattern.MatchString(v):
		return fmt.Sprintf("does not match %s", f.Pattern)
	}
	return ""
}

func checkRange(f *Field, v decimal.Decimal) string {
	if f.Min != nil && v.LessThan(*f.Min) {
		return "must be at least " + f.Min.String()
	}
	if f.Max != nil && v.GreaterThan(*f.Max) {
		return "must be at most " + f.Max.String()
	}
	return ""
}

func marshalStrings(v []string) string {
	if v == nil {
		v = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "[]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Add returns the query with a pair appended
func (q Query) Add(name, value string) Query {
	return append(q, Pair{Name: name, Value: value})
}

// Get returns the value of the first pair named name
func (q Query) Get(name string) (string, bool) {
	for i := range q {
		if q[i].Name == name {
			return q[i].Value, true
		}
	}
	return "", false
}

// Has returns whether a pair named name is present
func (q Query) Has(name string) bool {
	_, ok := q.Get(name)
	return ok
}

// Encode renders the query as application/x-www-form-urlencoded in pair
// order. Only A-Z a-z 0-9 - _ . ~ are left unescaped and spaces become %20.
func (q Query) Encode() string {
	var sb strings.Builder
	for i := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(Escape(q[i].Name))
		sb.WriteByte('=')
		sb.WriteString(Escape(q[i].Value))
	}
	return sb.String()
}

// Escape percent encodes s for use as a query key or value
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
