package binance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

// decimalScale is the largest number of fractional digits the exchange
// accepts on prices and quantities
const decimalScale = 8

var (
	symbolPattern        = regexp.MustCompile(`^[A-Z0-9\-_.]{1,20}$`)
	clientOrderIDPattern = regexp.MustCompile(`^[\.A-Z\:/a-z0-9_-]{1,36}$`)
	assetPattern         = regexp.MustCompile(`^[A-Z0-9]{1,20}$`)

	recvWindowField = params.Field{
		Name: paramRecvWindow,
		Kind: params.KindInt,
		Min:  params.Limit(1),
		Max:  params.Limit(MaxRecvWindow),
	}
)

// signedSchema appends the optional per request recvWindow field
func signedSchema(fields ...params.Field) *params.Schema {
	return params.NewSchema(append(fields, recvWindowField)...)
}

func symbolField(required bool) params.Field {
	return params.Field{Name: "symbol", Required: required, Kind: params.KindString, Pattern: symbolPattern}
}

func symbolsField() params.Field {
	return params.Field{Name: "symbols", Kind: params.KindStrings, MinLen: 1, MaxLen: 100, Pattern: symbolPattern}
}

func assetField(name string, required bool) params.Field {
	return params.Field{Name: name, Required: required, Kind: params.KindString, Pattern: assetPattern}
}

func stringField(name string, required bool) params.Field {
	return params.Field{Name: name, Required: required, Kind: params.KindString, MinLen: 1}
}

func clientOrderIDField(name string) params.Field {
	return params.Field{Name: name, Kind: params.KindString, Pattern: clientOrderIDPattern}
}

func decimalField(name string, required bool) params.Field {
	return params.Field{Name: name, Required: required, Kind: params.KindDecimal, Scale: decimalScale, Min: params.Limit(0)}
}

func intField(name string, required bool, minimum, maximum int64) params.Field {
	return params.Field{Name: name, Required: required, Kind: params.KindInt, Min: params.Limit(minimum), Max: params.Limit(maximum)}
}

func idField(name string) params.Field {
	return params.Field{Name: name, Kind: params.KindInt, Min: params.Limit(0)}
}

func timeField(name string) params.Field {
	return params.Field{Name: name, Kind: params.KindTime, Min: params.Limit(0)}
}

func boolField(name string) params.Field {
	return params.Field{Name: name, Kind: params.KindBool}
}

func enumField[T ~string](name string, required bool, values ...T) params.Field {
	oneOf := make([]string, len(values))
	for i := range values {
		oneOf[i] = string(values[i])
	}
	return params.Field{Name: name, Required: required, Kind: params.KindEnum, OneOf: oneOf}
}

// isolatedField is the margin isIsolated flag which the exchange expects
// as TRUE or FALSE
func isolatedField() params.Field {
	return enumField("isIsolated", false, "TRUE", "FALSE")
}

func upperBool(b bool) string {
	return strings.ToUpper(formatBool(b))
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
