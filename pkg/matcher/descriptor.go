package matcher

// Descriptor pairs a stable issue code with its default message.
type Descriptor struct {
	Code    string
	Message string
}

// Issue descriptors reported by DecimalNumber.
var (
	InvalidDecimalNumber = Descriptor{
		Code:    "doubleNumber.e001",
		Message: "The value is not a valid decimal number.",
	}
	ExceededDigits = Descriptor{
		Code:    "doubleNumber.e002",
		Message: "The value exceeded maximum number of digits.",
	}
	ExceededDecimalPlaces = Descriptor{
		Code:    "doubleNumber.e003",
		Message: "The value exceeded maximum number of decimal places.",
	}
)

// Descriptors returns every descriptor known to this package in code order.
func Descriptors() []Descriptor {
	return []Descriptor{InvalidDecimalNumber, ExceededDigits, ExceededDecimalPlaces}
}

// Matcher is a single reusable validation rule for one optional string value.
type Matcher interface {
	Match(value *string) Result
}
