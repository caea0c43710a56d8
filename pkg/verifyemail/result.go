package verifyemail

// Result is the outcome of verifying a signed URL.
type Result int

const (
	ResultInvalid Result = iota
	ResultValid
	ResultExpired
)

func (r Result) String() string {
	switch r {
	case ResultValid:
		return "valid"
	case ResultExpired:
		return "expired"
	default:
		return "invalid"
	}
}
