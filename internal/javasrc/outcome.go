package javasrc

// Outcome is the result of trying to instrument one method.
type Outcome int

const (
	OK Outcome = iota
	NotFound
	Unbounded
	SingleReturn
	TooShort
	AlreadyInstrumented
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case NotFound:
		return "not found"
	case Unbounded:
		return "unbalanced braces"
	case SingleReturn:
		return "single return statement"
	case TooShort:
		return "fewer than two statements"
	case AlreadyInstrumented:
		return "already instrumented"
	}
	return "unknown"
}
