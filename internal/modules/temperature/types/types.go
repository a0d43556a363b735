package types

// Reading is one recorded temperature in degrees Celsius.
type Reading float64

// Summary holds the statistics computed over a set of readings.
type Summary struct {
	Count   int
	Average float64
	Min     float64
	Max     float64
}

type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}
