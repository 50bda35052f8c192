package bus

type EventId uint8

const (
	TickEvent EventId = iota
	OutlierEvent
	WindowEvent
)

func (id EventId) String() string {
	switch id {
	case TickEvent:
		return "tick"
	case OutlierEvent:
		return "outlier"
	case WindowEvent:
		return "window"
	default:
		return "unknown"
	}
}
