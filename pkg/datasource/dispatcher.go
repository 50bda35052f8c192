package datasource

import (
	"github.com/twam/circular-buffer/pkg/bus"
)

// CreateTickDispatcher builds a pump callback for bus.Router.ExecLoop
// that feeds the router one tick per invocation.
func CreateTickDispatcher(r *bus.Router, ds TickSource) func() error {
	return func() error {
		tick, err := ds.GetNext()
		if err != nil {
			return err
		}
		return r.Post(bus.TickEvent, tick)
	}
}
