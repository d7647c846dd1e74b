package audit

import "go.uber.org/zap"

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Record(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit record failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event, auditing must never stall the API
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
