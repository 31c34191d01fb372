package driver

// Stage identifies where a file is in the check pipeline.
type Stage uint8

const (
	StageParse Stage = iota
	StageLower
)

// Status qualifies a stage notification.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification. File-less events describe the run
// as a whole.
type Event struct {
	Path   string
	Stage  Stage
	Status Status
}

// EventSink receives progress events. Implementations must be safe for
// concurrent calls when used with CheckDir.
type EventSink func(Event)

func (opts CheckOptions) emit(ev Event) {
	if opts.Events != nil {
		opts.Events(ev)
	}
}
