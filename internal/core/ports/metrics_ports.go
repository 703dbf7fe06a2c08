package ports

type MetricsRecorder interface {
	RoomCreated()
	RoomClosed(responses int)
	PollSubmitted(droppedRefs int)
	CatalogSeeded(items int)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) RoomCreated()      {}
func (NopMetrics) RoomClosed(int)    {}
func (NopMetrics) PollSubmitted(int) {}
func (NopMetrics) CatalogSeeded(int) {}
