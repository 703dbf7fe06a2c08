package metrics

import (
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "snackelf"

// Recorder publishes room and poll events as prometheus metrics.
type Recorder struct {
	roomsCreated     prometheus.Counter
	roomsClosed      prometheus.Counter
	responses        prometheus.Counter
	droppedFoodRefs  prometheus.Counter
	catalogItems     prometheus.Counter
	responsesPerRoom prometheus.Histogram
}

var _ ports.MetricsRecorder = (*Recorder)(nil)

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		roomsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_created_total",
			Help:      "Number of rooms created.",
		}),
		roomsClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_closed_total",
			Help:      "Number of rooms closed.",
		}),
		responses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_responses_total",
			Help:      "Number of poll responses recorded.",
		}),
		droppedFoodRefs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_dropped_food_refs_total",
			Help:      "Food ids in submissions that did not match a catalog item.",
		}),
		catalogItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_items_seeded_total",
			Help:      "Number of food items inserted by catalog seeding.",
		}),
		responsesPerRoom: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "room_responses",
			Help:      "Number of poll responses aggregated when a room closes.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
	}

	reg.MustRegister(
		r.roomsCreated,
		r.roomsClosed,
		r.responses,
		r.droppedFoodRefs,
		r.catalogItems,
		r.responsesPerRoom,
	)
	return r
}

func (r *Recorder) RoomCreated() {
	r.roomsCreated.Inc()
}

func (r *Recorder) RoomClosed(responses int) {
	r.roomsClosed.Inc()
	r.responsesPerRoom.Observe(float64(responses))
}

func (r *Recorder) PollSubmitted(droppedRefs int) {
	r.responses.Inc()
	r.droppedFoodRefs.Add(float64(droppedRefs))
}

func (r *Recorder) CatalogSeeded(items int) {
	r.catalogItems.Add(float64(items))
}
