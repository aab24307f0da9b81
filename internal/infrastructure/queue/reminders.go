package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/skyline-bms/apartment-portal/internal/api/metrics"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// ReminderDispatcher routes bill-reminder jobs to a fixed set of workers
// using consistent hashing on the apartment number, so one apartment's
// reminders are always delivered in order.
type ReminderDispatcher struct {
	workers []chan ports.ReminderInput
	service ports.ReminderService
	log     zerolog.Logger
}

// NewReminderDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewReminderDispatcher(numWorkers int, service ports.ReminderService, log zerolog.Logger) *ReminderDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ReminderDispatcher{
		workers: make([]chan ports.ReminderInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReminderInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ReminderDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a reminder to the worker responsible for its apartment.
// Non-blocking up to channelBuffer capacity.
func (d *ReminderDispatcher) Enqueue(input ports.ReminderInput) {
	idx := d.shardIndex(input.ApartmentNumber)
	d.workers[idx] <- input
	metrics.RemindersQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple reminders preserving per-apartment ordering.
func (d *ReminderDispatcher) EnqueueBatch(inputs []ports.ReminderInput) {
	for _, in := range inputs {
		d.Enqueue(in)
	}
}

// shardIndex maps an apartment number deterministically to a worker index.
func (d *ReminderDispatcher) shardIndex(apartmentNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(apartmentNumber))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ReminderDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReminderInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			metrics.RemindersQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, input); err != nil {
				metrics.RemindersProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("bill_number", input.BillNumber).
					Int("worker_id", id).
					Msg("reminder processing failed")
				continue
			}
			metrics.RemindersProcessedTotal.WithLabelValues("ok").Inc()
		}
	}
}
