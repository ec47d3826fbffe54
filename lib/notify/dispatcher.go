package notify

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Provider publishes workflow events. Publish never blocks on delivery and never reports it.
type Provider interface {
	Publish(event Event)
}

// Channel delivers events to one destination (email, chat, stream).
type Channel interface {
	Name() string
	Send(ctx context.Context, event Event) error
}

type Dispatcher struct {
	mu      sync.RWMutex
	routes  map[EventType][]Channel
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		routes:  map[EventType][]Channel{},
		timeout: timeout,
	}
}

func (d *Dispatcher) Register(eventType EventType, channel Channel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.routes[eventType] = append(d.routes[eventType], channel)
}

func (d *Dispatcher) Publish(event Event) {
	d.mu.RLock()
	channels := append([]Channel(nil), d.routes[event.Type]...)
	d.mu.RUnlock()

	if len(channels) == 0 {
		log.WithField("event_type", event.Type).Debug("no notification channels registered")
		return
	}
	for _, channel := range channels {
		d.wg.Add(1)
		go d.deliver(channel, event)
	}
}

// Wait blocks until every delivery started so far has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(channel Channel, event Event) {
	defer d.wg.Done()
	logger := log.
		WithField("channel", channel.Name()).
		WithField("event_type", event.Type).
		WithField("campaign_id", event.CampaignID)
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	if err := channel.Send(ctx, event); err != nil {
		logger.WithError(err).Error("notification delivery failed")
		return
	}
	logger.Info("notification delivered")
}
