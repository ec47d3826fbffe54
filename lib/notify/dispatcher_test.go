package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"dashboard-approval-backend/models"
)

type recordingChannel struct {
	name   string
	err    error
	panics bool
	mu     sync.Mutex
	events []Event
}

func (c *recordingChannel) Name() string {
	return c.name
}

func (c *recordingChannel) Send(_ context.Context, event Event) error {
	if c.panics {
		panic("channel is broken")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return c.err
}

func testEvent() Event {
	return NewDashboardItemSubmitted("campaign-1", "user-1",
		[]models.EntityType{models.EntitySocials, models.EntityOwners},
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
}

func TestDispatcher(t *testing.T) {
	t.Run(`delivery check`, func(t *testing.T) {
		d := NewDispatcher(time.Second)
		ok := &recordingChannel{name: "ok"}
		failing := &recordingChannel{name: "failing", err: errors.New("smtp is down")}
		broken := &recordingChannel{name: "broken", panics: true}
		d.Register(EventDashboardItemSubmitted, ok)
		d.Register(EventDashboardItemSubmitted, failing)
		d.Register(EventDashboardItemSubmitted, broken)

		d.Publish(testEvent())
		d.Wait()

		require.Len(t, ok.events, 1)
		require.Equal(t, "campaign-1", ok.events[0].CampaignID)
		require.Len(t, failing.events, 1)
	})

	t.Run(`unrouted event check`, func(t *testing.T) {
		d := NewDispatcher(time.Second)
		other := &recordingChannel{name: "other"}
		d.Register(EventType("dashboard.item.approved"), other)
		d.Publish(testEvent())
		d.Wait()
		require.Len(t, other.events, 0)
	})

	t.Run(`event text check`, func(t *testing.T) {
		event := testEvent()
		require.Equal(t, "dashboard submitted for review", event.Subject())
		require.Equal(t, "Campaign campaign-1: dashboard submitted for review by user-1 at 2024-03-01T10:00:00Z (Socials, Owners)", event.Text())
	})

	t.Run(`slack channel check`, func(t *testing.T) {
		var received map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &received)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		channel := NewSlackChannel(server.URL, server.Client())
		require.Nil(t, channel.Send(context.Background(), testEvent()))
		require.Equal(t, testEvent().Text(), received["text"])

		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer failing.Close()
		require.NotNil(t, NewSlackChannel(failing.URL, nil).Send(context.Background(), testEvent()))
	})
}
