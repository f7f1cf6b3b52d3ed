package events

import (
	"context"
	"encoding/json"
	"log"

	"sunsmart/globals"
	"sunsmart/rdx"
)

// Event kinds published on the portal channel.
const (
	KindTicketCreated  = "ticket-created"
	KindTicketAdvanced = "ticket-advanced"
	KindOrderPlaced    = "order-placed"
	KindActivity       = "activity"
)

const channel = "portal-events"

// Event is one lifecycle notification fanned out to live dashboards.
type Event struct {
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload,omitempty"`
}

// Sink receives serialized events. The websocket hub implements this.
type Sink interface {
	Deliver(data []byte)
}

var localSink Sink

// SetSink installs the local fan-out target used when Redis is unavailable
// and by the subscription worker.
func SetSink(s Sink) {
	localSink = s
}

// Emit publishes an event to Redis so every process instance can fan it out.
// With Redis down or unconfigured it degrades to direct local delivery;
// event loss is acceptable, a failed emit never fails the caller.
func Emit(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Println("event marshal:", err)
		return
	}

	if rdx.Conn != nil {
		err := rdx.Conn.Publish(globals.Ctx, channel, data).Err()
		if err == nil {
			return
		}
		log.Println("event publish:", err)
	}

	if localSink != nil {
		localSink.Deliver(data)
	}
}

// StartWorker subscribes to the portal channel and forwards events to the
// local sink. Runs until ctx is cancelled; no-op without Redis.
func StartWorker(ctx context.Context) {
	if rdx.Conn == nil {
		return
	}
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[events] listening on", channel)
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if localSink != nil {
					localSink.Deliver([]byte(msg.Payload))
				}
			}
		}
	}()
}
