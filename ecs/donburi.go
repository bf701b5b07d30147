// Package ecs provides ECS adapters for touchkit.
package ecs

import (
	"github.com/stackjustify/touchkit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SwipeEventType carries one event per dispatched swipe. A touch produces at
// most one event: Action is ActionDelete for a leftward swipe and ActionCopy
// for a rightward one, and the line's own Delete or Copy has already run by
// the time the event is queued. Line identifies the row the touch started on;
// it is the value the Resolver returned and may no longer be in the list.
var SwipeEventType = events.NewEventType[touchkit.SwipeEvent]()

// swipePublisher queues recognizer dispatches on a world.
type swipePublisher struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink for Recognizer.SetEventSink. Events
// are queued, not delivered: systems see them on the next
// SwipeEventType.ProcessEvents (or events.ProcessAllEvents), typically once
// per frame after input has been polled.
func NewDonburiSink(world donburi.World) touchkit.EventSink {
	return &swipePublisher{world: world}
}

func (p *swipePublisher) EmitSwipe(event touchkit.SwipeEvent) {
	SwipeEventType.Publish(p.world, event)
}
