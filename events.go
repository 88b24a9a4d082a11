package lightyear

import (
	"github.com/akmonengine/lightyear/galaxy"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	ORIGIN_SHIFT EventType = iota
	SECTOR_CHANGE
	PRECISION_WARNING
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// OriginShiftEvent is published when the render origin is re-centered.
// Every consumer holding cached camera-relative values must re-derive them.
type OriginShiftEvent struct {
	Old   mgl64.Vec3
	New   mgl64.Vec3
	Delta mgl64.Vec3
}

func (e OriginShiftEvent) Type() EventType { return ORIGIN_SHIFT }

// SectorChangeEvent is published when the camera crosses into another galaxy
// sector
type SectorChangeEvent struct {
	Old galaxy.Sector
	New galaxy.Sector
}

func (e SectorChangeEvent) Type() EventType { return SECTOR_CHANGE }

// PrecisionWarningEvent is published when a camera-relative magnitude exceeds
// the configured precision budget. Diagnostic only; rendering continues.
type PrecisionWarningEvent struct {
	Magnitude float64
	Budget    float64
}

func (e PrecisionWarningEvent) Type() EventType { return PRECISION_WARNING }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 16),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// emit buffers an event for delivery at the next flush
func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
