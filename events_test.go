package lightyear

import (
	"testing"

	"github.com/akmonengine/lightyear/galaxy"
	"github.com/go-gl/mathgl/mgl64"
)

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	for _, e := range ec.events {
		if e.Type() == eventType {
			return true
		}
	}
	return false
}

func TestEvents_SubscribeAndFlush(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(ORIGIN_SHIFT, capture.capture)

	events.emit(OriginShiftEvent{
		Old:   mgl64.Vec3{0, 0, 0},
		New:   mgl64.Vec3{60_000, 0, 0},
		Delta: mgl64.Vec3{60_000, 0, 0},
	})

	// Nothing is delivered before flush
	if capture.count() != 0 {
		t.Errorf("events delivered before flush: %d", capture.count())
	}

	events.flush()
	if capture.count() != 1 {
		t.Fatalf("delivered = %d, want 1", capture.count())
	}

	shift, ok := capture.events[0].(OriginShiftEvent)
	if !ok {
		t.Fatalf("event type = %T, want OriginShiftEvent", capture.events[0])
	}
	if shift.Delta != (mgl64.Vec3{60_000, 0, 0}) {
		t.Errorf("Delta = %v, want (60000,0,0)", shift.Delta)
	}

	// Buffer is cleared by flush
	events.flush()
	if capture.count() != 1 {
		t.Errorf("flush re-delivered events: %d", capture.count())
	}
}

func TestEvents_ListenersFilteredByType(t *testing.T) {
	events := NewEvents()
	shifts := &eventCapture{}
	sectors := &eventCapture{}
	events.Subscribe(ORIGIN_SHIFT, shifts.capture)
	events.Subscribe(SECTOR_CHANGE, sectors.capture)

	events.emit(OriginShiftEvent{Delta: mgl64.Vec3{1, 0, 0}})
	events.emit(SectorChangeEvent{New: galaxy.Sector{X: 1}})
	events.emit(PrecisionWarningEvent{Magnitude: 2e9, Budget: 1e9})
	events.flush()

	if shifts.count() != 1 || !shifts.hasEventType(ORIGIN_SHIFT) {
		t.Errorf("shift listener got %d events", shifts.count())
	}
	if sectors.count() != 1 || !sectors.hasEventType(SECTOR_CHANGE) {
		t.Errorf("sector listener got %d events", sectors.count())
	}
}
