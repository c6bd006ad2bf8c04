package buttons

import "encoding/binary"

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc   = 1
	key1     = 2
	key9     = 10
	keyF4    = 62
	keyHome  = 102
	keyLeft  = 105
	keyRight = 106

	keyPressed = 1
)

// decodeInputEvents parses a buffer of Linux input_event records. tvSize is
// the size of struct timeval on the running arch. Trailing partial records
// are ignored.
func decodeInputEvents(buf []byte, tvSize int) []Event {
	eventSize := tvSize + 2 + 2 + 4
	var events []Event
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != keyPressed {
			continue
		}
		if ev, ok := keyEvent(code); ok {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(code uint16) (Event, bool) {
	switch {
	case code == keyRight:
		return Event{Kind: Next}, true
	case code == keyLeft:
		return Event{Kind: Previous}, true
	case code == keyHome:
		return Event{Kind: Jump}, true
	case code >= key1 && code <= key9:
		return Event{Kind: Goto, Frame: int(code - key1)}, true
	case code == keyF4 || code == keyEsc:
		return Event{Kind: Exit}, true
	}
	return Event{}, false
}
