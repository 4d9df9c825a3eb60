package j1979

import "fmt"

// SID is a J1979 service identifier, the top-level operation code of
// an OBD request/response.
type SID byte

const (
	ServiceCurrentData     SID = 0x01
	ServiceFreezeFrameData SID = 0x02
	ServiceStoredDTCs      SID = 0x03
	ServiceVehicleInfo     SID = 0x09
	ServicePendingDTCs     SID = 0x07
	ServicePermanentDTCs   SID = 0x0A
)

func (s SID) String() string {
	switch s {
	case ServiceCurrentData:
		return "CurrentData"
	case ServiceFreezeFrameData:
		return "FreezeFrameData"
	case ServiceStoredDTCs:
		return "StoredDTCs"
	case ServicePendingDTCs:
		return "PendingDTCs"
	case ServicePermanentDTCs:
		return "PermanentDTCs"
	case ServiceVehicleInfo:
		return "VehicleInfo"
	default:
		return fmt.Sprintf("SID(0x%02X)", byte(s))
	}
}

// positiveResponse returns the byte an ECU prefixes its reply with
// when it answers SID s affirmatively: 0x40 + SID.
func (s SID) positiveResponse() byte {
	return 0x40 + byte(s)
}

// PID is an 8-bit parameter identifier scoped within a SID.
type PID byte

// rangeSelectors carries no data of its own; requesting one asks the
// ECU to report, as a 4-byte bitmap, which of the next 32 PIDs it
// supports.
var rangeSelectors = map[PID]bool{
	0x00: true, 0x20: true, 0x40: true, 0x60: true,
	0x80: true, 0xA0: true, 0xC0: true, 0xE0: true,
}

// isRangeSelector reports whether pid is one of the eight supported-PID
// range-selector values, which never advertise real data of their own
// and must never appear in a decoded supported-PID list.
func isRangeSelector(pid PID) bool {
	return rangeSelectors[pid]
}
