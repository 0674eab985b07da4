package constellation

// Timescale is the time reference a constellation broadcasts against.
type Timescale uint8

const (
	// GPST is GPS time, also the nominal reference of every augmentation
	// system.
	GPST Timescale = iota

	// GST is Galileo system time.
	GST

	// BDT is BeiDou time.
	BDT

	// QZSST is QZSS time.
	QZSST

	// UTC is Coordinated Universal Time, used by Glonass.
	UTC
)

// String returns the conventional abbreviation of the timescale.
func (t Timescale) String() string {
	switch t {
	case GST:
		return "GST"
	case BDT:
		return "BDT"
	case QZSST:
		return "QZSST"
	case UTC:
		return "UTC"
	default:
		return "GPST"
	}
}

// Timescale returns the time reference this constellation is expressed
// against. Augmentation systems are referred to GPST. The second return is
// false when no timescale applies, which is the case for IRNSS and Mixed.
func (c Constellation) Timescale() (Timescale, bool) {
	switch c {
	case GPS:
		return GPST, true
	case QZSS:
		return QZSST, true
	case Galileo:
		return GST, true
	case BeiDou:
		return BDT, true
	case Glonass:
		return UTC, true
	}
	if c.IsSBAS() {
		return GPST, true
	}
	return 0, false
}
