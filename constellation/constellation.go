// Package constellation identifies GNSS constellations and geostationary
// augmentation (SBAS) service providers, and converts between their textual
// representations.
package constellation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a string matches no known constellation.
var ErrUnknown = errors.New("unknown constellation")

// Constellation is a closed enumeration of GNSS systems, geostationary
// augmentation service providers, and the Mixed sentinel used by datasets
// that span several systems.
type Constellation uint8

const (
	// GPS is the American constellation.
	GPS Constellation = iota

	// Glonass is the Russian constellation.
	Glonass

	// BeiDou is the Chinese constellation. It contains IGSO, GEO and
	// standard orbits; the BDSBAS augmentation is defined separately.
	BeiDou

	// QZSS is the Japanese constellation.
	QZSS

	// Galileo is the European constellation.
	Galileo

	// IRNSS is the Indian constellation, renamed "NavIC".
	IRNSS

	// WAAS is the American augmentation system.
	WAAS

	// EGNOS is the European augmentation system.
	EGNOS

	// MSAS is the Japanese augmentation system.
	MSAS

	// GAGAN is the Indian augmentation system.
	GAGAN

	// BDSBAS is the Chinese augmentation system.
	BDSBAS

	// KASS is the South Korean augmentation system.
	KASS

	// SDCM is the Russian augmentation system.
	SDCM

	// ASBAS is the South African augmentation system.
	ASBAS

	// SPAN is the Australian / New Zealand augmentation system.
	SPAN

	// SBAS describes a generic or still unidentified augmentation system.
	SBAS

	// AusNZ is the Australian / New Zealand geoscience service.
	AusNZ

	// GBAS is the UK augmentation system.
	GBAS

	// NSAS is the Nigerian augmentation system.
	NSAS

	// ASAL is the Algerian augmentation system.
	ASAL

	// Mixed describes products or datasets that contain several
	// constellations.
	Mixed
)

// IsSBAS reports whether c is an augmentation system, including the generic
// SBAS tag.
func (c Constellation) IsSBAS() bool {
	switch c {
	case WAAS, KASS, BDSBAS, EGNOS, GAGAN, SDCM, ASBAS, SPAN,
		MSAS, NSAS, ASAL, AusNZ, SBAS, GBAS:
		return true
	}
	return false
}

// IsMixed reports whether c is the Mixed sentinel.
func (c Constellation) IsMixed() bool {
	return c == Mixed
}

// String formats the constellation full name along its country code,
// for example "GPS (US)" or "Glonass (RU)". The generic SBAS tag has no
// country parenthetical. Any output here parses back through Parse.
func (c Constellation) String() string {
	switch c {
	case GPS:
		return "GPS (US)"
	case Glonass:
		return "Glonass (RU)"
	case BeiDou:
		return "BeiDou (CH)"
	case QZSS:
		return "QZSS (JP)"
	case Galileo:
		return "Galileo (EU)"
	case IRNSS:
		return "IRNSS (IN)"
	case WAAS:
		return "WAAS (US)"
	case EGNOS:
		return "EGNOS (EU)"
	case MSAS:
		return "MSAS (JP)"
	case GAGAN:
		return "GAGAN (IN)"
	case BDSBAS:
		return "BDSBAS (CH)"
	case KASS:
		return "KASS (KR)"
	case SDCM:
		return "SDCM (RU)"
	case ASBAS:
		return "ASBAS (SA)"
	case SPAN:
		return "SPAN (AUS)"
	case SBAS:
		return "SBAS"
	case AusNZ:
		return "AUS/NZ (AUS)"
	case GBAS:
		return "GBAS (UK)"
	case NSAS:
		return "NSAS (NI)"
	case ASAL:
		return "ASAL (AL)"
	default:
		return "MIXED"
	}
}

// Acronym formats the constellation short code without the country code,
// for example "GPS", "GLO", "BDS", or "MIX" for Mixed. Any output here
// parses back through Parse.
func (c Constellation) Acronym() string {
	switch c {
	case GPS:
		return "GPS"
	case Glonass:
		return "GLO"
	case BeiDou:
		return "BDS"
	case QZSS:
		return "QZSS"
	case Galileo:
		return "GAL"
	case IRNSS:
		return "IRNSS"
	case WAAS:
		return "WAAS"
	case EGNOS:
		return "EGNOS"
	case MSAS:
		return "MSAS"
	case GAGAN:
		return "GAGAN"
	case BDSBAS:
		return "BDSBAS"
	case KASS:
		return "KASS"
	case SDCM:
		return "SDCM"
	case ASBAS:
		return "ASBAS"
	case SPAN:
		return "SPAN"
	case SBAS:
		return "SBAS"
	case AusNZ:
		return "AUS/NZ"
	case GBAS:
		return "GBAS"
	case NSAS:
		return "NSAS"
	case ASAL:
		return "ASAL"
	default:
		return "MIX"
	}
}

// Letter formats the constellation as the standard single-letter file naming
// code: 'G', 'R', 'E', 'C', 'J', 'I' for the core systems, 'S' for every
// augmentation system, and 'M' for Mixed. The collapse of every augmentation
// provider to 'S' is lossy on purpose: parsing the letter back yields the
// generic SBAS tag, never the specific provider.
func (c Constellation) Letter() byte {
	switch c {
	case GPS:
		return 'G'
	case Glonass:
		return 'R'
	case Galileo:
		return 'E'
	case BeiDou:
		return 'C'
	case QZSS:
		return 'J'
	case IRNSS:
		return 'I'
	case Mixed:
		return 'M'
	default:
		return 'S'
	}
}

// acronyms maps exact short codes to their constellation. Checked after the
// single-letter codes and before the substring guesses.
var acronyms = map[string]Constellation{
	"gps":    GPS,
	"glo":    Glonass,
	"bds":    BeiDou,
	"qzss":   QZSS,
	"gal":    Galileo,
	"irnss":  IRNSS,
	"waas":   WAAS,
	"egnos":  EGNOS,
	"msas":   MSAS,
	"gagan":  GAGAN,
	"bdsbas": BDSBAS,
	"kass":   KASS,
	"sdcm":   SDCM,
	"asbas":  ASBAS,
	"span":   SPAN,
	"sbas":   SBAS,
	"ausnz":  AusNZ,
	"gbas":   GBAS,
	"nsas":   NSAS,
	"asal":   ASAL,
	"mixed":  Mixed,
}

// substringGuess holds the substring matches, evaluated in order: the first
// hit wins, so a string containing both "bdsbas" and "bds" still resolves
// deterministically. The order must not be shuffled.
var substringGuess = []struct {
	contains string
	c        Constellation
}{
	{"gps", GPS},
	{"glo", Glonass},
	{"glonass", Glonass},
	{"beidou", BeiDou},
	{"bdsbas", BDSBAS},
	{"bds", BeiDou},
	{"galileo", Galileo},
	{"qzss", QZSS},
	{"irnss", IRNSS},
	{"nav/ic", IRNSS},
	{"navic", IRNSS},
	{"span", SPAN},
	{"south-pan", SPAN},
	{"south pan", SPAN},
	{"aus/nz", AusNZ},
	{"australia", SPAN},
	{"new-zealand", SPAN},
	{"new zealand", SPAN},
	{"waas", WAAS},
	{"kass", KASS},
	{"egnos", EGNOS},
	{"gagan", GAGAN},
	{"gbas", GBAS},
	{"sdcm", SDCM},
	{"msas", MSAS},
	{"nsas", NSAS},
	{"asbas", ASBAS},
	{"asal", ASAL},
	{"gal", Galileo},
	{"mix", Mixed},
	{"sbas", SBAS},
	{"geo", SBAS},
}

// Parse identifies a constellation from text. Matching is case-insensitive
// and the input is trimmed. Resolution order, first match wins:
//
//  1. exact single-letter code ("G", "R", "E", "C", "J", "I", "S", "M"),
//  2. exact acronym ("GLO", "BDS", "WAAS", ...),
//  3. substring guess against a fixed priority list, which accepts full
//     names such as "Galileo (EU)".
//
// Parse returns ErrUnknown (wrapped with the offending input) when nothing
// matches.
func Parse(s string) (Constellation, error) {
	lowered := strings.ToLower(strings.TrimSpace(s))

	switch lowered {
	case "g":
		return GPS, nil
	case "c":
		return BeiDou, nil
	case "e":
		return Galileo, nil
	case "r":
		return Glonass, nil
	case "j":
		return QZSS, nil
	case "i":
		return IRNSS, nil
	case "s":
		return SBAS, nil
	case "m":
		return Mixed, nil
	}

	if c, ok := acronyms[lowered]; ok {
		return c, nil
	}

	for _, guess := range substringGuess {
		if strings.Contains(lowered, guess.contains) {
			return guess.c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknown, s)
}
