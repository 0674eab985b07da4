package constellation

import "strings"

// CountryCode returns the two or three letter country/region code tied to
// this constellation, for example "US" for GPS or "EU" for Galileo. The
// second return is false for tags that are not tied to a single nation or
// region, such as the generic SBAS tag and Mixed.
func (c Constellation) CountryCode() (string, bool) {
	switch c {
	case GPS, WAAS:
		return "US", true
	case Glonass, SDCM:
		return "RU", true
	case BeiDou, BDSBAS:
		return "CH", true
	case QZSS, MSAS:
		return "JP", true
	case Galileo, EGNOS:
		return "EU", true
	case IRNSS, GAGAN:
		return "IN", true
	case KASS:
		return "KR", true
	case ASBAS:
		return "SA", true
	case GBAS:
		return "UK", true
	case NSAS:
		return "NI", true
	case ASAL:
		return "AL", true
	case SPAN, AusNZ:
		return "AUS/NZ", true
	}
	return "", false
}

// FromCountryCode identifies the core constellation operated by a country,
// matching case-insensitively on the code prefix: "US" or "USA" yields GPS,
// "EU" or "Europe" yields Galileo, and so on. The second return is false for
// unrecognized codes.
func FromCountryCode(code string) (Constellation, bool) {
	lowered := strings.ToLower(code)
	switch {
	case strings.HasPrefix(lowered, "us"):
		return GPS, true
	case strings.HasPrefix(lowered, "eu"):
		return Galileo, true
	case strings.HasPrefix(lowered, "ch"):
		return BeiDou, true
	case strings.HasPrefix(lowered, "ru"):
		return Glonass, true
	case strings.HasPrefix(lowered, "jp"), strings.HasPrefix(lowered, "jap"):
		return QZSS, true
	case strings.HasPrefix(lowered, "in"):
		return IRNSS, true
	}
	return 0, false
}

// SBASFromCountryCode identifies the augmentation system operated by a
// country, matching case-insensitively on the code prefix: "US" yields WAAS,
// "EU" yields EGNOS, "KR" or "Korea" yields KASS, "AUS", "New-Zealand" or
// "NZ" yields SPAN. The second return is false for unrecognized codes.
func SBASFromCountryCode(code string) (Constellation, bool) {
	lowered := strings.ToLower(code)
	switch {
	case strings.HasPrefix(lowered, "us"):
		return WAAS, true
	case strings.HasPrefix(lowered, "eu"):
		return EGNOS, true
	case strings.HasPrefix(lowered, "ch"):
		return BDSBAS, true
	case strings.HasPrefix(lowered, "ru"):
		return SDCM, true
	case strings.HasPrefix(lowered, "jp"), strings.HasPrefix(lowered, "jap"):
		return MSAS, true
	case strings.HasPrefix(lowered, "in"):
		return GAGAN, true
	case strings.HasPrefix(lowered, "uk"):
		return GBAS, true
	case strings.HasPrefix(lowered, "south-af"):
		return ASBAS, true
	case strings.HasPrefix(lowered, "sa"):
		return ASBAS, true
	case strings.HasPrefix(lowered, "kr"), strings.HasPrefix(lowered, "kor"):
		return KASS, true
	case strings.HasPrefix(lowered, "aus"):
		return SPAN, true
	case strings.HasPrefix(lowered, "new-zea"), strings.HasPrefix(lowered, "nz"):
		return SPAN, true
	}
	return 0, false
}
