package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SkyCoord is a celestial position in ICRS decimal degrees.
type SkyCoord struct {
	// RA is the right ascension in degrees [0, 360).
	RA float64

	// Dec is the declination in degrees [-90, +90].
	Dec float64
}

// String renders the coordinate as "RA Dec" in decimal degrees.
func (c SkyCoord) String() string {
	return fmt.Sprintf("%.6f %+.6f", c.RA, c.Dec)
}

// ParseSkyCoord parses a decimal-degree coordinate pair such as
// "10.6847 +41.2687" or "10.6847,41.2687". It does not resolve object
// names; name resolution is a delegation concern.
func ParseSkyCoord(s string) (SkyCoord, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	var parts []string
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) != 2 {
		return SkyCoord{}, fmt.Errorf("parsing coordinate %q: want \"ra dec\" in degrees", s)
	}

	ra, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return SkyCoord{}, fmt.Errorf("parsing right ascension %q: %w", parts[0], err)
	}
	dec, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return SkyCoord{}, fmt.Errorf("parsing declination %q: %w", parts[1], err)
	}

	if ra < 0 || ra >= 360 {
		return SkyCoord{}, fmt.Errorf("right ascension %v out of range [0, 360)", ra)
	}
	if dec < -90 || dec > 90 {
		return SkyCoord{}, fmt.Errorf("declination %v out of range [-90, 90]", dec)
	}

	return SkyCoord{RA: ra, Dec: dec}, nil
}

// AngleUnit is a supported angular unit.
type AngleUnit string

// Supported angular units.
const (
	Degrees AngleUnit = "deg"
	Arcmin  AngleUnit = "arcmin"
	Arcsec  AngleUnit = "arcsec"
)

// Angle is an angular quantity with an explicit unit.
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// Degrees returns the angle converted to decimal degrees.
func (a Angle) Degrees() float64 {
	switch a.Unit {
	case Arcmin:
		return a.Value / 60
	case Arcsec:
		return a.Value / 3600
	default:
		return a.Value
	}
}

// Arcseconds returns the angle converted to arcseconds.
func (a Angle) Arcseconds() float64 {
	return a.Degrees() * 3600
}

// IsZero reports whether the angle carries no magnitude.
func (a Angle) IsZero() bool {
	return a.Value == 0
}

// String renders the angle as "value unit", e.g. "2 arcmin".
func (a Angle) String() string {
	unit := a.Unit
	if unit == "" {
		unit = Degrees
	}
	return fmt.Sprintf("%g %s", a.Value, unit)
}

// unitAliases maps accepted spellings to canonical units.
var unitAliases = map[string]AngleUnit{
	"deg":     Degrees,
	"degree":  Degrees,
	"degrees": Degrees,
	"arcmin":  Arcmin,
	"amin":    Arcmin,
	"'":       Arcmin,
	"arcsec":  Arcsec,
	"asec":    Arcsec,
	"\"":      Arcsec,
}

// ParseAngle parses an angular quantity such as "2 arcmin", "0.5deg"
// or "30 arcsec". A bare number is taken as degrees.
func ParseAngle(s string) (Angle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Angle{}, fmt.Errorf("parsing angle: empty string")
	}

	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			i++
			continue
		}
		break
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return Angle{}, fmt.Errorf("parsing angle %q: %w", s, err)
	}
	if value < 0 {
		return Angle{}, fmt.Errorf("angle %q must not be negative", s)
	}

	unitStr := strings.ToLower(strings.TrimSpace(s[i:]))
	if unitStr == "" {
		return Angle{Value: value, Unit: Degrees}, nil
	}
	unit, ok := unitAliases[unitStr]
	if !ok {
		return Angle{}, fmt.Errorf("parsing angle %q: unknown unit %q", s, unitStr)
	}
	return Angle{Value: value, Unit: unit}, nil
}
