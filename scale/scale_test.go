package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRadians_NegativePiClampsToPositivePi(t *testing.T) {
	n := NormalizeRadians(-math.Pi)
	require.InDelta(t, math.Pi, n, 1e-9)
}

func TestEncodeAngle13Bit_NegativePiClampsTo4094(t *testing.T) {
	v := EncodeAngle13Bit(-math.Pi)
	require.EqualValues(t, 4094, v)
}

func TestAngle13Bit_RoundTrip(t *testing.T) {
	r := 1.2345
	v := EncodeAngle13Bit(r)
	got := DecodeAngle13Bit(v)
	require.InDelta(t, r, got, 1e-3)
}

func TestAngularVelocity_SaturatesAtFourPi(t *testing.T) {
	raw := EncodeAngularVelocityComponent(4*math.Pi, AngularVelocityScale)
	require.InDelta(t, 2047, raw, 1.0)

	got := DecodeAngularVelocityComponent(2047, AngularVelocityScale)
	require.InDelta(t, 4*math.Pi, got, 0.01)
}

func TestECEFToLLA_RoundTrip(t *testing.T) {
	lla := LLA{LatRad: 52.0 * math.Pi / 180, LonRad: 5.0 * math.Pi / 180, AltMeters: 1000}
	ecef := LLAToECEF(lla)
	got := ECEFToLLA(ecef)

	require.InDelta(t, lla.LatRad, got.LatRad, 1e-9)
	require.InDelta(t, lla.LonRad, got.LonRad, 1e-9)
	require.InDelta(t, lla.AltMeters, got.AltMeters, 1e-3)
}

func TestWorldCoordinates_OriginSentinelRoundTrip(t *testing.T) {
	lat, lon, alt, units := EncodeWorldCoordinates(ECEF{})
	require.EqualValues(t, 0, lat)
	require.EqualValues(t, 0, lon)
	require.Equal(t, CenterOfEarthAltitude, alt)
	require.Equal(t, AltitudeDekameters, units)

	got := DecodeWorldCoordinates(lat, lon, alt, units)
	require.Equal(t, ECEF{}, got)
}

func TestWorldCoordinates_RoundTripWithinOneMeter(t *testing.T) {
	lla := LLA{LatRad: 52.0 * math.Pi / 180, LonRad: 5.0 * math.Pi / 180, AltMeters: 1000}
	ecef := LLAToECEF(lla)

	lat, lon, alt, units := EncodeWorldCoordinates(ecef)
	got := DecodeWorldCoordinates(lat, lon, alt, units)

	dx, dy, dz := got.X-ecef.X, got.Y-ecef.Y, got.Z-ecef.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	require.Less(t, dist, 1.0)
}

func TestEntityCoordinateVector_PicksCentimetersWhenInRange(t *testing.T) {
	vx, vy, vz, units := EncodeEntityCoordinateVector(1.0, -2.0, 3.0)
	require.Equal(t, EntityCoordinateCentimeters, units)
	require.EqualValues(t, 100, vx)
	require.EqualValues(t, -200, vy)
	require.EqualValues(t, 300, vz)

	mx, my, mz := DecodeEntityCoordinateVector(vx, vy, vz, units)
	require.InDelta(t, 1.0, mx, 1e-9)
	require.InDelta(t, -2.0, my, 1e-9)
	require.InDelta(t, 3.0, mz, 1e-9)
}

func TestEntityCoordinateVector_FallsBackToMetersAndSaturates(t *testing.T) {
	_, _, _, units := EncodeEntityCoordinateVector(1000.0, 0, 0)
	require.Equal(t, EntityCoordinateMeters, units)

	vx, _, _, units := EncodeEntityCoordinateVector(1e9, 0, 0)
	require.Equal(t, EntityCoordinateMeters, units)
	require.EqualValues(t, math.MaxInt16, vx)
}

func TestTimestamp_PackUnpack(t *testing.T) {
	raw := EncodeTimestamp(12345, true)
	units, absolute := DecodeTimestamp(raw)
	require.EqualValues(t, 12345, units)
	require.True(t, absolute)

	raw = EncodeTimestamp(999, false)
	units, absolute = DecodeTimestamp(raw)
	require.EqualValues(t, 999, units)
	require.False(t, absolute)
}

func TestRescaleTimeUnits_RoundTripApprox(t *testing.T) {
	disUnits := uint32(DISTimeUnitsPerHour / 2)
	cdisUnits := RescaleDISToCDISTimeUnits(disUnits)
	back := RescaleCDISToDISTimeUnits(cdisUnits)

	require.InDelta(t, float64(disUnits), float64(back), float64(DISTimeUnitsPerHour)/float64(CDISTimeUnitsPerHour)+1)
}
