package record

import (
	"fmt"

	"github.com/rob-gra/cdis-codec/bitio"
	"github.com/rob-gra/cdis-codec/varint"
)

// BeamData is the fundamental parameter data record attached to an IFF
// layer: effective radiated power, frequency, pulse repetition and
// sweep characteristics, each a CdisFloat.
type BeamData struct {
	ERPDb                    varint.Float
	Frequency                varint.Float
	PulseRepetitionFrequency varint.Float
	PulseWidth               varint.Float
	AzimuthCenter            varint.Float
	AzimuthSweep             varint.Float
	ElevationCenter          varint.Float
	ElevationSweep           varint.Float
	SweepSync                varint.Float
}

func beamFields(b *BeamData) [9]*varint.Float {
	return [9]*varint.Float{
		&b.ERPDb, &b.Frequency, &b.PulseRepetitionFrequency, &b.PulseWidth,
		&b.AzimuthCenter, &b.AzimuthSweep, &b.ElevationCenter, &b.ElevationSweep, &b.SweepSync,
	}
}

// BitLength is the sum of the nine CdisFloat fields' fixed widths.
func (BeamData) BitLength() int {
	return 9 * (varint.ParameterValueFloat.MantissaBits + varint.ParameterValueFloat.ExponentBits)
}

// Encode writes the nine fields in struct-declaration order.
func (b BeamData) Encode(c *bitio.Cursor) error {
	fields := beamFields(&b)
	for i, f := range fields {
		if err := varint.ParameterValueFloat.Encode(c, *f); err != nil {
			return fmt.Errorf("record: beam data field %d: %w", i, err)
		}
	}
	return nil
}

// DecodeBeamData reads a BeamData record.
func DecodeBeamData(c *bitio.Cursor) (BeamData, error) {
	var b BeamData
	fields := beamFields(&b)
	for i, f := range fields {
		v, err := varint.ParameterValueFloat.Decode(c)
		if err != nil {
			return BeamData{}, fmt.Errorf("record: beam data field %d: %w", i, err)
		}
		*f = v
	}
	return b, nil
}
