package fontweight

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var errShortData = errors.New("truncated font data")

const (
	tagCollection = "ttcf"
	tagOS2        = "OS/2"
	tagFvar       = "fvar"
	tagWeightAxis = "wght"
)

// Axis is one fvar variation axis.
type Axis struct {
	Tag     string
	Min     float64
	Default float64
	Max     float64
}

// NamedInstance is one fvar predefined instance.
type NamedInstance struct {
	SubfamilyNameID uint16
	Coordinates     map[string]float64
}

// fontOffsets returns the offset of every table directory in data: one for a
// plain font, one per member for a collection.
func fontOffsets(data []byte) ([]uint32, error) {
	if len(data) < 12 {
		return nil, errShortData
	}
	if string(data[:4]) != tagCollection {
		return []uint32{0}, nil
	}

	numFonts := binary.BigEndian.Uint32(data[8:12])
	if uint64(len(data)) < 12+uint64(numFonts)*4 {
		return nil, errShortData
	}

	offsets := make([]uint32, numFonts)
	for i := range offsets {
		offsets[i] = binary.BigEndian.Uint32(data[12+i*4:])
	}
	return offsets, nil
}

// tableDirectory maps table tags to their bytes for the font at offset.
func tableDirectory(data []byte, offset uint32) (map[string][]byte, error) {
	if uint64(len(data)) < uint64(offset)+12 {
		return nil, errShortData
	}
	numTables := int(binary.BigEndian.Uint16(data[offset+4:]))

	tables := make(map[string][]byte, numTables)
	for i := 0; i < numTables; i++ {
		rec := uint64(offset) + 12 + uint64(i)*16
		if uint64(len(data)) < rec+16 {
			return nil, errShortData
		}
		tag := string(data[rec : rec+4])
		start := uint64(binary.BigEndian.Uint32(data[rec+8:]))
		length := uint64(binary.BigEndian.Uint32(data[rec+12:]))
		if uint64(len(data)) < start+length {
			return nil, fmt.Errorf("table %q: %w", tag, errShortData)
		}
		tables[tag] = data[start : start+length]
	}
	return tables, nil
}

// parseOS2Weight reads usWeightClass.
func parseOS2Weight(table []byte) (int, error) {
	if len(table) < 6 {
		return 0, fmt.Errorf("OS/2: %w", errShortData)
	}
	return int(binary.BigEndian.Uint16(table[4:6])), nil
}

// parseFvar reads axes and named instances.
func parseFvar(table []byte) ([]Axis, []NamedInstance, error) {
	if len(table) < 16 {
		return nil, nil, fmt.Errorf("fvar: %w", errShortData)
	}

	axesOffset := int(binary.BigEndian.Uint16(table[4:]))
	axisCount := int(binary.BigEndian.Uint16(table[8:]))
	axisSize := int(binary.BigEndian.Uint16(table[10:]))
	instanceCount := int(binary.BigEndian.Uint16(table[12:]))
	instanceSize := int(binary.BigEndian.Uint16(table[14:]))

	if axisSize < 20 || instanceSize < 4+axisCount*4 {
		return nil, nil, fmt.Errorf("fvar: bad record sizes %d/%d", axisSize, instanceSize)
	}
	end := axesOffset + axisCount*axisSize + instanceCount*instanceSize
	if len(table) < end {
		return nil, nil, fmt.Errorf("fvar: %w", errShortData)
	}

	axes := make([]Axis, axisCount)
	for i := range axes {
		rec := table[axesOffset+i*axisSize:]
		axes[i] = Axis{
			Tag:     string(rec[:4]),
			Min:     fixed(rec[4:]),
			Default: fixed(rec[8:]),
			Max:     fixed(rec[12:]),
		}
	}

	instancesOffset := axesOffset + axisCount*axisSize
	instances := make([]NamedInstance, instanceCount)
	for i := range instances {
		rec := table[instancesOffset+i*instanceSize:]
		inst := NamedInstance{
			SubfamilyNameID: binary.BigEndian.Uint16(rec),
			Coordinates:     make(map[string]float64, axisCount),
		}
		for j, axis := range axes {
			inst.Coordinates[axis.Tag] = fixed(rec[4+j*4:])
		}
		instances[i] = inst
	}

	return axes, instances, nil
}

// fixed decodes a 16.16 signed fixed-point number.
func fixed(b []byte) float64 {
	return float64(int32(binary.BigEndian.Uint32(b))) / 65536
}
