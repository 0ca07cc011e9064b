package fontweight

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// Name records that may carry a weight word, in lookup order.
var weightNameIDs = []sfnt.NameID{
	sfnt.NameIDSubfamily,
	sfnt.NameIDTypographicSubfamily,
	sfnt.NameIDFull,
	sfnt.NameIDPostScript,
	sfnt.NameIDFamily,
	sfnt.NameIDTypographicFamily,
}

var compressedMagic = [][]byte{[]byte("wOFF"), []byte("wOF2")}

func (e *implExtractor) Inspect(ctx context.Context, path string) ([]Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	for _, magic := range compressedMagic {
		if bytes.HasPrefix(data, magic) {
			return nil, fmt.Errorf("%s: %w (WOFF)", filepath.Base(path), ErrUnsupportedFormat)
		}
	}

	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	offsets, err := fontOffsets(data)
	if err != nil {
		return nil, fmt.Errorf("read table directory: %w", err)
	}
	if len(offsets) != coll.NumFonts() {
		return nil, fmt.Errorf("read table directory: %d offsets for %d fonts", len(offsets), coll.NumFonts())
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	faces := make([]Face, 0, coll.NumFonts())
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			return nil, fmt.Errorf("font %d: %w", i, err)
		}
		tables, err := tableDirectory(data, offsets[i])
		if err != nil {
			return nil, fmt.Errorf("font %d: %w", i, err)
		}

		face, err := e.inspectFace(ctx, f, tables)
		if err != nil {
			return nil, fmt.Errorf("font %d: %w", i, err)
		}
		face.Path = path
		face.Index = i

		if face.Weight == 0 {
			if w, ok := WeightFromName(stem); ok {
				face.Weight = w
			}
		}
		faces = append(faces, face)
	}

	return faces, nil
}

func (e *implExtractor) inspectFace(ctx context.Context, f *sfnt.Font, tables map[string][]byte) (Face, error) {
	face := Face{
		Family:    firstName(f, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily),
		Subfamily: firstName(f, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily),
	}

	if table, ok := tables[tagOS2]; ok {
		w, err := parseOS2Weight(table)
		if err != nil {
			return Face{}, err
		}
		face.OS2Weight = w
	}

	for _, id := range weightNameIDs {
		name, err := f.Name(nil, id)
		if err != nil || name == "" {
			continue
		}
		if w, ok := WeightFromName(name); ok {
			face.NameWeight = w
			break
		}
	}

	face.Weight = face.OS2Weight
	if face.Weight == 0 {
		face.Weight = face.NameWeight
	} else if face.NameWeight != 0 && face.NameWeight != face.OS2Weight {
		e.logger.Warn(ctx, "Weight mismatch in %s %s: name suggests %d, OS/2 says %d",
			face.Family, face.Subfamily, face.NameWeight, face.OS2Weight)
	}

	if table, ok := tables[tagFvar]; ok {
		axes, instances, err := parseFvar(table)
		if err != nil {
			return Face{}, err
		}
		face.Axes = axes
		for _, inst := range instances {
			name, err := f.Name(nil, sfnt.NameID(inst.SubfamilyNameID))
			if err != nil || strings.TrimSpace(name) == "" {
				name = WeightName(int(inst.Coordinates[tagWeightAxis]))
			}
			face.Instances = append(face.Instances, Instance{
				Name:        strings.TrimSpace(name),
				Coordinates: inst.Coordinates,
			})
		}
	}

	return face, nil
}

func firstName(f *sfnt.Font, ids ...sfnt.NameID) string {
	for _, id := range ids {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			return name
		}
	}
	return ""
}
