// Package narr provides read access to NCEP North American Regional
// Reanalysis (NARR) NetCDF files: pressure-level triplets (uwnd/vwnd/hgt,
// 4-D [time, level, lat, lon]) and monolevel triplets (uwnd/vwnd/dpt,
// 3-D [time, lat, lon]).
package narr

import (
	"fmt"
	"math"

	"github.com/fhs/go-netcdf/netcdf"

	"github.com/narrmaps/narr-maps/internal/adapter/interp"
	"github.com/narrmaps/narr-maps/internal/domain"
)

// Dataset is an open NARR NetCDF file. Close must be called when done;
// callers are expected to defer it immediately after Open so failed lookups
// cannot leak the handle.
type Dataset struct {
	path string
	nc   netcdf.Dataset
}

// Open opens a NARR NetCDF file read-only.
func Open(path string) (*Dataset, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file %s: %w", path, err)
	}
	return &Dataset{path: path, nc: nc}, nil
}

// Close releases the underlying file handle.
func (d *Dataset) Close() error {
	return d.nc.Close()
}

// Path returns the file path the dataset was opened from.
func (d *Dataset) Path() string {
	return d.path
}

// Axis reads a 1-D coordinate variable as float64 regardless of on-disk type.
func (d *Dataset) Axis(name string) ([]float64, error) {
	v, err := d.nc.Var(name)
	if err != nil {
		return nil, fmt.Errorf("%s: coordinate variable %q not found: %w", d.path, name, err)
	}
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get dimensions of %q: %w", d.path, name, err)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("%s: coordinate variable %q is %dD, expected 1D", d.path, name, len(dims))
	}
	length, err := dims[0].Len()
	if err != nil {
		return nil, err
	}

	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get type of %q: %w", d.path, name, err)
	}
	switch t {
	case netcdf.DOUBLE:
		data := make([]float64, length)
		if err := v.ReadFloat64s(data); err != nil {
			return nil, err
		}
		return data, nil
	case netcdf.FLOAT:
		tmp := make([]float32, length)
		if err := v.ReadFloat32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, length)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	case netcdf.INT:
		tmp := make([]int32, length)
		if err := v.ReadInt32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, length)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	case netcdf.SHORT:
		tmp := make([]int16, length)
		if err := v.ReadInt16s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, length)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %v for coordinate %q", d.path, t, name)
	}
}

// TimeAxis reads and decodes the time coordinate (hours since 1800-01-01).
func (d *Dataset) TimeAxis() (*domain.TimeAxis, error) {
	hours, err := d.Axis("time")
	if err != nil {
		return nil, err
	}
	return domain.NewTimeAxis(hours), nil
}

// LevelAxis reads the pressure-level coordinate of a pressure-level file.
func (d *Dataset) LevelAxis() (*domain.LevelAxis, error) {
	levels, err := d.Axis("level")
	if err != nil {
		return nil, err
	}
	return domain.NewLevelAxis(levels), nil
}

// Plane extracts the 2-D (lat, lon) slice of the named data variable at the
// given leading indices: Plane(name, t) for 3-D variables, Plane(name, t, l)
// for 4-D ones. Packed values are unpacked via the scale_factor/add_offset
// attributes and fill values become NaN. A descending latitude axis is
// normalized to ascending along with the rows, so the result always
// satisfies interp.Grid2D.Validate.
func (d *Dataset) Plane(name string, idx ...int) (*interp.Grid2D, error) {
	lat, err := d.Axis("lat")
	if err != nil {
		return nil, err
	}
	lon, err := d.Axis("lon")
	if err != nil {
		return nil, err
	}

	v, err := d.nc.Var(name)
	if err != nil {
		return nil, fmt.Errorf("%s: data variable %q not found: %w", d.path, name, err)
	}
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get dimensions of %q: %w", d.path, name, err)
	}
	if len(dims) != len(idx)+2 {
		return nil, fmt.Errorf("%s: variable %q is %dD, expected %dD", d.path, name, len(dims), len(idx)+2)
	}
	for k, i := range idx {
		n, err := dims[k].Len()
		if err != nil {
			return nil, err
		}
		if i < 0 || uint64(i) >= n {
			return nil, fmt.Errorf("%s: index %d out of range for dimension %d of %q (size %d)", d.path, i, k, name, n)
		}
	}

	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get type of %q: %w", d.path, name, err)
	}

	scale, offset := packing(v)
	fill, hasFill := fillValue(v)

	// Element-at-a-time hyperslab read.
	// TODO: read the whole plane with a single nc_get_vara call once
	// go-netcdf exposes slice reads.
	pos := make([]uint64, len(dims))
	for k, i := range idx {
		pos[k] = uint64(i)
	}
	values := make([][]float64, len(lat))
	for i := range lat {
		row := make([]float64, len(lon))
		pos[len(idx)] = uint64(i)
		for j := range lon {
			pos[len(idx)+1] = uint64(j)
			raw, err := readAt(v, t, pos)
			if err != nil {
				return nil, fmt.Errorf("%s: failed to read %q at %v: %w", d.path, name, pos, err)
			}
			if hasFill && raw == fill {
				row[j] = math.NaN()
				continue
			}
			row[j] = raw*scale + offset
		}
		values[i] = row
	}

	// NARR stores latitude north-to-south in some products.
	if len(lat) > 1 && lat[0] > lat[len(lat)-1] {
		reverse(lat)
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
	}

	grid := &interp.Grid2D{X: lon, Y: lat, Values: values}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("%s: invalid grid for %q: %w", d.path, name, err)
	}
	return grid, nil
}

// readAt reads a single element of v at pos, converting to float64.
func readAt(v netcdf.Var, t netcdf.Type, pos []uint64) (float64, error) {
	switch t {
	case netcdf.DOUBLE:
		return v.ReadFloat64At(pos)
	case netcdf.FLOAT:
		val, err := v.ReadFloat32At(pos)
		return float64(val), err
	case netcdf.INT:
		val, err := v.ReadInt32At(pos)
		return float64(val), err
	case netcdf.SHORT:
		val, err := v.ReadInt16At(pos)
		return float64(val), err
	default:
		return 0, fmt.Errorf("unsupported data type: %v", t)
	}
}

// packing returns the scale_factor and add_offset attributes, defaulting to
// the identity transform when absent. NARR data variables are packed shorts.
func packing(v netcdf.Var) (scale, offset float64) {
	scale, offset = 1, 0
	if val, ok := attrFloat(v, "scale_factor"); ok {
		scale = val
	}
	if val, ok := attrFloat(v, "add_offset"); ok {
		offset = val
	}
	return scale, offset
}

// fillValue returns the _FillValue or missing_value attribute if present.
func fillValue(v netcdf.Var) (float64, bool) {
	for _, name := range []string{"_FillValue", "missing_value"} {
		if val, ok := attrFloat(v, name); ok {
			return val, true
		}
	}
	return 0, false
}

// attrFloat reads a scalar numeric attribute as float64.
func attrFloat(v netcdf.Var, name string) (float64, bool) {
	a := v.Attr(name)
	n, err := a.Len()
	if err != nil || n == 0 {
		return 0, false
	}
	buf64 := make([]float64, 1)
	if err := a.ReadFloat64s(buf64); err == nil {
		return buf64[0], true
	}
	buf32 := make([]float32, 1)
	if err := a.ReadFloat32s(buf32); err == nil {
		return float64(buf32[0]), true
	}
	bufi := make([]int32, 1)
	if err := a.ReadInt32s(bufi); err == nil {
		return float64(bufi[0]), true
	}
	bufs := make([]int16, 1)
	if err := a.ReadInt16s(bufs); err == nil {
		return float64(bufs[0]), true
	}
	return 0, false
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
