package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/namecleaner/internal/model"
)

const parquetReadBatch = 256

// ReadParquet loads a flat Parquet file. Every leaf value is read as its
// string form and nulls become "".
func ReadParquet(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	var cols []string
	for _, leaf := range pf.Schema().Columns() {
		if len(leaf) != 1 {
			return nil, fmt.Errorf("nested parquet column %q is not supported", strings.Join(leaf, "."))
		}
		cols = append(cols, leaf[0])
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	t := &model.Table{Columns: cols}
	buf := make([]parquet.Row, parquetReadBatch)
	for {
		n, readErr := reader.ReadRows(buf)
		for _, row := range buf[:n] {
			out := make([]string, len(cols))
			for _, v := range row {
				if v.IsNull() {
					continue
				}
				out[v.Column()] = valueString(v)
			}
			t.Rows = append(t.Rows, out)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}
	return t, nil
}

// WriteParquet writes t with one required string column per table column,
// in table order.
func WriteParquet(path string, t *model.Table) error {
	schema, err := parquetSchema(t.Columns)
	if err != nil {
		return err
	}

	leaf := make(map[string]int, len(t.Columns))
	for i, p := range schema.Columns() {
		leaf[p[0]] = i
	}

	rows := make([]parquet.Row, len(t.Rows))
	for i, rec := range t.Rows {
		row := make(parquet.Row, len(t.Columns))
		for j, c := range t.Columns {
			idx := leaf[c]
			row[idx] = parquet.ValueOf(rec[j]).Level(0, 0, idx)
		}
		rows[i] = row
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	w := parquet.NewWriter(f, schema)
	if _, err := w.WriteRows(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush parquet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close parquet file: %w", err)
	}
	return nil
}

// parquetSchema derives a schema from a struct type with one string field per
// column, which keeps column order. Names a struct tag cannot carry fall back
// to a parquet.Group, whose fields are ordered by name.
func parquetSchema(cols []string) (*parquet.Schema, error) {
	seen := make(map[string]bool, len(cols))
	ordered := true
	for _, c := range cols {
		if seen[c] {
			return nil, fmt.Errorf("duplicate column %q cannot be written to parquet", c)
		}
		seen[c] = true
		if c == "" || c == "-" || strings.Contains(c, ",") {
			ordered = false
		}
	}

	if !ordered {
		group := parquet.Group{}
		for _, c := range cols {
			group[c] = parquet.String()
		}
		return parquet.NewSchema("companies", group), nil
	}

	fields := make([]reflect.StructField, len(cols))
	for i, c := range cols {
		fields[i] = reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: reflect.TypeOf(""),
			Tag:  reflect.StructTag(`parquet:` + strconv.Quote(c)),
		}
	}
	return parquet.SchemaOf(reflect.Zero(reflect.StructOf(fields)).Interface()), nil
}

// valueString renders a leaf value as text. Byte arrays are copied because
// they may alias the reader's page buffers.
func valueString(v parquet.Value) string {
	switch v.Kind() {
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
