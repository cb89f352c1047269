package calc

import (
	"bytes"
	"fmt"
	"strconv"
)

// 出力用の表。nil の列は出力しない。
type WindTable struct {
	U         []float64 // 東西成分
	V         []float64 // 南北成分
	Speed     []float64 // 風速
	Direction []float64 // 風向[°]
	Compass   []string  // 16方位の名称
	Incident  []float64 // 入射角[°]
	Refracted []float64 // 屈折角[°]
}

type column struct {
	name   string
	length int
	value  func(i int, prec int) string
}

func floatColumn(name string, data []float64) column {
	return column{name, len(data), func(i int, prec int) string {
		return strconv.FormatFloat(data[i], 'f', prec, 64)
	}}
}

func (t *WindTable) columns() []column {
	cols := []column{}
	if t.U != nil {
		cols = append(cols, floatColumn("u", t.U))
	}
	if t.V != nil {
		cols = append(cols, floatColumn("v", t.V))
	}
	if t.Speed != nil {
		cols = append(cols, floatColumn("w_spd", t.Speed))
	}
	if t.Direction != nil {
		cols = append(cols, floatColumn("w_dir", t.Direction))
	}
	if t.Compass != nil {
		compass := t.Compass
		cols = append(cols, column{"compass", len(compass), func(i int, _ int) string {
			return compass[i]
		}})
	}
	if t.Incident != nil {
		cols = append(cols, floatColumn("incident", t.Incident))
	}
	if t.Refracted != nil {
		cols = append(cols, floatColumn("refracted", t.Refracted))
	}
	return cols
}

// CSV形式
// prec は小数点以下の桁数 (-1 で最短表現)
func (t *WindTable) ToCSV(buf *bytes.Buffer, prec int, header bool) error {
	cols := t.columns()
	if len(cols) == 0 {
		return nil
	}

	rows := cols[0].length
	for _, c := range cols[1:] {
		if c.length != rows {
			return fmt.Errorf("%w: column %s has %d rows, want %d", ErrShapeMismatch, c.name, c.length, rows)
		}
	}

	if header {
		for k, c := range cols {
			if k > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(c.name)
		}
		buf.WriteString("\n")
	}

	for i := 0; i < rows; i++ {
		for k, c := range cols {
			if k > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(c.value(i, prec))
		}
		buf.WriteString("\n")
	}
	return nil
}
