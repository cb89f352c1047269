package main

import (
	"fmt"
	"io"

	"github.com/mhearne-usgs/hugs-mike/calc"
)

// 風向の正規化の警告はログのほか stderr にも出力する
func runComponents(speed []float64, direction []float64, stderr io.Writer) (*calc.WindTable, error) {
	u, v, warn, err := calc.WindComponentsSlice(speed, direction)
	if err != nil {
		return nil, err
	}
	if warn != nil {
		fmt.Fprintln(stderr, "Warning:", warn.String())
	}
	return &calc.WindTable{U: u, V: v}, nil
}

func runSpeed(u []float64, v []float64) (*calc.WindTable, error) {
	spd, err := calc.WindSpeedSlice(u, v)
	if err != nil {
		return nil, err
	}
	return &calc.WindTable{Speed: spd}, nil
}

func runDirection(u []float64, v []float64) (*calc.WindTable, error) {
	dir, err := calc.WindDirectionSlice(u, v)
	if err != nil {
		return nil, err
	}
	return &calc.WindTable{Direction: dir}, nil
}

func runWind16(u []float64, v []float64) (*calc.WindTable, error) {
	// 形状の検査と出力の長さは風速の計算に合わせる
	spd, err := calc.WindSpeedSlice(u, v)
	if err != nil {
		return nil, err
	}
	n := len(spd)

	table := &calc.WindTable{
		Speed:     make([]float64, n),
		Direction: make([]float64, n),
		Compass:   make([]string, n),
	}
	for i := 0; i < n; i++ {
		spd16, dir16 := calc.Wind16(pick(u, i), pick(v, i))
		table.Speed[i] = spd16
		table.Direction[i] = dir16
		table.Compass[i] = calc.CompassPoint(dir16)
	}
	return table, nil
}

func runSnell(incident []float64, vTop float64, vBottom float64) (*calc.WindTable, error) {
	angles, err := calc.SnellAngles(incident, vTop, vBottom)
	if err != nil {
		return nil, err
	}
	return &calc.WindTable{Incident: incident, Refracted: angles}, nil
}

// 長さ1の配列は繰り返して使う
func pick(s []float64, i int) float64 {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}
