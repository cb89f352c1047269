package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WindSpeed(t *testing.T) {
	// ピタゴラス数
	assert.Equal(t, 5.0, WindSpeed(-3, -4))
	assert.Equal(t, 0.0, WindSpeed(0, 0))

	for _, u := range []float64{-12.5, -1, 0, 0.3, 7} {
		for _, v := range []float64{-8, -0.2, 0, 2, 30.1} {
			assert.InDelta(t, math.Sqrt(u*u+v*v), WindSpeed(u, v), 1e-4)
		}
	}
}

func Test_WindDirection(t *testing.T) {
	assert.InDelta(t, 270.0, WindDirection(4, 0), 1e-4)
	assert.InDelta(t, 225.0, WindDirection(2, 2), 1e-4)
	assert.InDelta(t, 180.0, WindDirection(0, 4), 1e-4)
	assert.InDelta(t, 90.0, WindDirection(-4, 0), 1e-4)
	assert.InDelta(t, 0.0, WindDirection(0, -4), 1e-4)

	// 無風の場合は270°
	assert.Equal(t, CalmDirection, WindDirection(0, 0))
	assert.Equal(t, 270.0, WindDirection(math.Copysign(0, -1), math.Copysign(0, -1)))
}

func Test_WindComponents(t *testing.T) {
	u, v, warn := WindComponents(100, 90)
	assert.Nil(t, warn)
	assert.InDelta(t, -100.0, u, 1e-10)
	assert.InDelta(t, 0.0, v, 1e-10)

	u, v, warn = WindComponents(200, 0)
	assert.Nil(t, warn)
	assert.InDelta(t, 0.0, u, 1e-10)
	assert.InDelta(t, -200.0, v, 1e-10)

	// 風速0は成分も0
	u, v, _ = WindComponents(0, 123)
	assert.Equal(t, 0.0, math.Abs(u))
	assert.Equal(t, 0.0, math.Abs(v))
}

// 範囲外の風向は正規化して計算し、警告を返す
func Test_WindComponents_Wrapped(t *testing.T) {
	u, v, warn := WindComponents(100, 375)
	require.NotNil(t, warn)
	assert.Equal(t, []int{0}, warn.Indices)
	assert.Equal(t, []float64{375}, warn.Values)
	assert.Contains(t, warn.String(), "375")

	u15, v15, warn15 := WindComponents(100, 15)
	assert.Nil(t, warn15)
	assert.InDelta(t, u15, u, 1e-10)
	assert.InDelta(t, v15, v, 1e-10)
	assert.InDelta(t, -25.881904, u, 1e-6)
	assert.InDelta(t, -96.592583, v, 1e-6)

	// 負の風向
	u, v, warn = WindComponents(10, -90)
	require.NotNil(t, warn)
	assert.InDelta(t, 10.0, u, 1e-10)
	assert.InDelta(t, 0.0, v, 1e-10)

	// 360 は範囲外
	_, _, warn = WindComponents(10, 360)
	assert.NotNil(t, warn)

	// 負の風速は警告の対象外
	u, v, warn = WindComponents(-10, 90)
	assert.Nil(t, warn)
	assert.InDelta(t, 10.0, u, 1e-10)
	assert.InDelta(t, 0.0, v, 1e-10)
}

// 風向風速 -> u, v -> 風向 で元の風向に戻ることを確認
func Test_WindComponents_RoundTrip(t *testing.T) {
	for _, spd := range []float64{0.5, 1, 10, 100} {
		for dir := 0.0; dir < 360; dir += 7.5 {
			u, v, warn := WindComponents(spd, dir)
			assert.Nil(t, warn)
			assert.InDelta(t, dir, WindDirection(u, v), 1e-9, "speed=%g dir=%g", spd, dir)
			assert.InDelta(t, spd, WindSpeed(u, v), 1e-9, "speed=%g dir=%g", spd, dir)
		}
	}

	// 無風は規約値になる
	u, v, _ := WindComponents(0, 45)
	assert.Equal(t, CalmDirection, WindDirection(u, v))
}

func Test_normalizeDegree(t *testing.T) {
	cases := []struct {
		in      float64
		want    float64
		wrapped bool
	}{
		{0, 0, false},
		{359.9, 359.9, false},
		{360, 0, true},
		{375, 15, true},
		{720, 0, true},
		{-30, 330, true},
		{-390, 330, true},
		{-1e-20, 0, true},
	}
	for _, c := range cases {
		got, wrapped := normalizeDegree(c.in)
		assert.InDelta(t, c.want, got, 1e-9, "in=%g", c.in)
		assert.Equal(t, c.wrapped, wrapped, "in=%g", c.in)
	}

	got, wrapped := normalizeDegree(math.NaN())
	assert.True(t, math.IsNaN(got))
	assert.False(t, wrapped)
}

func Test_Wind16(t *testing.T) {
	spd, dir := Wind16(1.0, 1.0)
	assert.InDelta(t, 1.4141456, spd, 0.0001)
	assert.Equal(t, 180.0+45.0, dir)

	// 丸めた方位へ投影するため風速は元の風速以下になる
	spd, dir = Wind16(-1, -0.01)
	assert.Equal(t, 90.0, dir)
	assert.Less(t, spd, WindSpeed(-1, -0.01))
	assert.InDelta(t, 1.0, spd, 1e-3)

	// 北寄りの風は 360 ではなく 0
	_, dir = Wind16(0.01, -1)
	assert.Equal(t, 0.0, dir)

	// 無風
	spd, dir = Wind16(0, 0)
	assert.Equal(t, 0.0, spd)
	assert.Equal(t, 270.0, dir)
}

func Test_CompassPoint(t *testing.T) {
	assert.Equal(t, "N", CompassPoint(0))
	assert.Equal(t, "NNE", CompassPoint(22.5))
	assert.Equal(t, "E", CompassPoint(95))
	assert.Equal(t, "SW", CompassPoint(225))
	assert.Equal(t, "W", CompassPoint(270))
	assert.Equal(t, "W", CompassPoint(-90))
	assert.Equal(t, "NNW", CompassPoint(337.5))
	assert.Equal(t, "N", CompassPoint(359))
	assert.Equal(t, "", CompassPoint(math.NaN()))
}
