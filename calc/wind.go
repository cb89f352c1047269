// Package calc は風向風速とベクトル成分 (u, v) の相互変換、
// およびスネルの法則による屈折角の計算を行う。
package calc

import (
	"math"
)

//--------------------------------------
// 風速風向計算
//--------------------------------------

// 無風 (u = v = 0) のときの風向
const CalmDirection = 270.0

// 16方位の名称 (北から時計回り)
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// 風速 speed と風向 direction[°] から東西成分 u と南北成分 v を計算する。
// 風向は風が吹いてくる方位 (北=0°, 時計回り) なので、成分は風下を向く。
// direction が [0, 360) の範囲外の場合は正規化した値で計算し、警告を返す。
func WindComponents(speed float64, direction float64) (u float64, v float64, warn *DirectionWarning) {
	dir, wrapped := normalizeDegree(direction)
	if wrapped {
		warn = warn.add(0, direction)
		logDirectionWarning(warn)
	}
	u, v = windComponents(speed, dir)
	return u, v, warn
}

// 東西成分 u と南北成分 v から風速を計算する
func WindSpeed(u float64, v float64) float64 {
	return windSpeed(u, v)
}

// 東西成分 u と南北成分 v から風向[°]を [0, 360) で計算する。
// 無風の場合は CalmDirection を返す。
func WindDirection(u float64, v float64) float64 {
	return windDirection(u, v)
}

// ベクトル風速 u (東西のベクトル成分), v (南北のベクトル成分) から
// 16方位に丸めた風向 dir16 と、その方位へ投影した風速 spd16 を計算する
func Wind16(u float64, v float64) (spd16 float64, dir16 float64) {
	spd := windSpeed(u, v)
	dir := windDirection(u, v)

	// 16方位への丸め処理
	dir16 = math.Round(dir/22.5) * 22.5
	gap := math.Abs(dir16 - dir)
	spd16 = math.Cos(degreeToRad(gap)) * spd

	if dir16 >= 360 {
		dir16 = 0
	}
	return spd16, dir16
}

// 風向 direction[°] に最も近い16方位の名称を返す
func CompassPoint(direction float64) string {
	dir, _ := normalizeDegree(direction)
	if math.IsNaN(dir) {
		return ""
	}
	return compassPoints[int(math.Round(dir/22.5))%16]
}

// 以下はスカラー・配列・行列で共通の要素ごとの計算式

func windComponents(speed float64, dir float64) (float64, float64) {
	rad := degreeToRad(dir)
	return -speed * math.Sin(rad), -speed * math.Cos(rad)
}

func windSpeed(u float64, v float64) float64 {
	return math.Hypot(u, v)
}

func windDirection(u float64, v float64) float64 {
	if u == 0 && v == 0 {
		return CalmDirection
	}
	dir, _ := normalizeDegree(90 - radToDegree(math.Atan2(-v, -u)))
	return dir
}
