package calc

import "math"

//--------------------------------------
// 角度の変換・正規化
//--------------------------------------

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// 角度 deg を [0, 360) に丸める
// 範囲外だった場合は wrapped=true を返す (NaN は範囲外とみなさない)
func normalizeDegree(deg float64) (norm float64, wrapped bool) {
	if deg >= 0 && deg < 360 {
		return deg, false
	}
	if math.IsNaN(deg) {
		return deg, false
	}

	norm = math.Mod(deg, 360)
	if norm < 0 {
		norm += 360
	}
	// -1e-15 + 360 のような丸め誤差で 360 になる場合
	if norm >= 360 {
		norm = 0
	}
	return norm, true
}
