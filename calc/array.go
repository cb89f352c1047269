package calc

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//--------------------------------------
// 配列・行列に対する要素ごとの計算
//--------------------------------------

// ErrShapeMismatch は組で渡した配列の形状が一致しない場合のエラー
var ErrShapeMismatch = errors.New("shape mismatch")

// 2つの配列の長さから出力の長さを決める。
// 長さ1の配列は相手の長さに合わせて繰り返す (numpy のブロードキャストと同じ)。
func broadcastLen(a, b []float64) (int, error) {
	switch {
	case len(a) == len(b):
		return len(a), nil
	case len(a) == 1:
		return len(b), nil
	case len(b) == 1:
		return len(a), nil
	}
	return 0, fmt.Errorf("%w: len %d and len %d", ErrShapeMismatch, len(a), len(b))
}

func at(s []float64, i int) float64 {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}

// 風速 speed と風向 direction の配列から u, v の配列を計算する。
// 範囲外の風向があった場合は、その位置をすべて含む警告を返す。
func WindComponentsSlice(speed []float64, direction []float64) (u []float64, v []float64, warn *DirectionWarning, err error) {
	n, err := broadcastLen(speed, direction)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wind components: %w", err)
	}

	// 警告の位置は入力 direction の添字 (ブロードキャストした風向は1回だけ)
	dirs := make([]float64, len(direction))
	for i, d := range direction {
		dir, wrapped := normalizeDegree(d)
		if wrapped {
			warn = warn.add(i, d)
		}
		dirs[i] = dir
	}

	u = make([]float64, n)
	v = make([]float64, n)
	for i := 0; i < n; i++ {
		u[i], v[i] = windComponents(at(speed, i), at(dirs, i))
	}
	logDirectionWarning(warn)

	return u, v, warn, nil
}

// u, v の配列から風速の配列を計算する
func WindSpeedSlice(u []float64, v []float64) ([]float64, error) {
	n, err := broadcastLen(u, v)
	if err != nil {
		return nil, fmt.Errorf("wind speed: %w", err)
	}
	spd := make([]float64, n)
	for i := 0; i < n; i++ {
		spd[i] = windSpeed(at(u, i), at(v, i))
	}
	return spd, nil
}

// u, v の配列から風向の配列を計算する
func WindDirectionSlice(u []float64, v []float64) ([]float64, error) {
	n, err := broadcastLen(u, v)
	if err != nil {
		return nil, fmt.Errorf("wind direction: %w", err)
	}
	dir := make([]float64, n)
	for i := 0; i < n; i++ {
		dir[i] = windDirection(at(u, i), at(v, i))
	}
	return dir, nil
}

// 2つの行列の形状が一致することを確認する
func sameDims(a, b mat.Matrix) (r int, c int, err error) {
	r, c = a.Dims()
	br, bc := b.Dims()
	if r != br || c != bc {
		return 0, 0, fmt.Errorf("%w: %dx%d and %dx%d", ErrShapeMismatch, r, c, br, bc)
	}
	return r, c, nil
}

// 格子状の風速 speed と風向 direction から u, v の行列を計算する。
// 警告の位置は行優先で平坦化した添字。
func WindComponentsDense(speed mat.Matrix, direction mat.Matrix) (u *mat.Dense, v *mat.Dense, warn *DirectionWarning, err error) {
	r, c, err := sameDims(speed, direction)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wind components: %w", err)
	}
	if r == 0 || c == 0 {
		return &mat.Dense{}, &mat.Dense{}, nil, nil
	}

	dirs := mat.NewDense(r, c, nil)
	dirs.Apply(func(i, j int, d float64) float64 {
		dir, wrapped := normalizeDegree(d)
		if wrapped {
			warn = warn.add(i*c+j, d)
		}
		return dir
	}, direction)
	logDirectionWarning(warn)

	u = mat.NewDense(r, c, nil)
	v = mat.NewDense(r, c, nil)
	u.Apply(func(i, j int, s float64) float64 {
		x, _ := windComponents(s, dirs.At(i, j))
		return x
	}, speed)
	v.Apply(func(i, j int, s float64) float64 {
		_, y := windComponents(s, dirs.At(i, j))
		return y
	}, speed)

	return u, v, warn, nil
}

// 格子状の u, v から風速の行列を計算する
func WindSpeedDense(u mat.Matrix, v mat.Matrix) (*mat.Dense, error) {
	r, c, err := sameDims(u, v)
	if err != nil {
		return nil, fmt.Errorf("wind speed: %w", err)
	}
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}
	spd := mat.NewDense(r, c, nil)
	spd.Apply(func(i, j int, x float64) float64 {
		return windSpeed(x, v.At(i, j))
	}, u)
	return spd, nil
}

// 格子状の u, v から風向の行列を計算する
func WindDirectionDense(u mat.Matrix, v mat.Matrix) (*mat.Dense, error) {
	r, c, err := sameDims(u, v)
	if err != nil {
		return nil, fmt.Errorf("wind direction: %w", err)
	}
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}
	dir := mat.NewDense(r, c, nil)
	dir.Apply(func(i, j int, x float64) float64 {
		return windDirection(x, v.At(i, j))
	}, u)
	return dir, nil
}
