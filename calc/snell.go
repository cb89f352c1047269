package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// スネルの法則による屈折角の計算
//--------------------------------------

var (
	// ErrZeroVelocity は伝播速度が0の場合のエラー
	ErrZeroVelocity = errors.New("velocity must not be zero")
	// ErrInvalidVelocity は伝播速度が負または有限でない場合のエラー
	ErrInvalidVelocity = errors.New("velocity must be positive and finite")
	// ErrInvalidAngle は入射角が有限でない場合のエラー
	ErrInvalidAngle = errors.New("incident angle must be finite")
	// ErrTotalInternalReflection は全反射により屈折角が存在しない場合のエラー
	ErrTotalInternalReflection = errors.New("total internal reflection: no real transmitted angle")
	// ErrNoCriticalAngle は下層の速度が上層以下で臨界角が存在しない場合のエラー
	ErrNoCriticalAngle = errors.New("no critical angle: bottom velocity must exceed top velocity")
)

// RefractionError は屈折角の計算に失敗したときの入力値と原因を保持する
type RefractionError struct {
	Incident float64 // 入射角[°]
	VTop     float64 // 上層の伝播速度
	VBottom  float64 // 下層の伝播速度
	Err      error
}

func (e *RefractionError) Error() string {
	return fmt.Sprintf("snell angle (incident=%g, vtop=%g, vbottom=%g): %v", e.Incident, e.VTop, e.VBottom, e.Err)
}

func (e *RefractionError) Unwrap() error {
	return e.Err
}

// 入射角 incident[°]、上層の速度 vTop、下層の速度 vBottom から
// スネルの法則 sin(t) = sin(incident) * vBottom / vTop により屈折角 t[°] を計算する。
// 全反射となる場合は ErrTotalInternalReflection を返す。
func SnellAngle(incident float64, vTop float64, vBottom float64) (float64, error) {
	if err := checkVelocities(vTop, vBottom); err != nil {
		return 0, refractionError(incident, vTop, vBottom, err)
	}
	if math.IsNaN(incident) || math.IsInf(incident, 0) {
		return 0, refractionError(incident, vTop, vBottom, ErrInvalidAngle)
	}

	sint := math.Sin(degreeToRad(incident)) * (vBottom / vTop)
	if sint > 1 || sint < -1 {
		return 0, refractionError(incident, vTop, vBottom, ErrTotalInternalReflection)
	}
	return radToDegree(math.Asin(sint)), nil
}

// 入射角の配列に対して屈折角を計算する。
// 1つでも計算できない要素があれば結果を返さずにエラーとする。
func SnellAngles(incident []float64, vTop float64, vBottom float64) ([]float64, error) {
	angles := make([]float64, len(incident))
	for i, a := range incident {
		t, err := SnellAngle(a, vTop, vBottom)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		angles[i] = t
	}
	return angles, nil
}

// 全反射が始まる臨界角[°] asin(vTop / vBottom) を計算する
func CriticalAngle(vTop float64, vBottom float64) (float64, error) {
	if err := checkVelocities(vTop, vBottom); err != nil {
		return 0, refractionError(math.NaN(), vTop, vBottom, err)
	}
	if vBottom <= vTop {
		return 0, refractionError(math.NaN(), vTop, vBottom, ErrNoCriticalAngle)
	}
	return radToDegree(math.Asin(vTop / vBottom)), nil
}

// 除算の前に速度を検査する
func checkVelocities(vTop float64, vBottom float64) error {
	for _, vel := range [...]float64{vTop, vBottom} {
		switch {
		case vel == 0:
			return ErrZeroVelocity
		case vel < 0, math.IsNaN(vel), math.IsInf(vel, 0):
			return ErrInvalidVelocity
		}
	}
	return nil
}

func refractionError(incident, vTop, vBottom float64, err error) error {
	e := &RefractionError{Incident: incident, VTop: vTop, VBottom: vBottom, Err: err}
	logging.GetLogger(LoggerName).Debugf("%s", e.Error())
	return e
}
