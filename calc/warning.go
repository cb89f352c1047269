package calc

import (
	"fmt"
	"strings"

	"github.com/hhkbp2/go-logging"
)

// LoggerName は計算モジュールが使用するロガー名
const LoggerName = "hugs"

// DirectionWarning は [0, 360) の範囲外の風向が正規化されたことを知らせる。
// エラーではなく、計算結果は正規化後の風向で求められている。
type DirectionWarning struct {
	Indices []int     // 正規化された要素の位置 (行列の場合は行優先で平坦化した位置)
	Values  []float64 // 正規化前の風向
}

func (w *DirectionWarning) add(index int, value float64) *DirectionWarning {
	if w == nil {
		w = &DirectionWarning{}
	}
	w.Indices = append(w.Indices, index)
	w.Values = append(w.Values, value)
	return w
}

func (w *DirectionWarning) String() string {
	if w == nil || len(w.Indices) == 0 {
		return ""
	}
	parts := make([]string, len(w.Indices))
	for i := range w.Indices {
		parts[i] = fmt.Sprintf("[%d]=%g", w.Indices[i], w.Values[i])
	}
	return fmt.Sprintf("wind direction outside [0, 360) was wrapped: %s", strings.Join(parts, ", "))
}

// 警告をロガーへ出力する
func logDirectionWarning(w *DirectionWarning) {
	if w == nil {
		return
	}
	logger := logging.GetLogger(LoggerName)
	logger.Warnf("%s", w.String())
}
