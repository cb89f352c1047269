// Command hugs は風速・風向と東西/南北成分 (u, v) の相互変換、
// およびスネルの法則による屈折角の計算を行い、結果をCSVで出力する。
//
// 共通オプション (--log, -c, -o) はサブコマンドの後に指定する。
//
//	hugs components -s 100 -d 375 --log INFO -o wind.csv
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/mhearne-usgs/hugs-mike/calc"
	"github.com/mhearne-usgs/hugs-mike/internal/config"
)

// コマンドライン引数
type cli struct {
	parser *argparse.Parser

	logLevel   *string
	configPath *string
	filename   *string

	componentsCmd *argparse.Command
	compSpeed     *[]float64
	compDir       *[]float64

	speedCmd       *argparse.Command
	speedU, speedV *[]float64

	directionCmd *argparse.Command
	dirU, dirV   *[]float64

	wind16Cmd  *argparse.Command
	w16U, w16V *[]float64

	snellCmd *argparse.Command
	incident *[]float64
	vTop     *float64
	vBottom  *float64
}

func newCLI() *cli {
	c := &cli{}
	c.parser = argparse.NewParser("hugs",
		"Converts wind vectors and computes refraction angles (common options go after the sub-command)")

	c.logLevel = c.parser.Selector("", "log", config.LogLevels, &argparse.Options{
		Help: "ログレベルの設定 (設定ファイルより優先、サブコマンドの後に指定)"})

	c.configPath = c.parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "設定ファイル (YAML) のパス (サブコマンドの後に指定)"})

	c.filename = c.parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス (サブコマンドの後に指定)"})

	// 風速風向 -> u, v
	c.componentsCmd = c.parser.NewCommand("components", "風速と風向から東西成分 u と南北成分 v を計算する")
	c.compSpeed = c.componentsCmd.FloatList("s", "speed", &argparse.Options{
		Required: true,
		Help:     "風速"})
	c.compDir = c.componentsCmd.FloatList("d", "direction", &argparse.Options{
		Required: true,
		Help:     "風向[°] (北=0, 時計回り)"})

	// u, v -> 風速
	c.speedCmd = c.parser.NewCommand("speed", "u, v から風速を計算する")
	c.speedU, c.speedV = vectorArgs(c.speedCmd)

	// u, v -> 風向
	c.directionCmd = c.parser.NewCommand("direction", "u, v から風向を計算する")
	c.dirU, c.dirV = vectorArgs(c.directionCmd)

	// u, v -> 16方位
	c.wind16Cmd = c.parser.NewCommand("wind16", "u, v から16方位の風向風速を計算する")
	c.w16U, c.w16V = vectorArgs(c.wind16Cmd)

	// 屈折角
	c.snellCmd = c.parser.NewCommand("snell", "スネルの法則により屈折角を計算する")
	c.incident = c.snellCmd.FloatList("i", "incident", &argparse.Options{
		Required: true,
		Help:     "入射角[°]"})
	c.vTop = c.snellCmd.Float("", "vtop", &argparse.Options{
		Required: true,
		Help:     "上層の伝播速度"})
	c.vBottom = c.snellCmd.Float("", "vbottom", &argparse.Options{
		Required: true,
		Help:     "下層の伝播速度"})

	return c
}

func vectorArgs(cmd *argparse.Command) (u *[]float64, v *[]float64) {
	u = cmd.FloatList("u", "east", &argparse.Options{
		Required: true,
		Help:     "東西成分 (東向きが正)"})
	v = cmd.FloatList("v", "north", &argparse.Options{
		Required: true,
		Help:     "南北成分 (北向きが正)"})
	return u, v
}

var attachHandler sync.Once

// ロガーに標準出力へのハンドラを設定する。
// CSVを標準出力へ書く場合はログが混ざるため、ファイル出力時のみ設定する。
func setupLogger(level logging.LogLevelType, toStdout bool) logging.Logger {
	logger := logging.GetLogger(calc.LoggerName)
	logger.SetLevel(level)
	if toStdout {
		attachHandler.Do(func() {
			handler := logging.NewStdoutHandler()
			handler.SetFormatter(logging.NewStandardFormatter(
				"%(asctime)s %(levelname)s (%(name)s) %(message)s",
				"%Y-%m-%d %H:%M:%S"))
			logger.AddHandler(handler)
		})
	}
	return logger
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run はコマンドを実行し、終了コードを返す
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	c := newCLI()
	if err := c.parser.Parse(args); err != nil {
		fmt.Fprint(stderr, c.parser.Usage(err))
		return 1
	}

	conf, err := config.Load(*c.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	if *c.logLevel != "" {
		conf.LogLevel = *c.logLevel
	}

	// ログレベル設定
	logger := setupLogger(conf.Level(), *c.filename != "")

	var table *calc.WindTable
	switch {
	case c.componentsCmd.Happened():
		table, err = runComponents(*c.compSpeed, *c.compDir, stderr)
	case c.speedCmd.Happened():
		table, err = runSpeed(*c.speedU, *c.speedV)
	case c.directionCmd.Happened():
		table, err = runDirection(*c.dirU, *c.dirV)
	case c.wind16Cmd.Happened():
		table, err = runWind16(*c.w16U, *c.w16V)
	case c.snellCmd.Happened():
		table, err = runSnell(*c.incident, *c.vTop, *c.vBottom)
	}
	if table == nil && err == nil {
		fmt.Fprint(stderr, c.parser.Usage(nil))
		return 1
	}
	if err != nil {
		logger.Errorf("計算に失敗しました: %v", err)
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if err := table.ToCSV(buf, conf.Precision, conf.Header); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	if *c.filename == "" {
		fmt.Fprint(stdout, buf.String())
		return 0
	}

	logger.Infof("CSV保存: %s", *c.filename)
	if err := os.WriteFile(*c.filename, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
