// Package config はコマンドラインツールの設定ファイル (YAML) を読み込む。
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hhkbp2/go-logging"
	"gopkg.in/yaml.v3"
)

// Config はコマンドラインツールの設定
type Config struct {
	LogLevel  string `yaml:"log_level"` // DEBUG, INFO, WARN, ERROR, CRITICAL
	Precision int    `yaml:"precision"` // CSV出力の小数点以下の桁数 (-1 で最短表現)
	Header    bool   `yaml:"header"`    // CSVにヘッダ行を出力するか
}

// LogLevels は指定可能なログレベル
var LogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}

var levels = map[string]logging.LogLevelType{
	"DEBUG":    logging.LevelDebug,
	"INFO":     logging.LevelInfo,
	"WARN":     logging.LevelWarn,
	"ERROR":    logging.LevelError,
	"CRITICAL": logging.LevelCritical,
}

// Default は設定ファイルがない場合の既定値を返す
func Default() *Config {
	return &Config{
		LogLevel:  "WARN",
		Precision: -1,
		Header:    true,
	}
}

// Load は path の設定ファイルを読み込み、未設定の項目は既定値とする。
// path が空の場合は既定値を返す。
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.LogLevel = strings.ToUpper(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検査する
func (c *Config) Validate() error {
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Precision < -1 {
		return errors.New("precision must be -1 or greater")
	}
	return nil
}

// Level はログレベルを go-logging の値に変換する
func (c *Config) Level() logging.LogLevelType {
	if lv, ok := levels[c.LogLevel]; ok {
		return lv
	}
	return logging.LevelWarn
}
