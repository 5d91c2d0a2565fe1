package core

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gulipalli123/DesignPatterns/global"
	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:   "msg",                       //结构化（json）输出：msg的key
		LevelKey:     "level",                     //日志级别的key（INFO，WARN，ERROR等）
		TimeKey:      "ts",                        //时间的key
		CallerKey:    "file",                      //打印日志的文件对应的Key
		EncodeLevel:  zapcore.CapitalLevelEncoder, //将日志级别转换成大写
		EncodeCaller: zapcore.ShortCallerEncoder,  //采用短文件路径编码输出（test/main.go:14 ）
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05"))
		},
		EncodeDuration: func(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(int64(d) / 1000000)
		},
	}
}

func getCore(filename string, cfg global.Log, level zapcore.LevelEnabler) zapcore.Core {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.MaxSize,    //在进行切割之前，日志文件的最大大小（以MB为单位）
		MaxBackups: cfg.MaxBackups, //旧文件的个数
		MaxAge:     cfg.MaxAge,     //天数
		Compress:   cfg.Compress,
	}
	writer := zapcore.AddSync(lumberJackLogger)
	encoder := zapcore.NewJSONEncoder(encoderConfig())
	return zapcore.NewCore(encoder, writer, level)
}

// ParseLevel 解析配置里的日志级别, 空字符串为 info
func ParseLevel(s string) (zapcore.Level, error) {
	var l zapcore.Level
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, errors.Wrapf(err, "invalid log level %q", s)
	}
	return l, nil
}

// Zap 创建日志对象, 日志分为4种等级debug，info，warn，error, 每种等级一个文件.
// 返回的 AtomicLevel 可以在配置变化时调整级别.
func Zap(cfg global.Log) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}
	atom := zap.NewAtomicLevelAt(lvl)

	dir := cfg.Dir
	if dir == "" {
		dir = global.DefaultLogDir
	}
	//判断文件夹是否存在，不存在就新建
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return nil, atom, errors.Wrap(err, "stat log dir")
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, atom, errors.Wrap(err, "create log dir")
		}
	}

	debugLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.DebugLevel && atom.Enabled(level)
	})
	infoLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.InfoLevel && atom.Enabled(level)
	})
	warnLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.WarnLevel && atom.Enabled(level)
	})
	errorLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= zap.ErrorLevel && atom.Enabled(level) //error 和以上的(fatal)错误信息都打印到error里
	})

	cores := []zapcore.Core{
		getCore(filepath.Join(dir, "patterns_debug.log"), cfg, debugLog),
		getCore(filepath.Join(dir, "patterns_info.log"), cfg, infoLog),
		getCore(filepath.Join(dir, "patterns_warn.log"), cfg, warnLog),
		getCore(filepath.Join(dir, "patterns_error.log"), cfg, errorLog),
	}
	if cfg.Console {
		consoleEnc := zapcore.NewConsoleEncoder(encoderConfig())
		cores = append(cores, zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), atom))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), atom, nil
}
