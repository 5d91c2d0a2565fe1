package core

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/gulipalli123/DesignPatterns/global"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// SetDefaults 每个配置项都有默认值, 没有配置文件也能运行
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.dir", global.DefaultLogDir)
	v.SetDefault("log.level", global.DefaultLogLevel)
	v.SetDefault("log.console", false)
	v.SetDefault("log.max-size", 1)
	v.SetDefault("log.max-backups", 1)
	v.SetDefault("log.max-age", 1)
	v.SetDefault("log.compress", false)
	v.SetDefault("remote.slots", global.DefaultSlots)
	v.SetDefault("weather.readings", global.DefaultReadings())
}

// Viper 读取配置. file 为空时在当前目录找 config.yaml, 找不到就用默认值;
// 指定了 file 但读取失败则返回错误.
func Viper(file string) (*viper.Viper, *global.Config, error) {
	config := viper.New()
	SetDefaults(config)
	config.SetEnvPrefix(global.EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	config.AutomaticEnv()

	if file != "" {
		config.SetConfigFile(file)
	} else {
		config.SetConfigName(global.DefaultConfigName)
		config.AddConfigPath("./")
		//设置配置文件类型
		config.SetConfigType("yaml")
	}

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, nil, errors.Wrap(err, "read config")
		}
	}

	cfg, err := Unmarshal(config)
	if err != nil {
		return nil, nil, err
	}
	return config, cfg, nil
}

func Unmarshal(config *viper.Viper) (*global.Config, error) {
	var cfg global.Config
	if err := config.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal config")
	}
	if cfg.Remote.Slots <= 0 {
		return nil, errors.Errorf("remote.slots must be positive, got %d", cfg.Remote.Slots)
	}
	for i, r := range cfg.Weather.Readings {
		if len(r) != 3 {
			return nil, errors.Errorf("weather.readings[%d] needs 3 values, got %d", i, len(r))
		}
	}
	return &cfg, nil
}

// OnChange 配置文件变化后调整日志级别
func OnChange(config *viper.Viper, level zap.AtomicLevel, log *zap.Logger) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		lvl, err := ParseLevel(config.GetString("log.level"))
		if err != nil {
			log.Error("config reload failed", zap.String("file", e.Name), zap.Error(err))
			return
		}
		if lvl != level.Level() {
			log.Info("log level changed", zap.String("file", e.Name), zap.Stringer("level", lvl))
			level.SetLevel(lvl)
		}
	}
}

// WatchConfig 只有真正读到了配置文件才监听
func WatchConfig(config *viper.Viper, level zap.AtomicLevel, log *zap.Logger) {
	if config.ConfigFileUsed() == "" {
		return
	}
	config.OnConfigChange(OnChange(config, level, log))
	config.WatchConfig()
}
