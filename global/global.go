package global

// 配置文件默认值
const (
	DefaultConfigName = "config"
	DefaultLogDir     = "./Log"
	DefaultLogLevel   = "info"
	DefaultSlots      = 7
	EnvPrefix         = "PATTERNS"
)

type Config struct {
	Log     Log     `mapstructure:"log"`
	Remote  Remote  `mapstructure:"remote"`
	Weather Weather `mapstructure:"weather"`
}

// Log 日志配置, 每个级别单独一个文件
type Log struct {
	Dir        string `mapstructure:"dir"`
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	MaxSize    int    `mapstructure:"max-size"`    // MB
	MaxBackups int    `mapstructure:"max-backups"` // 旧文件个数
	MaxAge     int    `mapstructure:"max-age"`     // 天数
	Compress   bool   `mapstructure:"compress"`
}

type Remote struct {
	Slots int `mapstructure:"slots"`
}

// Weather 观察者演示用的测量数据, 每一项是 [温度, 气压, 湿度]
type Weather struct {
	Readings [][]float64 `mapstructure:"readings"`
}

// DefaultReadings 与原始演示一致
func DefaultReadings() [][]float64 {
	return [][]float64{
		{10.0, 8.7, 9.5},
		{5.3, 4.5, 2.9},
	}
}
