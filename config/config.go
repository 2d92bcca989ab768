package config

import (
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SystemConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
}

type WebConfig struct {
	Host  string `yaml:"host" json:"host"`
	Port  int    `yaml:"port" json:"port"`
	Debug bool   `yaml:"debug" json:"debug"`
}

type DBConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

type RedisConfig struct {
	Addr    string `yaml:"addr" json:"addr"`
	Passwd  string `yaml:"passwd" json:"passwd"`
	DB      int    `yaml:"db" json:"db"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint" json:"endpoint"`
	AccessKey string `yaml:"access_key" json:"access_key"`
	SecretKey string `yaml:"secret_key" json:"secret_key"`
	Bucket    string `yaml:"bucket" json:"bucket"`
	PublicURL string `yaml:"public_url" json:"public_url"`
	UseSSL    bool   `yaml:"use_ssl" json:"use_ssl"`
}

type NewsConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	APIKey   string `yaml:"api_key" json:"api_key"`
	Query    string `yaml:"query" json:"query"`
	Language string `yaml:"language" json:"language"`
}

type JwtConfig struct {
	Secret string `yaml:"secret" json:"secret"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SystemConfig `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Redis    RedisConfig  `yaml:"redis" json:"redis"`
	Minio    MinioConfig  `yaml:"minio" json:"minio"`
	News     NewsConfig   `yaml:"news" json:"news"`
	Jwt      JwtConfig    `yaml:"jwt" json:"jwt"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SystemConfig{
		Appid:    "Storefront",
		Location: "Asia/Ho_Chi_Minh",
		Workdir:  "/var/storefront",
	},
	Web: WebConfig{
		Host:  "0.0.0.0",
		Port:  3001,
		Debug: true,
	},
	Database: DBConfig{
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "storefront",
		User:     "postgres",
		Passwd:   "postgres",
		MaxConn:  100,
		IdleConn: 10,
	},
	Redis: RedisConfig{
		Addr:    "127.0.0.1:6379",
		Passwd:  "",
		DB:      0,
		Enabled: true,
	},
	Minio: MinioConfig{
		Endpoint:  "127.0.0.1:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "shopquanao",
		PublicURL: "http://localhost:9000",
		UseSSL:    false,
	},
	News: NewsConfig{
		Endpoint: "https://newsapi.org/v2/everything",
		APIKey:   "demo",
		Query:    "fashion OR \"thời trang\" OR clothing OR streetwear",
		Language: "vi",
	},
	Jwt: JwtConfig{
		Secret: "9b6de5cc-0001-1203-xxtt-0f568ac9da37",
	},
	Logger: LoggerConfig{
		Mode:       "dev",
		FileEnable: true,
		Filename:   "storefront.log",
	},
}

func setEnvValue(name string, val *string) {
	evalue := os.Getenv(name)
	if evalue != "" {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	evalue := os.Getenv(name)
	if evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	evalue := os.Getenv(name)
	if evalue != "" {
		*val = cast.ToBool(evalue)
	}
}

// LoadConfig reads the YAML config file if present and applies
// environment variable overrides on top of it.
func LoadConfig(cfile string) *AppConfig {
	appconfig := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			appconfig = new(AppConfig)
			if err := yaml.Unmarshal(data, appconfig); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("STOREFRONT_SYSTEM_WORKDIR", &appconfig.System.Workdir)
	setEnvValue("STOREFRONT_WEB_HOST", &appconfig.Web.Host)
	setEnvIntValue("STOREFRONT_WEB_PORT", &appconfig.Web.Port)
	setEnvBoolValue("STOREFRONT_WEB_DEBUG", &appconfig.Web.Debug)

	setEnvValue("STOREFRONT_DB_HOST", &appconfig.Database.Host)
	setEnvIntValue("STOREFRONT_DB_PORT", &appconfig.Database.Port)
	setEnvValue("STOREFRONT_DB_NAME", &appconfig.Database.Name)
	setEnvValue("STOREFRONT_DB_USER", &appconfig.Database.User)
	setEnvValue("STOREFRONT_DB_PWD", &appconfig.Database.Passwd)

	setEnvValue("STOREFRONT_REDIS_ADDR", &appconfig.Redis.Addr)
	setEnvValue("STOREFRONT_REDIS_PWD", &appconfig.Redis.Passwd)
	setEnvIntValue("STOREFRONT_REDIS_DB", &appconfig.Redis.DB)
	setEnvBoolValue("STOREFRONT_REDIS_ENABLED", &appconfig.Redis.Enabled)

	setEnvValue("STOREFRONT_MINIO_ENDPOINT", &appconfig.Minio.Endpoint)
	setEnvValue("STOREFRONT_MINIO_ACCESS_KEY", &appconfig.Minio.AccessKey)
	setEnvValue("STOREFRONT_MINIO_SECRET_KEY", &appconfig.Minio.SecretKey)
	setEnvValue("STOREFRONT_MINIO_BUCKET", &appconfig.Minio.Bucket)
	setEnvValue("STOREFRONT_MINIO_PUBLIC_URL", &appconfig.Minio.PublicURL)
	setEnvBoolValue("STOREFRONT_MINIO_USE_SSL", &appconfig.Minio.UseSSL)

	setEnvValue("STOREFRONT_NEWS_ENDPOINT", &appconfig.News.Endpoint)
	setEnvValue("NEWS_API_KEY", &appconfig.News.APIKey)

	setEnvValue("STOREFRONT_JWT_SECRET", &appconfig.Jwt.Secret)

	setEnvValue("STOREFRONT_LOGGER_MODE", &appconfig.Logger.Mode)
	setEnvBoolValue("STOREFRONT_LOGGER_FILE_ENABLE", &appconfig.Logger.FileEnable)

	if appconfig.Logger.Filename == "" {
		appconfig.Logger.Filename = "storefront.log"
	}
	if !path.IsAbs(appconfig.Logger.Filename) {
		appconfig.Logger.Filename = path.Join(appconfig.System.Workdir, appconfig.Logger.Filename)
	}

	return appconfig
}
