package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Http  *HTTPConfig
	Db    *PGDBCfg
	Redis *RedisCfg
	Kafka *KafkaCfg
	Log   *LogCfg
}

type HTTPConfig struct {
	Port           string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout    time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout   time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout    time.Duration `envconfig:"KEEP_ALIVE" default:"60s"`
	RequestTimeout time.Duration `envconfig:"HTTP_REQUEST_TIMEOUT" default:"15s"`
	RateLimit      int           `envconfig:"HTTP_RATE_LIMIT" default:"120"` // запросов в минуту с одного IP, 0 — без ограничения
	MaxBodyBytes   int64         `envconfig:"HTTP_MAX_BODY_BYTES" default:"10485760"`
	SwaggerURL     string        `envconfig:"SWAGGER_URL" default:"http://localhost:8080/swagger/doc.json"`
}

type PGDBCfg struct {
	DatabaseURL string `envconfig:"DATABASE_URL"` // имеет приоритет над отдельными полями
	Host        string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port        string `envconfig:"POSTGRES_PORT" default:"5432"`
	User        string `envconfig:"POSTGRES_USER"`
	Password    string `envconfig:"POSTGRES_PASSWORD"`
	DBName      string `envconfig:"POSTGRES_DB"`
	SSLMode     string `envconfig:"SSL_MODE" default:"disable"`

	MaxConns       int32         `envconfig:"POSTGRES_MAX_CONNS" default:"10"`
	ConnectRetries int           `envconfig:"POSTGRES_CONNECT_RETRIES" default:"3"`
	ConnectTimeout time.Duration `envconfig:"POSTGRES_CONNECT_TIMEOUT" default:"5s"`
}

type RedisCfg struct {
	Addr        string        `envconfig:"REDIS_ADDR"` // пустой адрес отключает кэш
	Password    string        `envconfig:"REDIS_PASSWORD"`
	User        string        `envconfig:"REDIS_USER"`
	DB          int           `envconfig:"REDIS_DB_ID" default:"0"`
	MaxRetries  int           `envconfig:"MAX_RETRIES" default:"3"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	Timeout     time.Duration `envconfig:"REDIS_TIMEOUT" default:"3s"`
	PoolSize    int           `envconfig:"REDIS_POOL_SIZE" default:"0"` // 0 оставляет значение go-redis по умолчанию
	KeyPrefix   string        `envconfig:"REDIS_KEY_PREFIX"`
	ListTTL     time.Duration `envconfig:"PRODUCT_LIST_TTL" default:"30s"`
}

type KafkaCfg struct {
	Brokers           []string      `envconfig:"KAFKA_BROKERS"` // пустой список отключает публикацию событий
	Topic             string        `envconfig:"KAFKA_TOPIC" default:"products.changes"`
	NetworkMode       string        `envconfig:"KAFKA_NETWORK_MODE" default:"tcp"`
	Partitions        int           `envconfig:"KAFKA_PARTITIONS" default:"3"`
	ReplicationFactor int           `envconfig:"REPLICATION_FACTOR" default:"1"`
	WriteTimeout      time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type LogCfg struct {
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
}

// Enabled сообщает, настроен ли Redis.
func (r *RedisCfg) Enabled() bool {
	return r != nil && r.Addr != ""
}

// Enabled сообщает, настроена ли публикация событий в Kafka.
func (k *KafkaCfg) Enabled() bool {
	return k != nil && len(k.Brokers) > 0 && k.Topic != ""
}

// DSN возвращает строку подключения: DATABASE_URL либо собранную из POSTGRES_* переменных.
func (c *PGDBCfg) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}

	return u.String()
}

// Load читает .env (если он есть) и переменные окружения.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to read .env: %v", err)
	}

	return LoadFromEnv(log)
}

// LoadFromEnv читает конфигурацию только из переменных окружения.
func LoadFromEnv(log logger.Logger) (*Config, error) {
	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http := &HTTPConfig{}
	if err := envconfig.Process("", http); err != nil {
		log.Errorf(err, "invalid HTTP configuration")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis := &RedisCfg{}
	if err := envconfig.Process("", redis); err != nil {
		log.Errorf(err, "invalid Redis configuration")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		log.Errorf(err, "invalid Kafka configuration")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logCfg := &LogCfg{}
	if err := envconfig.Process("", logCfg); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:  http,
		Db:    db,
		Redis: redis,
		Kafka: kafka,
		Log:   logCfg,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	db := &PGDBCfg{}
	if err := envconfig.Process("", db); err != nil {
		log.Errorf(err, "invalid database configuration")
		return nil, err
	}

	if db.DatabaseURL != "" {
		return db, nil
	}

	var missing []string
	if db.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if db.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if db.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if len(missing) > 0 {
		err := fmt.Errorf("DATABASE_URL or %s is required: %w", strings.Join(missing, ", "), e.ErrIncorrectEnvVariable)
		log.Errorf(err, "missing database configuration")
		return nil, err
	}

	return db, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	kafka := &KafkaCfg{}
	if err := envconfig.Process("", kafka); err != nil {
		return nil, err
	}

	brokers := make([]string, 0, len(kafka.Brokers))
	for _, b := range kafka.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	kafka.Brokers = brokers

	if kafka.Partitions < 1 || kafka.ReplicationFactor < 1 {
		return nil, e.Wrap("KAFKA_PARTITIONS/REPLICATION_FACTOR", e.ErrIncorrectEnvVariable)
	}

	return kafka, nil
}
