package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, signing authority, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Chain     ChainConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Migration MigrationConfig
	Merch     MerchConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// ChainConfig seeds the governance settings on first start and fixes the
// domain separation value every voucher is signed over.
type ChainConfig struct {
	ChainID                int64  `envconfig:"CHAIN_ID" default:"31337"`
	TokenDecimals          int32  `envconfig:"TOKEN_DECIMALS" default:"18"`
	OwnerAddress           string `envconfig:"OWNER_ADDRESS" required:"true"`
	VerifierAddress        string `envconfig:"VERIFIER_ADDRESS" required:"true"`
	FeeRecipient           string `envconfig:"FEE_RECIPIENT" required:"true"`
	RoyaltyRecipient       string `envconfig:"ROYALTY_RECIPIENT" default:""`
	RoyaltyBps             uint32 `envconfig:"ROYALTY_BPS" default:"0"`
	MembershipFeeRecipient string `envconfig:"MEMBERSHIP_FEE_RECIPIENT" default:""`
	LoginDomain            string `envconfig:"LOGIN_DOMAIN" default:"voucher-ledger"`
}

type RedisConfig struct {
	URL          string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	ChallengeTTL time.Duration `envconfig:"AUTH_CHALLENGE_TTL" default:"5m"`
}

type KafkaConfig struct {
	Brokers       []string      `envconfig:"KAFKA_BROKERS" default:""`
	TopicPrefix   string        `envconfig:"KAFKA_TOPIC_PREFIX" default:"ledger"`
	RelayInterval time.Duration `envconfig:"OUTBOX_RELAY_INTERVAL" default:"2s"`
	RelayBatch    int           `envconfig:"OUTBOX_RELAY_BATCH" default:"100"`
	MaxAttempts   int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type MigrationConfig struct {
	Enabled  bool   `envconfig:"MIGRATE_ON_START" default:"true"`
	Dir      string `envconfig:"MIGRATIONS_DIR" default:"file://migrations"`
	AtlasBin string `envconfig:"ATLAS_BIN" default:"atlas"`
}

// MerchConfig amounts are decimal token units ("0.05"), converted with TokenDecimals.
type MerchConfig struct {
	ShirtFee        string `envconfig:"MERCH_SHIRT_FEE" default:"0"`
	ShippingFee     string `envconfig:"MERCH_SHIPPING_FEE" default:"0"`
	ShirtRoyaltyBps uint32 `envconfig:"MERCH_SHIRT_ROYALTY_BPS" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// hardhat account #0, also the default test authority
const testAuthority = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Chain: ChainConfig{
			ChainID:                31337,
			TokenDecimals:          18,
			OwnerAddress:           testAuthority,
			VerifierAddress:        testAuthority,
			FeeRecipient:           "0x90F79bf6EB2c4f870365E785982E1f101E93b906",
			RoyaltyRecipient:       "0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65",
			RoyaltyBps:             1000,
			MembershipFeeRecipient: "0x90F79bf6EB2c4f870365E785982E1f101E93b906",
			LoginDomain:            "voucher-ledger",
		},
		Redis: RedisConfig{
			ChallengeTTL: 5 * time.Minute,
		},
		Kafka: KafkaConfig{
			TopicPrefix:   "ledger",
			RelayInterval: 100 * time.Millisecond,
			RelayBatch:    50,
			MaxAttempts:   3,
		},
		Migration: MigrationConfig{
			Enabled: false,
		},
		Merch: MerchConfig{
			ShirtFee:        "0.05",
			ShippingFee:     "0.01",
			ShirtRoyaltyBps: 2000,
		},
	}
}
