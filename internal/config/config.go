package config

import (
	"github.com/spf13/viper"
)

// Config holds runtime configuration. Every field maps 1:1 to an env var;
// an optional .env file covers local development.
type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// AWS / DynamoDB
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	// Business
	TaxRate string `mapstructure:"TAX_RATE"`

	// Payment provider
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB ignores credentials but the SDK requires them.
	viper.SetDefault("AWS_ACCESS_KEY_ID", "local")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	viper.SetDefault("TAX_RATE", "0.19")
	viper.SetDefault("PAYMENT_GATEWAY_MOCK", false)

	// AutomaticEnv alone does not register keys for Unmarshal; keys
	// without a default must be bound explicitly or they come back empty
	// when set only as real environment variables.
	for _, key := range []string{
		"PORT", "APP_ENV",
		"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"DYNAMODB_ENDPOINT", "TAX_RATE",
		"MERCADOPAGO_ACCESS_TOKEN", "PAYMENT_GATEWAY_MOCK",
	} {
		_ = viper.BindEnv(key)
	}

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
