package config

import (
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/spf13/viper"
)

// Env is structure containing env variables
type Env struct {
	DSN                      string        `mapstructure:"DATABASE_URL" validate:"required"`
	RedisChallengeURL        string        `mapstructure:"REDIS_CHALLENGE_URL" validate:"required,uri"`
	RedisRatelimiterUsername string        `mapstructure:"REDIS_RATELIMITER_USERNAME"`
	RedisRatelimiterPassword string        `mapstructure:"REDIS_RATELIMITER_PASSWORD"`
	RedisRatelimiterHost     string        `mapstructure:"REDIS_RATELIMITER_HOST" validate:"required"`
	SMTPHost                 string        `mapstructure:"SMTP_HOST" validate:"required"`
	FromEmail                string        `mapstructure:"FROM_EMAIL" validate:"required,email"`
	EmailPassword            string        `mapstructure:"EMAIL_PASS" validate:"required"`
	DevEnv                   string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
	Port                     string        `mapstructure:"PORT" validate:"required,numeric"`
	FrontendHostname         string        `mapstructure:"FRONTEND_HOSTNAME" validate:"required,hostname"`
	FrontendURL              string        `mapstructure:"FRONTEND_URL" validate:"required,url"`
	OTPExpires               time.Duration `mapstructure:"OTP_EXPIRED_IN" validate:"required"`
	SMTPPort                 int           `mapstructure:"SMTP_PORT" validate:"required,number"`
	RedisRatelimiterPort     int           `mapstructure:"REDIS_RATELIMITER_PORT" validate:"required,number"`
}

// Load is a function that is used to laod the env variables from the file and the enviroment
func (e *Env) Load(path ...string) {
	configPath := "."
	if len(path) > 0 {
		configPath = path[0]
	}

	viper.AddConfigPath(configPath)
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Error(err)
	}

	err = viper.Unmarshal(&e)
	if err != nil {
		logger.Errorf(err)
	}

	logger.Validatef(e)
}
