package main

import (
	"github.com/dmitrymomot/matchkit/pkg/httpserver"
)

type appConfig struct {
	AppName       string `env:"APP_NAME" envDefault:"matchkit"`
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL"`
	MatcherParams []int  `env:"MATCHER_PARAMS" envSeparator:","`
	DefaultLang   string `env:"MATCHER_DEFAULT_LANG" envDefault:"en"`

	HTTP httpserver.Config
}
