package main

import (
	"github.com/ipfans/fxlogger"
	"go.uber.org/fx"

	"oraclebot/internal/bot"
	"oraclebot/internal/config"
	"oraclebot/internal/health"
	"oraclebot/internal/log"
	"oraclebot/internal/picker"
	"oraclebot/internal/quotes"
	"oraclebot/internal/state"
)

func main() {

	fx.New(
		fx.WithLogger(fxlogger.WithZerolog(log.NewLogger())),
		config.Module(),
		log.Module(),
		state.Module(),
		quotes.Module(),
		picker.Module(),
		bot.Module(),
		health.Module(),
	).Run()
}
