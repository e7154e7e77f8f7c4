package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"botbase/pkg/domain"
	"botbase/pkg/domain/model"
	"botbase/pkg/infrastructure/coincheck"
	"botbase/pkg/infrastructure/history"
	"botbase/pkg/infrastructure/logger"
	"botbase/pkg/infrastructure/memory"
	"botbase/pkg/infrastructure/mysql"
	"botbase/pkg/usecase"
	"botbase/pkg/usecase/strategy"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/sync/errgroup"
)

const (
	location = "Asia/Tokyo"
)

func init() {
	loc, err := time.LoadLocation(location)
	if err != nil {
		loc = time.FixedZone(location, 9*60*60)
	}
	time.Local = loc
}

type EnvConfig struct {
	ConfigPath      string `split_words:"true" default:"./configs/config.json"`
	StrategyName    string `split_words:"true" default:"watch_only"`
	RateHistorySize int    `split_words:"true" default:"1000"`
}

var orderHistoryColumns = []string{"time", "pair", "side", "price"}

func main() {
	log.Println("===== START PROGRAM ====================")
	defer log.Println("===== END PROGRAM ======================")

	var env EnvConfig
	if err := envconfig.Process("BOT", &env); err != nil {
		log.Fatal(err.Error())
	}

	conf, err := model.LoadConfig(env.ConfigPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	registry := logger.NewRegistry(os.Stdout)
	lg, err := registry.Get(conf.LoggerName(), logger.Options{Level: conf.LogLevel, Dir: conf.LogDir})
	if err != nil {
		log.Fatal(err.Error())
	}

	notifier := usecase.NewStatusNotifier(lg, conf)
	hist := history.NewManager(conf.LogDir, conf.ExchangeName, conf.BotName, orderHistoryColumns)
	bot := usecase.NewBot(conf, lg, notifier, hist)
	defer func() {
		if err := bot.Close(); err != nil {
			lg.Error("failed to close order history files; error: %v", err)
		}
	}()

	if conf.DB != nil {
		mysqlCli, err := mysql.NewClient(conf.DB.UserName, conf.DB.Password, conf.DB.Host, conf.DB.Port, conf.DB.Name)
		if err != nil {
			lg.Exception(err, "failed to setup order history db")
			return
		}
		bot.SetRecorder(mysqlCli)
	}

	logic, err := strategy.Make(strategy.Type(env.StrategyName), &strategy.Params{
		Bot:      bot,
		Logger:   lg,
		ExCli:    coincheck.NewPublicClient(lg),
		RateRepo: memory.NewRateRepository(env.RateHistorySize),
	})
	if err != nil {
		lg.Exception(err, "failed to setup strategy")
		return
	}
	if logic == nil {
		lg.Error("strategy name is unknown; name = %s", env.StrategyName)
		return
	}
	bot.SetLogic(logic)

	lg.Info("strategy: %s", env.StrategyName)
	lg.Info("exchange: %s, bot: %s", conf.ExchangeName, conf.BotName)
	lg.Info("======================================")

	rootCtx, cancel := context.WithCancel(context.Background())
	errGroup, ctx := errgroup.WithContext(rootCtx)
	errGroup.Go(func() error {
		defer cancel()
		return watchSignal(ctx, bot, lg)
	})
	errGroup.Go(func() error {
		return bot.Start(ctx)
	})

	if err := errGroup.Wait(); err != nil {
		lg.Error("error occured, %v", err)
	}
}

func watchSignal(ctx context.Context, bot *usecase.Bot, lg domain.Logger) error {
	// OSのシグナル監視
	quit := make(chan os.Signal, 1)
	defer close(quit)
	signal.Notify(quit, os.Interrupt)
	select {
	case <-quit:
		lg.Info("terminating ...")
		bot.Stop()
	case <-ctx.Done():
	}
	return nil
}
