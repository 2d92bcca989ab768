package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopquanao/storefront/config"
	"github.com/shopquanao/storefront/internal/app"
	"github.com/shopquanao/storefront/internal/webserver"
)

var (
	cfile    = flag.String("c", "storefront.yml", "config file")
	initdb   = flag.Bool("initdb", false, "drop and recreate all tables, then seed")
	showVers = flag.Bool("v", false, "show version")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVers {
		fmt.Println("storefront", version)
		os.Exit(0)
	}

	_ = godotenv.Load()

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.L().Info("database reinitialized")
		return
	}

	server := webserver.NewWebServer(
		cfg,
		application.DB(),
		application.Catalog(),
		application.Orders(),
		application.Accounts(),
		application.Store(),
		application.News(),
	)

	if err := server.Start(); err != nil {
		zap.L().Fatal("webserver stopped", zap.Error(err))
	}
}
