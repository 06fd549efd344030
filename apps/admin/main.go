package main

import (
	"context"
	"log"
	"os"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/user"
	emailsvc "github.com/abdelrhmanQ/shc2/services/email"
	logsvc "github.com/abdelrhmanQ/shc2/services/logger"
	notifysvc "github.com/abdelrhmanQ/shc2/services/notify"
	inmemdb "github.com/abdelrhmanQ/shc2/storage/inmem"
	mongodb "github.com/abdelrhmanQ/shc2/storage/mongo"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewZapLogger(conf)

	var userRepo user.Repository
	switch conf.Database.Engine {
	case "mongo":
		db, err := mongodb.Open(conf)
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = db.Close(context.Background()) }()
		userRepo = mongodb.NewUserRepository(db)
	default:
		db, err := inmemdb.Open()
		if err != nil {
			log.Fatal(err)
		}
		userRepo = inmemdb.NewUserRepository(db)
	}

	cli := &commandLine{
		usrSvc:   user.NewService(userRepo, emailsvc.NewConsoleService(conf), logger),
		notifier: notifysvc.NewConsoleNotifier(logger),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}
