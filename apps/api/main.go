package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	echoapi "github.com/abdelrhmanQ/shc2/api/echo"
	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/assignment"
	"github.com/abdelrhmanQ/shc2/core/attendance"
	"github.com/abdelrhmanQ/shc2/core/news"
	"github.com/abdelrhmanQ/shc2/core/user"
	emailsvc "github.com/abdelrhmanQ/shc2/services/email"
	logsvc "github.com/abdelrhmanQ/shc2/services/logger"
	inmemdb "github.com/abdelrhmanQ/shc2/storage/inmem"
	mongodb "github.com/abdelrhmanQ/shc2/storage/mongo"
)

func main() {
	conf := core.NewConfig()

	// set up logger
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewZapLogger(conf)
	} else {
		logger = logsvc.NewRollbarLogger(log.New(os.Stdout, "", log.LstdFlags), conf)
	}

	// set up storage
	var (
		userRepo       user.Repository
		assignmentRepo assignment.Repository
		newsRepo       news.Repository
		attendanceRepo attendance.Repository
	)
	switch conf.Database.Engine {
	case "mongo":
		db, err := mongodb.Open(conf)
		errAndDie(err)
		defer func() { _ = db.Close(context.Background()) }()
		userRepo = mongodb.NewUserRepository(db)
		assignmentRepo = mongodb.NewAssignmentRepository(db)
		newsRepo = mongodb.NewNewsRepository(db)
		attendanceRepo = mongodb.NewAttendanceRepository(db)
	default:
		db, err := inmemdb.Open()
		errAndDie(err)
		userRepo = inmemdb.NewUserRepository(db)
		assignmentRepo = inmemdb.NewAssignmentRepository(db)
		newsRepo = inmemdb.NewNewsRepository(db)
		attendanceRepo = inmemdb.NewAttendanceRepository(db)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	var rdb *redis.Client
	if conf.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{Addr: conf.Redis.Addr})
	}

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Conf:          conf,
		Logger:        logger,
		UserSvc:       user.NewService(userRepo, mailSvc, logger),
		AssignmentSvc: assignment.NewService(assignmentRepo, logger),
		NewsSvc:       news.NewService(newsRepo, logger),
		AttendanceSvc: attendance.NewService(attendanceRepo, logger),
		Redis:         rdb,
	})

	go app.Start()
	logger.Info("API server started", conf.Server.Addr)

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("shutting down server", err)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
