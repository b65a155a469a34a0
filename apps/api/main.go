package main

import (
	"log"
	"os"

	"github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/directory"
	"github.com/trezcool/darasa/core/evaluation"
	"github.com/trezcool/darasa/services/email"
	"github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	"github.com/trezcool/darasa/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig(core.Getwd())

	// set up logging
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger()
	} else {
		logger = logsvc.NewRollbarLogger(log.New(os.Stdout, "", log.LstdFlags), conf)
	}

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening DB", err)
	}
	defer db.Close()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	dirRepo := sqlxrepos.NewDirectoryRepository(db)
	assignmentSvc := assignment.NewService(
		sqlxrepos.NewAssignmentRepository(db),
		sqlxrepos.NewSubmissionRepository(db),
		dirRepo,
		mailSvc,
		conf,
	)
	evaluationSvc := evaluation.NewService(sqlxrepos.NewEvaluationRepository(db), dirRepo, mailSvc, conf)
	directorySvc := directory.NewService(dirRepo, dirRepo)

	// start API server
	logger.Info("starting API server on " + conf.ServerAddress())
	app := echoapi.NewServer(&echoapi.Options{
		Config:        conf,
		Logger:        logger,
		AssignmentSvc: assignmentSvc,
		EvaluationSvc: evaluationSvc,
		DirectorySvc:  directorySvc,
	})
	app.Start()
}
