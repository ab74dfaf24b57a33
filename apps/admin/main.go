package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/user"
	logsvc "github.com/trezcool/masomo/services/logger"
	"github.com/trezcool/masomo/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up DB
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal("loading dataset", err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		conf:    conf,
		usrSvc:  user.NewService(inmemdb.NewUserRepository(db)),
		screens: newScreens(db, conf.Listing.PageSize, validate, translator),
		in:      os.Stdin,
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
			logger.Flush()
		}
		os.Exit(1)
	}
}
