package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"webscaffold/src/database"
	"webscaffold/src/server"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "Webscaffold CMD"
	app.Usage = "The webscaffold command line interface"
	app.Version = Version

	app.Commands = []cli.Command{
		serveCMD,
		migrateCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	serveCMD = cli.Command{
		Name:        "serve",
		Usage:       "run the HTTP server",
		Action:      serveAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Run the HTTP server with the error reporting pipeline`,
	}
	migrateCMD = cli.Command{
		Name:        "migrate",
		Usage:       "run database migrations",
		Action:      migrateAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Connect to the database and run schema migrations`,
	}
)

func serveAction(_ *cli.Context) error {
	logrus.Info("Starting serve CMD")

	if database.GetConfig().EnableDB {
		if err := database.InitMainDB(); err != nil {
			logrus.WithError(err).Error("Failed to connect to database")
			return err
		}
	}

	server.StartServer()
	return nil
}

func migrateAction(_ *cli.Context) error {
	logrus.Info("Starting migrate CMD")

	if err := database.InitMainDB(); err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return err
	}

	logrus.Info("Migrations completed")
	return nil
}
