// Pitchside is a small web server for checking soccer season schedules for
// conflicts. It accepts schedule spreadsheet uploads, flags overlapping and
// back-to-back games for selected teams, and exports the filtered schedule as
// an iCal feed or a roster-import CSV. All state is held in an in-memory
// scratch database: an upload lives until it expires or the process restarts.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pitchside/pitchside/db"
	"github.com/pitchside/pitchside/engine"
	"github.com/pitchside/pitchside/modules/calendar"
	"github.com/pitchside/pitchside/modules/pruning"
	"github.com/pitchside/pitchside/modules/roster"
	"github.com/pitchside/pitchside/modules/schedule"
)

type Config struct {
	HttpAddr string `envDefault:":8080"`

	// SelfHost is the hostname used in iCal event UIDs.
	SelfHost string `envDefault:"localhost"`

	UploadTTL      time.Duration `envDefault:"24h"`
	MaxUploadBytes int64         `envDefault:"10485760"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	conf, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "PITCHSIDE_", UseFieldNameByDefault: true})
	if err != nil {
		panic(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		err := engine.CheckHealthProbe("http://localhost:8080/healthz") // assume server is running on the default port
		if err != nil {
			panic(err)
		}
		return
	}

	app, err := newApp(conf)
	if err != nil {
		panic(err)
	}

	app.Run(context.TODO())
}

func newApp(conf Config) (*engine.App, error) {
	database, err := db.OpenScratch()
	if err != nil {
		return nil, err
	}

	router := engine.NewRouter()
	router.HandleFunc("GET /healthz", engine.ServeHealthProbe(database))

	self := &url.URL{Scheme: "http", Host: conf.SelfHost}

	a := engine.NewApp(conf.HttpAddr, router)

	scheduleModule := schedule.New(database, conf.MaxUploadBytes)
	a.Add(scheduleModule)
	a.Add(calendar.New(scheduleModule.UploadStore(), self))
	a.Add(roster.New(scheduleModule.UploadStore()))
	a.Add(pruning.New(scheduleModule.UploadStore(), conf.UploadTTL))

	return a, nil
}
