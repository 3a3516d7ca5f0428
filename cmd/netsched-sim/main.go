// Copyright (c) 2024 The netsched Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	_ "go.uber.org/automaxprocs"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/netsched/netsched/pkg/common"
	"github.com/netsched/netsched/pkg/common/config"
	"github.com/netsched/netsched/pkg/common/lifecycle"
	"github.com/netsched/netsched/pkg/common/logging"
	"github.com/netsched/netsched/pkg/connmgr"
	"github.com/netsched/netsched/pkg/netsim"
)

const _defaultDumpInterval = 30 * time.Second

var (
	app = kingpin.New(common.NetschedSim, "Connectivity controller simulator "+
		"driving a scripted world of networks, owners and jobs")

	debug = app.Flag(
		"debug", "enable debug mode (print debug level logs)").
		Short('d').
		Default("false").
		Envar("ENABLE_DEBUG_LOGGING").
		Bool()

	configFiles = app.Flag(
		"config",
		"YAML config files (can be provided multiple times to merge configs)").
		Short('c').
		Required().
		ExistingFiles()

	httpPort = app.Flag(
		"http-port", "Simulator HTTP port for health, pprof and "+
			"log level endpoints (set $HTTP_PORT to override)").
		Default("5290").
		Envar("HTTP_PORT").
		Int()
)

func main() {
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFormatter(
		&logging.LogFieldFormatter{
			Formatter: &log.JSONFormatter{},
			Fields: log.Fields{
				common.AppLogField: app.Name,
			},
		},
	)

	initialLevel := log.InfoLevel
	if *debug {
		initialLevel = log.DebugLevel
	}
	log.SetLevel(initialLevel)

	log.WithField("files", *configFiles).Info("Loading simulator config")
	var cfg netsim.Config
	if err := config.Parse(&cfg, *configFiles...); err != nil {
		log.WithError(err).Fatal("Cannot parse yaml config")
	}

	world, err := netsim.NewWorld(&cfg)
	if err != nil {
		log.WithError(err).Fatal("Cannot build scripted world")
	}

	scope := tally.NoopScope
	engine := netsim.NewEngine(scope)

	controller, err := connmgr.NewController(
		scope, &cfg.Controller, world, engine, world, world, world)
	if err != nil {
		log.WithError(err).Fatal("Cannot create connectivity controller")
	}

	if err := controller.Start(); err != nil {
		log.WithError(err).Fatal("Cannot start connectivity controller")
	}

	world.Replay(controller)
	log.WithFields(log.Fields{
		"jobs":     len(world.GetJobs()),
		"networks": len(controller.Dump().Networks),
	}).Info("Scripted world replayed")

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "%s=%s\n", "Status", "OK")
	})
	mux.HandleFunc(logging.LevelOverwrite,
		logging.LevelOverwriteHandler(initialLevel))

	// Profiling
	mux.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	mux.Handle("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
	mux.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	mux.Handle("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
	mux.Handle("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))

	go func() {
		addr := fmt.Sprintf(":%d", *httpPort)
		log.WithField("addr", addr).Info("Serving HTTP endpoints")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	dumpInterval := cfg.DumpInterval
	if dumpInterval <= 0 {
		dumpInterval = _defaultDumpInterval
	}

	lc := lifecycle.NewLifeCycle()
	lc.Start()
	go func() {
		defer lc.StopComplete()

		ticker := time.NewTicker(dumpInterval)
		defer ticker.Stop()
		for {
			select {
			case <-lc.StopCh():
				return
			case <-ticker.C:
				logSnapshot(controller.Dump())
			}
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	log.WithField("signal", sig.String()).Info("Shutting down")

	lc.Stop()
	lc.Wait()
	if err := controller.Stop(); err != nil {
		log.WithError(err).Error("Error stopping connectivity controller")
	}
}

func logSnapshot(snapshot *connmgr.Snapshot) {
	satisfied := 0
	for _, j := range snapshot.Jobs {
		if j.Satisfied {
			satisfied++
		}
	}
	log.WithFields(log.Fields{
		"owners":         len(snapshot.Owners),
		"networks":       len(snapshot.Networks),
		"jobs":           len(snapshot.Jobs),
		"satisfied_jobs": satisfied,
		"callbacks":      snapshot.RegisteredCallbacks,
		"max_callbacks":  snapshot.MaxCallbacks,
	}).Info("Controller snapshot")

	for _, owner := range snapshot.Owners {
		log.WithFields(log.Fields{
			"owner_id":   owner.OwnerID,
			"importance": owner.Importance,
			"tracked":    owner.TrackedJobs,
			"running":    owner.RunningJobs,
			"blocked":    owner.ReadyBlockedJobs,
			"observer":   owner.ObserverRegistered,
			"network":    owner.DefaultNetwork,
		}).Debug("Owner ranking")
	}
}
