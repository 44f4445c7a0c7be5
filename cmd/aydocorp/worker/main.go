package main

// Background worker: consumes queued catalog sync / image warm jobs and
// schedules the periodic ones.

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/catalog"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/config"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/dsn"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/fleetyards"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/queue"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/repository"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/worker"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, err := repository.New(dsn.FromEnv(), conf.RedisEndpoint, conf.RedisPassword)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	rep.SetMaxPageSize(conf.MaxPageSize)

	client := fleetyards.NewClient(conf.FleetyardsBaseURL, conf.FleetyardsPerPage)
	syncer := catalog.NewSyncer(client, rep, rep)

	warmBaseURL := conf.WarmBaseURL
	if warmBaseURL == "" {
		warmBaseURL = fmt.Sprintf("http://localhost:%d", conf.ServicePort)
	}
	warmer := catalog.NewWarmer(rep, warmBaseURL, conf.WarmWidths, conf.WarmConcurrency)

	redisOpt := asynq.RedisClientOpt{
		Addr:     conf.RedisEndpoint,
		Password: conf.RedisPassword,
	}

	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	if conf.SyncSchedule != "" || conf.WarmSchedule != "" {
		scheduler := asynq.NewScheduler(redisOpt, nil)
		if conf.SyncSchedule != "" {
			if _, err := scheduler.Register(conf.SyncSchedule,
				asynq.NewTask(queue.SyncCatalogTask, nil)); err != nil {
				logrus.Fatalf("register sync schedule: %v", err)
			}
		}
		if conf.WarmSchedule != "" {
			if _, err := scheduler.Register(conf.WarmSchedule,
				asynq.NewTask(queue.WarmImagesTask, nil)); err != nil {
				logrus.Fatalf("register warm schedule: %v", err)
			}
		}
		go func() {
			if err := scheduler.Run(); err != nil {
				logrus.Fatalf("scheduler stopped: %v", err)
			}
		}()
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		// Sync runs are serialized by the redis lock anyway; one worker slot
		// per job type is plenty for a nightly pipeline.
		Concurrency: 2,
	})

	processor := worker.NewProcessor(syncer, warmer, asynqClient)
	logrus.Info("worker listening for catalog jobs")
	if err := srv.Run(processor.Handler()); err != nil {
		logrus.Fatalf("worker stopped: %v", err)
	}
}
