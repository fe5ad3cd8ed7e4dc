package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"designermonk/config"
	"designermonk/internal/infrastructure/broker"
	"designermonk/pkg/logger"
)

// HandleEvents tails the pipeline event stream as a member of the configured
// consumer group, printing each event body and acknowledging it.
func HandleEvents(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	if cfg.BrokerConfig.URI == "" {
		ExitOnError(errors.New("BROKER_URI is not set"))
	}

	consumer := "cli"
	if len(args) > 3 {
		consumer = args[3]
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages, err := broker.NewReceiver(client).Messages(ctx, consumer)
	if err != nil {
		ExitOnError(err)
	}

	for msg := range messages {
		fmt.Println(msg.Body()) //nolint

		if err := msg.Ack(); err != nil {
			logger.Error("can't ack event", "err", err)
		}
	}
}
