package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/activity-signup/api"
	"github.com/International-Combat-Archery-Alliance/activity-signup/notify"
	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/email/awsses"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

func createProdAWSEmailSender(ctx context.Context) (*awsses.AWSSESSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get aws config: %w", err)
	}

	sesClient := sesv2.NewFromConfig(cfg)
	sender := awsses.NewAWSSESSender(sesClient)

	return sender, nil
}

func createEmailSender(ctx context.Context, logger *slog.Logger, env api.Environment) (email.Sender, error) {
	if env == api.LOCAL {
		return notify.NewLogSender(logger), nil
	}

	return createProdAWSEmailSender(ctx)
}

// createNotifier returns nil when no from address is configured, which turns confirmations off.
func createNotifier(ctx context.Context, logger *slog.Logger, cfg Config) (api.SignupNotifier, error) {
	if cfg.NotifyFrom == "" {
		return nil, nil
	}

	sender, err := createEmailSender(ctx, logger, cfg.Env)
	if err != nil {
		return nil, err
	}

	return notify.NewNotifier(sender, cfg.NotifyFrom), nil
}
