// internal/notify/notifier.go

// Package notify delivers an optional run-completion summary over AWS SNS
// and/or SES. Delivery failures degrade the run report, never the run.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"synthgen/internal/common/config"
	apperrors "synthgen/internal/common/errors"
	"synthgen/internal/common/logger"
	"synthgen/internal/common/report"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier sends the run summary through the enabled channels.
type Notifier struct {
	cfg       config.NotificationConfig
	sesClient SESService
	snsClient SNSService
	logger    logger.Logger
}

// NewNotifier creates a notifier for the enabled channels. Returns nil when
// no channel is enabled; callers treat a nil notifier as "skip notification".
func NewNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*Notifier, error) {
	if !cfg.Email.Enabled && !cfg.SNS.Enabled {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Notifier{
		cfg:       cfg,
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
		logger: log.With(map[string]interface{}{
			"component": "notify",
		}),
	}, nil
}

// Notify delivers the report summary on every enabled channel. The first
// delivery failure is returned after the remaining channels are attempted.
func (n *Notifier) Notify(ctx context.Context, rep *report.RunReport) error {
	subject := fmt.Sprintf("synthgen run %s: %d records", rep.RunID, rep.TotalGenerated())
	if rep.Degraded() {
		subject = fmt.Sprintf("synthgen run %s: DEGRADED (%d records, %d dropped)",
			rep.RunID, rep.TotalGenerated(), rep.TotalDropped())
	}
	body := rep.Text()

	var firstErr error
	if n.cfg.SNS.Enabled {
		if err := n.publish(ctx, subject, body); err != nil {
			firstErr = apperrors.NewNotifyFailedError("sns", err)
			n.logger.WithError(err).Error("SNS publish failed", map[string]interface{}{
				"topic": n.cfg.SNS.TopicARN,
			})
		}
	}
	if n.cfg.Email.Enabled {
		if err := n.sendEmail(ctx, subject, body); err != nil {
			if firstErr == nil {
				firstErr = apperrors.NewNotifyFailedError("email", err)
			}
			n.logger.WithError(err).Error("email send failed", map[string]interface{}{
				"to": n.cfg.Email.ToEmail,
			})
		}
	}

	if firstErr == nil {
		n.logger.Info("run notification delivered", map[string]interface{}{
			"run_id": rep.RunID,
		})
	}
	return firstErr
}

func (n *Notifier) publish(ctx context.Context, subject, message string) error {
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.cfg.SNS.TopicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	return err
}

func (n *Notifier) sendEmail(ctx context.Context, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.cfg.Email.ToEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.cfg.Email.FromEmail),
	})
	return err
}
