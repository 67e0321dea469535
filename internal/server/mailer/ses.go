package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sethvargo/go-retry"

	"github.com/ndmitriev/gatekeeper/internal/shared"
)

// sendEmailAPI is the slice of the SES client the mailer needs; a test seam.
type sendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer delivers reset codes through Amazon SES. Transient failures are
// retried a bounded number of times before the caller's fallback kicks in.
type SESMailer struct {
	client sendEmailAPI
	sender string

	retryBase   time.Duration
	maxAttempts uint64
}

// NewSESMailer builds a mailer sending from the given address. With empty
// accessKey the default AWS credential chain is used; otherwise static
// credentials are installed, mirroring how self-hosted deployments pass
// explicit keys.
func NewSESMailer(ctx context.Context, sender, region, accessKey, secretKey string) (*SESMailer, error) {

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	return &SESMailer{
		client:      sesv2.NewFromConfig(cfg),
		sender:      sender,
		retryBase:   500 * time.Millisecond,
		maxAttempts: 2,
	}, nil
}

func (m *SESMailer) SendResetCode(ctx context.Context, email, code string, ttl time.Duration) error {

	body := fmt.Sprintf(
		"Your password reset code is %s. It expires in %d minutes. "+
			"If you did not request a reset, ignore this message.",
		code, int(ttl.Minutes()))

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String("Your password reset code")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	backoff := retry.WithMaxRetries(m.maxAttempts, retry.NewExponential(m.retryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if _, err := m.client.SendEmail(ctx, input); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrorDelivery, err)
	}

	return nil
}
