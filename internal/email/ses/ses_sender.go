package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"rentintel/internal/domain"
	"rentintel/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed ReminderSender.
func NewSESSender(region, fromAddress, fromName string) (port.ReminderSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendRentReminder(ctx context.Context, unit *domain.Unit) error {
	subject := fmt.Sprintf("Rent reminder for %s", unit.Name)
	textBody := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that rent for %s (%.0f RWF) is due on day %d of this month. Please pay via MoMo, bank transfer, or cash.\n\nThank you.",
		unit.TenantName, unit.Name, unit.RentAmount, unit.DueDateDay)
	htmlBody := buildReminderHTML(unit)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{unit.TenantEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReminderHTML(unit *domain.Unit) string {
	return fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>This is a reminder that rent for <strong>%s</strong> (%.0f RWF) is due on day %d of this month.</p>
<p>Please pay via MoMo, bank transfer, or cash.</p>
<p>Thank you.</p>
</body></html>`, unit.TenantName, unit.Name, unit.RentAmount, unit.DueDateDay)
}
