package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"billdesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendDocumentEmail(ctx context.Context, msg port.DocumentEmail) error {
	subject := documentSubject(msg)
	htmlBody := buildDocumentHTML(msg)
	textBody := buildDocumentText(msg)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{msg.ToEmail},
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

func documentSubject(msg port.DocumentEmail) string {
	if msg.BusinessName == "" {
		return fmt.Sprintf("%s %s", msg.Title, msg.Number)
	}
	return fmt.Sprintf("%s %s from %s", msg.Title, msg.Number, msg.BusinessName)
}

func greeting(name string) string {
	if name == "" {
		return "Hello"
	}
	return "Hi " + name
}

func buildDocumentText(msg port.DocumentEmail) string {
	body := fmt.Sprintf("%s,\n\nPlease find %s %s", greeting(msg.ToName), msg.Title, msg.Number)
	if msg.Total != "" {
		body += fmt.Sprintf(" for Rs. %s", msg.Total)
	}
	body += fmt.Sprintf(".\n\nDownload it here:\n%s\n\nThe link expires after a limited time.\n", msg.DownloadURL)
	if msg.BusinessName != "" {
		body += "\n" + msg.BusinessName
	}
	return body
}

func buildDocumentHTML(msg port.DocumentEmail) string {
	total := ""
	if msg.Total != "" {
		total = fmt.Sprintf(` for <strong>Rs. %s</strong>`, html.EscapeString(msg.Total))
	}
	link := html.EscapeString(msg.DownloadURL)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s %s</h2>
  <p>%s,</p>
  <p>Please find %s %s%s attached below.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #212529; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download PDF</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">The link expires after a limited time.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`,
		html.EscapeString(msg.Title), html.EscapeString(msg.Number),
		html.EscapeString(greeting(msg.ToName)),
		html.EscapeString(msg.Title), html.EscapeString(msg.Number), total,
		link, link,
		html.EscapeString(msg.BusinessName))
}
