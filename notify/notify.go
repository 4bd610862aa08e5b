package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/International-Combat-Archery-Alliance/activity-signup/activities"
	"github.com/International-Combat-Archery-Alliance/email"
)

//go:embed templates
var templates embed.FS

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.ParseFS(templates, "templates/signup-confirmation.tmpl"))
	textTmpl = texttemplate.Must(texttemplate.ParseFS(templates, "templates/signup-confirmation-textonly.tmpl"))
)

type Notifier struct {
	sender      email.Sender
	fromAddress string
}

func NewNotifier(sender email.Sender, fromAddress string) *Notifier {
	return &Notifier{
		sender:      sender,
		fromAddress: fromAddress,
	}
}

// SendSignupConfirmation emails participant that they are on the roster of activity.
func (n *Notifier) SendSignupConfirmation(ctx context.Context, activity activities.Activity, participant string) error {
	data := map[string]any{
		"Activity":    activity,
		"Participant": participant,
	}

	var htmlBody bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to execute html email template: %w", err)
	}

	var textBody bytes.Buffer
	if err := textTmpl.Execute(&textBody, data); err != nil {
		return fmt.Errorf("failed to execute text email template: %w", err)
	}

	err := n.sender.SendEmail(ctx, email.Email{
		FromAddress: n.fromAddress,
		ToAddresses: []string{participant},
		Subject:     fmt.Sprintf("Activity signup confirmed - %q", activity.Name),
		HTMLBody:    htmlBody.String(),
		TextBody:    textBody.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to send signup confirmation: %w", err)
	}

	return nil
}
