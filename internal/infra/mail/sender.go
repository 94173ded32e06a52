package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/brickmate/leadbook/internal/entity"
)

const offerAcceptedHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Your offer was accepted! 🎉</h2>
  <p>The offer on <strong>{{.Address}}</strong>{{if gt .PurchasePrice 0.0}} at <strong>${{printf "%.2f" .PurchasePrice}}</strong>{{end}} was marked as accepted.</p>
  <p>Time to line up financing and inspections.</p>
</body>
</html>`

const importSummaryHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>CSV import finished</h2>
  <p><strong>{{.Imported}}</strong> new lead(s) were added to your board.</p>
  {{if gt .Skipped 0}}<p>{{.Skipped}} row(s) were skipped (missing or duplicate address).</p>{{end}}
</body>
</html>`

const digestHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Leads waiting on outreach</h2>
  <p>You have <strong>{{.Count}}</strong> active lead(s) you have not contacted yet:</p>
  <ul>
  {{range .Leads}}<li>{{.Address}}{{if .RealtorName}} — {{.RealtorName}} {{.RealtorNumber}}{{end}}</li>
  {{end}}</ul>
</body>
</html>`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendOfferAccepted(to, address string, purchasePrice float64) error {
	subject := fmt.Sprintf("Offer accepted on %s", address)
	return s.send(to, subject, offerAcceptedHTML, offerAcceptedData{
		Address:       address,
		PurchasePrice: purchasePrice,
	})
}

func (s *EmailSender) SendImportSummary(to string, imported, skipped int) error {
	return s.send(to, "Your lead import finished", importSummaryHTML, importSummaryData{
		Imported: imported,
		Skipped:  skipped,
	})
}

func (s *EmailSender) SendDigest(to string, leads []entity.Property) error {
	subject := fmt.Sprintf("%d lead(s) still waiting on a call", len(leads))
	return s.send(to, subject, digestHTML, digestData{Count: len(leads), Leads: leads})
}

func (s *EmailSender) send(to, subject, tmpl string, data any) error {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
