package mail

import "github.com/brickmate/leadbook/internal/entity"

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type offerAcceptedData struct {
	Address       string
	PurchasePrice float64
}

type importSummaryData struct {
	Imported int
	Skipped  int
}

type digestData struct {
	Count int
	Leads []entity.Property
}
