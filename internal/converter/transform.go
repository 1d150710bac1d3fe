package converter

import (
	"github.com/shopspring/decimal"

	"suica-csv/internal/amountutils"
	"suica-csv/internal/dateutils"
	"suica-csv/internal/models"
	"suica-csv/internal/sequencer"
	"suica-csv/internal/suicaparser"
	"suica-csv/internal/textutils"
)

// buildRow classifies one accepted record by the sign of its amount
// and fills the 13 output columns. Negative amounts are expenses paid
// with the card; positive amounts are charges onto it.
func buildRow(rec suicaparser.RawRecord, amount decimal.Decimal, entry sequencer.Entry) models.ZaimRow {
	row := models.ZaimRow{
		Date:          entry.Time.Format(dateutils.TimestampLayout),
		Withdrawal:    models.Placeholder,
		Deposit:       models.Placeholder,
		ForeignOut:    models.Placeholder,
		ForeignIn:     models.Placeholder,
		Currency:      models.Placeholder,
		Balance:       models.Placeholder,
		Payee:         textutils.BuildPayee(rec.Type1, rec.Place1, rec.Type2, rec.Place2),
		Memo:          models.Placeholder,
		User:          models.Placeholder,
		TransactionNo: entry.TransactionID,
	}

	if amount.Sign() < 0 {
		row.Withdrawal = amountutils.FormatAmount(amount.Abs())
		row.Content = models.ContentPayment
		row.Method = models.MethodSuica
		row.User = models.UserSelf
		return row
	}

	row.Deposit = amountutils.FormatAmount(amount)
	row.Content = models.ContentCharge
	row.Method = chargeMethod(rec.Type1)
	return row
}

// chargeMethod maps the first statement type column to the payment
// method recorded for deposit rows.
func chargeMethod(type1 string) string {
	switch textutils.TrimWide(type1) {
	case models.TokenCash:
		return models.MethodWallet
	case models.TokenAutoCharge:
		return models.MethodViewCard
	default:
		return models.MethodCreditCard
	}
}
