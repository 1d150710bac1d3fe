package models

// Placeholder fills the columns this converter never populates.
const Placeholder = "-"

// Transaction content labels
const (
	ContentPayment = "支払い"
	ContentCharge  = "チャージ"
)

// Payment method labels
const (
	MethodSuica      = "Suica"
	MethodWallet     = "お財布"
	MethodViewCard   = "ビューカード"
	MethodCreditCard = "クレジットカード"
)

// UserSelf marks expense rows as spent by the card holder; deposit
// rows carry the placeholder instead.
const UserSelf = "本人"

// Statement tokens that select the charge method on deposit rows.
const (
	TokenCash       = "現金"
	TokenAutoCharge = "オートチャージ"
)
