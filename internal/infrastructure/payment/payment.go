// Package payment implementa os adaptadores dos três provedores de
// pagamento (Stripe, Mercado Pago, PagBank) atrás da capacidade comum
// billing.PaymentProvider.
package payment

import "github.com/shopspring/decimal"

// MinorUnits converte um valor em unidades maiores (59.90 BRL) para
// unidades menores inteiras (5990 centavos), arredondando meia unidade
// para cima. Os provedores cobram em centavos.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
