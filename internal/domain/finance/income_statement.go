package finance

import (
	"github.com/salon/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// IncomeStatement is the derived financial report for a period.
// GrossSales sums the post-discount totals of completed sales; line
// discounts are reported separately as TotalDiscounts and subtracted
// again into NetSales, matching the bookkeeping convention used on the
// printed statement.
type IncomeStatement struct {
	GrossSales               decimal.Decimal            `json:"gross_sales"`
	TotalDiscounts           decimal.Decimal            `json:"total_discounts"`
	NetSales                 decimal.Decimal            `json:"net_sales"`
	CostOfSales              decimal.Decimal            `json:"cost_of_sales"`
	GrossProfit              decimal.Decimal            `json:"gross_profit"`
	ExpensesByCategory       map[string]decimal.Decimal `json:"expenses_by_category"`
	OperatingExpenses        decimal.Decimal            `json:"operating_expenses"`
	OperatingProfit          decimal.Decimal            `json:"operating_profit"`
	TotalCommissions         decimal.Decimal            `json:"total_commissions"`
	NetCommissions           decimal.Decimal            `json:"net_commissions"`
	NetProfit                decimal.Decimal            `json:"net_profit"`
	ProfitMargin             decimal.Decimal            `json:"profit_margin"`
	AverageTicket            decimal.Decimal            `json:"average_ticket"`
	CompletedSalesCount      int                        `json:"completed_sales_count"`
	SalesByPaymentMethod     map[string]decimal.Decimal `json:"sales_by_payment_method"`
	PaymentMethodPercentages map[string]decimal.Decimal `json:"payment_method_percentages"`
}

// BuildIncomeStatement derives the income statement from scratch.
// Pure computation: no persisted state, safe to recompute on every read.
// Cost of sales uses the cost snapshots captured on each sale item, not
// the current product cost.
func BuildIncomeStatement(saleList []sales.Sale, expenses []Expense) *IncomeStatement {
	statement := &IncomeStatement{
		ExpensesByCategory:       make(map[string]decimal.Decimal),
		SalesByPaymentMethod:     make(map[string]decimal.Decimal),
		PaymentMethodPercentages: make(map[string]decimal.Decimal),
	}

	for i := range saleList {
		sale := &saleList[i]
		if !sale.IsCompleted() {
			continue
		}

		statement.CompletedSalesCount++
		statement.GrossSales = statement.GrossSales.Add(sale.Total)
		statement.TotalDiscounts = statement.TotalDiscounts.Add(sale.Discount)
		statement.CostOfSales = statement.CostOfSales.Add(sale.CostOfGoods())
		statement.TotalCommissions = statement.TotalCommissions.Add(sale.BaseCommission())
		statement.NetCommissions = statement.NetCommissions.Add(sale.NetCommission())

		method := sale.PaymentMethod.String()
		statement.SalesByPaymentMethod[method] = statement.SalesByPaymentMethod[method].Add(sale.Total)
	}

	statement.NetSales = statement.GrossSales.Sub(statement.TotalDiscounts)
	statement.GrossProfit = statement.NetSales.Sub(statement.CostOfSales)

	for _, expense := range expenses {
		statement.ExpensesByCategory[expense.Category] = statement.ExpensesByCategory[expense.Category].Add(expense.Amount)
		statement.OperatingExpenses = statement.OperatingExpenses.Add(expense.Amount)
	}

	statement.OperatingProfit = statement.GrossProfit.Sub(statement.OperatingExpenses)
	statement.NetProfit = statement.OperatingProfit.Sub(statement.NetCommissions)

	statement.ProfitMargin = percentOf(statement.NetProfit, statement.NetSales).Round(2)

	if statement.CompletedSalesCount > 0 {
		statement.AverageTicket = statement.NetSales.
			Div(decimal.NewFromInt(int64(statement.CompletedSalesCount))).Round(2)
	}

	for method, total := range statement.SalesByPaymentMethod {
		statement.PaymentMethodPercentages[method] = percentOf(total, statement.GrossSales).Round(2)
	}

	return statement
}

// CreditSummaryRow is one credit's contribution to the profitability report
type CreditSummaryRow struct {
	CreditID         string          `json:"credit_id"`
	ClientName       string          `json:"client_name"`
	ProductName      string          `json:"product_name"`
	Price            decimal.Decimal `json:"price"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	ProportionalCost decimal.Decimal `json:"proportional_cost"`
	RealProfit       decimal.Decimal `json:"real_profit"`
	Status           string          `json:"status"`
}
