package report

import (
	"context"
	"sort"
	"time"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/payment"
	"goldloan-backend/internal/domain/scheme"
	"goldloan-backend/internal/domain/voucher"
)

const defaultTenureMonths = 12

type Usecase struct {
	loans    loan.Repository
	payments payment.Repository
	vouchers voucher.Repository
	schemes  scheme.Repository

	now func() time.Time
}

func NewUsecase(loans loan.Repository, payments payment.Repository, vouchers voucher.Repository, schemes scheme.Repository) *Usecase {
	return &Usecase{loans: loans, payments: payments, vouchers: vouchers, schemes: schemes, now: time.Now}
}

type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

type Transaction struct {
	Side        EntrySide `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Time        time.Time `json:"time"`
}

type DayBook struct {
	Date         time.Time     `json:"date"`
	Transactions []Transaction `json:"transactions"`
	TotalIn      float64       `json:"total_in"`
	TotalOut     float64       `json:"total_out"`
	NetChange    float64       `json:"net_change"`
}

// DayBook merges the day's loan issues (debit), loan payments (credit) and
// cash vouchers into one ledger for the actor's branch window
// [00:00:00, 23:59:59]. Vouchers with no cash side (Contra, Journal, Memo)
// contribute nothing.
func (u *Usecase) DayBook(ctx context.Context, act actor.Actor, requestedBranch string, date time.Time) (*DayBook, error) {
	if date.IsZero() {
		date = u.now().UTC()
	}
	branchID := act.BranchScope(requestedBranch)
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Second)

	loans, err := u.loans.ListCreatedBetween(ctx, branchID, start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	payments, err := u.payments.ListBetween(ctx, branchID, start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	vouchers, err := u.vouchers.ListBetween(ctx, branchID, start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	txs := make([]Transaction, 0, len(loans)+len(payments)+len(vouchers))
	for i := range loans {
		txs = append(txs, Transaction{
			Side:        Debit,
			Category:    "Loan Issue",
			Description: "Loan " + loans[i].LoanID,
			Amount:      loans[i].LoanAmount,
			Time:        loans[i].CreatedAt,
		})
	}
	for i := range payments {
		txs = append(txs, Transaction{
			Side:        Credit,
			Category:    "Loan Payment",
			Description: "Payment for loan",
			Amount:      payments[i].Amount,
			Time:        payments[i].PaymentDate,
		})
	}
	for i := range vouchers {
		v := &vouchers[i]
		desc := v.Description
		if desc == "" {
			desc = v.Type + " voucher"
		}
		switch v.Side() {
		case voucher.DebitSide:
			txs = append(txs, Transaction{Side: Debit, Category: v.Category, Description: desc, Amount: v.Amount, Time: v.Date})
		case voucher.CreditSide:
			txs = append(txs, Transaction{Side: Credit, Category: v.Category, Description: desc, Amount: v.Amount, Time: v.Date})
		case voucher.NoSide:
			// no cash movement
		}
	}

	sort.Slice(txs, func(i, j int) bool { return txs[i].Time.After(txs[j].Time) })

	var in, out float64
	for _, t := range txs {
		if t.Side == Credit {
			in += t.Amount
		} else {
			out += t.Amount
		}
	}
	return &DayBook{
		Date:         start,
		Transactions: txs,
		TotalIn:      in,
		TotalOut:     out,
		NetChange:    in - out,
	}, nil
}

type ProfitAndLoss struct {
	InterestIncome float64 `json:"interest_income"`
	OtherIncome    float64 `json:"other_income"`
	Expenses       float64 `json:"expenses"`
	BadDebts       float64 `json:"bad_debts"`
	NetProfit      float64 `json:"net_profit"`
}

type FinancialStats struct {
	CashInHand           float64       `json:"cash_in_hand"`
	OutstandingPrincipal float64       `json:"outstanding_principal"`
	ProfitAndLoss        ProfitAndLoss `json:"profit_and_loss"`
}

// FinancialStats approximates cash flow and P&L by aggregation. This is not
// a balanced double-entry ledger; bad debts stay zero.
func (u *Usecase) FinancialStats(ctx context.Context, act actor.Actor, requestedBranch string) (*FinancialStats, error) {
	branchID := act.BranchScope(requestedBranch)

	allLoans, err := u.loans.List(ctx, loan.QueryFilter{BranchID: branchID})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var outstanding, totalDisbursed float64
	for i := range allLoans {
		totalDisbursed += allLoans[i].LoanAmount
		if allLoans[i].Status != loan.StatusClosed {
			outstanding += allLoans[i].LoanAmount
		}
	}

	allPayments, err := u.payments.SumAmounts(ctx, "", branchID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	interestPayments, err := u.payments.SumAmounts(ctx, payment.TypeInterest, branchID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	vouchers, err := u.vouchers.List(ctx, branchID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var incomeVouchers, expenseVouchers float64
	for i := range vouchers {
		switch vouchers[i].Side() {
		case voucher.CreditSide:
			incomeVouchers += vouchers[i].Amount
		case voucher.DebitSide:
			expenseVouchers += vouchers[i].Amount
		case voucher.NoSide:
		}
	}

	return &FinancialStats{
		CashInHand:           (allPayments + incomeVouchers) - (totalDisbursed + expenseVouchers),
		OutstandingPrincipal: outstanding,
		ProfitAndLoss: ProfitAndLoss{
			InterestIncome: interestPayments,
			OtherIncome:    incomeVouchers,
			Expenses:       expenseVouchers,
			BadDebts:       0,
			NetProfit:      interestPayments + incomeVouchers - expenseVouchers,
		},
	}, nil
}

type DemandEntry struct {
	LoanID       string      `json:"loan_id"`
	Amount       float64     `json:"amount"`
	Balance      float64     `json:"balance"`
	MaturityDate time.Time   `json:"maturity_date"`
	Status       loan.Status `json:"status"`
}

// DemandList returns the collection follow-up list: loans already overdue,
// plus active loans whose maturity falls within the lookahead window.
// A loan whose scheme no longer resolves is assumed to run the default
// twelve-month tenure.
func (u *Usecase) DemandList(ctx context.Context, act actor.Actor, requestedBranch string, windowDays int) ([]DemandEntry, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	branchID := act.BranchScope(requestedBranch)
	horizon := u.now().UTC().AddDate(0, 0, windowDays)

	loans, err := u.loans.List(ctx, loan.QueryFilter{
		BranchID: branchID,
		Statuses: []loan.Status{loan.StatusActive, loan.StatusOverdue},
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	tenures := map[uint64]int{}
	out := make([]DemandEntry, 0, len(loans))
	for i := range loans {
		l := &loans[i]

		months, ok := tenures[l.SchemeRef]
		if !ok {
			months = defaultTenureMonths
			if s, err := u.schemes.GetByID(ctx, l.SchemeRef); err == nil {
				months = s.TenureMonths
			}
			tenures[l.SchemeRef] = months
		}
		maturity := l.LoanDate.AddDate(0, months, 0)

		if l.Status != loan.StatusOverdue && maturity.After(horizon) {
			continue
		}
		out = append(out, DemandEntry{
			LoanID:       l.LoanID,
			Amount:       l.LoanAmount,
			Balance:      l.CurrentBalance,
			MaturityDate: maturity,
			Status:       l.Status,
		})
	}
	return out, nil
}

type BusinessReport struct {
	PrincipalOutstanding float64 `json:"principal_outstanding"`
	TotalDisbursed       float64 `json:"total_disbursed"`
	InterestCollected    float64 `json:"interest_collected"`
	OtherIncome          float64 `json:"other_income"`
	TotalIn              float64 `json:"total_in"`
	TotalOut             float64 `json:"total_out"`
	CashInHand           float64 `json:"cash_in_hand"`
	ActiveLoans          int     `json:"active_loans"`
	OverdueLoans         int     `json:"overdue_loans"`
}

// BusinessReport is the admin-wide portfolio summary (all branches).
func (u *Usecase) BusinessReport(ctx context.Context) (*BusinessReport, error) {
	allLoans, err := u.loans.List(ctx, loan.QueryFilter{})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var rep BusinessReport
	for i := range allLoans {
		l := &allLoans[i]
		rep.TotalDisbursed += l.LoanAmount
		switch l.Status {
		case loan.StatusActive:
			rep.ActiveLoans++
			rep.PrincipalOutstanding += l.CurrentBalance
		case loan.StatusOverdue:
			rep.OverdueLoans++
			rep.PrincipalOutstanding += l.CurrentBalance
		}
	}

	allPayments, err := u.payments.SumAmounts(ctx, "", "")
	if err != nil {
		return nil, apperr.Internal(err)
	}
	interest, err := u.payments.SumAmounts(ctx, payment.TypeInterest, "")
	if err != nil {
		return nil, apperr.Internal(err)
	}
	vouchers, err := u.vouchers.List(ctx, "")
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var income, expense float64
	for i := range vouchers {
		switch vouchers[i].Side() {
		case voucher.CreditSide:
			income += vouchers[i].Amount
		case voucher.DebitSide:
			expense += vouchers[i].Amount
		case voucher.NoSide:
		}
	}

	rep.InterestCollected = interest
	rep.OtherIncome = income
	rep.TotalIn = allPayments + income
	rep.TotalOut = rep.TotalDisbursed + expense
	rep.CashInHand = rep.TotalIn - rep.TotalOut
	return &rep, nil
}
