package domain

// SIPResult is the outcome of a SIP or SIP top-up projection. All monetary
// fields are whole currency units. EstimatedReturns is always exactly
// TotalValue - InvestedAmount.
type SIPResult struct {
	InvestedAmount   int64         `json:"investedAmount" yaml:"investedAmount"`
	EstimatedReturns int64         `json:"estimatedReturns" yaml:"estimatedReturns"`
	TotalValue       int64         `json:"totalValue" yaml:"totalValue"`
	YearlyData       []YearlyEntry `json:"yearlyData" yaml:"yearlyData"`
}

// SWPResult is the outcome of a withdrawal plan projection. YearlyData may
// hold fewer rows than the requested horizon when the balance is exhausted
// early; in that case FinalBalance is zero.
type SWPResult struct {
	FinalBalance     int64         `json:"finalBalance" yaml:"finalBalance"`
	TotalWithdrawal  int64         `json:"totalWithdrawal" yaml:"totalWithdrawal"`
	YearlyWithdrawal int64         `json:"yearlyWithdrawal" yaml:"yearlyWithdrawal"`
	YearlyData       []YearlyEntry `json:"yearlyData" yaml:"yearlyData"`
}

// EMIResult is the outcome of a loan projection. TotalPayment and
// TotalInterest are derived from the reported (rounded) EMI so that
// EMI * months reconciles with the totals a borrower would see.
type EMIResult struct {
	EMI           int64               `json:"emi" yaml:"emi"`
	TotalInterest int64               `json:"totalInterest" yaml:"totalInterest"`
	TotalPayment  int64               `json:"totalPayment" yaml:"totalPayment"`
	Schedule      []AmortizationEntry `json:"schedule" yaml:"schedule"`
}

// LumpsumResult is the outcome of a single upfront investment projection.
type LumpsumResult struct {
	InvestedAmount   int64         `json:"investedAmount" yaml:"investedAmount"`
	EstimatedReturns int64         `json:"estimatedReturns" yaml:"estimatedReturns"`
	TotalValue       int64         `json:"totalValue" yaml:"totalValue"`
	YearlyData       []YearlyEntry `json:"yearlyData" yaml:"yearlyData"`
}

// InflationResult is the outcome of a purchasing-power projection.
// InflationImpact is the gap between the future cost and today's amount.
type InflationResult struct {
	PresentAmount   int64         `json:"presentAmount" yaml:"presentAmount"`
	FutureValue     int64         `json:"futureValue" yaml:"futureValue"`
	InflationImpact int64         `json:"inflationImpact" yaml:"inflationImpact"`
	YearlyData      []YearlyEntry `json:"yearlyData" yaml:"yearlyData"`
}
