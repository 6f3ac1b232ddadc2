package domain

// Totals reduces any scenario result onto a common invested/gain/total shape:
// investment calculators report contributions, returns and final value; loans
// report principal, interest cost and total payment; withdrawal plans report
// the consumed corpus, total withdrawn and final balance; inflation reports
// the present amount, the erosion gap and the future cost.
func (sr *ScenarioResult) Totals() (invested, gain, total int64) {
	switch {
	case sr.SIP != nil:
		return sr.SIP.InvestedAmount, sr.SIP.EstimatedReturns, sr.SIP.TotalValue
	case sr.TopUp != nil:
		return sr.TopUp.InvestedAmount, sr.TopUp.EstimatedReturns, sr.TopUp.TotalValue
	case sr.Lumpsum != nil:
		return sr.Lumpsum.InvestedAmount, sr.Lumpsum.EstimatedReturns, sr.Lumpsum.TotalValue
	case sr.SWP != nil:
		return sr.SWP.TotalWithdrawal + sr.SWP.FinalBalance, sr.SWP.TotalWithdrawal, sr.SWP.FinalBalance
	case sr.EMI != nil:
		return sr.EMI.TotalPayment - sr.EMI.TotalInterest, sr.EMI.TotalInterest, sr.EMI.TotalPayment
	case sr.Inflation != nil:
		return sr.Inflation.PresentAmount, sr.Inflation.InflationImpact, sr.Inflation.FutureValue
	}
	return 0, 0, 0
}

// Yearly returns the scenario's growth/withdrawal series. Loan scenarios keep
// their principal/interest split in EMIResult.Schedule instead.
func (sr *ScenarioResult) Yearly() []YearlyEntry {
	switch {
	case sr.SIP != nil:
		return sr.SIP.YearlyData
	case sr.TopUp != nil:
		return sr.TopUp.YearlyData
	case sr.Lumpsum != nil:
		return sr.Lumpsum.YearlyData
	case sr.SWP != nil:
		return sr.SWP.YearlyData
	case sr.Inflation != nil:
		return sr.Inflation.YearlyData
	}
	return nil
}

// Horizon is the number of reported projection years.
func (sr *ScenarioResult) Horizon() int {
	if sr.EMI != nil {
		return len(sr.EMI.Schedule)
	}
	return len(sr.Yearly())
}
