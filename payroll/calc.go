package payroll

// Pay holds the derived pay figures for one record.
type Pay struct {
	Gross float64
	Tax   float64
	Net   float64
}

// Calculate derives gross, tax and net pay for one pay period. taxRate is
// a fraction (0.15 for 15%), not a percent. No rounding happens here;
// rounding is presentation-only at display time.
func Calculate(hours, rate, taxRate float64) Pay {
	gross := hours * rate
	tax := gross * taxRate

	return Pay{
		Gross: gross,
		Tax:   tax,
		Net:   gross - tax,
	}
}
