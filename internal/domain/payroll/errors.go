package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrPayrollRecordAlreadyPaid   = errors.New("payroll record already paid, cannot modify")
	ErrCannotDeletePaidRecord     = errors.New("cannot delete paid payroll record")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrInvalidMonthsWorked        = errors.New("months worked must not be negative")
	ErrUnknownTaxRegime           = errors.New("unknown tax regime")
)
