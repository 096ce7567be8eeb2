package get_analytics_report

import "fmt"

// validateRequest проверяет базовую корректность диапазона дат
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if req.StartDate.After(req.EndDate) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
	}
	return nil
}
