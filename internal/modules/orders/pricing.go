package orders

import "recordstudio/internal/domain"

// TotalPrice sums quantity × unit price over the details. A detail without a
// resolved service or with a non-positive quantity contributes 0. The result
// does not depend on the order of the slice.
func TotalPrice(details []domain.Detail) float64 {
	var total float64
	for _, d := range details {
		if d.Service == nil || d.Quantity <= 0 {
			continue
		}
		total += float64(d.Quantity) * d.Service.Price
	}
	return total
}
