package bill

import "fmt"

// ReverseBreakdown is the tax split recovered from a GST-inclusive total.
type ReverseBreakdown struct {
	TaxableValue float64 `json:"taxableValue"`
	CGSTAmount   float64 `json:"cgstAmount"`
	SGSTAmount   float64 `json:"sgstAmount"`
}

// Reverse calculates the taxable value and tax amounts from a total that
// already includes GST:
//
//	taxable = total / (1 + (cgst% + sgst%) / 100)
func Reverse(total, cgstPercent, sgstPercent float64) (ReverseBreakdown, error) {
	if total <= 0 {
		return ReverseBreakdown{}, fmt.Errorf("total must be positive, got %v", total)
	}
	if cgstPercent < 0 || sgstPercent < 0 {
		return ReverseBreakdown{}, fmt.Errorf("gst percentages must be non-negative, got cgst=%v sgst=%v", cgstPercent, sgstPercent)
	}

	taxableValue := total / (1 + (cgstPercent+sgstPercent)/100)
	return ReverseBreakdown{
		TaxableValue: taxableValue,
		CGSTAmount:   taxableValue * cgstPercent / 100,
		SGSTAmount:   taxableValue * sgstPercent / 100,
	}, nil
}
