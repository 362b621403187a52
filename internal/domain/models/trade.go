package models

// Trade represents a single entry of a matecoin trade file.
//
// Every field is an optional decimal-valued string. A nil pointer means the
// key was absent (or explicitly null) in the input document.
//
// Fields:
//   - MatecoinPrice: price per coin unit; nil is treated as zero.
//   - Bought: quantity of coin acquired in this trade.
//   - Sold: quantity of coin disposed of in this trade.
//
// A record may carry both Bought and Sold; both effects apply.
type Trade struct {
	MatecoinPrice *string `json:"matecoin_price,omitempty" example:"1.5"`
	Bought        *string `json:"bought,omitempty" example:"100"`
	Sold          *string `json:"sold,omitempty" example:"40"`
}
