package loan

import "math"

// Money is stored as float64 over decimal(18,2) columns and validated to
// two decimals at the boundary. Comparisons and running sums go through
// integer cents so binary float error cannot decide a funding outcome.

// Cents converts a 2-decimal amount to integer cents.
func Cents(v float64) int64 { return int64(math.Round(v * 100)) }

// AddMoney sums two 2-decimal amounts exactly.
func AddMoney(a, b float64) float64 { return float64(Cents(a)+Cents(b)) / 100 }
