package timesheet

import (
	"math/big"
	"strconv"
	"time"
)

// PayCents is the pay for total at hourlyRate in minor units, rounded half
// away from zero once on the final amount. The rate is taken at its shortest
// decimal form, so 1.005 is exactly 1.005 and not the nearest binary float.
func PayCents(total time.Duration, hourlyRate float64) int64 {
	rate, ok := new(big.Rat).SetString(strconv.FormatFloat(hourlyRate, 'f', -1, 64))
	if !ok {
		return 0
	}
	seconds := new(big.Rat).SetInt64(int64(total / time.Second))

	// cents = seconds * rate * 100 / 3600
	cents := new(big.Rat).Mul(seconds, rate)
	cents.Mul(cents, big.NewRat(100, 3600))

	num := new(big.Int).Abs(cents.Num())
	den := cents.Denom()
	// floor((2*num + den) / (2*den)) rounds a non-negative ratio half up
	num.Mul(num, big.NewInt(2)).Add(num, den)
	q := new(big.Int).Quo(num, new(big.Int).Mul(den, big.NewInt(2)))
	if cents.Sign() < 0 {
		q.Neg(q)
	}
	return q.Int64()
}

// TotalPay is PayCents expressed in major units.
func TotalPay(total time.Duration, hourlyRate float64) float64 {
	return float64(PayCents(total, hourlyRate)) / 100
}
