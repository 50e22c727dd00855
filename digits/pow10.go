package digits

import (
	"math/big"
	"sync"
)

// tableSize covers every scale digit generation can request for a
// binary64 input: decimal exponent estimates range over roughly ±309
// for normals and down to -323 for subnormals.
const tableSize = 327

var (
	ten = big.NewInt(10)

	pow10Once  sync.Once
	pow10Table [tableSize]*big.Int
)

// Pow10 returns 10^n exactly for n >= 0. Values within the
// precomputed table are shared and must not be mutated; larger
// exponents are computed on demand. A negative n panics: the table
// holds integers, not rationals.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic(Error.New("negative exponent: %d", n))
	}

	pow10Once.Do(func() {
		pow10Table[0] = big.NewInt(1)
		for i := 1; i < tableSize; i++ {
			pow10Table[i] = new(big.Int).Mul(pow10Table[i-1], ten)
		}
	})

	if n < tableSize {
		return pow10Table[n]
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
