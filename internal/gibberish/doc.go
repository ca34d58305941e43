// Package gibberish generates synthetic control text: pronounceable
// pseudo-words plus character noise drawn from fixed alphabets.
//
// Token lengths follow a normal distribution and sentence lengths an
// exponential one; all sampling constants live in Params. The Generator takes
// its *rand.Rand from the caller, so seeding policy stays outside this package.
package gibberish
