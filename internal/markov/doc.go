// Package markov scores text with a character n-gram Markov model and flags
// lines that look like gibberish.
//
// A model is trained on a clean corpus, then calibrated with one file of
// known-good lines and one of known-bad lines: the acceptance threshold sits
// halfway between the worst good score and the best bad score. Scores are sums
// of log transition probabilities, so longer lines score lower.
package markov
