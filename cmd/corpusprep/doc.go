// Package main hosts the corpusprep CLI entrypoint and command graph.
//
// Each subcommand wraps one corpus preparation tool: cleaning the Enron SQL
// dump export, generating gibberish samples, splitting a corpus into train
// and test sets, and scoring text with the Markov detector. The command
// context resolves configuration once, builds the logger, holds output locks
// for the duration of a run and records the run in the history store.
//
// Tool behavior lives in the internal packages. Commands here only parse
// arguments and flags, then hand off.
package main
