// Package text provides character classification and normalization for
// vertical East-Asian typesetting.
//
// The grid engine places one character per cell, so the central question
// this package answers is whether a rune occupies a cell at all when set
// vertically ([OccupiesCell]), and how it presents once placed: rotated a
// quarter turn ([Rotates]) or substituted by a vertical presentation form
// ([VerticalForm]).
//
// It also carries the source-text cleanup used by the digitalization
// pipeline: classical editions carry no punctuation, so [StripPunctuation]
// removes modern punctuation before a text is laid out, and [Normalize]
// folds input to NFC so variant encodings of the same character compare
// equal.
package text
