// Package winnow provides a corpus-cleaning utility for preparing plain-text
// corpora for language-model training and analysis. It normalizes raw text
// into lowercase alphabetic tokens, removes stop words and gibberish tokens,
// and mirrors an input directory tree into a cleaned output tree.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, trafilatura/).
package winnow
