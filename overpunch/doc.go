// Package overpunch implements the signed-decimal Overpunch encoding used by
// NCPDP Pricing fields.
//
// An Overpunch value is a decimal-digit string whose final character carries
// both the units digit and the sign:
//
//	positive 0-9:  { A B C D E F G H I
//	negative 0-9:  } J K L M N O P Q R
//
// A plain ASCII digit in the trailing position is accepted on decode and
// treated as positive. Encode always emits the overpunch form; zero encodes
// as "{" and the "}" form is accepted but never produced.
//
// Pricing dollar amounts carry an implied two-digit fraction: the wire value
// 125C is +12.53. DecodeAmount and EncodeAmount convert between the wire
// form and exact decimal values.
package overpunch
