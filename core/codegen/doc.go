// Package codegen proposes product codes of the form
//
//	AF.<category>.<branch>.<name3>.<seq>
//
// e.g. AF.EC.JP.LAP.001. Category and branch labels map to two-letter
// segments through static tables (unmapped labels become XX), name3 is the
// first three letters of the name and seq is one past the highest sequence
// already used under the same prefix.
//
// Generation reads a catalog snapshot and reserves nothing. The caller must
// check the proposed code is still free when it commits and regenerate on a
// collision.
package codegen
