// Package argx counts arguments in comma-separated lists.
//
// CountArgs mirrors how a preprocessor counts macro arguments: it does not
// parse quotes or brackets, every comma separates. Count is the variadic
// form for callers that already hold the arguments.
//
//	argx.CountArgs("")            // 0
//	argx.CountArgs("a")           // 1
//	argx.CountArgs(`"x,y", z`)    // 3, the quoted comma counts
//	argx.CountArgs(`"x\x2cy", z`) // 2
package argx
