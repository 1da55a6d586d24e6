// Package format reads and writes the on-disk representations an Instance
// and its solutions travel in: the two whitespace-delimited "standard"
// syntaxes (plain knapsack and subset-sum), Pisinger's comma-delimited
// benchmark syntax, the sibling FORMAT.txt that names which of the three a
// directory holds, and the certificate files (`<instance>.sol`) that carry
// a known-optimal 0/1 solution alongside an instance file.
package format
