// Package huffcode implements Huffman codes over text.  A Coder is built once
// from either a sample string or a character frequency table, and then turns
// strings into sequences of '0' and '1' symbols and back again.
//
// Tree construction is fully deterministic: nodes are ordered by frequency,
// then leaves before internal nodes, then by character (comparing the
// left-spine leaves of internal nodes).  The same frequency table therefore
// always yields the same code.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffcode
