// Package token turns raw CONL text into a sequence of logical lines.
//
// Each logical line carries an indentation depth, a kind discriminator
// (key-value, key-only, list-item, list-item-value) and any decoded
// scalar content. Comments, blank lines and multiline scalar bodies are
// resolved here, so the parser above only deals in structure.
package token
