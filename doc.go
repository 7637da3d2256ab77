// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package rgtree implements a lossless Unicode lexer for a SQL-flavored
// grammar, plus the red/green syntax tree substrate that a parser builds on
// top of it.
//
// # Lexing
//
// The Lexer type implements a lexical scanner over a decoded rune sequence.
// Construct a lexer from a string or []rune and call TryNextToken to iterate
// over the stream. TryNextToken advances to the next token and returns it, or
// reports an error:
//
//	lx := rgtree.NewLexer(src)
//	for {
//	    tok, err := lx.TryNextToken()
//	    if err != nil {
//	        log.Fatalf("lex failed: %v", err)
//	    }
//	    if tok == nil {
//	        break // end of input
//	    }
//	    log.Printf("token: %v %q", tok.Kind, tok.Source)
//	}
//
// The lexer is lossless: concatenating the Source of every token it produces
// reproduces the input exactly, including whitespace and newline trivia.
//
// # Trees
//
// Package green (github.com/orionql/rgtree/green) implements the immutable,
// hash-consed green tree and the stack-based GreenBuilder that a parser drives
// with start/token/finish/checkpoint/start_at events. Package red
// (github.com/orionql/rgtree/red) implements a thin, uninterned cursor layer
// over a finished green tree that adds absolute offsets and parent
// navigation.
package rgtree
