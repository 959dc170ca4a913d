// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package wxstream implements a push-mode JSON decoder that reports the
// structure of its input as a sequence of events, without building a tree.
//
// # Decoding
//
// The Decoder type accepts input one byte, or one buffer, at a time, as it
// arrives from a network connection or other source. Construct a decoder with
// a Handler and write input to it. When the input ends, call Close:
//
//	d := wxstream.NewDecoder(handler)
//	if _, err := io.Copy(d, conn); err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//	if err := d.Close(); err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//
// A Decoder never blocks and never reads input on its own. In case of a
// syntax error, decoding stops and an error of concrete type
// *wxstream.SyntaxError is returned. Input that ends in the middle of a value
// is reported by Close as a *SyntaxError wrapping io.ErrUnexpectedEOF.
//
// # Streaming
//
// The Stream type reads an io.Reader to its end and feeds a Decoder:
//
//	s := wxstream.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Handlers
//
// The Handler interface accepts decoder events. The methods of a handler
// correspond to the syntax of JSON values:
//
//	JSON type  | Methods                      | Description
//	---------- | ---------------------------- | ---------------------------------
//	document   | BeginDocument, EndDocument   | one top-level value
//	object     | BeginObject, EndObject       | { ... }
//	array      | BeginArray, EndArray         | [ ... ]
//	member     | Key                          | "key": (value follows)
//	value      | Value                        | true, false, null, number, string
//
// A handler may also implement SpaceHandler to observe whitespace, and
// ErrorHandler to be told about syntax errors as they occur.
//
// Each method is passed an Anchor value that can be used to retrieve location
// and type information. The Anchor passed to a handler method is only valid
// for the duration of that method call; the handler must copy any data it
// needs to retain beyond the lifetime of the call.
//
// The decoder ensures that corresponding Begin and End methods are correctly
// paired, or that a SyntaxError is reported.
package wxstream
