// Package present turns rendered content into output: styled terminal text,
// HTML fragments or JSON.
//
// Presenters never fail on content. Every block and span kind has an output
// form, and link kinds keep their documented behaviour in every format:
// external links open in a new context without a referrer, references render
// as plain labels.
package present
