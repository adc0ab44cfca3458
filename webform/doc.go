// Package webform is an HTTP host adapter for the validation engine.
//
// It owns the fields, wires sanitizers to them, and turns the engine's
// boolean results into something a client can react to. A form is declared
// in YAML (field name, validation kind or custom pattern, optional sanitize
// pipeline) and served under three endpoints per field:
//
//	POST /forms/{form}/fields/{field}/check   -> {"valid": bool}
//	POST /forms/{form}/fields/{field}/show    -> {"valid": bool, "indicate": bool}
//	POST /forms/{form}/fields/{field}/commit  -> {"text": "...", "rewritten": bool}
//
// Each request carries {"text": "..."}. The adapter fulfils the host
// contract on the engine's behalf: it calls NotifyTextChanged whenever the
// submitted text differs from the last text it observed for that field, and
// after a commit rewrite it notifies again so the next read re-validates.
// "indicate" is the invalid-input signal; the browser decides what the
// shake looks like.
//
// Fields are engine instances and therefore single-threaded; the adapter
// serializes access per field, which is the external synchronization the
// engine's contract asks hosts for.
package webform
