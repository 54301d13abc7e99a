// Package acl is the anti-corruption layer between the remote placeholder API
// and the quote domain.
//
// Remote records are generic JSON objects. They never leave this package:
// [RemoteQuoteClient] maps each one to a [domain.Quote] with JSONPath
// expressions taken from configuration, and every transport result is
// translated into one of three domain errors:
//
//   - no response (dial failure, timeout, open circuit) → [domain.ErrNetwork]
//   - non-2xx status, including 5xx that survived retries → [domain.ErrServer]
//   - body that is not the expected JSON shape → [domain.ErrDecode]
//
// Callers branch on those with [domain.IsRemote] and errors.As.
package acl
