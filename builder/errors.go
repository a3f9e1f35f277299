package builder

import "errors"

// ErrEmptyWantList indicates a WantLists entry with no item name: no tokens
// at all, or nothing but an owner token. The
// front-end tokenizer is expected never to emit one; Build treats it as a
// caller error rather than a recoverable per-item parse issue.
var ErrEmptyWantList = errors.New("builder: empty want list entry")
