// Package commands defines the basking CLI.
//
// Commands
//
//   - register / login / logout / whoami / delete-account
//   - block          Block a username from the feed
//   - feed / post / like
//   - chat           peers, history, send
//   - coins          show, add, spend
//   - config         init, show
//   - watch          Stream data-layer events from the journal
//
// Commands that touch state boot the data layer through the fx module for
// the duration of the invocation; the home-dir lock keeps concurrent
// invocations from racing the JSON state files. watch and config read
// on-disk artifacts directly and never take the lock.
package commands
