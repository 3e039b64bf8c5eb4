// This package contains the built-in Discord commands.
//
// There should be 2 functions per command, one for declaring the command
// descriptor & handler on the AppState (public), and one for handling the
// interaction (private).
//
// Groups must be declared before their subcommands, the declaration order is
// the registration order.
//
// Only return errors when it's the backend's fault, nil if user's fault.
package handler
