// Package chatbox implements the text input of a chat client.
//
// A Box owns the draft message text and a caret. With vim enabled it
// routes keys through a vim.Engine and only applies literal edits when the
// engine passes a key through (Insert mode). With vim disabled it behaves
// like a plain text field where Enter sends and Shift+Enter inserts a
// newline.
//
// Box is headless: it has no rendering and no terminal dependency, so hosts
// such as internal/app draw it from State.
package chatbox
