// Package app runs chatvim as a terminal chat client.
//
// The Application owns a tcell screen divided into a transcript of sent
// messages, the input box and a status line:
//
//	┌──────────────────────────────┐
//	│ › earlier message            │  transcript
//	│ › last message               │
//	├──────────────────────────────┤
//	│ draft text█                  │  input box (up to 5 rows)
//	├──────────────────────────────┤
//	│ -- NORMAL --  y     3f2a91c0 │  status line
//	└──────────────────────────────┘
//
// Keys are converted from tcell events into key.Event values and handed to
// a chatbox.Box. Ctrl+Q quits; Ctrl+C quits unless it is the configured
// exit key; F2 toggles vim; Ctrl+S sends from any mode.
//
// When started with a config file the file is watched and the exit key,
// clipboard backend and default register are re-applied on change.
package app
